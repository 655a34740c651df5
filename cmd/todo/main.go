package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Makepad-fr/tada/internal/cli"
	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/ui"
)

func main() {
	code := run(os.Args[1:])
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}

// run parses root flags, loads config from the environment and dispatches
// the subcommand. It returns the process exit code.
func run(argv []string) int {
	// Root flags (apply to every subcommand); they override the environment.
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	theme := fs.String("theme", "", "color theme: classic, neon or mono")
	backend := fs.String("backend", "", "storage backend: file, memory or redis")
	dataDir := fs.String("data-dir", "", "directory of the file backend")
	noColor := fs.Bool("no-color", false, "disable ANSI colors")
	if err := fs.Parse(argv); err != nil {
		return 2
	}

	args := fs.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		ui.Fail("config: " + err.Error())
		return 2
	}
	if *theme != "" {
		cfg.UI.Theme = *theme
	}
	if *backend != "" {
		cfg.Store.Backend = *backend
	}
	if *dataDir != "" {
		cfg.Store.DataDir = *dataDir
	}
	if err := cfg.Validate(); err != nil {
		ui.Fail("config: " + err.Error())
		return 2
	}
	ui.SetTheme(cfg.UI.Theme)
	if *noColor {
		ui.SetColorForcing(false, true)
	}

	s, closer, err := cli.OpenSlot(cfg)
	if err != nil {
		ui.Fail("storage: " + err.Error())
		return 1
	}
	defer closer.Close()

	return cli.Run(args, cli.Options{
		Slot:          s,
		Key:           cfg.Store.Key,
		StatusTimeout: cfg.UI.StatusTimeout.Duration(),
	})
}
