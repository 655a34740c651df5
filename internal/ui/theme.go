package ui

import "strings"

// Palette holds 256-color codes for lipgloss ("" means terminal default).
// Plain themes render without any color or text attributes.
type Palette struct {
	Success, Pending, Accent, Error, Border string
	Plain                                   bool
}

// Theme bundles ANSI palette + lipgloss palette + symbols + box borders.
// Both the one-shot CLI and the interactive list pull from `current`.
type Theme struct {
	Name                                          string
	Palette                                       Palette
	Title, Muted, Accent, Success, Error, Pending string
	BoxUnchecked, BoxChecked                      string
	CornerTL, CornerTR, CornerBL, CornerBR        string
	H, V                                          string
	SymDone, SymUnchecked                         string
}

var current Theme

func init() { SetTheme("classic") }

// SetTheme switches the palette. Unknown names fall back to classic.
func SetTheme(name string) {
	disableColor = false
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name:  "neon",
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Pending: "\033[93m",
			BoxUnchecked: "◻", BoxChecked: "◼",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymDone: "✔", SymUnchecked: "•",
			Palette: Palette{Success: "46", Pending: "226", Accent: "51", Error: "201", Border: "13"},
		}
	case "mono":
		disableColor = true
		current = Theme{
			Name:  "mono",
			Title: "", Muted: "", Accent: "", Success: "", Error: "", Pending: "",
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymDone: "x", SymUnchecked: "-",
			Palette: Palette{Plain: true},
		}
	default:
		current = Theme{
			Name:  "classic",
			Title: bold, Muted: fgGray, Accent: fgBlue,
			Success: fgGreen, Error: fgRed, Pending: fgYellow,
			BoxUnchecked: "☐", BoxChecked: "☑",
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
			SymDone: symCheck, SymUnchecked: "•",
			Palette: Palette{Success: "42", Pending: "214", Accent: "12", Error: "9", Border: "8"},
		}
	}
}

func Current() Theme { return current }
