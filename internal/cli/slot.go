package cli

import (
	"fmt"
	"io"

	"github.com/redis/go-redis/v9"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/slot"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenSlot builds the slot selected by cfg. The closer releases any
// connection it holds.
func OpenSlot(cfg config.Config) (slot.Slot, io.Closer, error) {
	switch cfg.Store.Backend {
	case config.BackendFile:
		return slot.NewFile(cfg.Store.DataDir), nopCloser{}, nil
	case config.BackendMemory:
		return slot.NewMemory(), nopCloser{}, nil
	case config.BackendRedis:
		opt, err := cfg.Redis.Options()
		if err != nil {
			return nil, nil, err
		}
		rdb := redis.NewClient(opt)
		return slot.NewRedis(rdb, cfg.Redis.Prefix, cfg.Redis.Timeout.Duration()), rdb, nil
	}
	return nil, nil, fmt.Errorf("unknown backend %q", cfg.Store.Backend)
}
