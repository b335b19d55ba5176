package database

import (
	"context"
	"sync"

	"github.com/mrlokans/qualification/internal/config"
	"github.com/mrlokans/qualification/internal/logger"
)

// The process-wide database. The pointer never changes: Init connects and
// initializes it in place and Shutdown resets it, so a handle taken from
// Get before Init starts working as soon as Init succeeds.
var (
	initMu sync.Mutex // serializes Init and Shutdown
	std    = &Database{log: logger.Nop()}
)

// Init connects the process-wide database described by cfg, initializes
// it and then calls callback. A second successful call returns
// ErrAlreadyInitialized without reconnecting.
func Init(ctx context.Context, cfg *config.Config, logg *logger.Logger, callback func()) error {
	if err := initDefault(ctx, cfg, logg); err != nil {
		return err
	}
	if callback != nil {
		callback()
	}
	return nil
}

func initDefault(ctx context.Context, cfg *config.Config, logg *logger.Logger) error {
	initMu.Lock()
	defer initMu.Unlock()

	if std.Initialized() {
		return ErrAlreadyInitialized
	}

	conn, err := NewDatabase(cfg.Database, logg)
	if err != nil {
		return err
	}
	if cfg.Auth.BcryptCost > 0 {
		conn.BcryptCost = cfg.Auth.BcryptCost
	}

	std.attach(conn)
	if err := std.Init(ctx, nil); err != nil {
		if cerr := std.detach(); cerr != nil {
			conn.log.Error("Error closing database after failed init", "error", cerr)
		}
		return err
	}
	return nil
}

// Get returns the process-wide database. The same value is returned for
// the life of the process; its accessors check the initialization state
// on every call and fail with ErrNotInitialized until Init has succeeded.
func Get() *Database {
	return std
}

// Shutdown closes the process-wide database and resets it to the
// uninitialized state.
func Shutdown() error {
	initMu.Lock()
	defer initMu.Unlock()

	return std.detach()
}
