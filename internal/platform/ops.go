package platform

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/notekeeper/pkg/adapters/fs"
	"github.com/aretw0/notekeeper/pkg/adapters/memory"
	"github.com/aretw0/notekeeper/pkg/adapters/redis"
	"github.com/aretw0/notekeeper/pkg/adapters/sqlite"
	"github.com/aretw0/notekeeper/pkg/core"
)

// SQLiteFile is the database filename used when the sqlite URI is a directory.
const SQLiteFile = "notekeeper.db"

// Init builds and initializes the backend selected by the options.
// The 'uri' argument is adapter-specific: a directory for 'fs', a database file
// or directory for 'sqlite', an address for 'redis', ignored for 'memory'.
func Init(ctx context.Context, uri string, opts ...Option) (core.Backend, error) {
	return initBackend(ctx, uri, applyOptions(opts))
}

func initBackend(ctx context.Context, uri string, o *options) (core.Backend, error) {
	// 1. Check for injected backend
	if o.backend != nil {
		return o.backend, nil
	}

	// 2. Build based on Adapter
	var backend core.Backend
	var err error

	switch o.adapter {
	case "fs", "":
		backend = initFS(uri, o)
	case "memory":
		backend = memory.NewBackend()
	case "sqlite":
		backend, err = initSQLite(uri, o)
	case "redis":
		backend = initRedis(uri, o)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
	if err != nil {
		return nil, err
	}

	// 3. Run Initialization
	if init, ok := backend.(core.Initializer); ok {
		if err := init.Initialize(ctx); err != nil {
			if c, ok := backend.(core.Closer); ok {
				_ = c.Close()
			}
			return nil, err
		}
	}

	o.logger.Debug("backend ready", "adapter", o.adapter, "uri", uri)
	return backend, nil
}

// initFS handles the configuration of the filesystem adapter.
func initFS(path string, o *options) core.Backend {
	autoInit, _ := o.config["auto_init"].(bool)
	mustExist, _ := o.config["must_exist"].(bool)
	errorHandler, _ := o.config["watcher_error_handler"].(func(error))

	return fs.NewBackend(fs.Config{
		Path:         path,
		AutoInit:     autoInit,
		MustExist:    mustExist,
		ReadOnly:     o.readOnly(),
		Logger:       o.logger,
		ErrorHandler: errorHandler,
	})
}

func initSQLite(uri string, o *options) (core.Backend, error) {
	path := uri
	if !strings.HasSuffix(path, ".db") && !strings.HasSuffix(path, ".sqlite") {
		path = filepath.Join(uri, SQLiteFile)
	}
	if autoInit, _ := o.config["auto_init"].(bool); autoInit && !o.readOnly() {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	return sqlite.Open(path, o.readOnly())
}

func initRedis(addr string, o *options) core.Backend {
	password, _ := o.config["redis_password"].(string)
	db, _ := o.config["redis_db"].(int)

	return redis.NewBackend(redis.Config{
		Addr:     addr,
		Password: password,
		DB:       db,
		ReadOnly: o.readOnly(),
	})
}
