// Package fs stores backend keys as files in a directory, one file per key.
package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/notekeeper/pkg/core"
)

// FileExt is appended to a key to build its filename.
const FileExt = ".json"

// Backend implements core.Backend on the filesystem.
type Backend struct {
	Path   string
	config Config

	mu          sync.RWMutex
	watchers    int
	lastWrite   *time.Time
	initialized bool
	writes      int
}

// Config holds the configuration for the filesystem backend.
type Config struct {
	Path         string
	AutoInit     bool // Create Path when missing.
	MustExist    bool // Fail when Path is missing, even with AutoInit.
	ReadOnly     bool
	Logger       *slog.Logger
	ErrorHandler func(error) // Receives watcher errors; they are logged otherwise.
}

// NewBackend creates a new filesystem-backed store.
func NewBackend(config Config) *Backend {
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	return &Backend{
		Path:   config.Path,
		config: config,
	}
}

// Initialize performs the necessary setup (mkdir).
func (b *Backend) Initialize(ctx context.Context) error {
	info, err := os.Stat(b.Path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("data path is not a directory: %s", b.Path)
		}
	case os.IsNotExist(err):
		if b.config.MustExist || !b.config.AutoInit {
			return fmt.Errorf("data path does not exist: %s", b.Path)
		}
		if b.config.ReadOnly {
			return core.ErrReadOnly
		}
		if err := os.MkdirAll(b.Path, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
		b.config.Logger.Debug("data directory created", "path", b.Path)
	default:
		return fmt.Errorf("failed to stat data path: %w", err)
	}

	b.mu.Lock()
	b.initialized = true
	b.mu.Unlock()
	return nil
}

// filename maps a key to its file, rejecting keys that would escape Path.
func (b *Backend) filename(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("key is empty")
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(b.Path, key+FileExt), nil
}

// keyOf maps a filename back to its key. ok is false for foreign files.
func keyOf(name string) (key string, ok bool) {
	base := filepath.Base(name)
	if strings.HasPrefix(base, TempFilePrefix) || !strings.HasSuffix(base, FileExt) {
		return "", false
	}
	return strings.TrimSuffix(base, FileExt), true
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := b.filename(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, core.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// Set writes the value atomically (temp file + rename).
func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if b.config.ReadOnly {
		return core.ErrReadOnly
	}
	path, err := b.filename(key)
	if err != nil {
		return err
	}

	if err := writeFileAtomic(path, value, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	now := time.Now()
	b.mu.Lock()
	b.lastWrite = &now
	b.writes++
	b.mu.Unlock()

	b.config.Logger.Debug("key written", "key", key, "bytes", len(value))
	return nil
}

func (b *Backend) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if b.config.ReadOnly {
		return core.ErrReadOnly
	}
	path, err := b.filename(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Keys lists the stored keys.
func (b *Backend) Keys(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(b.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}
	var keys []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if key, ok := keyOf(e.Name()); ok {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

var (
	_ core.Backend     = (*Backend)(nil)
	_ core.Initializer = (*Backend)(nil)
	_ core.Watchable   = (*Backend)(nil)
)
