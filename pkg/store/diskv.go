package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"
)

// Persistence is the key/value contract the record store is built on. Each key
// holds one whole serialized collection.
type Persistence interface {
	// Read returns ErrNotFound when the key has never been written.
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	// Erase is a no-op for absent keys.
	Erase(ctx context.Context, key string) error
	Keys(ctx context.Context) []string
	Watch(ctx context.Context) (<-chan Event, error)
}

// ErrNotFound is returned by Persistence.Read for unknown keys.
var ErrNotFound = errors.New("store: key not found")

const fileSuffix = ".json"

// LoadOption configures the diskv Persistence.
type LoadOption func(*persistence)

// WithWatchLogger sets the logger for watcher failures.
func WithWatchLogger(logger *zap.Logger) LoadOption {
	return func(p *persistence) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config, opts ...LoadOption) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	p := &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	logger   *zap.Logger
}

func (p *persistence) Read(_ context.Context, key string) ([]byte, error) {
	if !p.d.Has(key) {
		return nil, ErrNotFound
	}
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return val, nil
}

func (p *persistence) Write(_ context.Context, key string, data []byte) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("store: key required")
	}
	return p.d.Write(key, data)
}

func (p *persistence) Erase(_ context.Context, key string) error {
	if !p.d.Has(key) {
		return nil
	}
	return p.d.Erase(key)
}

func (p *persistence) Keys(ctx context.Context) []string {
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if key == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Collections are stored flat as <key>.json under the base path.
func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key + fileSuffix,
	}
}

// pathToKeyTransform maps foreign files to the empty key, which Keys skips.
func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) > 0 || !strings.HasSuffix(pathKey.FileName, fileSuffix) {
		return ""
	}
	return strings.TrimSuffix(pathKey.FileName, fileSuffix)
}
