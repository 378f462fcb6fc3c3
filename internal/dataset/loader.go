package dataset

import (
	"context"
	"fmt"

	"github.com/newthinker/boxoffice/internal/core"
	"github.com/newthinker/boxoffice/internal/storage/object"
	"go.uber.org/zap"
)

// Loader reads a dataset from an object store
type Loader struct {
	store  object.Store
	opts   Options
	logger *zap.Logger
}

// NewLoader creates a loader over store
func NewLoader(store object.Store, opts Options, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{store: store, opts: opts, logger: logger}
}

// Load reads and parses the CSV at path
func (l *Loader) Load(ctx context.Context, path string) (*Result, error) {
	ok, err := l.store.Exists(ctx, path)
	if err != nil {
		return nil, core.WrapError(core.ErrDatasetUnavailable, fmt.Errorf("checking %s: %w", path, err))
	}
	if !ok {
		return nil, core.WrapError(core.ErrDatasetUnavailable, fmt.Errorf("%s not found", path))
	}

	data, err := l.store.Read(ctx, path)
	if err != nil {
		return nil, core.WrapError(core.ErrDatasetUnavailable, fmt.Errorf("reading %s: %w", path, err))
	}

	res, err := Parse(data, l.opts)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	l.logger.Info("dataset loaded",
		zap.String("path", path),
		zap.Int("rows", res.Rows),
		zap.Int("movies", len(res.Movies)),
		zap.Int("excluded", res.Excluded),
		zap.Int("skipped", res.Skipped),
	)

	return res, nil
}
