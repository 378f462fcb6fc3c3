package app

import (
	"context"
	"fmt"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/newthinker/boxoffice/internal/aggregate"
	"github.com/newthinker/boxoffice/internal/config"
	"github.com/newthinker/boxoffice/internal/core"
	"github.com/newthinker/boxoffice/internal/dataset"
	"github.com/newthinker/boxoffice/internal/metrics"
	"github.com/newthinker/boxoffice/internal/storage/object"
	"github.com/newthinker/boxoffice/internal/view"
	"go.uber.org/zap"
)

// Stats describes the loaded dataset
type Stats struct {
	Path     string         `json:"path"`
	Rows     int            `json:"rows"`
	Movies   int            `json:"movies"`
	Excluded int            `json:"excluded"`
	Skipped  int            `json:"skipped"`
	Pairs    int            `json:"pairs"`
	Genres   int            `json:"genres"`
	Years    core.YearRange `json:"years"`
	LoadedAt time.Time      `json:"loaded_at"`
}

// App wires the dataset into the view base. The base is built once by
// Load and is read-only afterwards.
type App struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics *metrics.Registry
	store   object.Store

	mu    sync.RWMutex
	base  *view.Base
	stats Stats
}

// Option configures an App
type Option func(*App)

// WithMetrics records dataset and render metrics into reg
func WithMetrics(reg *metrics.Registry) Option {
	return func(a *App) { a.metrics = reg }
}

// WithStore overrides the object store built from config
func WithStore(store object.Store) Option {
	return func(a *App) { a.store = store }
}

// New creates a new App instance
func New(cfg *config.Config, logger *zap.Logger, opts ...Option) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &App{cfg: cfg, logger: logger}
	for _, opt := range opts {
		opt(a)
	}

	if a.store == nil {
		store, err := NewStore(cfg.Dataset)
		if err != nil {
			return nil, err
		}
		a.store = store
	}

	return a, nil
}

// NewStore builds the object store named by the dataset source
func NewStore(cfg config.DatasetConfig) (object.Store, error) {
	switch cfg.Source {
	case config.SourceLocalFS, "":
		store, err := object.NewLocalFS(cfg.BaseDir)
		if err != nil {
			return nil, core.WrapError(core.ErrDatasetUnavailable, err)
		}
		return store, nil
	case config.SourceS3:
		store, err := object.NewS3(object.S3Config{
			Bucket:    cfg.S3.Bucket,
			Endpoint:  cfg.S3.Endpoint,
			Region:    cfg.S3.Region,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Prefix:    cfg.S3.Prefix,
		})
		if err != nil {
			return nil, core.WrapError(core.ErrConfigInvalid, err)
		}
		return store, nil
	default:
		return nil, core.WrapError(core.ErrConfigInvalid, fmt.Errorf("unknown dataset source %q", cfg.Source))
	}
}

// Load reads the dataset and builds the aggregate. It fails if the
// dataset cannot be read or parsed.
func (a *App) Load(ctx context.Context) error {
	start := time.Now()
	loader := dataset.NewLoader(a.store, a.cfg.DatasetOptions(), a.logger)

	res, err := loader.Load(ctx, a.cfg.Dataset.Path)
	if err != nil {
		a.recordLoad("error")
		return err
	}

	table := aggregate.Aggregate(res.Movies)
	base := view.NewBase(table)

	stats := Stats{
		Path:     a.cfg.Dataset.Path,
		Rows:     res.Rows,
		Movies:   len(res.Movies),
		Excluded: res.Excluded,
		Skipped:  res.Skipped,
		Pairs:    table.Len(),
		Genres:   len(table.Genres()),
		Years:    table.Years(),
		LoadedAt: time.Now(),
	}

	a.mu.Lock()
	a.base = base
	a.stats = stats
	a.mu.Unlock()

	a.recordLoad("ok")
	if a.metrics != nil {
		a.metrics.SetDatasetRows(stats.Rows, stats.Movies, stats.Excluded, stats.Skipped)
		a.metrics.SetAggregateSize(stats.Pairs, stats.Genres)
	}

	if table.Len() == 0 {
		a.logger.Warn("dataset has no aggregatable rows", zap.String("path", stats.Path))
	}
	a.logger.Info("aggregate built",
		zap.Int("pairs", stats.Pairs),
		zap.Int("genres", stats.Genres),
		zap.Int("min_year", stats.Years.Min),
		zap.Int("max_year", stats.Years.Max),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

func (a *App) recordLoad(status string) {
	if a.metrics != nil {
		a.metrics.RecordDatasetLoad(status)
	}
}

// Base returns the view base, or an ErrNoData error before Load succeeds
func (a *App) Base() (*view.Base, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.base == nil {
		return nil, core.WrapError(core.ErrNoData, fmt.Errorf("dataset not loaded"))
	}
	return a.base, nil
}

// Render dispatches a snapshot to the named view
func (a *App) Render(name string, snap view.Snapshot) (view.Descriptor, error) {
	base, err := a.Base()
	if err != nil {
		return view.Descriptor{}, err
	}

	start := time.Now()
	desc, err := view.Render(base, name, snap)
	if err != nil {
		return view.Descriptor{}, err
	}

	if a.metrics != nil {
		a.metrics.RecordViewRender(name, time.Since(start).Seconds())
	}
	a.logger.Debug("view rendered",
		zap.String("view", name),
		zap.String("tab", snap.Tab),
		zap.Int("min_year", snap.Years.Min),
		zap.Int("max_year", snap.Years.Max),
		zap.Strings("genres", snap.Genres),
	)
	return desc, nil
}

// Controls returns the dashboard control description
func (a *App) Controls() (view.Controls, error) {
	base, err := a.Base()
	if err != nil {
		return view.Controls{}, err
	}
	return base.Controls(a.cfg.Dashboard.MarkStep), nil
}

// Stats returns statistics of the last successful load
func (a *App) Stats() Stats {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.stats
}

// Loaded reports whether a dataset has been loaded
func (a *App) Loaded() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.base != nil
}

// Datasets lists the CSV files available in the object store under prefix.
func (a *App) Datasets(ctx context.Context, prefix string) ([]string, error) {
	paths, err := a.store.List(ctx, prefix)
	if err != nil {
		return nil, core.WrapError(core.ErrDatasetUnavailable, fmt.Errorf("listing %q: %w", prefix, err))
	}

	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if strings.EqualFold(path.Ext(p), ".csv") {
			out = append(out, p)
		}
	}
	return out, nil
}

