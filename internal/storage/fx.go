package storage

import (
	"context"

	"github.com/twxfilter/twx-catalog/pkg/config"
	"github.com/twxfilter/twx-catalog/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	LC     fx.Lifecycle
	Logger logger.Logger
	Config *config.Config
}

// New creates the SQLite-backed store and manages its lifecycle.
func New(opts Opts) (Store, error) {
	store, err := NewSqliteStore(opts.Config.Storage.Path)
	if err != nil {
		return nil, err
	}

	opts.LC.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			opts.Logger.Info("Opened catalog storage", "path", opts.Config.Storage.Path)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

var Module = fx.Provide(New)
