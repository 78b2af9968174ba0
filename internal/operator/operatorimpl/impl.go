package operatorimpl

import (
	"github.com/twxfilter/twx-catalog/internal/backend"
	"github.com/twxfilter/twx-catalog/internal/catalog"
	"github.com/twxfilter/twx-catalog/internal/duplicate"
	"github.com/twxfilter/twx-catalog/internal/operator"
	"github.com/twxfilter/twx-catalog/internal/render"
	"github.com/twxfilter/twx-catalog/internal/storage"
	"github.com/twxfilter/twx-catalog/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Catalog   catalog.Store
	Backend   backend.Client
	Duplicate duplicate.Grouper
	Renderer  render.Renderer
	Storage   storage.Store
	Logger    logger.Logger
}

type OperatorImpl struct {
	Catalog   catalog.Store
	Backend   backend.Client
	Duplicate duplicate.Grouper
	Renderer  render.Renderer
	Storage   storage.Store
	Logger    logger.Logger
}

func New(opts Opts) *OperatorImpl {
	return &OperatorImpl{
		Catalog:   opts.Catalog,
		Backend:   opts.Backend,
		Duplicate: opts.Duplicate,
		Renderer:  opts.Renderer,
		Storage:   opts.Storage,
		Logger:    opts.Logger,
	}
}

var _ operator.Client = (*OperatorImpl)(nil)
