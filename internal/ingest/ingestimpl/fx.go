package ingestimpl

import (
	"github.com/twxfilter/twx-catalog/internal/ingest"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	fx.Annotate(
		New,
		fx.As(new(ingest.Client)),
	),
)
