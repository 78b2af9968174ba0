package catalogimpl

import (
	"github.com/twxfilter/twx-catalog/internal/catalog"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	fx.Annotate(
		New,
		fx.As(new(catalog.Store)),
	),
)
