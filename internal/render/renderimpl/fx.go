package renderimpl

import (
	"github.com/twxfilter/twx-catalog/internal/render"
	"github.com/twxfilter/twx-catalog/internal/view"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		fx.Annotate(
			view.NewGrid,
			fx.As(new(view.Binder)),
		),
	),
	fx.Provide(
		fx.Annotate(
			New,
			fx.As(new(render.Renderer)),
		),
	),
)
