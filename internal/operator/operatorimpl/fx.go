package operatorimpl

import (
	"github.com/twxfilter/twx-catalog/internal/operator"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	fx.Annotate(
		New,
		fx.As(new(operator.Client)),
	),
)
