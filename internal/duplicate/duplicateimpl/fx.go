package duplicateimpl

import (
	"github.com/twxfilter/twx-catalog/internal/duplicate"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	fx.Annotate(
		New,
		fx.As(new(duplicate.Grouper)),
	),
)
