package components

import (
	"royalbike/internal/handler"
	"royalbike/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewCreditHandler,
		api.NewCatalogHandler,
	),
	fx.Invoke(handler.NewRouter),
)
