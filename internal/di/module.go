package di

import (
	"go.uber.org/fx"

	"github.com/zendocod/zendo/internal/adapter/telegram"
	"github.com/zendocod/zendo/internal/app"
	"github.com/zendocod/zendo/internal/config"
	"github.com/zendocod/zendo/internal/logger"
	"github.com/zendocod/zendo/internal/notify"
	"github.com/zendocod/zendo/internal/server/http/handlers"
	"github.com/zendocod/zendo/internal/server/http/router"
	"github.com/zendocod/zendo/internal/storage/postgres"
	"github.com/zendocod/zendo/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		telegram.Module,
		notify.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.StoreFacade) handlers.StoreFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
