package notify

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/zendocod/zendo/internal/adapter/telegram"
	"github.com/zendocod/zendo/internal/config"
)

// Module exposes the notification dispatcher to the fx graph.
var Module = fx.Provide(newDispatcher)

type dispatcherParams struct {
	fx.In

	Client telegram.Client
	Config *config.Config
	Logger *slog.Logger
}

func newDispatcher(p dispatcherParams) *Dispatcher {
	return NewDispatcher(p.Client, p.Config.TelegramChatIDs, p.Config.DispatchTimeout, p.Logger)
}
