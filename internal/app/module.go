package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/shandysiswandi/intaker/internal/relay"
	"github.com/shandysiswandi/intaker/internal/validator"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.validator.enabled") {
		closer, err := validator.New(validator.Dependency{
			Config:  a.config,
			Router:  a.router,
			Context: a.ctx,
			ID:      a.snowflake,
		})
		if err != nil {
			slog.Error("failed to init module validator", "error", err)
			os.Exit(1)
		}
		a.addCloser("Validator", closer)
	}

	if a.config.GetBool("modules.relay.enabled") {
		closer, err := relay.New(relay.Dependency{
			Config: a.config,
			Router: a.router,
			Client: a.httpClient,
		})
		if err != nil {
			slog.Error("failed to init module relay", "error", err)
			os.Exit(1)
		}
		a.addCloser("Relay", closer)
	}
}

func (a *App) addCloser(name string, closer func(context.Context) error) {
	if closer == nil {
		return
	}
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}
	a.closerFn[name] = closer
}
