package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/intaker/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/intaker/internal/pkg/pkglog"
	"github.com/shandysiswandi/intaker/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/intaker/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	uuid      pkguid.StringID
	snowflake pkguid.NumberID

	// resources
	httpClient *http.Client

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	//
	closerFn map[string]func(context.Context) error
}

func New() *App {
	pkglog.InitLogging()

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initLibraries()
	app.initResources()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
