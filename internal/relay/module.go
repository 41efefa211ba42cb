package relay

import (
	"context"
	"errors"
	"net/http"

	"github.com/shandysiswandi/intaker/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/intaker/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/intaker/internal/relay/inbound"
	"github.com/shandysiswandi/intaker/internal/relay/outbound"
	"github.com/shandysiswandi/intaker/internal/relay/usecase"
)

type Dependency struct {
	Config pkgconfig.Config
	Router *pkgrouter.Router
	Client *http.Client
}

func New(dep Dependency) (func(context.Context) error, error) {
	url := dep.Config.GetString("modules.relay.downstream_url")
	if url == "" {
		return nil, errors.New("modules.relay.downstream_url is required")
	}

	client := dep.Client
	if client == nil {
		client = &http.Client{}
	}

	uc := usecase.New(usecase.Dependency{
		Invoker: outbound.NewHTTPInvoker(client, url),
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return func(context.Context) error {
		client.CloseIdleConnections()
		return nil
	}, nil
}
