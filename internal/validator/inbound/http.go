package inbound

import (
	"context"

	"github.com/shandysiswandi/intaker/internal/pkg/pkgenvelope"
	"github.com/shandysiswandi/intaker/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/intaker/internal/validator/entity"
)

// DefaultInvocationPath mirrors the path of a locally emulated function runtime.
const DefaultInvocationPath = "/2015-03-31/functions/function/invocations"

type uc interface {
	Handle(ctx context.Context, env pkgenvelope.Envelope) entity.Outcome
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, path string, uc uc) {
	if path == "" {
		path = DefaultInvocationPath
	}

	end := &HTTPEndpoint{uc: uc}

	r.POST(path, end.Invoke)
}
