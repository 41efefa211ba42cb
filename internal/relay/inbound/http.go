package inbound

import (
	"context"

	"github.com/shandysiswandi/intaker/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/intaker/internal/relay/usecase"
)

type uc interface {
	Forward(ctx context.Context, filename string, content []byte) usecase.ForwardResult
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/upload", end.Upload, pkgrouter.AllowAnyOrigin)
}
