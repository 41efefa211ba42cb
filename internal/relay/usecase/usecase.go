package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shandysiswandi/intaker/internal/pkg/pkgenvelope"
	"github.com/shandysiswandi/intaker/internal/relay/entity"
)

// Invoker sends an encoded envelope to the validation function.
type Invoker interface {
	Invoke(ctx context.Context, payload []byte) (entity.Reply, error)
}

type Dependency struct {
	Invoker Invoker
}

type Usecase struct {
	invoker Invoker
}

func New(dep Dependency) *Usecase {
	return &Usecase{invoker: dep.Invoker}
}

// ForwardResult is always valid JSON: the downstream body verbatim, or a
// RawFallback when the downstream did not answer with JSON.
type ForwardResult struct {
	Body     json.RawMessage
	Fallback bool
}

// Forward wraps the upload in an envelope, invokes the function and returns
// its answer. It never fails: transport and decoding problems are folded into
// a RawFallback body.
func (u *Usecase) Forward(ctx context.Context, filename string, content []byte) ForwardResult {
	payload, err := json.Marshal(pkgenvelope.Envelope{Filename: filename, FileBytes: content})
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode envelope", "filename", filename, "error", err)
		return fallback(err.Error(), http.StatusInternalServerError)
	}

	if u.invoker == nil {
		return fallback("downstream invoker is not configured", http.StatusBadGateway)
	}

	reply, err := u.invoker.Invoke(ctx, payload)
	if err != nil {
		slog.ErrorContext(ctx, "failed to invoke downstream", "filename", filename, "error", err)
		return fallback(err.Error(), http.StatusBadGateway)
	}

	body, err := relayable(reply)
	if errors.Is(err, entity.ErrDownstreamUnparseable) {
		slog.WarnContext(ctx, "relaying raw downstream response",
			"filename", filename,
			"status", reply.Status,
			"bytes", len(reply.Body),
			"error", err,
		)
		return fallback(string(reply.Body), reply.Status)
	}

	slog.InfoContext(ctx, "relayed downstream response", "filename", filename, "status", reply.Status)

	return ForwardResult{Body: body}
}

// relayable returns the downstream body when it is a JSON value, and an error
// wrapping entity.ErrDownstreamUnparseable otherwise.
func relayable(reply entity.Reply) (json.RawMessage, error) {
	if !json.Valid(reply.Body) {
		return nil, fmt.Errorf("status %d, %d bytes: %w", reply.Status, len(reply.Body), entity.ErrDownstreamUnparseable)
	}

	return json.RawMessage(reply.Body), nil
}

func fallback(raw string, status int) ForwardResult {
	data, err := json.Marshal(entity.RawFallback{Raw: raw, Status: status})
	if err != nil {
		data = []byte(`{"raw":"","status":0}`)
	}

	return ForwardResult{Body: data, Fallback: true}
}
