package outbound

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/shandysiswandi/intaker/internal/pkg/pkglog"
	"github.com/shandysiswandi/intaker/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/intaker/internal/relay/entity"
)

// HTTPInvoker posts envelopes to a fixed function invocation URL. It has no
// timeout of its own; only the caller's context bounds a call.
type HTTPInvoker struct {
	client *http.Client
	url    string
}

func NewHTTPInvoker(client *http.Client, url string) *HTTPInvoker {
	if client == nil {
		client = &http.Client{}
	}

	return &HTTPInvoker{client: client, url: url}
}

func (i *HTTPInvoker) Invoke(ctx context.Context, payload []byte) (entity.Reply, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.url, bytes.NewReader(payload))
	if err != nil {
		return entity.Reply{}, fmt.Errorf("build invocation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if cid := pkglog.GetCorrelationID(ctx); cid != "" && cid != "[invalid_chain_id]" {
		req.Header.Set(pkgrouter.HeaderCorrelationID, cid)
	}

	resp, err := i.client.Do(req)
	if err != nil {
		return entity.Reply{}, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.Reply{}, fmt.Errorf("read invocation response: %w", err)
	}

	return entity.Reply{Status: resp.StatusCode, Body: body}, nil
}
