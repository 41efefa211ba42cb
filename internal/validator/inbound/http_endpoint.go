package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/shandysiswandi/intaker/internal/pkg/pkgenvelope"
	"github.com/shandysiswandi/intaker/internal/pkg/pkgerror"
	"github.com/shandysiswandi/intaker/internal/validator/entity"
)

var errEmptyBody = errors.New("empty request body")

type HTTPEndpoint struct {
	uc uc
}

// Invoke decodes the envelope and answers with the outcome as the response
// body. The HTTP status is always 200; the outcome carries the result.
func (h *HTTPEndpoint) Invoke(ctx context.Context, r *http.Request) (any, error) {
	env, err := decodeEnvelope(r)
	if err != nil {
		return InvocationResponse{Outcome: payloadOutcome(err)}, nil
	}

	return InvocationResponse{Outcome: h.uc.Handle(ctx, env)}, nil
}

func decodeEnvelope(r *http.Request) (pkgenvelope.Envelope, error) {
	var env pkgenvelope.Envelope
	if r.Body == nil {
		return env, pkgerror.NewInvalidPayload(errEmptyBody)
	}

	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		if errors.Is(err, io.EOF) {
			err = errEmptyBody
		}
		return env, pkgerror.NewInvalidPayload(err)
	}

	return env, nil
}

// payloadOutcome turns a decoding failure into a rejected outcome carrying
// the decoder's detail.
func payloadOutcome(err error) entity.Outcome {
	var gerr *pkgerror.Error
	if errors.As(err, &gerr) && gerr.Code() == pkgerror.CodeInvalidPayload {
		return entity.Outcome{StatusCode: gerr.StatusCode(), Body: entity.MsgInvalidPayloadPrefix + gerr.Error()}
	}

	return entity.Failed(entity.MsgInvalidPayloadPrefix + err.Error())
}
