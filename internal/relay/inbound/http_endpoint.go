package inbound

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/shandysiswandi/intaker/internal/pkg/pkgerror"
)

const fileField = "file"

type HTTPEndpoint struct {
	uc uc
}

// Upload reads the "file" part into memory and relays it downstream. Once the
// part is read the response is always 200 with a JSON body.
func (h *HTTPEndpoint) Upload(ctx context.Context, r *http.Request) (any, error) {
	filename, content, err := readFilePart(r)
	if err != nil {
		return nil, err
	}

	result := h.uc.Forward(ctx, filename, content)

	return UploadResponse{body: result.Body}, nil
}

func readFilePart(r *http.Request) (string, []byte, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || !strings.EqualFold(mediaType, "multipart/form-data") {
		return "", nil, pkgerror.NewMissingField(fileField)
	}

	reader, err := r.MultipartReader()
	if err != nil {
		return "", nil, pkgerror.NewInvalidFormat()
	}

	for {
		part, err := reader.NextPart()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", nil, pkgerror.NewMissingField(fileField)
			}
			return "", nil, pkgerror.NewInvalidFormat()
		}

		if part.FormName() != fileField {
			_ = part.Close()
			continue
		}

		content, err := io.ReadAll(part)
		_ = part.Close()
		if err != nil {
			return "", nil, pkgerror.NewInvalidFormat()
		}

		return part.FileName(), content, nil
	}
}
