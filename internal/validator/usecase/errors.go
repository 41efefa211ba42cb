package usecase

import (
	"errors"

	"github.com/shandysiswandi/intaker/internal/validator/entity"
)

var (
	ErrInputFormat = errors.New("input format")
	ErrEmptyInput  = errors.New("empty input")
	ErrEncoding    = errors.New("encoding")
	ErrParse       = errors.New("parse")
	ErrSchema      = errors.New("schema")
	ErrStorage     = errors.New("storage")
)

// Rejection is a failed pipeline stage. Kind is one of the Err* sentinels and
// Detail, when set, carries the underlying parser, cast or sink error.
type Rejection struct {
	Kind   error
	Detail error
}

func reject(kind, detail error) *Rejection {
	return &Rejection{Kind: kind, Detail: detail}
}

func (r *Rejection) Error() string {
	if r.Detail == nil {
		return r.Kind.Error()
	}
	return r.Kind.Error() + ": " + r.Detail.Error()
}

func (r *Rejection) Unwrap() error {
	return r.Kind
}

// Outcome maps the rejection to the response reported to the caller.
func (r *Rejection) Outcome() entity.Outcome {
	switch {
	case errors.Is(r.Kind, ErrInputFormat):
		return entity.Rejected(entity.MsgNotCSV)
	case errors.Is(r.Kind, ErrEmptyInput):
		return entity.Rejected(entity.MsgEmpty)
	case errors.Is(r.Kind, ErrEncoding):
		return entity.Rejected(entity.MsgNotUTF8)
	case errors.Is(r.Kind, ErrParse):
		return entity.Rejected(entity.MsgReadCSVPrefix + r.detail())
	case errors.Is(r.Kind, ErrSchema):
		return entity.Rejected(entity.MsgSchemaPrefix + r.detail())
	default:
		return entity.Failed(entity.MsgUploadPrefix + r.detail())
	}
}

func (r *Rejection) detail() string {
	if r.Detail == nil {
		return r.Kind.Error()
	}
	return r.Detail.Error()
}
