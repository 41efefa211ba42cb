package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/intaker/internal/pkg/pkgenvelope"
	"github.com/shandysiswandi/intaker/internal/pkg/pkguid"
	"github.com/shandysiswandi/intaker/internal/validator/entity"
)

// DefaultKeyPrefix is prepended to the filename to build the object key.
const DefaultKeyPrefix = "intaker/"

// Sink is the write-only blob store accepted files are written to.
type Sink interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
}

type Dependency struct {
	Sink      Sink
	KeyPrefix string
	Schema    entity.Schema
	ID        pkguid.NumberID
}

type Usecase struct {
	sink      Sink
	keyPrefix string
	schema    entity.Schema
	id        pkguid.NumberID
}

func New(dep Dependency) *Usecase {
	prefix := dep.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	schema := dep.Schema
	if len(schema) == 0 {
		schema = entity.DefaultSchema()
	}

	return &Usecase{
		sink:      dep.Sink,
		keyPrefix: prefix,
		schema:    schema,
		id:        dep.ID,
	}
}

// Validate runs the format, emptiness, encoding, parse and schema checks in
// order and returns the first failure as a *Rejection.
func (u *Usecase) Validate(env pkgenvelope.Envelope) error {
	if !isExpectedFormat(env.Filename) {
		return reject(ErrInputFormat, nil)
	}

	if !isNonEmpty(env.FileBytes) {
		return reject(ErrEmptyInput, nil)
	}

	if !isUTF8(env.FileBytes) {
		return reject(ErrEncoding, nil)
	}

	tbl, err := readCSV(string(env.FileBytes))
	if err != nil {
		return reject(ErrParse, err)
	}

	if err := castTable(tbl, u.schema); err != nil {
		return reject(ErrSchema, err)
	}

	return nil
}

// Key returns the object key a file with this name is stored under.
func (u *Usecase) Key(filename string) string {
	return u.keyPrefix + filename
}

// Handle validates env and, only if every check passes, stores the original
// bytes. It never returns an error: every failure becomes an Outcome.
func (u *Usecase) Handle(ctx context.Context, env pkgenvelope.Envelope) entity.Outcome {
	logger := slog.With("filename", env.Filename, "size", len(env.FileBytes))
	if u.id != nil {
		logger = logger.With("invocation_id", u.id.Generate())
	}

	if err := u.Validate(env); err != nil {
		return u.rejected(ctx, logger, err)
	}

	if u.sink == nil {
		return u.rejected(ctx, logger, reject(ErrStorage, errors.New("storage sink is not configured")))
	}

	key := u.Key(env.Filename)
	if err := u.sink.Put(ctx, key, env.FileBytes, entity.ContentTypeCSV); err != nil {
		return u.rejected(ctx, logger, reject(ErrStorage, err))
	}

	logger.InfoContext(ctx, "file validated and stored", "key", key)

	return entity.Accepted()
}

func (u *Usecase) rejected(ctx context.Context, logger *slog.Logger, err error) entity.Outcome {
	var rej *Rejection
	if !errors.As(err, &rej) {
		rej = reject(ErrStorage, err)
	}

	out := rej.Outcome()
	if errors.Is(rej, ErrStorage) {
		logger.ErrorContext(ctx, "failed to store file", "error", rej)
	} else {
		logger.WarnContext(ctx, "file rejected", "status_code", out.StatusCode, "reason", rej)
	}

	return out
}
