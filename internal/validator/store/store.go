package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/shandysiswandi/intaker/internal/validator/usecase"
)

const (
	DriverS3     = "s3"
	DriverMinio  = "minio"
	DriverMemory = "memory"
)

// Config selects and configures the sink driver.
type Config struct {
	Driver         string
	Bucket         string
	Region         string
	Endpoint       string
	AccessKey      string
	SecretKey      string
	UseSSL         bool
	ForcePathStyle bool
}

// Open constructs the sink named by cfg.Driver. An empty driver means s3.
func Open(ctx context.Context, cfg Config) (usecase.Sink, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DriverS3:
		return NewS3Store(ctx, cfg)
	case DriverMinio:
		return NewMinioStore(cfg)
	case DriverMemory:
		return NewInMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
