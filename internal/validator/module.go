package validator

import (
	"context"

	"github.com/shandysiswandi/intaker/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/intaker/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/intaker/internal/pkg/pkguid"
	"github.com/shandysiswandi/intaker/internal/validator/inbound"
	"github.com/shandysiswandi/intaker/internal/validator/store"
	"github.com/shandysiswandi/intaker/internal/validator/usecase"
)

type Dependency struct {
	Config  pkgconfig.Config
	Router  *pkgrouter.Router
	Context context.Context
	ID      pkguid.NumberID
}

func New(dep Dependency) (func(context.Context) error, error) {
	ctx := dep.Context
	if ctx == nil {
		ctx = context.Background()
	}

	sink, err := store.Open(ctx, store.Config{
		Driver:         dep.Config.GetString("modules.validator.storage.driver"),
		Bucket:         dep.Config.GetString("modules.validator.storage.bucket"),
		Region:         dep.Config.GetString("modules.validator.storage.region"),
		Endpoint:       dep.Config.GetString("modules.validator.storage.endpoint"),
		AccessKey:      dep.Config.GetString("modules.validator.storage.access_key"),
		SecretKey:      dep.Config.GetString("modules.validator.storage.secret_key"),
		UseSSL:         dep.Config.GetBool("modules.validator.storage.use_ssl"),
		ForcePathStyle: dep.Config.GetBool("modules.validator.storage.force_path_style"),
	})
	if err != nil {
		return nil, err
	}

	uc := usecase.New(usecase.Dependency{
		Sink:      sink,
		KeyPrefix: dep.Config.GetString("modules.validator.storage.key_prefix"),
		ID:        dep.ID,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, dep.Config.GetString("modules.validator.invocation_path"), uc)

	return nil, nil
}
