package service

import (
	"github.com/MKhiriev/go-post-keeper/internal/config"
	"github.com/MKhiriev/go-post-keeper/internal/logger"
	"github.com/MKhiriev/go-post-keeper/internal/store"
	"github.com/MKhiriev/go-post-keeper/internal/validators"
	"github.com/MKhiriev/go-post-keeper/models"
)

type Services struct {
	AuthService    AuthService
	PostService    PostService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, mail MailDispatcher, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	postService := NewPostValidationService(validator).Wrap(NewPostService(storages.PostRepository, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, mail, validator, cfg.App, logger),
		PostService:    postService,
		AppInfoService: appInfoService,
	}, nil
}
