package service

import (
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

type Services struct {
	AuthService    AuthService
	ItemService    ItemService
	AppInfoService AppInfoService
	HealthService  HealthService
}

// NewServices wires the services over storages. The item service is wrapped
// by the validation decorator.
func NewServices(storages *store.Storages, hasher PasswordHasher, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	idGenerator := utils.NewUUIDGenerator()

	itemService := NewItemService(storages.ItemRepository, idGenerator, logger)
	itemService = NewItemValidationService().Wrap(itemService)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, idGenerator, cfg.App, logger),
		ItemService:    itemService,
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages, logger),
	}, nil
}
