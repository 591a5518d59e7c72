package service

import (
	"fmt"

	"github.com/MKhiriev/go-messagely/internal/config"
	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/store"
)

type Services struct {
	AuthService    AuthService
	SessionService SessionService
	UserService    UserService
	MessageService MessageService
	AppInfoService AppInfoService
}

// NewServices builds every service over storages. Auth and message services
// are wrapped with input validation.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(storages.UserRepository, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	messageService := NewMessageService(storages.MessageRepository, storages.UserRepository, logger)

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(authService),
		SessionService: NewSessionService(cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, logger),
		MessageService: NewMessageValidationService().Wrap(messageService),
		AppInfoService: appInfoService,
	}, nil
}
