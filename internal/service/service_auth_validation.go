package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-messagely/internal/validators"
	"github.com/MKhiriev/go-messagely/models"
)

// AuthValidationService checks registration and login input before it
// reaches the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewMessagingValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, mapValidationError(err)
	}

	return v.inner.Register(ctx, user)
}

func (v *AuthValidationService) Verify(ctx context.Context, username, password string) (bool, error) {
	return v.inner.Verify(ctx, username, password)
}

func (v *AuthValidationService) TouchLogin(ctx context.Context, username string) (time.Time, error) {
	return v.inner.TouchLogin(ctx, username)
}

func (v *AuthValidationService) Login(ctx context.Context, username, password string) (time.Time, error) {
	req := models.LoginRequest{Username: username, Password: password}
	if err := v.validator.Validate(ctx, req); err != nil {
		return time.Time{}, mapValidationError(err)
	}

	return v.inner.Login(ctx, username, password)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}
