package service

import (
	"context"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/store"
	"github.com/MKhiriev/go-messagely/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ListAll returns every user in registration order. An empty directory is
// an empty, non-nil slice.
func (s *userService) ListAll(ctx context.Context) ([]models.UserSummary, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing users failed")
		return nil, mapStoreError(err)
	}
	if users == nil {
		users = []models.UserSummary{}
	}

	return users, nil
}

// Get returns the public profile of username.
func (s *userService) Get(ctx context.Context, username string) (models.UserProfile, error) {
	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("user lookup failed")
		return models.UserProfile{}, mapStoreError(err)
	}

	return models.UserProfile{
		UserSummary: user.Summary(),
		JoinAt:      user.JoinAt,
		LastLoginAt: user.LastLoginAt,
	}, nil
}
