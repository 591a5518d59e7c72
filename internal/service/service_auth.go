package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-messagely/internal/config"
	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/store"
	"github.com/MKhiriev/go-messagely/internal/utils"
	"github.com/MKhiriev/go-messagely/models"
)

// dummyPassword is hashed once at construction. Verify compares against
// that hash when the username is unknown so both paths cost one bcrypt
// comparison.
const dummyPassword = "messagely-dummy-password"

// authService is the concrete implementation of AuthService.
type authService struct {
	// userRepository persists accounts and their password hashes.
	userRepository store.UserRepository

	// hashCost is the bcrypt cost used for new hashes.
	hashCost int

	// dummyHash has the same cost as real hashes.
	dummyHash string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given
// UserRepository. It fails only if the dummy hash cannot be computed, which
// happens when cfg.PasswordHashCost is outside the bcrypt range.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) (AuthService, error) {
	dummyHash, err := utils.HashPassword(dummyPassword, cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("error computing dummy password hash: %w", err)
	}

	return &authService{
		userRepository: userRepository,
		hashCost:       cfg.PasswordHashCost,
		dummyHash:      dummyHash,
		logger:         logger,
	}, nil
}

// Register hashes the raw password with a fresh salt and stores the account.
//
// Returns:
//   - ErrInvalidArgument if username or password is empty, or the password
//     exceeds the bcrypt input limit.
//   - ErrDuplicateIdentity if the username is already taken.
func (a *authService) Register(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" || user.Password == "" {
		log.Error().Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: username and password are required", ErrInvalidArgument)
	}

	hash, err := utils.HashPassword(user.Password, a.hashCost)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user.HashedPassword = hash
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, mapStoreError(err)
	}

	registeredUser.Password = ""
	registeredUser.HashedPassword = ""
	return registeredUser, nil
}

// Verify compares password with the stored hash of username.
//
// A mismatch is (false, nil). An unknown username is (false, ErrNotFound),
// reported only after a comparison against the dummy hash.
func (a *authService) Verify(ctx context.Context, username, password string) (bool, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		_, _ = utils.CheckPassword(a.dummyHash, password)
		return false, mapStoreError(err)
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return false, fmt.Errorf("user search by username failed: %w", err)
	}

	ok, err := utils.CheckPassword(foundUser.HashedPassword, password)
	if err != nil {
		log.Err(err).Str("username", username).Msg("stored password hash is unusable")
		return false, fmt.Errorf("password check failed: %w", err)
	}

	return ok, nil
}

// TouchLogin records a successful authentication of username.
func (a *authService) TouchLogin(ctx context.Context, username string) (time.Time, error) {
	lastLogin, err := a.userRepository.UpdateLastLogin(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("updating last login failed")
		return time.Time{}, mapStoreError(err)
	}

	return lastLogin, nil
}

// Login verifies credentials and, on success, touches the login time.
//
// Returns ErrNotFound for an unknown username and ErrWrongPassword for a
// mismatch. Callers exposing the result to clients should not tell the two
// apart.
func (a *authService) Login(ctx context.Context, username, password string) (time.Time, error) {
	ok, err := a.Verify(ctx, username, password)
	if err != nil {
		return time.Time{}, err
	}
	if !ok {
		logger.FromContext(ctx).Warn().Str("username", username).Msg("wrong password")
		return time.Time{}, ErrWrongPassword
	}

	return a.TouchLogin(ctx, username)
}
