package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-messagely/internal/config"
	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/utils"
	"github.com/MKhiriev/go-messagely/models"
)

// sessionService signs and recovers HS256 session tokens. It keeps no
// state besides its configuration.
type sessionService struct {
	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in and required from tokens.
	tokenIssuer string

	// tokenDuration is the lifetime of a newly issued token.
	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewSessionService constructs a SessionService using the wall clock.
func NewSessionService(cfg config.App, logger *logger.Logger) SessionService {
	return newSessionService(cfg, time.Now, logger)
}

func newSessionService(cfg config.App, now func() time.Time, logger *logger.Logger) *sessionService {
	return &sessionService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           now,
		logger:        logger,
	}
}

// Issue mints a token for username valid until now + tokenDuration.
func (s *sessionService) Issue(ctx context.Context, username string) (models.Token, error) {
	if username == "" {
		return models.Token{}, fmt.Errorf("%w: username is required", ErrInvalidArgument)
	}

	token, err := utils.GenerateJWTToken(s.tokenIssuer, username, s.tokenDuration, s.tokenSignKey, s.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("token generation failed: %w", err)
	}

	return token, nil
}

// Recover verifies the signature and claims of token and returns its
// subject.
func (s *sessionService) Recover(ctx context.Context, token string) (string, error) {
	parsed, err := utils.ValidateAndParseJWTToken(token, s.tokenSignKey, s.tokenIssuer, s.now())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return "", mapTokenError(err)
	}

	return parsed.Username, nil
}
