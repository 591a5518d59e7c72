package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// database-assigned join_at.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.QueryRowContext(ctx, createUser,
		user.Username, user.HashedPassword, user.FirstName, user.LastName, user.Phone,
	).Scan(&created.Username, &created.FirstName, &created.LastName, &created.Phone, &created.JoinAt, &created.LastLoginAt)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("username is taken")
			return models.User{}, ErrUsernameAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	created.HashedPassword = user.HashedPassword
	return created, nil
}

// FindUserByUsername retrieves a user record including its password hash.
// sql.ErrNoRows is reported as [ErrNoUserWasFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, findUserByUsername, username).Scan(
			&found.Username,
			&found.HashedPassword,
			&found.FirstName,
			&found.LastName,
			&found.Phone,
			&found.JoinAt,
			&found.LastLoginAt,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// UpdateLastLogin stamps last_login_at with the database clock for exactly
// one row.
func (r *userRepository) UpdateLastLogin(ctx context.Context, username string) (time.Time, error) {
	log := logger.FromContext(ctx)

	var lastLoginAt time.Time
	err := r.db.QueryRowContext(ctx, updateLastLogin, username).Scan(&lastLoginAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateLastLogin").Msg("error updating last login")
		return time.Time{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return lastLoginAt, nil
}

// ListUsers returns the public summary of every user in registration order.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var users []models.UserSummary
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		users = make([]models.UserSummary, 0, 16)
		for rows.Next() {
			var u models.UserSummary
			if err := rows.Scan(&u.Username, &u.FirstName, &u.LastName, &u.Phone); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			users = append(users, u)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, err
	}

	return users, nil
}

// UserExists reports whether username is registered.
func (r *userRepository) UserExists(ctx context.Context, username string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, userExists, username).Scan(&exists)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UserExists").Msg("error checking user existence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}
