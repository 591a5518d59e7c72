package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-messagely/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts in the "users" table.
type UserRepository interface {
	// CreateUser inserts user with its already hashed password and returns
	// the stored row. A taken username yields [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the full user row including the password
	// hash, or [ErrNoUserWasFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// UpdateLastLogin sets last_login_at to the current database time and
	// returns it, or [ErrNoUserWasFound].
	UpdateLastLogin(ctx context.Context, username string) (time.Time, error)

	// ListUsers returns every user in registration order.
	ListUsers(ctx context.Context) ([]models.UserSummary, error)

	// UserExists reports whether a user with this username is registered.
	UserExists(ctx context.Context, username string) (bool, error)
}

// MessageRepository persists messages in the "messages" table.
type MessageRepository interface {
	// CreateMessage inserts msg; id and sent_at are assigned by the
	// database. A missing participant yields [ErrNoUserWasFound].
	CreateMessage(ctx context.Context, msg models.Message) (models.Message, error)

	// MarkRead atomically sets read_at for message id if reader is its
	// recipient and it is still unread.
	MarkRead(ctx context.Context, id int64, reader string) (models.ReadReceipt, error)

	// GetMessage returns the message with both participants, or
	// [ErrMessageNotFound].
	GetMessage(ctx context.Context, id int64) (models.MessageDetail, error)

	// MessagesFrom returns messages sent by username ordered by sent_at, id.
	MessagesFrom(ctx context.Context, username string) ([]models.SentMessage, error)

	// MessagesTo returns messages received by username ordered by sent_at, id.
	MessagesTo(ctx context.Context, username string) ([]models.ReceivedMessage, error)
}
