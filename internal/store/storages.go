package store

import "github.com/MKhiriev/go-messagely/internal/logger"

// Storages groups every repository the service layer depends on.
type Storages struct {
	UserRepository    UserRepository
	MessageRepository MessageRepository
}

// NewStorages builds all repositories over one shared connection pool.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		MessageRepository: NewMessageRepository(db, logger),
	}
}
