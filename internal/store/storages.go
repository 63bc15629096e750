package store

import (
	"github.com/MKhiriev/go-post-keeper/internal/logger"
	"github.com/MKhiriev/go-post-keeper/internal/utils"
)

// Storages groups the repositories handed to the service layer.
type Storages struct {
	UserRepository UserRepository
	PostRepository PostRepository
}

// NewStorages builds all repositories on top of a single connection pool.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	ids := utils.NewUUIDGenerator()
	return &Storages{
		UserRepository: NewUserRepository(db, ids, logger),
		PostRepository: NewPostRepository(db, ids, logger),
	}
}
