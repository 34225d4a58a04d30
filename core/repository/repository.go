package repository

import (
	"context"

	"gorm.io/gorm"
)

// ErrNotFound is returned (wrapped) when a looked up record does not exist.
var ErrNotFound = gorm.ErrRecordNotFound

// ErrDuplicate is returned (wrapped) when a write hits a unique index.
var ErrDuplicate = gorm.ErrDuplicatedKey

// Repository is the data access layer over GORM. A Repository obtained inside
// Transaction is bound to that transaction.
type Repository struct {
	db *gorm.DB
}

// New creates a repository on db.
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// DB exposes the underlying connection for tooling such as schema checks.
func (r *Repository) DB() *gorm.DB {
	return r.db
}

// Transaction runs fn in a transaction. Called on a transaction-bound
// repository it opens a savepoint, so a failing fn only undoes its own writes.
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

func (r *Repository) conn(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}
