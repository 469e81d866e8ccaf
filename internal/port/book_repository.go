package port

import (
	"context"
	"errors"

	"github.com/rl1809/bookstore/internal/core/domain"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrVersionMismatch = errors.New("version mismatch")
)

type BookRepository interface {
	// FindByID returns nil without error when the book does not exist
	FindByID(ctx context.Context, id int64) (*domain.Book, error)

	// ExistsByID reports whether a book with the id is stored
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Save inserts when book.ID is zero, otherwise overwrites the book with that ID
	Save(ctx context.Context, book domain.Book) (domain.Book, error)

	// DeleteByID removes the book if present, absent ids are not an error
	DeleteByID(ctx context.Context, id int64) error

	// UpdateIfVersion writes title and author only if the stored version equals book.Version
	UpdateIfVersion(ctx context.Context, book domain.Book) (domain.Book, error)

	// DeleteIfVersion removes the book only if the stored version equals version
	DeleteIfVersion(ctx context.Context, id, version int64) error
}
