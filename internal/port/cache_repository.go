package port

import (
	"context"

	"github.com/rl1809/bookstore/internal/core/domain"
)

type BookCache interface {
	// Get returns nil without error on a cache miss
	Get(ctx context.Context, id int64) (*domain.Book, error)

	// Set stores the book until the cache TTL expires
	Set(ctx context.Context, book domain.Book) error

	// Invalidate drops the cached copy of the book
	Invalidate(ctx context.Context, id int64) error

	// MarkDeleted drops the cached copy and makes Set a no-op for the book
	// until the tombstone expires
	MarkDeleted(ctx context.Context, id int64) error
}
