package storage

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rl1809/bookstore/internal/core/domain"
	"github.com/rl1809/bookstore/internal/port"
)

// CachedRepository reads through a BookCache in front of another
// BookRepository. Successful writes are pushed to the cache, failed writes
// evict, and deletes leave a tombstone so a racing read can not cache the
// removed row again. Cache errors are logged and never fail the call.
type CachedRepository struct {
	next  port.BookRepository
	cache port.BookCache
}

func NewCachedRepository(next port.BookRepository, cache port.BookCache) *CachedRepository {
	return &CachedRepository{next: next, cache: cache}
}

func (c *CachedRepository) FindByID(ctx context.Context, id int64) (*domain.Book, error) {
	book, err := c.cache.Get(ctx, id)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int64("book_id", id).Msg("cache get failed")
	}
	if book != nil {
		return book, nil
	}

	book, err = c.next.FindByID(ctx, id)
	if err != nil || book == nil {
		return book, err
	}

	c.store(ctx, *book)
	return book, nil
}

func (c *CachedRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return c.next.ExistsByID(ctx, id)
}

func (c *CachedRepository) Save(ctx context.Context, book domain.Book) (domain.Book, error) {
	saved, err := c.next.Save(ctx, book)
	if err != nil {
		if book.ID != 0 {
			c.evict(ctx, book.ID)
		}
		return saved, err
	}

	c.store(ctx, saved)
	return saved, nil
}

func (c *CachedRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := c.next.DeleteByID(ctx, id); err != nil {
		return err
	}

	c.markDeleted(ctx, id)
	return nil
}

func (c *CachedRepository) UpdateIfVersion(ctx context.Context, book domain.Book) (domain.Book, error) {
	saved, err := c.next.UpdateIfVersion(ctx, book)
	if err != nil {
		// a mismatch means our cached copy may be the stale one
		c.evict(ctx, book.ID)
		return saved, err
	}

	c.store(ctx, saved)
	return saved, nil
}

func (c *CachedRepository) DeleteIfVersion(ctx context.Context, id, version int64) error {
	if err := c.next.DeleteIfVersion(ctx, id, version); err != nil {
		c.evict(ctx, id)
		return err
	}

	c.markDeleted(ctx, id)
	return nil
}

func (c *CachedRepository) store(ctx context.Context, book domain.Book) {
	if err := c.cache.Set(ctx, book); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int64("book_id", book.ID).Msg("cache set failed")
		c.evict(ctx, book.ID)
	}
}

func (c *CachedRepository) evict(ctx context.Context, id int64) {
	if err := c.cache.Invalidate(ctx, id); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int64("book_id", id).Msg("cache invalidate failed")
	}
}

func (c *CachedRepository) markDeleted(ctx context.Context, id int64) {
	if err := c.cache.MarkDeleted(ctx, id); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int64("book_id", id).Msg("cache tombstone failed")
	}
}
