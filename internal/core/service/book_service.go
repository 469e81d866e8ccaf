package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rl1809/bookstore/internal/core/domain"
	"github.com/rl1809/bookstore/internal/port"
)

var (
	ErrBookNotFound       = errors.New("book not found")
	ErrPreconditionFailed = errors.New("etag mismatch")
)

type BookService struct {
	repo port.BookRepository
}

func NewBookService(repo port.BookRepository) *BookService {
	return &BookService{repo: repo}
}

func (s *BookService) Get(ctx context.Context, id int64) (domain.Book, error) {
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Book{}, fmt.Errorf("find book: %w", err)
	}
	if book == nil {
		return domain.Book{}, ErrBookNotFound
	}

	return *book, nil
}

// Update replaces title and author. A nil ifMatch skips the precondition;
// otherwise it must equal the current ETag (an empty token never does) and
// the write is a version compare-and-set, so a concurrent writer holding the
// same ETag gets ErrPreconditionFailed.
func (s *BookService) Update(ctx context.Context, id int64, ifMatch *string, title, author string) (domain.Book, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return domain.Book{}, err
	}

	existing.Title = title
	existing.Author = author

	if ifMatch == nil {
		saved, err := s.repo.Save(ctx, existing)
		if err != nil {
			return domain.Book{}, mapStoreError(err, "save book")
		}
		return saved, nil
	}

	if !existing.Matches(*ifMatch) {
		return domain.Book{}, ErrPreconditionFailed
	}

	saved, err := s.repo.UpdateIfVersion(ctx, existing)
	if err != nil {
		return domain.Book{}, mapStoreError(err, "update book")
	}

	return saved, nil
}

// Delete removes the book. Deleting an id that is already gone returns
// ErrBookNotFound.
func (s *BookService) Delete(ctx context.Context, id int64, ifMatch *string) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if ifMatch == nil {
		if err := s.repo.DeleteByID(ctx, id); err != nil {
			return fmt.Errorf("delete book: %w", err)
		}
		return nil
	}

	if !existing.Matches(*ifMatch) {
		return ErrPreconditionFailed
	}

	if err := s.repo.DeleteIfVersion(ctx, id, existing.Version); err != nil {
		return mapStoreError(err, "delete book")
	}

	return nil
}

// Create inserts a new book. Used for seeding; there is no public create route.
func (s *BookService) Create(ctx context.Context, title, author string) (domain.Book, error) {
	saved, err := s.repo.Save(ctx, domain.Book{Title: title, Author: author})
	if err != nil {
		return domain.Book{}, fmt.Errorf("create book: %w", err)
	}

	return saved, nil
}

func mapStoreError(err error, op string) error {
	switch {
	case errors.Is(err, port.ErrVersionMismatch):
		return ErrPreconditionFailed
	case errors.Is(err, port.ErrNotFound):
		return ErrBookNotFound
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
