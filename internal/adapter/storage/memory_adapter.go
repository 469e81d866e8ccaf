package storage

import (
	"context"
	"sync"
	"time"

	"github.com/rl1809/bookstore/internal/core/domain"
	"github.com/rl1809/bookstore/internal/port"
)

// MemoryAdapter keeps books in a map. Versioned writes compare and set under
// the same lock, matching the MySQL adapter's single-statement semantics.
type MemoryAdapter struct {
	mu     sync.RWMutex
	books  map[int64]domain.Book
	nextID int64
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{
		books:  make(map[int64]domain.Book),
		nextID: 1,
	}
}

func (m *MemoryAdapter) FindByID(_ context.Context, id int64) (*domain.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	book, ok := m.books[id]
	if !ok {
		return nil, nil
	}
	return &book, nil
}

func (m *MemoryAdapter) ExistsByID(_ context.Context, id int64) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.books[id]
	return ok, nil
}

func (m *MemoryAdapter) Save(_ context.Context, book domain.Book) (domain.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()

	if book.ID == 0 {
		book.ID = m.nextID
		book.Version = 1
		book.CreatedAt = now
		m.nextID++
	} else {
		current, ok := m.books[book.ID]
		if !ok {
			return domain.Book{}, port.ErrNotFound
		}
		book.Version = current.Version + 1
		book.CreatedAt = current.CreatedAt
	}
	book.UpdatedAt = now

	m.books[book.ID] = book
	return book, nil
}

func (m *MemoryAdapter) DeleteByID(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.books, id)
	return nil
}

func (m *MemoryAdapter) UpdateIfVersion(_ context.Context, book domain.Book) (domain.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.books[book.ID]
	if !ok {
		return domain.Book{}, port.ErrNotFound
	}
	if current.Version != book.Version {
		return domain.Book{}, port.ErrVersionMismatch
	}

	current.Title = book.Title
	current.Author = book.Author
	current.Version++
	current.UpdatedAt = time.Now().UTC()

	m.books[book.ID] = current
	return current, nil
}

func (m *MemoryAdapter) DeleteIfVersion(_ context.Context, id, version int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.books[id]
	if !ok {
		return port.ErrNotFound
	}
	if current.Version != version {
		return port.ErrVersionMismatch
	}

	delete(m.books, id)
	return nil
}
