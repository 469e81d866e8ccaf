package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rl1809/bookstore/internal/core/domain"
	"github.com/rl1809/bookstore/internal/port"
)

const selectBookSQL = `
	SELECT id, title, author, version, created_at, updated_at
	FROM books WHERE id = ?`

type MySQLAdapter struct {
	db  *sql.DB
	now func() time.Time
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (*domain.Book, error) {
	var b domain.Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Version, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (m *MySQLAdapter) FindByID(ctx context.Context, id int64) (*domain.Book, error) {
	book, err := scanBook(m.db.QueryRowContext(ctx, selectBookSQL, id))
	if err != nil {
		return nil, fmt.Errorf("query book: %w", err)
	}
	return book, nil
}

func (m *MySQLAdapter) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := m.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE id = ?)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("query book exists: %w", err)
	}
	return exists, nil
}

func (m *MySQLAdapter) Save(ctx context.Context, book domain.Book) (domain.Book, error) {
	now := m.now()

	if book.ID == 0 {
		result, err := m.db.ExecContext(ctx, `
			INSERT INTO books (title, author, version, created_at, updated_at)
			VALUES (?, ?, 1, ?, ?)`,
			book.Title, book.Author, now, now,
		)
		if err != nil {
			return domain.Book{}, fmt.Errorf("insert book: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return domain.Book{}, fmt.Errorf("last insert id: %w", err)
		}

		book.ID = id
		book.Version = 1
		book.CreatedAt = now
		book.UpdatedAt = now
		return book, nil
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Book{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE books
		SET title = ?, author = ?, version = version + 1, updated_at = ?
		WHERE id = ?`,
		book.Title, book.Author, now, book.ID,
	)
	if err != nil {
		return domain.Book{}, fmt.Errorf("update book: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.Book{}, port.ErrNotFound
	}

	saved, err := scanBook(tx.QueryRowContext(ctx, selectBookSQL, book.ID))
	if err != nil {
		return domain.Book{}, fmt.Errorf("reload book: %w", err)
	}
	if saved == nil {
		return domain.Book{}, port.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return domain.Book{}, fmt.Errorf("commit: %w", err)
	}

	return *saved, nil
}

func (m *MySQLAdapter) DeleteByID(ctx context.Context, id int64) error {
	if _, err := m.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) UpdateIfVersion(ctx context.Context, book domain.Book) (domain.Book, error) {
	now := m.now()

	result, err := m.db.ExecContext(ctx, `
		UPDATE books
		SET title = ?, author = ?, version = version + 1, updated_at = ?
		WHERE id = ? AND version = ?`,
		book.Title, book.Author, now, book.ID, book.Version,
	)
	if err != nil {
		return domain.Book{}, fmt.Errorf("update book: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.Book{}, m.missOrConflict(ctx, book.ID)
	}

	book.Version++
	book.UpdatedAt = now
	return book, nil
}

func (m *MySQLAdapter) DeleteIfVersion(ctx context.Context, id, version int64) error {
	result, err := m.db.ExecContext(ctx, `DELETE FROM books WHERE id = ? AND version = ?`, id, version)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return m.missOrConflict(ctx, id)
	}

	return nil
}

// missOrConflict tells apart the two reasons a versioned write matched no row.
func (m *MySQLAdapter) missOrConflict(ctx context.Context, id int64) error {
	exists, err := m.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return port.ErrNotFound
	}
	return port.ErrVersionMismatch
}
