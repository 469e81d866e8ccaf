package storage

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/bookstore/internal/core/domain"
	"github.com/rl1809/bookstore/internal/port"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func newMockAdapter(t *testing.T) (*MySQLAdapter, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	adapter := NewMySQLAdapter(db)
	adapter.now = func() time.Time { return fixedNow }
	return adapter, mock
}

var bookColumns = []string{"id", "title", "author", "version", "created_at", "updated_at"}

func TestMySQLFindByID_Mock(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM books WHERE id = ?")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(bookColumns).AddRow(1, "A", "X", 4, fixedNow, fixedNow))

	book, err := adapter.FindByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, book)
	assert.Equal(t, "A", book.Title)
	assert.Equal(t, int64(4), book.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLFindByID_MockNoRows(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM books WHERE id = ?")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(bookColumns))

	book, err := adapter.FindByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, book)
}

func TestMySQLSave_MockInsert(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO books (title, author, version, created_at, updated_at)")).
		WithArgs("A", "X", fixedNow, fixedNow).
		WillReturnResult(sqlmock.NewResult(7, 1))

	book, err := adapter.Save(context.Background(), domain.Book{Title: "A", Author: "X"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), book.ID)
	assert.Equal(t, int64(1), book.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLSave_MockOverwrite(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE books")).
		WithArgs("B", "Y", fixedNow, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM books WHERE id = ?")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(bookColumns).AddRow(3, "B", "Y", 5, fixedNow, fixedNow))
	mock.ExpectCommit()

	book, err := adapter.Save(context.Background(), domain.Book{ID: 3, Title: "B", Author: "Y", Version: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(5), book.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLSave_MockOverwriteMissingRow(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE books")).
		WithArgs("B", "Y", fixedNow, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := adapter.Save(context.Background(), domain.Book{ID: 3, Title: "B", Author: "Y"})
	assert.ErrorIs(t, err, port.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLUpdateIfVersion_Mock(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	mock.ExpectExec(regexp.QuoteMeta("WHERE id = ? AND version = ?")).
		WithArgs("B", "Y", fixedNow, int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	book, err := adapter.UpdateIfVersion(context.Background(), domain.Book{ID: 1, Title: "B", Author: "Y", Version: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), book.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLUpdateIfVersion_MockConflict(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	mock.ExpectExec(regexp.QuoteMeta("WHERE id = ? AND version = ?")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	_, err := adapter.UpdateIfVersion(context.Background(), domain.Book{ID: 1, Version: 2})
	assert.ErrorIs(t, err, port.ErrVersionMismatch)
}

func TestMySQLDeleteIfVersion_MockMissing(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM books WHERE id = ? AND version = ?")).
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	err := adapter.DeleteIfVersion(context.Background(), 1, 2)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestMySQLDeleteByID_MockError(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM books WHERE id = ?")).
		WillReturnError(errors.New("connection reset"))

	err := adapter.DeleteByID(context.Background(), 1)
	assert.Error(t, err)
}

func getMySQLDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/bookstore?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS books (
			id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			author VARCHAR(255) NOT NULL,
			version BIGINT NOT NULL,
			created_at DATETIME(6) NOT NULL,
			updated_at DATETIME(6) NOT NULL
		)`)
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	return db
}

func TestMySQL_ConditionalFlow(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)

	book, err := adapter.Save(ctx, domain.Book{Title: "A", Author: "X"})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	defer db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, book.ID)

	book.Title, book.Author = "B", "Y"
	updated, err := adapter.UpdateIfVersion(ctx, book)
	if err != nil {
		t.Fatalf("UpdateIfVersion failed: %v", err)
	}
	if updated.Version != 2 {
		t.Errorf("expected version 2, got %d", updated.Version)
	}

	// Try update with stale version
	book.Title = "C"
	_, err = adapter.UpdateIfVersion(ctx, book)
	if !errors.Is(err, port.ErrVersionMismatch) {
		t.Errorf("expected ErrVersionMismatch, got: %v", err)
	}

	stored, err := adapter.FindByID(ctx, book.ID)
	if err != nil || stored == nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if stored.Title != "B" || stored.Author != "Y" {
		t.Errorf("expected B/Y, got %s/%s", stored.Title, stored.Author)
	}

	if err := adapter.DeleteIfVersion(ctx, book.ID, stored.Version); err != nil {
		t.Fatalf("DeleteIfVersion failed: %v", err)
	}
	exists, _ := adapter.ExistsByID(ctx, book.ID)
	if exists {
		t.Error("expected book to be gone")
	}
}

func TestMySQL_SaveOverwriteBumpsVersion(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)

	book, err := adapter.Save(ctx, domain.Book{Title: "A", Author: "X"})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	defer db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, book.ID)

	book.Title = "B"
	saved, err := adapter.Save(ctx, book)
	if err != nil {
		t.Fatalf("Save overwrite failed: %v", err)
	}
	if saved.ID != book.ID {
		t.Errorf("expected id %d, got %d", book.ID, saved.ID)
	}
	if saved.Version != book.Version+1 {
		t.Errorf("expected version %d, got %d", book.Version+1, saved.Version)
	}
}

func TestMySQL_SaveDeletedRowIsNotRecreated(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)

	book, err := adapter.Save(ctx, domain.Book{Title: "A", Author: "X"})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := adapter.DeleteByID(ctx, book.ID); err != nil {
		t.Fatalf("DeleteByID failed: %v", err)
	}

	if _, err := adapter.Save(ctx, book); !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	exists, _ := adapter.ExistsByID(ctx, book.ID)
	if exists {
		t.Error("expected deleted book to stay gone")
	}
}
