package domain

import (
	"strconv"
	"time"
)

type Book struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Version   int64     `json:"-"` // optimistic locking
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// ETag returns the precondition token for the book's current state.
// The token is the quoted version so it survives restarts and re-encoding.
func (b Book) ETag() string {
	return strconv.Quote(strconv.FormatInt(b.Version, 10))
}

// Matches reports whether token names the book's current state.
func (b Book) Matches(token string) bool {
	return token == b.ETag()
}
