package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rl1809/bookstore/internal/core/domain"
)

const (
	bookKeyPrefix   = "book:"
	tombstoneSuffix = ":deleted"
	DefaultCacheTTL = 5 * time.Minute
)

// Only replaces the cached copy when the incoming version is newer, so a slow
// reader can not overwrite a write-through entry with an older row. A
// tombstone left by a delete refuses the write outright.
var setBookScript = redis.NewScript(`
local key = KEYS[1]
local version = tonumber(ARGV[1])

if redis.call('EXISTS', KEYS[2]) == 1 then
	return 0
end

local current = redis.call('HGET', key, 'version')
if current and tonumber(current) >= version then
	return 0
end

redis.call('HSET', key, 'version', ARGV[1], 'data', ARGV[2])
redis.call('PEXPIRE', key, ARGV[3])
return 1
`)

type cachedBook struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RedisAdapter struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisAdapter(client *redis.Client, ttl time.Duration) *RedisAdapter {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &RedisAdapter{client: client, ttl: ttl}
}

func bookKey(id int64) string {
	return bookKeyPrefix + strconv.FormatInt(id, 10)
}

func tombstoneKey(id int64) string {
	return bookKey(id) + tombstoneSuffix
}

func (r *RedisAdapter) Get(ctx context.Context, id int64) (*domain.Book, error) {
	data, err := r.client.HGet(ctx, bookKey(id), "data").Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cb cachedBook
	if err := json.Unmarshal(data, &cb); err != nil {
		return nil, err
	}

	return &domain.Book{
		ID:        cb.ID,
		Title:     cb.Title,
		Author:    cb.Author,
		Version:   cb.Version,
		CreatedAt: cb.CreatedAt,
		UpdatedAt: cb.UpdatedAt,
	}, nil
}

func (r *RedisAdapter) Set(ctx context.Context, book domain.Book) error {
	data, err := json.Marshal(cachedBook{
		ID:        book.ID,
		Title:     book.Title,
		Author:    book.Author,
		Version:   book.Version,
		CreatedAt: book.CreatedAt,
		UpdatedAt: book.UpdatedAt,
	})
	if err != nil {
		return err
	}

	return setBookScript.Run(ctx, r.client, []string{bookKey(book.ID), tombstoneKey(book.ID)},
		book.Version, data, r.ttl.Milliseconds()).Err()
}

func (r *RedisAdapter) Invalidate(ctx context.Context, id int64) error {
	return r.client.Del(ctx, bookKey(id)).Err()
}

// MarkDeleted evicts the book and leaves a tombstone for one cache TTL, so a
// read that loaded the row before the delete can not cache it again.
func (r *RedisAdapter) MarkDeleted(ctx context.Context, id int64) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, bookKey(id))
		pipe.Set(ctx, tombstoneKey(id), 1, r.ttl)
		return nil
	})
	return err
}
