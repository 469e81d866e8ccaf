// Package config reads process settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	StoreMySQL  = "mysql"
	StoreMemory = "memory"
)

type Config struct {
	HTTPAddr        string
	GRPCAddr        string
	Store           string
	MySQLDSN        string
	RedisAddr       string // empty disables the book cache
	CacheTTL        time.Duration
	LogLevel        string
	SeedBooks       bool
	ConnectRetries  uint64
	ShutdownTimeout time.Duration
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	RedisPoolSize   int
}

func Default() Config {
	return Config{
		HTTPAddr:        ":8080",
		GRPCAddr:        ":50051",
		Store:           StoreMySQL,
		MySQLDSN:        "root:root@tcp(localhost:3306)/bookstore?parseTime=true",
		RedisAddr:       "localhost:6379",
		CacheTTL:        5 * time.Minute,
		LogLevel:        "info",
		ConnectRetries:  5,
		ShutdownTimeout: 5 * time.Second,
		MaxOpenConns:    50,
		MaxIdleConns:    25,
		ConnMaxLifetime: 5 * time.Minute,
		RedisPoolSize:   100,
	}
}

// Load overlays environment variables on top of Default.
func Load() (Config, error) {
	return load(os.LookupEnv)
}

func load(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var err error

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	dur := func(key string, dst *time.Duration) {
		if v, ok := lookup(key); ok && err == nil {
			*dst, err = parseDuration(key, v)
		}
	}
	integer := func(key string, dst *int) {
		if v, ok := lookup(key); ok && err == nil {
			*dst, err = parseInt(key, v)
		}
	}

	str("HTTP_ADDR", &cfg.HTTPAddr)
	str("GRPC_ADDR", &cfg.GRPCAddr)
	str("STORE", &cfg.Store)
	str("MYSQL_DSN", &cfg.MySQLDSN)
	str("REDIS_ADDR", &cfg.RedisAddr)
	str("LOG_LEVEL", &cfg.LogLevel)
	dur("CACHE_TTL", &cfg.CacheTTL)
	dur("SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout)
	dur("DB_CONN_MAX_LIFETIME", &cfg.ConnMaxLifetime)
	integer("DB_MAX_OPEN_CONNS", &cfg.MaxOpenConns)
	integer("DB_MAX_IDLE_CONNS", &cfg.MaxIdleConns)
	integer("REDIS_POOL_SIZE", &cfg.RedisPoolSize)

	if v, ok := lookup("SEED_BOOKS"); ok && err == nil {
		cfg.SeedBooks, err = strconv.ParseBool(v)
		if err != nil {
			err = fmt.Errorf("SEED_BOOKS: %w", err)
		}
	}
	if v, ok := lookup("DB_CONNECT_RETRIES"); ok && err == nil {
		cfg.ConnectRetries, err = strconv.ParseUint(v, 10, 64)
		if err != nil {
			err = fmt.Errorf("DB_CONNECT_RETRIES: %w", err)
		}
	}
	if err != nil {
		return Config{}, err
	}

	if cfg.Store != StoreMySQL && cfg.Store != StoreMemory {
		return Config{}, fmt.Errorf("STORE: unknown store %q", cfg.Store)
	}

	return cfg, nil
}

func parseDuration(key, v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func parseInt(key, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
