package main

import (
	"context"
	"database/sql"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/sethvargo/go-retry"
	"google.golang.org/grpc"

	"github.com/rl1809/bookstore/internal/adapter/handler"
	"github.com/rl1809/bookstore/internal/adapter/handler/pb"
	"github.com/rl1809/bookstore/internal/adapter/storage"
	"github.com/rl1809/bookstore/internal/config"
	"github.com/rl1809/bookstore/internal/core/service"
	"github.com/rl1809/bookstore/internal/logger"
	"github.com/rl1809/bookstore/internal/port"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("unable to parse log level")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open book store")
	}

	bookService := service.NewBookService(repo)

	if cfg.SeedBooks {
		if err := seedBooks(ctx, bookService); err != nil {
			log.Fatal().Err(err).Msg("failed to seed books")
		}
	}

	// Initialize gRPC server
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryLogInterceptor))
	pb.RegisterBookServiceServer(grpcServer, handler.NewGRPCHandler(bookService))

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.GRPCAddr).Msg("failed to listen")
	}

	go func() {
		log.Info().Str("addr", cfg.GRPCAddr).Msg("gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil {
			log.Error().Err(err).Msg("gRPC server error")
		}
	}()

	// Initialize HTTP server
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.NewRouter(handler.NewHTTPHandler(bookService)),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Error().Err(err).Msg("HTTP server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Warn().Msg("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shutdown http server gracefully")
	}
	log.Info().Msg("HTTP server stopped")

	grpcServer.GracefulStop()
	log.Info().Msg("gRPC server stopped")

	closeStore()
	log.Info().Msg("connections closed")
}

func openStore(ctx context.Context, cfg config.Config) (port.BookRepository, func(), error) {
	if cfg.Store == config.StoreMemory {
		log.Warn().Msg("using in-memory book store, data is lost on exit")
		return storage.NewMemoryAdapter(), func() {}, nil
	}

	db, err := openMySQL(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Msg("connected to mysql")

	var repo port.BookRepository = storage.NewMySQLAdapter(db)
	closers := []func() error{db.Close}

	if cfg.RedisAddr != "" {
		rdb, err := openRedis(ctx, cfg)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		log.Info().Str("addr", cfg.RedisAddr).Dur("ttl", cfg.CacheTTL).Msg("connected to redis, book cache enabled")

		repo = storage.NewCachedRepository(repo, storage.NewRedisAdapter(rdb, cfg.CacheTTL))
		closers = append(closers, rdb.Close)
	}

	return repo, func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				log.Error().Err(err).Msg("close failed")
			}
		}
	}, nil
}

func openMySQL(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	dsn, err := storage.NormalizeDSN(cfg.MySQLDSN)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	err = withRetry(ctx, cfg.ConnectRetries, "mysql", db.PingContext)
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func openRedis(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		PoolSize: cfg.RedisPoolSize,
	})

	err := withRetry(ctx, cfg.ConnectRetries, "redis", func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
	if err != nil {
		rdb.Close()
		return nil, err
	}
	return rdb, nil
}

func withRetry(ctx context.Context, retries uint64, name string, ping func(context.Context) error) error {
	b := retry.WithMaxRetries(retries, retry.NewFibonacci(500*time.Millisecond))
	return retry.Do(ctx, b, func(ctx context.Context) error {
		if err := ping(ctx); err != nil {
			log.Warn().Err(err).Str("backend", name).Msg("ping failed, retrying")
			return retry.RetryableError(err)
		}
		return nil
	})
}
