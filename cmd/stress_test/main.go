package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rl1809/bookstore/internal/adapter/storage"
	"github.com/rl1809/bookstore/internal/core/service"
	"github.com/rl1809/bookstore/internal/logger"
)

const (
	defaultDSN    = "root:root@tcp(localhost:3306)/bookstore?parseTime=true"
	totalRequests = 50
)

func main() {
	ctx := context.Background()
	if err := logger.Initialize("info"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = defaultDSN
	}
	dsn, err := storage.NormalizeDSN(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid MYSQL_DSN")
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open mysql")
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		log.Fatal().Err(err).Msg("failed to connect mysql")
	}

	passed, err := run(ctx, db)
	db.Close()
	if err != nil {
		log.Error().Err(err).Msg("stress test aborted")
		os.Exit(1)
	}
	if !passed {
		os.Exit(1)
	}
}

// run owns the stress book: it is deleted on every return path.
func run(ctx context.Context, db *sql.DB) (bool, error) {
	svc := service.NewBookService(storage.NewMySQLAdapter(db))

	runID := uuid.New().String()
	book, err := svc.Create(ctx, "stress-"+runID, "stress")
	if err != nil {
		return false, fmt.Errorf("create book: %w", err)
	}
	defer cleanup(db, book.ID)

	token := book.ETag()

	// Counters
	var successCount atomic.Int32
	var conflictCount atomic.Int32
	var errorCount atomic.Int32

	// Spawn concurrent updates, all holding the same token
	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func(writer int) {
			defer wg.Done()

			_, err := svc.Update(ctx, book.ID, &token, fmt.Sprintf("writer-%d", writer), "stress")
			switch {
			case err == nil:
				successCount.Add(1)
			case errors.Is(err, service.ErrPreconditionFailed):
				conflictCount.Add(1)
			default:
				errorCount.Add(1)
				log.Error().Err(err).Int("writer", writer).Msg("update failed")
			}
		}(i)
	}

	wg.Wait()
	elapsed := time.Since(start)

	// Results
	success := successCount.Load()
	conflicts := conflictCount.Load()

	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Book ID:          %d\n", book.ID)
	fmt.Printf("Total Requests:   %d\n", totalRequests)
	fmt.Printf("Successful:       %d\n", success)
	fmt.Printf("Conflicts:        %d\n", conflicts)
	fmt.Printf("Errors:           %d\n", errorCount.Load())
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("==========================================")

	// Assertions
	passed := true
	if success == 1 && conflicts == totalRequests-1 {
		fmt.Printf("PASS: Exactly 1 update succeeded, %d conflicted\n", totalRequests-1)
	} else {
		fmt.Printf("FAIL: Expected 1 success/%d conflicts, got %d/%d\n", totalRequests-1, success, conflicts)
		passed = false
	}

	final, err := svc.Get(ctx, book.ID)
	if err != nil {
		return false, fmt.Errorf("read back book: %w", err)
	}
	fmt.Printf("Final Version:    %d\n", final.Version)

	if final.Version == book.Version+1 {
		fmt.Println("PASS: Version advanced exactly once")
	} else {
		fmt.Printf("FAIL: Expected version %d, got %d\n", book.Version+1, final.Version)
		passed = false
	}

	return passed, nil
}

func cleanup(db *sql.DB, id int64) {
	if _, err := db.ExecContext(context.Background(), `DELETE FROM books WHERE id = ?`, id); err != nil {
		log.Error().Err(err).Int64("book_id", id).Msg("failed to delete stress book")
	}
}
