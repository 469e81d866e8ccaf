package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/rl1809/bookstore/internal/core/service"
)

var seedData = []struct {
	Title  string
	Author string
}{
	{Title: "The Go Programming Language", Author: "Alan A. A. Donovan"},
	{Title: "Introducing Go", Author: "Caleb Doxsey"},
	{Title: "Concurrency in Go", Author: "Katherine Cox-Buday"},
	{Title: "Go in Practice", Author: "Matt Butcher"},
}

func seedBooks(ctx context.Context, svc *service.BookService) error {
	for _, s := range seedData {
		book, err := svc.Create(ctx, s.Title, s.Author)
		if err != nil {
			return err
		}
		log.Info().Int64("book_id", book.ID).Str("etag", book.ETag()).Str("title", book.Title).Msg("seeded book")
	}
	return nil
}
