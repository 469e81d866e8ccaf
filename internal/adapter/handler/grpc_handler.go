package handler

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rl1809/bookstore/internal/adapter/handler/pb"
	"github.com/rl1809/bookstore/internal/core/domain"
	"github.com/rl1809/bookstore/internal/core/service"
)

type GRPCHandler struct {
	pb.UnimplementedBookServiceServer
	bookService *service.BookService
}

func NewGRPCHandler(bookService *service.BookService) *GRPCHandler {
	return &GRPCHandler{bookService: bookService}
}

func (h *GRPCHandler) GetBook(ctx context.Context, req *pb.GetBookRequest) (*pb.Book, error) {
	book, err := h.bookService.Get(ctx, req.GetId())
	recordOperation("grpc", "get", err)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return toPB(book), nil
}

func (h *GRPCHandler) UpdateBook(ctx context.Context, req *pb.UpdateBookRequest) (*pb.UpdateBookResponse, error) {
	book, err := h.bookService.Update(ctx, req.GetId(), req.IfMatch, req.GetTitle(), req.GetAuthor())
	recordOperation("grpc", "update", err)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &pb.UpdateBookResponse{
		Message: UpdatedMessage,
		Book:    toPB(book),
	}, nil
}

func (h *GRPCHandler) DeleteBook(ctx context.Context, req *pb.DeleteBookRequest) (*pb.DeleteBookResponse, error) {
	err := h.bookService.Delete(ctx, req.GetId(), req.IfMatch)
	recordOperation("grpc", "delete", err)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &pb.DeleteBookResponse{}, nil
}

// UnaryLogInterceptor is the gRPC counterpart of LogInterceptor.
func UnaryLogInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	logger := log.With().Str("request_id", uuid.New().String()).Logger()
	start := time.Now()

	resp, err := handler(logger.WithContext(ctx), req)

	logger.Debug().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Msg("rpc handled")
	return resp, err
}

func toPB(book domain.Book) *pb.Book {
	return &pb.Book{
		Id:     book.ID,
		Title:  book.Title,
		Author: book.Author,
		Etag:   book.ETag(),
	}
}

func toStatus(ctx context.Context, err error) error {
	if errors.Is(err, service.ErrBookNotFound) {
		return status.Error(codes.NotFound, "book not found")
	}
	if errors.Is(err, service.ErrPreconditionFailed) {
		return status.Error(codes.FailedPrecondition, "etag mismatch")
	}
	log.Ctx(ctx).Error().Err(err).Msg("book rpc failed")
	return status.Error(codes.Internal, "internal error")
}
