package handler_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"

	"github.com/rl1809/bookstore/internal/adapter/handler"
	"github.com/rl1809/bookstore/internal/adapter/handler/pb"
	"github.com/rl1809/bookstore/internal/adapter/storage"
	"github.com/rl1809/bookstore/internal/core/service"
)

func newTestGRPC(t *testing.T) (pb.BookServiceClient, *service.BookService) {
	t.Helper()

	svc := service.NewBookService(storage.NewMemoryAdapter())
	lis := bufconn.Listen(1 << 20)

	server := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryLogInterceptor))
	pb.RegisterBookServiceServer(server, handler.NewGRPCHandler(svc))
	go server.Serve(lis)
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return pb.NewBookServiceClient(conn), svc
}

func TestGRPC_ConditionalUpdateScenario(t *testing.T) {
	client, svc := newTestGRPC(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "A", "X")
	require.NoError(t, err)

	got, err := client.GetBook(ctx, &pb.GetBookRequest{Id: created.ID})
	require.NoError(t, err)
	assert.Equal(t, "A", got.Title)
	t1 := got.GetEtag()

	resp, err := client.UpdateBook(ctx, &pb.UpdateBookRequest{Id: created.ID, IfMatch: proto.String(t1), Title: "B", Author: "Y"})
	require.NoError(t, err)
	assert.Equal(t, handler.UpdatedMessage, resp.Message)
	assert.NotEqual(t, t1, resp.Book.GetEtag())

	_, err = client.UpdateBook(ctx, &pb.UpdateBookRequest{Id: created.ID, IfMatch: proto.String(t1), Title: "C", Author: "Z"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	got, err = client.GetBook(ctx, &pb.GetBookRequest{Id: created.ID})
	require.NoError(t, err)
	assert.Equal(t, "B", got.Title)
	assert.Equal(t, "Y", got.Author)
}

func TestGRPC_DeleteTwice(t *testing.T) {
	client, svc := newTestGRPC(t)
	ctx := context.Background()

	created, _ := svc.Create(ctx, "A", "X")

	_, err := client.DeleteBook(ctx, &pb.DeleteBookRequest{Id: created.ID})
	require.NoError(t, err)

	_, err = client.DeleteBook(ctx, &pb.DeleteBookRequest{Id: created.ID})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestGRPC_NonPositiveIDIsNotFound(t *testing.T) {
	client, _ := newTestGRPC(t)
	ctx := context.Background()

	for _, id := range []int64{0, -1} {
		_, err := client.GetBook(ctx, &pb.GetBookRequest{Id: id})
		assert.Equal(t, codes.NotFound, status.Code(err), "get %d", id)

		_, err = client.DeleteBook(ctx, &pb.DeleteBookRequest{Id: id})
		assert.Equal(t, codes.NotFound, status.Code(err), "delete %d", id)
	}
}

func TestGRPC_EmptyIfMatchIsAPrecondition(t *testing.T) {
	client, svc := newTestGRPC(t)
	ctx := context.Background()

	created, _ := svc.Create(ctx, "A", "X")

	_, err := client.UpdateBook(ctx, &pb.UpdateBookRequest{Id: created.ID, IfMatch: proto.String(""), Title: "B"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = client.DeleteBook(ctx, &pb.DeleteBookRequest{Id: created.ID, IfMatch: proto.String("")})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	resp, err := client.UpdateBook(ctx, &pb.UpdateBookRequest{Id: created.ID, Title: "B", Author: "Y"})
	require.NoError(t, err)
	assert.Equal(t, "B", resp.GetBook().GetTitle())
}

func TestGRPC_NotFound(t *testing.T) {
	client, _ := newTestGRPC(t)

	_, err := client.UpdateBook(context.Background(), &pb.UpdateBookRequest{Id: 4, Title: "B"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}
