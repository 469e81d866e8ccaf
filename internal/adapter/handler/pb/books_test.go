package pb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/rl1809/bookstore/internal/adapter/handler/pb"
)

func TestDescriptor(t *testing.T) {
	svc := pb.File_books_proto.Services().ByName("BookService")
	require.NotNil(t, svc)
	assert.Equal(t, "books.v1.BookService", string(svc.FullName()))
	assert.Equal(t, 3, svc.Methods().Len())

	update := svc.Methods().ByName("UpdateBook")
	require.NotNil(t, update)
	assert.Equal(t, "books.v1.UpdateBookRequest", string(update.Input().FullName()))
	assert.Equal(t, "books.v1.UpdateBookResponse", string(update.Output().FullName()))

	ifMatch := update.Input().Fields().ByName("if_match")
	require.NotNil(t, ifMatch)
	assert.EqualValues(t, 2, ifMatch.Number())
}

func TestUpdateBookResponseWire(t *testing.T) {
	in := &pb.UpdateBookResponse{
		Message: "Book updated successfully",
		Book:    &pb.Book{Id: 1, Title: "B", Author: "Y", Etag: `"2"`},
	}

	raw, err := proto.Marshal(in)
	require.NoError(t, err)

	out := &pb.UpdateBookResponse{}
	require.NoError(t, proto.Unmarshal(raw, out))
	assert.True(t, proto.Equal(in, out))
	assert.Equal(t, `"2"`, out.GetBook().GetEtag())
}
