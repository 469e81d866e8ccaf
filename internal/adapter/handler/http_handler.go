package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/rl1809/bookstore/internal/core/domain"
	"github.com/rl1809/bookstore/internal/core/service"
)

const (
	IfMatchHeader = "If-Match"
	ETagHeader    = "ETag"

	UpdatedMessage = "Book updated successfully"
)

type HTTPHandler struct {
	bookService *service.BookService
}

type UpdateBookHTTPRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

type ErrorHTTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewHTTPHandler(bookService *service.BookService) *HTTPHandler {
	return &HTTPHandler{bookService: bookService}
}

func (h *HTTPHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}

	book, err := h.bookService.Get(r.Context(), id)
	recordOperation("http", "get", err)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	setValidators(w, book)
	writeJSON(w, http.StatusOK, book)
}

func (h *HTTPHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}

	var req UpdateBookHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorHTTPResponse{
			Success: false,
			Message: "invalid request body",
		})
		return
	}

	book, err := h.bookService.Update(r.Context(), id, ifMatch(r), req.Title, req.Author)
	recordOperation("http", "update", err)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	setValidators(w, book)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(UpdatedMessage))
}

func (h *HTTPHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}

	err := h.bookService.Delete(r.Context(), id, ifMatch(r))
	recordOperation("http", "delete", err)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func bookID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorHTTPResponse{
			Success: false,
			Message: "invalid book id",
		})
		return 0, false
	}
	return id, true
}

// ifMatch returns nil when the header is absent. A header sent with an empty
// value is still a precondition.
func ifMatch(r *http.Request) *string {
	values := r.Header.Values(IfMatchHeader)
	if len(values) == 0 {
		return nil
	}
	return &values[0]
}

func setValidators(w http.ResponseWriter, book domain.Book) {
	w.Header().Set(ETagHeader, book.ETag())
	if !book.UpdatedAt.IsZero() {
		w.Header().Set("Last-Modified", book.UpdatedAt.UTC().Format(http.TimeFormat))
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	if errors.Is(err, service.ErrBookNotFound) {
		status = http.StatusNotFound
		message = "book not found"
	} else if errors.Is(err, service.ErrPreconditionFailed) {
		status = http.StatusConflict
		message = "etag mismatch"
	} else {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("book request failed")
	}

	writeJSON(w, status, ErrorHTTPResponse{
		Success: false,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
