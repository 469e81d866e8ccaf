package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(h *HTTPHandler) *mux.Router {
	router := mux.NewRouter()
	router.Use(LogInterceptor, MetricsInterceptor)

	router.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	books := router.PathPrefix("/v1/api/books").Subrouter()
	books.HandleFunc("/{id}", h.GetBook).Methods(http.MethodGet)
	books.HandleFunc("/update/{id}", h.UpdateBook).Methods(http.MethodPut)
	books.HandleFunc("/delete/{id}", h.DeleteBook).Methods(http.MethodDelete)

	return router
}
