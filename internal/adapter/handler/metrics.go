package handler

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rl1809/bookstore/internal/core/service"
)

var (
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bookstore",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route template.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method", "code"})

	bookOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bookstore",
		Name:      "book_operations_total",
		Help:      "Book operations by transport and outcome.",
	}, []string{"transport", "operation", "result"})
)

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, service.ErrBookNotFound):
		return "not_found"
	case errors.Is(err, service.ErrPreconditionFailed):
		return "conflict"
	default:
		return "error"
	}
}

func recordOperation(transport, operation string, err error) {
	bookOperations.WithLabelValues(transport, operation, outcome(err)).Inc()
}
