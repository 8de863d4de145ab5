package services

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var quizWrites = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "quizportal_quiz_writes_total",
		Help: "Quiz write attempts by operation and outcome",
	},
	[]string{"op", "result"},
)

func recordWrite(op string, err error) {
	quizWrites.WithLabelValues(op, writeResult(err)).Inc()
}

func writeResult(err error) string {
	var ve *ValidationError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &ve), errors.Is(err, ErrArticleNotSelected):
		return "invalid"
	case errors.Is(err, ErrQuizNotFound):
		return "not_found"
	default:
		return "error"
	}
}
