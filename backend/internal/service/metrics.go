package service

import (
	internal_errors "github.com/itchan-dev/msgboard/shared/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	messagesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "msgboard_messages_created_total",
		Help: "Messages created",
	})
	messagesEdited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "msgboard_messages_edited_total",
		Help: "Messages edited",
	})
	messagesDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "msgboard_messages_deleted_total",
		Help: "Messages deleted",
	})
	operationErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "msgboard_operation_errors_total",
		Help: "Failed lifecycle operations by operation and failure kind",
	}, []string{"op", "kind"})
)

func observeError(op string, err error) {
	operationErrors.WithLabelValues(op, internal_errors.Kind(err)).Inc()
}
