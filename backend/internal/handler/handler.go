package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/itchan-dev/msgboard/backend/internal/service"
	"github.com/itchan-dev/msgboard/shared/logger"
)

type Renderer interface {
	Render(content string) (string, error)
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	board    service.BoardService
	message  service.MessageService
	renderer Renderer
	health   HealthChecker
}

func New(board service.BoardService, message service.MessageService, renderer Renderer, health HealthChecker) *Handler {
	return &Handler{board: board, message: message, renderer: renderer, health: health}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
