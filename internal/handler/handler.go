package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/campusboard/campusboard/internal/logger"
	"github.com/campusboard/campusboard/internal/service"
)

// Pinger is the subset of storage the readiness probe needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth    service.AuthService
	profile service.ProfileService
	thread  service.ThreadService
	reply   service.ReplyService
	health  Pinger
}

func New(auth service.AuthService, profile service.ProfileService, thread service.ThreadService, reply service.ReplyService, health Pinger) *Handler {
	return &Handler{auth, profile, thread, reply, health}
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
