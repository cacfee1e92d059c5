package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"go_chess_puzzle_keep/internal/config"
	"go_chess_puzzle_keep/internal/model"
	"go_chess_puzzle_keep/internal/webutil"
)

// Pinger はDBの疎通確認です
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

func NewHealthHandler(db Pinger, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{db: db, logger: logger}
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetHealth")

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.PingContext(ctx); err != nil {
		logger.Error("Database ping failed", slog.Any("error", err))
		webutil.HandleError(w, logger, model.NewAppError("DB_UNAVAILABLE", "データベースに接続できません。", "", err))
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: config.AppVersion}, logger)
}
