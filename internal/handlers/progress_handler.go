package handlers

import (
	"log/slog"
	"net/http"

	"go_chess_puzzle_keep/internal/model"
	"go_chess_puzzle_keep/internal/service"
	"go_chess_puzzle_keep/internal/webutil"
)

type ProgressHandler struct {
	service service.ProgressService
	logger  *slog.Logger
}

func NewProgressHandler(s service.ProgressService, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressHandler{
		service: s,
		logger:  logger,
	}
}

// GetHistory は学習者の挑戦履歴を新しい順に返します (?limit=)
func (h *ProgressHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetHistory")

	learnerID, ok := learnerFromRequest(w, r, logger)
	if !ok {
		return
	}
	limit, err := webutil.QueryInt(r, "limit", 0)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	histories, err := h.service.ListHistory(r.Context(), learnerID, limit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if histories == nil {
		histories = []*model.PuzzleHistory{}
	}
	logger.Info("History listed successfully", slog.Int("count", len(histories)))
	webutil.RespondWithJSON(w, http.StatusOK, histories, logger)
}

func (h *ProgressHandler) GetLessonProgress(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetLessonProgress")

	learnerID, ok := learnerFromRequest(w, r, logger)
	if !ok {
		return
	}
	lessonID, ok := uuidParam(w, r, logger, "lesson_id")
	if !ok {
		return
	}

	resp, err := h.service.GetLessonProgress(r.Context(), learnerID, lessonID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
