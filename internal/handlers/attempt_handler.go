package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"go_chess_puzzle_keep/internal/model"
	"go_chess_puzzle_keep/internal/service"
	"go_chess_puzzle_keep/internal/webutil"

	"github.com/google/uuid"
)

// AttemptHandler はパズル挑戦の各操作を扱います。
// 状態遷移の順序違反は service が INVALID_TRANSITION (409) として返します。
type AttemptHandler struct {
	service service.AttemptService
	logger  *slog.Logger
}

func NewAttemptHandler(s service.AttemptService, logger *slog.Logger) *AttemptHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AttemptHandler{
		service: s,
		logger:  logger,
	}
}

func (h *AttemptHandler) PostAttempt(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "PostAttempt")

	learnerID, ok := learnerFromRequest(w, r, logger)
	if !ok {
		return
	}
	var req model.StartAttemptRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.StartAttempt(r.Context(), learnerID, req.PuzzleID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Attempt started", slog.String("attempt_id", resp.AttemptID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

func (h *AttemptHandler) GetAttempt(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, "GetAttempt", h.service.GetAttempt)
}

// PostMove は学習者の手 (UCI) を受け付けます。
func (h *AttemptHandler) PostMove(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "PostMove")

	learnerID, ok := learnerFromRequest(w, r, logger)
	if !ok {
		return
	}
	attemptID, ok := uuidParam(w, r, logger, "attempt_id")
	if !ok {
		return
	}
	var req model.SubmitMoveRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.SubmitMove(r.Context(), learnerID, attemptID, req.Move)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Move submitted", slog.String("attempt_id", attemptID.String()), slog.String("state", resp.State))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

func (h *AttemptHandler) PostAutoReply(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, "PostAutoReply", h.service.AutoReply)
}

func (h *AttemptHandler) PostHint(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, "PostHint", h.service.RequestHint)
}

func (h *AttemptHandler) PostAbandon(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, "PostAbandon", h.service.Abandon)
}

// run はボディを取らない操作の共通処理です。
func (h *AttemptHandler) run(w http.ResponseWriter, r *http.Request, name string, op func(context.Context, uuid.UUID, uuid.UUID) (*model.AttemptResponse, error)) {
	logger := requestLogger(r, h.logger, name)

	learnerID, ok := learnerFromRequest(w, r, logger)
	if !ok {
		return
	}
	attemptID, ok := uuidParam(w, r, logger, "attempt_id")
	if !ok {
		return
	}

	resp, err := op(r.Context(), learnerID, attemptID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Debug("Attempt operation done", slog.String("attempt_id", attemptID.String()), slog.String("state", resp.State))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
