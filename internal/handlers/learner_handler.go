package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_chess_puzzle_keep/internal/model"
	"go_chess_puzzle_keep/internal/service"
	"go_chess_puzzle_keep/internal/webutil"
)

type LearnerHandler struct {
	service service.LearnerService
	logger  *slog.Logger
}

func NewLearnerHandler(s service.LearnerService, logger *slog.Logger) *LearnerHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LearnerHandler{
		service: s,
		logger:  logger,
	}
}

// PostLearner は学習者を登録します。認証不要。
func (h *LearnerHandler) PostLearner(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "PostLearner")

	var req model.CreateLearnerRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid learner request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	learner, err := h.service.CreateLearner(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			logger.Info("Learner already exists")
		} else {
			logger.Error("Error creating learner in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Learner created successfully", slog.String("learner_id", learner.LearnerID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, model.NewLearnerResponse(learner), logger)
}

// GetMe は認証中の学習者を返します
func (h *LearnerHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetMe")

	learnerID, ok := learnerFromRequest(w, r, logger)
	if !ok {
		return
	}

	learner, err := h.service.GetLearner(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.NewLearnerResponse(learner), logger)
}
