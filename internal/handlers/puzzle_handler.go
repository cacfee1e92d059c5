package handlers

import (
	"log/slog"
	"net/http"

	"go_chess_puzzle_keep/internal/model"
	"go_chess_puzzle_keep/internal/service"
	"go_chess_puzzle_keep/internal/webutil"
)

type PuzzleHandler struct {
	service service.PuzzleService
	logger  *slog.Logger
}

func NewPuzzleHandler(s service.PuzzleService, logger *slog.Logger) *PuzzleHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PuzzleHandler{
		service: s,
		logger:  logger,
	}
}

// PostPuzzle はパズルを作成します。手順の監査は service 側で行います。
func (h *PuzzleHandler) PostPuzzle(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "PostPuzzle")

	var req model.CreatePuzzleRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid puzzle request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	p, err := h.service.CreatePuzzle(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Puzzle created successfully", slog.String("puzzle_id", p.PuzzleID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, p, logger)
}

// GetPuzzles はパズル一覧を返します (?difficulty=&theme=&limit=)
func (h *PuzzleHandler) GetPuzzles(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetPuzzles")

	limit, err := webutil.QueryInt(r, "limit", 0)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	q := r.URL.Query()
	filter := model.ListPuzzlesFilter{
		Difficulty: model.Difficulty(q.Get("difficulty")),
		Theme:      q.Get("theme"),
		Limit:      limit,
	}

	puzzles, err := h.service.ListPuzzles(r.Context(), filter)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if puzzles == nil {
		puzzles = []*model.Puzzle{}
	}
	logger.Info("Puzzles listed successfully", slog.Int("count", len(puzzles)))
	webutil.RespondWithJSON(w, http.StatusOK, puzzles, logger)
}

func (h *PuzzleHandler) GetPuzzle(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "GetPuzzle")

	puzzleID, ok := uuidParam(w, r, logger, "puzzle_id")
	if !ok {
		return
	}
	p, err := h.service.GetPuzzle(r.Context(), puzzleID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, p, logger)
}

// PostPreview はパズルの開始局面をプレビューに渡します。
func (h *PuzzleHandler) PostPreview(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "PostPreview")

	puzzleID, ok := uuidParam(w, r, logger, "puzzle_id")
	if !ok {
		return
	}
	resp, err := h.service.Preview(r.Context(), puzzleID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// PostPositionFacts はFENの手番と駒配置を返します。
// FENの検証は service 側でエラー種別ごとに行うので、ここでは required のみ。
func (h *PuzzleHandler) PostPositionFacts(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, h.logger, "PostPositionFacts")

	var req model.PositionFactsRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	facts, err := h.service.PositionFacts(r.Context(), req.FEN)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, facts, logger)
}
