package handlers

import (
	"log/slog"
	"net/http"

	"go_chess_puzzle_keep/internal/middleware"
	"go_chess_puzzle_keep/internal/model"
	"go_chess_puzzle_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// learnerFromRequest は認証ミドルウェアがセットした学習者IDを取り出します。
// 取れなければエラーレスポンスを書いて false を返します。
func learnerFromRequest(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized))
		return uuid.Nil, false
	}
	return learnerID, true
}

// uuidParam はURLパスのUUIDを読みます。
func uuidParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("Invalid UUID in URL", slog.String("param", name), slog.String("value", raw))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_URL_PARAM", name+"の形式が正しくありません。", name, model.ErrInvalidInput))
		return uuid.Nil, false
	}
	return id, true
}

// requestLogger はリクエストスコープのロガーにハンドラ名を付けます。
func requestLogger(r *http.Request, fallback *slog.Logger, handler string) *slog.Logger {
	logger := middleware.GetLogger(r.Context())
	if logger == slog.Default() && fallback != nil {
		logger = fallback
	}
	return logger.With(slog.String("handler", handler))
}
