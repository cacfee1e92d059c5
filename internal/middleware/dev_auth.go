package middleware

import (
	"net/http"

	"go_chess_puzzle_keep/internal/model"
	"go_chess_puzzle_keep/internal/webutil"

	"github.com/google/uuid"
)

// DevLearnerContextMiddleware は開発時用ミドルウェアです。
// X-Learner-ID ヘッダーからUUIDを抽出し、コンテキストに設定します。
// DBでの学習者存在チェックは行いません。
func DevLearnerContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		raw := r.Header.Get("X-Learner-ID")
		if raw == "" {
			logger.Warn("[DEV AUTH] X-Learner-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-Learner-ID ヘッダーが必要です。", "", model.ErrUnauthorized))
			return
		}

		learnerID, err := uuid.Parse(raw)
		if err != nil {
			logger.Warn("[DEV AUTH] Invalid X-Learner-ID format", "value", raw)
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-Learner-ID の形式が正しくありません。", "", model.ErrUnauthorized))
			return
		}

		logger.Debug("[DEV AUTH] learner id set to context (no validation)", "learner_id", learnerID)
		next.ServeHTTP(w, r.WithContext(WithLearnerID(r.Context(), learnerID)))
	})
}
