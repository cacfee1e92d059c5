// internal/handlers/main_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"go_chess_puzzle_keep/internal/handlers"
	"go_chess_puzzle_keep/internal/middleware"
	"go_chess_puzzle_keep/internal/model"
	"go_chess_puzzle_keep/internal/service/mocks"
)

var testLogger *slog.Logger

// TestMain はパッケージ共通のロガーを用意します。
// TEST_LOG_DEBUG を指定するとハンドラのログを標準エラーに出します。
func TestMain(m *testing.M) {
	if os.Getenv("TEST_LOG_DEBUG") != "" {
		testLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	} else {
		testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	slog.SetDefault(testLogger)

	os.Exit(m.Run())
}

// mockServices はハンドラテスト用のサービスモック一式です。
type mockServices struct {
	learners *mocks.LearnerService
	puzzles  *mocks.PuzzleService
	attempts *mocks.AttemptService
	progress *mocks.ProgressService
}

// newMockRouter はモックを注入した /api/v1 ルーターを作ります。
// 認証は X-Learner-ID ヘッダーを使う開発用ミドルウェアです。
func newMockRouter(t *testing.T) (*chi.Mux, *mockServices) {
	t.Helper()
	ms := &mockServices{
		learners: mocks.NewLearnerService(t),
		puzzles:  mocks.NewPuzzleService(t),
		attempts: mocks.NewAttemptService(t),
		progress: mocks.NewProgressService(t),
	}
	api := &handlers.API{
		Learners: handlers.NewLearnerHandler(ms.learners, testLogger),
		Puzzles:  handlers.NewPuzzleHandler(ms.puzzles, testLogger),
		Attempts: handlers.NewAttemptHandler(ms.attempts, testLogger),
		Progress: handlers.NewProgressHandler(ms.progress, testLogger),
	}
	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		api.Mount(r, middleware.DevLearnerContextMiddleware)
	})
	return r, ms
}

// createRequest はテスト用のHTTPリクエストを作ります。
// learnerID が指定されていれば X-Learner-ID ヘッダーを追加します。
func createRequest(t *testing.T, method, url string, body interface{}, learnerID *uuid.UUID) *http.Request {
	t.Helper()
	var reqBodyBytes []byte
	if body != nil {
		switch b := body.(type) {
		case string:
			reqBodyBytes = []byte(b)
		case []byte:
			reqBodyBytes = b
		default:
			var err error
			reqBodyBytes, err = json.Marshal(body)
			require.NoError(t, err, "Failed to marshal request body")
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBodyBytes))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if learnerID != nil {
		req.Header.Set("X-Learner-ID", learnerID.String())
	}
	return req
}

// executeRequest はルーターにリクエストを流してレコーダーを返します。
func executeRequest(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// decodeError はエラーレスポンスのボディを読みます。
func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp.Error
}
