package webutil

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_chess_puzzle_keep/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"正常系: NotFound", model.ErrNotFound, http.StatusNotFound},
		{"正常系: AppErrorでラップされたInvalidInput", model.NewAppError("INVALID_FEN", "x", "fen", model.ErrInvalidInput), http.StatusBadRequest},
		{"正常系: fmtでラップされたConflict", fmt.Errorf("save: %w", model.ErrConflict), http.StatusConflict},
		{"正常系: Unauthorized", model.ErrUnauthorized, http.StatusUnauthorized},
		{"正常系: Forbidden", model.ErrForbidden, http.StatusForbidden},
		{"正常系: Joinされたエラー", model.NewAppError("X", "x", "", errors.Join(model.ErrInvalidInput, errors.New("detail"))), http.StatusBadRequest},
		{"異常系: 未知のエラー", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestHandleError(t *testing.T) {
	t.Run("正常系: AppErrorの詳細を返す", func(t *testing.T) {
		rr := httptest.NewRecorder()
		HandleError(rr, discardLogger, model.NewAppError("INVALID_TRANSITION", "この操作は現在できません。", "", model.ErrConflict))

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"error":{"code":"INVALID_TRANSITION","message":"この操作は現在できません。"}}`, rr.Body.String())
	})

	t.Run("異常系: 想定外のエラーは詳細を隠す", func(t *testing.T) {
		rr := httptest.NewRecorder()
		HandleError(rr, discardLogger, errors.New("db is on fire"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "fire")
		assert.Contains(t, rr.Body.String(), "INTERNAL_SERVER_ERROR")
	})
}

type sampleRequest struct {
	FEN   string   `json:"fen" validate:"required,fen"`
	Moves []string `json:"moves" validate:"required,min=1,dive,uci"`
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantErr   bool
		wantField string
	}{
		{
			name: "正常系: 妥当なFENと指し手",
			body: `{"fen":"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1","moves":["e2e4","e7e8q"]}`,
		},
		{
			name:      "異常系: FENが不正",
			body:      `{"fen":"rnbqkbnr/pppppppp9/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1","moves":["e2e4"]}`,
			wantErr:   true,
			wantField: "fen",
		},
		{
			name:      "異常系: 指し手が不正",
			body:      `{"fen":"8/8/8/8/8/8/8/K6k w - - 0 1","moves":["e2-e4"]}`,
			wantErr:   true,
			wantField: "moves[0]",
		},
		{
			name:    "異常系: 未知のフィールド",
			body:    `{"fen":"8/8/8/8/8/8/8/K6k w - - 0 1","moves":["a1a2"],"extra":1}`,
			wantErr: true,
		},
		{
			name:    "異常系: 空ボディ",
			body:    ``,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst sampleRequest
			err := DecodeAndValidate(req, &dst)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
			if tt.wantField != "" {
				var appErr *model.AppError
				require.True(t, errors.As(err, &appErr))
				assert.Equal(t, tt.wantField, appErr.Field)
				assert.NotEmpty(t, appErr.Message)
			}
		})
	}
}

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=5&bad=x", nil)

	v, err := QueryInt(req, "limit", 20)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	v, err = QueryInt(req, "missing", 20)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	_, err = QueryInt(req, "bad", 20)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
