package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var fromCtx *slog.Logger
	handler := middleware.RequestID(LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = GetLogger(r.Context())
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":{"code":"INVALID_TRANSITION"}}`))
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attempts/x/auto-reply", strings.NewReader(`{"move":"e2e4"}`))
	req.Header.Set("Authorization", "Bearer secret-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.NotNil(t, fromCtx)
	assert.NotSame(t, slog.Default(), fromCtx)
	assert.Equal(t, http.StatusConflict, rr.Code)

	out := buf.String()
	assert.Contains(t, out, `"msg":"Request started"`)
	assert.Contains(t, out, `"level":"WARN","msg":"Request completed"`)
	assert.Contains(t, out, `"req_id"`)
	assert.Contains(t, out, `e2e4`)
	assert.Contains(t, out, `INVALID_TRANSITION`)
	assert.NotContains(t, out, "secret-token")
}

func TestGetLogger_Default(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Same(t, slog.Default(), GetLogger(req.Context()))

	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, custom, GetLogger(WithLogger(req.Context(), custom)))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantLen int
	}{
		{name: "正常系: 上限以下はそのまま", in: "short", wantLen: len("short")},
		{name: "正常系: ちょうど上限", in: strings.Repeat("a", maxLoggedBody), wantLen: maxLoggedBody},
		{name: "正常系: 上限を少し超える", in: strings.Repeat("a", maxLoggedBody+10), wantLen: maxLoggedBody + len(truncatedSuffix)},
		// "あ" は3バイト。2048 は3の倍数でないので文字の途中で切れる位置になる
		{name: "正常系: マルチバイト文字の途中では切らない", in: strings.Repeat("あ", maxLoggedBody), wantLen: maxLoggedBody/3*3 + len(truncatedSuffix)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in)
			assert.Len(t, got, tt.wantLen)
			assert.True(t, utf8.ValidString(got))
			if len(tt.in) > maxLoggedBody {
				assert.True(t, strings.HasSuffix(got, truncatedSuffix))
				assert.True(t, strings.HasPrefix(tt.in, strings.TrimSuffix(got, truncatedSuffix)))
			} else {
				assert.Equal(t, tt.in, got)
			}
		})
	}
}
