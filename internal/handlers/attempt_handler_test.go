package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go_chess_puzzle_keep/internal/model"
)

func TestAttemptHandler_PostAttempt(t *testing.T) {
	learnerID := uuid.New()
	puzzleID := uuid.New()

	tests := []struct {
		name           string
		learnerID      *uuid.UUID
		body           interface{}
		setupMock      func(ms *mockServices)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:      "正常系: 挑戦開始",
			learnerID: &learnerID,
			body:      model.StartAttemptRequest{PuzzleID: puzzleID},
			setupMock: func(ms *mockServices) {
				ms.attempts.On("StartAttempt", mock.Anything, learnerID, puzzleID).Return(&model.AttemptResponse{
					AttemptID:  uuid.New(),
					PuzzleID:   puzzleID,
					State:      "AwaitingLearnerMove",
					FEN:        startFEN,
					TotalMoves: 3,
				}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "異常系: 認証なし",
			body:           model.StartAttemptRequest{PuzzleID: puzzleID},
			setupMock:      func(ms *mockServices) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "UNAUTHORIZED",
		},
		{
			name:           "異常系: puzzle_idなし",
			learnerID:      &learnerID,
			body:           map[string]string{},
			setupMock:      func(ms *mockServices) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:      "異常系: パズルが存在しない",
			learnerID: &learnerID,
			body:      model.StartAttemptRequest{PuzzleID: puzzleID},
			setupMock: func(ms *mockServices) {
				ms.attempts.On("StartAttempt", mock.Anything, learnerID, puzzleID).
					Return(nil, model.NewAppError("PUZZLE_NOT_FOUND", "パズルが見つかりません。", "puzzle_id", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "PUZZLE_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, ms := newMockRouter(t)
			tt.setupMock(ms)

			rr := executeRequest(router, createRequest(t, http.MethodPost, "/api/v1/attempts", tt.body, tt.learnerID))
			assert.Equal(t, tt.expectedStatus, rr.Code, rr.Body.String())
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rr).Code)
				return
			}
			var resp model.AttemptResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "AwaitingLearnerMove", resp.State)
			assert.Equal(t, startFEN, resp.FEN)
		})
	}
}

func TestAttemptHandler_PostMove(t *testing.T) {
	learnerID := uuid.New()
	attemptID := uuid.New()
	path := "/api/v1/attempts/" + attemptID.String() + "/moves"

	tests := []struct {
		name           string
		path           string
		body           interface{}
		setupMock      func(ms *mockServices)
		expectedStatus int
		expectedCode   string
		expectedState  string
	}{
		{
			name: "正常系: 正解の手",
			path: path,
			body: model.SubmitMoveRequest{Move: "e2e4"},
			setupMock: func(ms *mockServices) {
				ms.attempts.On("SubmitMove", mock.Anything, learnerID, attemptID, "e2e4").
					Return(&model.AttemptResponse{AttemptID: attemptID, State: "AwaitingAutoReply", MoveIndex: 1}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedState:  "AwaitingAutoReply",
		},
		{
			name: "正常系: 最後の手で終局し結果が付く",
			path: path,
			body: model.SubmitMoveRequest{Move: "g1f3"},
			setupMock: func(ms *mockServices) {
				ms.attempts.On("SubmitMove", mock.Anything, learnerID, attemptID, "g1f3").
					Return(&model.AttemptResponse{AttemptID: attemptID, State: "Solved", Result: &model.PuzzleHistory{
						Status: model.StatusSolved, RatingBefore: 1500, RatingAfter: 1516,
					}}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedState:  "Solved",
		},
		{
			name:           "異常系: UCI形式でない",
			path:           path,
			body:           model.SubmitMoveRequest{Move: "Nf3"},
			setupMock:      func(ms *mockServices) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "異常系: 手番側の駒がない",
			path: path,
			body: model.SubmitMoveRequest{Move: "e3e4"},
			setupMock: func(ms *mockServices) {
				ms.attempts.On("SubmitMove", mock.Anything, learnerID, attemptID, "e3e4").
					Return(nil, model.NewAppError("UNKNOWN_MOVE", "指し手を解釈できません。", "move", model.ErrInvalidInput)).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "UNKNOWN_MOVE",
		},
		{
			name: "異常系: 自動応手待ちでの手",
			path: path,
			body: model.SubmitMoveRequest{Move: "e7e5"},
			setupMock: func(ms *mockServices) {
				ms.attempts.On("SubmitMove", mock.Anything, learnerID, attemptID, "e7e5").
					Return(nil, model.NewAppError("INVALID_TRANSITION", "現在の状態ではこの操作はできません。", "", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "INVALID_TRANSITION",
		},
		{
			name:           "異常系: 不正な挑戦ID",
			path:           "/api/v1/attempts/123/moves",
			body:           model.SubmitMoveRequest{Move: "e2e4"},
			setupMock:      func(ms *mockServices) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_URL_PARAM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, ms := newMockRouter(t)
			tt.setupMock(ms)

			rr := executeRequest(router, createRequest(t, http.MethodPost, tt.path, tt.body, &learnerID))
			assert.Equal(t, tt.expectedStatus, rr.Code, rr.Body.String())
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rr).Code)
				return
			}
			var resp model.AttemptResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedState, resp.State)
		})
	}
}

func TestAttemptHandler_BodylessOperations(t *testing.T) {
	learnerID := uuid.New()
	attemptID := uuid.New()
	base := "/api/v1/attempts/" + attemptID.String()

	tests := []struct {
		name           string
		method         string
		path           string
		mockMethod     string
		ret            *model.AttemptResponse
		err            error
		expectedStatus int
		check          func(t *testing.T, resp model.AttemptResponse)
	}{
		{
			name:           "正常系: 状態取得",
			method:         http.MethodGet,
			path:           base,
			mockMethod:     "GetAttempt",
			ret:            &model.AttemptResponse{AttemptID: attemptID, State: "AwaitingLearnerMove"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "正常系: 自動応手",
			method:         http.MethodPost,
			path:           base + "/auto-reply",
			mockMethod:     "AutoReply",
			ret:            &model.AttemptResponse{AttemptID: attemptID, State: "AwaitingLearnerMove", ReplyMove: "e7e5"},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp model.AttemptResponse) {
				assert.Equal(t, "e7e5", resp.ReplyMove)
			},
		},
		{
			name:           "正常系: ヒント",
			method:         http.MethodPost,
			path:           base + "/hint",
			mockMethod:     "RequestHint",
			ret:            &model.AttemptResponse{AttemptID: attemptID, State: "AwaitingLearnerMove", HintUsed: true, HintSquare: "g1"},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp model.AttemptResponse) {
				assert.True(t, resp.HintUsed)
				assert.Equal(t, "g1", resp.HintSquare)
			},
		},
		{
			name:           "正常系: 放棄",
			method:         http.MethodPost,
			path:           base + "/abandon",
			mockMethod:     "Abandon",
			ret:            &model.AttemptResponse{AttemptID: attemptID, State: "Abandoned", Result: &model.PuzzleHistory{Status: model.StatusAbandoned}},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp model.AttemptResponse) {
				require.NotNil(t, resp.Result)
				assert.Equal(t, model.StatusAbandoned, resp.Result.Status)
			},
		},
		{
			name:           "異常系: 終局後の放棄",
			method:         http.MethodPost,
			path:           base + "/abandon",
			mockMethod:     "Abandon",
			err:            model.NewAppError("ATTEMPT_NOT_FOUND", "挑戦が見つかりません。終了済みか期限切れです。", "", model.ErrNotFound),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "異常系: 応手待ちでないときの自動応手",
			method:         http.MethodPost,
			path:           base + "/auto-reply",
			mockMethod:     "AutoReply",
			err:            model.NewAppError("INVALID_TRANSITION", "現在の状態ではこの操作はできません。", "", model.ErrConflict),
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, ms := newMockRouter(t)
			if tt.err != nil {
				ms.attempts.On(tt.mockMethod, mock.Anything, learnerID, attemptID).Return(nil, tt.err).Once()
			} else {
				ms.attempts.On(tt.mockMethod, mock.Anything, learnerID, attemptID).Return(tt.ret, nil).Once()
			}

			rr := executeRequest(router, createRequest(t, tt.method, tt.path, nil, &learnerID))
			require.Equal(t, tt.expectedStatus, rr.Code, rr.Body.String())
			if tt.err != nil {
				return
			}
			var resp model.AttemptResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.ret.State, resp.State)
			if tt.check != nil {
				tt.check(t, resp)
			}
		})
	}
}
