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

func TestProgressHandler_GetHistory(t *testing.T) {
	learnerID := uuid.New()

	tests := []struct {
		name           string
		path           string
		setupMock      func(ms *mockServices)
		expectedStatus int
		expectedLen    int
	}{
		{
			name: "正常系: limit指定",
			path: "/api/v1/history?limit=2",
			setupMock: func(ms *mockServices) {
				ms.progress.On("ListHistory", mock.Anything, learnerID, 2).Return([]*model.PuzzleHistory{
					{HistoryID: uuid.New(), Status: model.StatusSolved},
					{HistoryID: uuid.New(), Status: model.StatusFailed},
				}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedLen:    2,
		},
		{
			name: "正常系: limit省略は0で渡す",
			path: "/api/v1/history",
			setupMock: func(ms *mockServices) {
				ms.progress.On("ListHistory", mock.Anything, learnerID, 0).Return(nil, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedLen:    0,
		},
		{
			name:           "異常系: 負のlimit",
			path:           "/api/v1/history?limit=-1",
			setupMock:      func(ms *mockServices) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, ms := newMockRouter(t)
			tt.setupMock(ms)

			rr := executeRequest(router, createRequest(t, http.MethodGet, tt.path, nil, &learnerID))
			require.Equal(t, tt.expectedStatus, rr.Code, rr.Body.String())
			if tt.expectedStatus != http.StatusOK {
				assert.Equal(t, "INVALID_QUERY_PARAM", decodeError(t, rr).Code)
				return
			}
			var histories []model.PuzzleHistory
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &histories))
			assert.NotNil(t, histories)
			assert.Len(t, histories, tt.expectedLen)
		})
	}
}

func TestProgressHandler_GetLessonProgress(t *testing.T) {
	learnerID := uuid.New()
	lessonID := uuid.New()
	done := uuid.New()

	t.Run("正常系: 進捗", func(t *testing.T) {
		router, ms := newMockRouter(t)
		ms.progress.On("GetLessonProgress", mock.Anything, learnerID, lessonID).Return(&model.LessonProgressResponse{
			LessonID:           lessonID,
			CompletedPuzzleIDs: []uuid.UUID{done},
			CompletedCount:     1,
			TotalPuzzles:       4,
			PuzzleSetVersion:   2,
		}, nil).Once()

		rr := executeRequest(router, createRequest(t, http.MethodGet, "/api/v1/lessons/"+lessonID.String()+"/progress", nil, &learnerID))
		require.Equal(t, http.StatusOK, rr.Code)
		var resp model.LessonProgressResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, []uuid.UUID{done}, resp.CompletedPuzzleIDs)
		assert.Equal(t, 4, resp.TotalPuzzles)
	})

	t.Run("異常系: レッスンが存在しない", func(t *testing.T) {
		router, ms := newMockRouter(t)
		ms.progress.On("GetLessonProgress", mock.Anything, learnerID, lessonID).
			Return(nil, model.NewAppError("LESSON_NOT_FOUND", "レッスンが見つかりません。", "", model.ErrNotFound)).Once()

		rr := executeRequest(router, createRequest(t, http.MethodGet, "/api/v1/lessons/"+lessonID.String()+"/progress", nil, &learnerID))
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "LESSON_NOT_FOUND", decodeError(t, rr).Code)
	})
}
