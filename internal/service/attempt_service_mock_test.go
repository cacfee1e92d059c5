package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_chess_puzzle_keep/internal/model"
	"go_chess_puzzle_keep/internal/puzzle"
	"go_chess_puzzle_keep/internal/repository"
	"go_chess_puzzle_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type attemptMocks struct {
	store    *mocks.AttemptStore
	learners *mocks.LearnerRepository
	puzzles  *mocks.PuzzleRepository
	lessons  *mocks.LessonRepository
	history  *mocks.HistoryRepository
	progress *mocks.LessonProgressRepository
}

func newMockedAttemptService(t *testing.T) (AttemptService, *attemptMocks) {
	t.Helper()
	m := &attemptMocks{
		store:    mocks.NewAttemptStore(t),
		learners: mocks.NewLearnerRepository(t),
		puzzles:  mocks.NewPuzzleRepository(t),
		lessons:  mocks.NewLessonRepository(t),
		history:  mocks.NewHistoryRepository(t),
		progress: mocks.NewLessonProgressRepository(t),
	}
	svc := NewAttemptService(setupTestDB(t), AttemptServiceDeps{
		Store:        m.store,
		LearnerRepo:  m.learners,
		PuzzleRepo:   m.puzzles,
		LessonRepo:   m.lessons,
		HistoryRepo:  m.history,
		ProgressRepo: m.progress,
		Aggregator:   NewAggregatorFromConfig(newTestConfig()),
	})
	return svc, m
}

// storedAttempt はストアに入っている進行中の挑戦を作ります。
func storedAttempt(t *testing.T, learnerID, puzzleID uuid.UUID, line []string) *repository.AttemptRecord {
	t.Helper()
	a, err := puzzle.New(startFEN, line)
	require.NoError(t, err)
	return &repository.AttemptRecord{
		AttemptID: uuid.New(),
		LearnerID: learnerID,
		PuzzleID:  puzzleID,
		StartedAt: time.Now().Add(-time.Minute),
		Snapshot:  a.Snapshot(),
	}
}

func TestAttemptService_TransitionNotPersistedOnError(t *testing.T) {
	ctx := context.Background()
	learnerID, puzzleID := uuid.New(), uuid.New()

	tests := []struct {
		name     string
		call     func(svc AttemptService, attemptID uuid.UUID) (*model.AttemptResponse, error)
		saveErr  error
		wantSave bool
		wantCode string
	}{
		{
			name: "異常系: 保存に失敗",
			call: func(svc AttemptService, id uuid.UUID) (*model.AttemptResponse, error) {
				return svc.SubmitMove(ctx, learnerID, id, "e2e4")
			},
			saveErr:  errors.New("redis: connection refused"),
			wantSave: true,
			wantCode: "INTERNAL_SERVER_ERROR",
		},
		{
			name: "異常系: 手番でない遷移は保存しない",
			call: func(svc AttemptService, id uuid.UUID) (*model.AttemptResponse, error) {
				return svc.AutoReply(ctx, learnerID, id)
			},
			wantCode: "INVALID_TRANSITION",
		},
		{
			name: "異常系: 駒のないマスからの手は保存しない",
			call: func(svc AttemptService, id uuid.UUID) (*model.AttemptResponse, error) {
				return svc.SubmitMove(ctx, learnerID, id, "e4e5")
			},
			wantCode: "UNKNOWN_MOVE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newMockedAttemptService(t)
			rec := storedAttempt(t, learnerID, puzzleID, []string{"e2e4", "e7e5", "g1f3"})
			m.store.On("Load", mock.Anything, rec.AttemptID).Return(rec, nil).Once()
			if tt.wantSave {
				m.store.On("Save", mock.Anything, mock.AnythingOfType("*repository.AttemptRecord")).Return(tt.saveErr).Once()
			}

			got, err := tt.call(svc, rec.AttemptID)
			require.Error(t, err)
			assert.Nil(t, got)
			var appErr *model.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantCode, appErr.Code)
			// Save を期待しないケースで呼ばれればモックが失敗する
			m.store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		})
	}
}

func TestAttemptService_StartAttempt_SaveFails(t *testing.T) {
	ctx := context.Background()
	svc, m := newMockedAttemptService(t)
	learnerID, puzzleID := uuid.New(), uuid.New()

	m.learners.On("FindByID", mock.Anything, mock.Anything, learnerID).Return(&model.Learner{LearnerID: learnerID, Rating: 1500}, nil).Once()
	m.puzzles.On("FindByID", mock.Anything, mock.Anything, puzzleID).Return(&model.Puzzle{
		PuzzleID: puzzleID, StartingFEN: startFEN, ExpectedMoves: []string{"e2e4"}, Rating: 1500,
	}, nil).Once()
	m.store.On("Save", mock.Anything, mock.AnythingOfType("*repository.AttemptRecord")).Return(errors.New("redis: timeout")).Once()

	got, err := svc.StartAttempt(ctx, learnerID, puzzleID)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, model.ErrInternalServer)
}

func TestAttemptService_Finalize_WithMocks(t *testing.T) {
	ctx := context.Background()
	learnerID, puzzleID, lessonID := uuid.New(), uuid.New(), uuid.New()
	lesson := &model.Lesson{
		LessonID:         lessonID,
		PuzzleSetVersion: 2,
		Puzzles:          []model.Puzzle{{PuzzleID: puzzleID, LessonID: &lessonID}},
	}
	stored := &model.Puzzle{
		PuzzleID:      puzzleID,
		LessonID:      &lessonID,
		StartingFEN:   startFEN,
		ExpectedMoves: []string{"e2e4"},
		Rating:        1500,
	}

	t.Run("正常系: 履歴・レーティング・進捗を保存してストアから消す", func(t *testing.T) {
		svc, m := newMockedAttemptService(t)
		rec := storedAttempt(t, learnerID, puzzleID, []string{"e2e4"})

		m.store.On("Load", mock.Anything, rec.AttemptID).Return(rec, nil).Once()
		m.learners.On("FindByIDForUpdate", mock.Anything, mock.Anything, learnerID).Return(&model.Learner{LearnerID: learnerID, Rating: 1500}, nil).Once()
		m.puzzles.On("FindByID", mock.Anything, mock.Anything, puzzleID).Return(stored, nil).Once()
		m.lessons.On("FindByID", mock.Anything, mock.Anything, lessonID).Return(lesson, nil).Once()
		m.progress.On("Find", mock.Anything, mock.Anything, learnerID, lessonID).Return(nil, model.ErrNotFound).Once()
		m.history.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(h *model.PuzzleHistory) bool {
			return h.Status == model.StatusSolved && h.RatingBefore == 1500 && h.RatingAfter == 1516
		})).Return(nil).Once()
		m.learners.On("UpdateRating", mock.Anything, mock.Anything, learnerID, 1516).Return(nil).Once()
		m.progress.On("Upsert", mock.Anything, mock.Anything, mock.MatchedBy(func(p *model.LessonProgress) bool {
			return p.CompletedCount == 1 && p.PuzzleSetVersion == 2 && p.HasCompleted(puzzleID)
		})).Return(nil).Once()
		m.store.On("Delete", mock.Anything, rec.AttemptID).Return(nil).Once()

		got, err := svc.SubmitMove(ctx, learnerID, rec.AttemptID, "e2e4")
		require.NoError(t, err)
		require.NotNil(t, got.Result)
		assert.Equal(t, "Solved", got.State)
		assert.Equal(t, 1516, got.Result.RatingAfter)
	})

	t.Run("異常系: 履歴の保存に失敗したら挑戦は残す", func(t *testing.T) {
		svc, m := newMockedAttemptService(t)
		rec := storedAttempt(t, learnerID, puzzleID, []string{"e2e4"})

		m.store.On("Load", mock.Anything, rec.AttemptID).Return(rec, nil).Once()
		m.learners.On("FindByIDForUpdate", mock.Anything, mock.Anything, learnerID).Return(&model.Learner{LearnerID: learnerID, Rating: 1500}, nil).Once()
		m.puzzles.On("FindByID", mock.Anything, mock.Anything, puzzleID).Return(stored, nil).Once()
		m.lessons.On("FindByID", mock.Anything, mock.Anything, lessonID).Return(lesson, nil).Once()
		m.progress.On("Find", mock.Anything, mock.Anything, learnerID, lessonID).Return(nil, model.ErrNotFound).Once()
		m.history.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.PuzzleHistory")).Return(errors.New("disk full")).Once()

		got, err := svc.SubmitMove(ctx, learnerID, rec.AttemptID, "e2e4")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, model.ErrInternalServer)
		m.learners.AssertNotCalled(t, "UpdateRating", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		m.progress.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
		m.store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
