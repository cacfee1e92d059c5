package service

import (
	"context"
	"errors"

	"go_chess_puzzle_keep/internal/config"
	"go_chess_puzzle_keep/internal/middleware"
	"go_chess_puzzle_keep/internal/model"
	"go_chess_puzzle_keep/internal/progress"
	"go_chess_puzzle_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressService interface {
	ListHistory(ctx context.Context, learnerID uuid.UUID, limit int) ([]*model.PuzzleHistory, error)
	GetLessonProgress(ctx context.Context, learnerID, lessonID uuid.UUID) (*model.LessonProgressResponse, error)
}

type progressService struct {
	db           *gorm.DB
	historyRepo  repository.HistoryRepository
	lessonRepo   repository.LessonRepository
	progressRepo repository.LessonProgressRepository
	cfg          *config.Config
}

func NewProgressService(db *gorm.DB, historyRepo repository.HistoryRepository, lessonRepo repository.LessonRepository, progressRepo repository.LessonProgressRepository, cfg *config.Config) ProgressService {
	return &progressService{
		db:           db,
		historyRepo:  historyRepo,
		lessonRepo:   lessonRepo,
		progressRepo: progressRepo,
		cfg:          cfg,
	}
}

func (s *progressService) ListHistory(ctx context.Context, learnerID uuid.UUID, limit int) ([]*model.PuzzleHistory, error) {
	if limit <= 0 || limit > s.cfg.App.HistoryLimit {
		limit = s.cfg.App.HistoryLimit
	}
	histories, err := s.historyRepo.ListByLearner(ctx, s.db, learnerID, limit)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list history", "error", err, "learner_id", learnerID)
		return nil, asAppError(err, "履歴の取得に失敗しました。")
	}
	return histories, nil
}

// GetLessonProgress はレッスンの進捗を返します。
// 保存後にレッスンの構成が変わっていれば、現在のパズル集合に合わせた値を返します (保存はしない)。
func (s *progressService) GetLessonProgress(ctx context.Context, learnerID, lessonID uuid.UUID) (*model.LessonProgressResponse, error) {
	lesson, err := s.lessonRepo.FindByID(ctx, s.db, lessonID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("LESSON_NOT_FOUND", "レッスンが見つかりません。", "", err)
		}
		return nil, asAppError(err, "レッスンの取得に失敗しました。")
	}

	prior, err := s.progressRepo.Find(ctx, s.db, learnerID, lessonID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return nil, asAppError(err, "進捗の取得に失敗しました。")
	}

	current := progress.ApplyCompletion(prior, learnerID, lesson, uuid.Nil, false)
	return &model.LessonProgressResponse{
		LessonID:           lesson.LessonID,
		CompletedPuzzleIDs: current.CompletedPuzzleIDs,
		CompletedCount:     current.CompletedCount,
		TotalPuzzles:       len(lesson.Puzzles),
		PuzzleSetVersion:   current.PuzzleSetVersion,
	}, nil
}
