//go:generate mockery --name HistoryRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_chess_puzzle_keep/internal/middleware"
	"go_chess_puzzle_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HistoryRepository は挑戦履歴を扱います。履歴は追記のみです。
type HistoryRepository interface {
	Create(ctx context.Context, tx *gorm.DB, history *model.PuzzleHistory) error
	ListByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, limit int) ([]*model.PuzzleHistory, error)
}

type gormHistoryRepository struct{}

func NewGormHistoryRepository() HistoryRepository {
	return &gormHistoryRepository{}
}

func (r *gormHistoryRepository) Create(ctx context.Context, tx *gorm.DB, history *model.PuzzleHistory) error {
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Create(history).Error; err != nil {
		logger.Error("Error creating puzzle history",
			"error", err,
			"learner_id", history.LearnerID.String(),
			"puzzle_id", history.PuzzleID.String(),
		)
		return fmt.Errorf("gormHistoryRepository.Create: %w", err)
	}
	return nil
}

func (r *gormHistoryRepository) ListByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, limit int) ([]*model.PuzzleHistory, error) {
	logger := middleware.GetLogger(ctx)
	var histories []*model.PuzzleHistory
	query := db.WithContext(ctx).Where("learner_id = ?", learnerID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&histories).Error; err != nil {
		logger.Error("Error listing puzzle history", "error", err, "learner_id", learnerID.String())
		return nil, fmt.Errorf("gormHistoryRepository.ListByLearner: %w", err)
	}
	return histories, nil
}
