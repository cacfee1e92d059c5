//go:generate mockery --name LessonProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_chess_puzzle_keep/internal/middleware"
	"go_chess_puzzle_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LessonProgressRepository interface {
	Find(ctx context.Context, db *gorm.DB, learnerID, lessonID uuid.UUID) (*model.LessonProgress, error)
	// Upsert は (learner_id, lesson_id) をキーに挿入または更新します。
	Upsert(ctx context.Context, tx *gorm.DB, progress *model.LessonProgress) error
}

type gormLessonProgressRepository struct{}

func NewGormLessonProgressRepository() LessonProgressRepository {
	return &gormLessonProgressRepository{}
}

func (r *gormLessonProgressRepository) Find(ctx context.Context, db *gorm.DB, learnerID, lessonID uuid.UUID) (*model.LessonProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progress model.LessonProgress
	result := db.WithContext(ctx).Where("learner_id = ? AND lesson_id = ?", learnerID, lessonID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding lesson progress",
			"error", result.Error,
			"learner_id", learnerID.String(),
			"lesson_id", lessonID.String(),
		)
		return nil, fmt.Errorf("gormLessonProgressRepository.Find: %w", result.Error)
	}
	return &progress, nil
}

func (r *gormLessonProgressRepository) Upsert(ctx context.Context, tx *gorm.DB, progress *model.LessonProgress) error {
	logger := middleware.GetLogger(ctx)
	if progress.ProgressID == uuid.Nil {
		progress.ProgressID = uuid.New()
	}
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "learner_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed_puzzle_ids", "completed_count", "puzzle_set_version", "updated_at"}),
	}).Create(progress)
	if result.Error != nil {
		logger.Error("Error upserting lesson progress",
			"error", result.Error,
			"learner_id", progress.LearnerID.String(),
		)
		return fmt.Errorf("gormLessonProgressRepository.Upsert: %w", result.Error)
	}
	return nil
}
