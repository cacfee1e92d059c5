//go:generate mockery --name LessonRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_chess_puzzle_keep/internal/middleware"
	"go_chess_puzzle_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LessonRepository interface {
	Create(ctx context.Context, tx *gorm.DB, lesson *model.Lesson) error
	// FindByID はパズルを lesson_order 順にロードして返します。
	FindByID(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (*model.Lesson, error)
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.Lesson, error)
	// BumpVersion はパズル構成の変更を記録し、新しいバージョンを返します。
	BumpVersion(ctx context.Context, tx *gorm.DB, lessonID uuid.UUID, title string) (int, error)
}

type gormLessonRepository struct{}

func NewGormLessonRepository() LessonRepository {
	return &gormLessonRepository{}
}

func orderedPuzzles(db *gorm.DB) *gorm.DB {
	return db.Order("puzzles.lesson_order ASC")
}

func (r *gormLessonRepository) Create(ctx context.Context, tx *gorm.DB, lesson *model.Lesson) error {
	logger := middleware.GetLogger(ctx)
	// パズルは PuzzleRepository 側で作る
	result := tx.WithContext(ctx).Omit("Puzzles").Create(lesson)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate key error on create lesson", "error", result.Error, "slug", lesson.Slug)
			return model.ErrConflict
		}
		logger.Error("Error creating lesson in DB", "error", result.Error, "slug", lesson.Slug)
		return fmt.Errorf("gormLessonRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormLessonRepository) FindByID(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (*model.Lesson, error) {
	return r.findOne(ctx, db, "lesson_id = ?", lessonID)
}

func (r *gormLessonRepository) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.Lesson, error) {
	return r.findOne(ctx, db, "slug = ?", slug)
}

func (r *gormLessonRepository) findOne(ctx context.Context, db *gorm.DB, cond string, arg interface{}) (*model.Lesson, error) {
	logger := middleware.GetLogger(ctx)
	var lesson model.Lesson
	result := db.WithContext(ctx).Preload("Puzzles", orderedPuzzles).Preload("Puzzles.Themes").Where(cond, arg).First(&lesson)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding lesson in DB", "error", result.Error, "cond", cond, "arg", arg)
		return nil, fmt.Errorf("gormLessonRepository.findOne: %w", result.Error)
	}
	return &lesson, nil
}

func (r *gormLessonRepository) BumpVersion(ctx context.Context, tx *gorm.DB, lessonID uuid.UUID, title string) (int, error) {
	logger := middleware.GetLogger(ctx)
	updates := map[string]interface{}{
		"puzzle_set_version": gorm.Expr("puzzle_set_version + 1"),
	}
	if title != "" {
		updates["title"] = title
	}
	result := tx.WithContext(ctx).Model(&model.Lesson{}).Where("lesson_id = ?", lessonID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error bumping lesson version", "error", result.Error, "lesson_id", lessonID.String())
		return 0, fmt.Errorf("gormLessonRepository.BumpVersion: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, model.ErrNotFound
	}

	var version int
	if err := tx.WithContext(ctx).Model(&model.Lesson{}).Where("lesson_id = ?", lessonID).Pluck("puzzle_set_version", &version).Error; err != nil {
		return 0, fmt.Errorf("gormLessonRepository.BumpVersion: %w", err)
	}
	return version, nil
}
