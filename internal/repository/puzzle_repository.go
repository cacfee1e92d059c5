//go:generate mockery --name PuzzleRepository --output ./mocks --outpkg mocks --case=underscore
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

type PuzzleRepository interface {
	// Create はパズルとテーマを保存します。既存のテーマはそのまま使います。
	Create(ctx context.Context, tx *gorm.DB, puzzle *model.Puzzle) error
	FindByID(ctx context.Context, db *gorm.DB, puzzleID uuid.UUID) (*model.Puzzle, error)
	List(ctx context.Context, db *gorm.DB, filter model.ListPuzzlesFilter) ([]*model.Puzzle, error)
	// DetachFromLesson はレッスンのパズル構成を差し替えるときに使います。
	// 履歴から参照されるのでパズル自体は消しません。
	DetachFromLesson(ctx context.Context, tx *gorm.DB, lessonID uuid.UUID) error
}

type gormPuzzleRepository struct{}

func NewGormPuzzleRepository() PuzzleRepository {
	return &gormPuzzleRepository{}
}

func (r *gormPuzzleRepository) Create(ctx context.Context, tx *gorm.DB, puzzle *model.Puzzle) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(puzzle)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate key error on create puzzle", "error", result.Error, "puzzle_id", puzzle.PuzzleID.String())
			return model.ErrConflict
		}
		logger.Error("Error creating puzzle in DB",
			"error", result.Error,
			"puzzle_id", puzzle.PuzzleID.String(),
		)
		return fmt.Errorf("gormPuzzleRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormPuzzleRepository) FindByID(ctx context.Context, db *gorm.DB, puzzleID uuid.UUID) (*model.Puzzle, error) {
	logger := middleware.GetLogger(ctx)
	var puzzle model.Puzzle
	result := db.WithContext(ctx).Preload("Themes").Where("puzzle_id = ?", puzzleID).First(&puzzle)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding puzzle by ID in DB",
			"error", result.Error,
			"puzzle_id", puzzleID.String(),
		)
		return nil, fmt.Errorf("gormPuzzleRepository.FindByID: %w", result.Error)
	}
	return &puzzle, nil
}

func (r *gormPuzzleRepository) List(ctx context.Context, db *gorm.DB, filter model.ListPuzzlesFilter) ([]*model.Puzzle, error) {
	logger := middleware.GetLogger(ctx)
	var puzzles []*model.Puzzle

	query := db.WithContext(ctx).Model(&model.Puzzle{}).Select("puzzles.*").Preload("Themes")
	if filter.Difficulty != "" {
		query = query.Where("puzzles.difficulty = ?", filter.Difficulty)
	}
	if filter.Theme != "" {
		query = query.
			Joins("JOIN puzzle_theme_links ON puzzle_theme_links.puzzle_id = puzzles.puzzle_id").
			Where("puzzle_theme_links.theme_slug = ?", filter.Theme)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	result := query.Order("puzzles.rating ASC, puzzles.created_at ASC").Find(&puzzles)
	if result.Error != nil {
		logger.Error("Error listing puzzles in DB",
			"error", result.Error,
			"difficulty", string(filter.Difficulty),
			"theme", filter.Theme,
		)
		return nil, fmt.Errorf("gormPuzzleRepository.List: %w", result.Error)
	}
	return puzzles, nil
}

func (r *gormPuzzleRepository) DetachFromLesson(ctx context.Context, tx *gorm.DB, lessonID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Puzzle{}).Where("lesson_id = ?", lessonID).Update("lesson_id", nil)
	if result.Error != nil {
		logger.Error("Error detaching puzzles from lesson", "error", result.Error, "lesson_id", lessonID.String())
		return fmt.Errorf("gormPuzzleRepository.DetachFromLesson: %w", result.Error)
	}
	logger.Debug("Detached puzzles from lesson", "lesson_id", lessonID.String(), "count", result.RowsAffected)
	return nil
}
