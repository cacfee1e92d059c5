//go:generate mockery --name LearnerRepository --output ./mocks --outpkg mocks --case=underscore
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

type LearnerRepository interface {
	Create(ctx context.Context, db *gorm.DB, learner *model.Learner) error
	FindByID(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) (*model.Learner, error)
	// FindByIDForUpdate はトランザクション内で行ロックを取って読みます。
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, learnerID uuid.UUID) (*model.Learner, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Learner, error)
	UpdateRating(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, rating int) error
}

type gormLearnerRepository struct{}

func NewGormLearnerRepository() LearnerRepository {
	return &gormLearnerRepository{}
}

func (r *gormLearnerRepository) Create(ctx context.Context, db *gorm.DB, learner *model.Learner) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(learner)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate key error on create learner", "error", result.Error, "email", learner.Email)
			return model.ErrConflict
		}
		logger.Error("Error creating learner in DB", "error", result.Error, "name", learner.Name)
		return fmt.Errorf("gormLearnerRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormLearnerRepository) FindByID(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) (*model.Learner, error) {
	return r.findByID(ctx, db.WithContext(ctx), learnerID)
}

func (r *gormLearnerRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, learnerID uuid.UUID) (*model.Learner, error) {
	return r.findByID(ctx, forUpdate(tx.WithContext(ctx)), learnerID)
}

func (r *gormLearnerRepository) findByID(ctx context.Context, q *gorm.DB, learnerID uuid.UUID) (*model.Learner, error) {
	logger := middleware.GetLogger(ctx)
	var learner model.Learner

	result := q.Where("learner_id = ?", learnerID).First(&learner)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding learner by ID in DB", "error", result.Error, "learner_id", learnerID.String())
		return nil, fmt.Errorf("gormLearnerRepository.FindByID: %w", result.Error)
	}
	return &learner, nil
}

func (r *gormLearnerRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Learner, error) {
	logger := middleware.GetLogger(ctx)
	var learner model.Learner

	result := db.WithContext(ctx).Where("email = ?", email).First(&learner)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			logger.Debug("Learner not found by email", "email", email)
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding learner by email in DB", "error", result.Error, "email", email)
		return nil, fmt.Errorf("gormLearnerRepository.FindByEmail: %w", result.Error)
	}
	return &learner, nil
}

func (r *gormLearnerRepository) UpdateRating(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, rating int) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Model(&model.Learner{}).Where("learner_id = ?", learnerID).Update("rating", rating)
	if result.Error != nil {
		logger.Error("Error updating learner rating", "error", result.Error, "learner_id", learnerID.String())
		return fmt.Errorf("gormLearnerRepository.UpdateRating: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
