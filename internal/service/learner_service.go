package service

import (
	"context"
	"errors"
	"strings"

	"go_chess_puzzle_keep/internal/config"
	"go_chess_puzzle_keep/internal/middleware"
	"go_chess_puzzle_keep/internal/model"
	"go_chess_puzzle_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LearnerService interface {
	CreateLearner(ctx context.Context, req *model.CreateLearnerRequest) (*model.Learner, error)
	GetLearner(ctx context.Context, learnerID uuid.UUID) (*model.Learner, error)
}

type learnerService struct {
	db          *gorm.DB
	learnerRepo repository.LearnerRepository
	cfg         *config.Config
}

func NewLearnerService(db *gorm.DB, repo repository.LearnerRepository, cfg *config.Config) LearnerService {
	return &learnerService{db: db, learnerRepo: repo, cfg: cfg}
}

func (s *learnerService) CreateLearner(ctx context.Context, req *model.CreateLearnerRequest) (*model.Learner, error) {
	logger := middleware.GetLogger(ctx)

	learner := &model.Learner{
		LearnerID: uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Rating:    s.cfg.Rating.Initial,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.learnerRepo.FindByEmail(ctx, tx, learner.Email)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return err
		}
		if existing != nil {
			return model.ErrConflict
		}
		// 同時登録はユニーク制約違反として Create が ErrConflict を返す
		return s.learnerRepo.Create(ctx, tx, learner)
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("EMAIL_ALREADY_EXISTS", "このメールアドレスは既に登録されています。", "email", err)
		}
		logger.Error("Failed to create learner", "error", err)
		return nil, asAppError(err, "学習者の登録に失敗しました。")
	}

	logger.Info("Learner created", "learner_id", learner.LearnerID)
	return learner, nil
}

func (s *learnerService) GetLearner(ctx context.Context, learnerID uuid.UUID) (*model.Learner, error) {
	learner, err := s.learnerRepo.FindByID(ctx, s.db, learnerID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("LEARNER_NOT_FOUND", "学習者が見つかりません。", "", err)
		}
		return nil, asAppError(err, "学習者の取得に失敗しました。")
	}
	return learner, nil
}
