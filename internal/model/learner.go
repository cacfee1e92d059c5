package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Learner はパズルを解く学習者です。Rating は挑戦ごとに更新されます。
type Learner struct {
	LearnerID uuid.UUID      `gorm:"type:uuid;primaryKey" json:"learner_id"`
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Rating    int            `gorm:"not null;default:1500" json:"rating"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Learner) TableName() string {
	return "learners"
}

type ContextKey string

const (
	LearnerIDKey ContextKey = "learnerID"
)

// CreateLearnerRequest は学習者登録APIのリクエストボディ (DTO)
type CreateLearnerRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
}

// LearnerResponse はクライアントに返す学習者情報
type LearnerResponse struct {
	LearnerID uuid.UUID `json:"learner_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

func NewLearnerResponse(l *Learner) *LearnerResponse {
	return &LearnerResponse{
		LearnerID: l.LearnerID,
		Name:      l.Name,
		Email:     l.Email,
		Rating:    l.Rating,
		CreatedAt: l.CreatedAt,
	}
}
