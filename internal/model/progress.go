// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SolveStatus は挑戦の結果です。
type SolveStatus string

const (
	StatusSolved    SolveStatus = "Solved"
	StatusFailed    SolveStatus = "Failed"
	StatusAbandoned SolveStatus = "Abandoned"
)

// PuzzleHistory は1回の挑戦の記録です。作成後は更新しません。
type PuzzleHistory struct {
	HistoryID    uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"history_id"`
	LearnerID    uuid.UUID                   `gorm:"type:uuid;not null;index" json:"learner_id"`
	PuzzleID     uuid.UUID                   `gorm:"type:uuid;not null;index" json:"puzzle_id"`
	Status       SolveStatus                 `gorm:"type:varchar(16);not null" json:"status"`
	RatingBefore int                         `gorm:"not null" json:"rating_before"`
	RatingAfter  int                         `gorm:"not null" json:"rating_after"`
	ElapsedMs    int64                       `gorm:"not null" json:"elapsed_ms"`
	HintUsed     bool                        `gorm:"not null;default:false" json:"hint_used"`
	Themes       datatypes.JSONSlice[string] `json:"themes"`
	CreatedAt    time.Time                   `gorm:"not null;index" json:"created_at"`
}

func (PuzzleHistory) TableName() string {
	return "puzzle_histories"
}

// RatingDelta はこの挑戦でのレーティング変化量
func (h *PuzzleHistory) RatingDelta() int {
	return h.RatingAfter - h.RatingBefore
}

// LessonProgress はレッスン内で解き終えたパズルの集合です。
// 同じレッスン・バージョンの間は集合が増えるだけです。
type LessonProgress struct {
	ProgressID         uuid.UUID                      `gorm:"type:uuid;primaryKey" json:"progress_id"`
	LearnerID          uuid.UUID                      `gorm:"type:uuid;not null;uniqueIndex:idx_learner_lesson" json:"learner_id"`
	LessonID           *uuid.UUID                     `gorm:"type:uuid;uniqueIndex:idx_learner_lesson" json:"lesson_id,omitempty"`
	CompletedPuzzleIDs datatypes.JSONSlice[uuid.UUID] `gorm:"not null" json:"completed_puzzle_ids"`
	CompletedCount     int                            `gorm:"not null;default:0" json:"completed_count"`
	PuzzleSetVersion   int                            `gorm:"not null;default:1" json:"puzzle_set_version"`
	CreatedAt          time.Time                      `json:"created_at"`
	UpdatedAt          time.Time                      `json:"updated_at"`
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}

// HasCompleted は指定パズルが完了済みかを返します
func (p *LessonProgress) HasCompleted(puzzleID uuid.UUID) bool {
	for _, id := range p.CompletedPuzzleIDs {
		if id == puzzleID {
			return true
		}
	}
	return false
}

// LessonProgressResponse はレッスン進捗の表示用
type LessonProgressResponse struct {
	LessonID           uuid.UUID   `json:"lesson_id"`
	CompletedPuzzleIDs []uuid.UUID `json:"completed_puzzle_ids"`
	CompletedCount     int         `json:"completed_count"`
	TotalPuzzles       int         `json:"total_puzzles"`
	PuzzleSetVersion   int         `json:"puzzle_set_version"`
}
