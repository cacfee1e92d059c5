package model

import (
	"time"

	"github.com/google/uuid"
)

// Lesson は順序付きのパズル集合です。PuzzleSetVersion はパズル構成が変わるたびに増えます。
type Lesson struct {
	LessonID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"lesson_id"`
	Slug             string    `gorm:"unique;not null" json:"slug"`
	Title            string    `gorm:"not null" json:"title"`
	PuzzleSetVersion int       `gorm:"not null;default:1" json:"puzzle_set_version"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Puzzles []Puzzle `gorm:"foreignKey:LessonID;references:LessonID" json:"puzzles,omitempty"`
}

func (Lesson) TableName() string {
	return "lessons"
}

// PuzzleIDs はレッスンに含まれるパズルIDを返します
func (l *Lesson) PuzzleIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(l.Puzzles))
	for _, p := range l.Puzzles {
		ids = append(ids, p.PuzzleID)
	}
	return ids
}
