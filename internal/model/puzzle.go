// internal/model/puzzle.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Difficulty はパズルの難易度区分です。
type Difficulty string

const (
	DifficultyEasy     Difficulty = "Easy"
	DifficultyMedium   Difficulty = "Medium"
	DifficultyHard     Difficulty = "Hard"
	DifficultyVeryHard Difficulty = "Very Hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyVeryHard:
		return true
	}
	return false
}

// PuzzleTheme はパズルのテーマタグ (fork, pin など) です。
type PuzzleTheme struct {
	Slug string `gorm:"primaryKey;type:varchar(64)" json:"slug"`
	Name string `gorm:"not null" json:"name"`
}

func (PuzzleTheme) TableName() string {
	return "puzzle_themes"
}

// Puzzle は開始局面と期待手順です。公開後は変更しません。
type Puzzle struct {
	PuzzleID      uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"puzzle_id"`
	LessonID      *uuid.UUID                  `gorm:"type:uuid;index" json:"lesson_id,omitempty"`
	LessonOrder   int                         `gorm:"not null;default:0" json:"lesson_order"`
	StartingFEN   string                      `gorm:"not null" json:"starting_fen"`
	ExpectedMoves datatypes.JSONSlice[string] `gorm:"not null" json:"expected_moves"`
	Difficulty    Difficulty                  `gorm:"type:varchar(16);not null;index" json:"difficulty"`
	Rating        int                         `gorm:"not null;index" json:"rating"`
	CreatedAt     time.Time                   `json:"created_at"`

	// 関連 (Preload用)
	Themes []PuzzleTheme `gorm:"many2many:puzzle_theme_links;joinForeignKey:PuzzleID;joinReferences:ThemeSlug" json:"themes"`
}

func (Puzzle) TableName() string {
	return "puzzles"
}

// ThemeSlugs はテーマのスラッグ一覧を返します (履歴のスナップショット用)
func (p *Puzzle) ThemeSlugs() []string {
	slugs := make([]string, 0, len(p.Themes))
	for _, th := range p.Themes {
		slugs = append(slugs, th.Slug)
	}
	return slugs
}

// CreatePuzzleRequest はパズル作成リクエストDTO
type CreatePuzzleRequest struct {
	LessonID      *uuid.UUID `json:"lesson_id,omitempty"`
	StartingFEN   string     `json:"starting_fen" validate:"required,fen"`
	ExpectedMoves []string   `json:"expected_moves" validate:"required,min=1,dive,uci"`
	Difficulty    Difficulty `json:"difficulty" validate:"required,oneof=Easy Medium Hard 'Very Hard'"`
	Rating        int        `json:"rating" validate:"required,min=100,max=4000"`
	Themes        []string   `json:"themes" validate:"dive,required,max=64"`
}

// ListPuzzlesFilter はパズル一覧の絞り込み条件
type ListPuzzlesFilter struct {
	Difficulty Difficulty
	Theme      string
	Limit      int
}

// PositionFactsRequest は局面情報取得リクエスト
type PositionFactsRequest struct {
	FEN string `json:"fen" validate:"required"`
}

// PositionFactsResponse は盤面表示用の局面情報
type PositionFactsResponse struct {
	ActiveSide string            `json:"active_side"`
	Occupancy  map[string]string `json:"occupancy,omitempty"`
}

// PreviewResponse はプレビュー先のURL
type PreviewResponse struct {
	URL string `json:"url"`
}
