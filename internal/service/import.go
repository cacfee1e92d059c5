package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go_chess_puzzle_keep/internal/middleware"
	"go_chess_puzzle_keep/internal/model"
	"go_chess_puzzle_keep/internal/webutil"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// auditConcurrency は取り込み時に同時に監査する手順の数
const auditConcurrency = 4

// PuzzleSet はYAMLで配布するレッスン1つ分のパズル集です。
//
//	lesson:
//	  slug: forks-101
//	  title: Forks
//	themes:
//	  fork: Fork
//	puzzles:
//	  - starting_fen: "..."
//	    expected_moves: [e2e4, e7e5]
//	    difficulty: Easy
//	    rating: 900
//	    themes: [fork]
type PuzzleSet struct {
	Lesson struct {
		Slug  string `yaml:"slug" validate:"required,max=128"`
		Title string `yaml:"title" validate:"required,max=256"`
	} `yaml:"lesson"`
	Themes  map[string]string `yaml:"themes"`
	Puzzles []PuzzleSetEntry  `yaml:"puzzles"`
}

type PuzzleSetEntry struct {
	StartingFEN   string           `yaml:"starting_fen" json:"starting_fen" validate:"required,fen"`
	ExpectedMoves []string         `yaml:"expected_moves" json:"expected_moves" validate:"required,min=1,dive,uci"`
	Difficulty    model.Difficulty `yaml:"difficulty" json:"difficulty" validate:"required,oneof=Easy Medium Hard 'Very Hard'"`
	Rating        int              `yaml:"rating" json:"rating" validate:"required,min=100,max=4000"`
	Themes        []string         `yaml:"themes" json:"themes"`
}

// ImportResult は取り込み結果です。
type ImportResult struct {
	LessonID         uuid.UUID `json:"lesson_id"`
	PuzzleSetVersion int       `json:"puzzle_set_version"`
	PuzzleCount      int       `json:"puzzle_count"`
	Created          bool      `json:"created"`
}

// ParsePuzzleSet はYAMLを読み込みます。未知のキーはエラーです。
func ParsePuzzleSet(r io.Reader) (*PuzzleSet, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var set PuzzleSet
	if err := dec.Decode(&set); err != nil {
		return nil, model.NewAppError("INVALID_PUZZLE_SET", "パズル集のYAMLを読み込めません。", "", errors.Join(model.ErrInvalidInput, err))
	}
	return &set, nil
}

// validateSet は各エントリの形式を確認し、手順の合法性を並行して監査します。
func (s *puzzleService) validateSet(ctx context.Context, set *PuzzleSet) error {
	if strings.TrimSpace(set.Lesson.Slug) == "" || strings.TrimSpace(set.Lesson.Title) == "" {
		return model.NewAppError("INVALID_PUZZLE_SET", "lesson.slug と lesson.title は必須です。", "lesson", model.ErrInvalidInput)
	}
	if len(set.Puzzles) == 0 {
		return model.NewAppError("INVALID_PUZZLE_SET", "パズルが1問もありません。", "puzzles", model.ErrInvalidInput)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(auditConcurrency)
	for i := range set.Puzzles {
		entry := &set.Puzzles[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entry.ExpectedMoves = normalizeMoves(entry.ExpectedMoves)
			if err := webutil.ValidateStruct(entry); err != nil {
				return fmt.Errorf("puzzles[%d]: %w", i, err)
			}
			if err := s.checkLine(entry.StartingFEN, entry.ExpectedMoves); err != nil {
				return fmt.Errorf("puzzles[%d]: %w", i, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// ImportSet はパズル集をレッスンとして保存します。
// 既存のレッスンは古いパズルを外して差し替え、PuzzleSetVersion を上げます。
func (s *puzzleService) ImportSet(ctx context.Context, set *PuzzleSet) (*ImportResult, error) {
	logger := middleware.GetLogger(ctx).With("lesson_slug", set.Lesson.Slug)

	if err := s.validateSet(ctx, set); err != nil {
		logger.Warn("Puzzle set rejected", "error", err)
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, model.NewAppError(appErr.Code, err.Error(), appErr.Field, appErr.Err)
		}
		return nil, asAppError(err, "パズル集の検証に失敗しました。")
	}

	names := make(map[string]string, len(set.Themes))
	for slug, name := range set.Themes {
		names[strings.ToLower(strings.TrimSpace(slug))] = name
	}

	result := &ImportResult{PuzzleCount: len(set.Puzzles)}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lesson, err := s.lessonRepo.FindBySlug(ctx, tx, set.Lesson.Slug)
		switch {
		case errors.Is(err, model.ErrNotFound):
			lesson = &model.Lesson{
				LessonID:         uuid.New(),
				Slug:             set.Lesson.Slug,
				Title:            set.Lesson.Title,
				PuzzleSetVersion: 1,
			}
			if err := s.lessonRepo.Create(ctx, tx, lesson); err != nil {
				return err
			}
			result.Created = true
			result.PuzzleSetVersion = 1
		case err != nil:
			return err
		default:
			if err := s.puzzleRepo.DetachFromLesson(ctx, tx, lesson.LessonID); err != nil {
				return err
			}
			version, err := s.lessonRepo.BumpVersion(ctx, tx, lesson.LessonID, set.Lesson.Title)
			if err != nil {
				return err
			}
			result.PuzzleSetVersion = version
		}
		result.LessonID = lesson.LessonID

		for i, entry := range set.Puzzles {
			lessonID := lesson.LessonID
			p := &model.Puzzle{
				PuzzleID:      uuid.New(),
				LessonID:      &lessonID,
				LessonOrder:   i,
				StartingFEN:   strings.TrimSpace(entry.StartingFEN),
				ExpectedMoves: entry.ExpectedMoves,
				Difficulty:    entry.Difficulty,
				Rating:        entry.Rating,
				Themes:        themesFromSlugs(entry.Themes, names),
			}
			if err := s.puzzleRepo.Create(ctx, tx, p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to import puzzle set", "error", err)
		return nil, asAppError(err, "パズル集の取り込みに失敗しました。")
	}

	logger.Info("Puzzle set imported",
		"lesson_id", result.LessonID,
		"version", result.PuzzleSetVersion,
		"puzzles", result.PuzzleCount,
		"created", result.Created,
	)
	return result, nil
}
