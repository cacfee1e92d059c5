package progress

import (
	"errors"
	"fmt"
	"time"

	"go_chess_puzzle_keep/internal/model"

	"github.com/google/uuid"
)

var ErrInvalidOutcome = errors.New("invalid solve outcome")

// FinalizeInput は終局した挑戦1回分の情報です。
// Lesson はパズルがレッスンに属する場合のみ指定し、Puzzles をロード済みであること。
type FinalizeInput struct {
	Learner  *model.Learner
	Puzzle   *model.Puzzle
	Status   model.SolveStatus
	HintUsed bool
	Elapsed  time.Duration
	Lesson   *model.Lesson
	Prior    *model.LessonProgress
}

// Result は保存対象のレコードです。Progress はレッスンがない場合 nil です。
type Result struct {
	History  model.PuzzleHistory
	Progress *model.LessonProgress
}

// Aggregator は挑戦結果から履歴レコードとレッスン進捗を作ります。
type Aggregator struct {
	rule      RatingRule
	minRating int
	now       func() time.Time
	newID     func() uuid.UUID
}

func NewAggregator(rule RatingRule, minRating int) *Aggregator {
	if rule == nil {
		rule = DefaultEloRule()
	}
	return &Aggregator{
		rule:      rule,
		minRating: minRating,
		now:       time.Now,
		newID:     uuid.New,
	}
}

// WithClock はテスト用に時計を差し替えます。
func (a *Aggregator) WithClock(now func() time.Time) *Aggregator {
	cp := *a
	cp.now = now
	return &cp
}

func (a *Aggregator) Finalize(in FinalizeInput) (Result, error) {
	if in.Learner == nil || in.Puzzle == nil {
		return Result{}, fmt.Errorf("%w: learner and puzzle are required", ErrInvalidOutcome)
	}
	switch in.Status {
	case model.StatusSolved, model.StatusFailed, model.StatusAbandoned:
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidOutcome, in.Status)
	}
	if in.Elapsed < 0 {
		in.Elapsed = 0
	}

	before := in.Learner.Rating
	delta := a.rule.Delta(RatingInput{
		LearnerRating: before,
		PuzzleRating:  in.Puzzle.Rating,
		Status:        in.Status,
		HintUsed:      in.HintUsed,
	})
	after := before + delta
	if delta < 0 && after < a.minRating {
		// 下限を割り込まない。もともと下限未満なら下げない
		after = min(before, a.minRating)
	}

	res := Result{
		History: model.PuzzleHistory{
			HistoryID:    a.newID(),
			LearnerID:    in.Learner.LearnerID,
			PuzzleID:     in.Puzzle.PuzzleID,
			Status:       in.Status,
			RatingBefore: before,
			RatingAfter:  after,
			ElapsedMs:    in.Elapsed.Milliseconds(),
			HintUsed:     in.HintUsed,
			Themes:       in.Puzzle.ThemeSlugs(),
			CreatedAt:    a.now(),
		},
	}

	if in.Lesson != nil {
		updated := ApplyCompletion(in.Prior, in.Learner.LearnerID, in.Lesson, in.Puzzle.PuzzleID, in.Status == model.StatusSolved)
		res.Progress = &updated
	}
	return res, nil
}
