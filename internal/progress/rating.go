// Package progress は挑戦結果からレーティング変化と学習進捗を計算します。
// 永続化は行わず、呼び出し側 (service) が結果を保存します。
package progress

import (
	"math"

	"go_chess_puzzle_keep/internal/model"
)

// RatingInput はレーティング計算の入力です。
type RatingInput struct {
	LearnerRating int
	PuzzleRating  int
	Status        model.SolveStatus
	HintUsed      bool
}

// RatingRule はレーティング変化量の計算方法です。差し替え可能にしています。
type RatingRule interface {
	Delta(in RatingInput) int
}

// RatingRuleFunc は関数を RatingRule として使うためのアダプタです。
type RatingRuleFunc func(in RatingInput) int

func (f RatingRuleFunc) Delta(in RatingInput) int { return f(in) }

// EloRule は期待スコアに基づく標準的な増減です。
//   - Solved: K*(1-期待値) を MaxDelta で頭打ちし、ヒント使用時は HintFactor 倍を切り捨て
//   - Failed/Abandoned: -K*期待値 を MaxDelta で頭打ち。
//     パズルが学習者より BeginnerGap 以上高ければ 0
type EloRule struct {
	KFactor     float64
	MaxDelta    int
	HintFactor  float64
	BeginnerGap int
}

func DefaultEloRule() EloRule {
	return EloRule{
		KFactor:     32,
		MaxDelta:    28,
		HintFactor:  0.5,
		BeginnerGap: 400,
	}
}

// ExpectedScore は学習者がパズルを解く期待値 (0..1) です。
func ExpectedScore(learnerRating, puzzleRating int) float64 {
	return 1 / (1 + math.Pow(10, float64(puzzleRating-learnerRating)/400))
}

func (r EloRule) Delta(in RatingInput) int {
	expected := ExpectedScore(in.LearnerRating, in.PuzzleRating)
	limit := float64(r.MaxDelta)

	switch in.Status {
	case model.StatusSolved:
		gain := math.Min(r.KFactor*(1-expected), limit)
		full := int(math.Round(gain))
		if !in.HintUsed {
			return full
		}
		// ヒントありは常にヒントなしより少ない
		hinted := int(math.Floor(gain * r.HintFactor))
		if hinted >= full {
			hinted = full - 1
		}
		return max(hinted, 0)
	case model.StatusFailed, model.StatusAbandoned:
		if in.PuzzleRating-in.LearnerRating >= r.BeginnerGap {
			return 0
		}
		loss := math.Min(r.KFactor*expected, limit)
		return -int(math.Round(loss))
	default:
		return 0
	}
}
