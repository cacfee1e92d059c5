package puzzle

import (
	"fmt"

	"go_chess_puzzle_keep/internal/chess"
)

// Snapshot は Attempt を保存・復元するための JSON 表現です。
type Snapshot struct {
	Expected []chess.Move `json:"expected"`
	FEN      string       `json:"fen"`
	State    State        `json:"state"`
	Index    int          `json:"index"`
	HintUsed bool         `json:"hint_used"`
}

func (a *Attempt) Snapshot() Snapshot {
	expected := make([]chess.Move, len(a.expected))
	copy(expected, a.expected)
	return Snapshot{
		Expected: expected,
		FEN:      a.position.String(),
		State:    a.state,
		Index:    a.index,
		HintUsed: a.hintUsed,
	}
}

// Restore は Snapshot から Attempt を復元します。
func Restore(s Snapshot) (*Attempt, error) {
	pos, err := chess.Parse(s.FEN)
	if err != nil {
		return nil, err
	}
	if len(s.Expected) == 0 {
		return nil, ErrEmptyLine
	}
	if s.State < AwaitingLearnerMove || s.State > Abandoned {
		return nil, fmt.Errorf("restore: unknown state %d", int(s.State))
	}
	// 終局以外は index が手順の範囲内でなければならない
	if !s.State.Terminal() && (s.Index < 0 || s.Index >= len(s.Expected)) {
		return nil, fmt.Errorf("restore: index %d out of range for %s", s.Index, s.State)
	}
	expected := make([]chess.Move, len(s.Expected))
	copy(expected, s.Expected)
	return &Attempt{
		expected: expected,
		position: pos,
		state:    s.State,
		index:    s.Index,
		hintUsed: s.HintUsed,
	}, nil
}
