// Package puzzle はパズル1回分の解答を検証する状態機械です。
// Attempt は1人の学習者の1回の挑戦が占有し、並行に共有しません。
package puzzle

import (
	"errors"
	"fmt"

	"go_chess_puzzle_keep/internal/chess"
)

var (
	ErrInvalidTransition = errors.New("invalid puzzle transition")
	ErrEmptyLine         = errors.New("puzzle has no expected moves")
)

// State は挑戦の状態です。
type State int

const (
	AwaitingLearnerMove State = iota
	AwaitingAutoReply
	Solved
	Failed
	Abandoned
)

func (s State) String() string {
	switch s {
	case AwaitingLearnerMove:
		return "AwaitingLearnerMove"
	case AwaitingAutoReply:
		return "AwaitingAutoReply"
	case Solved:
		return "Solved"
	case Failed:
		return "Failed"
	case Abandoned:
		return "Abandoned"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal は Solved / Failed / Abandoned のとき true です。
func (s State) Terminal() bool {
	return s == Solved || s == Failed || s == Abandoned
}

// Attempt は期待手順に沿って学習者の手を検証します。
type Attempt struct {
	expected []chess.Move
	position chess.Position
	state    State
	index    int
	hintUsed bool
}

// New は開始局面と期待手順 (UCI 表記) から挑戦を作ります。
func New(startFEN string, expectedUCI []string) (*Attempt, error) {
	pos, err := chess.Parse(startFEN)
	if err != nil {
		return nil, err
	}
	if len(expectedUCI) == 0 {
		return nil, ErrEmptyLine
	}
	moves, err := chess.ParseMoves(expectedUCI)
	if err != nil {
		return nil, err
	}
	return &Attempt{
		expected: moves,
		position: pos,
		state:    AwaitingLearnerMove,
	}, nil
}

func (a *Attempt) State() State             { return a.state }
func (a *Attempt) Index() int               { return a.index }
func (a *Attempt) HintUsed() bool           { return a.hintUsed }
func (a *Attempt) Position() chess.Position { return a.position }
func (a *Attempt) ExpectedLen() int         { return len(a.expected) }

// SubmitMove は学習者の手を期待手と比較します。
// 一致すれば局面を進め、違えば Failed になります (やり直しなし)。
// 移動元に手番側の駒がない手は ErrUnknownMove を返し、状態は変わりません。
func (a *Attempt) SubmitMove(m chess.Move) (State, error) {
	if a.state != AwaitingLearnerMove {
		return a.state, fmt.Errorf("%w: submit move in %s", ErrInvalidTransition, a.state)
	}

	want := a.expected[a.index]
	if !m.Equal(want) {
		board, err := a.position.Occupancy()
		if err != nil {
			return a.state, err
		}
		if p := board[m.From]; p == chess.NoPiece || p.Color() != a.position.Active {
			return a.state, fmt.Errorf("%w: no %s piece on %s", chess.ErrUnknownMove, a.position.Active, m.From)
		}
		a.state = Failed
		return a.state, nil
	}

	next, err := chess.ApplyMove(a.position, want)
	if err != nil {
		return a.state, err
	}
	a.position = next
	a.advance()
	if a.state == AwaitingLearnerMove {
		a.state = AwaitingAutoReply
	}
	return a.state, nil
}

// AutoReply は台本どおりの相手の応手を適用します。
func (a *Attempt) AutoReply() (chess.Move, error) {
	if a.state != AwaitingAutoReply {
		return chess.Move{}, fmt.Errorf("%w: auto reply in %s", ErrInvalidTransition, a.state)
	}
	reply := a.expected[a.index]
	next, err := chess.ApplyMove(a.position, reply)
	if err != nil {
		return chess.Move{}, err
	}
	a.position = next
	a.advance()
	return reply, nil
}

// advance は index を1つ進め、手順の終わりなら Solved にします。
// 終わりでなければ AwaitingLearnerMove に戻し、呼び出し側が必要に応じて上書きします。
func (a *Attempt) advance() {
	a.index++
	if a.index >= len(a.expected) {
		a.state = Solved
		return
	}
	a.state = AwaitingLearnerMove
}

// RequestHint は次の期待手の移動元を返し、ヒント使用フラグを立てます。
func (a *Attempt) RequestHint() (chess.Square, error) {
	if a.state.Terminal() {
		return chess.NoSquare, fmt.Errorf("%w: hint in %s", ErrInvalidTransition, a.state)
	}
	a.hintUsed = true
	return a.expected[a.index].From, nil
}

// Abandon は挑戦を放棄します。
func (a *Attempt) Abandon() error {
	if a.state.Terminal() {
		return fmt.Errorf("%w: abandon in %s", ErrInvalidTransition, a.state)
	}
	a.state = Abandoned
	return nil
}
