package service

import (
	"errors"
	"fmt"

	nchess "github.com/corentings/chess/v2"
)

var ErrIllegalLine = errors.New("illegal puzzle line")

// LineAuditError は手順のどの手が不正だったかを示します。
type LineAuditError struct {
	Index int
	Move  string
	Err   error
}

func (e *LineAuditError) Error() string {
	return fmt.Sprintf("move %d (%s): %v", e.Index, e.Move, e.Err)
}

func (e *LineAuditError) Unwrap() error {
	return ErrIllegalLine
}

// auditLine は開始局面から手順をすべて合法手として指せるか確認します。
// 作成時のみのチェックで、挑戦中の判定には使いません。
func auditLine(startFEN string, line []string) error {
	opt, err := nchess.FEN(startFEN)
	if err != nil {
		return &LineAuditError{Index: -1, Err: err}
	}
	game := nchess.NewGame(opt)
	for i, mv := range line {
		if err := game.PushNotationMove(mv, nchess.UCINotation{}, nil); err != nil {
			return &LineAuditError{Index: i, Move: mv, Err: err}
		}
	}
	return nil
}
