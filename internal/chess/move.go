package chess

import (
	"fmt"
	"strings"
)

// Move は UCI 表記 (e2e4, e7e8q) に対応する正規化済みの指し手です。
type Move struct {
	From      Square
	To        Square
	Promotion PieceKind
}

// ParseMove は UCI 表記の指し手を解析します。
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("%w: %q", ErrUnknownMove, s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q", ErrUnknownMove, s)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil || to == from {
		return Move{}, fmt.Errorf("%w: %q", ErrUnknownMove, s)
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		k, ok := parseKind(s[4])
		if !ok || k == King || k == Pawn {
			return Move{}, fmt.Errorf("%w: bad promotion in %q", ErrUnknownMove, s)
		}
		m.Promotion = k
	}
	return m, nil
}

// ParseMoves は UCI 表記の列をまとめて解析します。
func ParseMoves(line []string) ([]Move, error) {
	moves := make([]Move, 0, len(line))
	for i, s := range line {
		m, err := ParseMove(s)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// Equal は移動元・移動先・成り駒が一致するかを返します。
// 成り駒だけが違う指し手は別の手として扱います。
func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += string(rune(m.Promotion))
	}
	return s
}

func (m Move) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Move) UnmarshalText(text []byte) error {
	parsed, err := ParseMove(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
