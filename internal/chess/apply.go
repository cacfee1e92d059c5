package chess

import (
	"fmt"
	"strings"
)

// ApplyMove は指し手を駒配置レベルで適用した新しい局面を返します。
// 合法性は検証しません。移動元に手番側の駒がない場合や、
// 成りが指定できない手に成りが付いている場合は ErrUnknownMove です。
func ApplyMove(pos Position, m Move) (Position, error) {
	board, err := pos.Occupancy()
	if err != nil {
		return Position{}, err
	}
	piece := board[m.From]
	if piece == NoPiece || piece.Color() != pos.Active {
		return Position{}, fmt.Errorf("%w: %s has no %s piece on %s", ErrUnknownMove, m, pos.Active, m.From)
	}
	if target := board[m.To]; target != NoPiece && target.Color() == pos.Active {
		return Position{}, fmt.Errorf("%w: %s captures own piece", ErrUnknownMove, m)
	}

	lastRank := 7
	if pos.Active == Black {
		lastRank = 0
	}
	if m.Promotion != NoKind && (piece.Kind() != Pawn || m.To.Rank() != lastRank) {
		return Position{}, fmt.Errorf("%w: %s cannot promote", ErrUnknownMove, m)
	}

	captured := board[m.To] != NoPiece
	next := pos
	next.EnPassant = "-"

	switch piece.Kind() {
	case Pawn:
		if m.To.File() != m.From.File() && !captured && m.To.String() == pos.EnPassant {
			// アンパッサンで取られるポーンは移動先の背後にいる
			board[NewSquare(m.To.File(), m.From.Rank())] = NoPiece
			captured = true
		}
		if d := m.To.Rank() - m.From.Rank(); d == 2 || d == -2 {
			next.EnPassant = NewSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2).String()
		}
	case King:
		if d := m.To.File() - m.From.File(); d == 2 || d == -2 {
			rookFrom, rookTo := NewSquare(7, m.From.Rank()), NewSquare(5, m.From.Rank())
			if d < 0 {
				rookFrom, rookTo = NewSquare(0, m.From.Rank()), NewSquare(3, m.From.Rank())
			}
			board[rookTo] = board[rookFrom]
			board[rookFrom] = NoPiece
		}
	}

	board[m.To] = piece
	board[m.From] = NoPiece
	if m.Promotion != NoKind {
		board[m.To] = NewPiece(pos.Active, m.Promotion)
	} else if piece.Kind() == Pawn && m.To.Rank() == lastRank {
		board[m.To] = NewPiece(pos.Active, Queen)
	}

	next.Ranks = board.ranks()
	next.Castling = updateCastling(pos.Castling, m)
	if piece.Kind() == Pawn || captured {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock = pos.HalfmoveClock + 1
	}
	if pos.Active == Black {
		next.FullmoveNumber = pos.FullmoveNumber + 1
	}
	next.Active = pos.Active.Other()
	return next, nil
}

// updateCastling はキング・ルークの移動元/移動先に触れた権利を落とします。
func updateCastling(rights string, m Move) string {
	if rights == "-" {
		return rights
	}
	drop := map[Square]string{
		NewSquare(4, 0): "KQ",
		NewSquare(7, 0): "K",
		NewSquare(0, 0): "Q",
		NewSquare(4, 7): "kq",
		NewSquare(7, 7): "k",
		NewSquare(0, 7): "q",
	}
	for _, sq := range []Square{m.From, m.To} {
		for _, c := range drop[sq] {
			rights = strings.ReplaceAll(rights, string(c), "")
		}
	}
	if rights == "" {
		return "-"
	}
	return rights
}
