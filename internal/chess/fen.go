// Package chess は FEN の解析と、パズル検証に必要な最小限の局面操作を提供します。
// 合法手生成やチェック判定は行いません。
package chess

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StartingFEN は初期局面の FEN です。
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var (
	ErrInvalidFormat      = errors.New("invalid FEN format")
	ErrInvalidActiveColor = errors.New("invalid FEN active color")
	ErrInvalidPlacement   = errors.New("invalid FEN piece placement")
	ErrUnknownMove        = errors.New("unknown move")
)

// Color は手番を表します。
type Color int

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// Other は相手側の色を返します。
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) fenField() string {
	if c == Black {
		return "b"
	}
	return "w"
}

// Position は 6 フィールドの FEN を構造化したものです。
// Ranks[0] が 8 段目です。
type Position struct {
	Ranks          [8]string
	Active         Color
	Castling       string
	EnPassant      string
	HalfmoveClock  int
	FullmoveNumber int
}

// ActiveSide は FEN の手番フィールドだけを検証して手番を返します。
// 2 フィールド以上あれば部分的な FEN でも受け付けます。
func ActiveSide(fen string) (Color, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return White, fmt.Errorf("%w: expected at least 2 fields, got %d", ErrInvalidFormat, len(fields))
	}
	return parseActiveColor(fields[1])
}

func parseActiveColor(field string) (Color, error) {
	switch field {
	case "w":
		return White, nil
	case "b":
		return Black, nil
	default:
		return White, fmt.Errorf("%w: %q", ErrInvalidActiveColor, field)
	}
}

// Parse は 6 フィールドの FEN を解析します。
func Parse(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return Position{}, fmt.Errorf("%w: expected 6 fields, got %d", ErrInvalidFormat, len(fields))
	}
	active, err := parseActiveColor(fields[1])
	if err != nil {
		return Position{}, err
	}
	if len(fields) != 6 {
		return Position{}, fmt.Errorf("%w: expected 6 fields, got %d", ErrInvalidFormat, len(fields))
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Position{}, fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidPlacement, len(ranks))
	}
	pos := Position{Active: active}
	for i, rank := range ranks {
		if _, err := expandRank(rank); err != nil {
			return Position{}, fmt.Errorf("rank %d: %w", 8-i, err)
		}
		pos.Ranks[i] = rank
	}

	if err := validateCastling(fields[2]); err != nil {
		return Position{}, err
	}
	pos.Castling = fields[2]

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil || (sq.Rank() != 2 && sq.Rank() != 5) {
			return Position{}, fmt.Errorf("%w: en passant target %q", ErrInvalidFormat, fields[3])
		}
	}
	pos.EnPassant = fields[3]

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return Position{}, fmt.Errorf("%w: halfmove clock %q", ErrInvalidFormat, fields[4])
	}
	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return Position{}, fmt.Errorf("%w: fullmove number %q", ErrInvalidFormat, fields[5])
	}
	pos.HalfmoveClock = halfmove
	pos.FullmoveNumber = fullmove

	return pos, nil
}

func validateCastling(field string) error {
	if field == "-" {
		return nil
	}
	if field == "" || len(field) > 4 {
		return fmt.Errorf("%w: castling %q", ErrInvalidFormat, field)
	}
	seen := map[rune]bool{}
	for _, c := range field {
		if !strings.ContainsRune("KQkq", c) || seen[c] {
			return fmt.Errorf("%w: castling %q", ErrInvalidFormat, field)
		}
		seen[c] = true
	}
	return nil
}

// Placement は駒配置フィールドを返します。
func (p Position) Placement() string {
	return strings.Join(p.Ranks[:], "/")
}

// String は 6 フィールドの FEN を再構成します。
func (p Position) String() string {
	return fmt.Sprintf("%s %s %s %s %d %d",
		p.Placement(), p.Active.fenField(), p.Castling, p.EnPassant, p.HalfmoveClock, p.FullmoveNumber)
}

// Occupancy は駒配置を 64 マスに展開します。
func (p Position) Occupancy() (Board, error) {
	return ParsePlacement(p.Placement())
}
