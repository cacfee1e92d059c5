package chess

import (
	"fmt"
	"strings"
	"unicode"
)

// Square は盤上のマスです。a1 = 0, h8 = 63。
type Square int8

const NoSquare Square = -1

// NewSquare は筋 (0=a) と段 (0=1段目) からマスを作ります。
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// ParseSquare は "e4" 形式のマス名を解析します。
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return NewSquare(int(s[0]-'a'), int(s[1]-'1')), nil
}

func (s Square) File() int { return int(s) % 8 }
func (s Square) Rank() int { return int(s) / 8 }

func (s Square) String() string {
	if s < 0 || s > 63 {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// MarshalText で JSON のマップキーや値として "e4" 形式を使います。
func (s Square) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// PieceKind は色を持たない駒の種類です (小文字の FEN 文字)。
type PieceKind byte

const (
	NoKind PieceKind = 0
	King   PieceKind = 'k'
	Queen  PieceKind = 'q'
	Rook   PieceKind = 'r'
	Bishop PieceKind = 'b'
	Knight PieceKind = 'n'
	Pawn   PieceKind = 'p'
)

func parseKind(c byte) (PieceKind, bool) {
	switch k := PieceKind(unicode.ToLower(rune(c))); k {
	case King, Queen, Rook, Bishop, Knight, Pawn:
		return k, true
	}
	return NoKind, false
}

// Piece は FEN の駒文字そのもので、大文字が白、小文字が黒です。
type Piece byte

const NoPiece Piece = 0

// NewPiece は色と種類から駒を作ります。
func NewPiece(c Color, k PieceKind) Piece {
	if c == White {
		return Piece(unicode.ToUpper(rune(k)))
	}
	return Piece(k)
}

func (p Piece) Kind() PieceKind {
	if p == NoPiece {
		return NoKind
	}
	return PieceKind(unicode.ToLower(rune(p)))
}

func (p Piece) Color() Color {
	if unicode.IsUpper(rune(p)) {
		return White
	}
	return Black
}

func (p Piece) String() string {
	if p == NoPiece {
		return ""
	}
	return string(rune(p))
}

func (p Piece) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Board は 64 マスの占有状態です。
type Board [64]Piece

// ParsePlacement は FEN の駒配置フィールドを盤面に展開します。
func ParsePlacement(placement string) (Board, error) {
	var b Board
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return b, fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidPlacement, len(ranks))
	}
	for i, rank := range ranks {
		row, err := expandRank(rank)
		if err != nil {
			return b, fmt.Errorf("rank %d: %w", 8-i, err)
		}
		r := 7 - i
		for f, p := range row {
			b[NewSquare(f, r)] = p
		}
	}
	return b, nil
}

// expandRank は 1 段分のランレングス表記を 8 マスに展開します。
func expandRank(rank string) ([8]Piece, error) {
	var row [8]Piece
	file := 0
	for i := 0; i < len(rank); i++ {
		c := rank[i]
		switch {
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			if _, ok := parseKind(c); !ok {
				return row, fmt.Errorf("%w: unexpected character %q", ErrInvalidPlacement, c)
			}
			if file >= 8 {
				return row, fmt.Errorf("%w: %q overflows 8 files", ErrInvalidPlacement, rank)
			}
			row[file] = Piece(c)
			file++
		}
		if file > 8 {
			return row, fmt.Errorf("%w: %q overflows 8 files", ErrInvalidPlacement, rank)
		}
	}
	if file != 8 {
		return row, fmt.Errorf("%w: %q covers %d files", ErrInvalidPlacement, rank, file)
	}
	return row, nil
}

// Placement は盤面を FEN の駒配置フィールドに戻します。
func (b Board) Placement() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			p := b[NewSquare(f, r)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(byte(p))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// Pieces は駒のあるマスだけのマップを返します。
func (b Board) Pieces() map[Square]Piece {
	m := make(map[Square]Piece)
	for sq, p := range b {
		if p != NoPiece {
			m[Square(sq)] = p
		}
	}
	return m
}

func (b Board) ranks() [8]string {
	var out [8]string
	copy(out[:], strings.Split(b.Placement(), "/"))
	return out
}
