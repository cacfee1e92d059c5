package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		wantErr error
	}{
		{name: "正常系: 初期局面", fen: StartingFEN},
		{name: "正常系: 黒番・アンパッサンあり", fen: "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2"},
		{name: "正常系: キャスリング権なし", fen: "8/8/8/8/8/8/8/K6k b - - 12 40"},
		{name: "異常系: 空文字", fen: "", wantErr: ErrInvalidFormat},
		{name: "異常系: フィールド1つ", fen: "8/8/8/8/8/8/8/8", wantErr: ErrInvalidFormat},
		{name: "異常系: 手番が不正", fen: "8/8/8/8/8/8/8/K6k x - - 0 1", wantErr: ErrInvalidActiveColor},
		{name: "異常系: フィールド不足", fen: "8/8/8/8/8/8/8/K6k w - -", wantErr: ErrInvalidFormat},
		{name: "異常系: フィールド過多", fen: StartingFEN + " extra", wantErr: ErrInvalidFormat},
		{name: "異常系: 段が7つ", fen: "8/8/8/8/8/8/K6k w - - 0 1", wantErr: ErrInvalidPlacement},
		{name: "異常系: 9筋ある段", fen: "pppppppp9/8/8/8/8/8/8/K6k w - - 0 1", wantErr: ErrInvalidPlacement},
		{name: "異常系: 7筋しかない段", fen: "ppppppp/8/8/8/8/8/8/K6k w - - 0 1", wantErr: ErrInvalidPlacement},
		{name: "異常系: 不明な駒文字", fen: "8/8/8/8/8/8/8/K5xk w - - 0 1", wantErr: ErrInvalidPlacement},
		{name: "異常系: キャスリング重複", fen: "8/8/8/8/8/8/8/K6k w KK - 0 1", wantErr: ErrInvalidFormat},
		{name: "異常系: アンパッサン段違い", fen: "8/8/8/8/8/8/8/K6k w - e4 0 1", wantErr: ErrInvalidFormat},
		{name: "異常系: 手数が0", fen: "8/8/8/8/8/8/8/K6k w - - 0 0", wantErr: ErrInvalidFormat},
		{name: "異常系: 50手カウンタが負", fen: "8/8/8/8/8/8/8/K6k w - - -1 1", wantErr: ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := Parse(tt.fen)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, Position{}, pos)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.fen, pos.String())
		})
	}
}

func TestActiveSide(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		want    Color
		wantErr error
	}{
		{name: "正常系: 白番", fen: StartingFEN, want: White},
		{name: "正常系: 黒番", fen: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", want: Black},
		{name: "正常系: 2フィールドだけのFEN", fen: "8/8/8/8/8/8/8/8 b", want: Black},
		{name: "異常系: 手番フィールドなし", fen: "8/8/8/8/8/8/8/8", wantErr: ErrInvalidFormat},
		{name: "異常系: 大文字のW", fen: "8/8/8/8/8/8/8/8 W", wantErr: ErrInvalidActiveColor},
		{name: "異常系: white と書かれている", fen: "8/8/8/8/8/8/8/8 white - - 0 1", wantErr: ErrInvalidActiveColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ActiveSide(tt.fen)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.String(), got.String())
		})
	}
}

func TestOccupancy_RoundTrip(t *testing.T) {
	fens := []string{
		StartingFEN,
		"r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4",
		"8/2k5/8/3Pp3/8/8/5K2/8 w - e6 0 50",
		"8/8/8/8/8/8/8/8 w - - 0 1",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			pos, err := Parse(fen)
			require.NoError(t, err)
			board, err := pos.Occupancy()
			require.NoError(t, err)

			again, err := ParsePlacement(board.Placement())
			require.NoError(t, err)
			assert.Equal(t, board, again)
			assert.Equal(t, pos.Placement(), board.Placement())
		})
	}
}

func TestOccupancy_Squares(t *testing.T) {
	pos, err := Parse(StartingFEN)
	require.NoError(t, err)
	board, err := pos.Occupancy()
	require.NoError(t, err)

	e1, _ := ParseSquare("e1")
	d8, _ := ParseSquare("d8")
	e4, _ := ParseSquare("e4")
	assert.Equal(t, Piece('K'), board[e1])
	assert.Equal(t, White, board[e1].Color())
	assert.Equal(t, Piece('q'), board[d8])
	assert.Equal(t, Black, board[d8].Color())
	assert.Equal(t, NoPiece, board[e4])
	assert.Len(t, board.Pieces(), 32)
}

func TestParsePlacement_Errors(t *testing.T) {
	tests := []struct {
		name      string
		placement string
	}{
		{name: "段が多い", placement: "8/8/8/8/8/8/8/8/8"},
		{name: "9を含む", placement: "pppppppp9/8/8/8/8/8/8/8"},
		{name: "0を含む", placement: "0pppppppp/8/8/8/8/8/8/8"},
		{name: "合計が足りない", placement: "ppppppp/8/8/8/8/8/8/8"},
		{name: "駒の後に数字で超過", placement: "p8/8/8/8/8/8/8/8"},
		{name: "小文字以外の記号", placement: "8/8/8/8/8/8/8/7*"},
	}
	for _, tt := range tests {
		t.Run("異常系: "+tt.name, func(t *testing.T) {
			_, err := ParsePlacement(tt.placement)
			assert.ErrorIs(t, err, ErrInvalidPlacement)
		})
	}
}
