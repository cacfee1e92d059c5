package model

import (
	"github.com/google/uuid"
)

// StartAttemptRequest は挑戦開始リクエスト
type StartAttemptRequest struct {
	PuzzleID uuid.UUID `json:"puzzle_id" validate:"required"`
}

// SubmitMoveRequest は学習者の指し手 (UCI表記)
type SubmitMoveRequest struct {
	Move string `json:"move" validate:"required,uci"`
}

// AttemptResponse は挑戦の現在の状態です。終局した場合は Result に履歴が入ります。
type AttemptResponse struct {
	AttemptID  uuid.UUID      `json:"attempt_id"`
	PuzzleID   uuid.UUID      `json:"puzzle_id"`
	State      string         `json:"state"`
	FEN        string         `json:"fen"`
	MoveIndex  int            `json:"move_index"`
	TotalMoves int            `json:"total_moves"`
	HintUsed   bool           `json:"hint_used"`
	ReplyMove  string         `json:"reply_move,omitempty"`
	HintSquare string         `json:"hint_square,omitempty"`
	Result     *PuzzleHistory `json:"result,omitempty"`
}
