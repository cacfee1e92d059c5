//go:generate mockery --name AttemptStore --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"time"

	"go_chess_puzzle_keep/internal/puzzle"

	"github.com/google/uuid"
)

// AttemptRecord は進行中の挑戦です。終局したら削除されます。
type AttemptRecord struct {
	AttemptID uuid.UUID       `json:"attempt_id"`
	LearnerID uuid.UUID       `json:"learner_id"`
	PuzzleID  uuid.UUID       `json:"puzzle_id"`
	StartedAt time.Time       `json:"started_at"`
	Snapshot  puzzle.Snapshot `json:"snapshot"`
}

func (r *AttemptRecord) clone() *AttemptRecord {
	cp := *r
	cp.Snapshot.Expected = append(cp.Snapshot.Expected[:0:0], r.Snapshot.Expected...)
	return &cp
}

// AttemptStore はHTTPリクエストをまたいで挑戦の状態を保持します。
// 見つからない場合は model.ErrNotFound を返します。
type AttemptStore interface {
	Save(ctx context.Context, rec *AttemptRecord) error
	Load(ctx context.Context, attemptID uuid.UUID) (*AttemptRecord, error)
	Delete(ctx context.Context, attemptID uuid.UUID) error
}
