package repository

import (
	"context"
	"sync"
	"time"

	"go_chess_puzzle_keep/internal/middleware"
	"go_chess_puzzle_keep/internal/model"

	"github.com/google/uuid"
)

type memoryEntry struct {
	rec       *AttemptRecord
	expiresAt time.Time
}

// MemoryAttemptStore はプロセス内に挑戦を保持します。単一インスタンス運用とテスト用。
type MemoryAttemptStore struct {
	mu      sync.Mutex
	entries map[uuid.UUID]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryAttemptStore(ttl time.Duration) *MemoryAttemptStore {
	return &MemoryAttemptStore{
		entries: make(map[uuid.UUID]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryAttemptStore) Save(ctx context.Context, rec *AttemptRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[rec.AttemptID] = memoryEntry{rec: rec.clone(), expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryAttemptStore) Load(ctx context.Context, attemptID uuid.UUID) (*AttemptRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[attemptID]
	if !ok {
		return nil, model.ErrNotFound
	}
	if s.ttl > 0 && !s.now().Before(e.expiresAt) {
		delete(s.entries, attemptID)
		return nil, model.ErrNotFound
	}
	return e.rec.clone(), nil
}

func (s *MemoryAttemptStore) Delete(ctx context.Context, attemptID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, attemptID)
	return nil
}

// Sweep は期限切れの挑戦を削除し、削除件数を返します。
func (s *MemoryAttemptStore) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	n := 0
	for id, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, id)
			n++
		}
	}
	return n
}

// RunSweeper は ctx が終わるまで interval ごとに Sweep します。
func (s *MemoryAttemptStore) RunSweeper(ctx context.Context, interval time.Duration) {
	logger := middleware.GetLogger(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				logger.Info("Expired attempts swept", "count", n)
			}
		}
	}
}
