package service

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"
	"time"

	"go_chess_puzzle_keep/internal/chess"
	"go_chess_puzzle_keep/internal/config"
	"go_chess_puzzle_keep/internal/middleware"
	"go_chess_puzzle_keep/internal/model"
	"go_chess_puzzle_keep/internal/progress"
	"go_chess_puzzle_keep/internal/puzzle"
	"go_chess_puzzle_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttemptService は学習者の挑戦を進めます。
// 終局した挑戦は1つのトランザクションで履歴・レーティング・レッスン進捗に反映し、ストアから消します。
type AttemptService interface {
	StartAttempt(ctx context.Context, learnerID, puzzleID uuid.UUID) (*model.AttemptResponse, error)
	GetAttempt(ctx context.Context, learnerID, attemptID uuid.UUID) (*model.AttemptResponse, error)
	SubmitMove(ctx context.Context, learnerID, attemptID uuid.UUID, uci string) (*model.AttemptResponse, error)
	AutoReply(ctx context.Context, learnerID, attemptID uuid.UUID) (*model.AttemptResponse, error)
	RequestHint(ctx context.Context, learnerID, attemptID uuid.UUID) (*model.AttemptResponse, error)
	Abandon(ctx context.Context, learnerID, attemptID uuid.UUID) (*model.AttemptResponse, error)
}

type attemptService struct {
	db           *gorm.DB
	store        repository.AttemptStore
	learnerRepo  repository.LearnerRepository
	puzzleRepo   repository.PuzzleRepository
	lessonRepo   repository.LessonRepository
	historyRepo  repository.HistoryRepository
	progressRepo repository.LessonProgressRepository
	aggregator   *progress.Aggregator
	now          func() time.Time

	// 同じ挑戦への同時リクエストを直列化する
	locks [64]sync.Mutex
}

type AttemptServiceDeps struct {
	Store        repository.AttemptStore
	LearnerRepo  repository.LearnerRepository
	PuzzleRepo   repository.PuzzleRepository
	LessonRepo   repository.LessonRepository
	HistoryRepo  repository.HistoryRepository
	ProgressRepo repository.LessonProgressRepository
	Aggregator   *progress.Aggregator
}

func NewAttemptService(db *gorm.DB, deps AttemptServiceDeps) AttemptService {
	return &attemptService{
		db:           db,
		store:        deps.Store,
		learnerRepo:  deps.LearnerRepo,
		puzzleRepo:   deps.PuzzleRepo,
		lessonRepo:   deps.LessonRepo,
		historyRepo:  deps.HistoryRepo,
		progressRepo: deps.ProgressRepo,
		aggregator:   deps.Aggregator,
		now:          time.Now,
	}
}

func (s *attemptService) lockFor(id uuid.UUID) *sync.Mutex {
	h := fnv.New32a()
	h.Write(id[:])
	return &s.locks[h.Sum32()%uint32(len(s.locks))]
}

func (s *attemptService) StartAttempt(ctx context.Context, learnerID, puzzleID uuid.UUID) (*model.AttemptResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "puzzle_id", puzzleID)

	if _, err := s.learnerRepo.FindByID(ctx, s.db, learnerID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("LEARNER_NOT_FOUND", "学習者が見つかりません。", "", err)
		}
		return nil, asAppError(err, "学習者の取得に失敗しました。")
	}
	p, err := s.puzzleRepo.FindByID(ctx, s.db, puzzleID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("PUZZLE_NOT_FOUND", "パズルが見つかりません。", "puzzle_id", err)
		}
		return nil, asAppError(err, "パズルの取得に失敗しました。")
	}

	a, err := puzzle.New(p.StartingFEN, p.ExpectedMoves)
	if err != nil {
		// 保存済みのパズルが壊れている
		logger.Error("Stored puzzle is invalid", "error", err)
		return nil, model.NewAppError("INVALID_PUZZLE", "パズルのデータが不正です。", "", errors.Join(model.ErrInternalServer, err))
	}

	rec := &repository.AttemptRecord{
		AttemptID: uuid.New(),
		LearnerID: learnerID,
		PuzzleID:  p.PuzzleID,
		StartedAt: s.now(),
		Snapshot:  a.Snapshot(),
	}
	if err := s.store.Save(ctx, rec); err != nil {
		return nil, asAppError(err, "挑戦を開始できませんでした。")
	}

	logger.Info("Attempt started", "attempt_id", rec.AttemptID)
	return attemptResponse(rec, a), nil
}

func (s *attemptService) GetAttempt(ctx context.Context, learnerID, attemptID uuid.UUID) (*model.AttemptResponse, error) {
	rec, a, err := s.load(ctx, learnerID, attemptID)
	if err != nil {
		return nil, err
	}
	return attemptResponse(rec, a), nil
}

func (s *attemptService) SubmitMove(ctx context.Context, learnerID, attemptID uuid.UUID, uci string) (*model.AttemptResponse, error) {
	m, err := chess.ParseMove(uci)
	if err != nil {
		return nil, translateCoreError(err, "move")
	}
	return s.transition(ctx, learnerID, attemptID, func(a *puzzle.Attempt, resp *model.AttemptResponse) error {
		_, err := a.SubmitMove(m)
		return err
	})
}

func (s *attemptService) AutoReply(ctx context.Context, learnerID, attemptID uuid.UUID) (*model.AttemptResponse, error) {
	return s.transition(ctx, learnerID, attemptID, func(a *puzzle.Attempt, resp *model.AttemptResponse) error {
		m, err := a.AutoReply()
		if err != nil {
			return err
		}
		resp.ReplyMove = m.String()
		return nil
	})
}

func (s *attemptService) RequestHint(ctx context.Context, learnerID, attemptID uuid.UUID) (*model.AttemptResponse, error) {
	return s.transition(ctx, learnerID, attemptID, func(a *puzzle.Attempt, resp *model.AttemptResponse) error {
		sq, err := a.RequestHint()
		if err != nil {
			return err
		}
		resp.HintSquare = sq.String()
		return nil
	})
}

func (s *attemptService) Abandon(ctx context.Context, learnerID, attemptID uuid.UUID) (*model.AttemptResponse, error) {
	return s.transition(ctx, learnerID, attemptID, func(a *puzzle.Attempt, resp *model.AttemptResponse) error {
		return a.Abandon()
	})
}

// load は挑戦を読み込みます。他の学習者の挑戦は存在しないものとして扱います。
func (s *attemptService) load(ctx context.Context, learnerID, attemptID uuid.UUID) (*repository.AttemptRecord, *puzzle.Attempt, error) {
	rec, err := s.store.Load(ctx, attemptID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil, model.NewAppError("ATTEMPT_NOT_FOUND", "挑戦が見つかりません。終了済みか期限切れです。", "", err)
		}
		return nil, nil, asAppError(err, "挑戦の取得に失敗しました。")
	}
	if rec.LearnerID != learnerID {
		middleware.GetLogger(ctx).Warn("Attempt owned by another learner", "attempt_id", attemptID, "learner_id", learnerID)
		return nil, nil, model.NewAppError("ATTEMPT_NOT_FOUND", "挑戦が見つかりません。終了済みか期限切れです。", "", model.ErrNotFound)
	}
	a, err := puzzle.Restore(rec.Snapshot)
	if err != nil {
		return nil, nil, model.NewAppError("INTERNAL_SERVER_ERROR", "挑戦の復元に失敗しました。", "", errors.Join(model.ErrInternalServer, err))
	}
	return rec, a, nil
}

// transition は1回の状態遷移を適用して保存します。失敗した遷移は保存しません。
func (s *attemptService) transition(ctx context.Context, learnerID, attemptID uuid.UUID, apply func(*puzzle.Attempt, *model.AttemptResponse) error) (*model.AttemptResponse, error) {
	logger := middleware.GetLogger(ctx).With("attempt_id", attemptID, "learner_id", learnerID)

	mu := s.lockFor(attemptID)
	mu.Lock()
	defer mu.Unlock()

	rec, a, err := s.load(ctx, learnerID, attemptID)
	if err != nil {
		return nil, err
	}

	var extra model.AttemptResponse
	if err := apply(a, &extra); err != nil {
		logger.Info("Attempt transition rejected", "state", a.State().String(), "error", err)
		return nil, translateCoreError(err, "move")
	}
	rec.Snapshot = a.Snapshot()

	resp := attemptResponse(rec, a)
	resp.ReplyMove = extra.ReplyMove
	resp.HintSquare = extra.HintSquare

	if !a.State().Terminal() {
		if err := s.store.Save(ctx, rec); err != nil {
			return nil, asAppError(err, "挑戦の保存に失敗しました。")
		}
		return resp, nil
	}

	history, err := s.finalize(ctx, rec, a)
	if err != nil {
		logger.Error("Failed to finalize attempt", "error", err)
		return nil, asAppError(err, "結果の保存に失敗しました。")
	}
	if err := s.store.Delete(ctx, attemptID); err != nil {
		// 結果は保存済み。残った挑戦は期限切れで消える
		logger.Warn("Failed to delete finished attempt", "error", err)
	}
	logger.Info("Attempt finished",
		"status", history.Status,
		"rating_before", history.RatingBefore,
		"rating_after", history.RatingAfter,
		"hint_used", history.HintUsed,
	)
	resp.Result = history
	return resp, nil
}

func solveStatus(st puzzle.State) model.SolveStatus {
	switch st {
	case puzzle.Solved:
		return model.StatusSolved
	case puzzle.Failed:
		return model.StatusFailed
	default:
		return model.StatusAbandoned
	}
}

// finalize は履歴の追加、レーティング更新、レッスン進捗の upsert を1つのトランザクションで行います。
func (s *attemptService) finalize(ctx context.Context, rec *repository.AttemptRecord, a *puzzle.Attempt) (*model.PuzzleHistory, error) {
	var history model.PuzzleHistory
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 同じ学習者の別の挑戦と同時に終局してもレーティング更新を失わない
		learner, err := s.learnerRepo.FindByIDForUpdate(ctx, tx, rec.LearnerID)
		if err != nil {
			return err
		}
		p, err := s.puzzleRepo.FindByID(ctx, tx, rec.PuzzleID)
		if err != nil {
			return err
		}

		in := progress.FinalizeInput{
			Learner:  learner,
			Puzzle:   p,
			Status:   solveStatus(a.State()),
			HintUsed: a.HintUsed(),
			Elapsed:  s.now().Sub(rec.StartedAt),
		}
		if p.LessonID != nil {
			lesson, err := s.lessonRepo.FindByID(ctx, tx, *p.LessonID)
			if err != nil && !errors.Is(err, model.ErrNotFound) {
				return err
			}
			if lesson != nil {
				in.Lesson = lesson
				prior, err := s.progressRepo.Find(ctx, tx, learner.LearnerID, lesson.LessonID)
				if err != nil && !errors.Is(err, model.ErrNotFound) {
					return err
				}
				in.Prior = prior
			}
		}

		res, err := s.aggregator.Finalize(in)
		if err != nil {
			return err
		}
		if err := s.historyRepo.Create(ctx, tx, &res.History); err != nil {
			return err
		}
		if res.History.RatingAfter != res.History.RatingBefore {
			if err := s.learnerRepo.UpdateRating(ctx, tx, learner.LearnerID, res.History.RatingAfter); err != nil {
				return err
			}
		}
		if res.Progress != nil {
			if err := s.progressRepo.Upsert(ctx, tx, res.Progress); err != nil {
				return err
			}
		}
		history = res.History
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &history, nil
}

func attemptResponse(rec *repository.AttemptRecord, a *puzzle.Attempt) *model.AttemptResponse {
	return &model.AttemptResponse{
		AttemptID:  rec.AttemptID,
		PuzzleID:   rec.PuzzleID,
		State:      a.State().String(),
		FEN:        a.Position().String(),
		MoveIndex:  a.Index(),
		TotalMoves: a.ExpectedLen(),
		HintUsed:   a.HintUsed(),
	}
}

// NewAggregatorFromConfig は設定のレーティングパラメータで集計器を作ります。
func NewAggregatorFromConfig(cfg *config.Config) *progress.Aggregator {
	rule := progress.EloRule{
		KFactor:     cfg.Rating.KFactor,
		MaxDelta:    cfg.Rating.MaxDelta,
		HintFactor:  cfg.Rating.HintFactor,
		BeginnerGap: cfg.Rating.BeginnerGap,
	}
	return progress.NewAggregator(rule, cfg.Rating.Min)
}
