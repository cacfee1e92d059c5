package service

import (
	"context"
	"errors"
	"strings"

	"go_chess_puzzle_keep/internal/chess"
	"go_chess_puzzle_keep/internal/config"
	"go_chess_puzzle_keep/internal/middleware"
	"go_chess_puzzle_keep/internal/model"
	"go_chess_puzzle_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PuzzleService interface {
	CreatePuzzle(ctx context.Context, req *model.CreatePuzzleRequest) (*model.Puzzle, error)
	GetPuzzle(ctx context.Context, puzzleID uuid.UUID) (*model.Puzzle, error)
	ListPuzzles(ctx context.Context, filter model.ListPuzzlesFilter) ([]*model.Puzzle, error)
	PositionFacts(ctx context.Context, fen string) (*model.PositionFactsResponse, error)
	Preview(ctx context.Context, puzzleID uuid.UUID) (*model.PreviewResponse, error)
	ImportSet(ctx context.Context, set *PuzzleSet) (*ImportResult, error)
}

type puzzleService struct {
	db         *gorm.DB
	puzzleRepo repository.PuzzleRepository
	lessonRepo repository.LessonRepository
	sink       PreviewSink
	cfg        *config.Config
}

func NewPuzzleService(db *gorm.DB, puzzleRepo repository.PuzzleRepository, lessonRepo repository.LessonRepository, sink PreviewSink, cfg *config.Config) PuzzleService {
	if sink == nil {
		sink = BoardEditorSink{BaseURL: cfg.Preview.BaseURL}
	}
	return &puzzleService{
		db:         db,
		puzzleRepo: puzzleRepo,
		lessonRepo: lessonRepo,
		sink:       sink,
		cfg:        cfg,
	}
}

// checkLine はFENと手順を検証し、設定に応じて手順の合法性も確認します。
func (s *puzzleService) checkLine(startFEN string, moves []string) error {
	if _, err := chess.Parse(startFEN); err != nil {
		return translateCoreError(err, "starting_fen")
	}
	if len(moves) == 0 {
		return model.NewAppError("EMPTY_LINE", "正解手順が空です。", "expected_moves", model.ErrInvalidInput)
	}
	if _, err := chess.ParseMoves(moves); err != nil {
		return translateCoreError(err, "expected_moves")
	}
	if !s.cfg.Authoring.AuditLines {
		return nil
	}
	if err := auditLine(startFEN, moves); err != nil {
		msg := "正解手順に合法でない手が含まれています。"
		var auditErr *LineAuditError
		if errors.As(err, &auditErr) && auditErr.Move != "" {
			msg = "正解手順の " + auditErr.Move + " は合法手ではありません。"
		}
		return model.NewAppError("ILLEGAL_LINE", msg, "expected_moves", errors.Join(model.ErrInvalidInput, err))
	}
	return nil
}

func themesFromSlugs(slugs []string, names map[string]string) []model.PuzzleTheme {
	seen := make(map[string]bool, len(slugs))
	themes := make([]model.PuzzleTheme, 0, len(slugs))
	for _, raw := range slugs {
		slug := strings.ToLower(strings.TrimSpace(raw))
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		name := names[slug]
		if name == "" {
			name = slug
		}
		themes = append(themes, model.PuzzleTheme{Slug: slug, Name: name})
	}
	return themes
}

func normalizeMoves(moves []string) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = strings.ToLower(strings.TrimSpace(m))
	}
	return out
}

func (s *puzzleService) CreatePuzzle(ctx context.Context, req *model.CreatePuzzleRequest) (*model.Puzzle, error) {
	logger := middleware.GetLogger(ctx)

	moves := normalizeMoves(req.ExpectedMoves)
	if err := s.checkLine(req.StartingFEN, moves); err != nil {
		logger.Info("Puzzle rejected", "error", err)
		return nil, err
	}
	if !req.Difficulty.Valid() {
		return nil, model.NewAppError("INVALID_DIFFICULTY", "難易度が不正です。", "difficulty", model.ErrInvalidInput)
	}

	p := &model.Puzzle{
		PuzzleID:      uuid.New(),
		LessonID:      req.LessonID,
		StartingFEN:   strings.TrimSpace(req.StartingFEN),
		ExpectedMoves: moves,
		Difficulty:    req.Difficulty,
		Rating:        req.Rating,
		Themes:        themesFromSlugs(req.Themes, nil),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if p.LessonID != nil {
			lesson, err := s.lessonRepo.FindByID(ctx, tx, *p.LessonID)
			if err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.NewAppError("LESSON_NOT_FOUND", "レッスンが見つかりません。", "lesson_id", err)
				}
				return err
			}
			p.LessonOrder = len(lesson.Puzzles)
			if err := s.puzzleRepo.Create(ctx, tx, p); err != nil {
				return err
			}
			// パズル構成が変わったのでバージョンを上げる
			_, err = s.lessonRepo.BumpVersion(ctx, tx, lesson.LessonID, "")
			return err
		}
		return s.puzzleRepo.Create(ctx, tx, p)
	})
	if err != nil {
		logger.Error("Failed to create puzzle", "error", err)
		return nil, asAppError(err, "パズルの作成に失敗しました。")
	}

	logger.Info("Puzzle created", "puzzle_id", p.PuzzleID, "moves", len(moves))
	return p, nil
}

func (s *puzzleService) GetPuzzle(ctx context.Context, puzzleID uuid.UUID) (*model.Puzzle, error) {
	p, err := s.puzzleRepo.FindByID(ctx, s.db, puzzleID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("PUZZLE_NOT_FOUND", "パズルが見つかりません。", "", err)
		}
		return nil, asAppError(err, "パズルの取得に失敗しました。")
	}
	return p, nil
}

func (s *puzzleService) ListPuzzles(ctx context.Context, filter model.ListPuzzlesFilter) ([]*model.Puzzle, error) {
	if filter.Difficulty != "" && !filter.Difficulty.Valid() {
		return nil, model.NewAppError("INVALID_DIFFICULTY", "難易度が不正です。", "difficulty", model.ErrInvalidInput)
	}
	if filter.Limit <= 0 || filter.Limit > s.cfg.App.PuzzleLimit {
		filter.Limit = s.cfg.App.PuzzleLimit
	}
	filter.Theme = strings.ToLower(strings.TrimSpace(filter.Theme))

	puzzles, err := s.puzzleRepo.List(ctx, s.db, filter)
	if err != nil {
		return nil, asAppError(err, "パズル一覧の取得に失敗しました。")
	}
	return puzzles, nil
}

// PositionFacts は盤面表示用に手番と駒配置を返します。
func (s *puzzleService) PositionFacts(ctx context.Context, fen string) (*model.PositionFactsResponse, error) {
	pos, err := chess.Parse(fen)
	if err != nil {
		middleware.GetLogger(ctx).Debug("Invalid FEN for facts", "error", err)
		return nil, translateCoreError(err, "fen")
	}
	board, err := pos.Occupancy()
	if err != nil {
		return nil, translateCoreError(err, "fen")
	}

	occupancy := make(map[string]string, 32)
	for sq, piece := range board.Pieces() {
		occupancy[sq.String()] = piece.String()
	}
	return &model.PositionFactsResponse{
		ActiveSide: pos.Active.String(),
		Occupancy:  occupancy,
	}, nil
}

func (s *puzzleService) Preview(ctx context.Context, puzzleID uuid.UUID) (*model.PreviewResponse, error) {
	p, err := s.GetPuzzle(ctx, puzzleID)
	if err != nil {
		return nil, err
	}
	side, err := chess.ActiveSide(p.StartingFEN)
	if err != nil {
		return nil, translateCoreError(err, "starting_fen")
	}
	link, err := s.sink.Open(ctx, PreviewRequest{PuzzleID: p.PuzzleID, FEN: p.StartingFEN, Orientation: side})
	if err != nil {
		return nil, asAppError(err, "プレビューを開けませんでした。")
	}
	return &model.PreviewResponse{URL: link}, nil
}
