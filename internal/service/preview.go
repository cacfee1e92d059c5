package service

import (
	"context"
	"net/url"
	"strings"

	"go_chess_puzzle_keep/internal/chess"
	"go_chess_puzzle_keep/internal/middleware"

	"github.com/google/uuid"
)

// PreviewRequest はプレビューに渡す局面です。
type PreviewRequest struct {
	PuzzleID    uuid.UUID
	FEN         string
	Orientation chess.Color
}

// PreviewSink は局面のプレビューを開く外部の仕組みです (盤面エディタのタブなど)。
// 開いた先のURLを返します。
type PreviewSink interface {
	Open(ctx context.Context, req PreviewRequest) (string, error)
}

// BoardEditorSink は盤面エディタのURLを組み立ててログに残すだけのデフォルト実装です。
type BoardEditorSink struct {
	BaseURL string
}

func (s BoardEditorSink) Open(ctx context.Context, req PreviewRequest) (string, error) {
	q := url.Values{}
	q.Set("fen", req.FEN)
	q.Set("orientation", strings.ToLower(req.Orientation.String()))
	link := strings.TrimRight(s.BaseURL, "?") + "?" + q.Encode()

	middleware.GetLogger(ctx).Info("Preview opened", "puzzle_id", req.PuzzleID, "url", link)
	return link, nil
}
