package service

import (
	"errors"

	"go_chess_puzzle_keep/internal/chess"
	"go_chess_puzzle_keep/internal/model"
	"go_chess_puzzle_keep/internal/puzzle"
)

// translateCoreError は盤面・挑戦のエラーをクライアント向けの AppError に変換します。
// それ以外のエラーはそのまま返します。
func translateCoreError(err error, field string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, puzzle.ErrInvalidTransition):
		return model.NewAppError("INVALID_TRANSITION", "現在の状態ではこの操作はできません。", "", errors.Join(model.ErrConflict, err))
	case errors.Is(err, chess.ErrUnknownMove):
		return model.NewAppError("UNKNOWN_MOVE", "指し手を解釈できません。", field, errors.Join(model.ErrInvalidInput, err))
	case errors.Is(err, puzzle.ErrEmptyLine):
		return model.NewAppError("EMPTY_LINE", "正解手順が空です。", field, errors.Join(model.ErrInvalidInput, err))
	case errors.Is(err, chess.ErrInvalidFormat),
		errors.Is(err, chess.ErrInvalidActiveColor),
		errors.Is(err, chess.ErrInvalidPlacement):
		return model.NewAppError("INVALID_FEN", "局面(FEN)が不正です。", field, errors.Join(model.ErrInvalidInput, err))
	}
	return err
}

// asAppError は AppError でないエラーを内部エラーとして包みます。
func asAppError(err error, message string) error {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, model.ErrNotFound) {
		return model.NewAppError("NOT_FOUND", message, "", err)
	}
	return model.NewAppError("INTERNAL_SERVER_ERROR", message, "", errors.Join(model.ErrInternalServer, err))
}
