package progress

import (
	"go_chess_puzzle_keep/internal/model"

	"github.com/google/uuid"
)

// ApplyCompletion は直前の進捗と今回の結果から新しい進捗を計算します。
// prior は変更しません。同じパズルを何度適用しても結果は同じです。
//
// レッスンのバージョンが変わっていれば、現在のパズル集合に残っているIDだけを引き継ぎます。
func ApplyCompletion(prior *model.LessonProgress, learnerID uuid.UUID, lesson *model.Lesson, puzzleID uuid.UUID, solved bool) model.LessonProgress {
	lessonID := lesson.LessonID
	next := model.LessonProgress{
		LearnerID:        learnerID,
		LessonID:         &lessonID,
		PuzzleSetVersion: lesson.PuzzleSetVersion,
	}
	members := make(map[uuid.UUID]bool, len(lesson.Puzzles))
	for _, id := range lesson.PuzzleIDs() {
		members[id] = true
	}

	var completed []uuid.UUID
	if prior != nil {
		next.ProgressID = prior.ProgressID
		next.CreatedAt = prior.CreatedAt
		for _, id := range prior.CompletedPuzzleIDs {
			if prior.PuzzleSetVersion != lesson.PuzzleSetVersion && !members[id] {
				continue
			}
			if !containsID(completed, id) {
				completed = append(completed, id)
			}
		}
	}
	if solved && members[puzzleID] && !containsID(completed, puzzleID) {
		completed = append(completed, puzzleID)
	}
	if completed == nil {
		completed = []uuid.UUID{}
	}

	next.CompletedPuzzleIDs = completed
	next.CompletedCount = len(completed)
	return next
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
