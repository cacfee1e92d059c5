package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// API は /api/v1 配下のハンドラ一式です。
type API struct {
	Learners *LearnerHandler
	Puzzles  *PuzzleHandler
	Attempts *AttemptHandler
	Progress *ProgressHandler
}

// Mount はルートを登録します。auth は学習者IDをコンテキストにセットするミドルウェア。
func (a *API) Mount(r chi.Router, auth func(http.Handler) http.Handler) {
	// --- Public routes ---
	r.Post("/learners", a.Learners.PostLearner)

	// --- Protected routes ---
	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Get("/me", a.Learners.GetMe)

		r.Route("/puzzles", func(r chi.Router) {
			r.Post("/", a.Puzzles.PostPuzzle)
			r.Get("/", a.Puzzles.GetPuzzles)
			r.Get("/{puzzle_id}", a.Puzzles.GetPuzzle)
			r.Post("/{puzzle_id}/preview", a.Puzzles.PostPreview)
		})
		r.Post("/positions/facts", a.Puzzles.PostPositionFacts)

		r.Route("/attempts", func(r chi.Router) {
			r.Post("/", a.Attempts.PostAttempt)
			r.Get("/{attempt_id}", a.Attempts.GetAttempt)
			r.Post("/{attempt_id}/moves", a.Attempts.PostMove)
			r.Post("/{attempt_id}/auto-reply", a.Attempts.PostAutoReply)
			r.Post("/{attempt_id}/hint", a.Attempts.PostHint)
			r.Post("/{attempt_id}/abandon", a.Attempts.PostAbandon)
		})

		r.Get("/history", a.Progress.GetHistory)
		r.Get("/lessons/{lesson_id}/progress", a.Progress.GetLessonProgress)
	})
}
