package model

import "time"

// Exercise outcomes as reported by the exercise frontends.
const (
	OutcomeCorrect = "Correct"
	OutcomeRetry   = "Retry"
	OutcomeWrong   = "Wrong"
	OutcomeTypo    = "Typo"
	OutcomeTooEasy = "Too easy"
)

type Exercise struct {
	ID           int       `json:"id"`
	BookmarkID   int       `json:"bookmark_id"`
	Outcome      string    `json:"outcome"`
	Source       string    `json:"source"`
	SolvingSpeed int       `json:"solving_speed"`
	SessionID    int       `json:"session_id"`
	Feedback     string    `json:"feedback,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
