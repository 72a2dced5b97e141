package model

import "time"

// Bookmark is a word a user saved while reading, together with its
// spaced-repetition state. next_review_at is NULL until the first
// exercise puts the bookmark into the learning pipeline.
type Bookmark struct {
	ID                 int        `json:"id"`
	UserID             int        `json:"user_id"`
	Origin             string     `json:"origin"`
	Translation        string     `json:"translation"`
	Context            string     `json:"context,omitempty"`
	WordRank           int        `json:"word_rank"`
	FitForStudy        bool       `json:"fit_for_study"`
	Learned            bool       `json:"learned"`
	ConsecutiveCorrect int        `json:"consecutive_correct"`
	NextReviewAt       *time.Time `json:"next_review_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}
