package model

import "time"

// CandidateArticle is one ranked search hit from the recommender.
// It is transient: the digest run never persists it.
type CandidateArticle struct {
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	PublishedTime time.Time `json:"published_time"`
}
