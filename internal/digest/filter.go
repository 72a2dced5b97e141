package digest

import (
	"time"

	"lingua/internal/model"
)

// FilterRecent keeps candidates published strictly after cutoff,
// preserving the recommender's relevance order. An article published
// exactly at the cutoff is excluded.
func FilterRecent(articles []model.CandidateArticle, cutoff time.Time) []model.CandidateArticle {
	var fresh []model.CandidateArticle
	for _, a := range articles {
		if a.PublishedTime.After(cutoff) {
			fresh = append(fresh, a)
		}
	}
	return fresh
}
