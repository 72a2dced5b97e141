package recommender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"lingua/internal/model"
	"lingua/pkg/metrics"
)

// SearchQuery mirrors the article search service's request contract.
// The digest run always asks for page 0 with both ranking priorities on
// and no score threshold, the same query the MySearches page issues.
type SearchQuery struct {
	UserID                 int     `json:"user_id"`
	Count                  int     `json:"count"`
	Keywords               string  `json:"keywords"`
	Page                   int     `json:"page"`
	UsePublishedPriority   bool    `json:"use_published_priority"`
	UseReadabilityPriority bool    `json:"use_readability_priority"`
	ScoreThreshold         float64 `json:"score_threshold"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Search returns candidate articles for one saved search, ordered by
// relevance as computed by the search service.
func (c *Client) Search(ctx context.Context, query SearchQuery) ([]model.CandidateArticle, error) {
	b, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordRecommenderCallLatency("error", time.Since(start))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordRecommenderCallLatency("error", time.Since(start))
		return nil, fmt.Errorf("recommender error: %d", resp.StatusCode)
	}

	var articles []model.CandidateArticle
	if err := json.NewDecoder(resp.Body).Decode(&articles); err != nil {
		metrics.RecordRecommenderCallLatency("error", time.Since(start))
		return nil, err
	}

	metrics.RecordRecommenderCallLatency("success", time.Since(start))
	return articles, nil
}
