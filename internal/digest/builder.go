package digest

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"lingua/internal/model"
	"lingua/internal/recommender"
	"lingua/pkg/metrics"
)

// SubscriptionSource yields the subscriptions to process: every saved
// search whose owner opted into email digests.
type SubscriptionSource interface {
	ListEmailSubscriptions(ctx context.Context) ([]model.EmailSubscription, error)
}

// ArticleSearcher is the recommender: ranked candidates for one saved
// search.
type ArticleSearcher interface {
	Search(ctx context.Context, query recommender.SearchQuery) ([]model.CandidateArticle, error)
}

// Dispatcher hands a finished email to the delivery mechanism.
// Fire-and-forget: no retry and no delivery confirmation here.
type Dispatcher interface {
	Send(ctx context.Context, subject, body, recipient string) error
}

type Options struct {
	// ArticlesPerSearch is the recommender result limit per subscription.
	ArticlesPerSearch int
	// Window is how far back an article's publication time may lie.
	Window time.Duration
	Render RenderOptions
}

// Builder runs one digest pass: fetch, filter, aggregate, render, send.
// Single-threaded and blocking; the first error aborts the run and
// discards every digest not yet sent.
type Builder struct {
	subs       SubscriptionSource
	searcher   ArticleSearcher
	dispatcher Dispatcher
	logger     *zap.Logger
	opts       Options

	now func() time.Time
}

func NewBuilder(
	subs SubscriptionSource,
	searcher ArticleSearcher,
	dispatcher Dispatcher,
	logger *zap.Logger,
	opts Options,
) *Builder {
	if opts.ArticlesPerSearch <= 0 {
		opts.ArticlesPerSearch = 3
	}
	if opts.Window <= 0 {
		opts.Window = 24 * time.Hour
	}
	return &Builder{
		subs:       subs,
		searcher:   searcher,
		dispatcher: dispatcher,
		logger:     logger,
		opts:       opts,
		now:        time.Now,
	}
}

func (b *Builder) Run(ctx context.Context) error {
	subscriptions, err := b.subs.ListEmailSubscriptions(ctx)
	if err != nil {
		return fmt.Errorf("listing email subscriptions: %w", err)
	}

	cutoff := b.now().Add(-b.opts.Window)
	b.logger.Info("Digest run started",
		zap.Int("subscriptions", len(subscriptions)),
		zap.Time("cutoff", cutoff),
	)

	agg := NewAggregator()
	for _, sub := range subscriptions {
		articles, err := b.searcher.Search(ctx, recommender.SearchQuery{
			UserID:                 sub.UserID,
			Count:                  b.opts.ArticlesPerSearch,
			Keywords:               sub.Keywords,
			Page:                   0,
			UsePublishedPriority:   true,
			UseReadabilityPriority: true,
			ScoreThreshold:         0,
		})
		if err != nil {
			return fmt.Errorf("searching articles for subscription %d (%q): %w", sub.ID, sub.Keywords, err)
		}

		fresh := FilterRecent(articles, cutoff)
		if len(fresh) == 0 {
			metrics.IncrementSubscriptionsProcessed("empty")
			continue
		}

		pairs := make([]Article, 0, len(fresh))
		for _, a := range fresh {
			pairs = append(pairs, Article{Title: a.Title, URL: a.URL})
		}
		agg.Add(sub.UserEmail, sub.Keywords, pairs)
		metrics.IncrementSubscriptionsProcessed("matched")
	}

	for _, email := range agg.Emails() {
		d := agg.Digest(email)
		subject := RenderSubject(d.Keywords())
		body := RenderBody(d, b.opts.Render)

		if err := b.dispatcher.Send(ctx, subject, body, email); err != nil {
			metrics.IncrementDigestEmailsSent("failed")
			return fmt.Errorf("dispatching digest to %s: %w", email, err)
		}
		metrics.IncrementDigestEmailsSent("success")
		b.logger.Info("Digest dispatched",
			zap.String("recipient", email),
			zap.Int("sections", len(d.Keywords())),
		)
	}

	b.logger.Info("Digest run finished", zap.Int("emails", agg.Len()))
	return nil
}
