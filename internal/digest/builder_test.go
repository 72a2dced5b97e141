package digest

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lingua/internal/model"
	"lingua/internal/recommender"
)

type fakeSubs struct {
	subs []model.EmailSubscription
	err  error
}

func (f *fakeSubs) ListEmailSubscriptions(ctx context.Context) ([]model.EmailSubscription, error) {
	return f.subs, f.err
}

type fakeSearcher struct {
	results map[string][]model.CandidateArticle
	err     error
	queries []recommender.SearchQuery
}

func (f *fakeSearcher) Search(ctx context.Context, q recommender.SearchQuery) ([]model.CandidateArticle, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	return f.results[q.Keywords], nil
}

type sentEmail struct {
	subject   string
	body      string
	recipient string
}

type fakeDispatcher struct {
	sent []sentEmail
	err  error
}

func (f *fakeDispatcher) Send(ctx context.Context, subject, body, recipient string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentEmail{subject: subject, body: body, recipient: recipient})
	return nil
}

func testBuilder(subs *fakeSubs, searcher *fakeSearcher, dispatcher *fakeDispatcher, now time.Time) *Builder {
	b := NewBuilder(subs, searcher, dispatcher, zap.NewNop(), Options{
		Render: testRenderOptions,
	})
	b.now = func() time.Time { return now }
	return b
}

func TestRunGroupsSubscriptionsPerUser(t *testing.T) {
	now := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	fresh := now.Add(-time.Hour)
	stale := now.Add(-25 * time.Hour)

	subs := &fakeSubs{subs: []model.EmailSubscription{
		{ID: 1, UserID: 10, Keywords: "cats", UserEmail: "ann@example.com"},
		{ID: 2, UserID: 10, Keywords: "dogs", UserEmail: "ann@example.com"},
		{ID: 3, UserID: 20, Keywords: "birds", UserEmail: "bob@example.com"},
	}}
	searcher := &fakeSearcher{results: map[string][]model.CandidateArticle{
		"cats":  {{Title: "Cat A", URL: "c1", PublishedTime: fresh}},
		"dogs":  {{Title: "Dog A", URL: "d1", PublishedTime: fresh}, {Title: "Dog B", URL: "d2", PublishedTime: fresh}},
		"birds": {{Title: "Old Bird", URL: "b1", PublishedTime: stale}},
	}}
	dispatcher := &fakeDispatcher{}

	err := testBuilder(subs, searcher, dispatcher, now).Run(context.Background())
	require.NoError(t, err)

	// One email per user with qualifying articles; bob had none.
	require.Len(t, dispatcher.sent, 1)
	sent := dispatcher.sent[0]
	assert.Equal(t, "ann@example.com", sent.recipient)
	assert.Equal(t, "New articles for 'cats','dogs'", sent.subject)
	assert.Greater(t, strings.Index(sent.body, "Search: 'dogs':"), strings.Index(sent.body, "Search: 'cats':"))
}

func TestRunIssuesTheMySearchesQuery(t *testing.T) {
	now := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)

	subs := &fakeSubs{subs: []model.EmailSubscription{
		{ID: 1, UserID: 10, Keywords: "cats", UserEmail: "ann@example.com"},
	}}
	searcher := &fakeSearcher{}
	dispatcher := &fakeDispatcher{}

	err := testBuilder(subs, searcher, dispatcher, now).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, searcher.queries, 1)
	q := searcher.queries[0]
	assert.Equal(t, 10, q.UserID)
	assert.Equal(t, 3, q.Count)
	assert.Equal(t, "cats", q.Keywords)
	assert.Equal(t, 0, q.Page)
	assert.True(t, q.UsePublishedPriority)
	assert.True(t, q.UseReadabilityPriority)
	assert.Zero(t, q.ScoreThreshold)
}

func TestRunSendsNothingWhenNoArticlesQualify(t *testing.T) {
	now := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)

	subs := &fakeSubs{subs: []model.EmailSubscription{
		{ID: 1, UserID: 10, Keywords: "cats", UserEmail: "ann@example.com"},
	}}
	searcher := &fakeSearcher{results: map[string][]model.CandidateArticle{
		"cats": {{Title: "Old", URL: "c1", PublishedTime: now.Add(-48 * time.Hour)}},
	}}
	dispatcher := &fakeDispatcher{}

	err := testBuilder(subs, searcher, dispatcher, now).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, dispatcher.sent)
}

func TestRunSendOrderFollowsFirstQualifyingSubscription(t *testing.T) {
	now := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	fresh := now.Add(-time.Hour)

	subs := &fakeSubs{subs: []model.EmailSubscription{
		{ID: 1, UserID: 20, Keywords: "birds", UserEmail: "bob@example.com"},
		{ID: 2, UserID: 10, Keywords: "cats", UserEmail: "ann@example.com"},
	}}
	searcher := &fakeSearcher{results: map[string][]model.CandidateArticle{
		"birds": {{Title: "Bird", URL: "b1", PublishedTime: fresh}},
		"cats":  {{Title: "Cat", URL: "c1", PublishedTime: fresh}},
	}}
	dispatcher := &fakeDispatcher{}

	err := testBuilder(subs, searcher, dispatcher, now).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, dispatcher.sent, 2)
	assert.Equal(t, "bob@example.com", dispatcher.sent[0].recipient)
	assert.Equal(t, "ann@example.com", dispatcher.sent[1].recipient)
}

func TestRunAbortsOnSearcherError(t *testing.T) {
	subs := &fakeSubs{subs: []model.EmailSubscription{
		{ID: 1, UserID: 10, Keywords: "cats", UserEmail: "ann@example.com"},
	}}
	searcher := &fakeSearcher{err: errors.New("recommender down")}
	dispatcher := &fakeDispatcher{}

	err := testBuilder(subs, searcher, dispatcher, time.Now()).Run(context.Background())
	require.Error(t, err)
	assert.Empty(t, dispatcher.sent)
}

func TestRunAbortsOnDispatchError(t *testing.T) {
	now := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)

	subs := &fakeSubs{subs: []model.EmailSubscription{
		{ID: 1, UserID: 10, Keywords: "cats", UserEmail: "ann@example.com"},
	}}
	searcher := &fakeSearcher{results: map[string][]model.CandidateArticle{
		"cats": {{Title: "Cat", URL: "c1", PublishedTime: now.Add(-time.Hour)}},
	}}
	dispatcher := &fakeDispatcher{err: errors.New("smtp down")}

	err := testBuilder(subs, searcher, dispatcher, now).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ann@example.com")
}

func TestRunAbortsWhenListingFails(t *testing.T) {
	subs := &fakeSubs{err: errors.New("db down")}
	err := testBuilder(subs, &fakeSearcher{}, &fakeDispatcher{}, time.Now()).Run(context.Background())
	require.Error(t, err)
}
