package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingua/internal/model"
)

type fakeUsers struct {
	user *model.User

	lastID int
}

func (f *fakeUsers) FindByID(ctx context.Context, id int) (*model.User, error) {
	f.lastID = id
	return f.user, nil
}

type fakeSubscriptions struct {
	subs []model.SearchSubscription
}

func (f *fakeSubscriptions) ListByUser(ctx context.Context, userID int) ([]model.SearchSubscription, error) {
	return f.subs, nil
}

func userTestRouter(users *fakeUsers, subs *fakeSubscriptions) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(users, subs)
	r := gin.New()
	// Stand-in for the session middleware.
	r.Use(func(c *gin.Context) { c.Set("user_id", 42) })
	r.GET("/user_details", h.Details)
	r.GET("/search_subscriptions", h.Subscriptions)
	return r
}

func TestUserDetailsResolvesSessionUser(t *testing.T) {
	users := &fakeUsers{user: &model.User{
		ID:           42,
		Email:        "ann@example.com",
		PasswordHash: "secret-hash",
		LearnedLang:  "de",
		NativeLang:   "en",
		CreatedAt:    time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	}}
	r := userTestRouter(users, &fakeSubscriptions{})

	w := get(r, "/user_details")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 42, users.lastID)
	assert.Contains(t, w.Body.String(), `"email":"ann@example.com"`)
	assert.Contains(t, w.Body.String(), `"learned_language":"de"`)
	// The hash must never leave the server.
	assert.NotContains(t, w.Body.String(), "secret-hash")
}

func TestSearchSubscriptionsListsSavedSearches(t *testing.T) {
	subs := &fakeSubscriptions{subs: []model.SearchSubscription{
		{ID: 1, UserID: 42, Keywords: "climate", ReceiveEmail: true},
		{ID: 2, UserID: 42, Keywords: "football", ReceiveEmail: false},
	}}
	r := userTestRouter(&fakeUsers{}, subs)

	w := get(r, "/search_subscriptions")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"keywords":"climate"`)
	assert.Contains(t, w.Body.String(), `"receive_email":false`)
}

func TestSearchSubscriptionsEmptyIsListNotNull(t *testing.T) {
	r := userTestRouter(&fakeUsers{}, &fakeSubscriptions{})
	assert.Equal(t, "[]", get(r, "/search_subscriptions").Body.String())
}
