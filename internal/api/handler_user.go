package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"lingua/internal/model"
)

type UserDetailsStore interface {
	FindByID(ctx context.Context, id int) (*model.User, error)
}

type SubscriptionStore interface {
	ListByUser(ctx context.Context, userID int) ([]model.SearchSubscription, error)
}

type UserHandler struct {
	users         UserDetailsStore
	subscriptions SubscriptionStore
}

func NewUserHandler(users UserDetailsStore, subscriptions SubscriptionStore) *UserHandler {
	return &UserHandler{users: users, subscriptions: subscriptions}
}

// Details handles GET /user_details. Returns the session user's account
// record; the password hash is never serialized.
func (h *UserHandler) Details(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	u, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch user"})
		return
	}
	c.JSON(http.StatusOK, u)
}

// Subscriptions handles GET /search_subscriptions. Backs the saved
// searches page that digest emails link to.
func (h *UserHandler) Subscriptions(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	subs, err := h.subscriptions.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch subscriptions"})
		return
	}
	if subs == nil {
		subs = []model.SearchSubscription{}
	}
	c.JSON(http.StatusOK, subs)
}
