package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lingua/internal/model"
)

// BookmarkStore is the read side of the bookmark repository used by the
// study endpoints.
type BookmarkStore interface {
	BookmarksToStudy(ctx context.Context, userID, limit int, scheduledOnly bool) ([]model.Bookmark, error)
	BookmarksInPipeline(ctx context.Context, userID int) ([]model.Bookmark, error)
	BookmarksNotInPipeline(ctx context.Context, userID int) ([]model.Bookmark, error)
	NewBookmarksToStudy(ctx context.Context, userID, limit int) ([]model.Bookmark, error)
	CountInPipeline(ctx context.Context, userID int) (int, error)
}

type BookmarkHandler struct {
	bookmarks BookmarkStore
}

func NewBookmarkHandler(bookmarks BookmarkStore) *BookmarkHandler {
	return &BookmarkHandler{bookmarks: bookmarks}
}

func sessionUserID(c *gin.Context) (int, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return 0, false
	}
	return userID.(int), true
}

func countParam(c *gin.Context) (int, bool) {
	count, err := strconv.Atoi(c.Param("count"))
	if err != nil || count < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid count"})
		return 0, false
	}
	return count, true
}

// bookmarkList keeps empty results as [] rather than null.
func bookmarkList(bookmarks []model.Bookmark) []model.Bookmark {
	if bookmarks == nil {
		return []model.Bookmark{}
	}
	return bookmarks
}

// ScheduledToStudy handles GET/POST /scheduled_bookmarks_to_study/:count.
// Returns bookmarks that are in the pipeline and due today.
func (h *BookmarkHandler) ScheduledToStudy(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	count, ok := countParam(c)
	if !ok {
		return
	}

	toStudy, err := h.bookmarks.BookmarksToStudy(c.Request.Context(), userID, count, true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookmarks"})
		return
	}
	c.JSON(http.StatusOK, bookmarkList(toStudy))
}

// TopToStudy handles GET /top_bookmarks_to_study/:count. Returns all
// studiable bookmarks ordered by word frequency and learning progress.
func (h *BookmarkHandler) TopToStudy(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	count, ok := countParam(c)
	if !ok {
		return
	}

	toStudy, err := h.bookmarks.BookmarksToStudy(c.Request.Context(), userID, count, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookmarks"})
		return
	}
	c.JSON(http.StatusOK, bookmarkList(toStudy))
}

// TopToStudyCount handles GET /top_bookmarks_to_study_count. Used by
// exercise frontends to decide how many bookmarks to pull.
func (h *BookmarkHandler) TopToStudyCount(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	toStudy, err := h.bookmarks.BookmarksToStudy(c.Request.Context(), userID, 0, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookmarks"})
		return
	}
	c.JSON(http.StatusOK, len(toStudy))
}

// NotScheduled handles GET/POST /bookmarks_to_learn_not_scheduled.
func (h *BookmarkHandler) NotScheduled(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	bookmarks, err := h.bookmarks.BookmarksNotInPipeline(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookmarks"})
		return
	}
	c.JSON(http.StatusOK, bookmarkList(bookmarks))
}

// InPipeline handles GET/POST /bookmarks_in_pipeline. Renders the Words
// tab in the frontend.
func (h *BookmarkHandler) InPipeline(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	bookmarks, err := h.bookmarks.BookmarksInPipeline(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookmarks"})
		return
	}
	c.JSON(http.StatusOK, bookmarkList(bookmarks))
}

// HasPipelineToReview handles GET /has_bookmarks_in_pipeline_to_review.
func (h *BookmarkHandler) HasPipelineToReview(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	toStudy, err := h.bookmarks.BookmarksToStudy(c.Request.Context(), userID, 1, true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookmarks"})
		return
	}
	c.JSON(http.StatusOK, len(toStudy) > 0)
}

// HasToReview handles GET /has_bookmarks_to_review.
func (h *BookmarkHandler) HasToReview(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	toStudy, err := h.bookmarks.BookmarksToStudy(c.Request.Context(), userID, 1, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookmarks"})
		return
	}
	c.JSON(http.StatusOK, len(toStudy) > 0)
}

// NewToStudy handles GET /new_bookmarks_to_study/:count. Bookmarks
// recommended for study that are not yet in the pipeline.
func (h *BookmarkHandler) NewToStudy(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	count, ok := countParam(c)
	if !ok {
		return
	}

	bookmarks, err := h.bookmarks.NewBookmarksToStudy(c.Request.Context(), userID, count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookmarks"})
		return
	}
	c.JSON(http.StatusOK, bookmarkList(bookmarks))
}

// TotalInPipeline handles GET /get_total_bookmarks_in_pipeline.
func (h *BookmarkHandler) TotalInPipeline(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	count, err := h.bookmarks.CountInPipeline(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count bookmarks"})
		return
	}
	c.JSON(http.StatusOK, count)
}
