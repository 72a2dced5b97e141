package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lingua/internal/model"
	"lingua/internal/service"
)

type ExerciseLogStore interface {
	LogForBookmark(ctx context.Context, bookmarkID int) ([]model.Exercise, error)
}

type OutcomeReporter interface {
	ReportOutcome(ctx context.Context, report service.OutcomeReport) error
}

// DistractorStore supplies wrong-answer candidates for multiple-choice
// exercises.
type DistractorStore interface {
	SimilarWords(ctx context.Context, bookmarkID, count int) ([]string, error)
}

// distractorCount is how many alternatives a multiple-choice exercise
// shows next to the correct word.
const distractorCount = 3

type ExerciseHandler struct {
	exercises   ExerciseLogStore
	reporter    OutcomeReporter
	distractors DistractorStore
	logger      *zap.Logger
}

func NewExerciseHandler(exercises ExerciseLogStore, reporter OutcomeReporter, distractors DistractorStore, logger *zap.Logger) *ExerciseHandler {
	return &ExerciseHandler{
		exercises:   exercises,
		reporter:    reporter,
		distractors: distractors,
		logger:      logger,
	}
}

type exerciseLogEntry struct {
	ID           int    `json:"id"`
	Outcome      string `json:"outcome"`
	Source       string `json:"source"`
	SolvingSpeed int    `json:"exercise_log_solving_speed"`
	Time         string `json:"time"`
}

// LogForBookmark handles GET /get_exercise_log_for_bookmark/:bookmark_id.
func (h *ExerciseHandler) LogForBookmark(c *gin.Context) {
	bookmarkID, err := strconv.Atoi(c.Param("bookmark_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bookmark_id"})
		return
	}

	log, err := h.exercises.LogForBookmark(c.Request.Context(), bookmarkID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch exercise log"})
		return
	}

	entries := make([]exerciseLogEntry, 0, len(log))
	for _, e := range log {
		entries = append(entries, exerciseLogEntry{
			ID:           e.ID,
			Outcome:      e.Outcome,
			Source:       e.Source,
			SolvingSpeed: e.SolvingSpeed,
			Time:         e.CreatedAt.Format("01/02/2006"),
		})
	}
	c.JSON(http.StatusOK, entries)
}

// SimilarWords handles GET /similar_words/:bookmark_id. Returns words
// from the user's other bookmarks with a frequency rank close to the
// bookmark's word, to serve as exercise distractors.
func (h *ExerciseHandler) SimilarWords(c *gin.Context) {
	bookmarkID, err := strconv.Atoi(c.Param("bookmark_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bookmark_id"})
		return
	}

	words, err := h.distractors.SimilarWords(c.Request.Context(), bookmarkID, distractorCount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch similar words"})
		return
	}
	if words == nil {
		words = []string{}
	}
	c.JSON(http.StatusOK, words)
}

// ReportOutcome handles POST /report_exercise_outcome. The contract with
// the exercise frontends is a literal "OK"/"FAIL" body: any failure is
// logged server-side and reported as "FAIL" with status 200 instead of
// propagating.
func (h *ExerciseHandler) ReportOutcome(c *gin.Context) {
	outcome := c.PostForm("outcome")
	source := c.PostForm("source")
	solvingSpeedRaw := c.PostForm("solving_speed")
	feedback := c.PostForm("other_feedback")

	solvingSpeed, err := strconv.Atoi(solvingSpeedRaw)
	if err != nil || solvingSpeed < 0 {
		solvingSpeed = 0
	}

	bookmarkID, err := strconv.Atoi(c.PostForm("bookmark_id"))
	if err != nil {
		h.logger.Error("report_exercise_outcome: bad bookmark_id",
			zap.String("bookmark_id", c.PostForm("bookmark_id")),
		)
		c.String(http.StatusOK, "FAIL")
		return
	}

	sessionID, err := strconv.Atoi(c.PostForm("session_id"))
	if err != nil {
		h.logger.Error("report_exercise_outcome: bad session_id",
			zap.String("session_id", c.PostForm("session_id")),
		)
		c.String(http.StatusOK, "FAIL")
		return
	}

	report := service.OutcomeReport{
		BookmarkID:   bookmarkID,
		Outcome:      outcome,
		Source:       source,
		SolvingSpeed: solvingSpeed,
		SessionID:    sessionID,
		Feedback:     feedback,
	}
	if err := h.reporter.ReportOutcome(c.Request.Context(), report); err != nil {
		h.logger.Error("report_exercise_outcome failed",
			zap.Int("bookmark_id", bookmarkID),
			zap.Error(err),
		)
		c.String(http.StatusOK, "FAIL")
		return
	}

	c.String(http.StatusOK, "OK")
}
