package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lingua/internal/model"
	"lingua/internal/service"
)

type fakeExerciseLog struct {
	log []model.Exercise
	err error
}

func (f *fakeExerciseLog) LogForBookmark(ctx context.Context, bookmarkID int) ([]model.Exercise, error) {
	return f.log, f.err
}

type fakeReporter struct {
	reports []service.OutcomeReport
	err     error
}

func (f *fakeReporter) ReportOutcome(ctx context.Context, report service.OutcomeReport) error {
	if f.err != nil {
		return f.err
	}
	f.reports = append(f.reports, report)
	return nil
}

type fakeDistractors struct {
	words []string
	err   error

	lastBookmarkID int
	lastCount      int
}

func (f *fakeDistractors) SimilarWords(ctx context.Context, bookmarkID, count int) ([]string, error) {
	f.lastBookmarkID = bookmarkID
	f.lastCount = count
	return f.words, f.err
}

func exerciseTestRouter(log *fakeExerciseLog, reporter *fakeReporter, distractors *fakeDistractors) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewExerciseHandler(log, reporter, distractors, zap.NewNop())
	r := gin.New()
	r.GET("/get_exercise_log_for_bookmark/:bookmark_id", h.LogForBookmark)
	r.GET("/similar_words/:bookmark_id", h.SimilarWords)
	r.POST("/report_exercise_outcome", h.ReportOutcome)
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReportOutcomeOK(t *testing.T) {
	reporter := &fakeReporter{}
	r := exerciseTestRouter(&fakeExerciseLog{}, reporter, &fakeDistractors{})

	w := postForm(r, "/report_exercise_outcome", url.Values{
		"outcome":       {"Correct"},
		"source":        {"Recognize"},
		"solving_speed": {"1200"},
		"bookmark_id":   {"5"},
		"session_id":    {"42"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	require.Len(t, reporter.reports, 1)
	assert.Equal(t, 5, reporter.reports[0].BookmarkID)
	assert.Equal(t, 1200, reporter.reports[0].SolvingSpeed)
}

func TestReportOutcomeNonNumericSpeedBecomesZero(t *testing.T) {
	reporter := &fakeReporter{}
	r := exerciseTestRouter(&fakeExerciseLog{}, reporter, &fakeDistractors{})

	w := postForm(r, "/report_exercise_outcome", url.Values{
		"outcome":       {"Correct"},
		"solving_speed": {"not-a-number"},
		"bookmark_id":   {"5"},
		"session_id":    {"42"},
	})

	assert.Equal(t, "OK", w.Body.String())
	require.Len(t, reporter.reports, 1)
	assert.Equal(t, 0, reporter.reports[0].SolvingSpeed)
}

func TestReportOutcomeFailsClosed(t *testing.T) {
	// The frontend contract is a literal FAIL body, not an error status.
	r := exerciseTestRouter(&fakeExerciseLog{}, &fakeReporter{err: errors.New("boom")}, &fakeDistractors{})

	w := postForm(r, "/report_exercise_outcome", url.Values{
		"outcome":     {"Correct"},
		"bookmark_id": {"5"},
		"session_id":  {"42"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "FAIL", w.Body.String())
}

func TestReportOutcomeBadBookmarkID(t *testing.T) {
	reporter := &fakeReporter{}
	r := exerciseTestRouter(&fakeExerciseLog{}, reporter, &fakeDistractors{})

	w := postForm(r, "/report_exercise_outcome", url.Values{
		"outcome":     {"Correct"},
		"bookmark_id": {"abc"},
		"session_id":  {"42"},
	})

	assert.Equal(t, "FAIL", w.Body.String())
	assert.Empty(t, reporter.reports)
}

func TestSimilarWordsReturnsBareList(t *testing.T) {
	distractors := &fakeDistractors{words: []string{"Haus", "Hund", "Katze"}}
	r := exerciseTestRouter(&fakeExerciseLog{}, &fakeReporter{}, distractors)

	req := httptest.NewRequest(http.MethodGet, "/similar_words/7", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["Haus","Hund","Katze"]`, w.Body.String())
	assert.Equal(t, 7, distractors.lastBookmarkID)
	assert.Equal(t, distractorCount, distractors.lastCount)
}

func TestSimilarWordsEmptyIsListNotNull(t *testing.T) {
	r := exerciseTestRouter(&fakeExerciseLog{}, &fakeReporter{}, &fakeDistractors{})

	req := httptest.NewRequest(http.MethodGet, "/similar_words/7", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "[]", w.Body.String())
}

func TestSimilarWordsBadBookmarkID(t *testing.T) {
	r := exerciseTestRouter(&fakeExerciseLog{}, &fakeReporter{}, &fakeDistractors{})

	req := httptest.NewRequest(http.MethodGet, "/similar_words/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExerciseLogFormatsDates(t *testing.T) {
	created := time.Date(2026, 8, 27, 15, 4, 5, 0, time.UTC)
	log := &fakeExerciseLog{log: []model.Exercise{
		{ID: 1, Outcome: "Correct", Source: "Recognize", SolvingSpeed: 900, CreatedAt: created},
	}}
	r := exerciseTestRouter(log, &fakeReporter{}, &fakeDistractors{})

	req := httptest.NewRequest(http.MethodGet, "/get_exercise_log_for_bookmark/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"time":"08/27/2026"`)
	assert.Contains(t, w.Body.String(), `"exercise_log_solving_speed":900`)
}
