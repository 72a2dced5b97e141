package service

import (
	"context"
	"fmt"
	"time"

	"lingua/internal/model"
)

// learnedAfter is how many consecutive correct answers retire a bookmark
// from the pipeline.
const learnedAfter = 4

type BookmarkScheduleStore interface {
	FindByID(ctx context.Context, id int) (*model.Bookmark, error)
	UpdateSchedule(ctx context.Context, b *model.Bookmark) error
}

type ExerciseLogStore interface {
	Insert(ctx context.Context, e *model.Exercise) error
}

// OutcomeReport is one reported exercise performance.
type OutcomeReport struct {
	BookmarkID   int
	Outcome      string
	Source       string
	SolvingSpeed int
	SessionID    int
	Feedback     string
}

// ExerciseService records exercise outcomes and moves the bookmark's
// review schedule accordingly.
type ExerciseService struct {
	bookmarks BookmarkScheduleStore
	exercises ExerciseLogStore

	now func() time.Time
}

func NewExerciseService(bookmarks BookmarkScheduleStore, exercises ExerciseLogStore) *ExerciseService {
	return &ExerciseService{
		bookmarks: bookmarks,
		exercises: exercises,
		now:       time.Now,
	}
}

// ReportOutcome logs the exercise and reschedules the bookmark. A
// correct answer doubles the review interval (1, 2, 4, 8 days); a wrong
// one resets the streak and schedules the bookmark for the next day.
func (s *ExerciseService) ReportOutcome(ctx context.Context, report OutcomeReport) error {
	bookmark, err := s.bookmarks.FindByID(ctx, report.BookmarkID)
	if err != nil {
		return fmt.Errorf("finding bookmark %d: %w", report.BookmarkID, err)
	}

	exercise := &model.Exercise{
		BookmarkID:   report.BookmarkID,
		Outcome:      report.Outcome,
		Source:       report.Source,
		SolvingSpeed: report.SolvingSpeed,
		SessionID:    report.SessionID,
		Feedback:     report.Feedback,
	}
	if err := s.exercises.Insert(ctx, exercise); err != nil {
		return fmt.Errorf("recording exercise: %w", err)
	}

	switch report.Outcome {
	case model.OutcomeCorrect, model.OutcomeTooEasy:
		bookmark.ConsecutiveCorrect++
		if bookmark.ConsecutiveCorrect >= learnedAfter {
			bookmark.Learned = true
			bookmark.NextReviewAt = nil
		} else {
			next := s.now().AddDate(0, 0, 1<<(bookmark.ConsecutiveCorrect-1))
			bookmark.NextReviewAt = &next
		}
	default:
		bookmark.ConsecutiveCorrect = 0
		next := s.now().AddDate(0, 0, 1)
		bookmark.NextReviewAt = &next
	}

	if err := s.bookmarks.UpdateSchedule(ctx, bookmark); err != nil {
		return fmt.Errorf("updating schedule for bookmark %d: %w", bookmark.ID, err)
	}
	return nil
}
