package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"lingua/internal/model"
)

type ExerciseRepository struct {
	db *pgxpool.Pool
}

func NewExerciseRepository(db *pgxpool.Pool) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

// Insert records one exercise outcome.
func (r *ExerciseRepository) Insert(ctx context.Context, e *model.Exercise) error {
	query := `
        INSERT INTO exercises (bookmark_id, outcome, source, solving_speed, session_id, feedback, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW())
        RETURNING id
    `
	return r.db.QueryRow(ctx, query,
		e.BookmarkID, e.Outcome, e.Source, e.SolvingSpeed, e.SessionID, e.Feedback,
	).Scan(&e.ID)
}

// LogForBookmark returns the full exercise history of a bookmark,
// oldest first.
func (r *ExerciseRepository) LogForBookmark(ctx context.Context, bookmarkID int) ([]model.Exercise, error) {
	query := `
        SELECT id, bookmark_id, outcome, source, solving_speed, session_id, feedback, created_at
        FROM exercises
        WHERE bookmark_id = $1
        ORDER BY created_at ASC, id ASC
    `
	rows, err := r.db.Query(ctx, query, bookmarkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var log []model.Exercise
	for rows.Next() {
		var e model.Exercise
		if err := rows.Scan(
			&e.ID, &e.BookmarkID, &e.Outcome, &e.Source,
			&e.SolvingSpeed, &e.SessionID, &e.Feedback, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		log = append(log, e)
	}
	return log, rows.Err()
}
