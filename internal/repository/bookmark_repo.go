package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lingua/internal/model"
)

type BookmarkRepository struct {
	db *pgxpool.Pool
}

func NewBookmarkRepository(db *pgxpool.Pool) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

const bookmarkColumns = `
        id, user_id, origin, translation, context, word_rank,
        fit_for_study, learned, consecutive_correct, next_review_at, created_at`

func scanBookmarks(rows pgx.Rows) ([]model.Bookmark, error) {
	defer rows.Close()

	var bookmarks []model.Bookmark
	for rows.Next() {
		var b model.Bookmark
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.Origin, &b.Translation, &b.Context, &b.WordRank,
			&b.FitForStudy, &b.Learned, &b.ConsecutiveCorrect, &b.NextReviewAt, &b.CreatedAt,
		); err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, rows.Err()
}

// FindByID returns a bookmark by primary key.
func (r *BookmarkRepository) FindByID(ctx context.Context, id int) (*model.Bookmark, error) {
	query := `SELECT` + bookmarkColumns + `
        FROM bookmarks
        WHERE id = $1
    `
	var b model.Bookmark
	err := r.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.UserID, &b.Origin, &b.Translation, &b.Context, &b.WordRank,
		&b.FitForStudy, &b.Learned, &b.ConsecutiveCorrect, &b.NextReviewAt, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// BookmarksToStudy returns studiable bookmarks ordered by how common the
// word is, then by learning progress. scheduledOnly restricts the result
// to bookmarks already in the pipeline and due today. limit <= 0 means
// no limit.
func (r *BookmarkRepository) BookmarksToStudy(ctx context.Context, userID, limit int, scheduledOnly bool) ([]model.Bookmark, error) {
	query := `SELECT` + bookmarkColumns + `
        FROM bookmarks
        WHERE user_id = $1
          AND fit_for_study = TRUE
          AND learned = FALSE
    `
	if scheduledOnly {
		query += `
          AND next_review_at IS NOT NULL
          AND next_review_at <= NOW()
        `
	}
	query += `
        ORDER BY word_rank ASC, consecutive_correct DESC, id ASC
    `
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanBookmarks(rows)
}

// BookmarksInPipeline returns bookmarks the user has started exercising
// but not yet learned.
func (r *BookmarkRepository) BookmarksInPipeline(ctx context.Context, userID int) ([]model.Bookmark, error) {
	query := `SELECT` + bookmarkColumns + `
        FROM bookmarks
        WHERE user_id = $1
          AND learned = FALSE
          AND next_review_at IS NOT NULL
        ORDER BY next_review_at ASC, id ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return scanBookmarks(rows)
}

// BookmarksNotInPipeline returns studiable bookmarks the user has never
// exercised.
func (r *BookmarkRepository) BookmarksNotInPipeline(ctx context.Context, userID int) ([]model.Bookmark, error) {
	query := `SELECT` + bookmarkColumns + `
        FROM bookmarks
        WHERE user_id = $1
          AND fit_for_study = TRUE
          AND learned = FALSE
          AND next_review_at IS NULL
        ORDER BY word_rank ASC, id ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return scanBookmarks(rows)
}

// NewBookmarksToStudy returns up to limit never-exercised bookmarks,
// most common words first.
func (r *BookmarkRepository) NewBookmarksToStudy(ctx context.Context, userID, limit int) ([]model.Bookmark, error) {
	query := `SELECT` + bookmarkColumns + `
        FROM bookmarks
        WHERE user_id = $1
          AND fit_for_study = TRUE
          AND learned = FALSE
          AND next_review_at IS NULL
        ORDER BY word_rank ASC, id ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	return scanBookmarks(rows)
}

// CountInPipeline returns the number of bookmarks in active learning.
func (r *BookmarkRepository) CountInPipeline(ctx context.Context, userID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM bookmarks
        WHERE user_id = $1
          AND learned = FALSE
          AND next_review_at IS NOT NULL
    `
	var count int
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	return count, err
}

// SimilarWords returns origins of the user's other bookmarks closest in
// word frequency rank to the given bookmark. Used as exercise
// distractors: same learner, same language, comparable difficulty.
func (r *BookmarkRepository) SimilarWords(ctx context.Context, bookmarkID, count int) ([]string, error) {
	b, err := r.FindByID(ctx, bookmarkID)
	if err != nil {
		return nil, err
	}

	query := `
        SELECT origin
        FROM bookmarks
        WHERE user_id = $1
          AND id <> $2
          AND origin <> $3
        ORDER BY ABS(word_rank - $4) ASC, id ASC
        LIMIT $5
    `
	rows, err := r.db.Query(ctx, query, b.UserID, b.ID, b.Origin, b.WordRank, count)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

// UpdateSchedule writes back the spaced-repetition state after an exercise.
func (r *BookmarkRepository) UpdateSchedule(ctx context.Context, b *model.Bookmark) error {
	query := `
        UPDATE bookmarks
        SET consecutive_correct = $2,
            next_review_at = $3,
            learned = $4
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, b.ID, b.ConsecutiveCorrect, b.NextReviewAt, b.Learned)
	return err
}
