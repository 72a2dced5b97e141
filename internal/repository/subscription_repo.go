package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"lingua/internal/model"
)

type SubscriptionRepository struct {
	db *pgxpool.Pool
}

func NewSubscriptionRepository(db *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// ListEmailSubscriptions returns every subscription whose owner opted
// into email digests, joined with the owner's address. Ordered by id so
// digest runs process subscriptions (and therefore render sections and
// send emails) in a stable order.
func (r *SubscriptionRepository) ListEmailSubscriptions(ctx context.Context) ([]model.EmailSubscription, error) {
	query := `
        SELECT s.id, s.user_id, s.keywords, u.email
        FROM search_subscriptions s
        JOIN users u ON u.id = s.user_id
        WHERE s.receive_email = TRUE
        ORDER BY s.id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []model.EmailSubscription
	for rows.Next() {
		var s model.EmailSubscription
		if err := rows.Scan(&s.ID, &s.UserID, &s.Keywords, &s.UserEmail); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

// ListByUser returns a user's saved searches.
func (r *SubscriptionRepository) ListByUser(ctx context.Context, userID int) ([]model.SearchSubscription, error) {
	query := `
        SELECT id, user_id, keywords, receive_email, created_at
        FROM search_subscriptions
        WHERE user_id = $1
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []model.SearchSubscription
	for rows.Next() {
		var s model.SearchSubscription
		if err := rows.Scan(&s.ID, &s.UserID, &s.Keywords, &s.ReceiveEmail, &s.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}
