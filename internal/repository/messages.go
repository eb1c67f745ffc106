package repository

import (
	"context"

	"github.com/androadel2014/carryon-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type messageRepo struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, listingID int64, senderID, body string) (*model.Message, error) {
	query := `
		INSERT INTO messages (listing_id, sender_id, body)
		VALUES ($1, $2, $3)
		RETURNING id, listing_id, sender_id, body, created_at`

	var m model.Message
	err := r.db.QueryRow(ctx, query, listingID, senderID, body).
		Scan(&m.ID, &m.ListingID, &m.SenderID, &m.Body, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListOldest returns the chat transcript in reading order.
func (r *messageRepo) ListOldest(ctx context.Context, listingID int64, limit int) ([]*model.Message, error) {
	query := `
		SELECT id, listing_id, sender_id, body, created_at FROM messages
		WHERE listing_id = $1
		ORDER BY created_at ASC, id ASC
		LIMIT $2`

	return r.list(ctx, query, listingID, limit)
}

// ListNewest returns the most recent messages first, used by the
// listing detail aggregate.
func (r *messageRepo) ListNewest(ctx context.Context, listingID int64, limit int) ([]*model.Message, error) {
	query := `
		SELECT id, listing_id, sender_id, body, created_at FROM messages
		WHERE listing_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	return r.list(ctx, query, listingID, limit)
}

func (r *messageRepo) list(ctx context.Context, query string, listingID int64, limit int) ([]*model.Message, error) {
	rows, err := r.db.Query(ctx, query, listingID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.ListingID, &m.SenderID, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}
