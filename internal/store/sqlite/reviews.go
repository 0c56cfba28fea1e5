package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/lenslink/lenslink/internal/errors"
	"github.com/lenslink/lenslink/model"
)

// CreateReview stores a review for a completed booking. A second review
// for the same booking fails with ErrReviewExists.
func (s *Store) CreateReview(ctx context.Context, r model.Review) (model.Review, error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	r.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
INSERT INTO reviews (id, booking_id, creator_id, client_id, rating, comment, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.BookingID, r.CreatorID, r.ClientID, r.Rating, r.Comment, r.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: reviews.booking_id") {
			return model.Review{}, apperrors.ErrReviewExists
		}
		return model.Review{}, fmt.Errorf("insert review: %w", err)
	}
	return r, nil
}

// ListReviewsForCreator returns a creator's reviews, newest first.
func (s *Store) ListReviewsForCreator(ctx context.Context, creatorID string) ([]model.Review, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, booking_id, creator_id, client_id, rating, comment, created_at
FROM reviews WHERE creator_id = ? ORDER BY created_at DESC`, creatorID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]model.Review, 0)
	for rows.Next() {
		var r model.Review
		if err := rows.Scan(&r.ID, &r.BookingID, &r.CreatorID, &r.ClientID, &r.Rating, &r.Comment, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}
