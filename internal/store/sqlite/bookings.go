package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/lenslink/lenslink/internal/errors"
	"github.com/lenslink/lenslink/model"
)

const bookingColumns = `id, client_id, creator_id, start_at, end_at, budget_usd, notes, status, created_at, updated_at`

// CreateBooking inserts a new booking request in pending state.
func (s *Store) CreateBooking(ctx context.Context, b model.Booking) (model.Booking, error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	if b.Status == "" {
		b.Status = model.BookingStatusPending
	}

	if _, err := s.GetCreator(ctx, b.CreatorID); err != nil {
		return model.Booking{}, err
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO bookings (`+bookingColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.ClientID, b.CreatorID, b.Start.UTC(), b.End.UTC(),
		b.BudgetUSD, b.Notes, string(b.Status), b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return model.Booking{}, fmt.Errorf("insert booking: %w", err)
	}
	return b, nil
}

// GetBooking fetches one booking by ID.
func (s *Store) GetBooking(ctx context.Context, id string) (model.Booking, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, id)
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, apperrors.NewBookingNotFoundError(id)
	}
	if err != nil {
		return model.Booking{}, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

// ListBookingsForUser returns bookings where the user is either side,
// newest first.
func (s *Store) ListBookingsForUser(ctx context.Context, userID string) ([]model.Booking, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT `+bookingColumns+` FROM bookings
WHERE client_id = ? OR creator_id IN (SELECT id FROM creators WHERE user_id = ?)
ORDER BY created_at DESC`, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// UpdateBookingStatus persists a status change. The transition itself is
// validated by the caller against the booking state machine.
func (s *Store) UpdateBookingStatus(ctx context.Context, id string, status model.BookingStatus) (model.Booking, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE bookings SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC(), id,
	)
	if err != nil {
		return model.Booking{}, fmt.Errorf("update booking status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Booking{}, apperrors.NewBookingNotFoundError(id)
	}
	return s.GetBooking(ctx, id)
}

func scanBooking(row scanner) (model.Booking, error) {
	var b model.Booking
	var status string
	err := row.Scan(&b.ID, &b.ClientID, &b.CreatorID, &b.Start, &b.End,
		&b.BudgetUSD, &b.Notes, &status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return model.Booking{}, err
	}
	b.Status = model.BookingStatus(status)
	return b, nil
}
