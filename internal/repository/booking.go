package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/arena-klein/courtbooker/internal/domain"
)

const uniqueViolation = "23505"

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the booking. The composite unique index on
// (court_id, date, slot_time) turns a concurrent double-booking into a
// unique violation, reported as domain.ErrSlotTaken.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, court_id, court_name, court_type, date, slot_time,
			  					   actor_id, actor_name, on_behalf_of, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.CourtID, b.CourtName, b.CourtType, b.Date, b.Time,
		b.ActorID, b.ActorName, nullIfEmpty(b.OnBehalfOf), b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrSlotTaken
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT id, court_id, court_name, court_type, date, slot_time,
			  		 actor_id, actor_name, on_behalf_of, created_at, updated_at
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// List returns the full current booking set. Consumers (availability grids,
// per-user views) filter; the store does not.
func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT id, court_id, court_name, court_type, date, slot_time,
			  		 actor_id, actor_name, on_behalf_of, created_at, updated_at
			  FROM bookings
			  ORDER BY date, slot_time, court_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// Update moves the booking to a new date/slot. The same unique index that
// guards Create rejects a conflicting target; the row being edited never
// conflicts with itself.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings
			  SET date = $2, slot_time = $3, on_behalf_of = $4, updated_at = $5
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.Date, b.Time, nullIfEmpty(b.OnBehalfOf), b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrSlotTaken
		}
		return fmt.Errorf("update booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update booking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete booking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

// PurgeBefore removes bookings dated strictly before date (YYYY-MM-DD).
func (r *BookingRepository) PurgeBefore(ctx context.Context, date string) (int64, error) {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM bookings WHERE date < $1`, date)
	if err != nil {
		return 0, fmt.Errorf("purge bookings: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge bookings rows affected: %w", err)
	}

	return rows, nil
}

func scanBooking(scan func(dest ...any) error) (*domain.Booking, error) {
	var b domain.Booking
	var onBehalfOf sql.NullString
	if err := scan(
		&b.ID, &b.CourtID, &b.CourtName, &b.CourtType, &b.Date, &b.Time,
		&b.ActorID, &b.ActorName, &onBehalfOf, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	b.OnBehalfOf = onBehalfOf.String
	return &b, nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
