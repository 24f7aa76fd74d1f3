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

type SignUpRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSignUpRepo(db *dbpg.DB) *SignUpRepository {
	return &SignUpRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the sign-up after checking the capacity ceiling inside the
// same transaction. The count runs under an advisory lock keyed by
// (slot_key, date), so two concurrent callers serialize instead of both
// passing the check. A duplicate (slot_key, date, actor_id) surfaces as the
// unique violation, reported as domain.ErrAlreadySignedUp.
func (r *SignUpRepository) Create(ctx context.Context, s *domain.SignUp, capacity int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`
	if _, err = tx.ExecContext(ctx, lockQuery, s.SlotKey+"|"+s.Date); err != nil {
		return fmt.Errorf("acquire session lock: %w", err)
	}

	var count int
	countQuery := `SELECT COUNT(*) FROM class_signups WHERE slot_key = $1 AND date = $2`
	if err = tx.QueryRowContext(ctx, countQuery, s.SlotKey, s.Date).Scan(&count); err != nil {
		return fmt.Errorf("count sign-ups: %w", err)
	}

	if count >= capacity {
		return domain.ErrClassFull
	}

	query := `INSERT INTO class_signups (id, actor_id, actor_name, actor_email,
			  						     slot_key, date, experimental, signed_up_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = tx.ExecContext(
		ctx, query,
		s.ID, s.ActorID, s.ActorName, s.ActorEmail,
		s.SlotKey, s.Date, s.Experimental, s.SignedUpAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrAlreadySignedUp
		}
		return fmt.Errorf("insert sign-up: %w", err)
	}

	return tx.Commit()
}

func (r *SignUpRepository) GetByID(ctx context.Context, id string) (*domain.SignUp, error) {
	query := `SELECT id, actor_id, actor_name, actor_email, slot_key, date, experimental, signed_up_at
			  FROM class_signups
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get sign-up: %w", err)
	}

	s, err := scanSignUp(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSignUpNotFound
		}
		return nil, fmt.Errorf("scan sign-up: %w", err)
	}

	return s, nil
}

func (r *SignUpRepository) GetBySession(ctx context.Context, slotKey, date, actorID string) (*domain.SignUp, error) {
	query := `SELECT id, actor_id, actor_name, actor_email, slot_key, date, experimental, signed_up_at
			  FROM class_signups
			  WHERE slot_key = $1 AND date = $2 AND actor_id = $3`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, slotKey, date, actorID)
	if err != nil {
		return nil, fmt.Errorf("get sign-up by session: %w", err)
	}

	s, err := scanSignUp(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSignUpNotFound
		}
		return nil, fmt.Errorf("scan sign-up: %w", err)
	}

	return s, nil
}

func (r *SignUpRepository) List(ctx context.Context) ([]*domain.SignUp, error) {
	query := `SELECT id, actor_id, actor_name, actor_email, slot_key, date, experimental, signed_up_at
			  FROM class_signups
			  ORDER BY date, slot_key, signed_up_at`

	return r.querySignUps(ctx, query)
}

func (r *SignUpRepository) ListBySession(ctx context.Context, slotKey, date string) ([]*domain.SignUp, error) {
	query := `SELECT id, actor_id, actor_name, actor_email, slot_key, date, experimental, signed_up_at
			  FROM class_signups
			  WHERE slot_key = $1 AND date = $2
			  ORDER BY signed_up_at`

	return r.querySignUps(ctx, query, slotKey, date)
}

func (r *SignUpRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM class_signups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sign-up: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete sign-up rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSignUpNotFound
	}

	return nil
}

func (r *SignUpRepository) PurgeBefore(ctx context.Context, date string) (int64, error) {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM class_signups WHERE date < $1`, date)
	if err != nil {
		return 0, fmt.Errorf("purge sign-ups: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge sign-ups rows affected: %w", err)
	}

	return rows, nil
}

func (r *SignUpRepository) querySignUps(ctx context.Context, query string, args ...any) ([]*domain.SignUp, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sign-ups: %w", err)
	}
	defer rows.Close()

	var res []*domain.SignUp
	for rows.Next() {
		s, err := scanSignUp(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan sign-up: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

func scanSignUp(scan func(dest ...any) error) (*domain.SignUp, error) {
	var s domain.SignUp
	if err := scan(
		&s.ID, &s.ActorID, &s.ActorName, &s.ActorEmail,
		&s.SlotKey, &s.Date, &s.Experimental, &s.SignedUpAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
