package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// AdminRepository reads the admins side table. Admin status is a row keyed
// by actor id, not a claim in the session token.
type AdminRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAdminRepo(db *dbpg.DB) *AdminRepository {
	return &AdminRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AdminRepository) IsAdmin(ctx context.Context, actorID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM admins WHERE actor_id = $1)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, actorID)
	if err != nil {
		return false, fmt.Errorf("check admin: %w", err)
	}

	var isAdmin bool
	if err = row.Scan(&isAdmin); err != nil {
		return false, fmt.Errorf("scan admin flag: %w", err)
	}

	return isAdmin, nil
}
