// internal/repository/stats_repository.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/planmaster/planmaster/internal/models"
)

// StatsRepository answers aggregate reporting queries with raw SQL over
// the same database ent writes to. Reads only; no invariants live here.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{
		db: db,
	}
}

// CompletionsByDay counts the plans a user completed per day inside
// [from, to).
func (r *StatsRepository) CompletionsByDay(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.DailyStat, error) {
	const query = `
		SELECT date_trunc('day', completed_at) AS day,
		       COUNT(*)                        AS plans_completed
		FROM plan_completions
		WHERE user_id = $1
		  AND completed = TRUE
		  AND completed_at >= $2
		  AND completed_at < $3
		GROUP BY day
		ORDER BY day`

	var rows []models.DailyStat
	if err := r.db.SelectContext(ctx, &rows, query, userID, from, to); err != nil {
		return nil, fmt.Errorf("query completion stats: %w", err)
	}
	return rows, nil
}
