package visitors

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Zachkp/folio/internal/dto"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Insert(ctx context.Context, v dto.VisitorMetric) error {
	q := r.db.Rebind(`
INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
VALUES (?, ?, ?, ?)`)
	_, err := r.db.ExecContext(ctx, q, v.HashedIP, v.UserAgent, v.Path, v.Timestamp.UTC())
	if err != nil {
		return fmt.Errorf("insert visitor: %w", err)
	}
	return nil
}

// Stats aggregates page views relative to now; recent caps the RecentVisitors list.
func (r *Repository) Stats(ctx context.Context, now time.Time, recent int) (*dto.VisitorStats, error) {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := now.Add(-7 * 24 * time.Hour)

	stats := &dto.VisitorStats{}

	q := r.db.Rebind(`
SELECT COUNT(*),
	   COUNT(DISTINCT hashed_ip),
	   COALESCE(SUM(CASE WHEN timestamp >= ? THEN 1 ELSE 0 END), 0),
	   COALESCE(SUM(CASE WHEN timestamp >= ? THEN 1 ELSE 0 END), 0)
FROM visitors`)
	err := r.db.QueryRowxContext(ctx, q, today, weekAgo).Scan(
		&stats.TotalVisitors, &stats.UniqueVisitors, &stats.VisitorsToday, &stats.VisitorsThisWeek,
	)
	if err != nil {
		return nil, fmt.Errorf("visitor counts: %w", err)
	}

	stats.RecentVisitors, err = r.Recent(ctx, recent)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *Repository) Recent(ctx context.Context, limit int) ([]dto.VisitorMetric, error) {
	if limit <= 0 {
		limit = 50
	}

	q := r.db.Rebind(`
SELECT id, hashed_ip, user_agent, path, timestamp
FROM visitors
ORDER BY timestamp DESC, id DESC
LIMIT ?`)

	out := []dto.VisitorMetric{}
	if err := r.db.SelectContext(ctx, &out, q, limit); err != nil {
		return nil, fmt.Errorf("recent visitors: %w", err)
	}
	return out, nil
}

// DeleteBefore removes page views older than cutoff and reports how many went.
func (r *Repository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	q := r.db.Rebind(`DELETE FROM visitors WHERE timestamp < ?`)
	res, err := r.db.ExecContext(ctx, q, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete visitors: %w", err)
	}
	return res.RowsAffected()
}
