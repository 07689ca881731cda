package storage

import (
	"context"
	"time"
)

// Visit is one tracked page view. IPs are hashed before they reach the store.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	VisitedAt time.Time `json:"visited_at"`
}

// Stats summarizes visits.
type Stats struct {
	TotalVisits    int64   `json:"total_visits"`
	UniqueVisitors int64   `json:"unique_visitors"`
	VisitsToday    int64   `json:"visits_today"`
	VisitsThisWeek int64   `json:"visits_this_week"`
	Recent         []Visit `json:"recent"`
}

// RecordVisit stores a page view.
func (s *Store) RecordVisit(ctx context.Context, v Visit) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visits (hashed_ip, user_agent, path, visited_at)
		VALUES (?, ?, ?, ?)`,
		v.HashedIP, v.UserAgent, v.Path, formatTime(v.VisitedAt),
	)
	return err
}

// PurgeVisitsBefore deletes visits older than cutoff and returns how many were
// removed.
func (s *Store) PurgeVisitsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM visits WHERE visited_at < ?", formatTime(cutoff))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Stats computes visit counts relative to now and lists the most recent
// visits, newest first.
func (s *Store) Stats(ctx context.Context, now time.Time, recent int) (*Stats, error) {
	stats := &Stats{}

	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM visits").Scan(&stats.TotalVisits); err != nil {
		return nil, err
	}
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(DISTINCT hashed_ip) FROM visits").Scan(&stats.UniqueVisitors); err != nil {
		return nil, err
	}

	now = now.UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM visits WHERE visited_at >= ?", formatTime(startOfDay),
	).Scan(&stats.VisitsToday); err != nil {
		return nil, err
	}
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM visits WHERE visited_at >= ?", formatTime(now.AddDate(0, 0, -7)),
	).Scan(&stats.VisitsThisWeek); err != nil {
		return nil, err
	}

	if recent <= 0 {
		return stats, nil
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), visited_at
		FROM visits
		ORDER BY visited_at DESC, id DESC
		LIMIT ?`, recent)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var v Visit
		var at string
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &at); err != nil {
			return nil, err
		}
		v.VisitedAt, err = time.Parse(timeLayout, at)
		if err != nil {
			return nil, err
		}
		stats.Recent = append(stats.Recent, v)
	}
	return stats, rows.Err()
}
