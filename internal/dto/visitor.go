package dto

import (
	"time"
)

// VisitorMetric is one page view, with the address hashed before storage.
type VisitorMetric struct {
	ID        int64     `json:"id" db:"id"`
	HashedIP  string    `json:"hashed_ip" db:"hashed_ip"`
	UserAgent string    `json:"user_agent" db:"user_agent"`
	Path      string    `json:"path" db:"path"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

type VisitorStats struct {
	TotalVisitors    int64           `json:"total_visitors"`
	UniqueVisitors   int64           `json:"unique_visitors"`
	VisitorsToday    int64           `json:"visitors_today"`
	VisitorsThisWeek int64           `json:"visitors_this_week"`
	RecentVisitors   []VisitorMetric `json:"recent_visitors"`
}
