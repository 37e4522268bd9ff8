// internal/models/stats.go
package models

import "time"

// DailyStat is one row of the per-day completion report.
type DailyStat struct {
	Day            time.Time `db:"day"`
	PlansCompleted int       `db:"plans_completed"`
}
