package db

import "time"

type Flag struct {
	Id                string
	Name              string
	Description       string
	Enabled           bool
	RolloutPercentage int
	TargetAudience    string
	StartDate         *time.Time
	EndDate           *time.Time
	Variant           *string
	Version           int64
	UpdatedAt         time.Time
}
