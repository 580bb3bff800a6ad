package db

import (
	"time"

	"github.com/google/uuid"
)

type FlagHistory struct {
	Id                uuid.UUID
	FlagId            string
	Enabled           bool
	RolloutPercentage int
	TargetAudience    string
	V                 int64
	CreatedAt         time.Time
	DeletedAt         *time.Time
}
