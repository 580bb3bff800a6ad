package dto

import (
	"strings"
	"time"
)

type Audience string

const (
	AudienceAll       Audience = "all"
	AudienceStudents  Audience = "students"
	AudienceEducators Audience = "educators"
	AudienceParents   Audience = "parents"
)

// Valid reports whether a is one of the known audiences. The empty value is
// accepted and treated as AudienceAll.
func (a Audience) Valid() bool {
	switch a {
	case "", AudienceAll, AudienceStudents, AudienceEducators, AudienceParents:
		return true
	}
	return false
}

// FlagRecord is the persisted definition of a flag.
type FlagRecord struct {
	ID                string
	Name              string
	Description       string
	Enabled           bool
	RolloutPercentage int
	TargetAudience    Audience
	StartDate         *time.Time
	EndDate           *time.Time
	// Variant is display metadata only; the per-subject arm is always computed.
	Variant string

	Version   int64
	UpdatedAt time.Time
}

// Validate checks the write-time invariants of the record.
func (r *FlagRecord) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return &ValidationError{Field: "id", Message: "must not be empty"}
	}
	if strings.TrimSpace(r.ID) != r.ID {
		return &ValidationError{Field: "id", Message: "must not have leading or trailing spaces"}
	}
	if r.RolloutPercentage < 0 || r.RolloutPercentage > 100 {
		return &ValidationError{Field: "rollout_percentage", Message: "must be between 0 and 100"}
	}
	if !r.TargetAudience.Valid() {
		return &ValidationError{Field: "target_audience", Message: "unknown audience " + string(r.TargetAudience)}
	}
	if r.StartDate != nil && r.EndDate != nil && r.StartDate.After(*r.EndDate) {
		return &ValidationError{Field: "start_date", Message: "must not be after end_date"}
	}
	return nil
}

// Normalize fills defaults in place.
func (r *FlagRecord) Normalize() {
	if r.TargetAudience == "" {
		r.TargetAudience = AudienceAll
	}
}

// Clone returns a copy that shares no pointers with r.
func (r FlagRecord) Clone() FlagRecord {
	out := r
	if r.StartDate != nil {
		v := *r.StartDate
		out.StartDate = &v
	}
	if r.EndDate != nil {
		v := *r.EndDate
		out.EndDate = &v
	}
	return out
}
