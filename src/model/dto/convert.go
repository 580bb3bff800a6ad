package dto

import (
	"time"

	"gitlab.com/devpro_studio/FlagGate/src/model/db"
)

func FromDB(f *db.Flag) FlagRecord {
	rec := FlagRecord{
		ID:                f.Id,
		Name:              f.Name,
		Description:       f.Description,
		Enabled:           f.Enabled,
		RolloutPercentage: f.RolloutPercentage,
		TargetAudience:    Audience(f.TargetAudience),
		StartDate:         f.StartDate,
		EndDate:           f.EndDate,
		Version:           f.Version,
		UpdatedAt:         f.UpdatedAt,
	}
	if f.Variant != nil {
		rec.Variant = *f.Variant
	}
	return rec.Clone()
}

func (r FlagRecord) ToDB() *db.Flag {
	c := r.Clone()
	out := &db.Flag{
		Id:                c.ID,
		Name:              c.Name,
		Description:       c.Description,
		Enabled:           c.Enabled,
		RolloutPercentage: c.RolloutPercentage,
		TargetAudience:    string(c.TargetAudience),
		StartDate:         c.StartDate,
		EndDate:           c.EndDate,
		Version:           c.Version,
		UpdatedAt:         c.UpdatedAt,
	}
	if c.Variant != "" {
		out.Variant = &c.Variant
	}
	return out
}

// SameDefinition compares everything an admin can set, ignoring bookkeeping.
func (r FlagRecord) SameDefinition(o FlagRecord) bool {
	return r.ID == o.ID &&
		r.Name == o.Name &&
		r.Description == o.Description &&
		r.Enabled == o.Enabled &&
		r.RolloutPercentage == o.RolloutPercentage &&
		r.TargetAudience == o.TargetAudience &&
		r.Variant == o.Variant &&
		sameTime(r.StartDate, o.StartDate) &&
		sameTime(r.EndDate, o.EndDate)
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
