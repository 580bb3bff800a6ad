package AdminHTTP

import (
	"time"

	"gitlab.com/devpro_studio/FlagGate/src/model/db"
	"gitlab.com/devpro_studio/FlagGate/src/model/dto"
)

type Flag struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Enabled           bool       `json:"enabled"`
	RolloutPercentage int        `json:"rollout_percentage"`
	TargetAudience    string     `json:"target_audience"`
	StartDate         *time.Time `json:"start_date,omitempty"`
	EndDate           *time.Time `json:"end_date,omitempty"`
	Variant           string     `json:"variant,omitempty"`
	Version           int64      `json:"version"`
	UpdatedAt         time.Time  `json:"updated_at"`
	Used              bool       `json:"used"`
}

type flagWriteReq struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Enabled           bool       `json:"enabled"`
	RolloutPercentage int        `json:"rollout_percentage"`
	TargetAudience    string     `json:"target_audience"`
	StartDate         *time.Time `json:"start_date"`
	EndDate           *time.Time `json:"end_date"`
	Variant           string     `json:"variant"`
}

type HistoryItem struct {
	ID                string     `json:"id"`
	Enabled           bool       `json:"enabled"`
	RolloutPercentage int        `json:"rollout_percentage"`
	TargetAudience    string     `json:"target_audience"`
	Version           int64      `json:"version"`
	CreatedAt         time.Time  `json:"created_at"`
	DeletedAt         *time.Time `json:"deleted_at,omitempty"`
}

func (r flagWriteReq) toRecord() dto.FlagRecord {
	return dto.FlagRecord{
		ID:                r.ID,
		Name:              r.Name,
		Description:       r.Description,
		Enabled:           r.Enabled,
		RolloutPercentage: r.RolloutPercentage,
		TargetAudience:    dto.Audience(r.TargetAudience),
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		Variant:           r.Variant,
	}
}

func fromRecord(rec dto.FlagRecord, used bool) Flag {
	return Flag{
		ID:                rec.ID,
		Name:              rec.Name,
		Description:       rec.Description,
		Enabled:           rec.Enabled,
		RolloutPercentage: rec.RolloutPercentage,
		TargetAudience:    string(rec.TargetAudience),
		StartDate:         rec.StartDate,
		EndDate:           rec.EndDate,
		Variant:           rec.Variant,
		Version:           rec.Version,
		UpdatedAt:         rec.UpdatedAt,
		Used:              used,
	}
}

func fromHistory(h *db.FlagHistory) HistoryItem {
	return HistoryItem{
		ID:                h.Id.String(),
		Enabled:           h.Enabled,
		RolloutPercentage: h.RolloutPercentage,
		TargetAudience:    h.TargetAudience,
		Version:           h.V,
		CreatedAt:         h.CreatedAt,
		DeletedAt:         h.DeletedAt,
	}
}
