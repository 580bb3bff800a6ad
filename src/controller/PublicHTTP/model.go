package PublicHTTP

import "gitlab.com/devpro_studio/FlagGate/src/model/dto"

type subjectItem struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

func (s subjectItem) toSubject() dto.Subject {
	return dto.Subject{ID: s.ID, Role: s.Role}
}

type evaluateRequest struct {
	FlagID  string      `json:"flag_id"`
	Subject subjectItem `json:"subject"`
}

type evaluateAllRequest struct {
	Subject subjectItem `json:"subject"`
}

// Variant is null unless the flag is enabled for the subject.
type assignmentItem struct {
	FlagID  string  `json:"flag_id"`
	Enabled bool    `json:"enabled"`
	Variant *string `json:"variant"`
	Reason  string  `json:"reason"`
}

type evaluateAllResponse struct {
	Results []assignmentItem `json:"results"`
}

type isEnabledResponse struct {
	FlagID  string `json:"flag_id"`
	Enabled bool   `json:"enabled"`
}

type variantResponse struct {
	FlagID  string  `json:"flag_id"`
	Variant *string `json:"variant"`
}

func fromAssignment(a dto.Assignment) assignmentItem {
	return assignmentItem{
		FlagID:  a.FlagID,
		Enabled: a.Enabled,
		Variant: variantPtr(a.Variant),
		Reason:  string(a.Reason),
	}
}

func variantPtr(v *dto.Variant) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
