package dto

type Variant string

const (
	VariantA Variant = "A"
	VariantB Variant = "B"
)

type Reason string

const (
	ReasonNotFound         Reason = "not_found"
	ReasonDisabled         Reason = "disabled"
	ReasonOutsideWindow    Reason = "outside_window"
	ReasonAudienceMismatch Reason = "audience_mismatch"
	ReasonRolloutExcluded  Reason = "rollout_excluded"
	ReasonIncluded         Reason = "included"
	ReasonError            Reason = "error"
)

// Assignment is the derived result of evaluating one flag for one subject.
// Variant is nil unless Enabled is true.
type Assignment struct {
	FlagID  string
	Enabled bool
	Variant *Variant
	Reason  Reason
}

func (a Assignment) VariantString() string {
	if a.Variant == nil {
		return ""
	}
	return string(*a.Variant)
}
