package FlagGateGRPC

import "google.golang.org/protobuf/types/known/structpb"

const (
	FieldFlagID    = "flag_id"
	FieldSubjectID = "subject_id"
	FieldRole      = "role"
	FieldEnabled   = "enabled"
	FieldVariant   = "variant"
	FieldReason    = "reason"
)

// Assignment is the typed view of an Evaluate response. Variant is empty
// when the server sent null.
type Assignment struct {
	FlagID  string
	Enabled bool
	Variant string
	Reason  string
}

func FlagRequest(flagId, subjectId, role string) *structpb.Struct {
	req := SubjectRequest(subjectId, role)
	req.Fields[FieldFlagID] = structpb.NewStringValue(flagId)
	return req
}

func SubjectRequest(subjectId, role string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldSubjectID: structpb.NewStringValue(subjectId),
		FieldRole:      structpb.NewStringValue(role),
	}}
}

func AssignmentFromStruct(s *structpb.Struct) Assignment {
	f := s.GetFields()
	return Assignment{
		FlagID:  f[FieldFlagID].GetStringValue(),
		Enabled: f[FieldEnabled].GetBoolValue(),
		Variant: f[FieldVariant].GetStringValue(),
		Reason:  f[FieldReason].GetStringValue(),
	}
}
