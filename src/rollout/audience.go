package rollout

import "gitlab.com/devpro_studio/FlagGate/src/model/dto"

var audienceRole = map[dto.Audience]string{
	dto.AudienceStudents:  dto.RoleStudent,
	dto.AudienceEducators: dto.RoleEducator,
	dto.AudienceParents:   dto.RoleParent,
}

// MatchAudience reports whether a subject with role may see a flag targeted
// at audience. No hierarchy: a parent is never a student.
func MatchAudience(audience dto.Audience, role string) bool {
	if audience == "" || audience == dto.AudienceAll {
		return true
	}
	want, ok := audienceRole[audience]
	if !ok {
		return false
	}
	return role == want || role == string(audience)
}
