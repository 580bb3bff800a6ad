package dto

const (
	RoleStudent  = "student"
	RoleEducator = "educator"
	RoleParent   = "parent"
)

// Subject is the caller-supplied entity a flag is evaluated for. ID must be
// stable across calls for bucketing to be sticky.
type Subject struct {
	ID   string
	Role string
}
