package domain

// ColumnStatus is the outcome of one schema-maintenance column.
type ColumnStatus string

const (
	ColumnAdded  ColumnStatus = "added"
	ColumnExists ColumnStatus = "exists"
	ColumnError  ColumnStatus = "error"
)

// ColumnSpec names an optional profile attribute and the value backfilled into
// profiles that predate it.
type ColumnSpec struct {
	Name    string
	Default any
}

// ColumnResult reports what happened to one column.
type ColumnResult struct {
	Column string       `json:"column"`
	Status ColumnStatus `json:"status"`
	Error  string       `json:"error,omitempty"`
}

// ProfileColumns are the dietary and health attributes added after the
// original profile schema.
var ProfileColumns = []ColumnSpec{
	{Name: "dietary_restrictions", Default: []string{}},
	{Name: "allergies", Default: []string{}},
	{Name: "disliked_ingredients", Default: []string{}},
	{Name: "health_goals", Default: []string{}},
	{Name: "activity_level", Default: ""},
	{Name: "current_weight", Default: nil},
	{Name: "target_weight", Default: nil},
}

// MembershipColumn holds the membership tier.
var MembershipColumn = ColumnSpec{Name: "membership", Default: string(TierBasic)}

// CountBy is a labelled counter used in statistics.
type CountBy struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// ProfileStats is the profile part of the admin statistics.
type ProfileStats struct {
	TotalUsers      int64     `json:"totalUsers"`
	NewUsersLast7d  int64     `json:"newUsersLast7d"`
	ByMembership    []CountBy `json:"byMembership"`
	ByActivityLevel []CountBy `json:"byActivityLevel"`
	TopHealthGoals  []CountBy `json:"topHealthGoals"`
}

// AdminStats is the payload of the admin dashboard.
type AdminStats struct {
	ProfileStats
	GenerationsByKind []CountBy `json:"generationsByKind"`
}
