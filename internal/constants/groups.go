package constants

import (
	"database/sql/driver"
	"fmt"
)

// StaffGroup mirrors the Postgres ENUM 'staff_group'
type StaffGroup string

const (
	GroupGateManagers    StaffGroup = "gate_managers"
	GroupCheckInManagers StaffGroup = "check_in_managers"
	GroupSupervisors     StaffGroup = "supervisors"
)

// Stringer ­– convenient for fmt / logs
func (g StaffGroup) String() string { return string(g) }

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (g *StaffGroup) Scan(src interface{}) error {
	if src == nil {
		*g = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*g = StaffGroup(v)
	case []byte:
		*g = StaffGroup(v)
	default:
		return fmt.Errorf("StaffGroup: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (g StaffGroup) Value() (driver.Value, error) { return string(g), nil }

// GroupLanding pairs a staff group with the page it lands on after login.
type GroupLanding struct {
	Group   StaffGroup
	Landing string
}

// GroupsRedirect is the priority-ordered landing table for staff users.
// The first group a user belongs to wins. Loaded once, never mutated.
var GroupsRedirect = []GroupLanding{
	{GroupGateManagers, "/staff/gate-manager"},
	{GroupCheckInManagers, "/staff/check-in-manager"},
	{GroupSupervisors, "/staff/supervisor"},
}

// GroupCapabilities maps each staff group to the entities it may act on.
// Static configuration, not process state.
var GroupCapabilities = map[StaffGroup][]string{
	GroupGateManagers:    {"ticket:view"},
	GroupCheckInManagers: {"flight:view", "flight:add", "flight:change", "flight:delete"},
	GroupSupervisors: {
		"ticket:view",
		"flight:view", "flight:add", "flight:change", "flight:delete",
		"user:view", "user:add", "user:change", "user:delete",
	},
}

// AllStaffGroups lists every known group in redirect priority order.
func AllStaffGroups() []StaffGroup {
	groups := make([]StaffGroup, 0, len(GroupsRedirect))
	for _, gl := range GroupsRedirect {
		groups = append(groups, gl.Group)
	}
	return groups
}
