package timecard

import "time"

// Role identifies the semantic slot a punch fills within a workday.
type Role int

const (
	RoleEntry Role = iota
	RoleLunchOut
	RoleLunchIn
	RoleBreak1
	RoleBreak2
	RoleExit
)

// roleLayouts maps a day's punch count to the positional role assignment.
// The device records entry first and exit last; intermediate punches fill the
// modal workday pattern in order. Counts above six reuse the six-punch prefix,
// demote the surplus middle punches to extra exits, and keep the last punch as
// the exit. Kept as an explicit table so each hard-coded case stays auditable.
var roleLayouts = map[int][]Role{
	1: {RoleEntry},
	2: {RoleEntry, RoleExit},
	3: {RoleEntry, RoleLunchOut, RoleExit},
	4: {RoleEntry, RoleLunchOut, RoleLunchIn, RoleExit},
	5: {RoleEntry, RoleLunchOut, RoleLunchIn, RoleBreak1, RoleExit},
	6: {RoleEntry, RoleLunchOut, RoleLunchIn, RoleBreak1, RoleBreak2, RoleExit},
}

// overflowPrefix is the role assignment for the first punches of a day with
// more than six marks.
var overflowPrefix = []Role{RoleEntry, RoleLunchOut, RoleLunchIn, RoleBreak1, RoleBreak2}

// Slots holds the classified punches of one day. Absent roles stay nil.
type Slots struct {
	Entry      *time.Time
	LunchOut   *time.Time
	LunchIn    *time.Time
	Break1     *time.Time
	Break2     *time.Time
	Exit       *time.Time
	ExtraExits []time.Time
}

// Classify assigns semantic roles to a day's ordered punches based purely on
// how many punches exist. Punches must already be sorted ascending.
func Classify(punches []time.Time) Slots {
	var slots Slots
	n := len(punches)
	if n == 0 {
		return slots
	}

	layout, ok := roleLayouts[n]
	if !ok {
		layout = overflowPrefix
	}
	for i, role := range layout {
		slots.assign(role, punches[i])
	}
	if n > 6 {
		for _, punch := range punches[len(overflowPrefix) : n-1] {
			slots.ExtraExits = append(slots.ExtraExits, punch)
		}
		slots.assign(RoleExit, punches[n-1])
	}
	return slots
}

func (s *Slots) assign(role Role, at time.Time) {
	punch := at
	switch role {
	case RoleEntry:
		s.Entry = &punch
	case RoleLunchOut:
		s.LunchOut = &punch
	case RoleLunchIn:
		s.LunchIn = &punch
	case RoleBreak1:
		s.Break1 = &punch
	case RoleBreak2:
		s.Break2 = &punch
	case RoleExit:
		s.Exit = &punch
	}
}
