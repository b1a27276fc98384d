package domain

import "strings"

// VolunteerTask is an open assignment on the volunteer task board.
type VolunteerTask struct {
	ID         string
	Service    string
	Resident   string
	Time       string
	Urgency    Urgency
	Status     TaskStatus
	AssignedTo string
}

// Acceptable reports whether the task can still be claimed by a volunteer.
func (t *VolunteerTask) Acceptable() bool {
	return t.Status == TaskOpen
}

// Matches reports whether query is a case-insensitive substring of any
// displayed field. An empty query matches everything.
func (t *VolunteerTask) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range []string{t.Service, t.Resident, t.Time, string(t.Urgency), string(t.Status)} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
