package domain

import (
	"fmt"
	"strings"
	"time"
)

// ServiceRequest is a resident's request for assistance.
// Seq is the monotonic per-process sequence backing the display ID;
// ID is always FormatRequestID(Seq).
type ServiceRequest struct {
	ID            string
	Seq           int
	Type          string
	Description   string
	PreferredTime string
	Urgency       Urgency
	Status        RequestStatus
	CreatedAt     time.Time
	Volunteer     string
	Resident      string
}

// FormatRequestID renders a sequence number as a display ID like REQ001.
func FormatRequestID(seq int) string {
	return fmt.Sprintf("REQ%03d", seq)
}

// Matches reports whether query is a case-insensitive substring of any
// searchable field (type, description, resident, volunteer).
// An empty query matches everything.
func (r *ServiceRequest) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range []string{r.Type, r.Description, r.Resident, r.Volunteer} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
