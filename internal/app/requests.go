package app

import "github.com/oahconnect/carelink/internal/domain"

// CreateRequestInput carries a new service request from the UI form.
// Volunteer is the preferred volunteer; empty means no preference.
type CreateRequestInput struct {
	Type          string
	Description   string
	PreferredTime string
	Urgency       domain.Urgency
	Resident      string
	Volunteer     string
}

// RequestFilter narrows a request listing. Zero-valued fields match
// everything; Query is a case-insensitive substring search across the
// displayed fields.
type RequestFilter struct {
	Status   domain.RequestStatus
	Urgency  domain.Urgency
	Resident string
	Type     string
	Query    string
}

// RequestSort selects the ordering of a request listing.
type RequestSort string

const (
	// SortNewestFirst is the default listing order.
	SortNewestFirst RequestSort = "newest"
	SortOldestFirst RequestSort = "oldest"
	// SortMostUrgent orders by urgency rank, most severe first.
	SortMostUrgent RequestSort = "urgency"
)
