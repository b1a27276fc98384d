package domain

type Role string

const (
	RoleResident  Role = "Resident"
	RoleVolunteer Role = "Volunteer"
	RoleAdmin     Role = "Admin"
)

type Urgency string

const (
	UrgencyLow    Urgency = "Low"
	UrgencyMedium Urgency = "Medium"
	UrgencyHigh   Urgency = "High"
	UrgencyUrgent Urgency = "Urgent"
)

// AllUrgencies lists urgency levels from least to most severe.
var AllUrgencies = []Urgency{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyUrgent}

// Rank returns the sort weight of an urgency level; higher is more severe.
// Unknown values rank below Low.
func (u Urgency) Rank() int {
	switch u {
	case UrgencyLow:
		return 1
	case UrgencyMedium:
		return 2
	case UrgencyHigh:
		return 3
	case UrgencyUrgent:
		return 4
	}
	return 0
}

type RequestStatus string

const (
	RequestPending    RequestStatus = "Pending"
	RequestInProgress RequestStatus = "In Progress"
	RequestCompleted  RequestStatus = "Completed"
	RequestCancelled  RequestStatus = "Cancelled"
)

// AllRequestStatuses lists the request lifecycle states in display order.
var AllRequestStatuses = []RequestStatus{
	RequestPending, RequestInProgress, RequestCompleted, RequestCancelled,
}

type TaskStatus string

const (
	TaskOpen       TaskStatus = "Open"
	TaskAssigned   TaskStatus = "Assigned"
	TaskInProgress TaskStatus = "In Progress"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)
