package app

import "time"

// OverviewResponse holds the headline metrics shown on every dashboard.
// Role views pick the subset they display.
type OverviewResponse struct {
	GeneratedAt time.Time

	TotalRequests     int
	ActiveRequests    int
	CompletedRequests int
	PendingRequests   int
	// FulfillmentRatePct is completed requests over total, 0 when empty.
	FulfillmentRatePct float64

	DonationTotal int
	DonationCount int
	Goal          int
	GoalPct       float64

	// VolunteerCount is the number of distinct named volunteers across
	// all requests; unassigned placeholders are not counted.
	VolunteerCount int

	OpenTasks     int
	AssignedTasks int
}
