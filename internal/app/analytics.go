package app

import "time"

// AnalyticsResponse aggregates the request and donation data behind the
// admin analytics view. Distributions are in fixed display order, not
// sorted by count.
type AnalyticsResponse struct {
	GeneratedAt time.Time

	StatusDistribution  []CountBucket
	UrgencyDistribution []CountBucket
	TypeDistribution    []CountBucket

	// DailyDonations covers the trailing week, oldest day first. Days
	// with no donations are present with zero totals.
	DailyDonations []DayTotal

	FulfillmentRatePct float64
	AvgDonation        float64
	LargestDonation    int
}
