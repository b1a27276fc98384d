// Package seed generates the demo data the application starts with:
// service requests, donations, the volunteer task board, and the canned
// notification feed. The random source is injected so tests can seed it
// deterministically.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/oahconnect/carelink/internal/domain"
)

const (
	RequestCount  = 25
	DonationCount = 60
)

var serviceTypes = []string{
	"Morning Walk", "Grocery Shopping", "Doctor Visit",
	"Home Help", "Medicine Pickup", "Phone Call",
	"Cleaning Help", "Cooking Assistance", "Reading Companion",
}

var residents = []string{
	"Mrs. Sharma", "Mr. Gupta", "Mrs. Patel", "Mr. Singh", "Ms. Kapoor",
	"Mr. Rao", "Mrs. Khan", "Mr. Verma", "Ms. Joshi", "Mrs. Mehta",
}

var volunteers = []string{
	"Rahul Kumar", "Priya Sharma", "Amit Patel", "Sneha Singh",
	"Vikram Reddy", "Anjali Gupta", "Rohan Das", "TBD",
}

var donors = []string{
	"Rajesh Kumar", "Priya Sharma", "Anonymous", "Amit Patel", "Sneha Gupta",
	"Vikram Industries", "Rahul Verma", "Anjali Singh", "Anonymous", "Tech Corp",
	"Rohan Das", "Kavita Reddy", "Anonymous", "Sunita Joshi", "Ramesh & Family",
	"Anonymous", "Neha Kapoor", "Arjun Mehta", "Anonymous", "Senior Care Foundation",
}

var campaigns = []string{"Winter Care", "Medical Fund", "General Support", "Food Program"}

var donationAmounts = []int{100, 200, 500, 1000, 1500, 2000, 2500, 5000, 10000}

var minuteSlots = []string{"00", "15", "30", "45"}

// Generator produces pseudo-random demo records.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// New creates a Generator with the given seed, anchored at the current time.
func New(seedVal int64) *Generator {
	return NewAt(seedVal, time.Now().UTC())
}

// NewAt creates a Generator anchored at a fixed time, for deterministic tests.
func NewAt(seedVal int64, now time.Time) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seedVal)),
		now: now,
	}
}

func (g *Generator) pick(options []string) string {
	return options[g.rng.Intn(len(options))]
}

// withinLastMonth returns a timestamp up to 30 days and 23 hours in the past.
func (g *Generator) withinLastMonth() time.Time {
	days := g.rng.Intn(31)
	hours := g.rng.Intn(24)
	return g.now.AddDate(0, 0, -days).Add(-time.Duration(hours) * time.Hour)
}

// Requests generates RequestCount service requests with sequence numbers
// starting at 1. The last five are always Pending so the board never looks
// fully worked-off on first launch.
func (g *Generator) Requests() []*domain.ServiceRequest {
	statuses := []string{
		string(domain.RequestPending), string(domain.RequestInProgress),
		string(domain.RequestCompleted), string(domain.RequestCancelled),
	}
	urgencies := []string{
		string(domain.UrgencyLow), string(domain.UrgencyMedium),
		string(domain.UrgencyHigh), string(domain.UrgencyUrgent),
	}

	requests := make([]*domain.ServiceRequest, 0, RequestCount)
	for i := 0; i < RequestCount; i++ {
		status := domain.RequestPending
		if i < RequestCount-5 {
			status = domain.RequestStatus(g.pick(statuses))
		}

		seq := i + 1
		requests = append(requests, &domain.ServiceRequest{
			ID:            domain.FormatRequestID(seq),
			Seq:           seq,
			Type:          g.pick(serviceTypes),
			Description:   "Request for assistance with daily activities. Special requirements noted.",
			PreferredTime: fmt.Sprintf("%02d:%s", 8+g.rng.Intn(11), g.pick(minuteSlots)),
			Urgency:       domain.Urgency(g.pick(urgencies)),
			Status:        status,
			CreatedAt:     g.withinLastMonth(),
			Volunteer:     g.pick(volunteers),
			Resident:      g.pick(residents),
		})
	}
	return requests
}

// Donations generates DonationCount donations over the last 30 days.
func (g *Generator) Donations() []*domain.Donation {
	donations := make([]*domain.Donation, 0, DonationCount)
	for i := 0; i < DonationCount; i++ {
		donations = append(donations, &domain.Donation{
			ID:        uuid.New().String(),
			Amount:    donationAmounts[g.rng.Intn(len(donationAmounts))],
			Donor:     g.pick(donors),
			CreatedAt: g.withinLastMonth(),
			Campaign:  g.pick(campaigns),
		})
	}
	return donations
}

// Tasks returns the fixed volunteer task board.
func (g *Generator) Tasks() []*domain.VolunteerTask {
	return []*domain.VolunteerTask{
		{ID: "TASK001", Service: "Morning Walk", Resident: "Mrs. Patel", Time: "08:00 AM", Urgency: domain.UrgencyLow, Status: domain.TaskOpen},
		{ID: "TASK002", Service: "Grocery Shopping", Resident: "Mr. Rao", Time: "04:30 PM", Urgency: domain.UrgencyMedium, Status: domain.TaskOpen},
		{ID: "TASK003", Service: "Doctor Visit", Resident: "Ms. Gupta", Time: "10:00 AM Tomorrow", Urgency: domain.UrgencyHigh, Status: domain.TaskOpen},
		{ID: "TASK004", Service: "Emotional Support", Resident: "Mr. Khan", Time: "Now", Urgency: domain.UrgencyUrgent, Status: domain.TaskInProgress},
		{ID: "TASK005", Service: "Medicine Pickup", Resident: "Mrs. Singh", Time: "02:00 PM", Urgency: domain.UrgencyMedium, Status: domain.TaskOpen},
	}
}

// Notifications returns the canned activity feed shown before the user has
// done anything, newest first.
func (g *Generator) Notifications() []domain.Notification {
	return []domain.Notification{
		{Time: "14:30", Message: "New volunteer Rahul Kumar accepted your walk request", Severity: domain.SeveritySuccess},
		{Time: "13:45", Message: "Donation of ₹5,000 received from Anonymous donor", Severity: domain.SeveritySuccess},
		{Time: "12:20", Message: "Your grocery order #G123 is out for delivery", Severity: domain.SeverityInfo},
		{Time: "11:15", Message: "Reminder: Doctor appointment tomorrow at 10:00 AM", Severity: domain.SeverityWarning},
		{Time: "10:05", Message: "Medicine pickup request REQ015 completed", Severity: domain.SeveritySuccess},
	}
}
