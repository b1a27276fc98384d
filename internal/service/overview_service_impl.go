package service

import (
	"context"
	"fmt"
	"time"

	"github.com/oahconnect/carelink/internal/app"
	"github.com/oahconnect/carelink/internal/contract"
	"github.com/oahconnect/carelink/internal/domain"
	"github.com/oahconnect/carelink/internal/repository"
)

type overviewService struct {
	requests  repository.RequestRepo
	donations repository.DonationRepo
	tasks     repository.TaskRepo
	goal      int
	now       func() time.Time
}

func NewOverviewService(
	requests repository.RequestRepo,
	donations repository.DonationRepo,
	tasks repository.TaskRepo,
	goal int,
) OverviewService {
	return &overviewService{
		requests:  requests,
		donations: donations,
		tasks:     tasks,
		goal:      goal,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *overviewService) Overview(ctx context.Context) (*contract.OverviewResponse, error) {
	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading requests: %w", err)
	}
	donations, err := s.donations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading donations: %w", err)
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	resp := &contract.OverviewResponse{
		GeneratedAt:   s.now(),
		TotalRequests: len(requests),
		Goal:          s.goal,
	}

	volunteers := map[string]struct{}{}
	for _, r := range requests {
		switch r.Status {
		case domain.RequestPending:
			resp.PendingRequests++
			resp.ActiveRequests++
		case domain.RequestInProgress:
			resp.ActiveRequests++
		case domain.RequestCompleted:
			resp.CompletedRequests++
		}
		if r.Volunteer != "" && r.Volunteer != UnassignedVolunteer {
			volunteers[r.Volunteer] = struct{}{}
		}
	}
	resp.VolunteerCount = len(volunteers)
	if resp.TotalRequests > 0 {
		resp.FulfillmentRatePct = float64(resp.CompletedRequests) / float64(resp.TotalRequests) * 100
	}

	resp.DonationCount = len(donations)
	for _, d := range donations {
		resp.DonationTotal += d.Amount
	}
	if s.goal > 0 {
		resp.GoalPct = float64(resp.DonationTotal) / float64(s.goal) * 100
	}

	for _, t := range tasks {
		switch t.Status {
		case domain.TaskOpen:
			resp.OpenTasks++
		case domain.TaskAssigned, domain.TaskInProgress:
			resp.AssignedTasks++
		}
	}

	return resp, nil
}

func (s *overviewService) Analytics(ctx context.Context) (*contract.AnalyticsResponse, error) {
	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading requests: %w", err)
	}
	donations, err := s.donations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading donations: %w", err)
	}

	now := s.now()
	resp := &contract.AnalyticsResponse{
		GeneratedAt:         now,
		StatusDistribution:  statusDistribution(requests),
		UrgencyDistribution: urgencyDistribution(requests),
		TypeDistribution:    typeDistribution(requests),
		DailyDonations:      dailyDonations(donations, now, 7),
	}

	var completed int
	for _, r := range requests {
		if r.Status == domain.RequestCompleted {
			completed++
		}
	}
	if len(requests) > 0 {
		resp.FulfillmentRatePct = float64(completed) / float64(len(requests)) * 100
	}

	var total int
	for _, d := range donations {
		total += d.Amount
		if d.Amount > resp.LargestDonation {
			resp.LargestDonation = d.Amount
		}
	}
	if len(donations) > 0 {
		resp.AvgDonation = float64(total) / float64(len(donations))
	}

	return resp, nil
}

func statusDistribution(requests []*domain.ServiceRequest) []app.CountBucket {
	counts := map[domain.RequestStatus]int{}
	for _, r := range requests {
		counts[r.Status]++
	}
	buckets := make([]app.CountBucket, 0, len(domain.AllRequestStatuses))
	for _, st := range domain.AllRequestStatuses {
		buckets = append(buckets, app.CountBucket{Label: string(st), Count: counts[st]})
	}
	return buckets
}

func urgencyDistribution(requests []*domain.ServiceRequest) []app.CountBucket {
	counts := map[domain.Urgency]int{}
	for _, r := range requests {
		counts[r.Urgency]++
	}
	buckets := make([]app.CountBucket, 0, len(domain.AllUrgencies))
	for _, u := range domain.AllUrgencies {
		buckets = append(buckets, app.CountBucket{Label: string(u), Count: counts[u]})
	}
	return buckets
}

// typeDistribution buckets by service type in first-seen order, so the
// chart is stable across renders of the same data.
func typeDistribution(requests []*domain.ServiceRequest) []app.CountBucket {
	index := map[string]int{}
	var buckets []app.CountBucket
	for _, r := range requests {
		i, ok := index[r.Type]
		if !ok {
			i = len(buckets)
			index[r.Type] = i
			buckets = append(buckets, app.CountBucket{Label: r.Type})
		}
		buckets[i].Count++
	}
	return buckets
}

func dailyDonations(donations []*domain.Donation, now time.Time, days int) []app.DayTotal {
	byDay := map[string]*app.DayTotal{}
	out := make([]app.DayTotal, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		out = append(out, app.DayTotal{Day: day})
		byDay[day] = &out[len(out)-1]
	}
	for _, d := range donations {
		if dt, ok := byDay[d.CreatedAt.Format("2006-01-02")]; ok {
			dt.Amount += d.Amount
			dt.Count++
		}
	}
	return out
}
