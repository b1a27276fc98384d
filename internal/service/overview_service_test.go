package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oahconnect/carelink/internal/domain"
	"github.com/oahconnect/carelink/internal/repository"
	"github.com/oahconnect/carelink/internal/testutil"
)

func newOverviewService(t *testing.T) (*overviewService, repository.RequestRepo, repository.DonationRepo, repository.TaskRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	requests := repository.NewSQLiteRequestRepo(database)
	donations := repository.NewSQLiteDonationRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	svc := NewOverviewService(requests, donations, tasks, 200000).(*overviewService)
	return svc, requests, donations, tasks
}

func TestOverview_Metrics(t *testing.T) {
	svc, requests, donations, tasks := newOverviewService(t)
	ctx := context.Background()

	seedRequests := []*domain.ServiceRequest{
		testutil.NewTestRequest("Grocery Shopping",
			testutil.WithSeq(1),
			testutil.WithRequestStatus(domain.RequestPending)),
		testutil.NewTestRequest("Medical Escort",
			testutil.WithSeq(2),
			testutil.WithRequestStatus(domain.RequestInProgress),
			testutil.WithVolunteer("Rahul Kumar")),
		testutil.NewTestRequest("Meal Delivery",
			testutil.WithSeq(3),
			testutil.WithRequestStatus(domain.RequestCompleted),
			testutil.WithVolunteer("Anjali Singh")),
		testutil.NewTestRequest("House Cleaning",
			testutil.WithSeq(4),
			testutil.WithRequestStatus(domain.RequestCompleted),
			testutil.WithVolunteer("Rahul Kumar")),
	}
	for _, r := range seedRequests {
		require.NoError(t, requests.Create(ctx, r))
	}
	require.NoError(t, donations.Create(ctx, testutil.NewTestDonation(30000)))
	require.NoError(t, donations.Create(ctx, testutil.NewTestDonation(20000)))
	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask("Grocery Delivery", "Mrs. Sharma")))
	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask("Medicine Pickup", "Mr. Khan",
		testutil.WithTaskStatus(domain.TaskAssigned))))

	resp, err := svc.Overview(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, resp.TotalRequests)
	assert.Equal(t, 2, resp.ActiveRequests)
	assert.Equal(t, 1, resp.PendingRequests)
	assert.Equal(t, 2, resp.CompletedRequests)
	assert.InDelta(t, 50.0, resp.FulfillmentRatePct, 0.001)
	assert.Equal(t, 2, resp.VolunteerCount, "TBD placeholders are not volunteers")

	assert.Equal(t, 50000, resp.DonationTotal)
	assert.Equal(t, 2, resp.DonationCount)
	assert.InDelta(t, 25.0, resp.GoalPct, 0.001)

	assert.Equal(t, 1, resp.OpenTasks)
	assert.Equal(t, 1, resp.AssignedTasks)
}

func TestOverview_EmptyStore(t *testing.T) {
	svc, _, _, _ := newOverviewService(t)

	resp, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Zero(t, resp.TotalRequests)
	assert.Zero(t, resp.FulfillmentRatePct)
	assert.Zero(t, resp.GoalPct)
}

func TestAnalytics_Distributions(t *testing.T) {
	svc, requests, donations, _ := newOverviewService(t)
	ctx := context.Background()

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	seedRequests := []*domain.ServiceRequest{
		testutil.NewTestRequest("Grocery Shopping",
			testutil.WithSeq(1),
			testutil.WithUrgency(domain.UrgencyLow),
			testutil.WithRequestStatus(domain.RequestPending)),
		testutil.NewTestRequest("Grocery Shopping",
			testutil.WithSeq(2),
			testutil.WithUrgency(domain.UrgencyUrgent),
			testutil.WithRequestStatus(domain.RequestCompleted)),
		testutil.NewTestRequest("Medical Escort",
			testutil.WithSeq(3),
			testutil.WithUrgency(domain.UrgencyLow),
			testutil.WithRequestStatus(domain.RequestPending)),
	}
	for _, r := range seedRequests {
		require.NoError(t, requests.Create(ctx, r))
	}
	require.NoError(t, donations.Create(ctx, testutil.NewTestDonation(4000,
		testutil.WithDonatedAt(now.AddDate(0, 0, -1)))))
	require.NoError(t, donations.Create(ctx, testutil.NewTestDonation(1000,
		testutil.WithDonatedAt(now))))
	// Outside the trailing week, excluded from the trend.
	require.NoError(t, donations.Create(ctx, testutil.NewTestDonation(9000,
		testutil.WithDonatedAt(now.AddDate(0, 0, -10)))))

	resp, err := svc.Analytics(ctx)
	require.NoError(t, err)

	require.Len(t, resp.StatusDistribution, 4)
	assert.Equal(t, "Pending", resp.StatusDistribution[0].Label)
	assert.Equal(t, 2, resp.StatusDistribution[0].Count)

	require.Len(t, resp.UrgencyDistribution, 4)
	assert.Equal(t, "Low", resp.UrgencyDistribution[0].Label)
	assert.Equal(t, 2, resp.UrgencyDistribution[0].Count)
	assert.Equal(t, 1, resp.UrgencyDistribution[3].Count)

	require.Len(t, resp.TypeDistribution, 2)
	assert.Equal(t, "Grocery Shopping", resp.TypeDistribution[0].Label)
	assert.Equal(t, 2, resp.TypeDistribution[0].Count)

	require.Len(t, resp.DailyDonations, 7)
	assert.Equal(t, "2026-08-14", resp.DailyDonations[0].Day, "oldest day first")
	assert.Equal(t, "2026-08-20", resp.DailyDonations[6].Day)
	assert.Equal(t, 1000, resp.DailyDonations[6].Amount)
	assert.Equal(t, 4000, resp.DailyDonations[5].Amount)

	assert.InDelta(t, 100.0/3.0, resp.FulfillmentRatePct, 0.001)
	assert.Equal(t, 9000, resp.LargestDonation)
	assert.InDelta(t, 14000.0/3.0, resp.AvgDonation, 0.001)
}
