package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oahconnect/carelink/internal/app"
	"github.com/oahconnect/carelink/internal/contract"
	"github.com/oahconnect/carelink/internal/domain"
	"github.com/oahconnect/carelink/internal/repository"
	"github.com/oahconnect/carelink/internal/testutil"
)

func newRequestService(t *testing.T) (RequestService, repository.RequestRepo) {
	t.Helper()
	repo := repository.NewSQLiteRequestRepo(testutil.NewTestDB(t))
	return NewRequestService(repo), repo
}

func TestRequestCreate_FirstRequestOnEmptyStore(t *testing.T) {
	svc, _ := newRequestService(t)
	ctx := context.Background()

	req, err := svc.Create(ctx, contract.CreateRequestInput{
		Type:        "Grocery Shopping",
		Description: "need milk",
		Urgency:     domain.UrgencyLow,
		Resident:    "Mrs. Sharma",
	})
	require.NoError(t, err)

	assert.Equal(t, "REQ001", req.ID)
	assert.Equal(t, domain.RequestPending, req.Status)
	assert.Equal(t, UnassignedVolunteer, req.Volunteer)
	assert.Equal(t, "need milk", req.Description)
}

func TestRequestCreate_EmptyDescriptionRejected(t *testing.T) {
	svc, repo := newRequestService(t)
	ctx := context.Background()

	for _, desc := range []string{"", "   ", "\t\n"} {
		_, err := svc.Create(ctx, contract.CreateRequestInput{
			Type:        "Grocery Shopping",
			Description: desc,
		})
		var verr *app.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, app.ErrEmptyDescription, verr.Code)
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "rejected inputs must not create rows")
}

func TestRequestCreate_SequencesAreMonotonic(t *testing.T) {
	svc, _ := newRequestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, contract.CreateRequestInput{Type: "A", Description: "one"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, contract.CreateRequestInput{Type: "B", Description: "two"})
	require.NoError(t, err)

	assert.Equal(t, "REQ001", first.ID)
	assert.Equal(t, "REQ002", second.ID)
}

func TestRequestCreate_PreferredVolunteerKept(t *testing.T) {
	svc, _ := newRequestService(t)

	req, err := svc.Create(context.Background(), contract.CreateRequestInput{
		Type:        "Medical Escort",
		Description: "clinic visit on Friday",
		Volunteer:   "Rahul Kumar",
	})
	require.NoError(t, err)
	assert.Equal(t, "Rahul Kumar", req.Volunteer)
}

func TestRequestList_FilterAndSort(t *testing.T) {
	svc, repo := newRequestService(t)
	ctx := context.Background()

	seed := []*domain.ServiceRequest{
		testutil.NewTestRequest("Grocery Shopping",
			testutil.WithSeq(1),
			testutil.WithRequestStatus(domain.RequestPending),
			testutil.WithUrgency(domain.UrgencyLow)),
		testutil.NewTestRequest("Medical Escort",
			testutil.WithSeq(2),
			testutil.WithRequestStatus(domain.RequestCompleted),
			testutil.WithUrgency(domain.UrgencyUrgent)),
		testutil.NewTestRequest("Meal Delivery",
			testutil.WithSeq(3),
			testutil.WithRequestStatus(domain.RequestPending),
			testutil.WithUrgency(domain.UrgencyHigh)),
	}
	for _, r := range seed {
		require.NoError(t, repo.Create(ctx, r))
	}

	out, err := svc.List(ctx, contract.RequestFilter{Status: domain.RequestPending}, contract.SortNewestFirst)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "REQ003", out[0].ID)
	assert.Equal(t, "REQ001", out[1].ID)

	out, err = svc.List(ctx, contract.RequestFilter{}, contract.SortMostUrgent)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, domain.UrgencyUrgent, out[0].Urgency)
	assert.Equal(t, domain.UrgencyLow, out[2].Urgency)
}
