package seed

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/oahconnect/carelink/internal/domain"
	"github.com/oahconnect/carelink/internal/repository"
	"github.com/oahconnect/carelink/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAnchor = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func TestGenerator_Requests(t *testing.T) {
	gen := NewAt(42, testAnchor)
	requests := gen.Requests()

	require.Len(t, requests, RequestCount)

	seen := map[string]bool{}
	for i, r := range requests {
		assert.Equal(t, i+1, r.Seq, "sequence numbers are 1-based and consecutive")
		assert.Equal(t, domain.FormatRequestID(r.Seq), r.ID)
		assert.False(t, seen[r.ID], "request IDs are unique")
		seen[r.ID] = true

		assert.NotEmpty(t, r.Description)
		assert.True(t, r.CreatedAt.Before(testAnchor.Add(time.Second)))
		assert.True(t, r.CreatedAt.After(testAnchor.AddDate(0, 0, -32)))
	}

	for _, r := range requests[RequestCount-5:] {
		assert.Equal(t, domain.RequestPending, r.Status, "the newest seeds stay pending")
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	a := NewAt(7, testAnchor).Requests()
	b := NewAt(7, testAnchor).Requests()
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed should generate identical requests (-a +b):\n%s", diff)
	}
}

func TestGenerator_Donations(t *testing.T) {
	donations := NewAt(42, testAnchor).Donations()
	require.Len(t, donations, DonationCount)
	for _, d := range donations {
		assert.Greater(t, d.Amount, 0)
		assert.NotEmpty(t, d.Donor)
		assert.NotEmpty(t, d.Campaign)
	}
}

func TestPopulate_Idempotent(t *testing.T) {
	database := testutil.NewTestDB(t)
	reqRepo := repository.NewSQLiteRequestRepo(database)
	donRepo := repository.NewSQLiteDonationRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	gen := NewAt(1, testAnchor)
	require.NoError(t, Populate(ctx, gen, reqRepo, donRepo, taskRepo))

	n, err := reqRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, RequestCount, n)

	// A second pass must not duplicate anything.
	require.NoError(t, Populate(ctx, NewAt(2, testAnchor), reqRepo, donRepo, taskRepo))

	n, err = reqRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, RequestCount, n)

	n, err = donRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, DonationCount, n)

	n, err = taskRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}
