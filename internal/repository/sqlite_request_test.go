package repository

import (
	"context"
	"testing"
	"time"

	"github.com/oahconnect/carelink/internal/domain"
	"github.com/oahconnect/carelink/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteRequestRepo(database)
	ctx := context.Background()

	req := &domain.ServiceRequest{
		ID:            "REQ001",
		Seq:           1,
		Type:          "Grocery Shopping",
		Description:   "need milk",
		PreferredTime: "09:30",
		Urgency:       domain.UrgencyLow,
		Status:        domain.RequestPending,
		CreatedAt:     time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		Volunteer:     "TBD",
		Resident:      "Mrs. Sharma",
	}
	require.NoError(t, repo.Create(ctx, req))

	got, err := repo.GetByID(ctx, "REQ001")
	require.NoError(t, err)
	assert.Equal(t, req.Type, got.Type)
	assert.Equal(t, req.Description, got.Description)
	assert.Equal(t, domain.RequestPending, got.Status)
	assert.Equal(t, domain.UrgencyLow, got.Urgency)
	assert.True(t, req.CreatedAt.Equal(got.CreatedAt))
}

func TestRequestRepo_GetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteRequestRepo(database)

	_, err := repo.GetByID(context.Background(), "REQ999")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRequestRepo_ListNewestFirst(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteRequestRepo(database)
	ctx := context.Background()

	for seq := 1; seq <= 3; seq++ {
		require.NoError(t, repo.Create(ctx, testutil.NewTestRequest("Morning Walk", testutil.WithSeq(seq))))
	}

	reqs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, reqs, 3)
	assert.Equal(t, "REQ003", reqs[0].ID, "most recently submitted request comes first")
	assert.Equal(t, "REQ001", reqs[2].ID)
}

func TestRequestRepo_NextSeq(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteRequestRepo(database)
	ctx := context.Background()

	next, err := repo.NextSeq(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, next, "empty table starts at 1")

	require.NoError(t, repo.Create(ctx, testutil.NewTestRequest("Doctor Visit", testutil.WithSeq(25))))

	next, err = repo.NextSeq(ctx)
	require.NoError(t, err)
	assert.Equal(t, 26, next)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRequestRepo_DuplicateSeqRejected(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteRequestRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestRequest("Home Help", testutil.WithSeq(7))))

	dup := testutil.NewTestRequest("Home Help", testutil.WithSeq(7))
	dup.ID = "REQ007b"
	assert.Error(t, repo.Create(ctx, dup), "seq column is unique")
}
