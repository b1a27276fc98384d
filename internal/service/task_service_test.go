package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oahconnect/carelink/internal/app"
	"github.com/oahconnect/carelink/internal/domain"
	"github.com/oahconnect/carelink/internal/repository"
	"github.com/oahconnect/carelink/internal/testutil"
)

// countingTaskRepo counts List round-trips so tests can observe cache hits.
type countingTaskRepo struct {
	repository.TaskRepo
	listCalls atomic.Int64
}

func (c *countingTaskRepo) List(ctx context.Context) ([]*domain.VolunteerTask, error) {
	c.listCalls.Add(1)
	return c.TaskRepo.List(ctx)
}

func newTaskService(t *testing.T, ttl time.Duration) (*taskService, *countingTaskRepo) {
	t.Helper()
	repo := &countingTaskRepo{TaskRepo: repository.NewSQLiteTaskRepo(testutil.NewTestDB(t))}
	return NewTaskService(repo, ttl).(*taskService), repo
}

func TestTaskList_ServedFromCacheWithinTTL(t *testing.T) {
	svc, repo := newTaskService(t, 5*time.Minute)
	ctx := context.Background()

	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	require.NoError(t, repo.Create(ctx, testutil.NewTestTask("Grocery Delivery", "Mrs. Sharma")))

	first, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, first, 1)

	now = now.Add(4 * time.Minute)
	_, err = svc.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), repo.listCalls.Load(), "second listing inside the TTL hits the cache")

	now = now.Add(2 * time.Minute)
	_, err = svc.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), repo.listCalls.Load(), "expired cache triggers a fresh read")
}

func TestTaskList_QueryFiltersCachedBoard(t *testing.T) {
	svc, repo := newTaskService(t, 5*time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestTask("Grocery Delivery", "Mrs. Sharma")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestTask("Medicine Pickup", "Mr. Khan")))

	out, err := svc.List(ctx, "khan")
	require.NoError(t, err)
	require.Len(t, out, 1)

	out, err = svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, int64(1), repo.listCalls.Load(), "query changes do not bypass the cache")
}

func TestTaskAccept_ClaimsOpenTaskAndInvalidatesCache(t *testing.T) {
	svc, repo := newTaskService(t, 5*time.Minute)
	ctx := context.Background()

	task := testutil.NewTestTask("Grocery Delivery", "Mrs. Sharma")
	require.NoError(t, repo.Create(ctx, task))

	_, err := svc.List(ctx, "")
	require.NoError(t, err)

	accepted, err := svc.Accept(ctx, task.ID, "Rahul Kumar")
	require.NoError(t, err)
	assert.Equal(t, domain.TaskAssigned, accepted.Status)
	assert.Equal(t, "Rahul Kumar", accepted.AssignedTo)

	out, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, domain.TaskAssigned, out[0].Status, "board reflects the claim immediately")
	assert.Equal(t, int64(2), repo.listCalls.Load(), "accept invalidates the cache")
}

func TestTaskAccept_AlreadyClaimed(t *testing.T) {
	svc, repo := newTaskService(t, 5*time.Minute)
	ctx := context.Background()

	task := testutil.NewTestTask("Companionship Visit", "Mrs. Gupta",
		testutil.WithTaskStatus(domain.TaskAssigned),
		testutil.WithAssignedTo("Anjali Singh"))
	require.NoError(t, repo.Create(ctx, task))

	_, err := svc.Accept(ctx, task.ID, "Rahul Kumar")
	var verr *app.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, app.ErrTaskUnavailable, verr.Code)

	reloaded, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anjali Singh", reloaded.AssignedTo, "failed accept changes nothing")
}

func TestTaskAccept_MissingTask(t *testing.T) {
	svc, _ := newTaskService(t, 5*time.Minute)

	_, err := svc.Accept(context.Background(), "TASK999", "Rahul Kumar")
	assert.Error(t, err)
}
