package repository

import (
	"context"
	"testing"

	"github.com/oahconnect/carelink/internal/domain"
	"github.com/oahconnect/carelink/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepo_AssignOpenTask(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	task := testutil.NewTestTask("Morning Walk", "Mrs. Patel")
	require.NoError(t, repo.Create(ctx, task))

	require.NoError(t, repo.Assign(ctx, task.ID, "Rahul Kumar"))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskAssigned, got.Status)
	assert.Equal(t, "Rahul Kumar", got.AssignedTo)
}

func TestTaskRepo_AssignNonOpenTaskFails(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	task := testutil.NewTestTask("Emotional Support", "Mr. Khan",
		testutil.WithTaskStatus(domain.TaskInProgress))
	require.NoError(t, repo.Create(ctx, task))

	err := repo.Assign(ctx, task.ID, "Rahul Kumar")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not open")

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskInProgress, got.Status, "status unchanged on failed assign")
	assert.Empty(t, got.AssignedTo)
}

func TestTaskRepo_AssignMissingTaskFails(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)

	err := repo.Assign(context.Background(), "no-such-task", "Rahul Kumar")
	assert.Error(t, err)
}
