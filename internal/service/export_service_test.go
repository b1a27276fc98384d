package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oahconnect/carelink/internal/contract"
	"github.com/oahconnect/carelink/internal/domain"
	"github.com/oahconnect/carelink/internal/repository"
	"github.com/oahconnect/carelink/internal/testutil"
)

func TestExportRequests_CSV(t *testing.T) {
	database := testutil.NewTestDB(t)
	requests := repository.NewSQLiteRequestRepo(database)
	donations := repository.NewSQLiteDonationRepo(database)
	svc := NewExportService(requests, donations)
	ctx := context.Background()

	created := time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)
	require.NoError(t, requests.Create(ctx, testutil.NewTestRequest("Grocery Shopping",
		testutil.WithSeq(1),
		testutil.WithCreatedAt(created),
		testutil.WithVolunteer("Rahul Kumar"))))
	require.NoError(t, requests.Create(ctx, testutil.NewTestRequest("Medical Escort",
		testutil.WithSeq(2),
		testutil.WithCreatedAt(created))))

	var buf bytes.Buffer
	rows, err := svc.ExportRequests(ctx, &buf, contract.RequestFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, rows)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus one row per request")

	assert.Equal(t, requestHeader, records[0])
	assert.Equal(t, "REQ002", records[1][0], "newest request first")
	assert.Equal(t, "REQ001", records[2][0])
	assert.Equal(t, "Rahul Kumar", records[2][7])
	assert.Equal(t, "2026-08-20 09:30", records[2][8])
}

func TestExportRequests_AppliesFilter(t *testing.T) {
	database := testutil.NewTestDB(t)
	requests := repository.NewSQLiteRequestRepo(database)
	donations := repository.NewSQLiteDonationRepo(database)
	svc := NewExportService(requests, donations)
	ctx := context.Background()

	require.NoError(t, requests.Create(ctx, testutil.NewTestRequest("Grocery Shopping",
		testutil.WithSeq(1))))
	require.NoError(t, requests.Create(ctx, testutil.NewTestRequest("Medical Escort",
		testutil.WithSeq(2),
		testutil.WithRequestStatus(domain.RequestCompleted))))
	require.NoError(t, requests.Create(ctx, testutil.NewTestRequest("Grocery Shopping",
		testutil.WithSeq(3),
		testutil.WithResident("Mr. Verma"))))

	var buf bytes.Buffer
	rows, err := svc.ExportRequests(ctx, &buf, contract.RequestFilter{
		Status: domain.RequestPending,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, rows, "the completed request stays out of the file")

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "REQ003", records[1][0])
	assert.Equal(t, "REQ001", records[2][0])

	buf.Reset()
	rows, err = svc.ExportRequests(ctx, &buf, contract.RequestFilter{
		Status:   domain.RequestPending,
		Resident: "Mr. Verma",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	records, err = csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "REQ003", records[1][0])
}

func TestExportDonations_CSV(t *testing.T) {
	database := testutil.NewTestDB(t)
	requests := repository.NewSQLiteRequestRepo(database)
	donations := repository.NewSQLiteDonationRepo(database)
	svc := NewExportService(requests, donations)
	ctx := context.Background()

	when := time.Date(2026, 8, 20, 14, 0, 0, 0, time.UTC)
	require.NoError(t, donations.Create(ctx, testutil.NewTestDonation(2500,
		testutil.WithDonor("Priya Patel"),
		testutil.WithDonatedAt(when))))

	var buf bytes.Buffer
	rows, err := svc.ExportDonations(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, donationHeader, records[0])
	assert.Equal(t, []string{"2500", "Priya Patel", "2026-08-20 14:00", "Winter Care"}, records[1])
}

func TestExport_EmptyStoreWritesHeaderOnly(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewExportService(
		repository.NewSQLiteRequestRepo(database),
		repository.NewSQLiteDonationRepo(database),
	)

	var buf bytes.Buffer
	rows, err := svc.ExportRequests(context.Background(), &buf, contract.RequestFilter{})
	require.NoError(t, err)
	assert.Zero(t, rows)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}
