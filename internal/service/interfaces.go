package service

import (
	"context"
	"io"

	"github.com/oahconnect/carelink/internal/contract"
	"github.com/oahconnect/carelink/internal/domain"
)

type RequestService interface {
	Create(ctx context.Context, in contract.CreateRequestInput) (*domain.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (*domain.ServiceRequest, error)
	// List applies the filter and sort to the full request set. The
	// underlying data is never mutated by a listing.
	List(ctx context.Context, filter contract.RequestFilter, sort contract.RequestSort) ([]*domain.ServiceRequest, error)
	Count(ctx context.Context) (int, error)
}

type DonationService interface {
	Donate(ctx context.Context, in contract.DonateInput) (*domain.Donation, error)
	List(ctx context.Context) ([]*domain.Donation, error)
	Stats(ctx context.Context) (*contract.DonationStats, error)
}

type TaskService interface {
	// List serves the task board from a short-lived cache.
	List(ctx context.Context, query string) ([]*domain.VolunteerTask, error)
	// Accept claims an open task for the volunteer and invalidates the
	// board cache. It fails if the task is missing or already claimed.
	Accept(ctx context.Context, taskID, volunteer string) (*domain.VolunteerTask, error)
}

type OverviewService interface {
	Overview(ctx context.Context) (*contract.OverviewResponse, error)
	Analytics(ctx context.Context) (*contract.AnalyticsResponse, error)
}

// ExportService writes CSV snapshots of the coordination data. Each
// method returns the number of data rows written.
type ExportService interface {
	// ExportRequests writes the requests matching the filter, so the
	// export mirrors whatever listing the caller currently shows. A
	// zero filter exports everything.
	ExportRequests(ctx context.Context, w io.Writer, filter contract.RequestFilter) (int, error)
	ExportDonations(ctx context.Context, w io.Writer) (int, error)
}
