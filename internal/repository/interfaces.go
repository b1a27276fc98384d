package repository

import (
	"context"

	"github.com/oahconnect/carelink/internal/domain"
)

type RequestRepo interface {
	Create(ctx context.Context, r *domain.ServiceRequest) error
	GetByID(ctx context.Context, id string) (*domain.ServiceRequest, error)
	// List returns requests newest-submission-first (descending sequence).
	List(ctx context.Context) ([]*domain.ServiceRequest, error)
	Count(ctx context.Context) (int, error)
	// NextSeq returns the next unused sequence number. Sequences are
	// monotonic for the life of the process; requests are never deleted.
	NextSeq(ctx context.Context) (int, error)
}

type DonationRepo interface {
	Create(ctx context.Context, d *domain.Donation) error
	// List returns donations newest-first.
	List(ctx context.Context) ([]*domain.Donation, error)
	Count(ctx context.Context) (int, error)
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.VolunteerTask) error
	GetByID(ctx context.Context, id string) (*domain.VolunteerTask, error)
	List(ctx context.Context) ([]*domain.VolunteerTask, error)
	Count(ctx context.Context) (int, error)
	// Assign claims an open task for a volunteer. It fails if the task is
	// not found or no longer open.
	Assign(ctx context.Context, id, volunteer string) error
}
