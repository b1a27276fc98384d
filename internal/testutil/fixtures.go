package testutil

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/oahconnect/carelink/internal/domain"
)

var testSeqCounter atomic.Int64

// Request options
type RequestOption func(*domain.ServiceRequest)

func WithRequestStatus(s domain.RequestStatus) RequestOption {
	return func(r *domain.ServiceRequest) {
		r.Status = s
	}
}

func WithUrgency(u domain.Urgency) RequestOption {
	return func(r *domain.ServiceRequest) {
		r.Urgency = u
	}
}

func WithResident(name string) RequestOption {
	return func(r *domain.ServiceRequest) {
		r.Resident = name
	}
}

func WithVolunteer(name string) RequestOption {
	return func(r *domain.ServiceRequest) {
		r.Volunteer = name
	}
}

func WithCreatedAt(t time.Time) RequestOption {
	return func(r *domain.ServiceRequest) {
		r.CreatedAt = t
	}
}

func WithSeq(seq int) RequestOption {
	return func(r *domain.ServiceRequest) {
		r.Seq = seq
		r.ID = domain.FormatRequestID(seq)
	}
}

// NewTestRequest builds a pending service request with a process-unique
// sequence number. Options override individual fields.
func NewTestRequest(serviceType string, opts ...RequestOption) *domain.ServiceRequest {
	seq := int(testSeqCounter.Add(1))
	r := &domain.ServiceRequest{
		ID:            domain.FormatRequestID(seq),
		Seq:           seq,
		Type:          serviceType,
		Description:   "Request for assistance with daily activities.",
		PreferredTime: "10:00",
		Urgency:       domain.UrgencyMedium,
		Status:        domain.RequestPending,
		CreatedAt:     time.Now().UTC(),
		Volunteer:     "TBD",
		Resident:      "Mrs. Sharma",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Donation options
type DonationOption func(*domain.Donation)

func WithDonor(name string) DonationOption {
	return func(d *domain.Donation) {
		d.Donor = name
	}
}

func WithCampaign(name string) DonationOption {
	return func(d *domain.Donation) {
		d.Campaign = name
	}
}

func WithDonatedAt(t time.Time) DonationOption {
	return func(d *domain.Donation) {
		d.CreatedAt = t
	}
}

func NewTestDonation(amount int, opts ...DonationOption) *domain.Donation {
	d := &domain.Donation{
		ID:        uuid.New().String(),
		Amount:    amount,
		Donor:     domain.AnonymousDonor,
		CreatedAt: time.Now().UTC(),
		Campaign:  "Winter Care",
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Task options
type TaskOption func(*domain.VolunteerTask)

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.VolunteerTask) {
		t.Status = s
	}
}

func WithAssignedTo(name string) TaskOption {
	return func(t *domain.VolunteerTask) {
		t.AssignedTo = name
	}
}

func NewTestTask(service, resident string, opts ...TaskOption) *domain.VolunteerTask {
	t := &domain.VolunteerTask{
		ID:       uuid.New().String(),
		Service:  service,
		Resident: resident,
		Time:     "08:00 AM",
		Urgency:  domain.UrgencyLow,
		Status:   domain.TaskOpen,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
