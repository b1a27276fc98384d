package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oahconnect/carelink/internal/app"
	"github.com/oahconnect/carelink/internal/contract"
	"github.com/oahconnect/carelink/internal/domain"
	"github.com/oahconnect/carelink/internal/repository"
)

// UnassignedVolunteer is recorded when a request names no preferred
// volunteer.
const UnassignedVolunteer = "TBD"

type requestService struct {
	requests repository.RequestRepo
	observer UseCaseObserver
	now      func() time.Time
}

func NewRequestService(requests repository.RequestRepo, observers ...UseCaseObserver) RequestService {
	return &requestService{
		requests: requests,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *requestService) Create(ctx context.Context, in contract.CreateRequestInput) (req *domain.ServiceRequest, err error) {
	startedAt := s.now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "create-request",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"type": in.Type, "urgency": string(in.Urgency)},
		})
	}()

	if strings.TrimSpace(in.Description) == "" {
		return nil, &app.ValidationError{
			Code:    app.ErrEmptyDescription,
			Field:   "description",
			Message: "description cannot be empty",
		}
	}

	seq, err := s.requests.NextSeq(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocating request sequence: %w", err)
	}

	volunteer := in.Volunteer
	if volunteer == "" {
		volunteer = UnassignedVolunteer
	}
	urgency := in.Urgency
	if urgency == "" {
		urgency = domain.UrgencyLow
	}

	req = &domain.ServiceRequest{
		ID:            domain.FormatRequestID(seq),
		Seq:           seq,
		Type:          in.Type,
		Description:   strings.TrimSpace(in.Description),
		PreferredTime: in.PreferredTime,
		Urgency:       urgency,
		Status:        domain.RequestPending,
		CreatedAt:     s.now(),
		Volunteer:     volunteer,
		Resident:      in.Resident,
	}
	if err = s.requests.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("creating request %s: %w", req.ID, err)
	}
	return req, nil
}

func (s *requestService) GetByID(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	return s.requests.GetByID(ctx, id)
}

func (s *requestService) List(ctx context.Context, filter contract.RequestFilter, by contract.RequestSort) ([]*domain.ServiceRequest, error) {
	all, err := s.requests.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing requests: %w", err)
	}
	out := filterRequests(all, filter)
	sortRequests(out, by)
	return out, nil
}

func (s *requestService) Count(ctx context.Context) (int, error) {
	return s.requests.Count(ctx)
}
