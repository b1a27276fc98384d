package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/oahconnect/carelink/internal/contract"
	"github.com/oahconnect/carelink/internal/repository"
)

type exportService struct {
	requests  repository.RequestRepo
	donations repository.DonationRepo
	observer  UseCaseObserver
}

func NewExportService(requests repository.RequestRepo, donations repository.DonationRepo, observers ...UseCaseObserver) ExportService {
	return &exportService{
		requests:  requests,
		donations: donations,
		observer:  useCaseObserverOrNoop(observers),
	}
}

var requestHeader = []string{
	"ID", "Type", "Description", "Resident", "Preferred Time",
	"Urgency", "Status", "Volunteer", "Created",
}

func (s *exportService) ExportRequests(ctx context.Context, w io.Writer, filter contract.RequestFilter) (rows int, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "export-requests",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"rows": rows},
		})
	}()

	all, err := s.requests.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading requests: %w", err)
	}
	matching := filterRequests(all, filter)

	cw := csv.NewWriter(w)
	if err = cw.Write(requestHeader); err != nil {
		return 0, err
	}
	for _, r := range matching {
		record := []string{
			r.ID, r.Type, r.Description, r.Resident, r.PreferredTime,
			string(r.Urgency), string(r.Status), r.Volunteer,
			r.CreatedAt.Format("2006-01-02 15:04"),
		}
		if err = cw.Write(record); err != nil {
			return rows, err
		}
		rows++
	}
	cw.Flush()
	return rows, cw.Error()
}

var donationHeader = []string{"Amount", "Donor", "Date", "Campaign"}

func (s *exportService) ExportDonations(ctx context.Context, w io.Writer) (rows int, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "export-donations",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"rows": rows},
		})
	}()

	all, err := s.donations.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading donations: %w", err)
	}

	cw := csv.NewWriter(w)
	if err = cw.Write(donationHeader); err != nil {
		return 0, err
	}
	for _, d := range all {
		record := []string{
			strconv.Itoa(d.Amount), d.Donor,
			d.CreatedAt.Format("2006-01-02 15:04"), d.Campaign,
		}
		if err = cw.Write(record); err != nil {
			return rows, err
		}
		rows++
	}
	cw.Flush()
	return rows, cw.Error()
}
