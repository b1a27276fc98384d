package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/oahconnect/carelink/internal/app"
	"github.com/oahconnect/carelink/internal/contract"
	"github.com/oahconnect/carelink/internal/domain"
	"github.com/oahconnect/carelink/internal/repository"
)

type donationService struct {
	donations repository.DonationRepo
	minimum   int
	goal      int
	campaign  string
	observer  UseCaseObserver
	now       func() time.Time
}

func NewDonationService(donations repository.DonationRepo, minimum, goal int, campaign string, observers ...UseCaseObserver) DonationService {
	return &donationService{
		donations: donations,
		minimum:   minimum,
		goal:      goal,
		campaign:  campaign,
		observer:  useCaseObserverOrNoop(observers),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *donationService) Donate(ctx context.Context, in contract.DonateInput) (d *domain.Donation, err error) {
	startedAt := s.now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "donate",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"amount": in.Amount},
		})
	}()

	// The minimum is inclusive: an amount equal to it is accepted.
	if in.Amount < s.minimum {
		return nil, &app.ValidationError{
			Code:    app.ErrBelowMinimum,
			Field:   "amount",
			Message: fmt.Sprintf("minimum donation is ₹%d", s.minimum),
		}
	}

	donor := in.Donor
	if donor == "" {
		donor = domain.AnonymousDonor
	}

	d = &domain.Donation{
		ID:        uuid.New().String(),
		Amount:    in.Amount,
		Donor:     donor,
		CreatedAt: s.now(),
		Campaign:  s.campaign,
	}
	if err = s.donations.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("recording donation: %w", err)
	}
	return d, nil
}

func (s *donationService) List(ctx context.Context) ([]*domain.Donation, error) {
	return s.donations.List(ctx)
}

func (s *donationService) Stats(ctx context.Context) (*contract.DonationStats, error) {
	all, err := s.donations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing donations: %w", err)
	}

	stats := &contract.DonationStats{
		Count: len(all),
		Goal:  s.goal,
	}
	byCampaign := map[string]*contract.CampaignTotal{}
	byDay := map[string]*contract.DayTotal{}
	for _, d := range all {
		stats.Total += d.Amount
		if d.Amount > stats.Largest {
			stats.Largest = d.Amount
		}

		ct, ok := byCampaign[d.Campaign]
		if !ok {
			ct = &contract.CampaignTotal{Campaign: d.Campaign}
			byCampaign[d.Campaign] = ct
		}
		ct.Amount += d.Amount
		ct.Count++

		day := d.CreatedAt.Format("2006-01-02")
		dt, ok := byDay[day]
		if !ok {
			dt = &contract.DayTotal{Day: day}
			byDay[day] = dt
		}
		dt.Amount += d.Amount
		dt.Count++
	}

	if stats.Count > 0 {
		stats.Average = float64(stats.Total) / float64(stats.Count)
	}
	if s.goal > 0 {
		stats.GoalPct = float64(stats.Total) / float64(s.goal) * 100
	}

	for _, ct := range byCampaign {
		stats.ByCampaign = append(stats.ByCampaign, *ct)
	}
	sort.Slice(stats.ByCampaign, func(i, j int) bool {
		if stats.ByCampaign[i].Amount != stats.ByCampaign[j].Amount {
			return stats.ByCampaign[i].Amount > stats.ByCampaign[j].Amount
		}
		return stats.ByCampaign[i].Campaign < stats.ByCampaign[j].Campaign
	})

	for _, dt := range byDay {
		stats.ByDay = append(stats.ByDay, *dt)
	}
	sort.Slice(stats.ByDay, func(i, j int) bool {
		return stats.ByDay[i].Day < stats.ByDay[j].Day
	})

	return stats, nil
}
