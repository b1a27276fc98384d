package seed

import (
	"context"
	"fmt"

	"github.com/oahconnect/carelink/internal/repository"
)

// Populate seeds the demo data into empty repositories. It is idempotent:
// a table that already has rows is left untouched, so requests and
// donations survive logout/login within one process.
func Populate(ctx context.Context, gen *Generator, requests repository.RequestRepo, donations repository.DonationRepo, tasks repository.TaskRepo) error {
	n, err := requests.Count(ctx)
	if err != nil {
		return fmt.Errorf("checking request seed state: %w", err)
	}
	if n == 0 {
		for _, r := range gen.Requests() {
			if err := requests.Create(ctx, r); err != nil {
				return fmt.Errorf("seeding requests: %w", err)
			}
		}
	}

	n, err = donations.Count(ctx)
	if err != nil {
		return fmt.Errorf("checking donation seed state: %w", err)
	}
	if n == 0 {
		for _, d := range gen.Donations() {
			if err := donations.Create(ctx, d); err != nil {
				return fmt.Errorf("seeding donations: %w", err)
			}
		}
	}

	n, err = tasks.Count(ctx)
	if err != nil {
		return fmt.Errorf("checking task seed state: %w", err)
	}
	if n == 0 {
		for _, task := range gen.Tasks() {
			if err := tasks.Create(ctx, task); err != nil {
				return fmt.Errorf("seeding volunteer tasks: %w", err)
			}
		}
	}

	return nil
}
