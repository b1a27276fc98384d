package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/oahconnect/carelink/internal/domain"
)

// SQLiteDonationRepo implements DonationRepo using a SQLite database.
type SQLiteDonationRepo struct {
	db *sql.DB
}

// NewSQLiteDonationRepo creates a new SQLiteDonationRepo.
func NewSQLiteDonationRepo(db *sql.DB) *SQLiteDonationRepo {
	return &SQLiteDonationRepo{db: db}
}

func (r *SQLiteDonationRepo) Create(ctx context.Context, d *domain.Donation) error {
	query := `INSERT INTO donations (id, amount, donor, created_at, campaign)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.Amount,
		d.Donor,
		formatTime(d.CreatedAt),
		d.Campaign,
	)
	if err != nil {
		return fmt.Errorf("inserting donation: %w", err)
	}
	return nil
}

func (r *SQLiteDonationRepo) List(ctx context.Context) ([]*domain.Donation, error) {
	query := `SELECT id, amount, donor, created_at, campaign
		FROM donations ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing donations: %w", err)
	}
	defer rows.Close()

	var donations []*domain.Donation
	for rows.Next() {
		var d domain.Donation
		var createdAtStr string
		if err := rows.Scan(&d.ID, &d.Amount, &d.Donor, &createdAtStr, &d.Campaign); err != nil {
			return nil, fmt.Errorf("scanning donation: %w", err)
		}
		d.CreatedAt, err = parseTime(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		donations = append(donations, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating donations: %w", err)
	}
	return donations, nil
}

func (r *SQLiteDonationRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM donations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting donations: %w", err)
	}
	return n, nil
}
