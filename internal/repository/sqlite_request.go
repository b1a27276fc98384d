package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/oahconnect/carelink/internal/domain"
)

// SQLiteRequestRepo implements RequestRepo using a SQLite database.
type SQLiteRequestRepo struct {
	db *sql.DB
}

// NewSQLiteRequestRepo creates a new SQLiteRequestRepo.
func NewSQLiteRequestRepo(db *sql.DB) *SQLiteRequestRepo {
	return &SQLiteRequestRepo{db: db}
}

func (r *SQLiteRequestRepo) Create(ctx context.Context, req *domain.ServiceRequest) error {
	query := `INSERT INTO service_requests (id, seq, type, description, preferred_time, urgency, status, created_at, volunteer, resident)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		req.ID,
		req.Seq,
		req.Type,
		req.Description,
		req.PreferredTime,
		string(req.Urgency),
		string(req.Status),
		formatTime(req.CreatedAt),
		req.Volunteer,
		req.Resident,
	)
	if err != nil {
		return fmt.Errorf("inserting service request: %w", err)
	}
	return nil
}

func (r *SQLiteRequestRepo) GetByID(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	query := `SELECT id, seq, type, description, preferred_time, urgency, status, created_at, volunteer, resident
		FROM service_requests WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	req, err := scanRequest(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("service request %s not found", id)
	}
	return req, err
}

func (r *SQLiteRequestRepo) List(ctx context.Context) ([]*domain.ServiceRequest, error) {
	query := `SELECT id, seq, type, description, preferred_time, urgency, status, created_at, volunteer, resident
		FROM service_requests ORDER BY seq DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing service requests: %w", err)
	}
	defer rows.Close()

	var requests []*domain.ServiceRequest
	for rows.Next() {
		req, err := scanRequest(rows.Scan)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating service requests: %w", err)
	}
	return requests, nil
}

func (r *SQLiteRequestRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM service_requests`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting service requests: %w", err)
	}
	return n, nil
}

func (r *SQLiteRequestRepo) NextSeq(ctx context.Context) (int, error) {
	var next int
	query := `SELECT COALESCE(MAX(seq), 0) + 1 FROM service_requests`
	if err := r.db.QueryRowContext(ctx, query).Scan(&next); err != nil {
		return 0, fmt.Errorf("allocating next request seq: %w", err)
	}
	return next, nil
}

func scanRequest(scan func(dest ...any) error) (*domain.ServiceRequest, error) {
	var req domain.ServiceRequest
	var urgencyStr, statusStr, createdAtStr string

	err := scan(
		&req.ID, &req.Seq, &req.Type, &req.Description, &req.PreferredTime,
		&urgencyStr, &statusStr, &createdAtStr,
		&req.Volunteer, &req.Resident,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning service request: %w", err)
	}

	req.Urgency = domain.Urgency(urgencyStr)
	req.Status = domain.RequestStatus(statusStr)

	req.CreatedAt, err = parseTime(createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &req, nil
}
