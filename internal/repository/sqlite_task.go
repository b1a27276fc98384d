package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/oahconnect/carelink/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db *sql.DB
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db *sql.DB) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.VolunteerTask) error {
	query := `INSERT INTO volunteer_tasks (id, service, resident, time, urgency, status, assigned_to)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.Service, t.Resident, t.Time,
		string(t.Urgency), string(t.Status), t.AssignedTo,
	)
	if err != nil {
		return fmt.Errorf("inserting volunteer task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.VolunteerTask, error) {
	query := `SELECT id, service, resident, time, urgency, status, assigned_to
		FROM volunteer_tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var t domain.VolunteerTask
	var urgencyStr, statusStr string
	err := row.Scan(&t.ID, &t.Service, &t.Resident, &t.Time, &urgencyStr, &statusStr, &t.AssignedTo)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("volunteer task %s not found", id)
		}
		return nil, fmt.Errorf("scanning volunteer task: %w", err)
	}
	t.Urgency = domain.Urgency(urgencyStr)
	t.Status = domain.TaskStatus(statusStr)
	return &t, nil
}

func (r *SQLiteTaskRepo) List(ctx context.Context) ([]*domain.VolunteerTask, error) {
	query := `SELECT id, service, resident, time, urgency, status, assigned_to
		FROM volunteer_tasks ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing volunteer tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.VolunteerTask
	for rows.Next() {
		var t domain.VolunteerTask
		var urgencyStr, statusStr string
		if err := rows.Scan(&t.ID, &t.Service, &t.Resident, &t.Time, &urgencyStr, &statusStr, &t.AssignedTo); err != nil {
			return nil, fmt.Errorf("scanning volunteer task: %w", err)
		}
		t.Urgency = domain.Urgency(urgencyStr)
		t.Status = domain.TaskStatus(statusStr)
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating volunteer tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM volunteer_tasks`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting volunteer tasks: %w", err)
	}
	return n, nil
}

func (r *SQLiteTaskRepo) Assign(ctx context.Context, id, volunteer string) error {
	query := `UPDATE volunteer_tasks SET status = ?, assigned_to = ?
		WHERE id = ? AND status = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(domain.TaskAssigned), volunteer, id, string(domain.TaskOpen))
	if err != nil {
		return fmt.Errorf("assigning volunteer task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("assigning volunteer task: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("volunteer task %s is not open", id)
	}
	return nil
}
