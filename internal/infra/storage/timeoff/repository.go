package timeoff

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	"github.com/kerem-haeger/PetGroom-BookingService/pkg/dbmetrics"
	"github.com/kerem-haeger/PetGroom-BookingService/pkg/psqlbuilder"
)

var requestColumns = []string{
	"id",
	"employee_id",
	"start_time",
	"end_time",
	"status",
	"requested_at",
}

// Repository stores employee time-off requests.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a time-off repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new time-off request in pending status.
func (r *Repository) Create(ctx context.Context, req *domain.TimeOffRequest) (*domain.TimeOffRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("time_off_requests").
		Columns("employee_id", "start_time", "end_time", "status").
		Values(req.EmployeeID, req.StartTime, req.EndTime, req.Status).
		Suffix("RETURNING id, requested_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&req.ID, &req.RequestedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return req, nil
}

// GetByID fetches a time-off request by ID.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TimeOffRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(requestColumns...).
		From("time_off_requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var req domain.TimeOffRequest
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&req.ID,
		&req.EmployeeID,
		&req.StartTime,
		&req.EndTime,
		&req.Status,
		&req.RequestedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan request: %v", ErrScanRow, err)
	}

	return &req, nil
}

// SetStatus updates the approval state of a request.
func (r *Repository) SetStatus(ctx context.Context, id int64, status domain.TimeOffStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_off_requests").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetStatus - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrRequestNotFound
	}

	return nil
}

// ListApprovedOverlapping fetches approved requests whose interval
// overlaps [from, to). Availability checks call this once per candidate
// window and match employees in memory.
func (r *Repository) ListApprovedOverlapping(ctx context.Context, from, to time.Time) ([]*domain.TimeOffRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(requestColumns...).
		From("time_off_requests").
		Where(squirrel.Eq{"status": domain.TimeOffApproved}).
		Where(squirrel.Lt{"start_time": to}).
		Where(squirrel.Gt{"end_time": from}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListApprovedOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListApprovedOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	requests := make([]*domain.TimeOffRequest, 0)
	for rows.Next() {
		var req domain.TimeOffRequest
		err := rows.Scan(
			&req.ID,
			&req.EmployeeID,
			&req.StartTime,
			&req.EndTime,
			&req.Status,
			&req.RequestedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListApprovedOverlapping - scan request: %v", ErrScanRow, err)
		}
		requests = append(requests, &req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListApprovedOverlapping - iterate rows: %v", ErrExecQuery, err)
	}

	return requests, nil
}
