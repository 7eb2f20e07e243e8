package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	"github.com/kerem-haeger/PetGroom-BookingService/pkg/dbmetrics"
	"github.com/kerem-haeger/PetGroom-BookingService/pkg/psqlbuilder"
)

var entryColumns = []string{
	"id",
	"employee_id",
	"appointment_id",
	"scheduled_time",
	"duration_minutes",
	"available",
	"created_at",
}

// Repository is the calendar-entry storage repository. One entry per
// approved appointment, enforced by a unique index on appointment_id.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a calendar repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert writes the commitment for an appointment. Re-approving or
// reassigning replaces the existing entry in place, so the operation is
// idempotent per appointment.
func (r *Repository) Upsert(ctx context.Context, e *domain.CalendarEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("calendar_entries").
		Columns("employee_id", "appointment_id", "scheduled_time", "duration_minutes", "available").
		Values(e.EmployeeID, e.AppointmentID, e.ScheduledTime, e.DurationMinutes, e.Available).
		Suffix(`ON CONFLICT (appointment_id) DO UPDATE SET
			employee_id = EXCLUDED.employee_id,
			scheduled_time = EXCLUDED.scheduled_time,
			duration_minutes = EXCLUDED.duration_minutes,
			available = EXCLUDED.available`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteByAppointment removes the commitment for an appointment. Deleting
// an entry that does not exist is not an error: cancellation of a pending
// appointment has nothing to clean up.
func (r *Repository) DeleteByAppointment(ctx context.Context, appointmentID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("calendar_entries").
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByAppointment - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByAppointment - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// ListBetween fetches committed entries scheduled within [from, to).
func (r *Repository) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.CalendarEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(entryColumns...).
		From("calendar_entries").
		Where(squirrel.GtOrEq{"scheduled_time": from}).
		Where(squirrel.Lt{"scheduled_time": to}).
		OrderBy("scheduled_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.CalendarEntry, 0)
	for rows.Next() {
		var e domain.CalendarEntry
		err := rows.Scan(
			&e.ID,
			&e.EmployeeID,
			&e.AppointmentID,
			&e.ScheduledTime,
			&e.DurationMinutes,
			&e.Available,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBetween - scan entry: %v", ErrScanRow, err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBetween - iterate rows: %v", ErrExecQuery, err)
	}

	return entries, nil
}

// ExistsAt reports whether the employee already has a commitment whose
// scheduled time falls inside [from, to). Conflict is judged on the
// scheduled start only; the ledger stores one row per appointment.
func (r *Repository) ExistsAt(ctx context.Context, employeeID int64, from, to time.Time, excludeAppointmentID *int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("COUNT(*)").
		From("calendar_entries").
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.GtOrEq{"scheduled_time": from}).
		Where(squirrel.Lt{"scheduled_time": to})

	if excludeAppointmentID != nil {
		builder = builder.Where(squirrel.NotEq{"appointment_id": *excludeAppointmentID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsAt - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: ExistsAt - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}
