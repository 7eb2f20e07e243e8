package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	"github.com/kerem-haeger/PetGroom-BookingService/pkg/dbmetrics"
	"github.com/kerem-haeger/PetGroom-BookingService/pkg/psqlbuilder"
)

// uniqueViolation is the PostgreSQL error code raised when the
// (pet_id, start_time) unique constraint is hit.
const uniqueViolation = "23505"

var appointmentColumns = []string{
	"id",
	"pet_id",
	"client_id",
	"service_id",
	"start_time",
	"duration_minutes",
	"employee_id",
	"status",
	"edit_count",
	"final_price",
	"voucher_code",
	"pet_name",
	"service_name",
	"created_at",
	"updated_at",
}

// Repository is the appointment storage repository.
type Repository struct {
	db DBExecutor
}

// NewRepository creates an appointment repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new appointment. The database enforces the
// (pet_id, start_time) uniqueness; a violation maps to
// ErrDuplicateAppointment so the caller can report a conflict.
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"pet_id",
			"client_id",
			"service_id",
			"start_time",
			"duration_minutes",
			"employee_id",
			"status",
			"edit_count",
			"final_price",
			"voucher_code",
			"pet_name",
			"service_name",
		).
		Values(
			a.PetID,
			a.ClientID,
			a.ServiceID,
			a.StartTime,
			a.DurationMinutes,
			a.EmployeeID,
			a.Status,
			a.EditCount,
			a.FinalPrice,
			a.VoucherCode,
			a.PetName,
			a.ServiceName,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateAppointment
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// GetByID fetches an appointment by ID.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	appt, err := scanAppointment(row)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// ListByClient fetches a client's appointments ordered by start time,
// optionally filtered by status.
func (r *Repository) ListByClient(ctx context.Context, clientID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("start_time ASC")

	if status != nil {
		builder = builder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByClient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByClient - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListByStatus fetches all appointments in the given status ordered by
// start time. Used for the manager's pending queue; always a fresh query,
// never a cached collection.
func (r *Repository) ListByStatus(ctx context.Context, status domain.AppointmentStatus) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"status": status}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListApprovedAssignedBetween fetches approved, employee-assigned
// appointments starting within [from, to). End times are derived in
// application code (start + stored duration), so the window must include
// enough margin before the target to catch long-running overlaps.
func (r *Repository) ListApprovedAssignedBetween(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"status": domain.StatusApproved}).
		Where("employee_id IS NOT NULL").
		Where(squirrel.GtOrEq{"start_time": from}).
		Where(squirrel.Lt{"start_time": to}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListApprovedAssignedBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListApprovedAssignedBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// CountActiveSameDay counts a client's pending/approved appointments with
// start times inside [dayStart, dayEnd), optionally excluding one
// appointment (used when editing: the appointment being moved must not
// count against its own limit).
func (r *Repository) CountActiveSameDay(ctx context.Context, clientID int64, dayStart, dayEnd time.Time, excludeID *int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{"client_id": clientID}).
		Where(squirrel.Eq{"status": domain.ActiveStatuses}).
		Where(squirrel.GtOrEq{"start_time": dayStart}).
		Where(squirrel.Lt{"start_time": dayEnd})

	if excludeID != nil {
		builder = builder.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveSameDay - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveSameDay - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// ListActiveFutureByPet fetches a pet's pending/approved appointments
// starting after now. Used by the cascade cancellation on pet deletion.
func (r *Repository) ListActiveFutureByPet(ctx context.Context, petID int64, now time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"pet_id": petID}).
		Where(squirrel.Eq{"status": domain.ActiveStatuses}).
		Where(squirrel.Gt{"start_time": now}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveFutureByPet - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveFutureByPet - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// Approve performs the compare-and-swap pending -> approved transition,
// assigning the employee in the same statement. Returns ErrNotPending when
// the appointment left the pending state between read and write — the
// losing side of a concurrent approval sees exactly this error.
func (r *Repository) Approve(ctx context.Context, id int64, employeeID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("employee_id", employeeID).
		Set("status", domain.StatusApproved).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.StatusPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Approve - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, ErrNotPending)
}

// Reject performs the compare-and-swap pending -> rejected transition.
func (r *Repository) Reject(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusRejected).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.StatusPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reject - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, ErrNotPending)
}

// UpdateEmployee swaps the assigned employee of an approved appointment.
func (r *Repository) UpdateEmployee(ctx context.Context, id int64, employeeID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("employee_id", employeeID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.StatusApproved}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateEmployee - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, ErrNotApproved)
}

// UpdateSchedule applies a client edit: new service, time, duration and
// price; the status drops back to pending (forcing re-approval) and the
// edit counter increments. The guards on edit_count and status are part of
// the statement so a concurrent edit cannot exceed the cap.
func (r *Repository) UpdateSchedule(ctx context.Context, id int64, serviceID int64, startTime time.Time, durationMinutes int, serviceName string, finalPrice float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("service_id", serviceID).
		Set("start_time", startTime).
		Set("duration_minutes", durationMinutes).
		Set("service_name", serviceName).
		Set("final_price", finalPrice).
		Set("status", domain.StatusPending).
		Set("edit_count", squirrel.Expr("edit_count + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Lt{"edit_count": domain.MaxEditCount}).
		Where(squirrel.NotEq{"status": []domain.AppointmentStatus{domain.StatusCancelled, domain.StatusCompleted}}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, ErrNotEditable)
}

// Cancel performs the compare-and-swap active -> cancelled transition.
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.ActiveStatuses}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, ErrCannotCancel)
}

// CompletePast moves approved appointments whose window has fully elapsed
// to completed. Returns the number of rows transitioned.
func (r *Repository) CompletePast(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCompleted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.StatusApproved}).
		Where(squirrel.Expr("start_time + make_interval(mins => duration_minutes) <= ?", now)).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CompletePast - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CompletePast - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CompletePast - rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}

// execExpectingRow runs a guarded UPDATE and maps "no rows matched" to the
// given sentinel. Distinguishing a missing row from a failed guard needs a
// follow-up read, which callers do when they care.
func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, guardErr error) error {
	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return guardErr
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var a domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&a.ID,
		&a.PetID,
		&a.ClientID,
		&a.ServiceID,
		&a.StartTime,
		&a.DurationMinutes,
		&a.EmployeeID,
		&a.Status,
		&a.EditCount,
		&a.FinalPrice,
		&a.VoucherCode,
		&a.PetName,
		&a.ServiceName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time
	return &a, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan appointment: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rows: %v", ErrExecQuery, err)
	}
	return appointments, nil
}
