package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	"github.com/kerem-haeger/PetGroom-BookingService/pkg/dbmetrics"
	"github.com/kerem-haeger/PetGroom-BookingService/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var serviceColumns = []string{
	"id",
	"name",
	"description",
	"duration_minutes",
	"allowed_start_times",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository stores the service catalog: services and their size-based
// price matrix.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a catalog repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateService inserts a new service.
func (r *Repository) CreateService(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns("name", "description", "duration_minutes", "allowed_start_times", "is_active").
		Values(s.Name, s.Description, s.DurationMinutes, s.AllowedStartTimes, s.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateService - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateService
		}
		return nil, fmt.Errorf("%w: CreateService - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// GetServiceByID fetches a service by ID, active or not.
func (r *Repository) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.Name,
		&s.Description,
		&s.DurationMinutes,
		&s.AllowedStartTimes,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - scan service: %v", ErrScanRow, err)
	}

	return &s, nil
}

// ListServices fetches services ordered by name. With activeOnly the
// result is limited to bookable services.
func (r *Repository) ListServices(ctx context.Context, activeOnly bool) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(serviceColumns...).
		From("services").
		OrderBy("name ASC")

	if activeOnly {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Description,
			&s.DurationMinutes,
			&s.AllowedStartTimes,
			&s.IsActive,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan service: %v", ErrScanRow, err)
		}
		services = append(services, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - iterate rows: %v", ErrExecQuery, err)
	}

	return services, nil
}

// UpdateService rewrites the mutable fields of a service.
func (r *Repository) UpdateService(ctx context.Context, s *domain.Service) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("services").
		Set("name", s.Name).
		Set("description", s.Description).
		Set("duration_minutes", s.DurationMinutes).
		Set("allowed_start_times", s.AllowedStartTimes).
		Set("is_active", s.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateService - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrDuplicateService
		}
		return fmt.Errorf("%w: UpdateService - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateService - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// SetServiceActive toggles whether a service can be booked. Deactivation
// never deletes: historical appointments keep referencing the row.
func (r *Repository) SetServiceActive(ctx context.Context, id int64, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("services").
		Set("is_active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetServiceActive - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetServiceActive - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetServiceActive - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// UpsertPrice writes the price for a (service, size) pair, replacing any
// existing price for the same pair.
func (r *Repository) UpsertPrice(ctx context.Context, p *domain.ServicePrice) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("service_prices").
		Columns("service_id", "size", "price").
		Values(p.ServiceID, p.Size, p.Price).
		Suffix(`ON CONFLICT (service_id, size) DO UPDATE SET
			price = EXCLUDED.price,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertPrice - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertPrice - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetPrice fetches the price for a (service, size) pair. A missing pair is
// ErrPriceNotFound; there is no fallback price.
func (r *Repository) GetPrice(ctx context.Context, serviceID int64, size domain.PetSize) (*domain.ServicePrice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "service_id", "size", "price", "created_at", "updated_at").
		From("service_prices").
		Where(squirrel.Eq{"service_id": serviceID}).
		Where(squirrel.Eq{"size": size}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPrice - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.ServicePrice
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.ServiceID,
		&p.Size,
		&p.Price,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrPriceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPrice - scan price: %v", ErrScanRow, err)
	}

	return &p, nil
}

// ListPrices fetches the full price matrix for a service.
func (r *Repository) ListPrices(ctx context.Context, serviceID int64) ([]*domain.ServicePrice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "service_id", "size", "price", "created_at", "updated_at").
		From("service_prices").
		Where(squirrel.Eq{"service_id": serviceID}).
		OrderBy("size ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListPrices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPrices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	prices := make([]*domain.ServicePrice, 0)
	for rows.Next() {
		var p domain.ServicePrice
		err := rows.Scan(&p.ID, &p.ServiceID, &p.Size, &p.Price, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: ListPrices - scan price: %v", ErrScanRow, err)
		}
		prices = append(prices, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPrices - iterate rows: %v", ErrExecQuery, err)
	}

	return prices, nil
}
