package voucher

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	"github.com/kerem-haeger/PetGroom-BookingService/pkg/dbmetrics"
	"github.com/kerem-haeger/PetGroom-BookingService/pkg/psqlbuilder"
)

// Repository stores single-use discount vouchers.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a voucher repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCode fetches a voucher by its code.
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Voucher, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("code", "discount_percentage", "expiry_date", "is_redeemed", "used_by_user_id", "created_at").
		From("vouchers").
		Where(squirrel.Eq{"code": code}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	var v domain.Voucher
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.Code,
		&v.DiscountPercentage,
		&v.ExpiryDate,
		&v.IsRedeemed,
		&v.UsedByUserID,
		&v.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrVoucherNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan voucher: %v", ErrScanRow, err)
	}

	return &v, nil
}

// Redeem marks a voucher as spent by the given user. The is_redeemed guard
// is part of the statement: with two concurrent redemptions exactly one
// succeeds and the other gets ErrAlreadyRedeemed.
func (r *Repository) Redeem(ctx context.Context, code string, userID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("vouchers").
		Set("is_redeemed", true).
		Set("used_by_user_id", userID).
		Where(squirrel.Eq{"code": code}).
		Where(squirrel.Eq{"is_redeemed": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Redeem - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Redeem - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Redeem - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrAlreadyRedeemed
	}

	return nil
}
