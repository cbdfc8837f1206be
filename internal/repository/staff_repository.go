package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
)

// StaffRepository defines persistence access for panel login accounts,
// stored on the control-plane database.
type StaffRepository interface {
	Create(ctx context.Context, staff *domain.StaffUser) error
	Update(ctx context.Context, staff *domain.StaffUser) error
	GetByID(ctx context.Context, id int) (*domain.StaffUser, error)
	GetByUsername(ctx context.Context, username string) (*domain.StaffUser, error)
	ListByCafe(ctx context.Context, cafename string) ([]domain.StaffUser, error)
}

type staffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository returns a control-database implementation.
func NewStaffRepository(pool *pgxpool.Pool) StaffRepository {
	return &staffRepository{pool: pool}
}

func (r *staffRepository) Create(ctx context.Context, staff *domain.StaffUser) error {
	const query = `
        INSERT INTO staff_users (username, password_hash, cafename, plan, permissions, active)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		staff.Username,
		staff.PasswordHash,
		staff.CafeName,
		staff.Plan,
		staff.Permissions,
		staff.Active,
	).Scan(&staff.ID, &staff.CreatedAt, &staff.UpdatedAt)
}

func (r *staffRepository) Update(ctx context.Context, staff *domain.StaffUser) error {
	const query = `
        UPDATE staff_users
        SET username=$1, password_hash=$2, plan=$3, permissions=$4, active=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		staff.Username,
		staff.PasswordHash,
		staff.Plan,
		staff.Permissions,
		staff.Active,
		staff.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *staffRepository) GetByID(ctx context.Context, id int) (*domain.StaffUser, error) {
	const query = `
        SELECT id, username, password_hash, cafename, plan, permissions, active, created_at, updated_at
        FROM staff_users WHERE id=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *staffRepository) GetByUsername(ctx context.Context, username string) (*domain.StaffUser, error) {
	const query = `
        SELECT id, username, password_hash, cafename, plan, permissions, active, created_at, updated_at
        FROM staff_users WHERE username=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, username))
}

func (r *staffRepository) scanOne(row pgx.Row) (*domain.StaffUser, error) {
	var staff domain.StaffUser
	if err := row.Scan(
		&staff.ID,
		&staff.Username,
		&staff.PasswordHash,
		&staff.CafeName,
		&staff.Plan,
		&staff.Permissions,
		&staff.Active,
		&staff.CreatedAt,
		&staff.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) ListByCafe(ctx context.Context, cafename string) ([]domain.StaffUser, error) {
	const query = `
        SELECT id, username, password_hash, cafename, plan, permissions, active, created_at, updated_at
        FROM staff_users WHERE cafename=$1 ORDER BY username`

	rows, err := r.pool.Query(ctx, query, cafename)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.StaffUser
	for rows.Next() {
		var staff domain.StaffUser
		if err := rows.Scan(
			&staff.ID,
			&staff.Username,
			&staff.PasswordHash,
			&staff.CafeName,
			&staff.Plan,
			&staff.Permissions,
			&staff.Active,
			&staff.CreatedAt,
			&staff.UpdatedAt,
		); err != nil {
			return nil, err
		}
		members = append(members, staff)
	}
	return members, rows.Err()
}
