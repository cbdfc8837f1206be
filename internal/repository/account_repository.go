package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
	"github.com/d3ads3c/cafepanel-sub000/internal/tenant"
)

// AccountRepository defines persistence access for bank accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.BankAccount) error
	GetByID(ctx context.Context, id int) (*domain.BankAccount, error)
	List(ctx context.Context) ([]domain.BankAccount, error)
	AdjustBalance(ctx context.Context, q tenant.Querier, id int, delta int64) error
}

type accountRepository struct {
	q tenant.Querier
}

// NewAccountRepository returns a tenant-scoped implementation.
func NewAccountRepository(q tenant.Querier) AccountRepository {
	return &accountRepository{q: q}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.BankAccount) error {
	const query = `
        INSERT INTO bank_accounts (name, number, balance)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.q.QueryRow(ctx, query, account.Name, account.Number, account.Balance).
		Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
}

func (r *accountRepository) GetByID(ctx context.Context, id int) (*domain.BankAccount, error) {
	const query = `
        SELECT id, name, number, balance, created_at, updated_at
        FROM bank_accounts WHERE id=$1`

	var account domain.BankAccount
	if err := r.q.QueryRow(ctx, query, id).Scan(
		&account.ID,
		&account.Name,
		&account.Number,
		&account.Balance,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) List(ctx context.Context) ([]domain.BankAccount, error) {
	const query = `
        SELECT id, name, number, balance, created_at, updated_at
        FROM bank_accounts ORDER BY id`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.BankAccount
	for rows.Next() {
		var account domain.BankAccount
		if err := rows.Scan(
			&account.ID,
			&account.Name,
			&account.Number,
			&account.Balance,
			&account.CreatedAt,
			&account.UpdatedAt,
		); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

// AdjustBalance moves money on an account. Runs through the caller's
// transaction so an invoice and its balance movement commit together.
func (r *accountRepository) AdjustBalance(ctx context.Context, q tenant.Querier, id int, delta int64) error {
	const query = `UPDATE bank_accounts SET balance=balance+$1, updated_at=NOW() WHERE id=$2`

	cmd, err := q.Exec(ctx, query, delta, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
