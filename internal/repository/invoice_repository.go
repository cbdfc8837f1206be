package repository

import (
	"context"

	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
	"github.com/d3ads3c/cafepanel-sub000/internal/tenant"
)

// InvoiceRepository defines persistence access for invoices and their lines.
// Create writes multiple rows and must run inside a transaction.
type InvoiceRepository interface {
	Create(ctx context.Context, q tenant.Querier, invoice *domain.Invoice) error
	GetByID(ctx context.Context, id int) (*domain.Invoice, error)
	List(ctx context.Context, kind *domain.InvoiceKind) ([]domain.Invoice, error)
}

type invoiceRepository struct {
	q tenant.Querier
}

// NewInvoiceRepository returns a tenant-scoped implementation.
func NewInvoiceRepository(q tenant.Querier) InvoiceRepository {
	return &invoiceRepository{q: q}
}

func (r *invoiceRepository) Create(ctx context.Context, q tenant.Querier, invoice *domain.Invoice) error {
	const insertInvoice = `
        INSERT INTO invoices (reference, kind, customer_id, account_id, total, note, issued_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at`

	if err := q.QueryRow(ctx, insertInvoice,
		invoice.Reference,
		invoice.Kind,
		invoice.CustomerID,
		invoice.AccountID,
		invoice.Total,
		invoice.Note,
		invoice.IssuedAt,
	).Scan(&invoice.ID, &invoice.CreatedAt); err != nil {
		return err
	}

	const insertLine = `
        INSERT INTO invoice_lines (invoice_id, title, unit_price, quantity)
        VALUES ($1, $2, $3, $4)
        RETURNING id`

	for i := range invoice.Lines {
		line := &invoice.Lines[i]
		line.InvoiceID = invoice.ID
		if err := q.QueryRow(ctx, insertLine,
			line.InvoiceID,
			line.Title,
			line.UnitPrice,
			line.Quantity,
		).Scan(&line.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id int) (*domain.Invoice, error) {
	const query = `
        SELECT id, reference, kind, customer_id, account_id, total, note, issued_at, created_at
        FROM invoices WHERE id=$1`

	var invoice domain.Invoice
	if err := r.q.QueryRow(ctx, query, id).Scan(
		&invoice.ID,
		&invoice.Reference,
		&invoice.Kind,
		&invoice.CustomerID,
		&invoice.AccountID,
		&invoice.Total,
		&invoice.Note,
		&invoice.IssuedAt,
		&invoice.CreatedAt,
	); err != nil {
		return nil, err
	}

	const linesQuery = `
        SELECT id, invoice_id, title, unit_price, quantity
        FROM invoice_lines WHERE invoice_id=$1 ORDER BY id`

	rows, err := r.q.Query(ctx, linesQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.InvoiceLine
		if err := rows.Scan(&line.ID, &line.InvoiceID, &line.Title, &line.UnitPrice, &line.Quantity); err != nil {
			return nil, err
		}
		invoice.Lines = append(invoice.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) List(ctx context.Context, kind *domain.InvoiceKind) ([]domain.Invoice, error) {
	const query = `
        SELECT id, reference, kind, customer_id, account_id, total, note, issued_at, created_at
        FROM invoices
        WHERE ($1::text IS NULL OR kind=$1)
        ORDER BY issued_at DESC`

	rows, err := r.q.Query(ctx, query, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		var invoice domain.Invoice
		if err := rows.Scan(
			&invoice.ID,
			&invoice.Reference,
			&invoice.Kind,
			&invoice.CustomerID,
			&invoice.AccountID,
			&invoice.Total,
			&invoice.Note,
			&invoice.IssuedAt,
			&invoice.CreatedAt,
		); err != nil {
			return nil, err
		}
		invoices = append(invoices, invoice)
	}
	return invoices, rows.Err()
}
