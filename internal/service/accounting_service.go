package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
	"github.com/d3ads3c/cafepanel-sub000/internal/events"
	"github.com/d3ads3c/cafepanel-sub000/internal/repository"
	"github.com/d3ads3c/cafepanel-sub000/internal/tenant"
	apperrors "github.com/d3ads3c/cafepanel-sub000/pkg/util"
)

// InvoiceLineInput is one requested invoice row.
type InvoiceLineInput struct {
	Title     string
	UnitPrice int64
	Quantity  int
}

// CreateInvoiceInput carries everything needed to issue an invoice.
type CreateInvoiceInput struct {
	Kind       domain.InvoiceKind
	CustomerID *int
	AccountID  *int
	Note       string
	Lines      []InvoiceLineInput
}

// JournalEntryInput is one requested debit/credit leg.
type JournalEntryInput struct {
	AccountID int
	Title     string
	Debit     int64
	Credit    int64
}

// AccountingService issues invoices and journals. All multi-row writes run
// transactionally so a document is never half-persisted.
type AccountingService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAccountingService builds the service.
func NewAccountingService(dispatcher events.Dispatcher, logger *zap.Logger) *AccountingService {
	return &AccountingService{dispatcher: dispatcher, logger: logger}
}

// CreateInvoice writes the invoice, its lines and (when an account is given)
// the matching balance movement in a single transaction. The invoice total is
// the sum of its lines; it is computed here, never taken from the client.
func (s *AccountingService) CreateInvoice(ctx context.Context, db *tenant.DB, input CreateInvoiceInput) (*domain.Invoice, error) {
	if len(input.Lines) == 0 {
		return nil, apperrors.NewValidationError("invoice needs at least one line", nil)
	}
	if input.Kind != domain.InvoiceKindSale && input.Kind != domain.InvoiceKindPurchase {
		return nil, apperrors.NewValidationError("unknown invoice kind", nil)
	}

	invoice := &domain.Invoice{
		Reference:  uuid.NewString(),
		Kind:       input.Kind,
		CustomerID: input.CustomerID,
		AccountID:  input.AccountID,
		Note:       input.Note,
		IssuedAt:   time.Now(),
	}
	for _, line := range input.Lines {
		if line.Quantity <= 0 || line.UnitPrice < 0 {
			return nil, apperrors.NewValidationError("invalid invoice line", nil)
		}
		invoice.Lines = append(invoice.Lines, domain.InvoiceLine{
			Title:     line.Title,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}
	for _, line := range invoice.Lines {
		invoice.Total += line.LineTotal()
	}

	err := db.RunTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		invoices := repository.NewInvoiceRepository(tx)
		if err := invoices.Create(ctx, tx, invoice); err != nil {
			return err
		}

		if invoice.AccountID != nil {
			delta := invoice.Total
			if invoice.Kind == domain.InvoiceKindPurchase {
				delta = -delta
			}
			accounts := repository.NewAccountRepository(tx)
			if err := accounts.AdjustBalance(ctx, tx, *invoice.AccountID, delta); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventInvoiceIssued,
		CafeName:  db.CafeName(),
		Timestamp: time.Now(),
		Payload: events.InvoiceIssuedPayload{
			InvoiceID: invoice.ID,
			Reference: invoice.Reference,
			Kind:      invoice.Kind,
			Total:     invoice.Total,
		},
	})
	return invoice, nil
}

// CreateJournal writes a journal and its entries transactionally. Entries
// must balance: total debits equal total credits.
func (s *AccountingService) CreateJournal(ctx context.Context, db *tenant.DB, note string, entries []JournalEntryInput) (*domain.Journal, error) {
	if len(entries) < 2 {
		return nil, apperrors.NewValidationError("journal needs at least two entries", nil)
	}

	journal := &domain.Journal{
		Reference: uuid.NewString(),
		Note:      note,
		IssuedAt:  time.Now(),
	}
	for _, entry := range entries {
		if entry.Debit < 0 || entry.Credit < 0 {
			return nil, apperrors.NewValidationError("negative journal amounts", nil)
		}
		journal.Entries = append(journal.Entries, domain.JournalEntry{
			AccountID: entry.AccountID,
			Title:     entry.Title,
			Debit:     entry.Debit,
			Credit:    entry.Credit,
		})
	}
	if !journal.Balanced() {
		return nil, apperrors.NewValidationError("journal entries do not balance", nil)
	}

	err := db.RunTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		journals := repository.NewJournalRepository(tx)
		return journals.Create(ctx, tx, journal)
	})
	if err != nil {
		return nil, err
	}
	return journal, nil
}
