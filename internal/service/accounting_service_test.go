package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
	"github.com/d3ads3c/cafepanel-sub000/internal/events"
	apperrors "github.com/d3ads3c/cafepanel-sub000/pkg/util"
)

func newAccountingService() *AccountingService {
	return NewAccountingService(events.NewInMemoryDispatcher(zap.NewNop()), zap.NewNop())
}

func TestCreateInvoiceValidation(t *testing.T) {
	svc := newAccountingService()
	ctx := context.Background()

	cases := []struct {
		name  string
		input CreateInvoiceInput
	}{
		{"no lines", CreateInvoiceInput{Kind: domain.InvoiceKindSale}},
		{"unknown kind", CreateInvoiceInput{
			Kind:  "REFUND",
			Lines: []InvoiceLineInput{{Title: "espresso", UnitPrice: 50000, Quantity: 1}},
		}},
		{"zero quantity", CreateInvoiceInput{
			Kind:  domain.InvoiceKindSale,
			Lines: []InvoiceLineInput{{Title: "espresso", UnitPrice: 50000, Quantity: 0}},
		}},
		{"negative price", CreateInvoiceInput{
			Kind:  domain.InvoiceKindPurchase,
			Lines: []InvoiceLineInput{{Title: "beans", UnitPrice: -1, Quantity: 2}},
		}},
	}
	for _, tc := range cases {
		_, err := svc.CreateInvoice(ctx, nil, tc.input)
		if err == nil {
			t.Errorf("%s: invalid invoice accepted", tc.name)
			continue
		}
		if code := apperrors.ToDomainError(err).Code; code != "VALIDATION_FAILED" {
			t.Errorf("%s: code = %q, want VALIDATION_FAILED", tc.name, code)
		}
	}
}

func TestCreateJournalValidation(t *testing.T) {
	svc := newAccountingService()
	ctx := context.Background()

	if _, err := svc.CreateJournal(ctx, nil, "single leg", []JournalEntryInput{
		{AccountID: 1, Debit: 1000},
	}); err == nil {
		t.Error("journal with one entry accepted")
	}

	if _, err := svc.CreateJournal(ctx, nil, "negative", []JournalEntryInput{
		{AccountID: 1, Debit: -1000},
		{AccountID: 2, Credit: -1000},
	}); err == nil {
		t.Error("journal with negative amounts accepted")
	}

	if _, err := svc.CreateJournal(ctx, nil, "unbalanced", []JournalEntryInput{
		{AccountID: 1, Debit: 1000},
		{AccountID: 2, Credit: 900},
	}); err == nil {
		t.Error("unbalanced journal accepted")
	}
}

func TestJournalBalanced(t *testing.T) {
	balanced := domain.Journal{Entries: []domain.JournalEntry{
		{AccountID: 1, Debit: 1500},
		{AccountID: 2, Credit: 1000},
		{AccountID: 3, Credit: 500},
	}}
	if !balanced.Balanced() {
		t.Error("balanced journal reported unbalanced")
	}

	unbalanced := domain.Journal{Entries: []domain.JournalEntry{
		{AccountID: 1, Debit: 1500},
		{AccountID: 2, Credit: 1000},
	}}
	if unbalanced.Balanced() {
		t.Error("unbalanced journal reported balanced")
	}
}
