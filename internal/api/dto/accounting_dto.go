package dto

import (
	"time"

	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
)

// InvoiceLineRequest is one requested invoice row.
type InvoiceLineRequest struct {
	Title     string `json:"title"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// CreateInvoiceRequest payload.
type CreateInvoiceRequest struct {
	Kind       domain.InvoiceKind   `json:"kind"`
	CustomerID *int                 `json:"customer_id"`
	AccountID  *int                 `json:"account_id"`
	Note       string               `json:"note"`
	Lines      []InvoiceLineRequest `json:"lines"`
}

// InvoiceLineResponse response.
type InvoiceLineResponse struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"line_total"`
}

// InvoiceResponse response.
type InvoiceResponse struct {
	ID         int                   `json:"id"`
	Reference  string                `json:"reference"`
	Kind       domain.InvoiceKind    `json:"kind"`
	CustomerID *int                  `json:"customer_id"`
	AccountID  *int                  `json:"account_id"`
	Total      int64                 `json:"total"`
	Note       string                `json:"note"`
	Lines      []InvoiceLineResponse `json:"lines,omitempty"`
	IssuedAt   time.Time             `json:"issued_at"`
}

// JournalEntryRequest is one requested debit/credit leg.
type JournalEntryRequest struct {
	AccountID int    `json:"account_id"`
	Title     string `json:"title"`
	Debit     int64  `json:"debit"`
	Credit    int64  `json:"credit"`
}

// CreateJournalRequest payload.
type CreateJournalRequest struct {
	Note    string                `json:"note"`
	Entries []JournalEntryRequest `json:"entries"`
}

// JournalEntryResponse response.
type JournalEntryResponse struct {
	ID        int    `json:"id"`
	AccountID int    `json:"account_id"`
	Title     string `json:"title"`
	Debit     int64  `json:"debit"`
	Credit    int64  `json:"credit"`
}

// JournalResponse response.
type JournalResponse struct {
	ID        int                    `json:"id"`
	Reference string                 `json:"reference"`
	Note      string                 `json:"note"`
	Entries   []JournalEntryResponse `json:"entries,omitempty"`
	IssuedAt  time.Time              `json:"issued_at"`
}

// BankAccountRequest payload for create.
type BankAccountRequest struct {
	Name    string `json:"name"`
	Number  string `json:"number"`
	Balance int64  `json:"balance"`
}

// BankAccountResponse response.
type BankAccountResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Number  string `json:"number"`
	Balance int64  `json:"balance"`
}

// NewInvoiceResponse maps a domain invoice.
func NewInvoiceResponse(i domain.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:         i.ID,
		Reference:  i.Reference,
		Kind:       i.Kind,
		CustomerID: i.CustomerID,
		AccountID:  i.AccountID,
		Total:      i.Total,
		Note:       i.Note,
		IssuedAt:   i.IssuedAt,
	}
	for _, line := range i.Lines {
		resp.Lines = append(resp.Lines, InvoiceLineResponse{
			ID:        line.ID,
			Title:     line.Title,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal(),
		})
	}
	return resp
}

// NewJournalResponse maps a domain journal.
func NewJournalResponse(j domain.Journal) JournalResponse {
	resp := JournalResponse{
		ID:        j.ID,
		Reference: j.Reference,
		Note:      j.Note,
		IssuedAt:  j.IssuedAt,
	}
	for _, entry := range j.Entries {
		resp.Entries = append(resp.Entries, JournalEntryResponse{
			ID:        entry.ID,
			AccountID: entry.AccountID,
			Title:     entry.Title,
			Debit:     entry.Debit,
			Credit:    entry.Credit,
		})
	}
	return resp
}

// NewBankAccountResponse maps a domain bank account.
func NewBankAccountResponse(a domain.BankAccount) BankAccountResponse {
	return BankAccountResponse{ID: a.ID, Name: a.Name, Number: a.Number, Balance: a.Balance}
}
