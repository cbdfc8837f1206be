package domain

import "time"

// BankAccount is a cash or bank account money moves through.
type BankAccount struct {
	ID        int
	Name      string
	Number    string
	Balance   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InvoiceKind distinguishes sale and purchase invoices.
type InvoiceKind string

const (
	InvoiceKindSale     InvoiceKind = "SALE"
	InvoiceKindPurchase InvoiceKind = "PURCHASE"
)

// Invoice is a sale or purchase document with its lines.
type Invoice struct {
	ID         int
	Reference  string
	Kind       InvoiceKind
	CustomerID *int
	AccountID  *int
	Total      int64
	Note       string
	Lines      []InvoiceLine
	IssuedAt   time.Time
	CreatedAt  time.Time
}

// InvoiceLine is one row of an invoice.
type InvoiceLine struct {
	ID        int
	InvoiceID int
	Title     string
	UnitPrice int64
	Quantity  int
}

// LineTotal returns the extended price of the line.
func (l InvoiceLine) LineTotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// JournalEntry is one debit or credit leg of a journal.
type JournalEntry struct {
	ID        int
	JournalID int
	AccountID int
	Title     string
	Debit     int64
	Credit    int64
}

// Journal is a manual accounting document; its entries must balance.
type Journal struct {
	ID        int
	Reference string
	Note      string
	Entries   []JournalEntry
	IssuedAt  time.Time
	CreatedAt time.Time
}

// Balanced reports whether total debits equal total credits.
func (j Journal) Balanced() bool {
	var debit, credit int64
	for _, e := range j.Entries {
		debit += e.Debit
		credit += e.Credit
	}
	return debit == credit
}
