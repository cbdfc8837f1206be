package repository

import (
	"context"

	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
	"github.com/d3ads3c/cafepanel-sub000/internal/tenant"
)

// JournalRepository defines persistence access for accounting journals.
// Create writes the journal and all entries and must run in a transaction.
type JournalRepository interface {
	Create(ctx context.Context, q tenant.Querier, journal *domain.Journal) error
	GetByID(ctx context.Context, id int) (*domain.Journal, error)
	List(ctx context.Context) ([]domain.Journal, error)
}

type journalRepository struct {
	q tenant.Querier
}

// NewJournalRepository returns a tenant-scoped implementation.
func NewJournalRepository(q tenant.Querier) JournalRepository {
	return &journalRepository{q: q}
}

func (r *journalRepository) Create(ctx context.Context, q tenant.Querier, journal *domain.Journal) error {
	const insertJournal = `
        INSERT INTO journals (reference, note, issued_at)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	if err := q.QueryRow(ctx, insertJournal,
		journal.Reference,
		journal.Note,
		journal.IssuedAt,
	).Scan(&journal.ID, &journal.CreatedAt); err != nil {
		return err
	}

	const insertEntry = `
        INSERT INTO journal_entries (journal_id, account_id, title, debit, credit)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`

	for i := range journal.Entries {
		entry := &journal.Entries[i]
		entry.JournalID = journal.ID
		if err := q.QueryRow(ctx, insertEntry,
			entry.JournalID,
			entry.AccountID,
			entry.Title,
			entry.Debit,
			entry.Credit,
		).Scan(&entry.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *journalRepository) GetByID(ctx context.Context, id int) (*domain.Journal, error) {
	const query = `
        SELECT id, reference, note, issued_at, created_at
        FROM journals WHERE id=$1`

	var journal domain.Journal
	if err := r.q.QueryRow(ctx, query, id).Scan(
		&journal.ID,
		&journal.Reference,
		&journal.Note,
		&journal.IssuedAt,
		&journal.CreatedAt,
	); err != nil {
		return nil, err
	}

	const entriesQuery = `
        SELECT id, journal_id, account_id, title, debit, credit
        FROM journal_entries WHERE journal_id=$1 ORDER BY id`

	rows, err := r.q.Query(ctx, entriesQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry domain.JournalEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.JournalID,
			&entry.AccountID,
			&entry.Title,
			&entry.Debit,
			&entry.Credit,
		); err != nil {
			return nil, err
		}
		journal.Entries = append(journal.Entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &journal, nil
}

func (r *journalRepository) List(ctx context.Context) ([]domain.Journal, error) {
	const query = `
        SELECT id, reference, note, issued_at, created_at
        FROM journals ORDER BY issued_at DESC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var journals []domain.Journal
	for rows.Next() {
		var journal domain.Journal
		if err := rows.Scan(
			&journal.ID,
			&journal.Reference,
			&journal.Note,
			&journal.IssuedAt,
			&journal.CreatedAt,
		); err != nil {
			return nil, err
		}
		journals = append(journals, journal)
	}
	return journals, rows.Err()
}
