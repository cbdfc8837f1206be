package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/d3ads3c/cafepanel-sub000/internal/api/dto"
	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
	"github.com/d3ads3c/cafepanel-sub000/internal/repository"
	"github.com/d3ads3c/cafepanel-sub000/internal/service"
	"github.com/d3ads3c/cafepanel-sub000/internal/tenant"
	apperrors "github.com/d3ads3c/cafepanel-sub000/pkg/util"
)

// AccountingHandler exposes invoices, journals and bank accounts.
type AccountingHandler struct {
	tenants    *tenant.Manager
	accounting *service.AccountingService
}

// NewAccountingHandler constructs handler.
func NewAccountingHandler(tenants *tenant.Manager, accounting *service.AccountingService) *AccountingHandler {
	return &AccountingHandler{tenants: tenants, accounting: accounting}
}

// ListInvoices handles GET /api/invoices.
func (h *AccountingHandler) ListInvoices(c *fiber.Ctx) error {
	db, _, err := resolveTenant(c, h.tenants)
	if err != nil {
		return err
	}

	var kind *domain.InvoiceKind
	if raw := c.Query("kind"); raw != "" {
		k := domain.InvoiceKind(raw)
		kind = &k
	}

	invoices, err := repository.NewInvoiceRepository(db.Pool()).List(c.UserContext(), kind)
	if err != nil {
		return apperrors.MapError(err)
	}

	resp := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, invoice := range invoices {
		resp = append(resp, dto.NewInvoiceResponse(invoice))
	}
	return ok(c, http.StatusOK, resp)
}

// GetInvoice handles GET /api/invoices/:id.
func (h *AccountingHandler) GetInvoice(c *fiber.Ctx) error {
	db, _, err := resolveTenant(c, h.tenants)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid id", nil)
	}

	invoice, err := repository.NewInvoiceRepository(db.Pool()).GetByID(c.UserContext(), id)
	if err != nil {
		return apperrors.MapError(err)
	}
	return ok(c, http.StatusOK, dto.NewInvoiceResponse(*invoice))
}

// CreateInvoice handles POST /api/invoices.
func (h *AccountingHandler) CreateInvoice(c *fiber.Ctx) error {
	db, _, err := resolveTenant(c, h.tenants)
	if err != nil {
		return err
	}

	var req dto.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.CreateInvoiceInput{
		Kind:       req.Kind,
		CustomerID: req.CustomerID,
		AccountID:  req.AccountID,
		Note:       req.Note,
	}
	for _, line := range req.Lines {
		input.Lines = append(input.Lines, service.InvoiceLineInput{
			Title:     line.Title,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	invoice, err := h.accounting.CreateInvoice(c.UserContext(), db, input)
	if err != nil {
		return apperrors.MapError(err)
	}
	return ok(c, http.StatusCreated, dto.NewInvoiceResponse(*invoice))
}

// ListJournals handles GET /api/journals.
func (h *AccountingHandler) ListJournals(c *fiber.Ctx) error {
	db, _, err := resolveTenant(c, h.tenants)
	if err != nil {
		return err
	}

	journals, err := repository.NewJournalRepository(db.Pool()).List(c.UserContext())
	if err != nil {
		return apperrors.MapError(err)
	}

	resp := make([]dto.JournalResponse, 0, len(journals))
	for _, journal := range journals {
		resp = append(resp, dto.NewJournalResponse(journal))
	}
	return ok(c, http.StatusOK, resp)
}

// CreateJournal handles POST /api/journals.
func (h *AccountingHandler) CreateJournal(c *fiber.Ctx) error {
	db, _, err := resolveTenant(c, h.tenants)
	if err != nil {
		return err
	}

	var req dto.CreateJournalRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	entries := make([]service.JournalEntryInput, 0, len(req.Entries))
	for _, entry := range req.Entries {
		entries = append(entries, service.JournalEntryInput{
			AccountID: entry.AccountID,
			Title:     entry.Title,
			Debit:     entry.Debit,
			Credit:    entry.Credit,
		})
	}

	journal, err := h.accounting.CreateJournal(c.UserContext(), db, req.Note, entries)
	if err != nil {
		return apperrors.MapError(err)
	}
	return ok(c, http.StatusCreated, dto.NewJournalResponse(*journal))
}

// GetJournal handles GET /api/journals/:id.
func (h *AccountingHandler) GetJournal(c *fiber.Ctx) error {
	db, _, err := resolveTenant(c, h.tenants)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid id", nil)
	}

	journal, err := repository.NewJournalRepository(db.Pool()).GetByID(c.UserContext(), id)
	if err != nil {
		return apperrors.MapError(err)
	}
	return ok(c, http.StatusOK, dto.NewJournalResponse(*journal))
}

// GetAccount handles GET /api/accounts/:id.
func (h *AccountingHandler) GetAccount(c *fiber.Ctx) error {
	db, _, err := resolveTenant(c, h.tenants)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid id", nil)
	}

	account, err := repository.NewAccountRepository(db.Pool()).GetByID(c.UserContext(), id)
	if err != nil {
		return apperrors.MapError(err)
	}
	return ok(c, http.StatusOK, dto.NewBankAccountResponse(*account))
}

// ListAccounts handles GET /api/accounts.
func (h *AccountingHandler) ListAccounts(c *fiber.Ctx) error {
	db, _, err := resolveTenant(c, h.tenants)
	if err != nil {
		return err
	}

	accounts, err := repository.NewAccountRepository(db.Pool()).List(c.UserContext())
	if err != nil {
		return apperrors.MapError(err)
	}

	resp := make([]dto.BankAccountResponse, 0, len(accounts))
	for _, account := range accounts {
		resp = append(resp, dto.NewBankAccountResponse(account))
	}
	return ok(c, http.StatusOK, resp)
}

// CreateAccount handles POST /api/accounts.
func (h *AccountingHandler) CreateAccount(c *fiber.Ctx) error {
	db, _, err := resolveTenant(c, h.tenants)
	if err != nil {
		return err
	}

	var req dto.BankAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	account := &domain.BankAccount{Name: req.Name, Number: req.Number, Balance: req.Balance}
	if err := repository.NewAccountRepository(db.Pool()).Create(c.UserContext(), account); err != nil {
		return apperrors.MapError(err)
	}
	return ok(c, http.StatusCreated, dto.NewBankAccountResponse(*account))
}
