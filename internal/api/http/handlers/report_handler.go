package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/d3ads3c/cafepanel-sub000/internal/repository"
	"github.com/d3ads3c/cafepanel-sub000/internal/tenant"
	apperrors "github.com/d3ads3c/cafepanel-sub000/pkg/util"
)

// ReportHandler exposes the dashboard sales summary.
type ReportHandler struct {
	tenants *tenant.Manager
}

// NewReportHandler constructs handler.
func NewReportHandler(tenants *tenant.Manager) *ReportHandler {
	return &ReportHandler{tenants: tenants}
}

// SalesSummary handles GET /api/reports/sales. Window defaults to 30 days.
func (h *ReportHandler) SalesSummary(c *fiber.Ctx) error {
	db, _, err := resolveTenant(c, h.tenants)
	if err != nil {
		return err
	}

	days := c.QueryInt("days", 30)
	if days <= 0 || days > 365 {
		return apperrors.NewValidationError("days must be in 1..365", nil)
	}
	since := time.Now().AddDate(0, 0, -days)

	var total int64
	var count int
	err = db.RunQuery(c.UserContext(), func(ctx context.Context, q tenant.Querier) error {
		var err error
		total, count, err = repository.NewOrderRepository(q).SalesTotalSince(ctx, since)
		return err
	})
	if err != nil {
		return apperrors.MapError(err)
	}

	return ok(c, http.StatusOK, fiber.Map{
		"since":       since,
		"paid_orders": count,
		"sales_total": total,
	})
}
