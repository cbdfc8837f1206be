package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/d3ads3c/cafepanel-sub000/internal/api/http/handlers"
	"github.com/d3ads3c/cafepanel-sub000/internal/auth"
	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Session        *handlers.SessionHandler
	Menu           *handlers.MenuHandler
	Customers      *handlers.CustomerHandler
	Orders         *handlers.OrderHandler
	Accounting     *handlers.AccountingHandler
	Staff          *handlers.StaffHandler
	Reports        *handlers.ReportHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Every protected route runs the same
// chain: authenticate, check the permission, then the handler resolves the
// tenant database before touching data.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Post("/auth/login", cfg.Session.Login)
	api.Post("/auth/logout", cfg.Session.Logout)

	protected := api.Group("", cfg.AuthMiddleware.Authenticate)
	protected.Get("/auth/me", cfg.Session.Me)

	menu := protected.Group("", auth.RequirePermission(domain.PermManageMenu))
	menu.Get("/menu", cfg.Menu.ListItems)
	menu.Post("/menu", cfg.Menu.CreateItem)
	menu.Put("/menu/:id", cfg.Menu.UpdateItem)
	menu.Delete("/menu/:id", cfg.Menu.DeleteItem)

	categories := protected.Group("", auth.RequirePermission(domain.PermManageCategories))
	categories.Get("/categories", cfg.Menu.ListCategories)
	categories.Post("/categories", cfg.Menu.CreateCategory)
	categories.Put("/categories/:id", cfg.Menu.UpdateCategory)
	categories.Delete("/categories/:id", cfg.Menu.DeleteCategory)

	customers := protected.Group("", auth.RequirePermission(domain.PermManageCustomers))
	customers.Get("/customers", cfg.Customers.List)
	customers.Get("/customers/:id", cfg.Customers.Get)
	customers.Post("/customers", cfg.Customers.Create)
	customers.Put("/customers/:id", cfg.Customers.Update)
	customers.Delete("/customers/:id", cfg.Customers.Delete)

	orders := protected.Group("", auth.RequirePermission(domain.PermManageOrders))
	orders.Get("/orders", cfg.Orders.List)
	orders.Get("/orders/:id", cfg.Orders.Get)
	orders.Post("/orders", cfg.Orders.Create)
	orders.Patch("/orders/:id/status", cfg.Orders.ChangeStatus)

	accounting := protected.Group("", auth.RequirePermission(domain.PermManageAccounting))
	accounting.Get("/invoices", cfg.Accounting.ListInvoices)
	accounting.Get("/invoices/:id", cfg.Accounting.GetInvoice)
	accounting.Post("/invoices", cfg.Accounting.CreateInvoice)
	accounting.Get("/journals", cfg.Accounting.ListJournals)
	accounting.Get("/journals/:id", cfg.Accounting.GetJournal)
	accounting.Post("/journals", cfg.Accounting.CreateJournal)
	accounting.Get("/accounts", cfg.Accounting.ListAccounts)
	accounting.Get("/accounts/:id", cfg.Accounting.GetAccount)
	accounting.Post("/accounts", cfg.Accounting.CreateAccount)

	staff := protected.Group("", auth.RequirePermission(domain.PermManageUsers))
	staff.Get("/staff", cfg.Staff.List)
	staff.Post("/staff", cfg.Staff.Create)
	staff.Put("/staff/:id", cfg.Staff.Update)

	reports := protected.Group("", auth.RequirePermission(domain.PermViewDashboard))
	reports.Get("/reports/sales", cfg.Reports.SalesSummary)
}
