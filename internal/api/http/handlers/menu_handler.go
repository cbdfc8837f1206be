package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/d3ads3c/cafepanel-sub000/internal/api/dto"
	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
	"github.com/d3ads3c/cafepanel-sub000/internal/repository"
	"github.com/d3ads3c/cafepanel-sub000/internal/tenant"
	apperrors "github.com/d3ads3c/cafepanel-sub000/pkg/util"
)

// MenuHandler exposes category and menu item CRUD for the caller's café.
type MenuHandler struct {
	tenants *tenant.Manager
}

// NewMenuHandler constructs handler.
func NewMenuHandler(tenants *tenant.Manager) *MenuHandler {
	return &MenuHandler{tenants: tenants}
}

// ListCategories handles GET /api/categories.
func (h *MenuHandler) ListCategories(c *fiber.Ctx) error {
	db, _, err := resolveTenant(c, h.tenants)
	if err != nil {
		return err
	}

	categories, err := repository.NewCategoryRepository(db.Pool()).List(c.UserContext())
	if err != nil {
		return apperrors.MapError(err)
	}

	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		resp = append(resp, dto.NewCategoryResponse(category))
	}
	return ok(c, http.StatusOK, resp)
}

// CreateCategory handles POST /api/categories.
func (h *MenuHandler) CreateCategory(c *fiber.Ctx) error {
	db, _, err := resolveTenant(c, h.tenants)
	if err != nil {
		return err
	}

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	category := &domain.Category{Name: req.Name, SortOrder: req.SortOrder}
	if err := repository.NewCategoryRepository(db.Pool()).Create(c.UserContext(), category); err != nil {
		return apperrors.MapError(err)
	}
	return ok(c, http.StatusCreated, dto.NewCategoryResponse(*category))
}

// UpdateCategory handles PUT /api/categories/:id.
func (h *MenuHandler) UpdateCategory(c *fiber.Ctx) error {
	db, _, err := resolveTenant(c, h.tenants)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid id", nil)
	}

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	category := &domain.Category{ID: id, Name: req.Name, SortOrder: req.SortOrder}
	if err := repository.NewCategoryRepository(db.Pool()).Update(c.UserContext(), category); err != nil {
		return apperrors.MapError(err)
	}
	return ok(c, http.StatusOK, dto.NewCategoryResponse(*category))
}

// DeleteCategory handles DELETE /api/categories/:id.
func (h *MenuHandler) DeleteCategory(c *fiber.Ctx) error {
	db, _, err := resolveTenant(c, h.tenants)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid id", nil)
	}

	if err := repository.NewCategoryRepository(db.Pool()).Delete(c.UserContext(), id); err != nil {
		return apperrors.MapError(err)
	}
	return ok(c, http.StatusOK, fiber.Map{"deleted": id})
}

// ListItems handles GET /api/menu.
func (h *MenuHandler) ListItems(c *fiber.Ctx) error {
	db, _, err := resolveTenant(c, h.tenants)
	if err != nil {
		return err
	}

	var categoryID *int
	if raw := c.QueryInt("category_id", -1); raw >= 0 {
		categoryID = &raw
	}

	items, err := repository.NewMenuRepository(db.Pool()).List(c.UserContext(), categoryID)
	if err != nil {
		return apperrors.MapError(err)
	}

	resp := make([]dto.MenuItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, dto.NewMenuItemResponse(item))
	}
	return ok(c, http.StatusOK, resp)
}

// CreateItem handles POST /api/menu.
func (h *MenuHandler) CreateItem(c *fiber.Ctx) error {
	db, _, err := resolveTenant(c, h.tenants)
	if err != nil {
		return err
	}

	var req dto.MenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Price < 0 {
		return apperrors.NewValidationError("name and non-negative price required", nil)
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	item := &domain.MenuItem{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Available:   available,
	}
	if err := repository.NewMenuRepository(db.Pool()).Create(c.UserContext(), item); err != nil {
		return apperrors.MapError(err)
	}
	return ok(c, http.StatusCreated, dto.NewMenuItemResponse(*item))
}

// UpdateItem handles PUT /api/menu/:id.
func (h *MenuHandler) UpdateItem(c *fiber.Ctx) error {
	db, _, err := resolveTenant(c, h.tenants)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid id", nil)
	}

	repo := repository.NewMenuRepository(db.Pool())
	item, err := repo.GetByID(c.UserContext(), id)
	if err != nil {
		return apperrors.MapError(err)
	}

	var req dto.MenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.CategoryID != 0 {
		item.CategoryID = req.CategoryID
	}
	if req.Price >= 0 {
		item.Price = req.Price
	}
	item.Description = req.Description
	item.ImageURL = req.ImageURL
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := repo.Update(c.UserContext(), item); err != nil {
		return apperrors.MapError(err)
	}
	return ok(c, http.StatusOK, dto.NewMenuItemResponse(*item))
}

// DeleteItem handles DELETE /api/menu/:id.
func (h *MenuHandler) DeleteItem(c *fiber.Ctx) error {
	db, _, err := resolveTenant(c, h.tenants)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid id", nil)
	}

	if err := repository.NewMenuRepository(db.Pool()).Delete(c.UserContext(), id); err != nil {
		return apperrors.MapError(err)
	}
	return ok(c, http.StatusOK, fiber.Map{"deleted": id})
}
