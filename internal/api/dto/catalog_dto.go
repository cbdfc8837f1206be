package dto

import (
	"time"

	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
)

// CategoryRequest payload for create/update.
type CategoryRequest struct {
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

// CategoryResponse response.
type CategoryResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MenuItemRequest payload for create/update.
type MenuItemRequest struct {
	CategoryID  int    `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"image_url"`
	Available   *bool  `json:"available"`
}

// MenuItemResponse response.
type MenuItemResponse struct {
	ID          int       `json:"id"`
	CategoryID  int       `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	ImageURL    string    `json:"image_url"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCategoryResponse maps a domain category.
func NewCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		SortOrder: c.SortOrder,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// NewMenuItemResponse maps a domain menu item.
func NewMenuItemResponse(i domain.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          i.ID,
		CategoryID:  i.CategoryID,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		ImageURL:    i.ImageURL,
		Available:   i.Available,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
