package domain

import "time"

// Category groups menu items for display and reporting.
type Category struct {
	ID        int
	Name      string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MenuItem is one sellable product on the café menu.
type MenuItem struct {
	ID          int
	CategoryID  int
	Name        string
	Description string
	Price       int64 // smallest currency unit
	ImageURL    string
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
