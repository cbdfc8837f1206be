package domain

import "time"

// Customer is a café patron tracked for orders and invoicing.
type Customer struct {
	ID        int
	Name      string
	Phone     string
	Address   string
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
