package models

// Order references a customer and a product. TotalPrice is computed from the
// product's unit price at creation time and frozen; Status starts at
// "pending" and is never transitioned by this system.
type Order struct {
	ID         int     `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerID int     `json:"customer_id"`
	ProductID  int     `json:"product_id"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at" gorm:"type:text"`
}

// StatusPending is the initial (and only) order/invoice status.
const StatusPending = "pending"
