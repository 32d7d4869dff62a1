package models

// Customer represents a customer record. Customers are immutable after
// creation; no update path exists.
type Customer struct {
	ID        int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string `json:"name" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,max=30"`
	CreatedAt string `json:"created_at" gorm:"type:text"` // ISO-8601, set on insert
}
