package models

// Product represents a product in the catalog. Stock is only ever mutated
// by a successful order, which decrements it by the ordered quantity.
type Product struct {
	ID        int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string  `json:"name" validate:"required,min=1,max=100"`
	SKU       string  `json:"sku" gorm:"column:sku" validate:"required,max=64"`
	Price     float64 `json:"price" validate:"gte=0"`
	Stock     int     `json:"stock" validate:"gte=0"`
	CreatedAt string  `json:"created_at" gorm:"type:text"`
}
