package models

// Invoice is written alongside its order in the same transaction. Amount is
// copied from the order's total price.
type Invoice struct {
	ID        int     `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   int     `json:"order_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at" gorm:"type:text"`
}
