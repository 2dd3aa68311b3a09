package models

const (
	PaymentPaid    = "Paid"
	PaymentPending = "Pending"

	DeliveryPending   = "Pending"
	DeliveryShipped   = "Shipped"
	DeliveryDelivered = "Delivered"
)

// Order is a single saree sale. CustomerID is a soft reference to a
// Customer's public id: nothing enforces that the customer still exists,
// and deleting a customer leaves their orders untouched.
//
// Date is stored as a validated YYYY-MM-DD string so the reporting
// queries can group on substr(date, 1, 7) and exports stay byte-stable.
type Order struct {
	ID             uint   `gorm:"primaryKey" json:"-"`
	OrderID        string `gorm:"size:20;uniqueIndex;not null" json:"order_id"`
	Date           string `gorm:"size:10;not null" json:"date"`
	CustomerID     string `gorm:"size:20" json:"customer_id"`
	SareeType      string `gorm:"size:120" json:"saree_type"`
	Amount         int    `json:"amount"`
	PaymentStatus  string `gorm:"size:20" json:"payment_status"`
	DeliveryStatus string `gorm:"size:30" json:"delivery_status"`
	Remarks        string `gorm:"type:text" json:"remarks"`
}
