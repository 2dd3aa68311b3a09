package models

// Customer type labels used by the add/edit forms.
const (
	CustomerTypeNew     = "New"
	CustomerTypeRegular = "Regular"
	CustomerTypeVIP     = "VIP"
)

// Customer is one buyer tracked by the shop. CustomerID is the public
// identifier shown everywhere in the UI (C001, C002, ...); ID is the
// internal row id and never leaves the persistence layer.
type Customer struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	CustomerID string `gorm:"size:20;uniqueIndex;not null" json:"customer_id"`
	Name       string `gorm:"size:120;not null" json:"name"`
	Insta      string `gorm:"size:80" json:"insta"`
	Phone      string `gorm:"size:30" json:"phone"`
	City       string `gorm:"size:80" json:"city"`
	CType      string `gorm:"column:ctype;size:20" json:"ctype"`
	Notes      string `gorm:"type:text" json:"notes"`
}
