package models

const (
	FollowUpPending = "Pending"
	FollowUpDone    = "Done"
)

// FollowUp is a reminder to contact a customer. CustomerName is a
// denormalized copy taken at creation time, not a reference, so it can
// drift from the Customer record it was copied from.
type FollowUp struct {
	ID           uint    `gorm:"primaryKey" json:"-"`
	FuID         string  `gorm:"column:fu_id;size:20;uniqueIndex;not null" json:"fu_id"`
	Date         string  `gorm:"size:10;not null" json:"date"`
	CustomerName string  `gorm:"size:120" json:"customer_name"`
	Insta        string  `gorm:"size:80" json:"insta"`
	Topic        string  `gorm:"size:200" json:"topic"`
	NextDate     *string `gorm:"size:10" json:"next_date"`
	Status       string  `gorm:"size:20" json:"status"`
	Remarks      string  `gorm:"type:text" json:"remarks"`
}
