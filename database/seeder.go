package database

import (
	"time"

	"gorm.io/gorm"

	"saree-crm/models"
)

// Seed inserts the demo dataset on first run. A store that already has
// customers is left untouched, so rerunning the binary is safe.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Customer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	today := time.Now()
	day := func(offset int) string {
		return today.AddDate(0, 0, offset).Format("2006-01-02")
	}
	nextDate := day(2)

	return db.Transaction(func(tx *gorm.DB) error {
		customers := []models.Customer{
			{CustomerID: "C001", Name: "Priya Reddy", Insta: "@priyareddy", Phone: "9876543210", City: "Hyderabad", CType: models.CustomerTypeRegular, Notes: "Loves soft silk sarees"},
			{CustomerID: "C002", Name: "Kavya Sharma", Insta: "@kavya.s", Phone: "9988776655", City: "Bengaluru", CType: models.CustomerTypeNew, Notes: "Asked about Banarasi"},
			{CustomerID: "C003", Name: "Meena Patel", Insta: "@meenap", Phone: "9123456780", City: "Mumbai", CType: models.CustomerTypeVIP, Notes: "Prefers pastel colors"},
		}
		if err := tx.Create(&customers).Error; err != nil {
			return err
		}

		orders := []models.Order{
			{OrderID: "O001", Date: day(-60), CustomerID: "C001", SareeType: "Soft Silk", Amount: 2500, PaymentStatus: models.PaymentPaid, DeliveryStatus: models.DeliveryDelivered},
			{OrderID: "O002", Date: day(-45), CustomerID: "C003", SareeType: "Chiffon Floral", Amount: 1800, PaymentStatus: models.PaymentPaid, DeliveryStatus: models.DeliveryDelivered},
			{OrderID: "O003", Date: day(-30), CustomerID: "C002", SareeType: "Banarasi", Amount: 3200, PaymentStatus: models.PaymentPaid, DeliveryStatus: models.DeliveryDelivered},
		}
		if err := tx.Create(&orders).Error; err != nil {
			return err
		}

		followups := []models.FollowUp{
			{FuID: "F001", Date: day(-10), CustomerName: "Kavya Sharma", Insta: "@kavya.s", Topic: "Interested in Banarasi saree", NextDate: &nextDate, Status: models.FollowUpPending, Remarks: "Send new arrivals images"},
		}
		return tx.Create(&followups).Error
	})
}
