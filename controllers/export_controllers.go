package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"saree-crm/models"
	"saree-crm/utils"
)

type ExportController struct {
	DB *gorm.DB
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

// ExportCustomers downloads every customer as CSV.
func (ec *ExportController) ExportCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := ec.DB.Order("id ASC").Find(&customers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	records := [][]string{
		{"customer_id", "name", "insta", "phone", "city", "ctype", "notes"},
	}
	for _, r := range customers {
		records = append(records, []string{
			r.CustomerID, r.Name, r.Insta, r.Phone, r.City, r.CType, r.Notes,
		})
	}
	writeCSV(c, "customers.csv", records)
}

// ExportOrders downloads every order as CSV.
func (ec *ExportController) ExportOrders(c *gin.Context) {
	var orders []models.Order
	if err := ec.DB.Order("id ASC").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	records := [][]string{
		{"order_id", "date", "customer_id", "saree_type", "amount", "payment_status", "delivery_status", "remarks"},
	}
	for _, r := range orders {
		records = append(records, []string{
			r.OrderID, r.Date, r.CustomerID, r.SareeType,
			fmt.Sprintf("%d", r.Amount), r.PaymentStatus, r.DeliveryStatus, r.Remarks,
		})
	}
	writeCSV(c, "orders.csv", records)
}

// ExportFollowUps downloads every follow-up as CSV.
func (ec *ExportController) ExportFollowUps(c *gin.Context) {
	var followups []models.FollowUp
	if err := ec.DB.Order("id ASC").Find(&followups).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	records := [][]string{
		{"fu_id", "date", "customer_name", "insta", "topic", "next_date", "status", "remarks"},
	}
	for _, r := range followups {
		nextDate := ""
		if r.NextDate != nil {
			nextDate = *r.NextDate
		}
		records = append(records, []string{
			r.FuID, r.Date, r.CustomerName, r.Insta, r.Topic, nextDate, r.Status, r.Remarks,
		})
	}
	writeCSV(c, "followups.csv", records)
}

// ExportAll only starts the customer download. The navbar button says
// "Export CSVs" but has always behaved this way.
func (ec *ExportController) ExportAll(c *gin.Context) {
	c.Redirect(http.StatusFound, "/export/customers")
}

func writeCSV(c *gin.Context, filename string, records [][]string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	w := csv.NewWriter(c.Writer)
	if err := w.WriteAll(records); err != nil {
		utils.ErrorLogger.Printf("csv export %s: %v", filename, err)
	}
}
