// Package reports computes the dashboard aggregates as plain data. It is
// recomputed in full on every request; nothing is cached or maintained
// incrementally.
package reports

import (
	"errors"

	"gorm.io/gorm"

	"saree-crm/models"
)

type Reporter struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Reporter {
	return &Reporter{DB: db}
}

// MonthlySale is one calendar month's order total. Months with no orders
// are absent from the series, not zero-filled.
type MonthlySale struct {
	Month  string `json:"month"`
	Amount int    `json:"amount"`
}

type SareeTypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type CustomerSpend struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

type DashboardStats struct {
	TotalCustomers   int64 `json:"total_customers"`
	TotalOrders      int64 `json:"total_orders"`
	TotalSales       int   `json:"total_sales"`
	AvgOrder         int   `json:"avg_order"`
	PendingPayments  int64 `json:"pending_payments"`
	PendingDelivery  int64 `json:"pending_delivery"`
	PendingFollowUps int64 `json:"pending_followups"`

	Monthly      []MonthlySale    `json:"monthly"`
	SareeTypes   []SareeTypeCount `json:"saree_types"`
	TopCustomers []CustomerSpend  `json:"top_customers"`
}

// Stats runs every dashboard query against the current table contents.
func (r *Reporter) Stats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := r.DB.Model(&models.Customer{}).Count(&stats.TotalCustomers).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}

	if err := r.DB.Model(&models.Order{}).
		Select("COALESCE(SUM(amount), 0)").
		Row().Scan(&stats.TotalSales); err != nil {
		return nil, err
	}
	if stats.TotalOrders > 0 {
		stats.AvgOrder = stats.TotalSales / int(stats.TotalOrders)
	}

	if err := r.DB.Model(&models.Order{}).
		Where("payment_status = ?", models.PaymentPending).
		Count(&stats.PendingPayments).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&models.Order{}).
		Where("delivery_status = ?", models.DeliveryPending).
		Count(&stats.PendingDelivery).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&models.FollowUp{}).
		Where("status = ?", models.FollowUpPending).
		Count(&stats.PendingFollowUps).Error; err != nil {
		return nil, err
	}

	var err error
	if stats.Monthly, err = r.monthlySales(); err != nil {
		return nil, err
	}
	if stats.SareeTypes, err = r.sareeTypeDistribution(); err != nil {
		return nil, err
	}
	if stats.TopCustomers, err = r.topCustomers(5); err != nil {
		return nil, err
	}

	return stats, nil
}

// monthlySales sums order amounts per calendar month, chronologically.
// Dates are stored as YYYY-MM-DD, so the month key is a substring.
func (r *Reporter) monthlySales() ([]MonthlySale, error) {
	monthly := []MonthlySale{}
	err := r.DB.Model(&models.Order{}).
		Select("substr(date, 1, 7) AS month, SUM(amount) AS amount").
		Group("month").
		Order("month ASC").
		Scan(&monthly).Error
	return monthly, err
}

// sareeTypeDistribution counts orders per saree type. Rows without a
// type are labelled Unknown, so the counts always sum to the order total.
func (r *Reporter) sareeTypeDistribution() ([]SareeTypeCount, error) {
	dist := []SareeTypeCount{}
	err := r.DB.Model(&models.Order{}).
		Select("saree_type AS type, COUNT(id) AS count").
		Group("saree_type").
		Scan(&dist).Error
	if err != nil {
		return nil, err
	}
	for i := range dist {
		if dist[i].Type == "" {
			dist[i].Type = "Unknown"
		}
	}
	return dist, nil
}

// topCustomers ranks customers by their summed order amounts. The name
// comes from a secondary lookup; when the customer record is gone the
// raw customer id stands in, since orders keep only a soft reference.
func (r *Reporter) topCustomers(limit int) ([]CustomerSpend, error) {
	var rows []struct {
		CustomerID string
		Amount     int
	}
	err := r.DB.Model(&models.Order{}).
		Select("customer_id, SUM(amount) AS amount").
		Group("customer_id").
		Order("amount DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	top := make([]CustomerSpend, 0, len(rows))
	for _, row := range rows {
		name := row.CustomerID
		var customer models.Customer
		err := r.DB.Where("customer_id = ?", row.CustomerID).First(&customer).Error
		if err == nil {
			name = customer.Name
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		top = append(top, CustomerSpend{Name: name, Amount: row.Amount})
	}
	return top, nil
}
