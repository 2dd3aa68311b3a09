package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saree-crm/models"
)

func TestOrderCreateDefaultsDateAndAmount(t *testing.T) {
	db, r := setupApp(t)

	// Neither date nor amount submitted.
	w := postForm(r, "/orders", url.Values{
		"customer_id":     {"C001"},
		"saree_type":      {"Soft Silk"},
		"payment_status":  {"Pending"},
		"delivery_status": {"Pending"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/orders", w.Header().Get("Location"))

	var order models.Order
	require.NoError(t, db.First(&order).Error)
	assert.Equal(t, "O001", order.OrderID)
	assert.Equal(t, time.Now().Format("2006-01-02"), order.Date)
	assert.Equal(t, 0, order.Amount)
}

func TestOrderCreateRejectsMalformedDate(t *testing.T) {
	_, r := setupApp(t)

	w := postForm(r, "/orders", url.Values{
		"customer_id": {"C001"},
		"date":        {"05-10-2025"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderCreateRejectsMalformedAmount(t *testing.T) {
	_, r := setupApp(t)

	w := postForm(r, "/orders", url.Values{
		"customer_id": {"C001"},
		"amount":      {"two thousand"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderUpdateOverwritesEveryField(t *testing.T) {
	db, r := setupApp(t)

	postForm(r, "/orders", url.Values{
		"order_id":        {"O001"},
		"date":            {"2025-05-10"},
		"customer_id":     {"C001"},
		"saree_type":      {"Soft Silk"},
		"amount":          {"2500"},
		"payment_status":  {"Pending"},
		"delivery_status": {"Pending"},
		"remarks":         {"gift wrap"},
	})

	w := postForm(r, "/orders", url.Values{
		"order_id":        {"O001"},
		"_method":         {"PUT"},
		"date":            {"2025-05-12"},
		"customer_id":     {"C002"},
		"saree_type":      {"Banarasi"},
		"amount":          {"3200"},
		"payment_status":  {"Paid"},
		"delivery_status": {"Delivered"},
		"remarks":         {""},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	var order models.Order
	require.NoError(t, db.Where("order_id = ?", "O001").First(&order).Error)
	assert.Equal(t, "2025-05-12", order.Date)
	assert.Equal(t, "C002", order.CustomerID)
	assert.Equal(t, "Banarasi", order.SareeType)
	assert.Equal(t, 3200, order.Amount)
	assert.Equal(t, "Paid", order.PaymentStatus)
	assert.Equal(t, "Delivered", order.DeliveryStatus)
	assert.Equal(t, "", order.Remarks)
}

func TestOrderDeleteRemovesRow(t *testing.T) {
	db, r := setupApp(t)

	postForm(r, "/orders", url.Values{"order_id": {"O001"}, "amount": {"100"}})

	w := postForm(r, "/orders", url.Values{"order_id": {"O001"}, "_method": {"DELETE"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	w = get(r, "/orders/edit/O001")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderListJSONMostRecentFirst(t *testing.T) {
	_, r := setupApp(t)

	postForm(r, "/orders", url.Values{"order_id": {"O001"}, "date": {"2025-05-10"}, "amount": {"100"}})
	postForm(r, "/orders", url.Values{"order_id": {"O002"}, "date": {"2025-05-11"}, "amount": {"200"}})

	w := get(r, "/api/orders")
	assert.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 2)
	assert.Equal(t, "O002", orders[0].OrderID)
	assert.Equal(t, "O001", orders[1].OrderID)
}

func TestOrderListPageShowsCustomerSelect(t *testing.T) {
	_, r := setupApp(t)

	postForm(r, "/customers", url.Values{"customer_id": {"C001"}, "name": {"Priya Reddy"}})

	w := get(r, "/orders")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "C001 - Priya Reddy")
}
