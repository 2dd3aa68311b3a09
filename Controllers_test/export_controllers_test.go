package Controllers_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCustomersEmptyTableIsHeaderOnly(t *testing.T) {
	_, r := setupApp(t)

	w := get(r, "/export/customers")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "customers.csv")
	assert.Equal(t, "customer_id,name,insta,phone,city,ctype,notes\n", w.Body.String())
}

func TestExportOrdersHasOneLinePerRow(t *testing.T) {
	_, r := setupApp(t)

	postForm(r, "/orders", url.Values{
		"order_id":        {"O001"},
		"date":            {"2025-05-10"},
		"customer_id":     {"C001"},
		"saree_type":      {"Soft Silk"},
		"amount":          {"2500"},
		"payment_status":  {"Paid"},
		"delivery_status": {"Delivered"},
		"remarks":         {"gift wrap"},
	})
	postForm(r, "/orders", url.Values{
		"order_id": {"O002"},
		"date":     {"2025-05-11"},
		"amount":   {"1800"},
	})

	w := get(r, "/export/orders")
	assert.Equal(t, http.StatusOK, w.Code)

	lines := strings.Split(strings.TrimRight(w.Body.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "order_id,date,customer_id,saree_type,amount,payment_status,delivery_status,remarks", lines[0])
	assert.Equal(t, "O001,2025-05-10,C001,Soft Silk,2500,Paid,Delivered,gift wrap", lines[1])
	assert.Equal(t, "O002,2025-05-11,,,1800,,,", lines[2])
}

func TestExportFollowUpsBlankNextDate(t *testing.T) {
	_, r := setupApp(t)

	postForm(r, "/followups", url.Values{
		"fu_id":         {"F001"},
		"date":          {"2025-07-01"},
		"customer_name": {"Kavya Sharma"},
		"topic":         {"Banarasi"},
		"status":        {"Pending"},
	})

	w := get(r, "/export/followups")
	assert.Equal(t, http.StatusOK, w.Code)

	lines := strings.Split(strings.TrimRight(w.Body.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "fu_id,date,customer_name,insta,topic,next_date,status,remarks", lines[0])
	assert.Equal(t, "F001,2025-07-01,Kavya Sharma,,Banarasi,,Pending,", lines[1])
}

func TestExportAllRedirectsToCustomers(t *testing.T) {
	_, r := setupApp(t)

	w := get(r, "/export/all")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/export/customers", w.Header().Get("Location"))
}
