package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"saree-crm/config"
	"saree-crm/database"
	"saree-crm/models"
	"saree-crm/reports"
	"saree-crm/router"
	"saree-crm/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// TestEndToEndSeedAndDashboard walks the main flow: boot against an
// empty store, seed, check the dashboard numbers, then add a customer
// and confirm the id sequence continues past the seeded rows.
func TestEndToEndSeedAndDashboard(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:e2e?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Customer{}, &models.Order{}, &models.FollowUp{}))

	require.NoError(t, database.Seed(db))
	// A second run must not duplicate the demo rows.
	require.NoError(t, database.Seed(db))

	cfg := &config.Config{
		BusinessName: "Mana Saree Collection",
		DBPath:       "e2e.db",
		Port:         "8080",
		TemplateGlob: "templates/*.html",
	}
	r := router.SetupRouter(db, cfg)

	stats, err := reports.New(db).Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalCustomers)
	assert.EqualValues(t, 3, stats.TotalOrders)
	assert.Equal(t, 7500, stats.TotalSales)
	assert.Equal(t, 2500, stats.AvgOrder)
	assert.EqualValues(t, 0, stats.PendingPayments)
	assert.EqualValues(t, 0, stats.PendingDelivery)
	assert.EqualValues(t, 1, stats.PendingFollowUps)

	// Root redirects to the dashboard, which renders the same numbers.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Mana Saree Collection")
	assert.Contains(t, body, "7,500")
	assert.Contains(t, body, "2,500")

	// A new customer with no id continues the sequence after C003.
	form := url.Values{"name": {"Asha Rao"}, "city": {"Chennai"}}
	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusSeeOther, w.Code)

	var latest models.Customer
	require.NoError(t, db.Order("id DESC").First(&latest).Error)
	assert.Equal(t, "C004", latest.CustomerID)
}
