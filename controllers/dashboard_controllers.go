package controllers

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"saree-crm/config"
	"saree-crm/reports"
	"saree-crm/utils"
)

type DashboardController struct {
	Reports *reports.Reporter
	Cfg     *config.Config
}

func NewDashboardController(db *gorm.DB, cfg *config.Config) *DashboardController {
	return &DashboardController{Reports: reports.New(db), Cfg: cfg}
}

// ShowDashboard renders the KPI cards and charts. The chart series are
// marshalled here and handed to the inline Chart.js script as-is; percent
// labels for the pie are derived client-side from the raw counts.
func (dc *DashboardController) ShowDashboard(c *gin.Context) {
	stats, err := dc.Reports.Stats()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	monthlyJSON, err := json.Marshal(stats.Monthly)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	sareeJSON, err := json.Marshal(stats.SareeTypes)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	topJSON, err := json.Marshal(stats.TopCustomers)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", pageData(dc.Cfg, gin.H{
		"stats":       stats,
		"monthlyJSON": template.JS(monthlyJSON),
		"sareeJSON":   template.JS(sareeJSON),
		"topJSON":     template.JS(topJSON),
	}))
}
