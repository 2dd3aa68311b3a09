package router

import (
	"html/template"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"saree-crm/config"
	"saree-crm/controllers"
	"saree-crm/middlewares"
	"saree-crm/utils"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
	}))

	r.SetFuncMap(template.FuncMap{
		"rupees": utils.FormatAmount,
	})
	r.LoadHTMLGlob(cfg.TemplateGlob)

	customerCtrl := controllers.NewCustomerController(db, cfg)
	orderCtrl := controllers.NewOrderController(db, cfg)
	followupCtrl := controllers.NewFollowUpController(db, cfg)
	dashboardCtrl := controllers.NewDashboardController(db, cfg)
	exportCtrl := controllers.NewExportController(db)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dashboard")
	})

	r.GET("/customers", customerCtrl.ListCustomers)
	r.POST("/customers", customerCtrl.SaveCustomer)
	r.GET("/customers/edit/:customer_id", customerCtrl.EditCustomer)

	r.GET("/orders", orderCtrl.ListOrders)
	r.POST("/orders", orderCtrl.SaveOrder)
	r.GET("/orders/edit/:order_id", orderCtrl.EditOrder)

	r.GET("/followups", followupCtrl.ListFollowUps)
	r.POST("/followups", followupCtrl.SaveFollowUp)
	r.GET("/followups/edit/:fu_id", followupCtrl.EditFollowUp)

	r.GET("/dashboard", dashboardCtrl.ShowDashboard)

	export := r.Group("/export")
	{
		export.GET("/customers", exportCtrl.ExportCustomers)
		export.GET("/orders", exportCtrl.ExportOrders)
		export.GET("/followups", exportCtrl.ExportFollowUps)
		export.GET("/all", exportCtrl.ExportAll)
	}

	api := r.Group("/api")
	{
		api.GET("/customers", customerCtrl.ListCustomersJSON)
		api.GET("/orders", orderCtrl.ListOrdersJSON)
		api.GET("/followups", followupCtrl.ListFollowUpsJSON)
	}

	return r
}
