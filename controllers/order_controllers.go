package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"saree-crm/config"
	"saree-crm/models"
	"saree-crm/utils"
)

type OrderController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewOrderController(db *gorm.DB, cfg *config.Config) *OrderController {
	return &OrderController{DB: db, Cfg: cfg}
}

// ListOrders renders the order table, most recent first. The add form
// needs the customer list for its select box.
func (oc *OrderController) ListOrders(c *gin.Context) {
	var orders []models.Order
	if err := oc.DB.Order("id DESC").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var customers []models.Customer
	if err := oc.DB.Find(&customers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, "orders.html", pageData(oc.Cfg, gin.H{
		"rows":      orders,
		"customers": customers,
	}))
}

// SaveOrder handles every write from the order forms. Date and amount
// are coerced before the row is resolved, so a malformed value fails the
// whole request with 400 no matter which action was asked for.
func (oc *OrderController) SaveOrder(c *gin.Context) {
	action := formAction(c)

	date, err := formDate(c, "date")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	amount, err := formAmount(c, "amount")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	oid := strings.TrimSpace(c.PostForm("order_id"))
	if oid == "" {
		next, err := models.NextOrderID(oc.DB)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		oid = next
	} else if !models.ValidID(models.OrderIDPrefix, oid) {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("invalid order id %q: expected ONNN", oid))
		return
	}

	var existing models.Order
	err = oc.DB.Where("order_id = ?", oid).First(&existing).Error
	found := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	switch {
	case found && action == ActionUpdate:
		existing.Date = date
		existing.CustomerID = c.PostForm("customer_id")
		existing.SareeType = c.PostForm("saree_type")
		existing.Amount = amount
		existing.PaymentStatus = c.PostForm("payment_status")
		existing.DeliveryStatus = c.PostForm("delivery_status")
		existing.Remarks = c.PostForm("remarks")
		if err := oc.DB.Save(&existing).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	case found && action == ActionDelete:
		if err := oc.DB.Delete(&existing).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		utils.InfoLogger.Printf("Order %s deleted", oid)
	case !found:
		order := models.Order{
			OrderID:        oid,
			Date:           date,
			CustomerID:     c.PostForm("customer_id"),
			SareeType:      c.PostForm("saree_type"),
			Amount:         amount,
			PaymentStatus:  c.PostForm("payment_status"),
			DeliveryStatus: c.PostForm("delivery_status"),
			Remarks:        c.PostForm("remarks"),
		}
		if err := oc.DB.Create(&order).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		utils.InfoLogger.Printf("Order %s created (amount %d)", oid, amount)
	default:
		utils.RespondError(c, http.StatusConflict,
			fmt.Errorf("order %s already exists", oid))
		return
	}

	c.Redirect(http.StatusSeeOther, "/orders")
}

// EditOrder renders the pre-filled edit form for one order.
func (oc *OrderController) EditOrder(c *gin.Context) {
	oid := c.Param("order_id")

	var order models.Order
	if err := oc.DB.Where("order_id = ?", oid).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound,
				fmt.Errorf("order %s not found", oid))
		} else {
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	var customers []models.Customer
	if err := oc.DB.Find(&customers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, "order_edit.html", pageData(oc.Cfg, gin.H{
		"o":         order,
		"customers": customers,
	}))
}

// ListOrdersJSON returns every order as a plain JSON array, most recent
// first.
func (oc *OrderController) ListOrdersJSON(c *gin.Context) {
	var orders []models.Order
	if err := oc.DB.Order("id DESC").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
