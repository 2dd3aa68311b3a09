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

type CustomerController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCustomerController(db *gorm.DB, cfg *config.Config) *CustomerController {
	return &CustomerController{DB: db, Cfg: cfg}
}

// ListCustomers renders the customer table, most recent first, with the
// add form on top.
func (cc *CustomerController) ListCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := cc.DB.Order("id DESC").Find(&customers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, "customers.html", pageData(cc.Cfg, gin.H{
		"rows": customers,
	}))
}

// SaveCustomer handles every write from the customer forms. The action
// resolves from the _method override; the target row resolves from the
// submitted public id (generated when the add form leaves it blank).
// A row that exists is updated or deleted per the action; a missing row
// is inserted from the submitted fields.
func (cc *CustomerController) SaveCustomer(c *gin.Context) {
	action := formAction(c)
	cid := strings.TrimSpace(c.PostForm("customer_id"))

	if cid == "" {
		next, err := models.NextCustomerID(cc.DB)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		cid = next
	} else if !models.ValidID(models.CustomerIDPrefix, cid) {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("invalid customer id %q: expected CNNN", cid))
		return
	}

	var existing models.Customer
	err := cc.DB.Where("customer_id = ?", cid).First(&existing).Error
	found := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	switch {
	case found && action == ActionUpdate:
		existing.Name = c.PostForm("name")
		existing.Insta = c.PostForm("insta")
		existing.Phone = c.PostForm("phone")
		existing.City = c.PostForm("city")
		existing.CType = c.PostForm("ctype")
		existing.Notes = c.PostForm("notes")
		if err := cc.DB.Save(&existing).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	case found && action == ActionDelete:
		if err := cc.DB.Delete(&existing).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		utils.InfoLogger.Printf("Customer %s deleted", cid)
	case !found:
		customer := models.Customer{
			CustomerID: cid,
			Name:       c.PostForm("name"),
			Insta:      c.PostForm("insta"),
			Phone:      c.PostForm("phone"),
			City:       c.PostForm("city"),
			CType:      c.PostForm("ctype"),
			Notes:      c.PostForm("notes"),
		}
		if err := cc.DB.Create(&customer).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		utils.InfoLogger.Printf("Customer %s created", cid)
	default:
		// Create against an id that is already taken.
		utils.RespondError(c, http.StatusConflict,
			fmt.Errorf("customer %s already exists", cid))
		return
	}

	c.Redirect(http.StatusSeeOther, "/customers")
}

// EditCustomer renders the pre-filled edit form for one customer.
func (cc *CustomerController) EditCustomer(c *gin.Context) {
	cid := c.Param("customer_id")

	var customer models.Customer
	if err := cc.DB.Where("customer_id = ?", cid).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound,
				fmt.Errorf("customer %s not found", cid))
		} else {
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	c.HTML(http.StatusOK, "customer_edit.html", pageData(cc.Cfg, gin.H{
		"c": customer,
	}))
}

// ListCustomersJSON returns every customer as a plain JSON array.
func (cc *CustomerController) ListCustomersJSON(c *gin.Context) {
	var customers []models.Customer
	if err := cc.DB.Order("id ASC").Find(&customers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}
