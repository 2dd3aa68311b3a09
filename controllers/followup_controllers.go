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

type FollowUpController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewFollowUpController(db *gorm.DB, cfg *config.Config) *FollowUpController {
	return &FollowUpController{DB: db, Cfg: cfg}
}

// ListFollowUps renders the follow-up table ordered by next action date,
// soonest first, entries without a next date at the bottom.
func (fc *FollowUpController) ListFollowUps(c *gin.Context) {
	var followups []models.FollowUp
	if err := fc.DB.Order("next_date IS NULL, next_date ASC").Find(&followups).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, "followups.html", pageData(fc.Cfg, gin.H{
		"rows": followups,
	}))
}

// SaveFollowUp handles every write from the follow-up forms.
func (fc *FollowUpController) SaveFollowUp(c *gin.Context) {
	action := formAction(c)

	date, err := formDate(c, "date")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	nextDate, err := formOptionalDate(c, "next_date")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	fid := strings.TrimSpace(c.PostForm("fu_id"))
	if fid == "" {
		next, err := models.NextFollowUpID(fc.DB)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		fid = next
	} else if !models.ValidID(models.FollowUpIDPrefix, fid) {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("invalid follow-up id %q: expected FNNN", fid))
		return
	}

	var existing models.FollowUp
	err = fc.DB.Where("fu_id = ?", fid).First(&existing).Error
	found := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	switch {
	case found && action == ActionUpdate:
		existing.Date = date
		existing.CustomerName = c.PostForm("customer_name")
		existing.Insta = c.PostForm("insta")
		existing.Topic = c.PostForm("topic")
		existing.NextDate = nextDate
		existing.Status = c.PostForm("status")
		existing.Remarks = c.PostForm("remarks")
		if err := fc.DB.Save(&existing).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	case found && action == ActionDelete:
		if err := fc.DB.Delete(&existing).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		utils.InfoLogger.Printf("Follow-up %s deleted", fid)
	case !found:
		followup := models.FollowUp{
			FuID:         fid,
			Date:         date,
			CustomerName: c.PostForm("customer_name"),
			Insta:        c.PostForm("insta"),
			Topic:        c.PostForm("topic"),
			NextDate:     nextDate,
			Status:       c.PostForm("status"),
			Remarks:      c.PostForm("remarks"),
		}
		if err := fc.DB.Create(&followup).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		utils.InfoLogger.Printf("Follow-up %s created", fid)
	default:
		utils.RespondError(c, http.StatusConflict,
			fmt.Errorf("follow-up %s already exists", fid))
		return
	}

	c.Redirect(http.StatusSeeOther, "/followups")
}

// EditFollowUp renders the pre-filled edit form for one follow-up.
func (fc *FollowUpController) EditFollowUp(c *gin.Context) {
	fid := c.Param("fu_id")

	var followup models.FollowUp
	if err := fc.DB.Where("fu_id = ?", fid).First(&followup).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound,
				fmt.Errorf("follow-up %s not found", fid))
		} else {
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	c.HTML(http.StatusOK, "followup_edit.html", pageData(fc.Cfg, gin.H{
		"f": followup,
	}))
}

// ListFollowUpsJSON returns every follow-up as a plain JSON array.
func (fc *FollowUpController) ListFollowUpsJSON(c *gin.Context) {
	var followups []models.FollowUp
	if err := fc.DB.Order("id ASC").Find(&followups).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, followups)
}
