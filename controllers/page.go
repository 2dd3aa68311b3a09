package controllers

import (
	"github.com/gin-gonic/gin"
	"saree-crm/config"
)

// pageData merges the toolbar context every page needs (business name,
// where the data lives) with the page's own fields.
func pageData(cfg *config.Config, extra gin.H) gin.H {
	data := gin.H{
		"business": cfg.BusinessName,
		"dbfile":   cfg.DBPath,
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}
