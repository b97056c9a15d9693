package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TuanKiet52/APIRadio/utils"
)

// Upload stores a standalone file and returns its public path. The
// category query selects the /images subfolder.
func Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil || file == nil || file.Size == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	category := c.DefaultQuery("category", "misc")

	url, err := utils.SaveUpload(c, file, category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot save file", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
