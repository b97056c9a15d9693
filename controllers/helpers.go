package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TuanKiet52/APIRadio/docview"
	"github.com/TuanKiet52/APIRadio/utils"
)

func dbFrom(c *gin.Context) *gorm.DB {
	return c.MustGet("db").(*gorm.DB)
}

func docsFrom(c *gin.Context) *docview.Projector {
	return c.MustGet("docs").(*docview.Projector)
}

// idParam parses the :id route segment as a positive integer.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// resolveMediaURL picks the stored media reference for a multipart form:
// an uploaded file with nonzero size wins over the direct URL field.
func resolveMediaURL(c *gin.Context, fileField, urlField, category string) (string, error) {
	file, err := c.FormFile(fileField)
	if err == nil && file != nil && file.Size > 0 {
		return utils.SaveUpload(c, file, category)
	}
	return c.PostForm(urlField), nil
}
