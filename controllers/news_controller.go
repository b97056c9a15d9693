package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/TuanKiet52/APIRadio/docview"
	"github.com/TuanKiet52/APIRadio/models"
)

// GetNews lists news items, optionally filtered by category.
func GetNews(c *gin.Context) {
	query := dbFrom(c).Model(&models.News{}).Preload("Category")

	if categoryID := c.Query("category"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var items []models.News
	if err := query.Order("created_at DESC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list news", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func GetNewsByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid news id"})
		return
	}

	var item models.News
	if err := dbFrom(c).Preload("Category").First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": item})
}

// CreateNews accepts a multipart form; the image comes either from an
// uploaded file or a direct image_url field.
func CreateNews(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	categoryID, err := strconv.ParseUint(c.PostForm("category_id"), 10, 64)
	if err != nil || categoryID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category_id is required"})
		return
	}

	imageURL, err := resolveMediaURL(c, "image", "image_url", "news")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot save image", "details": err.Error()})
		return
	}

	item := models.News{
		Title:      title,
		Slug:       slug.Make(title),
		Content:    c.PostForm("content"),
		ImageURL:   imageURL,
		CategoryID: uint(categoryID),
	}

	if err := dbFrom(c).Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot create news", "details": err.Error()})
		return
	}

	docsFrom(c).Upsert(c.Request.Context(), docview.CollectionNews, item.ID, item)
	c.JSON(http.StatusCreated, gin.H{"message": "News created", "data": item})
}

func UpdateNews(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid news id"})
		return
	}

	var input struct {
		Title      *string `json:"title"`
		Content    *string `json:"content"`
		ImageURL   *string `json:"image_url"`
		CategoryID *uint   `json:"category_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := dbFrom(c)

	var item models.News
	if err := db.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}

	if input.Title != nil {
		item.Title = *input.Title
		item.Slug = slug.Make(*input.Title)
	}
	if input.Content != nil {
		item.Content = *input.Content
	}
	if input.ImageURL != nil {
		item.ImageURL = *input.ImageURL
	}
	if input.CategoryID != nil {
		item.CategoryID = *input.CategoryID
	}

	if err := db.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot update news", "details": err.Error()})
		return
	}

	docsFrom(c).Upsert(c.Request.Context(), docview.CollectionNews, item.ID, item)
	c.JSON(http.StatusOK, gin.H{"message": "News updated", "data": item})
}

func DeleteNews(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid news id"})
		return
	}

	db := dbFrom(c)

	var item models.News
	if err := db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot load news", "details": err.Error()})
		return
	}

	if err := db.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot delete news", "details": err.Error()})
		return
	}

	docsFrom(c).Remove(c.Request.Context(), docview.CollectionNews, item.ID)
	c.JSON(http.StatusOK, gin.H{"message": "News deleted"})
}
