package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TuanKiet52/APIRadio/models"
)

type CategoryInput struct {
	Name string `json:"name" binding:"required"`
}

// News categories.

func GetNewsCategories(c *gin.Context) {
	var categories []models.NewsCategory
	if err := dbFrom(c).Order("created_at DESC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list categories", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": categories})
}

func GetNewsCategoryByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}

	var category models.NewsCategory
	if err := dbFrom(c).First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": category})
}

func CreateNewsCategory(c *gin.Context) {
	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	category := models.NewsCategory{Name: input.Name}
	if err := dbFrom(c).Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot create category", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "data": category})
}

func UpdateNewsCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}

	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	db := dbFrom(c)

	var category models.NewsCategory
	if err := db.First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	category.Name = input.Name
	if err := db.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot update category", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated", "data": category})
}

// DeleteNewsCategory refuses to remove a category still referenced by
// news items.
func DeleteNewsCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}

	db := dbFrom(c)

	var category models.NewsCategory
	if err := db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot load category", "details": err.Error()})
		return
	}

	var refs int64
	db.Model(&models.News{}).Where("category_id = ?", id).Count(&refs)
	if refs > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Category is still referenced by news items", "references": refs})
		return
	}

	if err := db.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot delete category", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

// Podcast categories.

func GetPodcastCategories(c *gin.Context) {
	var categories []models.PodcastCategory
	if err := dbFrom(c).Order("created_at DESC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list categories", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": categories})
}

func GetPodcastCategoryByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}

	var category models.PodcastCategory
	if err := dbFrom(c).First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": category})
}

func CreatePodcastCategory(c *gin.Context) {
	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	category := models.PodcastCategory{Name: input.Name}
	if err := dbFrom(c).Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot create category", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "data": category})
}

func UpdatePodcastCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}

	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	db := dbFrom(c)

	var category models.PodcastCategory
	if err := db.First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	category.Name = input.Name
	if err := db.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot update category", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated", "data": category})
}

func DeletePodcastCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}

	db := dbFrom(c)

	var category models.PodcastCategory
	if err := db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot load category", "details": err.Error()})
		return
	}

	var refs int64
	db.Model(&models.Podcast{}).Where("category_id = ?", id).Count(&refs)
	if refs > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Category is still referenced by podcasts", "references": refs})
		return
	}

	if err := db.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot delete category", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
