package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TuanKiet52/APIRadio/docview"
	"github.com/TuanKiet52/APIRadio/models"
)

func GetGalleries(c *gin.Context) {
	var galleries []models.Gallery
	if err := dbFrom(c).Preload("Images").Order("created_at DESC").Find(&galleries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list galleries", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": galleries})
}

func GetGalleryByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gallery id"})
		return
	}

	var gallery models.Gallery
	if err := dbFrom(c).Preload("Images").First(&gallery, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gallery not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gallery})
}

func CreateGallery(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	coverURL, err := resolveMediaURL(c, "cover", "cover_url", "galleries")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot save cover", "details": err.Error()})
		return
	}

	gallery := models.Gallery{Title: title, CoverURL: coverURL}
	if err := dbFrom(c).Create(&gallery).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot create gallery", "details": err.Error()})
		return
	}

	docsFrom(c).Upsert(c.Request.Context(), docview.CollectionGalleries, gallery.ID, gallery)
	c.JSON(http.StatusCreated, gin.H{"message": "Gallery created", "data": gallery})
}

// AddGalleryImage appends one image to an existing gallery.
func AddGalleryImage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gallery id"})
		return
	}

	db := dbFrom(c)

	var gallery models.Gallery
	if err := db.First(&gallery, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gallery not found"})
		return
	}

	imageURL, err := resolveMediaURL(c, "image", "image_url", "galleries")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot save image", "details": err.Error()})
		return
	}
	if imageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image or image_url is required"})
		return
	}

	image := models.GalleryImage{
		GalleryID: gallery.ID,
		ImageURL:  imageURL,
		Caption:   c.PostForm("caption"),
	}
	if err := db.Create(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot add image", "details": err.Error()})
		return
	}

	if err := db.Preload("Images").First(&gallery, gallery.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot reload gallery", "details": err.Error()})
		return
	}
	docsFrom(c).Upsert(c.Request.Context(), docview.CollectionGalleries, gallery.ID, gallery)
	c.JSON(http.StatusCreated, gin.H{"message": "Image added", "data": image})
}

func UpdateGallery(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gallery id"})
		return
	}

	var input struct {
		Title    *string `json:"title"`
		CoverURL *string `json:"cover_url"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := dbFrom(c)

	var gallery models.Gallery
	if err := db.First(&gallery, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gallery not found"})
		return
	}

	if input.Title != nil {
		gallery.Title = *input.Title
	}
	if input.CoverURL != nil {
		gallery.CoverURL = *input.CoverURL
	}

	if err := db.Save(&gallery).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot update gallery", "details": err.Error()})
		return
	}

	if err := db.Preload("Images").First(&gallery, gallery.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot reload gallery", "details": err.Error()})
		return
	}
	docsFrom(c).Upsert(c.Request.Context(), docview.CollectionGalleries, gallery.ID, gallery)
	c.JSON(http.StatusOK, gin.H{"message": "Gallery updated", "data": gallery})
}

// DeleteGallery removes the gallery and cascades its images.
func DeleteGallery(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gallery id"})
		return
	}

	db := dbFrom(c)

	var gallery models.Gallery
	if err := db.First(&gallery, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Gallery not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot load gallery", "details": err.Error()})
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("gallery_id = ?", id).Delete(&models.GalleryImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&gallery).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot delete gallery", "details": err.Error()})
		return
	}

	docsFrom(c).Remove(c.Request.Context(), docview.CollectionGalleries, gallery.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Gallery deleted"})
}
