package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TuanKiet52/APIRadio/docview"
	"github.com/TuanKiet52/APIRadio/models"
)

func GetPersonalities(c *gin.Context) {
	query := dbFrom(c).Model(&models.Personality{})

	if status := c.Query("status"); status == "active" || status == "inactive" {
		query = query.Where("status = ?", status)
	}

	var personalities []models.Personality
	if err := query.Order("created_at DESC").Find(&personalities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list personalities", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": personalities})
}

func GetPersonalityByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid personality id"})
		return
	}

	var personality models.Personality
	if err := dbFrom(c).First(&personality, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Personality not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": personality})
}

func CreatePersonality(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	status := c.PostForm("status")
	if status == "" {
		status = "active"
	}
	if status != "active" && status != "inactive" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be active or inactive"})
		return
	}

	photoURL, err := resolveMediaURL(c, "photo", "photo_url", "personalities")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot save photo", "details": err.Error()})
		return
	}

	personality := models.Personality{
		Name:      name,
		Tagline:   c.PostForm("tagline"),
		PhotoURL:  photoURL,
		Status:    status,
		Facebook:  c.PostForm("facebook"),
		Twitter:   c.PostForm("twitter"),
		Instagram: c.PostForm("instagram"),
	}

	if v := c.PostForm("hourly_rate"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil {
			personality.HourlyRate = rate
		}
	}

	if err := dbFrom(c).Create(&personality).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot create personality", "details": err.Error()})
		return
	}

	docsFrom(c).Upsert(c.Request.Context(), docview.CollectionPersonalities, personality.ID, personality)
	c.JSON(http.StatusCreated, gin.H{"message": "Personality created", "data": personality})
}

func UpdatePersonality(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid personality id"})
		return
	}

	var input struct {
		Name       *string  `json:"name"`
		Tagline    *string  `json:"tagline"`
		PhotoURL   *string  `json:"photo_url"`
		Status     *string  `json:"status"`
		HourlyRate *float64 `json:"hourly_rate"`
		Facebook   *string  `json:"facebook"`
		Twitter    *string  `json:"twitter"`
		Instagram  *string  `json:"instagram"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Status != nil && *input.Status != "active" && *input.Status != "inactive" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be active or inactive"})
		return
	}

	db := dbFrom(c)

	var personality models.Personality
	if err := db.First(&personality, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Personality not found"})
		return
	}

	if input.Name != nil {
		personality.Name = *input.Name
	}
	if input.Tagline != nil {
		personality.Tagline = *input.Tagline
	}
	if input.PhotoURL != nil {
		personality.PhotoURL = *input.PhotoURL
	}
	if input.Status != nil {
		personality.Status = *input.Status
	}
	if input.HourlyRate != nil {
		personality.HourlyRate = *input.HourlyRate
	}
	if input.Facebook != nil {
		personality.Facebook = *input.Facebook
	}
	if input.Twitter != nil {
		personality.Twitter = *input.Twitter
	}
	if input.Instagram != nil {
		personality.Instagram = *input.Instagram
	}

	if err := db.Save(&personality).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot update personality", "details": err.Error()})
		return
	}

	docsFrom(c).Upsert(c.Request.Context(), docview.CollectionPersonalities, personality.ID, personality)
	c.JSON(http.StatusOK, gin.H{"message": "Personality updated", "data": personality})
}

// DeletePersonality refuses to remove a host still referenced by
// podcasts or programs.
func DeletePersonality(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid personality id"})
		return
	}

	db := dbFrom(c)

	var personality models.Personality
	if err := db.First(&personality, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Personality not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot load personality", "details": err.Error()})
		return
	}

	var podcastRefs, programRefs int64
	db.Model(&models.Podcast{}).Where("personality_id = ?", id).Count(&podcastRefs)
	db.Model(&models.Program{}).Where("personality_id = ?", id).Count(&programRefs)
	if podcastRefs+programRefs > 0 {
		c.JSON(http.StatusConflict, gin.H{
			"error":      "Personality is still referenced by podcasts or programs",
			"references": podcastRefs + programRefs,
		})
		return
	}

	if err := db.Delete(&personality).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot delete personality", "details": err.Error()})
		return
	}

	docsFrom(c).Remove(c.Request.Context(), docview.CollectionPersonalities, personality.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Personality deleted"})
}
