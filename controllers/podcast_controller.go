package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/TuanKiet52/APIRadio/docview"
	"github.com/TuanKiet52/APIRadio/models"
)

// GetPodcasts lists podcasts, optionally filtered by category or
// personality.
func GetPodcasts(c *gin.Context) {
	query := dbFrom(c).Model(&models.Podcast{}).Preload("Category").Preload("Personality")

	if categoryID := c.Query("category"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if personalityID := c.Query("personality"); personalityID != "" {
		query = query.Where("personality_id = ?", personalityID)
	}

	var podcasts []models.Podcast
	if err := query.Order("created_at DESC").Find(&podcasts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list podcasts", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": podcasts})
}

func GetPodcastByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid podcast id"})
		return
	}

	var podcast models.Podcast
	if err := dbFrom(c).Preload("Category").Preload("Personality").First(&podcast, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Podcast not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": podcast})
}

// CreatePodcast accepts a multipart form with an optional poster upload.
func CreatePodcast(c *gin.Context) {
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

	posterURL, err := resolveMediaURL(c, "poster", "poster_url", "podcasts")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot save poster", "details": err.Error()})
		return
	}

	podcast := models.Podcast{
		Title:        title,
		Slug:         slug.Make(title),
		Description:  c.PostForm("description"),
		PosterURL:    posterURL,
		ExternalLink: c.PostForm("external_link"),
		CategoryID:   uint(categoryID),
	}

	if v := c.PostForm("duration_minutes"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil {
			podcast.DurationMinutes = minutes
		}
	}
	if v := c.PostForm("publish_date"); v != "" {
		if date, err := time.ParseInLocation("2006-01-02", v, time.Local); err == nil {
			podcast.PublishDate = &date
		}
	}
	if v := c.PostForm("personality_id"); v != "" {
		if pid, err := strconv.ParseUint(v, 10, 64); err == nil && pid > 0 {
			id := uint(pid)
			podcast.PersonalityID = &id
		}
	}

	if err := dbFrom(c).Create(&podcast).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot create podcast", "details": err.Error()})
		return
	}

	docsFrom(c).Upsert(c.Request.Context(), docview.CollectionPodcasts, podcast.ID, podcast)
	c.JSON(http.StatusCreated, gin.H{"message": "Podcast created", "data": podcast})
}

func UpdatePodcast(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid podcast id"})
		return
	}

	var input struct {
		Title           *string    `json:"title"`
		Description     *string    `json:"description"`
		PosterURL       *string    `json:"poster_url"`
		ExternalLink    *string    `json:"external_link"`
		DurationMinutes *int       `json:"duration_minutes"`
		PublishDate     *time.Time `json:"publish_date"`
		PersonalityID   *uint      `json:"personality_id"`
		CategoryID      *uint      `json:"category_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := dbFrom(c)

	var podcast models.Podcast
	if err := db.First(&podcast, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Podcast not found"})
		return
	}

	if input.Title != nil {
		podcast.Title = *input.Title
		podcast.Slug = slug.Make(*input.Title)
	}
	if input.Description != nil {
		podcast.Description = *input.Description
	}
	if input.PosterURL != nil {
		podcast.PosterURL = *input.PosterURL
	}
	if input.ExternalLink != nil {
		podcast.ExternalLink = *input.ExternalLink
	}
	if input.DurationMinutes != nil {
		podcast.DurationMinutes = *input.DurationMinutes
	}
	if input.PublishDate != nil {
		podcast.PublishDate = input.PublishDate
	}
	if input.PersonalityID != nil {
		podcast.PersonalityID = input.PersonalityID
	}
	if input.CategoryID != nil {
		podcast.CategoryID = *input.CategoryID
	}

	if err := db.Save(&podcast).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot update podcast", "details": err.Error()})
		return
	}

	docsFrom(c).Upsert(c.Request.Context(), docview.CollectionPodcasts, podcast.ID, podcast)
	c.JSON(http.StatusOK, gin.H{"message": "Podcast updated", "data": podcast})
}

// DeletePodcast removes the podcast and cascades its listen events.
func DeletePodcast(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid podcast id"})
		return
	}

	db := dbFrom(c)

	var podcast models.Podcast
	if err := db.First(&podcast, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Podcast not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot load podcast", "details": err.Error()})
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("podcast_id = ?", id).Delete(&models.ListenEvent{}).Error; err != nil {
			return err
		}
		return tx.Delete(&podcast).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot delete podcast", "details": err.Error()})
		return
	}

	docsFrom(c).Remove(c.Request.Context(), docview.CollectionPodcasts, podcast.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Podcast deleted"})
}
