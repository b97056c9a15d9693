package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/TuanKiet52/APIRadio/docview"
	"github.com/TuanKiet52/APIRadio/models"
)

func GetEvents(c *gin.Context) {
	var events []models.Event
	if err := dbFrom(c).Order("created_at DESC").Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list events", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": events})
}

func GetEventByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}

	var event models.Event
	if err := dbFrom(c).First(&event, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": event})
}

func CreateEvent(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	imageURL, err := resolveMediaURL(c, "image", "image_url", "events")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot save image", "details": err.Error()})
		return
	}

	event := models.Event{
		Title:       title,
		Slug:        slug.Make(title),
		Description: c.PostForm("description"),
		ImageURL:    imageURL,
		Venue:       c.PostForm("venue"),
	}

	if v := c.PostForm("starts_at"); v != "" {
		if t, err := time.ParseInLocation("2006-01-02 15:04", v, time.Local); err == nil {
			event.StartsAt = &t
		} else if t, err := time.ParseInLocation("2006-01-02", v, time.Local); err == nil {
			event.StartsAt = &t
		}
	}

	if err := dbFrom(c).Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot create event", "details": err.Error()})
		return
	}

	docsFrom(c).Upsert(c.Request.Context(), docview.CollectionEvents, event.ID, event)
	c.JSON(http.StatusCreated, gin.H{"message": "Event created", "data": event})
}

func UpdateEvent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}

	var input struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		ImageURL    *string    `json:"image_url"`
		Venue       *string    `json:"venue"`
		StartsAt    *time.Time `json:"starts_at"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := dbFrom(c)

	var event models.Event
	if err := db.First(&event, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if input.Title != nil {
		event.Title = *input.Title
		event.Slug = slug.Make(*input.Title)
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.ImageURL != nil {
		event.ImageURL = *input.ImageURL
	}
	if input.Venue != nil {
		event.Venue = *input.Venue
	}
	if input.StartsAt != nil {
		event.StartsAt = input.StartsAt
	}

	if err := db.Save(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot update event", "details": err.Error()})
		return
	}

	docsFrom(c).Upsert(c.Request.Context(), docview.CollectionEvents, event.ID, event)
	c.JSON(http.StatusOK, gin.H{"message": "Event updated", "data": event})
}

func DeleteEvent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}

	db := dbFrom(c)

	var event models.Event
	if err := db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot load event", "details": err.Error()})
		return
	}

	if err := db.Delete(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot delete event", "details": err.Error()})
		return
	}

	docsFrom(c).Remove(c.Request.Context(), docview.CollectionEvents, event.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}
