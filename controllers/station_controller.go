package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TuanKiet52/APIRadio/models"
)

func GetStations(c *gin.Context) {
	var stations []models.RadioStation
	if err := dbFrom(c).Order("created_at DESC").Find(&stations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list stations", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stations})
}

func GetStationByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid station id"})
		return
	}

	var station models.RadioStation
	if err := dbFrom(c).First(&station, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Station not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": station})
}

func CreateStation(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	logoURL, err := resolveMediaURL(c, "logo", "logo_url", "stations")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot save logo", "details": err.Error()})
		return
	}

	station := models.RadioStation{
		Name:      name,
		Tagline:   c.PostForm("tagline"),
		StreamURL: c.PostForm("stream_url"),
		LogoURL:   logoURL,
		Email:     c.PostForm("email"),
		Phone:     c.PostForm("phone"),
		Address:   c.PostForm("address"),
		Facebook:  c.PostForm("facebook"),
		Twitter:   c.PostForm("twitter"),
		Instagram: c.PostForm("instagram"),
	}

	if err := dbFrom(c).Create(&station).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot create station", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Station created", "data": station})
}

func UpdateStation(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid station id"})
		return
	}

	var input struct {
		Name      *string `json:"name"`
		Tagline   *string `json:"tagline"`
		StreamURL *string `json:"stream_url"`
		LogoURL   *string `json:"logo_url"`
		Email     *string `json:"email"`
		Phone     *string `json:"phone"`
		Address   *string `json:"address"`
		Facebook  *string `json:"facebook"`
		Twitter   *string `json:"twitter"`
		Instagram *string `json:"instagram"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := dbFrom(c)

	var station models.RadioStation
	if err := db.First(&station, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Station not found"})
		return
	}

	if input.Name != nil {
		station.Name = *input.Name
	}
	if input.Tagline != nil {
		station.Tagline = *input.Tagline
	}
	if input.StreamURL != nil {
		station.StreamURL = *input.StreamURL
	}
	if input.LogoURL != nil {
		station.LogoURL = *input.LogoURL
	}
	if input.Email != nil {
		station.Email = *input.Email
	}
	if input.Phone != nil {
		station.Phone = *input.Phone
	}
	if input.Address != nil {
		station.Address = *input.Address
	}
	if input.Facebook != nil {
		station.Facebook = *input.Facebook
	}
	if input.Twitter != nil {
		station.Twitter = *input.Twitter
	}
	if input.Instagram != nil {
		station.Instagram = *input.Instagram
	}

	if err := db.Save(&station).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot update station", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Station updated", "data": station})
}

func DeleteStation(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid station id"})
		return
	}

	db := dbFrom(c)

	var station models.RadioStation
	if err := db.First(&station, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Station not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot load station", "details": err.Error()})
		return
	}

	if err := db.Delete(&station).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot delete station", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Station deleted"})
}
