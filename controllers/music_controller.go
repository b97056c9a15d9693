package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TuanKiet52/APIRadio/docview"
	"github.com/TuanKiet52/APIRadio/models"
)

func GetMusicTracks(c *gin.Context) {
	var tracks []models.MusicTrack
	if err := dbFrom(c).Order("created_at DESC").Find(&tracks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list tracks", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": tracks})
}

func GetMusicTrackByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid track id"})
		return
	}

	var track models.MusicTrack
	if err := dbFrom(c).First(&track, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Track not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": track})
}

func CreateMusicTrack(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	artist := c.PostForm("artist")
	if artist == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "artist is required"})
		return
	}

	coverURL, err := resolveMediaURL(c, "cover", "cover_url", "music")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot save cover", "details": err.Error()})
		return
	}

	track := models.MusicTrack{
		Title:    title,
		Artist:   artist,
		CoverURL: coverURL,
		AudioURL: c.PostForm("audio_url"),
	}

	if err := dbFrom(c).Create(&track).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot create track", "details": err.Error()})
		return
	}

	docsFrom(c).Upsert(c.Request.Context(), docview.CollectionMusic, track.ID, track)
	c.JSON(http.StatusCreated, gin.H{"message": "Track created", "data": track})
}

func UpdateMusicTrack(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid track id"})
		return
	}

	var input struct {
		Title    *string `json:"title"`
		Artist   *string `json:"artist"`
		CoverURL *string `json:"cover_url"`
		AudioURL *string `json:"audio_url"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := dbFrom(c)

	var track models.MusicTrack
	if err := db.First(&track, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Track not found"})
		return
	}

	if input.Title != nil {
		track.Title = *input.Title
	}
	if input.Artist != nil {
		track.Artist = *input.Artist
	}
	if input.CoverURL != nil {
		track.CoverURL = *input.CoverURL
	}
	if input.AudioURL != nil {
		track.AudioURL = *input.AudioURL
	}

	if err := db.Save(&track).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot update track", "details": err.Error()})
		return
	}

	docsFrom(c).Upsert(c.Request.Context(), docview.CollectionMusic, track.ID, track)
	c.JSON(http.StatusOK, gin.H{"message": "Track updated", "data": track})
}

func DeleteMusicTrack(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid track id"})
		return
	}

	db := dbFrom(c)

	var track models.MusicTrack
	if err := db.First(&track, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Track not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot load track", "details": err.Error()})
		return
	}

	if err := db.Delete(&track).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot delete track", "details": err.Error()})
		return
	}

	docsFrom(c).Remove(c.Request.Context(), docview.CollectionMusic, track.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Track deleted"})
}
