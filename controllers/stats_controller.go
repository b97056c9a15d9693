package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TuanKiet52/APIRadio/models"
)

// GetStats returns the dashboard's flat count snapshot.
func GetStats(c *gin.Context) {
	db := dbFrom(c)

	var podcasts, programs, tracks, personalities int64

	if err := db.Model(&models.Podcast{}).Count(&podcasts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot count podcasts", "details": err.Error()})
		return
	}
	if err := db.Model(&models.Program{}).Count(&programs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot count programs", "details": err.Error()})
		return
	}
	if err := db.Model(&models.MusicTrack{}).Count(&tracks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot count tracks", "details": err.Error()})
		return
	}
	if err := db.Model(&models.Personality{}).Count(&personalities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot count personalities", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_podcasts":      podcasts,
		"total_programs":      programs,
		"total_music_tracks":  tracks,
		"total_personalities": personalities,
	})
}
