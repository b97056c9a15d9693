package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TuanKiet52/APIRadio/models"
	"github.com/TuanKiet52/APIRadio/services"
	"github.com/TuanKiet52/APIRadio/ws"
)

type RecordListenInput struct {
	PodcastID *int64 `json:"podcastId" form:"podcastId"`
}

// RecordListen stores one playback-start signal from the public player.
// Every call inserts a new row: no dedup, no rate limiting.
func RecordListen(c *gin.Context) {
	var input RecordListenInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "podcastId is required"})
		return
	}
	if input.PodcastID == nil || *input.PodcastID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "podcastId is required"})
		return
	}

	event := models.ListenEvent{
		PodcastID: uint(*input.PodcastID),
		IPAddress: requesterAddress(c),
	}

	if err := dbFrom(c).Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot record listen", "details": err.Error()})
		return
	}

	ws.SendListenUpdate(event.PodcastID, event.IPAddress)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// requesterAddress takes the first hop of X-Forwarded-For, falling back
// to the "unknown" sentinel.
func requesterAddress(c *gin.Context) string {
	forwarded := c.GetHeader("X-Forwarded-For")
	if forwarded == "" {
		return "unknown"
	}
	if i := strings.Index(forwarded, ","); i >= 0 {
		forwarded = forwarded[:i]
	}
	addr := strings.TrimSpace(forwarded)
	if addr == "" {
		return "unknown"
	}
	return addr
}

// QueryListens returns every listen event for a podcast inside the
// resolved window, newest first. No pagination: volumes are one radio
// station's.
func QueryListens(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid podcast id"})
		return
	}

	start, end := windowFromQuery(c)

	var events []models.ListenEvent
	err := dbFrom(c).
		Where("podcast_id = ? AND created_at BETWEEN ? AND ?", id, start, end).
		Order("created_at DESC").
		Find(&events).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot query listens", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, events)
}

// ListenReport renders the same window as a printable per-day table.
func ListenReport(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid podcast id"})
		return
	}

	db := dbFrom(c)

	var podcast models.Podcast
	if err := db.First(&podcast, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Podcast not found"})
		return
	}

	start, end := windowFromQuery(c)

	var events []models.ListenEvent
	err := db.
		Where("podcast_id = ? AND created_at BETWEEN ? AND ?", id, start, end).
		Order("created_at DESC").
		Find(&events).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot query listens", "details": err.Error()})
		return
	}

	times := make([]time.Time, len(events))
	for i, e := range events {
		times[i] = e.CreatedAt
	}
	buckets := services.BucketByDay(times, start, end)

	c.String(http.StatusOK, services.RenderListenReport(podcast.Title, buckets, start, end))
}

func windowFromQuery(c *gin.Context) (time.Time, time.Time) {
	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))
	return services.ResolveListenWindow(c.Query("range"), month, year, time.Now())
}
