package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TuanKiet52/APIRadio/models"
	"github.com/TuanKiet52/APIRadio/utils"
)

func TestAdminRoutesRequireAuth(t *testing.T) {
	r, _ := newTestServer(t)

	w := doForm(t, r, http.MethodPost, "/api/admin/podcasts",
		map[string]string{"title": "x"}, "", "", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/admin/news/1", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreatePodcastValidation(t *testing.T) {
	r, db := newTestServer(t)
	token := adminToken(t)

	w := doForm(t, r, http.MethodPost, "/api/admin/podcasts",
		map[string]string{"category_id": "1"}, "", "", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "title is required")

	w = doForm(t, r, http.MethodPost, "/api/admin/podcasts",
		map[string]string{"title": "No Category"}, "", "", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "category_id is required")

	var count int64
	db.Model(&models.Podcast{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateNewsValidation(t *testing.T) {
	r, db := newTestServer(t)
	token := adminToken(t)

	w := doForm(t, r, http.MethodPost, "/api/admin/news",
		map[string]string{"title": "Missing category"}, "", "", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.News{}).Count(&count)
	assert.Zero(t, count)
}

func TestDeleteNonexistentReturns404(t *testing.T) {
	r, _ := newTestServer(t)
	token := adminToken(t)

	paths := []string{
		"/api/admin/news/9999",
		"/api/admin/news-categories/9999",
		"/api/admin/podcasts/9999",
		"/api/admin/podcast-categories/9999",
		"/api/admin/personalities/9999",
		"/api/admin/programs/9999",
		"/api/admin/events/9999",
		"/api/admin/galleries/9999",
		"/api/admin/music/9999",
		"/api/admin/stations/9999",
		"/api/admin/users/9999",
	}
	for _, path := range paths {
		w := doJSON(t, r, http.MethodDelete, path, "", token)
		assert.Equal(t, http.StatusNotFound, w.Code, "DELETE %s", path)
	}
}

func TestPodcastLifecycle(t *testing.T) {
	r, db := newTestServer(t)
	token := adminToken(t)

	category := models.PodcastCategory{Name: "Interviews"}
	require.NoError(t, db.Create(&category).Error)

	w := doForm(t, r, http.MethodPost, "/api/admin/podcasts", map[string]string{
		"title":       "Late Night Talk",
		"category_id": fmt.Sprint(category.ID),
		"description": "weekly talk show",
	}, "", "", nil, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data models.Podcast `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "late-night-talk", created.Data.Slug)

	// Projected into the document view.
	w = doJSON(t, r, http.MethodGet, "/api/docs/podcasts", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var listed struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed.Data, 1)
	docID, _ := listed.Data[0]["_id"].(string)
	require.NotEmpty(t, docID)

	w = doJSON(t, r, http.MethodGet, "/api/docs/podcasts/"+docID, "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	// Delete removes the row, its listens, and the projected document.
	body := fmt.Sprintf(`{"podcastId":%d}`, created.Data.ID)
	w = doJSON(t, r, http.MethodPost, "/api/listen-record", body, "")
	require.Equal(t, http.StatusOK, w.Code)

	path := fmt.Sprintf("/api/admin/podcasts/%d", created.Data.ID)
	w = doJSON(t, r, http.MethodDelete, path, "", token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/podcasts/%d", created.Data.ID), "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var listens int64
	db.Model(&models.ListenEvent{}).Where("podcast_id = ?", created.Data.ID).Count(&listens)
	assert.Zero(t, listens)

	w = doJSON(t, r, http.MethodGet, "/api/docs/podcasts", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Empty(t, listed.Data)
}

func TestDocRoutesRejectBadInput(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/docs/unknown-things", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/docs/podcasts/not-hex", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/docs/podcasts/0123456789abcdef01234567", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePersonalityRestrictsWhileReferenced(t *testing.T) {
	r, db := newTestServer(t)
	token := adminToken(t)

	personality := models.Personality{Name: "DJ Ana", Status: "active"}
	require.NoError(t, db.Create(&personality).Error)

	category := models.PodcastCategory{Name: "Music Talk"}
	require.NoError(t, db.Create(&category).Error)
	podcast := models.Podcast{Title: "Ana Hour", CategoryID: category.ID, PersonalityID: &personality.ID}
	require.NoError(t, db.Create(&podcast).Error)

	path := fmt.Sprintf("/api/admin/personalities/%d", personality.ID)
	w := doJSON(t, r, http.MethodDelete, path, "", token)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"references":1`)

	require.NoError(t, db.Delete(&podcast).Error)
	w = doJSON(t, r, http.MethodDelete, path, "", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteCategoryRestrictsWhileReferenced(t *testing.T) {
	r, db := newTestServer(t)
	token := adminToken(t)

	category := models.NewsCategory{Name: "Local"}
	require.NoError(t, db.Create(&category).Error)
	article := models.News{Title: "Storm warning", Slug: "storm-warning", CategoryID: category.ID}
	require.NoError(t, db.Create(&article).Error)

	path := fmt.Sprintf("/api/admin/news-categories/%d", category.ID)
	w := doJSON(t, r, http.MethodDelete, path, "", token)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGalleryDeleteCascadesImages(t *testing.T) {
	r, db := newTestServer(t)
	token := adminToken(t)

	w := doForm(t, r, http.MethodPost, "/api/admin/galleries",
		map[string]string{"title": "Summer Festival"}, "", "", nil, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data models.Gallery `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	imagePath := fmt.Sprintf("/api/admin/galleries/%d/images", created.Data.ID)
	w = doForm(t, r, http.MethodPost, imagePath,
		map[string]string{"caption": "main stage"}, "image", "stage.png", []byte("png-bytes"), token)
	require.Equal(t, http.StatusCreated, w.Code)

	// The projection carries the reloaded gallery including its images.
	w = doJSON(t, r, http.MethodGet, "/api/docs/galleries", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "main stage")

	path := fmt.Sprintf("/api/admin/galleries/%d", created.Data.ID)
	w = doJSON(t, r, http.MethodDelete, path, "", token)
	require.Equal(t, http.StatusOK, w.Code)

	var images int64
	db.Model(&models.GalleryImage{}).Where("gallery_id = ?", created.Data.ID).Count(&images)
	assert.Zero(t, images)
}

func TestUploadRoundTrip(t *testing.T) {
	r, _ := newTestServer(t)
	token := adminToken(t)

	content := []byte{0x89, 'P', 'N', 'G', 0x00, 0x01, 0x02}
	w := doForm(t, r, http.MethodPost, "/api/admin/upload?category=news",
		nil, "file", "my photo.png", content, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.URL, "/images/news/"), "got %q", resp.URL)
	assert.True(t, strings.HasSuffix(resp.URL, "_my_photo.png"), "got %q", resp.URL)

	stored, err := os.ReadFile(filepath.Join(utils.UploadRoot(), filepath.FromSlash(resp.URL)))
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestUploadRequiresFile(t *testing.T) {
	r, _ := newTestServer(t)
	token := adminToken(t)

	w := doForm(t, r, http.MethodPost, "/api/admin/upload", nil, "", "", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatsCountsContent(t *testing.T) {
	r, db := newTestServer(t)
	token := adminToken(t)

	category := models.PodcastCategory{Name: "Stats"}
	require.NoError(t, db.Create(&category).Error)
	require.NoError(t, db.Create(&models.Podcast{Title: "One", CategoryID: category.ID}).Error)
	require.NoError(t, db.Create(&models.MusicTrack{Title: "Song", Artist: "Band"}).Error)

	w := doJSON(t, r, http.MethodGet, "/api/admin/stats", "", token)
	require.Equal(t, http.StatusOK, w.Code)

	var stats map[string]int64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.EqualValues(t, 1, stats["total_podcasts"])
	assert.EqualValues(t, 1, stats["total_music_tracks"])
}
