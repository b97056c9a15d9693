package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9.-]`)

// SanitizeFilename replaces every character outside [A-Za-z0-9.-] with _.
func SanitizeFilename(name string) string {
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}

var uploadRoot string

// SetUploadRoot installs the upload directory from the validated config.
func SetUploadRoot(dir string) {
	uploadRoot = dir
}

// UploadRoot is where /images is served from. Defaults to ./public.
func UploadRoot() string {
	if uploadRoot == "" {
		return "public"
	}
	return uploadRoot
}

// SaveUpload writes an uploaded file under
// {root}/images/{category}/{timestamp}_{sanitizedName} and returns the
// public /images/... path.
func SaveUpload(c *gin.Context, file *multipart.FileHeader, category string) (string, error) {
	name := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), SanitizeFilename(filepath.Base(file.Filename)))

	dir := filepath.Join(UploadRoot(), "images", category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}

	return "/images/" + category + "/" + name, nil
}
