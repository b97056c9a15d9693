package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"poster.png", "poster.png"},
		{"my photo.png", "my_photo.png"},
		{"show@2024/cover!.jpg", "show_2024_cover_.jpg"},
		{"tiéng-viêt.png", "ti_ng-vi_t.png"},
		{"UPPER-case.JPG", "UPPER-case.JPG"},
		{"___", "___"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in), "input %q", tt.in)
	}
}

func TestUploadRoot(t *testing.T) {
	SetUploadRoot("")
	assert.Equal(t, "public", UploadRoot())

	SetUploadRoot("/tmp/uploads")
	assert.Equal(t, "/tmp/uploads", UploadRoot())

	SetUploadRoot("")
}
