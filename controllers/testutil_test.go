package controllers_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/TuanKiet52/APIRadio/config"
	"github.com/TuanKiet52/APIRadio/docview"
	"github.com/TuanKiet52/APIRadio/routes"
	"github.com/TuanKiet52/APIRadio/utils"
)

// newTestServer spins up the real router over a throwaway sqlite
// database and a file-backed document view.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.SetSecret("controller-test-secret")
	utils.SetUploadRoot(t.TempDir())

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "radio.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	store := docview.NewFileStore(filepath.Join(t.TempDir(), "docview.json"))
	docs := docview.NewProjector(store, zerolog.Nop())

	r := gin.New()
	routes.SetupRoutes(r, db, docs)
	return r, db
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken(1, "admin")
	require.NoError(t, err)
	return token
}

func editorToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken(2, "editor")
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func jsonBody(body string) io.Reader {
	return bytes.NewBufferString(body)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	headers := map[string]string{"Content-Type": "application/json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return doRequest(t, r, method, path, bytes.NewBufferString(body), headers)
}

// doForm posts a multipart form, optionally attaching one file field.
func doForm(t *testing.T, r *gin.Engine, method, path string, fields map[string]string, fileField, fileName string, fileContent []byte, token string) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := writer.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	headers := map[string]string{"Content-Type": writer.FormDataContentType()}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return doRequest(t, r, method, path, body, headers)
}
