package service

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"mediahub/server/media/domain"
)

type capturedUpload struct {
	identity       []string
	hasIdentity    bool
	fileParts      int
	fileName       string
	fileType       string
	fileBytes      []byte
	values         map[string][]string
	requestMethod  string
	requestURLPath string
}

// newFakeBackend serves POST /api/media/upload with handler and returns the
// base URL of the media subsystem.
func newFakeBackend(t *testing.T, handler gin.HandlerFunc) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/media/upload", handler)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv.URL + "/api/media"
}

// echoBackend records each request on captured and answers with a
// MediaAsset built from it.
func echoBackend(t *testing.T, captured chan<- capturedUpload) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := capturedUpload{
			requestMethod:  c.Request.Method,
			requestURLPath: c.Request.URL.Path,
		}
		got.identity, got.hasIdentity = c.Request.Header[IdentityHeader]

		if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		form := c.Request.MultipartForm
		got.values = form.Value
		for _, headers := range form.File {
			got.fileParts += len(headers)
		}

		file, header, err := c.Request.FormFile(FileField)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		got.fileName = header.Filename
		got.fileType = header.Header.Get("Content-Type")
		got.fileBytes = data
		captured <- got

		asset := domain.MediaAsset{
			ID:          "m-1",
			Filename:    "stored-" + header.Filename,
			ContentType: got.fileType,
			FileSize:    int64(len(data)),
			UploadedBy:  c.GetHeader(IdentityHeader),
			UploadedAt:  "2024-01-01T00:00:00Z",
		}
		if values, ok := form.Value[ProductField]; ok && len(values) > 0 {
			asset.ProductID = &values[0]
		}
		c.JSON(http.StatusCreated, asset)
	}
}
