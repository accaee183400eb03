package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPagination(t *testing.T) {
	p := buildPagination(1, 20, 45, 20)
	assert.Equal(t, int64(3), p.TotalPages)
	assert.Equal(t, 1, p.From)
	assert.Equal(t, 20, p.To)
	assert.True(t, p.HasMore)

	p = buildPagination(3, 20, 45, 5)
	assert.Equal(t, 41, p.From)
	assert.Equal(t, 45, p.To)
	assert.False(t, p.HasMore)
}

func TestBuildPagination_EmptyPage(t *testing.T) {
	p := buildPagination(1, 20, 0, 0)
	assert.Equal(t, int64(0), p.TotalItems)
	assert.Equal(t, int64(0), p.TotalPages)
	assert.Equal(t, 0, p.From)
	assert.Equal(t, 0, p.To)
	assert.False(t, p.HasMore)
}

func postTranscriptUpload(t *testing.T, app *fiber.App, filename string) *http.Response {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("transcript", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("%PDF-1.4 innehåll"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/upload", body)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

// Two uploads with the same client filename must land on distinct paths, so
// neither call can clobber or remove the other's file mid-extraction.
func TestSaveUpload_SameFilenameGetsDistinctPaths(t *testing.T) {
	h := &RoleProfileHandler{uploadDir: t.TempDir()}
	app := fiber.New()
	app.Post("/upload", func(c *fiber.Ctx) error {
		file, err := c.FormFile("transcript")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).SendString(err.Error())
		}
		path, err := h.saveUpload(c, file)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		}
		return c.SendString(path)
	})

	paths := map[string]bool{}
	for i := 0; i < 2; i++ {
		resp := postTranscriptUpload(t, app, "transcript.pdf")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		paths[string(b)] = true
	}
	assert.Len(t, paths, 2)

	for path := range paths {
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "%PDF-1.4")
	}
}
