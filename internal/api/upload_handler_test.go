package api

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill-api/internal/mocks"
)

func imageUploadRequest(t *testing.T, filename, contentType string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {`form-data; name="image"; filename="` + filename + `"`},
		"Content-Type":        {contentType},
	})
	require.NoError(t, err)
	_, err = part.Write([]byte("file-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload/image", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUploadHandlerImage(t *testing.T) {
	t.Parallel()

	uploader := &mocks.MockFileUploader{URL: "https://cdn.example.com/pic.jpg"}
	handler := NewUploadHandler(uploader)

	rec := httptest.NewRecorder()
	handler.Image(rec, imageUploadRequest(t, "pic.jpg", "image/jpeg"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"url":"https://cdn.example.com/pic.jpg"}`, rec.Body.String())
	assert.Equal(t, 1, uploader.UploadCalls)
}

func TestUploadHandlerRejectsNonImage(t *testing.T) {
	t.Parallel()

	uploader := &mocks.MockFileUploader{}
	handler := NewUploadHandler(uploader)

	rec := httptest.NewRecorder()
	handler.Image(rec, imageUploadRequest(t, "doc.pdf", "application/pdf"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Must be an image file.")
	assert.Zero(t, uploader.UploadCalls)
}

func TestUploadHandlerMissingFile(t *testing.T) {
	t.Parallel()

	handler := NewUploadHandler(&mocks.MockFileUploader{})

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("payload", "{}"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload/image", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.Image(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Image file is required")
}

func TestUploadHandlerStorageFailure(t *testing.T) {
	t.Parallel()

	uploader := &mocks.MockFileUploader{Err: errors.New("bucket unavailable")}
	handler := NewUploadHandler(uploader)

	rec := httptest.NewRecorder()
	handler.Image(rec, imageUploadRequest(t, "pic.png", "image/png"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
