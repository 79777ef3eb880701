package api

import (
	"mime/multipart"
	"net/http"

	"github.com/quillhq/quill-api/internal/platform/storage"
	"github.com/quillhq/quill-api/internal/usecase"
)

// UploadHandler serves the standalone image upload endpoint.
type UploadHandler struct {
	uploader storage.FileUploader
}

// NewUploadHandler creates a handler for POST /api/upload/image.
func NewUploadHandler(uploader storage.FileUploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Image handles POST /api/upload/image. The file arrives as the "image"
// part of a multipart form and only JPEG and PNG content is accepted.
func (h *UploadHandler) Image(w http.ResponseWriter, r *http.Request) {
	header, err := formFile(r, "image")
	if err != nil {
		WriteResponse(w, r, usecase.Fail(usecase.ParametersError, "Image file is required"))
		return
	}

	url, ok := uploadImage(w, r, h.uploader, header)
	if !ok {
		return
	}
	WriteResponse(w, r, usecase.Success(uploadResult{URL: url}))
}

// uploadImage validates an uploaded file as an image and stores it,
// returning the public URL. On failure it writes the error response and
// reports ok=false.
func uploadImage(w http.ResponseWriter, r *http.Request, uploader storage.FileUploader, header *multipart.FileHeader) (string, bool) {
	ext, err := imageExtension(header)
	if err != nil {
		WriteResponse(w, r, usecase.Fail(usecase.ResourceError, "Must be an image file."))
		return "", false
	}

	file, err := header.Open()
	if err != nil {
		WriteResponse(w, r, usecase.FailErr(usecase.SystemError, err))
		return "", false
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	url, err := uploader.Upload(r.Context(), "file"+ext, contentType, file)
	if err != nil {
		WriteResponse(w, r, usecase.FailErr(usecase.SystemError, err))
		return "", false
	}
	return url, true
}
