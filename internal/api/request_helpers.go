package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxUploadBytes bounds in-memory multipart parsing. Larger files spill
// to temporary storage per the net/http contract.
const maxUploadBytes = 10 << 20

var errNoFile = errors.New("no file attached")

// allowedImageTypes lists the content types accepted for image uploads.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// decodeJSON reads a JSON request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// decodePayload reads a request that may arrive either as a plain JSON
// body or as a multipart form whose "payload" field holds the JSON
// document alongside an optional file part. It returns the file header
// for the named part, or nil when no file was attached.
func decodePayload(r *http.Request, dst interface{}, filePart string) (*multipart.FileHeader, error) {
	contentType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("invalid content type: %w", err)
	}

	if contentType != "multipart/form-data" {
		return nil, decodeJSON(r, dst)
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, fmt.Errorf("invalid multipart form: %w", err)
	}

	payload := r.FormValue("payload")
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), dst); err != nil {
			return nil, fmt.Errorf("invalid payload field: %w", err)
		}
	}

	if r.MultipartForm == nil {
		return nil, nil
	}
	headers := r.MultipartForm.File[filePart]
	if len(headers) == 0 {
		return nil, nil
	}
	return headers[0], nil
}

// formFile extracts a required file part from a multipart request.
func formFile(r *http.Request, part string) (*multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, fmt.Errorf("invalid multipart form: %w", err)
	}
	if r.MultipartForm == nil || len(r.MultipartForm.File[part]) == 0 {
		return nil, errNoFile
	}
	return r.MultipartForm.File[part][0], nil
}

// imageExtension validates an uploaded file's declared content type and
// returns the canonical extension to store it under. Non-image uploads
// are rejected.
func imageExtension(header *multipart.FileHeader) (string, error) {
	contentType := header.Header.Get("Content-Type")
	if ext, ok := allowedImageTypes[contentType]; ok {
		return ext, nil
	}
	if ext := filepath.Ext(header.Filename); strings.EqualFold(ext, ".jpg") ||
		strings.EqualFold(ext, ".jpeg") || strings.EqualFold(ext, ".png") {
		return strings.ToLower(ext), nil
	}
	return "", fmt.Errorf("unsupported file type %q", contentType)
}

// pathUUID parses a UUID path parameter. It returns nil when the value
// is absent or malformed, letting request builders report the violation.
func pathUUID(r *http.Request, name string) *uuid.UUID {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// queryInt parses an integer query parameter, falling back to def when
// the parameter is absent or malformed.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}
