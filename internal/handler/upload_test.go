package handler_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/501wxrit/TripDiary-PWA/internal/domain"
	"github.com/501wxrit/TripDiary-PWA/internal/handler"
	"github.com/501wxrit/TripDiary-PWA/internal/media"
)

// multipartBody builds a multipart form with one "files" part per entry.
func multipartBody(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func postUpload(t *testing.T, s *handler.Server, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)
	return rec
}

func TestUploadImages(t *testing.T) {
	var received []media.File
	uploader := &mockUploader{
		UploadFunc: func(ctx context.Context, files []media.File) ([]domain.ImageRef, error) {
			received = files
			return []domain.ImageRef{{ID: "img1", URL: "https://img.example.com/img1.jpg", Width: 640, Height: 480, Mime: "image/jpeg"}}, nil
		},
	}
	s := handler.NewServer(&mockTripStorer{}, uploader, nil)

	body, contentType := multipartBody(t, map[string][]byte{"beach.jpg": []byte("jpegdata")})
	rec := postUpload(t, s, body, contentType)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, received, 1)
	assert.Equal(t, "beach.jpg", received[0].Name)
	assert.Equal(t, []byte("jpegdata"), received[0].Content)
	assert.JSONEq(t,
		`{"images":[{"id":"img1","url":"https://img.example.com/img1.jpg","width":640,"height":480,"mime":"image/jpeg"}]}`,
		rec.Body.String())
}

func TestUploadImages_NoFiles(t *testing.T) {
	s := handler.NewServer(&mockTripStorer{}, &mockUploader{}, nil)

	body, contentType := multipartBody(t, nil)
	rec := postUpload(t, s, body, contentType)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"No files"}`, rec.Body.String())
}

func TestUploadImages_UpstreamFailure(t *testing.T) {
	uploader := &mockUploader{
		UploadFunc: func(ctx context.Context, files []media.File) ([]domain.ImageRef, error) {
			return nil, errors.New("media host down")
		},
	}
	s := handler.NewServer(&mockTripStorer{}, uploader, nil)

	body, contentType := multipartBody(t, map[string][]byte{"a.jpg": []byte("x")})
	rec := postUpload(t, s, body, contentType)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestUploadImages_NotConfigured(t *testing.T) {
	s := handler.NewServer(&mockTripStorer{}, nil, nil)

	body, contentType := multipartBody(t, map[string][]byte{"a.jpg": []byte("x")})
	rec := postUpload(t, s, body, contentType)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
