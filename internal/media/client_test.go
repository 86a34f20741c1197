package media_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/501wxrit/TripDiary-PWA/internal/domain"
	"github.com/501wxrit/TripDiary-PWA/internal/media"
)

func testFiles() []media.File {
	return []media.File{
		{Name: "beach.jpg", Mime: "image/jpeg", Content: []byte("jpegdata")},
		{Name: "temple.png", Mime: "image/png", Content: []byte("pngdata")},
	}
}

func TestClient_Upload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		parts := r.MultipartForm.File["files"]
		require.Len(t, parts, 2)
		assert.Equal(t, "beach.jpg", parts[0].Filename)
		assert.Equal(t, "image/jpeg", parts[0].Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"images":[
			{"id":"img1","url":"https://img.example.com/img1.jpg","width":640,"height":480,"mime":"image/jpeg"},
			{"id":"img2","url":"https://img.example.com/img2.png","width":800,"height":600,"mime":"image/png"}
		]}`))
	}))
	defer srv.Close()

	client := media.NewClient(srv.URL)
	images, err := client.Upload(context.Background(), testFiles())

	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "img1", images[0].ID)
	assert.Equal(t, "https://img.example.com/img1.jpg", images[0].URL)
	assert.Equal(t, 640, images[0].Width)
}

func TestClient_Upload_NoFiles(t *testing.T) {
	client := media.NewClient("http://unused.example.com")

	_, err := client.Upload(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestClient_Upload_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"images":[{"id":"img1","url":"https://img.example.com/img1.jpg"}]}`))
	}))
	defer srv.Close()

	client := media.NewClient(srv.URL)
	images, err := client.Upload(context.Background(), testFiles()[:1])

	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.GreaterOrEqual(t, calls.Load(), int32(2), "transient 5xx must be retried")
}

func TestClient_Upload_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	client := media.NewClient(srv.URL)
	_, err := client.Upload(context.Background(), testFiles()[:1])

	require.Error(t, err)
	assert.EqualValues(t, 1, calls.Load(), "a 4xx response must not be retried")
}

func TestClient_Upload_ContextCancelStopsRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := media.NewClient(srv.URL)
	_, err := client.Upload(ctx, testFiles()[:1])

	require.Error(t, err)
}
