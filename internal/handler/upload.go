package handler

import (
	"io"
	"net/http"

	"github.com/501wxrit/TripDiary-PWA/internal/domain"
	"github.com/501wxrit/TripDiary-PWA/internal/media"
)

// maxUploadMemory bounds the in-memory portion of multipart parsing; the
// request body itself is already capped by the max-body-size middleware.
const maxUploadMemory = 32 << 20

// uploadImages handles POST /api/upload: multipart "files" parts are
// forwarded to the media host and their references returned as
// {"images": [...]}.
func (s *Server) uploadImages(w http.ResponseWriter, r *http.Request) {
	if s.uploader == nil {
		respondError(w, http.StatusServiceUnavailable, "upload not configured")
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}
	parts := r.MultipartForm.File["files"]
	if len(parts) == 0 {
		respondError(w, http.StatusBadRequest, "No files")
		return
	}

	files := make([]media.File, 0, len(parts))
	for _, part := range parts {
		f, err := part.Open()
		if err != nil {
			respondError(w, http.StatusBadRequest, "unreadable file part")
			return
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			respondError(w, http.StatusBadRequest, "unreadable file part")
			return
		}
		files = append(files, media.File{
			Name:    part.Filename,
			Mime:    part.Header.Get("Content-Type"),
			Content: content,
		})
	}

	images, err := s.uploader.Upload(r.Context(), files)
	if err != nil {
		respondError(w, http.StatusBadGateway, "Upload failed")
		return
	}
	if images == nil {
		images = []domain.ImageRef{}
	}
	respondJSON(w, http.StatusOK, map[string][]domain.ImageRef{"images": images})
}
