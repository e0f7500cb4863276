package http

import (
	"bufio"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"

	"skkuri-backend/internal/service"

	"github.com/gorilla/mux"
)

// multipartOverhead is the allowance for form fields and part headers on top
// of the image itself.
const multipartOverhead = 1 << 20

// ArtworkHandler handles artwork listing, multipart uploads and image downloads.
type ArtworkHandler struct {
	activity       service.ActivityService
	maxUploadBytes int64
}

// NewArtworkHandler creates a new artwork handler
func NewArtworkHandler(activity service.ActivityService, maxUploadBytes int64) *ArtworkHandler {
	return &ArtworkHandler{
		activity:       activity,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *ArtworkHandler) List(w http.ResponseWriter, r *http.Request) {
	clubID, err := pathID(r, "club_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	artworks, err := h.activity.ListArtworks(r.Context(), clubID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(artworks))
}

// HandleUpload accepts a multipart form with file, title and content fields.
func (h *ArtworkHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	actorID, clubID, err := clubRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)
	}
	if err := r.ParseMultipartForm(multipartOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, fmt.Errorf("%w: image exceeds %d bytes", service.ErrInvalidInput, h.maxUploadBytes))
			return
		}
		writeError(w, r, fmt.Errorf("%w: malformed multipart form: %v", service.ErrInvalidInput, err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: file is required", service.ErrInvalidInput))
		return
	}
	defer file.Close()

	// Browsers often send octet-stream; sniff the leading bytes instead.
	body := bufio.NewReaderSize(file, 512)
	contentType := header.Header.Get("Content-Type")
	if mediaType, _, _ := mime.ParseMediaType(contentType); mediaType == "" || mediaType == "application/octet-stream" {
		head, _ := body.Peek(512)
		contentType = http.DetectContentType(head)
	}

	artwork, err := h.activity.CreateArtwork(r.Context(), actorID, clubID, service.ArtworkUpload{
		Title:       r.FormValue("title"),
		Content:     r.FormValue("content"),
		FileName:    header.Filename,
		ContentType: contentType,
		Body:        body,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, artwork)
}

func (h *ArtworkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, clubID, err := clubRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	artworkID, err := pathID(r, "item_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.activity.DeleteArtwork(r.Context(), actorID, clubID, artworkID); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "artwork deleted")
}

// HandleDownload serves a stored image by its bare file name.
func (h *ArtworkHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	obj, err := h.activity.OpenArtworkImage(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer obj.Close()

	contentType := mime.TypeByExtension(filepath.Ext(obj.Key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	http.ServeContent(w, r, obj.Key, obj.ModTime, obj)
}

// RegisterArtworkRoutes registers the artwork endpoints. The image route is
// registered first so "image" is never parsed as a club id.
func RegisterArtworkRoutes(router *mux.Router, activity service.ActivityService, maxUploadBytes int64) {
	handler := NewArtworkHandler(activity, maxUploadBytes)
	router.HandleFunc("/activity/artwork/image/{name}", handler.HandleDownload).Methods(http.MethodGet)
	router.HandleFunc("/activity/artwork/{club_id}", handler.List).Methods(http.MethodGet)
	router.HandleFunc("/activity/artwork/{club_id}", handler.HandleUpload).Methods(http.MethodPost)
	router.HandleFunc("/activity/artwork/{club_id}/{item_id}", handler.Delete).Methods(http.MethodDelete)
}
