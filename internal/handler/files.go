package handler

import (
	"fmt"
	"io"
	"net/http"

	"blog-backend/internal/logger"
	"blog-backend/internal/service"
)

const multipartMemoryLimit = 4 << 20

func (h *Handler) handleUploadFile(w http.ResponseWriter, r *http.Request) {
	postID, err := idParam(r, "postID")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		respondError(w, fmt.Errorf("malformed multipart form: %w", service.ErrValidation))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, fmt.Errorf("file field is required: %w", service.ErrValidation))
		return
	}
	defer file.Close()

	attachment, err := h.files.Upload(
		requestIdentity(r),
		postID,
		header.Filename,
		header.Header.Get("Content-Type"),
		header.Size,
		file,
	)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, attachmentResponse{
		ID:           attachment.ID,
		OriginalName: attachment.OriginalName,
		ContentType:  attachment.ContentType,
		Size:         attachment.Size,
	})
}

func (h *Handler) handleDownloadFile(w http.ResponseWriter, r *http.Request) {
	attachmentID, err := idParam(r, "attachmentID")
	if err != nil {
		respondError(w, err)
		return
	}

	attachment, f, err := h.files.Open(attachmentID)
	if err != nil {
		respondError(w, err)
		return
	}
	defer f.Close()

	if attachment.ContentType != "" {
		w.Header().Set("Content-Type", attachment.ContentType)
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", attachment.OriginalName))
	if _, err := io.Copy(w, f); err != nil {
		logger.Warningf("Failed to stream attachment %d: %v", attachmentID, err)
	}
}

func (h *Handler) handleDeleteFile(w http.ResponseWriter, r *http.Request) {
	attachmentID, err := idParam(r, "attachmentID")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.files.Delete(requestIdentity(r), attachmentID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
