package handler

import "net/http"

type commentRequest struct {
	Content string `json:"content"`
}

func (h *Handler) handleListComments(w http.ResponseWriter, r *http.Request) {
	postID, err := idParam(r, "postID")
	if err != nil {
		respondError(w, err)
		return
	}

	comments, err := h.comments.List(postID)
	if err != nil {
		respondError(w, err)
		return
	}
	resp := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		resp = append(resp, newCommentResponse(c))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	postID, err := idParam(r, "postID")
	if err != nil {
		respondError(w, err)
		return
	}

	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	comment, err := h.comments.Create(requestIdentity(r), postID, req.Content)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, newCommentResponse(comment))
}

func (h *Handler) handleUpdateComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := idParam(r, "commentID")
	if err != nil {
		respondError(w, err)
		return
	}

	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	comment, err := h.comments.Update(requestIdentity(r), commentID, req.Content)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newCommentResponse(comment))
}

func (h *Handler) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := idParam(r, "commentID")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.comments.Delete(requestIdentity(r), commentID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
