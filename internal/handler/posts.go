package handler

import (
	"net/http"
	"strings"

	"blog-backend/internal/models"
)

type postRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

func (h *Handler) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	post, err := h.posts.Create(requestIdentity(r), req.Title, req.Content, req.Category)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, newPostResponse(post))
}

func (h *Handler) handleGetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := idParam(r, "postID")
	if err != nil {
		respondError(w, err)
		return
	}

	post, err := h.posts.Get(postID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newPostResponse(post))
}

func (h *Handler) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	postID, err := idParam(r, "postID")
	if err != nil {
		respondError(w, err)
		return
	}

	var req postRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	post, err := h.posts.Update(requestIdentity(r), postID, req.Title, req.Content, req.Category)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newPostResponse(post))
}

func (h *Handler) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := idParam(r, "postID")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.posts.Delete(requestIdentity(r), postID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) handleListPosts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	sortBy := r.URL.Query().Get("sort")

	posts, err := h.posts.List(category, sortBy)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newPostListResponse(posts))
}

func (h *Handler) handleSearchPosts(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")
	searchType := r.URL.Query().Get("type")

	posts, err := h.posts.Search(keyword, searchType)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newPostListResponse(posts))
}

func (h *Handler) handleRecordView(w http.ResponseWriter, r *http.Request) {
	postID, err := idParam(r, "postID")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.posts.RecordView(requestIdentity(r), postID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) handleToggleReaction(w http.ResponseWriter, r *http.Request) {
	postID, err := idParam(r, "postID")
	if err != nil {
		respondError(w, err)
		return
	}

	kind := models.ReactionLike
	if strings.EqualFold(r.URL.Query().Get("type"), "dislike") {
		kind = models.ReactionDislike
	}

	post, err := h.engagement.Toggle(requestIdentity(r), postID, kind)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newPostResponse(post))
}
