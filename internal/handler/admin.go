package handler

import "net/http"

func (h *Handler) handleListAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.moderation.ListAllUsers(requestIdentity(r))
	if err != nil {
		respondError(w, err)
		return
	}
	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, newUserResponse(u))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleListAllPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.moderation.ListAllPosts(requestIdentity(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newPostListResponse(posts))
}

type suspendRequest struct {
	Days   int    `json:"days"`
	Reason string `json:"reason"`
}

func (h *Handler) handleSuspendUser(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "userID")
	if err != nil {
		respondError(w, err)
		return
	}

	var req suspendRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	suspension, err := h.moderation.SuspendUser(requestIdentity(r), userID, req.Days, req.Reason)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newSuspensionResponse(suspension))
}

func (h *Handler) handleUnsuspendUser(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "userID")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.moderation.UnsuspendUser(requestIdentity(r), userID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) handleGetUserSuspension(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "userID")
	if err != nil {
		respondError(w, err)
		return
	}

	suspension, err := h.moderation.GetUserSuspension(requestIdentity(r), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	if suspension == nil {
		respondJSON(w, http.StatusOK, nil)
		return
	}
	respondJSON(w, http.StatusOK, newSuspensionResponse(suspension))
}

type hideRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) handleHidePost(w http.ResponseWriter, r *http.Request) {
	postID, err := idParam(r, "postID")
	if err != nil {
		respondError(w, err)
		return
	}

	var req hideRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	post, err := h.moderation.HidePost(requestIdentity(r), postID, req.Reason)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newPostResponse(post))
}

func (h *Handler) handleUnhidePost(w http.ResponseWriter, r *http.Request) {
	postID, err := idParam(r, "postID")
	if err != nil {
		respondError(w, err)
		return
	}

	post, err := h.moderation.UnhidePost(requestIdentity(r), postID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newPostResponse(post))
}

func (h *Handler) handleAdminDeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := idParam(r, "postID")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.moderation.DeletePost(requestIdentity(r), postID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
