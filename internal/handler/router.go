package handler

import (
	"net/http"

	"blog-backend/internal/auth"
	"blog-backend/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler wires the service layer to HTTP routes.
type Handler struct {
	auth       *service.AuthService
	posts      *service.PostService
	comments   *service.CommentService
	engagement *service.EngagementService
	moderation *service.ModerationService
	files      *service.FileService
	tokens     *auth.TokenManager
}

// New creates a Handler over the given services.
func New(
	authService *service.AuthService,
	posts *service.PostService,
	comments *service.CommentService,
	engagement *service.EngagementService,
	moderation *service.ModerationService,
	files *service.FileService,
	tokens *auth.TokenManager,
) *Handler {
	return &Handler{
		auth:       authService,
		posts:      posts,
		comments:   comments,
		engagement: engagement,
		moderation: moderation,
		files:      files,
		tokens:     tokens,
	}
}

// Routes builds the API router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(identityMiddleware(h.tokens))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.handleRegister)
			r.Post("/login", h.handleLogin)
			r.Get("/me", h.handleCurrentUser)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", h.handleListPosts)
			r.Post("/", h.handleCreatePost)
			r.Get("/search", h.handleSearchPosts)
			r.Route("/{postID}", func(r chi.Router) {
				r.Get("/", h.handleGetPost)
				r.Put("/", h.handleUpdatePost)
				r.Delete("/", h.handleDeletePost)
				r.Post("/view", h.handleRecordView)
				r.Post("/like", h.handleToggleReaction)
				r.Get("/comments", h.handleListComments)
				r.Post("/comments", h.handleCreateComment)
				r.Post("/files", h.handleUploadFile)
			})
		})

		r.Route("/comments/{commentID}", func(r chi.Router) {
			r.Put("/", h.handleUpdateComment)
			r.Delete("/", h.handleDeleteComment)
		})

		r.Route("/files/{attachmentID}", func(r chi.Router) {
			r.Get("/", h.handleDownloadFile)
			r.Delete("/", h.handleDeleteFile)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/users", h.handleListAllUsers)
			r.Get("/posts", h.handleListAllPosts)
			r.Post("/users/{userID}/suspend", h.handleSuspendUser)
			r.Post("/users/{userID}/unsuspend", h.handleUnsuspendUser)
			r.Get("/users/{userID}/suspension", h.handleGetUserSuspension)
			r.Post("/posts/{postID}/hide", h.handleHidePost)
			r.Post("/posts/{postID}/unhide", h.handleUnhidePost)
			r.Delete("/posts/{postID}", h.handleAdminDeletePost)
		})
	})

	return r
}
