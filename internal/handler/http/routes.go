package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

var (
	corsAllowedMethods = []string{
		http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch,
		http.MethodPost, http.MethodDelete, http.MethodOptions,
	}
	corsAllowedHeaders = []string{"Content-Type", "Authorization", "Origin", "X-Requested-With", "Accept"}
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.cfg.AllowedOrigin},
		AllowedMethods:   corsAllowedMethods,
		AllowedHeaders:   corsAllowedHeaders,
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
	}))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/signup", h.signup)
		r.Get("/api/user/verify-email/{token}", h.verifyEmail)
		r.Post("/api/user/login", h.login)
		r.Post("/api/user/forgot-password", h.forgotPassword)
		r.Post("/api/user/reset-password/{token}", h.resetPassword)

		r.Get("/api/version/", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/post/create-post", h.createPost)
		r.Get("/api/post/get-all-posts", h.getAllPosts)
		r.Get("/api/post/get-post/{id}", h.getPost)
		r.Patch("/api/post/update-post/{id}", h.updatePost)
		r.Delete("/api/post/delete-post/{id}", h.deletePost)
		r.Get("/api/post/search-filter-post", h.searchPosts)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
