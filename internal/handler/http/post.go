package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-post-keeper/internal/utils"
	"github.com/MKhiriev/go-post-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var in models.PostInput
	if err := utils.ReadJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.Success(models.PostData{Post: post}), http.StatusCreated)
}

func (h *Handler) getAllPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := h.services.PostService.List(r.Context(), models.ListPostsQuery{
		SortBy: q.Get("sortBy"),
		Order:  q.Get("order"),
		Page:   queryInt(q.Get("page")),
		Limit:  queryInt(q.Get("limit")),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.Success(page), http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.services.PostService.GetOne(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.Success(models.PostData{Post: post}), http.StatusOK)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	var in models.PostInput
	if err := utils.ReadJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.Success(models.UpdatedPostData{UpdatedPost: post}), http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	if err := h.services.PostService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.SuccessMessage(msgPostDeleted), http.StatusOK)
}

func (h *Handler) searchPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	posts, err := h.services.PostService.Search(r.Context(), models.SearchPostsQuery{
		Title:    q.Get("title"),
		AuthorID: q.Get("author"),
		Date:     q.Get("date"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.Success(models.PostsData{Posts: posts}), http.StatusOK)
}

// queryInt parses a numeric query parameter. Missing or malformed values
// yield 0, which the listing replaces with its default.
func queryInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
