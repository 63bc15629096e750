// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux with a set of routes for tests.
// It intentionally does not use Handler.Init() to avoid service setup.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/api/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/api/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Patch("/api/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	router.Delete("/api/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"GET registered", http.MethodGet, "/api/items", http.StatusOK},
		{"POST registered", http.MethodPost, "/api/items", http.StatusCreated},
		{"PATCH with param", http.MethodPatch, "/api/items/42", http.StatusAccepted},
		{"DELETE with param", http.MethodDelete, "/api/items/42", http.StatusNoContent},
		{"PUT on static route", http.MethodPut, "/api/items", http.StatusNotFound},
		{"GET on param route", http.MethodGet, "/api/items/42", http.StatusNotFound},
		{"POST on param route", http.MethodPost, "/api/items/42", http.StatusNotFound},
		{"unknown path", http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCheckHTTPMethod_NeverAnswers405(t *testing.T) {
	router := buildRouter()

	for _, method := range []string{http.MethodPut, http.MethodHead, http.MethodOptions, http.MethodTrace} {
		req := httptest.NewRequest(method, "/api/items/1", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code, method)
	}
}

func TestCheckHTTPMethod_WritesFailedEnvelope(t *testing.T) {
	router := buildRouter()

	req := httptest.NewRequest(http.MethodPut, "/api/items", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assertFailure(t, rec, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}
