// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-post-keeper/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// Instead of chi's 405 it answers 404 with a failed envelope, so an
// unsupported method does not reveal that the path exists. Patterns with
// URL parameters are matched through the router itself. If the router does
// match the method (a registration race during setup), the request is served
// normally.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		writeJSON(w, r, models.Failure(http.StatusText(http.StatusNotFound)), http.StatusNotFound)
	}
}
