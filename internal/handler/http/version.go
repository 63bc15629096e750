package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-post-keeper/models"
)

// getServerVersion answers with the plain version string, or with the full
// build info when the client accepts JSON.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		writeJSON(w, r, models.Success(h.services.AppInfoService.GetAppInfo(ctx)), http.StatusOK)
		return
	}

	serverVersion := h.services.AppInfoService.GetAppVersion(ctx)

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
