package http

import (
	"io"
	"net/http"
)

// version answers with the bare version string, not JSON.
func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, h.services.AppInfoService.GetAppVersion(r.Context()))
}
