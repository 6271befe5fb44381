package http

import (
	"net/http"
)

// Build metadata headers set on the version response.
const (
	buildCommitHeader = "X-Build-Commit"
	buildDateHeader   = "X-Build-Date"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	serverVersion := h.services.AppInfoService.GetAppVersion(ctx)
	buildInfo := h.services.AppInfoService.GetBuildInfo(ctx)

	w.Header().Set(buildCommitHeader, buildInfo.BuildCommit())
	w.Header().Set(buildDateHeader, buildInfo.BuildDate())
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(serverVersion))
}
