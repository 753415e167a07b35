package handler

import "net/http"

// HandleCollectionLogInfo serves the collection log reference as loaded at startup
// @Summary Collection log reference
// @Tags public
// @Produce json
// @Success 200 {array} collectionlog.Tab
// @Router /api/collection-log-info [get]
func HandleCollectionLogInfo(raw []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(raw)
	}
}
