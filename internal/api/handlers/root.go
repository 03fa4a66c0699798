package handlers

import "net/http"

// Root provides the plain-text liveness check at /.
func Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Parcel server running"))
}
