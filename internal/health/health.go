package health

import "net/http"

// Handler answers platform readiness probes. It reports healthy as long
// as the process is up; there are no dependencies to check.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(http.StatusText(http.StatusOK)))
}
