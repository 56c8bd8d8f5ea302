package fallback

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/mkourtis/staticfall/internal/metrics"
)

// Message is the diagnostic body returned for every request that reaches
// the fallback route. The wording is the contract: deploy smoke checks
// assert against it verbatim.
const Message = "This route should not be reached - check the platform's static handlers"

type Handler struct {
	logger    *slog.Logger
	collector *metrics.Collector
}

func NewHandler(logger *slog.Logger, collector *metrics.Collector) *Handler {
	return &Handler{
		logger:    logger,
		collector: collector,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	clientIP := extractClientIP(r)

	h.logger.Warn("Fallback route reached",
		slog.String("from", clientIP),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("host", r.Host),
		slog.String("user_agent", r.UserAgent()))

	h.emitHit(r, clientIP)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(Message))
}

func (h *Handler) emitHit(r *http.Request, clientIP string) {
	if h.collector == nil {
		return
	}

	event := metrics.HitEvent{
		Path:      r.URL.Path,
		Method:    r.Method,
		ClientIP:  clientIP,
		Timestamp: time.Now(),
	}

	select {
	case h.collector.EventChannel() <- event:
	default:
	}
}

func extractClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}

	host, _, _ := net.SplitHostPort(r.RemoteAddr)
	return host
}
