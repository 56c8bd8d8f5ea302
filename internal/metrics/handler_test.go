package metrics_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mkourtis/staticfall/internal/metrics"
)

var _ = Describe("Metrics handler", func() {
	var collector *metrics.Collector

	BeforeEach(func() {
		log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelError,
		}))
		collector = metrics.NewCollector(10, log)
	})

	It("should serve the snapshot as JSON", func() {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rec := httptest.NewRecorder()

		collector.Handler()(rec, req)

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Header().Get("Content-Type")).To(Equal("application/json"))

		var snap metrics.Snapshot
		Expect(json.Unmarshal(rec.Body.Bytes(), &snap)).To(Succeed())
		Expect(snap.TotalHits).To(BeZero())
	})

	It("should reflect recorded hits", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		collector.Start(ctx)

		collector.EventChannel() <- metrics.HitEvent{
			Path:      "/",
			Method:    "GET",
			Timestamp: time.Now(),
		}
		time.Sleep(10 * time.Millisecond)

		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rec := httptest.NewRecorder()
		collector.Handler()(rec, req)

		var snap metrics.Snapshot
		Expect(json.Unmarshal(rec.Body.Bytes(), &snap)).To(Succeed())
		Expect(snap.TotalHits).To(Equal(int64(1)))
	})
})
