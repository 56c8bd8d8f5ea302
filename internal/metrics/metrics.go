package metrics

import (
	"sync"
	"time"
)

// Metrics stores fallback hit counts. Any hit at all means the external
// static routing let a request through, so the store keeps enough detail
// to point at what leaked: which paths, which methods, and when.
type Metrics struct {
	mutex     sync.RWMutex
	paths     map[string]*pathStats
	firstHit  time.Time
	lastHit   time.Time
	startTime time.Time
}

type pathStats struct {
	hits    int64
	methods map[string]int64
	lastHit time.Time
}

type Snapshot struct {
	TotalHits int64                  `json:"total_hits"`
	Uptime    time.Duration          `json:"uptime"`
	FirstHit  time.Time              `json:"first_hit"`
	LastHit   time.Time              `json:"last_hit"`
	Paths     map[string]PathMetrics `json:"paths"`
}

type PathMetrics struct {
	Hits    int64            `json:"hits"`
	Methods map[string]int64 `json:"methods"`
	LastHit time.Time        `json:"last_hit"`
}

func NewMetrics() *Metrics {
	return &Metrics{
		paths:     make(map[string]*pathStats),
		startTime: time.Now(),
	}
}

func (m *Metrics) RecordHit(path, method string, at time.Time) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	ps, ok := m.paths[path]
	if !ok {
		ps = &pathStats{methods: make(map[string]int64)}
		m.paths[path] = ps
	}

	ps.hits++
	ps.methods[method]++
	ps.lastHit = at

	if m.firstHit.IsZero() {
		m.firstHit = at
	}
	m.lastHit = at
}

func (m *Metrics) Snapshot() Snapshot {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	snap := Snapshot{
		Uptime:   time.Since(m.startTime),
		FirstHit: m.firstHit,
		LastHit:  m.lastHit,
		Paths:    make(map[string]PathMetrics, len(m.paths)),
	}

	for path, ps := range m.paths {
		snap.TotalHits += ps.hits

		methods := make(map[string]int64, len(ps.methods))
		for method, count := range ps.methods {
			methods[method] = count
		}

		snap.Paths[path] = PathMetrics{
			Hits:    ps.hits,
			Methods: methods,
			LastHit: ps.lastHit,
		}
	}

	return snap
}
