package perf

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultRingSize is the default capacity of the ring buffer.
const DefaultRingSize = 10000

// EntryKind distinguishes what was timed.
type EntryKind uint8

const (
	KindRequest EntryKind = iota // HTTP request
	KindQuery                    // SQL statement via TimedDB
	KindPush                     // websocket chat push
)

// Entry is a single timing record.
type Entry struct {
	Kind       EntryKind
	Label      string // "GET /admin/dashboard", "query booking", "push bot"
	StatusCode int    // HTTP status; 0 for queries and pushes
	DurationMs float64
	Timestamp  time.Time
}

// Collector is a fixed-size ring buffer of timing entries.
// When full, the oldest entry is overwritten. Aggregation happens on read.
type Collector struct {
	mu      sync.Mutex
	entries []Entry
	size    int
	pos     int
	count   int64 // total entries ever written
}

// NewCollector creates a collector holding at most size entries.
// PRE: none; size <= 0 selects DefaultRingSize
// POST: Returns a ready-to-use collector
func NewCollector(size int) *Collector {
	if size <= 0 {
		size = DefaultRingSize
	}
	return &Collector{
		entries: make([]Entry, size),
		size:    size,
	}
}

// Record stores e, overwriting the oldest entry when full.
// PRE: none
// POST: TotalRecorded increases by one
func (c *Collector) Record(e Entry) {
	c.mu.Lock()
	c.entries[c.pos] = e
	c.pos = (c.pos + 1) % c.size
	c.mu.Unlock()
	atomic.AddInt64(&c.count, 1)
}

// TotalRecorded returns the number of entries ever recorded.
func (c *Collector) TotalRecorded() int64 {
	return atomic.LoadInt64(&c.count)
}

// LabelStat aggregates timings for one label.
type LabelStat struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	AvgMs   float64 `json:"avgMs"`
	MaxMs   float64 `json:"maxMs"`
	TotalMs float64 `json:"totalMs"`
}

// Snapshot is the aggregated view served on /admin/perf.
type Snapshot struct {
	TotalRecorded  int64       `json:"totalRecorded"`
	Requests       int         `json:"requests"`
	RequestP50Ms   float64     `json:"requestP50Ms"`
	RequestP95Ms   float64     `json:"requestP95Ms"`
	RequestP99Ms   float64     `json:"requestP99Ms"`
	ServerErrors   int         `json:"serverErrors"`
	SlowestPaths   []LabelStat `json:"slowestPaths"`
	SlowestQueries []LabelStat `json:"slowestQueries"`
	ChatPushes     []LabelStat `json:"chatPushes"`
}

type aggregate map[string]*LabelStat

func (a aggregate) add(label string, ms float64) {
	s, ok := a[label]
	if !ok {
		s = &LabelStat{Label: label}
		a[label] = s
	}
	s.Count++
	s.TotalMs += ms
	if ms > s.MaxMs {
		s.MaxMs = ms
	}
}

// top returns the n labels with the highest average, slowest first.
func (a aggregate) top(n int) []LabelStat {
	list := make([]LabelStat, 0, len(a))
	for _, s := range a {
		s.AvgMs = s.TotalMs / float64(s.Count)
		list = append(list, *s)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].AvgMs == list[j].AvgMs {
			return list[i].Label < list[j].Label
		}
		return list[i].AvgMs > list[j].AvgMs
	})
	if n > 0 && len(list) > n {
		list = list[:n]
	}
	return list
}

// Snapshot aggregates entries recorded at or after since.
// PRE: none
// POST: Each top-N list holds at most topN labels (all when topN <= 0)
func (c *Collector) Snapshot(since time.Time, topN int) Snapshot {
	c.mu.Lock()
	buf := make([]Entry, c.size)
	copy(buf, c.entries)
	c.mu.Unlock()

	var durations []float64
	requests, queries, pushes := aggregate{}, aggregate{}, aggregate{}
	snap := Snapshot{TotalRecorded: c.TotalRecorded()}

	for _, e := range buf {
		if e.Timestamp.IsZero() || e.Timestamp.Before(since) {
			continue
		}
		switch e.Kind {
		case KindRequest:
			durations = append(durations, e.DurationMs)
			requests.add(e.Label, e.DurationMs)
			if e.StatusCode >= 500 {
				snap.ServerErrors++
			}
		case KindQuery:
			queries.add(e.Label, e.DurationMs)
		case KindPush:
			pushes.add(e.Label, e.DurationMs)
		}
	}

	snap.Requests = len(durations)
	snap.SlowestPaths = requests.top(topN)
	snap.SlowestQueries = queries.top(topN)
	snap.ChatPushes = pushes.top(topN)
	if len(durations) > 0 {
		sort.Float64s(durations)
		snap.RequestP50Ms = percentile(durations, 50)
		snap.RequestP95Ms = percentile(durations, 95)
		snap.RequestP99Ms = percentile(durations, 99)
	}
	return snap
}

// percentile interpolates the p-th percentile of a sorted slice.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := (p / 100) * float64(len(sorted)-1)
	lower := int(math.Floor(idx))
	upper := int(math.Ceil(idx))
	if lower == upper || upper >= len(sorted) {
		return sorted[lower]
	}
	frac := idx - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac
}
