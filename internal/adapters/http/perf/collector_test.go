package perf

import (
	"sync"
	"testing"
	"time"
)

// TestCollector_RingOverwrite verifies the buffer keeps only the newest entries.
func TestCollector_RingOverwrite(t *testing.T) {
	c := NewCollector(3)
	now := time.Now()
	for i := 1; i <= 5; i++ {
		c.Record(Entry{Kind: KindRequest, Label: "GET /", DurationMs: float64(i), Timestamp: now})
	}
	if c.TotalRecorded() != 5 {
		t.Errorf("TotalRecorded = %d, want 5", c.TotalRecorded())
	}
	snap := c.Snapshot(now.Add(-time.Second), 10)
	if snap.Requests != 3 {
		t.Fatalf("Requests = %d, want 3", snap.Requests)
	}
	if snap.SlowestPaths[0].MaxMs != 5 || snap.SlowestPaths[0].AvgMs != 4 {
		t.Errorf("stat = %+v, want avg 4 max 5", snap.SlowestPaths[0])
	}
}

// TestCollector_Percentiles verifies interpolation over 1..100.
func TestCollector_Percentiles(t *testing.T) {
	c := NewCollector(200)
	now := time.Now()
	for i := 1; i <= 100; i++ {
		c.Record(Entry{Kind: KindRequest, Label: "GET /p", DurationMs: float64(i), Timestamp: now})
	}
	snap := c.Snapshot(now.Add(-time.Minute), 10)
	if snap.RequestP50Ms < 49 || snap.RequestP50Ms > 51 {
		t.Errorf("P50 = %v, want ~50", snap.RequestP50Ms)
	}
	if snap.RequestP99Ms < 98 || snap.RequestP99Ms > 100 {
		t.Errorf("P99 = %v, want ~99", snap.RequestP99Ms)
	}
}

// TestCollector_KindsAreSeparated verifies queries and pushes never count as requests.
func TestCollector_KindsAreSeparated(t *testing.T) {
	c := NewCollector(100)
	now := time.Now()
	c.Record(Entry{Kind: KindRequest, Label: "POST /chat/messages", StatusCode: 500, DurationMs: 3, Timestamp: now})
	c.Record(Entry{Kind: KindQuery, Label: "exec chat_message", DurationMs: 1, Timestamp: now})
	c.Record(Entry{Kind: KindPush, Label: "push bot", DurationMs: 0.5, Timestamp: now})

	snap := c.Snapshot(now.Add(-time.Minute), 0)
	if snap.Requests != 1 || snap.ServerErrors != 1 {
		t.Errorf("Requests = %d, ServerErrors = %d", snap.Requests, snap.ServerErrors)
	}
	if len(snap.SlowestQueries) != 1 || snap.SlowestQueries[0].Label != "exec chat_message" {
		t.Errorf("SlowestQueries = %+v", snap.SlowestQueries)
	}
	if len(snap.ChatPushes) != 1 || snap.ChatPushes[0].Label != "push bot" {
		t.Errorf("ChatPushes = %+v", snap.ChatPushes)
	}
}

// TestCollector_FiltersBySince verifies old entries are excluded.
func TestCollector_FiltersBySince(t *testing.T) {
	c := NewCollector(100)
	c.Record(Entry{Kind: KindRequest, Label: "GET /old", DurationMs: 100, Timestamp: time.Now().Add(-2 * time.Hour)})
	c.Record(Entry{Kind: KindRequest, Label: "GET /new", DurationMs: 10, Timestamp: time.Now()})

	snap := c.Snapshot(time.Now().Add(-time.Hour), 10)
	if len(snap.SlowestPaths) != 1 || snap.SlowestPaths[0].Label != "GET /new" {
		t.Fatalf("SlowestPaths = %+v", snap.SlowestPaths)
	}
}

// TestCollector_TopN verifies truncation keeps the slowest labels.
func TestCollector_TopN(t *testing.T) {
	c := NewCollector(100)
	now := time.Now()
	for i, label := range []string{"a", "b", "c", "d"} {
		c.Record(Entry{Kind: KindQuery, Label: label, DurationMs: float64(i + 1), Timestamp: now})
	}
	snap := c.Snapshot(now.Add(-time.Minute), 2)
	if len(snap.SlowestQueries) != 2 || snap.SlowestQueries[0].Label != "d" || snap.SlowestQueries[1].Label != "c" {
		t.Errorf("SlowestQueries = %+v", snap.SlowestQueries)
	}
}

// TestCollector_ConcurrentWrites verifies Record is goroutine safe.
func TestCollector_ConcurrentWrites(t *testing.T) {
	c := NewCollector(1000)
	now := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				c.Record(Entry{Kind: KindRequest, Label: "GET /c", DurationMs: float64(n), Timestamp: now})
			}
		}(i)
	}
	wg.Wait()
	if c.TotalRecorded() != 1000 {
		t.Errorf("TotalRecorded = %d, want 1000", c.TotalRecorded())
	}
}

func BenchmarkCollectorRecord(b *testing.B) {
	c := NewCollector(DefaultRingSize)
	e := Entry{Kind: KindRequest, Label: "GET /bench", StatusCode: 200, DurationMs: 1.5, Timestamp: time.Now()}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c.Record(e)
	}
}
