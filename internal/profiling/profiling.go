package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Lightweight span profiler: durations are summed per name until Reset.

// Span is the accumulated time and call count recorded under one name.
type Span struct {
	Total time.Duration
	Count int
}

var (
	mu    sync.Mutex
	spans = make(map[string]Span)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("meshing.MeshChunks")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		Record(name, time.Since(start))
	}
}

// Record adds an already measured duration.
func Record(name string, d time.Duration) {
	mu.Lock()
	s := spans[name]
	s.Total += d
	s.Count++
	spans[name] = s
	mu.Unlock()
}

// Reset clears all recorded spans.
func Reset() {
	mu.Lock()
	clear(spans)
	mu.Unlock()
}

// Snapshot returns a copy of the current spans.
func Snapshot() map[string]Span {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]Span, len(spans))
	for k, v := range spans {
		out[k] = v
	}
	return out
}

// TopN formats the n longest spans, longest first.
// Example: "meshing.MeshChunks:42.1ms, meshing.job:38.0ms(x64)"
func TopN(n int) string {
	ss := Snapshot()
	type pair struct {
		name string
		span Span
	}
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, span: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].span.Total == list[j].span.Total {
			return list[i].name < list[j].name
		}
		return list[i].span.Total > list[j].span.Total
	})
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, list[i].name+":"+formatSpan(list[i].span))
	}
	return strings.Join(parts, ", ")
}

func formatSpan(s Span) string {
	ms := float64(s.Total.Microseconds()) / 1000.0
	out := fmt.Sprintf("%.1fms", ms)
	if s.Count > 1 {
		out += fmt.Sprintf("(x%d)", s.Count)
	}
	return out
}
