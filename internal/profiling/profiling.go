// Package profiling records wall-clock time spent in named generation stages.
package profiling

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Recorder accumulates stage durations. The zero value is not usable; call
// NewRecorder.
type Recorder struct {
	mu     sync.Mutex
	totals map[string]time.Duration
	order  []string
}

// Stage is one named duration.
type Stage struct {
	Name     string
	Duration time.Duration
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{totals: make(map[string]time.Duration)}
}

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer rec.Track("biomemap.Build")()
func (r *Recorder) Track(name string) func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		d := time.Since(start)
		r.Add(name, d)
		return d
	}
}

// Add records d under name.
func (r *Recorder) Add(name string, d time.Duration) {
	r.mu.Lock()
	if _, ok := r.totals[name]; !ok {
		r.order = append(r.order, name)
	}
	r.totals[name] += d
	r.mu.Unlock()
}

// Reset clears all totals.
func (r *Recorder) Reset() {
	r.mu.Lock()
	clear(r.totals)
	r.order = r.order[:0]
	r.mu.Unlock()
}

// Stages returns the recorded stages in first-seen order.
func (r *Recorder) Stages() []Stage {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Stage, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, Stage{Name: name, Duration: r.totals[name]})
	}
	return out
}

// Total returns the sum of all stages.
func (r *Recorder) Total() time.Duration {
	var total time.Duration
	for _, s := range r.Stages() {
		total += s.Duration
	}
	return total
}

// TopN formats the n slowest stages.
// Example: "heightmap:4.2ms, biomemap:2.1ms"
func (r *Recorder) TopN(n int) string {
	list := r.Stages()
	sort.SliceStable(list, func(i, j int) bool { return list[i].Duration > list[j].Duration })
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, list[i].Name+":"+FormatDuration(list[i].Duration))
	}
	return strings.Join(parts, ", ")
}

// FormatDuration renders d in milliseconds with one decimal.
func FormatDuration(d time.Duration) string {
	return formatMs(float64(d.Microseconds()) / 1000.0)
}

func formatMs(ms float64) string {
	// one decimal, dropping ".0"
	return strconv.FormatFloat(math.Floor(ms*10+0.0001)/10, 'f', -1, 64) + "ms"
}
