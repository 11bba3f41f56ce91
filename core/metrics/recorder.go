package metrics

import (
	"sync/atomic"
	"time"
)

// Observer receives the final status and size of every response.
type Observer interface {
	Observe(status int, bytes int64)
}

// Recorder counts responses by status class. Safe for concurrent use.
type Recorder struct {
	started time.Time

	requests atomic.Int64
	bytes    atomic.Int64
	classes  [6]atomic.Int64 // index = status / 100
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Requests      int64   `json:"requests"`
	BytesServed   int64   `json:"bytes_served"`
	Status2xx     int64   `json:"status_2xx"`
	Status3xx     int64   `json:"status_3xx"`
	Status4xx     int64   `json:"status_4xx"`
	Status5xx     int64   `json:"status_5xx"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// NewRecorder creates a recorder whose uptime starts now.
func NewRecorder() *Recorder {
	return &Recorder{started: time.Now()}
}

// Observe records one response.
func (r *Recorder) Observe(status int, bytes int64) {
	r.requests.Add(1)
	if bytes > 0 {
		r.bytes.Add(bytes)
	}
	if class := status / 100; class >= 1 && class < len(r.classes) {
		r.classes[class].Add(1)
	}
}

// Uptime returns the time since the recorder was created.
func (r *Recorder) Uptime() time.Duration {
	return time.Since(r.started)
}

// Snapshot returns the current counters.
func (r *Recorder) Snapshot() Snapshot {
	return Snapshot{
		Requests:      r.requests.Load(),
		BytesServed:   r.bytes.Load(),
		Status2xx:     r.classes[2].Load(),
		Status3xx:     r.classes[3].Load(),
		Status4xx:     r.classes[4].Load(),
		Status5xx:     r.classes[5].Load(),
		UptimeSeconds: r.Uptime().Seconds(),
	}
}
