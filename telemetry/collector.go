// Package telemetry accumulates per-step observations of a simulation and
// writes them out as CSV time series. It only ever reads simulation state.
package telemetry

import (
	"github.com/sgfost/pedestrians-with-cognitive-heuristics/sim"
)

// Row is one sampled observation.
type Row struct {
	Time            float64 `csv:"time"`
	Active          int     `csv:"active"`
	MeanSpeed       float64 `csv:"mean_speed"`
	Occupancy       float64 `csv:"occupancy"`
	MeanCompression float64 `csv:"mean_compression"`
}

// Collector stores sampled rows and aggregates them into fixed-duration
// windows.
type Collector struct {
	windowSeconds float64
	rows          []Row
}

// NewCollector creates a collector aggregating over windows of the given
// duration in simulation seconds.
func NewCollector(windowSeconds float64) *Collector {
	if windowSeconds <= 0 {
		windowSeconds = 1
	}
	return &Collector{windowSeconds: windowSeconds}
}

// Record stores one metrics snapshot.
func (c *Collector) Record(m sim.Metrics) {
	c.rows = append(c.rows, Row{
		Time:            m.Time,
		Active:          m.Active,
		MeanSpeed:       m.MeanSpeed,
		Occupancy:       m.Occupancy,
		MeanCompression: m.MeanCompression,
	})
}

// Rows returns every recorded observation in order.
func (c *Collector) Rows() []Row {
	return c.rows
}

// Windows groups the recorded rows into consecutive windows and
// summarizes each.
func (c *Collector) Windows() []WindowStats {
	var out []WindowStats
	var bucket []Row
	edge := c.windowSeconds
	flush := func() {
		if len(bucket) > 0 {
			out = append(out, summarize(bucket, edge))
			bucket = bucket[:0]
		}
	}
	for _, r := range c.rows {
		for r.Time >= edge {
			flush()
			edge += c.windowSeconds
		}
		bucket = append(bucket, r)
	}
	flush()
	return out
}
