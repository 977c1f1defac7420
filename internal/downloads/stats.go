// Package downloads fetches package download counts from the npm registry
// API and turns the weekly series into SVG chart paths.
//
// Fetch never fails: on any error it returns a static sample series with
// StatusError so callers can always draw a chart.
package downloads

import (
	"errors"
	"time"
)

// Sentinel errors for registry responses.
var (
	ErrUnexpectedStatus = errors.New("downloads: unexpected status")
	ErrRegistry         = errors.New("downloads: registry error")
)

// Status is the display state of a chart.
type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusEmpty   Status = "empty"
	StatusError   Status = "error"
)

// DataPoint is one day of the weekly series.
type DataPoint struct {
	Day   time.Time `json:"day"`
	Label string    `json:"label"`
	Value int64     `json:"value"`
}

// Stats is the outcome of one fetch.
type Stats struct {
	Package string      `json:"package"`
	Trend   []DataPoint `json:"trend"`
	Weekly  int64       `json:"weekly"`
	Monthly int64       `json:"monthly"`
	Status  Status      `json:"status"`
	Err     error       `json:"-"`
}

// sampleValues is drawn when the registry cannot be reached.
var sampleValues = []int64{12, 18, 15, 24, 21, 30, 27}

var sampleLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Fallback returns the sample series in the error state. The totals stay
// zero so sample data is never reported as real downloads.
func Fallback(pkg string, err error) *Stats {
	trend := make([]DataPoint, len(sampleValues))
	for i, v := range sampleValues {
		trend[i] = DataPoint{Label: sampleLabels[i], Value: v}
	}
	return &Stats{Package: pkg, Trend: trend, Status: StatusError, Err: err}
}

// Loading returns an empty Stats in the loading state.
func Loading(pkg string) *Stats {
	return &Stats{Package: pkg, Status: StatusLoading}
}

// Values returns the series values in order.
func (s *Stats) Values() []int64 {
	out := make([]int64, len(s.Trend))
	for i, p := range s.Trend {
		out[i] = p.Value
	}
	return out
}

// Labels returns the series labels in order.
func (s *Stats) Labels() []string {
	out := make([]string, len(s.Trend))
	for i, p := range s.Trend {
		out[i] = p.Label
	}
	return out
}

// Message is the sentence shown under the chart.
func (s *Stats) Message() string { return Message(s.Status) }

// Overlay is the text drawn over the chart, empty when ready.
func (s *Stats) Overlay() string { return Overlay(s.Status) }

// Message returns the description for a status.
func Message(status Status) string {
	switch status {
	case StatusLoading:
		return "Fetching npm download data..."
	case StatusEmpty:
		return "No npm downloads recorded yet. Once installs land, this chart updates automatically."
	case StatusReady:
		return "Weekly npm downloads pulled directly from the npm registry."
	default:
		return "Could not load npm download data right now. Try again after a refresh."
	}
}

// Overlay returns the chart overlay for a status.
func Overlay(status Status) string {
	switch status {
	case StatusLoading:
		return "Loading download data..."
	case StatusEmpty:
		return "No downloads yet"
	case StatusReady:
		return ""
	default:
		return "Data unavailable"
	}
}
