package downloads

import (
	"errors"
	"slices"
	"testing"
)

func TestFallback(t *testing.T) {
	t.Parallel()

	cause := errors.New("offline")
	s := Fallback("initgen", cause)

	if s.Status != StatusError {
		t.Errorf("Status = %q, want %q", s.Status, StatusError)
	}
	if !errors.Is(s.Err, cause) {
		t.Errorf("Err = %v, want %v", s.Err, cause)
	}
	if s.Weekly != 0 || s.Monthly != 0 {
		t.Errorf("totals = %d/%d, want 0/0", s.Weekly, s.Monthly)
	}
	if got := s.Values(); !slices.Equal(got, []int64{12, 18, 15, 24, 21, 30, 27}) {
		t.Errorf("Values() = %v", got)
	}
	if got := s.Labels(); got[0] != "Mon" || got[6] != "Sun" {
		t.Errorf("Labels() = %v", got)
	}
}

func TestStatusTexts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status  Status
		message string
		overlay string
	}{
		{StatusLoading, "Fetching npm download data...", "Loading download data..."},
		{StatusEmpty, "No npm downloads recorded yet. Once installs land, this chart updates automatically.", "No downloads yet"},
		{StatusReady, "Weekly npm downloads pulled directly from the npm registry.", ""},
		{StatusError, "Could not load npm download data right now. Try again after a refresh.", "Data unavailable"},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			s := &Stats{Status: tt.status}
			if got := s.Message(); got != tt.message {
				t.Errorf("Message() = %q, want %q", got, tt.message)
			}
			if got := s.Overlay(); got != tt.overlay {
				t.Errorf("Overlay() = %q, want %q", got, tt.overlay)
			}
		})
	}

	if got := Loading("initgen"); got.Status != StatusLoading || len(got.Trend) != 0 {
		t.Errorf("Loading() = %+v", got)
	}
}
