package downloads

import "testing"

func TestFormatCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1K"},
		{1234, "1.2K"},
		{1250, "1.3K"},
		{15_400, "15.4K"},
		{999_949, "999.9K"},
		{999_999, "1M"},
		{3_400_000, "3.4M"},
		{1_000_000_000, "1B"},
		{-1500, "-1.5K"},
	}

	for _, tt := range tests {
		if got := FormatCount(tt.in); got != tt.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMessages(t *testing.T) {
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
		if got := Message(tt.status); got != tt.message {
			t.Errorf("Message(%s) = %q, want %q", tt.status, got, tt.message)
		}
		if got := Overlay(tt.status); got != tt.overlay {
			t.Errorf("Overlay(%s) = %q, want %q", tt.status, got, tt.overlay)
		}
	}
}
