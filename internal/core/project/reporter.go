package project

import "sync"

// Reporter receives progress from Generate. Implementations decide how to
// render it: plain lines, a spinner, or nothing.
type Reporter interface {
	// Step announces work that is about to start.
	Step(msg string)
	// Done reports a completed step.
	Done(msg string)
	// Warn reports a best-effort step that failed; followUp tells the user
	// what to run by hand.
	Warn(msg, followUp string)
}

// NopReporter discards all progress.
type NopReporter struct{}

func (NopReporter) Step(string)         {}
func (NopReporter) Done(string)         {}
func (NopReporter) Warn(string, string) {}

// EventKind identifies a recorded Reporter call.
type EventKind string

const (
	EventStep EventKind = "step"
	EventDone EventKind = "done"
	EventWarn EventKind = "warn"
)

// Event is one recorded Reporter call.
type Event struct {
	Kind     EventKind
	Message  string
	FollowUp string
}

// RecordingReporter stores every call for later inspection.
type RecordingReporter struct {
	mu     sync.Mutex
	events []Event
}

func (r *RecordingReporter) Step(msg string) { r.add(Event{Kind: EventStep, Message: msg}) }
func (r *RecordingReporter) Done(msg string) { r.add(Event{Kind: EventDone, Message: msg}) }
func (r *RecordingReporter) Warn(msg, followUp string) {
	r.add(Event{Kind: EventWarn, Message: msg, FollowUp: followUp})
}

func (r *RecordingReporter) add(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns the recorded calls in order.
func (r *RecordingReporter) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Messages returns the messages of the given kind in order.
func (r *RecordingReporter) Messages(kind EventKind) []string {
	var out []string
	for _, e := range r.Events() {
		if e.Kind == kind {
			out = append(out, e.Message)
		}
	}
	return out
}
