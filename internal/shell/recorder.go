package shell

import (
	"context"
	"sync"
)

// Call is one command observed by a Recorder.
type Call struct {
	Dir     string
	Command string
}

// Recorder is a Runner that records invocations instead of spawning
// processes. Selected commands can be made to fail, and Hook can emulate a
// command's side effects such as a generator creating its project directory.
type Recorder struct {
	// Hook runs for every command before failures are applied. A non-nil
	// return value becomes the command's result.
	Hook func(dir, command string) error

	mu    sync.Mutex
	calls []Call
	fail  map[string]error
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{fail: make(map[string]error)}
}

// FailOn makes command fail with err, or with an exit-code-1 CommandError
// when err is nil.
func (r *Recorder) FailOn(command string, err error) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err == nil {
		err = &CommandError{Command: command, ExitCode: 1, Output: "npm ERR! simulated failure"}
	}
	r.fail[command] = err
	return r
}

func (r *Recorder) Run(ctx context.Context, dir, command string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	r.calls = append(r.calls, Call{Dir: dir, Command: command})
	failErr := r.fail[command]
	hook := r.Hook
	r.mu.Unlock()

	if hook != nil {
		if err := hook(dir, command); err != nil {
			return err
		}
	}
	return failErr
}

// Calls returns the recorded invocations in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Commands returns the recorded command lines in order.
func (r *Recorder) Commands() []string {
	calls := r.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.Command
	}
	return out
}
