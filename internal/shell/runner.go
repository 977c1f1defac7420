// Package shell runs the external generators and package managers a stack
// depends on. Commands are split with shell quoting rules but never passed
// through a shell.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-shellwords"
	"go.uber.org/zap"
)

// Defaults for ExecRunner.
const (
	DefaultTimeout        = 5 * time.Minute
	DefaultMaxOutputBytes = 50 << 20
)

var (
	// ErrEmptyCommand is returned for a blank command line.
	ErrEmptyCommand = errors.New("shell: empty command")

	// ErrTimeout matches a CommandError caused by the per-command timeout.
	ErrTimeout = errors.New("shell: command timed out")
)

// Runner runs a command line in a directory and reports success or failure.
type Runner interface {
	Run(ctx context.Context, dir, command string) error
}

// CommandError describes a failed command.
type CommandError struct {
	Command  string
	Dir      string
	ExitCode int // -1 when the process did not exit normally
	Output   string
	Timeout  bool
	Err      error
}

func (e *CommandError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "command %q", e.Command)
	switch {
	case e.Timeout:
		b.WriteString(" timed out")
	case e.ExitCode >= 0:
		fmt.Fprintf(&b, " exited with code %d", e.ExitCode)
	default:
		fmt.Fprintf(&b, " failed: %v", e.Err)
	}
	if line := lastLine(e.Output); line != "" {
		b.WriteString(": ")
		b.WriteString(line)
	}
	return b.String()
}

func (e *CommandError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrTimeout) match timed-out commands.
func (e *CommandError) Is(target error) bool {
	return target == ErrTimeout && e.Timeout
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	timeout   time.Duration
	maxOutput int
	env       []string
	logger    *zap.Logger
}

// Option configures an ExecRunner.
type Option func(*ExecRunner)

// WithTimeout bounds each command. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(r *ExecRunner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithMaxOutput bounds the captured combined output.
func WithMaxOutput(n int) Option {
	return func(r *ExecRunner) {
		if n > 0 {
			r.maxOutput = n
		}
	}
}

// WithEnv appends KEY=VALUE entries to the inherited environment.
func WithEnv(env ...string) Option {
	return func(r *ExecRunner) {
		r.env = append(r.env, env...)
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *ExecRunner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewExecRunner creates an ExecRunner.
func NewExecRunner(opts ...Option) *ExecRunner {
	r := &ExecRunner{
		timeout:   DefaultTimeout,
		maxOutput: DefaultMaxOutputBytes,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With(zap.String("module", "shell"))
	return r
}

// Run splits command and executes it in dir. Output is captured, not streamed.
func (r *ExecRunner) Run(ctx context.Context, dir, command string) error {
	args, err := shellwords.Parse(command)
	if err != nil {
		return fmt.Errorf("parse command %q: %w", command, err)
	}
	if len(args) == 0 {
		return ErrEmptyCommand
	}

	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, args[0], args[1:]...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), r.env...)
	cmd.WaitDelay = time.Second

	out := &boundedBuffer{max: r.maxOutput}
	cmd.Stdout = out
	cmd.Stderr = out

	start := time.Now()
	r.logger.Debug("running command", zap.String("command", command), zap.String("dir", dir))

	err = cmd.Run()
	elapsed := time.Since(start)
	if err == nil {
		r.logger.Debug("command finished", zap.String("command", command), zap.Duration("elapsed", elapsed))
		return nil
	}

	ce := &CommandError{
		Command:  command,
		Dir:      dir,
		ExitCode: -1,
		Output:   out.String(),
		Err:      err,
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.Exited() {
		ce.ExitCode = exitErr.ExitCode()
	}
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		ce.Timeout = true
	}

	r.logger.Warn("command failed",
		zap.String("command", command),
		zap.String("dir", dir),
		zap.Int("exit_code", ce.ExitCode),
		zap.Bool("timeout", ce.Timeout),
		zap.Bool("truncated", out.Truncated()),
		zap.Duration("elapsed", elapsed),
	)
	return ce
}

// boundedBuffer keeps the first max bytes written to it and drops the rest.
type boundedBuffer struct {
	mu        sync.Mutex
	buf       bytes.Buffer
	max       int
	truncated bool
}

func (b *boundedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if room := b.max - b.buf.Len(); room < len(p) {
		b.truncated = true
		if room > 0 {
			b.buf.Write(p[:room])
		}
		return len(p), nil
	}
	return b.buf.Write(p)
}

func (b *boundedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *boundedBuffer) Truncated() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.truncated
}

func lastLine(s string) string {
	s = strings.TrimRight(s, "\r\n\t ")
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(s)
}
