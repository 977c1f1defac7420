// Package doctor checks that the external tools generated projects rely on
// are installed and recent enough.
package doctor

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"go.uber.org/zap"

	"github.com/PankajKumardev/initgen/internal/stack"
)

// Status is the outcome of one tool check.
type Status string

const (
	StatusOK      Status = "OK"
	StatusMissing Status = "MISS"
	StatusWarn    Status = "WARN"
)

// Tool describes an external program.
type Tool struct {
	Name    string
	Args    []string // arguments that print the version
	Minimum string   // empty means any version
	Hint    string
}

// Tools is every program a stack may call.
var Tools = []Tool{
	{Name: "node", Args: []string{"--version"}, Minimum: "18.0.0", Hint: "Install Node.js from https://nodejs.org"},
	{Name: "npm", Args: []string{"--version"}, Minimum: "9.0.0", Hint: "npm ships with Node.js"},
	{Name: "npx", Args: []string{"--version"}, Hint: "npx ships with npm"},
	{Name: "python3", Args: []string{"--version"}, Minimum: "3.8.0", Hint: "Install Python from https://www.python.org"},
	{Name: "pip", Args: []string{"--version"}, Hint: "Run python3 -m ensurepip"},
	{Name: "git", Args: []string{"--version"}, Minimum: "2.28.0", Hint: "Repositories are still initialized without git; install it to commit"},
}

// Required returns the tool names a stack cannot be generated without.
func Required(d stack.Descriptor) []string {
	if d.IsPython() {
		return []string{"python3", "pip"}
	}
	if d.Manual {
		return []string{"node", "npm"}
	}
	return []string{"node", "npm", "npx"}
}

// Check is the result for one tool.
type Check struct {
	Tool     Tool
	Status   Status
	Version  string
	Detail   string
	Required bool
}

// Report is the result of a full run.
type Report struct {
	Checks []Check
}

// OK reports whether every required tool was found.
func (r *Report) OK() bool {
	for _, c := range r.Checks {
		if c.Required && c.Status == StatusMissing {
			return false
		}
	}
	return true
}

// Doctor runs tool checks.
type Doctor struct {
	lookPath func(string) (string, error)
	output   func(ctx context.Context, name string, args ...string) ([]byte, error)
	timeout  time.Duration
	logger   *zap.Logger
}

// Option configures a Doctor.
type Option func(*Doctor)

// WithLookPath replaces exec.LookPath.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(d *Doctor) { d.lookPath = fn }
}

// WithOutput replaces the function that runs a version command.
func WithOutput(fn func(ctx context.Context, name string, args ...string) ([]byte, error)) Option {
	return func(d *Doctor) { d.output = fn }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(d *Doctor) { d.logger = l }
}

// New creates a Doctor that inspects the real PATH.
func New(opts ...Option) *Doctor {
	d := &Doctor{
		lookPath: exec.LookPath,
		output:   combinedOutput,
		timeout:  10 * time.Second,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func combinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	var buf bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	return buf.Bytes(), err
}

// Run checks every tool. Tools named in required are marked Required.
func (d *Doctor) Run(ctx context.Context, required []string) *Report {
	need := make(map[string]bool, len(required))
	for _, name := range required {
		need[name] = true
	}

	report := &Report{}
	for _, tool := range Tools {
		c := d.check(ctx, tool)
		c.Required = need[tool.Name]
		report.Checks = append(report.Checks, c)
	}
	return report
}

var versionPattern = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?`)

func (d *Doctor) check(ctx context.Context, tool Tool) Check {
	c := Check{Tool: tool}

	path, err := d.lookPath(tool.Name)
	if err != nil {
		c.Status = StatusMissing
		c.Detail = tool.Hint
		return c
	}

	runCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	out, err := d.output(runCtx, path, tool.Args...)
	if err != nil {
		d.logger.Debug("version command failed", zap.String("tool", tool.Name), zap.Error(err))
		c.Status = StatusWarn
		c.Detail = fmt.Sprintf("could not run %s %s", tool.Name, strings.Join(tool.Args, " "))
		return c
	}

	raw := versionPattern.FindString(string(out))
	if raw == "" {
		c.Status = StatusWarn
		c.Detail = "unrecognized version output"
		return c
	}
	c.Version = raw

	if tool.Minimum == "" {
		c.Status = StatusOK
		return c
	}
	ok, err := meetsMinimum(raw, tool.Minimum)
	switch {
	case err != nil:
		c.Status = StatusWarn
		c.Detail = err.Error()
	case !ok:
		c.Status = StatusWarn
		c.Detail = fmt.Sprintf("version %s is older than %s", raw, tool.Minimum)
	default:
		c.Status = StatusOK
	}
	return c
}

// meetsMinimum reports whether version >= minimum.
func meetsMinimum(version, minimum string) (bool, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	constraint, err := semver.NewConstraint(">= " + minimum)
	if err != nil {
		return false, fmt.Errorf("parsing minimum %q: %w", minimum, err)
	}
	return constraint.Check(v), nil
}
