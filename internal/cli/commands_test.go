package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	cerr "github.com/cockroachdb/errors"

	"github.com/PankajKumardev/initgen/internal/cli/wizard"
	"github.com/PankajKumardev/initgen/internal/downloads"
)

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"stacks", "stats", "docs", "doctor", "version"} {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root should have %q subcommand", name)
		}
	}
}

func TestReportError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
		want    []string
	}{
		{"nil", nil, false, nil},
		{"cancelled", wizard.ErrCancelled, false, []string{"Setup cancelled."}},
		{"hint", cerr.WithHint(errors.New("boom"), "try again"), true, []string{"✗ boom", "Hint: try again"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := reportError(&buf, tt.err)
			if (err != nil) != tt.wantErr {
				t.Errorf("reportError() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("output %q missing %q", buf.String(), w)
				}
			}
		})
	}
}

func TestStacksCmd(t *testing.T) {
	env := newTestEnv(t)

	if err := env.execute("stacks"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, id := range env.deps.Catalog.IDs() {
		if !strings.Contains(env.out.String(), id) {
			t.Errorf("stacks output missing %q", id)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	env := newTestEnv(t)

	if err := env.execute("version"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(env.out.String(), "initgen ") {
		t.Errorf("version output = %q", env.out.String())
	}
}

func TestDoctorCmd(t *testing.T) {
	env := newTestEnv(t)

	if err := env.execute("doctor"); err != nil {
		t.Fatalf("execute: %v\n%s", err, env.out.String())
	}
	if !strings.Contains(env.out.String(), "[ OK ] node") {
		t.Errorf("doctor output:\n%s", env.out.String())
	}
}

func TestDoctorCmd_UnknownStack(t *testing.T) {
	env := newTestEnv(t)

	err := env.execute("doctor", "--stack", "cobol")
	if err == nil {
		t.Fatal("expected error for unknown stack")
	}
	if !strings.Contains(env.out.String(), "initgen stacks") {
		t.Errorf("output missing hint:\n%s", env.out.String())
	}
}

func TestStatsCmd_Fallback(t *testing.T) {
	env := newTestEnv(t)

	if err := env.execute("stats"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	out := env.out.String()
	for _, want := range []string{"Weekly downloads of initgen", "Mon", "Sun", "Data unavailable"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "This week") {
		t.Error("fallback data must not report totals")
	}
}

func TestRenderStats_Ready(t *testing.T) {
	s := &downloads.Stats{
		Package: "initgen",
		Trend: []downloads.DataPoint{
			{Label: "Jan 01", Value: 0},
			{Label: "Jan 02", Value: 50},
			{Label: "Jan 03", Value: 100},
		},
		Weekly:  1234567,
		Monthly: 2500,
		Status:  downloads.StatusReady,
	}

	var buf bytes.Buffer
	renderStats(&buf, s, 80)
	out := buf.String()

	for _, want := range []string{"▁", "█", "Jan 03", "1,234,567 (1.2M)", "2,500 (2.5K)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	renderStats(&buf, s, 5)
	if strings.Contains(buf.String(), "Jan 01") {
		t.Error("labels should be dropped when the terminal is too narrow")
	}
}

func TestSparkBlock(t *testing.T) {
	values := []int64{0, 7, 14}
	tests := []struct {
		v    int64
		want rune
	}{
		{0, '▁'},
		{7, '▄'},
		{14, '█'},
	}
	for _, tt := range tests {
		if got := sparkBlock(tt.v, values); got != tt.want {
			t.Errorf("sparkBlock(%d) = %q, want %q", tt.v, got, tt.want)
		}
	}
	if got := sparkBlock(5, []int64{0, 0}); got != '▁' {
		t.Errorf("sparkBlock with zero max = %q", got)
	}
}
