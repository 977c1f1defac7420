package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/PankajKumardev/initgen/internal/cli/wizard"
	"github.com/PankajKumardev/initgen/internal/config"
	"github.com/PankajKumardev/initgen/internal/doctor"
	"github.com/PankajKumardev/initgen/internal/downloads"
	"github.com/PankajKumardev/initgen/internal/shell"
	"github.com/PankajKumardev/initgen/internal/stack"
	"github.com/PankajKumardev/initgen/internal/ui"
)

type fakeGit struct {
	dirs []string
}

func (f *fakeGit) Init(_ context.Context, dir string) error {
	f.dirs = append(f.dirs, dir)
	return nil
}

type fakeStats struct {
	stats *downloads.Stats
}

func (f fakeStats) Fetch(context.Context) *downloads.Stats { return f.stats }

// testEnv is a wired command tree backed by fakes.
type testEnv struct {
	deps   *Dependencies
	runner *shell.Recorder
	git    *fakeGit
	asked  [][]wizard.Question
	answer *wizard.Result
	out    bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		runner: shell.NewRecorder(),
		git:    &fakeGit{},
	}
	hm := ui.NewHeadlessManager()
	hm.ForceHeadless(true)

	env.deps = &Dependencies{
		Config:    config.NewDefaultConfig(),
		Logger:    zap.NewNop(),
		Catalog:   stack.MustDefault(),
		Runner:    env.runner,
		Git:       env.git,
		Downloads: fakeStats{stats: downloads.Fallback("initgen", errors.New("offline"))},
		Doctor: doctor.New(
			doctor.WithLookPath(func(name string) (string, error) { return name, nil }),
			doctor.WithOutput(func(context.Context, string, ...string) ([]byte, error) {
				return []byte("v20.11.0"), nil
			}),
		),
		Headless: hm,
		Theme:    &ui.Theme{NoColor: true},
		Prompt: func(qs []wizard.Question) (*wizard.Result, error) {
			env.asked = append(env.asked, qs)
			if env.answer == nil {
				return nil, wizard.ErrCancelled
			}
			return env.answer, nil
		},
	}

	SetDeps(env.deps)
	t.Cleanup(func() { SetDeps(nil) })
	return env
}

// execute runs a fresh command tree with args and returns the error as
// Execute would report it.
func (e *testEnv) execute(args ...string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&e.out)
	cmd.SetErr(&e.out)
	return reportError(&e.out, cmd.ExecuteContext(context.Background()))
}
