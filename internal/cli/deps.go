// Package cli provides the Cobra command tree and the dependency wiring
// for the initgen binary.
package cli

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/PankajKumardev/initgen/internal/cli/wizard"
	"github.com/PankajKumardev/initgen/internal/config"
	"github.com/PankajKumardev/initgen/internal/core/git"
	"github.com/PankajKumardev/initgen/internal/docs"
	"github.com/PankajKumardev/initgen/internal/doctor"
	"github.com/PankajKumardev/initgen/internal/downloads"
	"github.com/PankajKumardev/initgen/internal/logging"
	"github.com/PankajKumardev/initgen/internal/shell"
	"github.com/PankajKumardev/initgen/internal/stack"
	"github.com/PankajKumardev/initgen/internal/ui"
)

// Dependencies holds the services commands use. It is built once per process
// in prepareDependencies; tests replace it with SetDeps.
type Dependencies struct {
	Config    *config.Config
	Logger    *zap.Logger
	Catalog   *stack.Catalog
	Runner    shell.Runner
	Git       git.Initializer
	Downloads docs.StatsSource
	Doctor    *doctor.Doctor
	Headless  *ui.HeadlessManager
	Theme     *ui.Theme

	// Prompt asks the wizard questions. It defaults to wizard.Run.
	Prompt func([]wizard.Question) (*wizard.Result, error)
}

var deps *Dependencies

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// prepareDependencies loads the configuration, pushes it onto flags the user
// left unset and wires the services. Dependencies set beforehand are kept.
func prepareDependencies(cmd *cobra.Command, _ []string) error {
	if deps != nil {
		return nil
	}

	loader := config.NewLoader(nil)
	cfg, err := loader.Load(getStringFlag(cmd, flagConfig))
	if err != nil {
		return err
	}
	if err := config.ApplyToFlags(loader.Viper(), cmd.Flags()); err != nil {
		return err
	}

	d, err := InitDependencies(cfg, getStringFlag(cmd, flagLogLevel))
	if err != nil {
		return err
	}
	deps = d
	return nil
}

// InitDependencies wires every service from cfg. level overrides
// cfg.LogLevel when non-empty.
func InitDependencies(cfg *config.Config, level string) (*Dependencies, error) {
	if level == "" {
		level = cfg.LogLevel
	}
	logger, err := logging.New(level, os.Stderr)
	if err != nil {
		return nil, err
	}

	catalog, err := stack.Default()
	if err != nil {
		return nil, fmt.Errorf("load stack catalog: %w", err)
	}

	runner := shell.NewExecRunner(
		shell.WithTimeout(cfg.CommandTimeout),
		shell.WithMaxOutput(cfg.MaxOutputBytes),
		shell.WithLogger(logger),
	)

	client := downloads.NewClient(cfg.RegistryURL, cfg.Package,
		downloads.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		downloads.WithLogger(logger),
	)

	return &Dependencies{
		Config:    cfg,
		Logger:    logger,
		Catalog:   catalog,
		Runner:    runner,
		Git:       git.NewInitializer(logger),
		Downloads: client,
		Doctor:    doctor.New(doctor.WithLogger(logger)),
		Headless:  ui.NewHeadlessManager(),
		Theme:     ui.DefaultTheme(),
		Prompt:    wizard.Run,
	}, nil
}
