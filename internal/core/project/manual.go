package project

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// scaffoldManual writes a stack's scaffold into a fresh directory and runs
// its install chain.
func (r *run) scaffoldManual(ctx context.Context) error {
	r.reporter.Step("Setting up project structure...")
	if err := r.fs.MkdirAll(r.path, 0o755); err != nil {
		return fmt.Errorf("create project directory: %w", err)
	}
	if err := r.deploy(ctx, r.desc.Scaffold); err != nil {
		return err
	}
	r.reporter.Done("Created project structure")

	r.installChain(ctx)
	return nil
}

// installChain runs Install then each PostInstall command.
func (r *run) installChain(ctx context.Context) {
	var chain []string
	if r.desc.Install != "" {
		chain = append(chain, r.desc.Install)
	}
	chain = append(chain, r.desc.PostInstall...)
	if r.runChain(ctx, chain) {
		r.log.Debug("install chain complete", zap.Int("commands", len(chain)))
	}
}
