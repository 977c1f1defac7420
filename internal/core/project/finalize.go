package project

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/PankajKumardev/initgen/internal/core/git"
	"github.com/PankajKumardev/initgen/internal/template"
)

// writeIgnoreFile creates .gitignore, or appends to the one a generator wrote.
func (r *run) writeIgnoreFile(_ context.Context) error {
	content, err := r.deployer.Render(template.IgnoreTemplate(string(r.desc.Category)), r.tmplCtx)
	if err != nil {
		return fmt.Errorf("render .gitignore: %w", err)
	}

	p := filepath.Join(r.path, ".gitignore")
	if fileExists(r.fs, p) {
		existing, err := afero.ReadFile(r.fs, p)
		if err != nil {
			return fmt.Errorf("read .gitignore: %w", err)
		}
		content = append(append(existing, '\n'), content...)
	}
	if err := afero.WriteFile(r.fs, p, content, 0o644); err != nil {
		return fmt.Errorf("write .gitignore: %w", err)
	}
	r.result.addFiles(".gitignore")
	return nil
}

// writeReadme writes README.md unless the project already has one.
func (r *run) writeReadme(_ context.Context) error {
	p := filepath.Join(r.path, "README.md")
	if fileExists(r.fs, p) {
		return nil
	}

	content, err := r.deployer.Render(template.ReadmeTemplate(string(r.desc.Category)), r.tmplCtx)
	if err != nil {
		return fmt.Errorf("render README.md: %w", err)
	}
	if err := afero.WriteFile(r.fs, p, content, 0o644); err != nil {
		return fmt.Errorf("write README.md: %w", err)
	}
	r.result.addFiles("README.md")
	return nil
}

// initGit initializes a repository when requested. A repository the
// generator already created counts as success.
func (r *run) initGit(ctx context.Context) error {
	if !r.answers.InitGit {
		return nil
	}

	err := r.git.Init(ctx, r.path)
	switch {
	case err == nil, errors.Is(err, git.ErrAlreadyRepository):
		r.reporter.Done("Initialized git repository")
	case ctx.Err() != nil:
		return ctx.Err()
	default:
		r.warn(err, "Could not initialize git repository", manualHint(cmdGitInit))
	}
	return nil
}
