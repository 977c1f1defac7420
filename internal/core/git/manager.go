// Package git initializes version control for generated projects using
// go-git, so no system git binary is required.
package git

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"go.uber.org/zap"
)

// ErrAlreadyRepository is returned when dir already holds a repository,
// for example one created by a framework generator.
var ErrAlreadyRepository = errors.New("git: already a repository")

// Initializer creates a repository in a directory.
type Initializer interface {
	Init(ctx context.Context, dir string) error
}

// Compile-time interface compliance check.
var _ Initializer = (*gitManager)(nil)

// gitManager implements Initializer with go-git.
type gitManager struct {
	branch plumbing.ReferenceName
	logger *zap.Logger
}

// NewInitializer returns an Initializer whose repositories start on main.
func NewInitializer(logger *zap.Logger) Initializer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &gitManager{
		branch: plumbing.Main,
		logger: logger.With(zap.String("module", "git")),
	}
}

// Init runs the equivalent of `git init` in dir.
func (m *gitManager) Init(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve path %s: %w", dir, err)
	}

	_, err = gogit.PlainInitWithOptions(absPath, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{DefaultBranch: m.branch},
	})
	if errors.Is(err, gogit.ErrRepositoryAlreadyExists) {
		m.logger.Debug("repository already present", zap.String("dir", absPath))
		return fmt.Errorf("init %s: %w", absPath, ErrAlreadyRepository)
	}
	if err != nil {
		return fmt.Errorf("init %s: %w", absPath, err)
	}

	m.logger.Debug("repository initialized", zap.String("dir", absPath), zap.String("branch", m.branch.Short()))
	return nil
}
