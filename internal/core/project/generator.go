package project

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/PankajKumardev/initgen/internal/core/git"
	"github.com/PankajKumardev/initgen/internal/shell"
	"github.com/PankajKumardev/initgen/internal/stack"
	"github.com/PankajKumardev/initgen/internal/template"
)

// Generator creates projects below a working directory.
type Generator struct {
	fs       afero.Fs
	runner   shell.Runner
	git      git.Initializer
	catalog  *stack.Catalog
	deployer template.Deployer
	logger   *zap.Logger
	reporter Reporter
	workDir  string
}

// Option configures a Generator.
type Option func(*Generator)

// WithFs sets the filesystem templates, ignore files and READMEs are written to.
func WithFs(fsys afero.Fs) Option { return func(g *Generator) { g.fs = fsys } }

// WithRunner sets the subprocess runner.
func WithRunner(r shell.Runner) Option { return func(g *Generator) { g.runner = r } }

// WithGit sets the repository initializer.
func WithGit(i git.Initializer) Option { return func(g *Generator) { g.git = i } }

// WithCatalog sets the stack catalog.
func WithCatalog(c *stack.Catalog) Option { return func(g *Generator) { g.catalog = c } }

// WithDeployer sets the template deployer.
func WithDeployer(d template.Deployer) Option { return func(g *Generator) { g.deployer = d } }

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option { return func(g *Generator) { g.logger = l } }

// WithReporter sets the progress reporter.
func WithReporter(r Reporter) Option { return func(g *Generator) { g.reporter = r } }

// WithWorkDir sets the directory projects are created in.
func WithWorkDir(dir string) Option { return func(g *Generator) { g.workDir = dir } }

// NewGenerator builds a Generator. Unset collaborators default to the real
// OS filesystem, an ExecRunner, go-git and the embedded catalog and templates.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{workDir: "."}
	for _, opt := range opts {
		opt(g)
	}

	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	if g.fs == nil {
		g.fs = afero.NewOsFs()
	}
	if g.runner == nil {
		g.runner = shell.NewExecRunner(shell.WithLogger(g.logger))
	}
	if g.git == nil {
		g.git = git.NewInitializer(g.logger)
	}
	if g.catalog == nil {
		c, err := stack.Default()
		if err != nil {
			return nil, err
		}
		g.catalog = c
	}
	if g.deployer == nil {
		g.deployer = template.NewEmbeddedDeployer()
	}
	if g.reporter == nil {
		g.reporter = NopReporter{}
	}

	abs, err := filepath.Abs(g.workDir)
	if err != nil {
		return nil, fmt.Errorf("resolve work dir: %w", err)
	}
	g.workDir = abs
	return g, nil
}

// Catalog returns the catalog stacks are resolved against.
func (g *Generator) Catalog() *stack.Catalog { return g.catalog }

// run carries the state of a single Generate call.
type run struct {
	*Generator
	answers    Answers
	desc       stack.Descriptor
	path       string
	typeScript bool
	tmplCtx    *template.TemplateContext
	result     *Result
	log        *zap.Logger
}

// Generate creates the project described by answers.
//
// Fatal failures return an error and no Result. Best-effort failures are
// collected in Result.Warnings and reported through the Reporter.
func (g *Generator) Generate(ctx context.Context, answers Answers) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := answers.Validate(); err != nil {
		return nil, err
	}

	desc, ok := g.catalog.Lookup(answers.Stack)
	if !ok {
		return nil, cerr.WithHint(
			fmt.Errorf("%w: %q", ErrUnknownStack, answers.Stack),
			"Available stacks: "+strings.Join(g.catalog.IDs(), ", "),
		)
	}

	projectPath := filepath.Join(g.workDir, answers.ProjectName)
	exists, err := afero.Exists(g.fs, projectPath)
	if err != nil {
		return nil, fmt.Errorf("check project directory: %w", err)
	}
	if exists {
		return nil, cerr.WithHint(
			cerr.Wrapf(ErrDirectoryExists, "%s", answers.ProjectName),
			"Choose a different project name or remove the existing directory.",
		)
	}

	typeScript := answers.TypeScript && desc.TypeScript
	r := &run{
		Generator: g,
		answers:   answers,
		desc:      desc,
		path:      projectPath,
		result: &Result{
			ProjectPath: projectPath,
			Stack:       desc,
			NextSteps:   desc.NextSteps(answers.ProjectName),
			Tips:        append([]string(nil), desc.Tips...),
		},
		log:        g.logger.With(zap.String("stack", desc.ID), zap.String("project", answers.ProjectName)),
		typeScript: typeScript,
	}
	r.tmplCtx = r.newTemplateContext()

	steps := []func(context.Context) error{
		r.scaffold,
		r.writeIgnoreFile,
		r.writeReadme,
		r.initGit,
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := step(ctx); err != nil {
			return nil, err
		}
	}

	r.log.Info("project created",
		zap.String("path", projectPath),
		zap.Int("files", len(r.result.CreatedFiles)),
		zap.Int("warnings", len(r.result.Warnings)),
	)
	return r.result, nil
}

func (r *run) newTemplateContext() *template.TemplateContext {
	opts := []template.ContextOption{
		template.WithProject(r.answers.ProjectName),
		template.WithStack(r.desc.ID, r.desc.Name),
		template.WithTypeScript(r.typeScript),
		template.WithFlask(r.desc.ID == "python-flask"),
	}
	switch r.desc.Scaffold {
	case template.SetNodePrisma:
		opts = append(opts, template.WithDatabase(template.DatabasePrisma))
	case template.SetNodeDrizzle:
		opts = append(opts, template.WithDatabase(template.DatabaseDrizzle))
	}
	return template.NewTemplateContext(opts...)
}

func (r *run) scaffold(ctx context.Context) error {
	if r.desc.Manual {
		return r.scaffoldManual(ctx)
	}
	return r.scaffoldGenerator(ctx)
}

// deploy writes a named file set into the project and records what it wrote.
func (r *run) deploy(ctx context.Context, set string) error {
	files, err := template.FileSet(set)
	if err != nil {
		return err
	}
	res, err := r.deployer.Deploy(ctx, r.fs, r.path, files, r.tmplCtx)
	if res != nil {
		r.result.addFiles(res.Written...)
	}
	if err != nil {
		return fmt.Errorf("write %s templates: %w", set, err)
	}
	return nil
}

// exec runs command in dir.
func (r *run) exec(ctx context.Context, dir, command string) error {
	r.log.Debug("running command", zap.String("command", command), zap.String("dir", dir))
	return r.runner.Run(ctx, dir, command)
}

// warn records a best-effort failure and reports it.
func (r *run) warn(cause error, msg, followUp string) {
	w := cerr.Wrap(cause, msg)
	if followUp != "" {
		w = cerr.WithHint(w, followUp)
	}
	r.result.Warnings = append(r.result.Warnings, w)
	r.log.Warn(msg, zap.Error(cause))
	r.reporter.Warn(msg, followUp)
}
