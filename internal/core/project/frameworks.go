package project

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/PankajKumardev/initgen/internal/stack"
	"github.com/PankajKumardev/initgen/internal/template"
)

const tailwindImport = `@import "tailwindcss";`

// scaffoldGenerator runs the stack's framework generator in the work
// directory, then applies the framework's starter templates.
func (r *run) scaffoldGenerator(ctx context.Context) error {
	command := r.desc.Command(r.answers.ProjectName, r.typeScript)
	r.reporter.Step("Running: " + command)

	if err := r.exec(ctx, r.workDir, command); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return cerr.WithHint(
			fmt.Errorf("%w: %w", ErrGeneratorFailed, err),
			"Check that Node.js and npm are installed and that you are online, then try again.",
		)
	}
	if !dirExists(r.fs, r.path) {
		return fmt.Errorf("%w: generator did not create %s", ErrGeneratorFailed, r.path)
	}
	r.reporter.Done("Generated " + r.desc.Name + " project")

	switch r.desc.Framework {
	case stack.FrameworkVite:
		switch {
		case r.desc.SetupShadcn:
			return r.setupShadcn(ctx)
		case r.desc.SetupTailwind:
			return r.setupTailwind(ctx)
		default:
			return r.setupReact(ctx)
		}
	case stack.FrameworkNext:
		return r.setupNext(ctx)
	case stack.FrameworkVue:
		return r.setupVue(ctx)
	default:
		return nil
	}
}

// setupReact installs dependencies and writes the React starter page.
// The page is written even when the install fails.
func (r *run) setupReact(ctx context.Context) error {
	if r.desc.Install != "" {
		r.runChain(ctx, []string{r.desc.Install})
	}
	if err := r.deploy(ctx, template.SetReact); err != nil {
		return err
	}
	r.reporter.Done("Created React template")
	return nil
}

// setupTailwind configures Tailwind CSS v4 through its Vite plugin.
func (r *run) setupTailwind(ctx context.Context) error {
	r.reporter.Step("Setting up Tailwind CSS...")

	var chain []string
	if r.desc.Install != "" {
		chain = append(chain, r.desc.Install)
	}
	chain = append(chain, cmdTailwindInstall)
	if !r.runChain(ctx, chain) {
		return nil
	}

	template.WithViteConfig(detectViteConfig(r.fs, r.path))(r.tmplCtx)
	if err := r.deploy(ctx, template.SetTailwind); err != nil {
		return err
	}

	appCSS := filepath.Join(r.path, "src", "App.css")
	if err := r.fs.Remove(appCSS); err != nil && !errors.Is(err, os.ErrNotExist) {
		r.log.Debug("remove App.css", zap.Error(err))
	}
	r.reporter.Done("Configured Tailwind CSS v4")
	return nil
}

// setupShadcn configures Tailwind, the @ import alias and shadcn/ui.
func (r *run) setupShadcn(ctx context.Context) error {
	r.reporter.Step("Setting up shadcn/ui...")

	if !r.runChain(ctx, []string{cmdShadcnTailwind}) {
		return nil
	}
	r.runOne(ctx, cmdTypesNode, manualHint(cmdTypesNode))

	template.WithViteConfig(detectViteConfig(r.fs, r.path))(r.tmplCtx)
	if r.typeScript {
		r.mergeTSConfigs()
	}

	if err := r.deploy(ctx, template.SetShadcn); err != nil {
		return err
	}
	r.reporter.Done("Created shadcn/ui configuration")

	if r.runOne(ctx, cmdShadcnUtils, cmdShadcnInit) {
		r.reporter.Done("shadcn/ui setup complete")
	}
	return nil
}

// mergeTSConfigs adds the @ alias to every tsconfig the Vite template ships.
func (r *run) mergeTSConfigs() {
	for _, name := range []string{"tsconfig.json", "tsconfig.app.json"} {
		p := filepath.Join(r.path, name)
		if !fileExists(r.fs, p) {
			continue
		}
		if err := r.mergeTSConfig(p); err != nil {
			r.warn(err, "Could not update "+name, cmdShadcnInit)
			continue
		}
		r.result.addFiles(name)
		r.reporter.Done("Updated " + name)
	}
}

func (r *run) mergeTSConfig(p string) error {
	data, err := afero.ReadFile(r.fs, p)
	if err != nil {
		return err
	}
	merged, err := mergeTSConfigPaths(data)
	if err != nil {
		return err
	}
	return afero.WriteFile(r.fs, p, merged, 0o644)
}

// setupNext writes the starter page into the app router directory, if any.
func (r *run) setupNext(ctx context.Context) error {
	appDir, pageExt, ok := detectNextApp(r.fs, r.path, r.typeScript)
	if !ok {
		r.log.Debug("no app directory found, skipping Next.js template")
		return nil
	}
	template.WithNextApp(appDir, pageExt)(r.tmplCtx)

	if err := r.deploy(ctx, template.SetNextPage); err != nil {
		return err
	}
	r.reporter.Done("Created Next.js template")

	if r.desc.SetupShadcn {
		return r.setupNextShadcn(ctx, appDir)
	}
	return nil
}

func (r *run) setupNextShadcn(ctx context.Context, appDir string) error {
	r.reporter.Step("Setting up shadcn/ui...")
	if err := r.deploy(ctx, template.SetNextShadcn); err != nil {
		return err
	}

	globals := filepath.Join(r.path, filepath.FromSlash(appDir), "globals.css")
	if fileExists(r.fs, globals) {
		if err := prependImport(r.fs, globals); err != nil {
			r.warn(err, "Could not update globals.css", cmdShadcnInit)
		}
	}
	r.reporter.Done("Created shadcn/ui configuration")

	r.runOne(ctx, cmdShadcnUtils, cmdShadcnInit)
	return nil
}

// prependImport puts the Tailwind import at the top of a stylesheet unless
// it is already there.
func prependImport(fsys afero.Fs, p string) error {
	data, err := afero.ReadFile(fsys, p)
	if err != nil {
		return err
	}
	if strings.Contains(string(data), tailwindImport) {
		return nil
	}
	return afero.WriteFile(fsys, p, []byte(tailwindImport+"\n\n"+string(data)), 0o644)
}

// setupVue installs dependencies and writes the Vue starter component.
func (r *run) setupVue(ctx context.Context) error {
	if r.desc.Install != "" {
		r.runChain(ctx, []string{r.desc.Install})
	}
	if err := r.deploy(ctx, template.SetVue); err != nil {
		return err
	}
	r.reporter.Done("Created Vue template")
	return nil
}
