package template

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// DeployResult lists the project-relative paths a deployment touched.
type DeployResult struct {
	Written []string
	Skipped []string
	Dirs    []string
}

// Deployer renders file sets and writes them under a project root.
type Deployer interface {
	// Deploy renders every applicable File with tmplCtx and writes it below
	// root on fsys, honoring each File's Mode.
	Deploy(ctx context.Context, fsys afero.Fs, root string, files []File, tmplCtx *TemplateContext) (*DeployResult, error)

	// Render renders a single template without writing it.
	Render(source string, tmplCtx *TemplateContext) ([]byte, error)

	// ListTemplates returns the relative paths of all source templates.
	ListTemplates() []string
}

type deployer struct {
	fsys     fs.FS
	renderer Renderer
}

// NewDeployer creates a Deployer backed by the given filesystem.
// In production the fs.FS comes from go:embed; in tests use testing/fstest.MapFS.
func NewDeployer(fsys fs.FS) Deployer {
	return &deployer{fsys: fsys, renderer: NewRenderer(fsys)}
}

func (d *deployer) Deploy(ctx context.Context, fsys afero.Fs, root string, files []File, tmplCtx *TemplateContext) (*DeployResult, error) {
	if tmplCtx == nil {
		tmplCtx = NewTemplateContext()
	}
	root = filepath.Clean(root)
	result := &DeployResult{}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if !f.Applies(tmplCtx) {
			continue
		}

		dest, err := d.renderer.RenderString(f.Source+":dest", f.Dest, tmplCtx)
		if err != nil {
			return result, fmt.Errorf("template dest %q: %w", f.Dest, err)
		}
		dest = path.Clean(dest)
		if err := validateDeployPath(root, dest); err != nil {
			return result, err
		}
		destPath := filepath.Join(root, filepath.FromSlash(dest))

		if f.IsDir() {
			if err := fsys.MkdirAll(destPath, 0o755); err != nil {
				return result, fmt.Errorf("template deploy mkdir %q: %w", destPath, err)
			}
			result.Dirs = append(result.Dirs, dest)
			continue
		}

		exists, err := afero.Exists(fsys, destPath)
		if err != nil {
			return result, fmt.Errorf("template deploy stat %q: %w", destPath, err)
		}
		if (f.Mode == IfExists && !exists) || (f.Mode == IfAbsent && exists) {
			result.Skipped = append(result.Skipped, dest)
			continue
		}

		content, err := d.renderer.Render(f.Source, tmplCtx)
		if err != nil {
			return result, fmt.Errorf("template render %q: %w", f.Source, err)
		}

		if err := fsys.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
			return result, fmt.Errorf("template deploy mkdir %q: %w", filepath.Dir(destPath), err)
		}
		if err := afero.WriteFile(fsys, destPath, content, filePerm(dest)); err != nil {
			return result, fmt.Errorf("template deploy write %q: %w", destPath, err)
		}
		result.Written = append(result.Written, dest)
	}

	return result, nil
}

func (d *deployer) Render(source string, tmplCtx *TemplateContext) ([]byte, error) {
	if tmplCtx == nil {
		tmplCtx = NewTemplateContext()
	}
	return d.renderer.Render(source, tmplCtx)
}

// ListTemplates returns sorted relative paths of all files in the source FS.
func (d *deployer) ListTemplates() []string {
	var list []string
	_ = fs.WalkDir(d.fsys, ".", func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip errors during listing
		}
		if p == "." || entry.IsDir() {
			return nil
		}
		list = append(list, p)
		return nil
	})
	return list
}

// filePerm marks scripts executable.
func filePerm(dest string) os.FileMode {
	if strings.HasSuffix(dest, ".sh") || path.Base(dest) == "manage.py" {
		return 0o755
	}
	return 0o644
}

// validateDeployPath ensures a destination path does not escape projectRoot.
func validateDeployPath(projectRoot, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) || strings.HasPrefix(relPath, "/") {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absProjectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}
	absPath := filepath.Join(absProjectRoot, cleaned)
	if !strings.HasPrefix(absPath, absProjectRoot+string(filepath.Separator)) && absPath != absProjectRoot {
		return fmt.Errorf("%w: %q escapes project root", ErrPathTraversal, relPath)
	}
	return nil
}
