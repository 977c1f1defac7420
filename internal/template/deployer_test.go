package template

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/afero"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"app.tmpl":    &fstest.MapFile{Data: []byte("app for {{.ProjectName}}\n")},
		"ts.tmpl":     &fstest.MapFile{Data: []byte("typed\n")},
		"js.tmpl":     &fstest.MapFile{Data: []byte("untyped\n")},
		"css.tmpl":    &fstest.MapFile{Data: []byte("/* new */\n")},
		"readme.tmpl": &fstest.MapFile{Data: []byte("# {{.ProjectName}}\n")},
		"manage.tmpl": &fstest.MapFile{Data: []byte("#!/usr/bin/env python\n")},
	}
}

const root = "/work/demo"

func readFile(t *testing.T, fsys afero.Fs, rel string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, filepath.Join(root, rel))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return string(data)
}

func TestDeployerDeploy(t *testing.T) {
	t.Run("writes_language_variant", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		d := NewDeployer(testFS())
		files := []File{
			{Source: "app.tmpl", Dest: "src/App.{{.ComponentExt}}"},
			{Source: "ts.tmpl", Dest: "tsconfig.json", When: TypeScriptOnly},
			{Source: "js.tmpl", Dest: "jsconfig.json", When: JavaScriptOnly},
			Dir("src/models"),
		}

		tc := NewTemplateContext(WithProject("demo"), WithTypeScript(true))
		res, err := d.Deploy(context.Background(), fsys, root, files, tc)
		if err != nil {
			t.Fatalf("Deploy error: %v", err)
		}

		if got := readFile(t, fsys, "src/App.tsx"); got != "app for demo\n" {
			t.Errorf("App.tsx = %q", got)
		}
		if got := readFile(t, fsys, "tsconfig.json"); got != "typed\n" {
			t.Errorf("tsconfig.json = %q", got)
		}
		if ok, _ := afero.Exists(fsys, filepath.Join(root, "jsconfig.json")); ok {
			t.Error("jsconfig.json must not be written for TypeScript")
		}
		if ok, _ := afero.DirExists(fsys, filepath.Join(root, "src/models")); !ok {
			t.Error("src/models directory missing")
		}
		if !slices.Equal(res.Written, []string{"src/App.tsx", "tsconfig.json"}) {
			t.Errorf("Written = %v", res.Written)
		}
		if !slices.Equal(res.Dirs, []string{"src/models"}) {
			t.Errorf("Dirs = %v", res.Dirs)
		}
	})

	t.Run("modes", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		_ = afero.WriteFile(fsys, filepath.Join(root, "src/index.css"), []byte("old"), 0o644)
		_ = afero.WriteFile(fsys, filepath.Join(root, "README.md"), []byte("mine"), 0o644)

		d := NewDeployer(testFS())
		files := []File{
			{Source: "css.tmpl", Dest: "src/index.css", Mode: IfExists},
			{Source: "css.tmpl", Dest: "src/assets/main.css", Mode: IfExists},
			{Source: "readme.tmpl", Dest: "README.md", Mode: IfAbsent},
			{Source: "readme.tmpl", Dest: "docs/README.md", Mode: IfAbsent},
		}

		res, err := d.Deploy(context.Background(), fsys, root, files, NewTemplateContext(WithProject("demo")))
		if err != nil {
			t.Fatalf("Deploy error: %v", err)
		}

		if got := readFile(t, fsys, "src/index.css"); got != "/* new */\n" {
			t.Errorf("existing index.css not rewritten: %q", got)
		}
		if got := readFile(t, fsys, "README.md"); got != "mine" {
			t.Errorf("README.md overwritten: %q", got)
		}
		if got := readFile(t, fsys, "docs/README.md"); got != "# demo\n" {
			t.Errorf("docs/README.md = %q", got)
		}
		if !slices.Equal(res.Skipped, []string{"src/assets/main.css", "README.md"}) {
			t.Errorf("Skipped = %v", res.Skipped)
		}
	})

	t.Run("executable_scripts", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		d := NewDeployer(testFS())
		files := []File{{Source: "manage.tmpl", Dest: "{{.ProjectName}}/manage.py"}}

		if _, err := d.Deploy(context.Background(), fsys, root, files, NewTemplateContext(WithProject("demo"))); err != nil {
			t.Fatalf("Deploy error: %v", err)
		}
		info, err := fsys.Stat(filepath.Join(root, "demo/manage.py"))
		if err != nil {
			t.Fatalf("stat manage.py: %v", err)
		}
		if info.Mode().Perm() != 0o755 {
			t.Errorf("manage.py perm = %o, want 755", info.Mode().Perm())
		}
	})

	t.Run("path_traversal_rejected", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		d := NewDeployer(testFS())

		for _, dest := range []string{"../escape.txt", "src/../../escape.txt", "/etc/passwd"} {
			_, err := d.Deploy(context.Background(), fsys, root, []File{{Source: "app.tmpl", Dest: dest}}, nil)
			if !errors.Is(err, ErrPathTraversal) {
				t.Errorf("Deploy(%q) error = %v, want ErrPathTraversal", dest, err)
			}
		}
	})

	t.Run("render_error_names_source", func(t *testing.T) {
		fs := fstest.MapFS{"bad.tmpl": &fstest.MapFile{Data: []byte("{{.Nope}}")}}
		d := NewDeployer(fs)

		_, err := d.Deploy(context.Background(), afero.NewMemMapFs(), root, []File{{Source: "bad.tmpl", Dest: "x"}}, nil)
		if !errors.Is(err, ErrMissingTemplateKey) {
			t.Fatalf("expected ErrMissingTemplateKey, got %v", err)
		}
		if !strings.Contains(err.Error(), "bad.tmpl") {
			t.Errorf("error should name the template: %v", err)
		}
	})

	t.Run("cancelled_context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		d := NewDeployer(testFS())
		_, err := d.Deploy(ctx, afero.NewMemMapFs(), root, []File{{Source: "app.tmpl", Dest: "a"}}, nil)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

func TestDeployerListTemplates(t *testing.T) {
	d := NewDeployer(testFS())
	list := d.ListTemplates()
	if len(list) != len(testFS()) {
		t.Errorf("ListTemplates returned %d entries, want %d", len(list), len(testFS()))
	}
	if !slices.Contains(list, "manage.tmpl") {
		t.Errorf("ListTemplates missing manage.tmpl: %v", list)
	}
}
