package project

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PankajKumardev/initgen/internal/core/git"
	"github.com/PankajKumardev/initgen/internal/shell"
)

const workDir = "/work"

type fakeGit struct {
	dirs []string
	err  error
}

func (f *fakeGit) Init(_ context.Context, dir string) error {
	f.dirs = append(f.dirs, dir)
	return f.err
}

type harness struct {
	fs       afero.Fs
	runner   *shell.Recorder
	git      *fakeGit
	reporter *RecordingReporter
	gen      *Generator
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		fs:       afero.NewMemMapFs(),
		runner:   shell.NewRecorder(),
		git:      &fakeGit{},
		reporter: &RecordingReporter{},
	}
	gen, err := NewGenerator(
		WithFs(h.fs),
		WithRunner(h.runner),
		WithGit(h.git),
		WithReporter(h.reporter),
		WithWorkDir(workDir),
	)
	require.NoError(t, err)
	h.gen = gen
	return h
}

// emulate makes the recorder create files when a generator command runs.
func (h *harness) emulate(t *testing.T, files map[string]string) {
	t.Helper()
	h.runner.Hook = func(_, command string) error {
		if !strings.Contains(command, "create") {
			return nil
		}
		for p, content := range files {
			full := filepath.Join(workDir, filepath.FromSlash(p))
			if err := h.fs.MkdirAll(filepath.Dir(full), 0o755); err != nil {
				return err
			}
			if err := afero.WriteFile(h.fs, full, []byte(content), 0o644); err != nil {
				return err
			}
		}
		return nil
	}
}

func (h *harness) read(t *testing.T, rel string) string {
	t.Helper()
	data, err := afero.ReadFile(h.fs, filepath.Join(workDir, filepath.FromSlash(rel)))
	require.NoError(t, err, rel)
	return string(data)
}

func (h *harness) exists(rel string) bool {
	ok, _ := afero.Exists(h.fs, filepath.Join(workDir, filepath.FromSlash(rel)))
	return ok
}

func TestGenerate_NodeExpressTypeScript(t *testing.T) {
	h := newHarness(t)

	res, err := h.gen.Generate(context.Background(), Answers{
		Stack: "node-express", ProjectName: "demo", TypeScript: true, InitGit: true,
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(workDir, "demo"), res.ProjectPath)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, []string{"cd demo", "npm run dev"}, res.NextSteps)

	for _, p := range []string{
		"demo/package.json", "demo/tsconfig.json", "demo/src/index.ts",
		"demo/.env.example", "demo/.gitignore", "demo/README.md",
	} {
		assert.True(t, h.exists(p), p)
	}
	assert.True(t, h.exists("demo/src/routes"))
	assert.Contains(t, h.read(t, "demo/package.json"), `"name": "demo"`)
	assert.Equal(t, "PORT=3000\nNODE_ENV=development\n", h.read(t, "demo/.env.example"))
	assert.Contains(t, res.CreatedFiles, "src/index.ts")
	assert.Contains(t, res.CreatedFiles, ".gitignore")

	assert.Equal(t, []shell.Call{{Dir: filepath.Join(workDir, "demo"), Command: "npm install"}}, h.runner.Calls())
	assert.Equal(t, []string{filepath.Join(workDir, "demo")}, h.git.dirs)
	assert.Contains(t, h.reporter.Messages(EventDone), "Installed dependencies")
	assert.Contains(t, h.reporter.Messages(EventDone), "Initialized git repository")
}

func TestGenerate_ExistingDirectory(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.fs.MkdirAll(filepath.Join(workDir, "demo"), 0o755))

	res, err := h.gen.Generate(context.Background(), Answers{Stack: "nextjs", ProjectName: "demo", InitGit: true})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrDirectoryExists)
	assert.NotEmpty(t, cerr.GetAllHints(err))

	assert.Empty(t, h.runner.Calls())
	assert.Empty(t, h.git.dirs)
	entries, err := afero.ReadDir(h.fs, filepath.Join(workDir, "demo"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerate_InvalidAnswers(t *testing.T) {
	tests := []struct {
		name    string
		answers Answers
		wantErr error
	}{
		{"empty name", Answers{Stack: "vue"}, ErrEmptyProjectName},
		{"bad name", Answers{Stack: "vue", ProjectName: "my app"}, ErrInvalidProjectName},
		{"missing stack", Answers{ProjectName: "demo"}, ErrInvalidAnswers},
		{"unknown stack", Answers{Stack: "rails", ProjectName: "demo"}, ErrUnknownStack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			_, err := h.gen.Generate(context.Background(), tt.answers)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, h.runner.Calls())
			assert.False(t, h.exists("demo"))
		})
	}
}

func TestGenerate_CancelledContext(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.gen.Generate(ctx, Answers{Stack: "node-express", ProjectName: "demo"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, h.runner.Calls())
}

func TestGenerate_GeneratorFailureIsFatal(t *testing.T) {
	h := newHarness(t)
	cmd := "npm create vite@latest demo -- --template react"
	h.runner.FailOn(cmd, nil)

	res, err := h.gen.Generate(context.Background(), Answers{Stack: "react-vite", ProjectName: "demo", InitGit: true})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrGeneratorFailed)

	var ce *shell.CommandError
	assert.True(t, errors.As(err, &ce))
	assert.Equal(t, []string{cmd}, h.runner.Commands())
	assert.Empty(t, h.git.dirs)
}

func TestGenerate_GeneratorWithoutOutputIsFatal(t *testing.T) {
	h := newHarness(t)

	_, err := h.gen.Generate(context.Background(), Answers{Stack: "vue", ProjectName: "demo"})
	assert.ErrorIs(t, err, ErrGeneratorFailed)
}

func TestGenerate_ReactViteInstallFailureStillWritesTemplate(t *testing.T) {
	h := newHarness(t)
	h.emulate(t, map[string]string{
		"demo/package.json":   "{}",
		"demo/src/index.css":  ":root {}",
		"demo/src/App.jsx":    "old",
		"demo/.gitignore":     "dist\n",
		"demo/vite.config.js": "export default {}",
	})
	h.runner.FailOn("npm install", nil)

	res, err := h.gen.Generate(context.Background(), Answers{Stack: "react-vite", ProjectName: "demo"})
	require.NoError(t, err)

	require.Len(t, res.Warnings, 1)
	assert.Equal(t, []string{`Run "npm install" manually.`}, res.FollowUps())
	assert.Error(t, res.Err())
	assert.NotEqual(t, "old", h.read(t, "demo/src/App.jsx"))
	assert.True(t, h.exists("demo/src/App.css"))

	assert.Equal(t, []string{
		"npm create vite@latest demo -- --template react",
		"npm install",
	}, h.runner.Commands())
	assert.Equal(t, workDir, h.runner.Calls()[0].Dir)
	assert.Equal(t, filepath.Join(workDir, "demo"), h.runner.Calls()[1].Dir)
}

func TestGenerate_IgnoreFileAppendsAndReadmeIsKept(t *testing.T) {
	h := newHarness(t)
	h.emulate(t, map[string]string{
		"demo/.gitignore":   "dist\n",
		"demo/README.md":    "# existing",
		"demo/src/App.vue":  "old",
		"demo/package.json": "{}",
	})

	_, err := h.gen.Generate(context.Background(), Answers{Stack: "vue", ProjectName: "demo", TypeScript: true})
	require.NoError(t, err)

	ignore := h.read(t, "demo/.gitignore")
	assert.True(t, strings.HasPrefix(ignore, "dist\n\n# dependencies"), ignore)
	assert.Equal(t, "# existing", h.read(t, "demo/README.md"))
	assert.Contains(t, h.read(t, "demo/src/App.vue"), `lang="ts"`)
	assert.False(t, h.exists("demo/src/assets/main.css"))
}

func TestGenerate_PrismaChainStopsAtFirstFailure(t *testing.T) {
	h := newHarness(t)
	h.runner.FailOn("npm install", nil)

	res, err := h.gen.Generate(context.Background(), Answers{Stack: "node-prisma", ProjectName: "api"})
	require.NoError(t, err)

	assert.Equal(t, []string{"npm install"}, h.runner.Commands())
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, []string{`Run "npm install" and "npx prisma generate" manually.`}, res.FollowUps())
	assert.Equal(t, []string{"npm run db:studio  # View database"}, res.Tips)
	assert.Contains(t, h.read(t, "api/.gitignore"), "prisma")
	assert.Contains(t, h.read(t, "api/README.md"), "Prisma")
	assert.True(t, h.exists("api/prisma/schema.prisma"))
	assert.True(t, h.exists("api/src/lib/prisma.js"))
}

func TestGenerate_PythonIgnoresTypeScript(t *testing.T) {
	h := newHarness(t)

	res, err := h.gen.Generate(context.Background(), Answers{Stack: "python-django", ProjectName: "site", TypeScript: true})
	require.NoError(t, err)

	assert.True(t, h.exists("site/site/manage.py"))
	assert.True(t, h.exists("site/site/site/settings.py"))
	assert.Contains(t, h.read(t, "site/.gitignore"), "__pycache__")
	assert.Equal(t, []string{"cd site/site", "python manage.py runserver"}, res.NextSteps)
	assert.Equal(t, []string{"pip install -r requirements.txt"}, h.runner.Commands())
}

func TestGenerate_NextDetectsAppDirAndPageExt(t *testing.T) {
	h := newHarness(t)
	h.emulate(t, map[string]string{
		"demo/app/page.js":     "old",
		"demo/app/globals.css": "body {}",
		"demo/package.json":    "{}",
	})

	res, err := h.gen.Generate(context.Background(), Answers{Stack: "nextjs", ProjectName: "demo", TypeScript: true})
	require.NoError(t, err)

	assert.NotEqual(t, "old", h.read(t, "demo/app/page.js"))
	assert.False(t, h.exists("demo/app/page.tsx"))
	assert.NotEqual(t, "body {}", h.read(t, "demo/app/globals.css"))
	assert.Contains(t, res.CreatedFiles, "app/page.js")
}

func TestGenerate_NextWithoutAppDirSkipsTemplate(t *testing.T) {
	h := newHarness(t)
	h.emulate(t, map[string]string{"demo/package.json": "{}"})

	res, err := h.gen.Generate(context.Background(), Answers{Stack: "nextjs", ProjectName: "demo"})
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	assert.False(t, h.exists("demo/src/app"))
}

func TestGenerate_NextShadcn(t *testing.T) {
	h := newHarness(t)
	h.emulate(t, map[string]string{
		"demo/src/app/page.tsx":    "old",
		"demo/src/app/globals.css": "body {}",
	})

	_, err := h.gen.Generate(context.Background(), Answers{Stack: "nextjs-shadcn", ProjectName: "demo", TypeScript: true})
	require.NoError(t, err)

	assert.True(t, h.exists("demo/components.json"))
	assert.True(t, h.exists("demo/src/lib/utils.ts"))
	assert.True(t, h.exists("demo/src/components/ui"))
	assert.True(t, strings.HasPrefix(h.read(t, "demo/src/app/globals.css"), `@import "tailwindcss";`))
	assert.Contains(t, h.runner.Commands(), cmdShadcnUtils)
}

func TestGenerate_TailwindRemovesAppCSS(t *testing.T) {
	h := newHarness(t)
	h.emulate(t, map[string]string{
		"demo/vite.config.ts": "export default {}",
		"demo/src/App.css":    ".app {}",
		"demo/src/App.tsx":    "old",
		"demo/src/index.css":  ":root {}",
	})

	_, err := h.gen.Generate(context.Background(), Answers{Stack: "vite-tailwind", ProjectName: "demo", TypeScript: true})
	require.NoError(t, err)

	assert.False(t, h.exists("demo/src/App.css"))
	assert.False(t, h.exists("demo/vite.config.js"))
	assert.Contains(t, h.read(t, "demo/vite.config.ts"), "tailwindcss")
	assert.Equal(t, `@import "tailwindcss";`, strings.TrimSpace(h.read(t, "demo/src/index.css")))
	assert.Equal(t, []string{
		"npm create vite@latest demo -- --template react-ts",
		"npm install",
		cmdTailwindInstall,
	}, h.runner.Commands())
}

func TestGenerate_TailwindInstallFailureSkipsSetup(t *testing.T) {
	h := newHarness(t)
	h.emulate(t, map[string]string{"demo/src/App.css": ".app {}"})
	h.runner.FailOn(cmdTailwindInstall, nil)

	res, err := h.gen.Generate(context.Background(), Answers{Stack: "vite-tailwind", ProjectName: "demo"})
	require.NoError(t, err)

	require.Len(t, res.Warnings, 1)
	assert.True(t, h.exists("demo/src/App.css"))
	assert.False(t, h.exists("demo/vite.config.js"))
}

func TestGenerate_ShadcnMergesTSConfig(t *testing.T) {
	h := newHarness(t)
	h.emulate(t, map[string]string{
		"demo/vite.config.ts": "export default {}",
		"demo/tsconfig.json": `{
  // references only
  "files": [],
  "references": [{ "path": "./tsconfig.app.json" },],
}`,
		"demo/tsconfig.app.json": `{"compilerOptions": {"strict": true /* keep */}}`,
	})

	res, err := h.gen.Generate(context.Background(), Answers{Stack: "vite-shadcn", ProjectName: "demo", TypeScript: true})
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)

	for _, name := range []string{"demo/tsconfig.json", "demo/tsconfig.app.json"} {
		content := h.read(t, name)
		assert.Contains(t, content, `"@/*": [`)
		assert.Contains(t, content, `"baseUrl": "."`)
	}
	assert.Contains(t, h.read(t, "demo/tsconfig.app.json"), `"strict": true`)
	assert.True(t, h.exists("demo/src/lib/utils.ts"))
	assert.True(t, h.exists("demo/components.json"))
}

func TestGenerate_ShadcnUtilsFailureIsWarning(t *testing.T) {
	h := newHarness(t)
	h.emulate(t, map[string]string{"demo/package.json": "{}"})
	h.runner.FailOn(cmdShadcnUtils, nil)

	res, err := h.gen.Generate(context.Background(), Answers{Stack: "vite-shadcn", ProjectName: "demo"})
	require.NoError(t, err)

	require.Len(t, res.Warnings, 1)
	assert.Equal(t, []string{cmdShadcnInit}, res.FollowUps())
	assert.NotContains(t, h.reporter.Messages(EventDone), "shadcn/ui setup complete")
	assert.Equal(t, []string{shadcnConfigFailedMsg}, h.reporter.Messages(EventWarn))
}

func TestGenerate_GitFailures(t *testing.T) {
	t.Run("already a repository", func(t *testing.T) {
		h := newHarness(t)
		h.git.err = git.ErrAlreadyRepository

		res, err := h.gen.Generate(context.Background(), Answers{Stack: "python-flask", ProjectName: "demo", InitGit: true})
		require.NoError(t, err)
		assert.Empty(t, res.Warnings)
	})

	t.Run("other error", func(t *testing.T) {
		h := newHarness(t)
		h.git.err = errors.New("permission denied")

		res, err := h.gen.Generate(context.Background(), Answers{Stack: "python-flask", ProjectName: "demo", InitGit: true})
		require.NoError(t, err)
		require.Len(t, res.Warnings, 1)
		assert.Equal(t, []string{`Run "git init" manually.`}, res.FollowUps())
	})

	t.Run("not requested", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.gen.Generate(context.Background(), Answers{Stack: "python-flask", ProjectName: "demo"})
		require.NoError(t, err)
		assert.Empty(t, h.git.dirs)
	})
}
