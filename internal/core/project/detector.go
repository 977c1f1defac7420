package project

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// nextPageExts is the lookup order for an existing app router page.
var nextPageExts = []string{"js", "jsx", "ts", "tsx"}

// dirExists checks if a directory exists.
func dirExists(fsys afero.Fs, path string) bool {
	ok, err := afero.DirExists(fsys, path)
	return err == nil && ok
}

// fileExists checks if a regular file exists.
func fileExists(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && !info.IsDir()
}

// detectNextApp locates the app router directory created by create-next-app
// and the extension of its page. ok is false when neither src/app nor app exists.
func detectNextApp(fsys afero.Fs, projectPath string, typeScript bool) (appDir, pageExt string, ok bool) {
	switch {
	case dirExists(fsys, filepath.Join(projectPath, "src", "app")):
		appDir = "src/app"
	case dirExists(fsys, filepath.Join(projectPath, "app")):
		appDir = "app"
	default:
		return "", "", false
	}

	pageExt = "jsx"
	if typeScript {
		pageExt = "tsx"
	}
	for _, ext := range nextPageExts {
		if fileExists(fsys, filepath.Join(projectPath, filepath.FromSlash(appDir), "page."+ext)) {
			pageExt = ext
			break
		}
	}
	return appDir, pageExt, true
}

// detectViteConfig returns the vite config file to rewrite.
func detectViteConfig(fsys afero.Fs, projectPath string) string {
	if fileExists(fsys, filepath.Join(projectPath, "vite.config.ts")) {
		return "vite.config.ts"
	}
	return "vite.config.js"
}
