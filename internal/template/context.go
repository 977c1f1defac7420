package template

import (
	"time"

	"github.com/PankajKumardev/initgen/pkg/version"
)

// Database identifiers understood by the database templates.
const (
	DatabasePrisma  = "prisma"
	DatabaseDrizzle = "drizzle"
)

// TemplateContext provides data for rendering a stack's file set.
// All fields are exported for use with Go's text/template package.
type TemplateContext struct {
	// Project
	ProjectName string
	StackID     string
	StackName   string

	// Language
	TypeScript   bool
	ScriptExt    string // "ts" or "js"
	ComponentExt string // "tsx" or "jsx"

	// Stack variants
	Database string // DatabasePrisma, DatabaseDrizzle or ""
	Flask    bool

	// Paths detected inside a generator's output
	AppDir     string // Next.js app router directory, "src/app" or "app"
	PageExt    string // extension of the existing Next.js page
	ViteConfig string // "vite.config.ts" or "vite.config.js"

	// Meta
	Year    int
	Version string
}

// ContextOption configures a TemplateContext.
type ContextOption func(*TemplateContext)

// NewTemplateContext creates a JavaScript TemplateContext, then applies opts.
func NewTemplateContext(opts ...ContextOption) *TemplateContext {
	ctx := &TemplateContext{
		ScriptExt:    "js",
		ComponentExt: "jsx",
		AppDir:       "src/app",
		PageExt:      "jsx",
		ViteConfig:   "vite.config.js",
		Year:         time.Now().Year(),
		Version:      version.GetVersion(),
	}

	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// WithProject sets the project name.
func WithProject(name string) ContextOption {
	return func(c *TemplateContext) {
		c.ProjectName = name
	}
}

// WithStack sets the stack identity.
func WithStack(id, name string) ContextOption {
	return func(c *TemplateContext) {
		c.StackID = id
		c.StackName = name
	}
}

// WithTypeScript selects the language and derives the file extensions.
// The Next.js page extension follows unless WithNextApp overrides it later.
func WithTypeScript(enabled bool) ContextOption {
	return func(c *TemplateContext) {
		c.TypeScript = enabled
		if enabled {
			c.ScriptExt, c.ComponentExt = "ts", "tsx"
		} else {
			c.ScriptExt, c.ComponentExt = "js", "jsx"
		}
		c.PageExt = c.ComponentExt
	}
}

// WithDatabase sets the ORM flavor for database stacks.
func WithDatabase(db string) ContextOption {
	return func(c *TemplateContext) {
		if db == DatabasePrisma || db == DatabaseDrizzle {
			c.Database = db
		}
	}
}

// WithFlask marks a Flask project for the Python README.
func WithFlask(flask bool) ContextOption {
	return func(c *TemplateContext) {
		c.Flask = flask
	}
}

// WithNextApp sets the detected app directory and page extension.
// An empty ext keeps the current one.
func WithNextApp(appDir, ext string) ContextOption {
	return func(c *TemplateContext) {
		if appDir != "" {
			c.AppDir = appDir
		}
		if ext != "" {
			c.PageExt = ext
		}
	}
}

// WithViteConfig sets the Vite config file name to rewrite.
func WithViteConfig(name string) ContextOption {
	return func(c *TemplateContext) {
		if name != "" {
			c.ViteConfig = name
		}
	}
}

// WithVersion sets the initgen version.
func WithVersion(v string) ContextOption {
	return func(c *TemplateContext) {
		c.Version = v
	}
}
