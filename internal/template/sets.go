package template

import (
	"fmt"
	"slices"
	"sort"
)

// Names of the file sets a stack can deploy.
const (
	SetReact         = "react"
	SetTailwind      = "tailwind"
	SetShadcn        = "shadcn"
	SetNextPage      = "next"
	SetNextShadcn    = "next-shadcn"
	SetVue           = "vue"
	SetNodeExpress   = "node-express"
	SetNodePrisma    = "node-prisma"
	SetNodeDrizzle   = "node-drizzle"
	SetPythonFlask   = "python-flask"
	SetPythonFastAPI = "python-fastapi"
	SetPythonDjango  = "python-django"
)

var expressBase = []File{
	Dir("src/routes"),
	Dir("src/controllers"),
	Dir("src/models"),
	{Source: "node/tsconfig.json.tmpl", Dest: "tsconfig.json", When: TypeScriptOnly},
}

var fileSets = map[string][]File{
	SetReact: {
		{Source: "react/App.jsx.tmpl", Dest: "src/App.{{.ComponentExt}}"},
		{Source: "shared/hero.css.tmpl", Dest: "src/App.css"},
		{Source: "react/index.css.tmpl", Dest: "src/index.css", Mode: IfExists},
	},
	SetTailwind: {
		{Source: "tailwind/vite.config.js.tmpl", Dest: "{{.ViteConfig}}"},
		{Source: "tailwind/index.css.tmpl", Dest: "src/index.css"},
		{Source: "tailwind/App.jsx.tmpl", Dest: "src/App.{{.ComponentExt}}"},
	},
	SetShadcn: {
		{Source: "tailwind/index.css.tmpl", Dest: "src/index.css"},
		{Source: "shadcn/vite.config.js.tmpl", Dest: "{{.ViteConfig}}"},
		{Source: "shadcn/components.json.tmpl", Dest: "components.json"},
		{Source: "shadcn/utils.js.tmpl", Dest: "src/lib/utils.{{.ScriptExt}}"},
		Dir("src/components/ui"),
		{Source: "shadcn/App.jsx.tmpl", Dest: "src/App.{{.ComponentExt}}"},
		{Source: "shadcn/App.css.tmpl", Dest: "src/App.css"},
	},
	SetNextPage: {
		{Source: "next/page.jsx.tmpl", Dest: "{{.AppDir}}/page.{{.PageExt}}"},
		{Source: "shared/hero.css.tmpl", Dest: "{{.AppDir}}/globals.css", Mode: IfExists},
	},
	SetNextShadcn: {
		{Source: "next/components.json.tmpl", Dest: "components.json"},
		{Source: "shadcn/utils.js.tmpl", Dest: "{{parentDir .AppDir}}/lib/utils.{{.ScriptExt}}"},
		Dir("{{parentDir .AppDir}}/components/ui"),
	},
	SetVue: {
		{Source: "vue/App.vue.tmpl", Dest: "src/App.vue"},
		{Source: "vue/main.css.tmpl", Dest: "src/assets/main.css", Mode: IfExists},
		{Source: "vue/base.css.tmpl", Dest: "src/assets/base.css", Mode: IfExists},
	},
	SetNodeExpress: concat(expressBase, []File{
		{Source: "node/express/package.json.tmpl", Dest: "package.json"},
		{Source: "node/express/index.js.tmpl", Dest: "src/index.{{.ScriptExt}}"},
		{Source: "node/express/env.example.tmpl", Dest: ".env.example"},
	}),
	SetNodePrisma: concat(expressBase, []File{
		{Source: "node/prisma/package.json.tmpl", Dest: "package.json"},
		{Source: "node/prisma/schema.prisma.tmpl", Dest: "prisma/schema.prisma"},
		{Source: "node/prisma/seed.js.tmpl", Dest: "prisma/seed.{{.ScriptExt}}"},
		{Source: "node/prisma/client.js.tmpl", Dest: "src/lib/prisma.{{.ScriptExt}}"},
		{Source: "node/db/index.js.tmpl", Dest: "src/index.{{.ScriptExt}}"},
		{Source: "node/db/routes.users.js.tmpl", Dest: "src/routes/users.{{.ScriptExt}}"},
		{Source: "node/db/routes.posts.js.tmpl", Dest: "src/routes/posts.{{.ScriptExt}}"},
		{Source: "node/prisma/userController.js.tmpl", Dest: "src/controllers/userController.{{.ScriptExt}}"},
		{Source: "node/prisma/postController.js.tmpl", Dest: "src/controllers/postController.{{.ScriptExt}}"},
		{Source: "node/db/env.example.tmpl", Dest: ".env.example"},
	}),
	SetNodeDrizzle: concat(expressBase, []File{
		{Source: "node/drizzle/package.json.tmpl", Dest: "package.json"},
		{Source: "node/drizzle/drizzle.config.js.tmpl", Dest: "drizzle.config.js"},
		{Source: "node/drizzle/create-db.js.tmpl", Dest: "scripts/create-db.js"},
		{Source: "node/drizzle/schema.js.tmpl", Dest: "src/db/schema.{{.ScriptExt}}"},
		{Source: "node/drizzle/db.js.tmpl", Dest: "src/db/index.{{.ScriptExt}}"},
		{Source: "node/drizzle/migrate.js.tmpl", Dest: "src/db/migrate.{{.ScriptExt}}"},
		{Source: "node/db/index.js.tmpl", Dest: "src/index.{{.ScriptExt}}"},
		{Source: "node/db/routes.users.js.tmpl", Dest: "src/routes/users.{{.ScriptExt}}"},
		{Source: "node/db/routes.posts.js.tmpl", Dest: "src/routes/posts.{{.ScriptExt}}"},
		{Source: "node/drizzle/userController.js.tmpl", Dest: "src/controllers/userController.{{.ScriptExt}}"},
		{Source: "node/drizzle/postController.js.tmpl", Dest: "src/controllers/postController.{{.ScriptExt}}"},
		{Source: "node/db/env.example.tmpl", Dest: ".env.example"},
	}),
	SetPythonFlask: {
		{Source: "python/flask/app_init.py.tmpl", Dest: "app/__init__.py"},
		{Source: "python/flask/main.py.tmpl", Dest: "app/routes/main.py"},
		{Source: "python/empty.py.tmpl", Dest: "app/routes/__init__.py"},
		{Source: "python/empty.py.tmpl", Dest: "app/models/__init__.py"},
		{Source: "python/flask/run.py.tmpl", Dest: "run.py"},
		{Source: "python/flask/requirements.txt.tmpl", Dest: "requirements.txt"},
	},
	SetPythonFastAPI: {
		{Source: "python/fastapi/main.py.tmpl", Dest: "main.py"},
		{Source: "python/fastapi/router.py.tmpl", Dest: "app/routers/main.py"},
		{Source: "python/empty.py.tmpl", Dest: "app/__init__.py"},
		{Source: "python/empty.py.tmpl", Dest: "app/routers/__init__.py"},
		{Source: "python/empty.py.tmpl", Dest: "app/models/__init__.py"},
		{Source: "python/fastapi/requirements.txt.tmpl", Dest: "requirements.txt"},
		{Source: "python/fastapi/env.example.tmpl", Dest: ".env.example"},
	},
	SetPythonDjango: {
		{Source: "python/django/manage.py.tmpl", Dest: "{{.ProjectName}}/manage.py"},
		{Source: "python/empty.py.tmpl", Dest: "{{.ProjectName}}/{{.ProjectName}}/__init__.py"},
		{Source: "python/django/settings.py.tmpl", Dest: "{{.ProjectName}}/{{.ProjectName}}/settings.py"},
		{Source: "python/django/urls.py.tmpl", Dest: "{{.ProjectName}}/{{.ProjectName}}/urls.py"},
		{Source: "python/django/wsgi.py.tmpl", Dest: "{{.ProjectName}}/{{.ProjectName}}/wsgi.py"},
		{Source: "python/django/asgi.py.tmpl", Dest: "{{.ProjectName}}/{{.ProjectName}}/asgi.py"},
		{Source: "python/empty.py.tmpl", Dest: "{{.ProjectName}}/app/__init__.py"},
		{Source: "python/django/views.py.tmpl", Dest: "{{.ProjectName}}/app/views.py"},
		{Source: "python/django/app_urls.py.tmpl", Dest: "{{.ProjectName}}/app/urls.py"},
		{Source: "python/django/apps.py.tmpl", Dest: "{{.ProjectName}}/app/apps.py"},
		{Source: "python/django/requirements.txt.tmpl", Dest: "requirements.txt"},
	},
}

func concat(parts ...[]File) []File {
	var out []File
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// FileSet returns a copy of the named file set.
func FileSet(name string) ([]File, error) {
	files, ok := fileSets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFileSet, name)
	}
	return slices.Clone(files), nil
}

// FileSetNames returns the registered set names, sorted.
func FileSetNames() []string {
	names := make([]string, 0, len(fileSets))
	for name := range fileSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IgnoreTemplate returns the ignore-file template for a stack category.
// Unknown categories fall back to the JavaScript template.
func IgnoreTemplate(category string) string {
	switch category {
	case "python":
		return "gitignore/python.tmpl"
	case "javascript-db":
		return "gitignore/javascript-db.tmpl"
	default:
		return "gitignore/javascript.tmpl"
	}
}

// ReadmeTemplate returns the README template for a stack category.
func ReadmeTemplate(category string) string {
	switch category {
	case "python":
		return "readme/python.md.tmpl"
	case "javascript-db":
		return "readme/database.md.tmpl"
	default:
		return "readme/generic.md.tmpl"
	}
}
