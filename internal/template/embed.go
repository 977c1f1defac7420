package template

import (
	"embed"
	"io/fs"
)

//go:embed all:templates
var embedded embed.FS

// Embedded returns the built-in template tree rooted at "templates".
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}

// NewEmbeddedDeployer creates a Deployer over the built-in templates.
func NewEmbeddedDeployer() Deployer {
	return NewDeployer(Embedded())
}
