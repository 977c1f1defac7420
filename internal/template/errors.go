// Package template renders the embedded starter files initgen writes into a
// generated project.
package template

import "errors"

// Sentinel errors for template rendering and deployment.
var (
	// ErrTemplateNotFound indicates a template path missing from the source FS.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates a template referenced an unknown field.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates rendered output still contains an action token.
	ErrUnexpandedToken = errors.New("template: unexpanded token")

	// ErrPathTraversal indicates a destination escaping the project root.
	ErrPathTraversal = errors.New("template: path traversal")

	// ErrUnknownFileSet indicates a file set name with no registered files.
	ErrUnknownFileSet = errors.New("template: unknown file set")
)
