// Package project creates a new project from a stack descriptor: it runs the
// stack's generator or writes its manual scaffold, applies the starter
// templates, writes the ignore file and README, and initializes git.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrDirectoryExists indicates the target project directory is already present.
	ErrDirectoryExists = errors.New("directory already exists")

	// ErrGeneratorFailed indicates the external framework generator failed.
	ErrGeneratorFailed = errors.New("failed to create project")

	// ErrUnknownStack indicates a stack id missing from the catalog.
	ErrUnknownStack = errors.New("unknown stack")

	// ErrInvalidAnswers indicates the answers failed validation.
	ErrInvalidAnswers = errors.New("invalid answers")

	// ErrEmptyProjectName and ErrInvalidProjectName are shown verbatim by the prompt.
	ErrEmptyProjectName   = errors.New("Project name cannot be empty")
	ErrInvalidProjectName = errors.New("Project name can only contain letters, numbers, hyphens, and underscores")
)
