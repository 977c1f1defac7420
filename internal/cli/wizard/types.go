// Package wizard asks the interactive questions that configure a new
// project: stack, name, language and git.
package wizard

import "errors"

// Question IDs.
const (
	QuestionStack       = "stack"
	QuestionProjectName = "project_name"
	QuestionLanguage    = "language"
	QuestionGit         = "git"
)

// Language values.
const (
	LanguageJavaScript = "javascript"
	LanguageTypeScript = "typescript"
)

// Result holds the user's selections.
type Result struct {
	Stack       string
	ProjectName string
	TypeScript  bool
	InitGit     bool
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm
)

// Question defines a single wizard question.
type Question struct {
	ID          string
	Type        QuestionType
	Title       string
	Description string
	Options     []Option
	Default     string // "true"/"false" for confirm questions
	Validate    func(string) error
	Condition   func(*Result) bool // nil means always asked
}

// Option represents a selectable option.
type Option struct {
	Label string
	Value string
	Desc  string
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user aborts with Ctrl-C or Esc.
	ErrCancelled = errors.New("setup cancelled")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
)
