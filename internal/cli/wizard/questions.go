package wizard

import (
	"github.com/PankajKumardev/initgen/internal/core/project"
	"github.com/PankajKumardev/initgen/internal/stack"
)

// DefaultQuestions returns the prompt sequence for catalog:
// 1. Stack
// 2. Project name
// 3. Language, only for stacks with a TypeScript variant
// 4. Git
func DefaultQuestions(catalog *stack.Catalog, defaultName string) []Question {
	if defaultName == "" {
		defaultName = "my-app"
	}

	stacks := catalog.All()
	stackOptions := make([]Option, len(stacks))
	for i, d := range stacks {
		stackOptions[i] = Option{Label: d.Name, Value: d.ID}
	}
	var defaultStack string
	if len(stacks) > 0 {
		defaultStack = stacks[0].ID
	}

	return []Question{
		{
			ID:      QuestionStack,
			Type:    QuestionTypeSelect,
			Title:   "Select your tech stack:",
			Options: stackOptions,
			Default: defaultStack,
		},
		{
			ID:       QuestionProjectName,
			Type:     QuestionTypeInput,
			Title:    "Project name:",
			Default:  defaultName,
			Validate: project.ValidateProjectName,
		},
		{
			ID:    QuestionLanguage,
			Type:  QuestionTypeSelect,
			Title: "Choose language:",
			// Default option must be first to avoid the huh viewport YOffset bug.
			Options: []Option{
				{Label: "JavaScript", Value: LanguageJavaScript},
				{Label: "TypeScript", Value: LanguageTypeScript},
			},
			Default: LanguageJavaScript,
			Condition: func(r *Result) bool {
				d, ok := catalog.Lookup(r.Stack)
				return ok && d.TypeScript
			},
		},
		{
			ID:      QuestionGit,
			Type:    QuestionTypeConfirm,
			Title:   "Initialize git repository?",
			Default: "true",
		},
	}
}

// FilteredQuestions returns the questions whose conditions hold for result.
func FilteredQuestions(questions []Question, result *Result) []Question {
	filtered := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.Condition == nil || q.Condition(result) {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// QuestionByID finds a question by its ID.
func QuestionByID(questions []Question, id string) *Question {
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i]
		}
	}
	return nil
}
