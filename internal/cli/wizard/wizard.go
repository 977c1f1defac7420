package wizard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// Run asks each question whose condition holds and returns the answers.
// Each question runs as its own huh.Form so later conditions see earlier
// answers, and to avoid the huh v0.8.x YOffset scroll bug that occurs when
// multiple groups share a single viewport.
func Run(questions []Question) (*Result, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	result := &Result{}
	theme := newInitGenTheme()

	for i := range questions {
		q := &questions[i]
		if q.Condition != nil && !q.Condition(result) {
			continue
		}

		form := huh.NewForm(huh.NewGroup(buildField(q, result))).
			WithTheme(theme).
			WithAccessible(false)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
	}

	return result, nil
}

// buildField creates the huh field for q. Answers are stored through the
// field's validate hook, which huh calls on every change and on submit.
func buildField(q *Question, result *Result) huh.Field {
	switch q.Type {
	case QuestionTypeInput:
		return buildInputField(q, result)
	case QuestionTypeConfirm:
		return buildConfirmField(q, result)
	default:
		return buildSelectField(q, result)
	}
}

func buildSelectField(q *Question, result *Result) *huh.Select[string] {
	selected := q.Default
	saveAnswer(q.ID, selected, result)

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	sel := huh.NewSelect[string]().
		Title(q.Title).
		Options(opts...).
		Value(&selected)
	if q.Description != "" {
		sel = sel.Description(q.Description)
	}

	sel.Validate(func(val string) error {
		saveAnswer(q.ID, val, result)
		return nil
	})
	return sel
}

func buildInputField(q *Question, result *Result) *huh.Input {
	value := q.Default

	inp := huh.NewInput().
		Title(q.Title).
		Value(&value)
	if q.Description != "" {
		inp = inp.Description(q.Description)
	}
	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	defVal := q.Default
	validate := q.Validate
	qID := q.ID
	inp = inp.Validate(func(val string) error {
		v := strings.TrimSpace(val)
		if v == "" {
			v = defVal
		}
		if validate != nil {
			if err := validate(v); err != nil {
				return err
			}
		}
		saveAnswer(qID, v, result)
		return nil
	})
	return inp
}

func buildConfirmField(q *Question, result *Result) *huh.Confirm {
	value, _ := strconv.ParseBool(q.Default)
	saveAnswer(q.ID, strconv.FormatBool(value), result)

	qID := q.ID
	return huh.NewConfirm().
		Title(q.Title).
		Affirmative("Yes").
		Negative("No").
		Value(&value).
		Validate(func(v bool) error {
			saveAnswer(qID, strconv.FormatBool(v), result)
			return nil
		})
}

// saveAnswer stores an answer in the result.
func saveAnswer(id, value string, result *Result) {
	switch id {
	case QuestionStack:
		result.Stack = value
	case QuestionProjectName:
		result.ProjectName = value
	case QuestionLanguage:
		result.TypeScript = value == LanguageTypeScript
	case QuestionGit:
		result.InitGit = value == "true"
	}
}
