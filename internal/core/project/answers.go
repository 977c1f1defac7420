package project

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var projectNamePattern = regexp.MustCompile(`^[a-zA-Z0-9-_]+$`)

// Answers are the user's choices for one run.
type Answers struct {
	Stack       string `validate:"required"`
	ProjectName string `validate:"required,projectname"`
	TypeScript  bool
	InitGit     bool
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("projectname", func(fl validator.FieldLevel) bool {
		return projectNamePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidateProjectName checks a project name the way the name prompt does.
func ValidateProjectName(name string) error {
	if err := validate.Var(name, "required,projectname"); err != nil {
		return nameError(err)
	}
	return nil
}

// Validate checks every answer and reports the first problem.
func (a Answers) Validate() error {
	err := validate.Struct(a)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidAnswers, err)
	}

	fe := fieldErrs[0]
	if fe.Field() == "ProjectName" {
		return fmt.Errorf("%w: %w", ErrInvalidAnswers, tagError(fe.Tag()))
	}
	return fmt.Errorf("%w: %s is %s", ErrInvalidAnswers, strings.ToLower(fe.Field()), fe.Tag())
}

func nameError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return tagError(fieldErrs[0].Tag())
	}
	return ErrInvalidProjectName
}

func tagError(tag string) error {
	if tag == "required" {
		return ErrEmptyProjectName
	}
	return ErrInvalidProjectName
}
