package wizard

import (
	"errors"
	"testing"

	"github.com/PankajKumardev/initgen/internal/core/project"
	"github.com/PankajKumardev/initgen/internal/stack"
)

func TestDefaultQuestions_Order(t *testing.T) {
	questions := DefaultQuestions(stack.MustDefault(), "")

	wantIDs := []string{QuestionStack, QuestionProjectName, QuestionLanguage, QuestionGit}
	if len(questions) != len(wantIDs) {
		t.Fatalf("got %d questions, want %d", len(questions), len(wantIDs))
	}
	for i, id := range wantIDs {
		if questions[i].ID != id {
			t.Errorf("question %d = %q, want %q", i, questions[i].ID, id)
		}
	}

	stackQ := questions[0]
	if len(stackQ.Options) != 12 || stackQ.Options[0].Value != "react-vite" || stackQ.Default != "react-vite" {
		t.Errorf("unexpected stack question: %+v", stackQ)
	}
	if questions[1].Default != "my-app" {
		t.Errorf("default project name = %q, want my-app", questions[1].Default)
	}
	if questions[2].Options[0].Value != LanguageJavaScript {
		t.Error("JavaScript must be the first language option")
	}
	if questions[3].Type != QuestionTypeConfirm || questions[3].Default != "true" {
		t.Errorf("unexpected git question: %+v", questions[3])
	}
}

func TestDefaultQuestions_NameValidation(t *testing.T) {
	q := QuestionByID(DefaultQuestions(stack.MustDefault(), "demo"), QuestionProjectName)
	if q == nil {
		t.Fatal("project name question missing")
	}
	if q.Default != "demo" {
		t.Errorf("Default = %q, want demo", q.Default)
	}
	if err := q.Validate("my app"); !errors.Is(err, project.ErrInvalidProjectName) {
		t.Errorf("Validate(my app) = %v", err)
	}
	if err := q.Validate("my-app"); err != nil {
		t.Errorf("Validate(my-app) = %v", err)
	}
}

func TestLanguageQuestionCondition(t *testing.T) {
	questions := DefaultQuestions(stack.MustDefault(), "")

	tests := []struct {
		stack string
		want  int
	}{
		{"react-vite", 4},
		{"node-prisma", 4},
		{"python-flask", 3},
		{"python-django", 3},
		{"unknown", 3},
	}
	for _, tt := range tests {
		t.Run(tt.stack, func(t *testing.T) {
			got := FilteredQuestions(questions, &Result{Stack: tt.stack})
			if len(got) != tt.want {
				t.Errorf("visible questions = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestSaveAnswer(t *testing.T) {
	r := &Result{}
	saveAnswer(QuestionStack, "vue", r)
	saveAnswer(QuestionProjectName, "shop", r)
	saveAnswer(QuestionLanguage, LanguageTypeScript, r)
	saveAnswer(QuestionGit, "true", r)
	saveAnswer("unknown", "x", r)

	want := Result{Stack: "vue", ProjectName: "shop", TypeScript: true, InitGit: true}
	if *r != want {
		t.Errorf("result = %+v, want %+v", *r, want)
	}

	saveAnswer(QuestionLanguage, LanguageJavaScript, r)
	saveAnswer(QuestionGit, "false", r)
	if r.TypeScript || r.InitGit {
		t.Errorf("result = %+v, want TypeScript and InitGit false", *r)
	}
}

func TestBuildFieldsSeedDefaults(t *testing.T) {
	questions := DefaultQuestions(stack.MustDefault(), "")
	r := &Result{}
	for i := range questions {
		if buildField(&questions[i], r) == nil {
			t.Fatalf("nil field for %s", questions[i].ID)
		}
	}
	if r.Stack != "react-vite" || !r.InitGit || r.TypeScript {
		t.Errorf("seeded result = %+v", *r)
	}
}

func TestRun_NoQuestions(t *testing.T) {
	if _, err := Run(nil); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("Run(nil) = %v, want ErrNoQuestions", err)
	}
}

func TestTheme(t *testing.T) {
	if newInitGenTheme() == nil {
		t.Fatal("newInitGenTheme returned nil")
	}
}
