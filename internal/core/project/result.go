package project

import (
	"fmt"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/hashicorp/go-multierror"

	"github.com/PankajKumardev/initgen/internal/stack"
)

// Result summarizes a successful Generate call.
type Result struct {
	ProjectPath  string
	Stack        stack.Descriptor
	CreatedFiles []string // project-relative, slash-separated
	Warnings     []error  // best-effort failures; each carries a hint
	NextSteps    []string
	Tips         []string
}

// Err aggregates the warnings, or returns nil when there are none.
func (r *Result) Err() error {
	var merr *multierror.Error
	for _, w := range r.Warnings {
		merr = multierror.Append(merr, w)
	}
	return merr.ErrorOrNil()
}

// FollowUps returns every manual follow-up hint attached to the warnings.
func (r *Result) FollowUps() []string {
	var out []string
	for _, w := range r.Warnings {
		out = append(out, cerr.GetAllHints(w)...)
	}
	return out
}

func (r *Result) addFiles(paths ...string) {
	r.CreatedFiles = append(r.CreatedFiles, paths...)
}

// manualHint renders `Run "a" and "b" manually.`.
func manualHint(commands ...string) string {
	quoted := make([]string, len(commands))
	for i, c := range commands {
		quoted[i] = fmt.Sprintf("%q", c)
	}
	var list string
	switch len(quoted) {
	case 0:
		return ""
	case 1:
		list = quoted[0]
	default:
		list = strings.Join(quoted[:len(quoted)-1], ", ") + " and " + quoted[len(quoted)-1]
	}
	return "Run " + list + " manually."
}
