package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"simple", "demo", nil},
		{"hyphen and underscore", "my-app_2", nil},
		{"empty", "", ErrEmptyProjectName},
		{"space", "my app", ErrInvalidProjectName},
		{"slash", "a/b", ErrInvalidProjectName},
		{"dot", "app.v2", ErrInvalidProjectName},
		{"parent", "..", ErrInvalidProjectName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectName(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateProjectName_Messages(t *testing.T) {
	assert.EqualError(t, ValidateProjectName(""), "Project name cannot be empty")
	assert.EqualError(t, ValidateProjectName("x y"),
		"Project name can only contain letters, numbers, hyphens, and underscores")
}

func TestManualHint(t *testing.T) {
	assert.Equal(t, "", manualHint())
	assert.Equal(t, `Run "npm install" manually.`, manualHint("npm install"))
	assert.Equal(t, `Run "a", "b" and "c" manually.`, manualHint("a", "b", "c"))
}
