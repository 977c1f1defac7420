package template

// Mode controls how a File treats an existing destination.
type Mode int

const (
	// Overwrite always writes the file.
	Overwrite Mode = iota
	// IfExists rewrites the file only when a generator already created it.
	IfExists
	// IfAbsent writes the file only when nothing is there yet.
	IfAbsent
)

func (m Mode) String() string {
	switch m {
	case IfExists:
		return "if-exists"
	case IfAbsent:
		return "if-absent"
	default:
		return "overwrite"
	}
}

// When restricts a File to one language variant.
type When int

const (
	Always When = iota
	TypeScriptOnly
	JavaScriptOnly
)

// File maps one embedded template to a destination in the project.
// Dest is itself a template rendered with the TemplateContext. A File with
// an empty Source creates the directory Dest.
type File struct {
	Source string
	Dest   string
	Mode   Mode
	When   When
}

// Applies reports whether f belongs to the language chosen in tc.
func (f File) Applies(tc *TemplateContext) bool {
	switch f.When {
	case TypeScriptOnly:
		return tc.TypeScript
	case JavaScriptOnly:
		return !tc.TypeScript
	default:
		return true
	}
}

// IsDir reports whether f creates a directory rather than a file.
func (f File) IsDir() bool { return f.Source == "" }

// Dir returns a File that creates the directory dest.
func Dir(dest string) File { return File{Dest: dest} }
