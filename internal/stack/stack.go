// Package stack holds the catalog of technology stacks initgen can scaffold.
// The catalog is embedded as YAML, validated against a JSON schema at load
// time, and treated as immutable afterwards.
package stack

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// NamePlaceholder is replaced with the project name in catalog commands.
const NamePlaceholder = "{name}"

// Category groups stacks that share ignore-file and README templates.
type Category string

const (
	CategoryJavaScript   Category = "javascript"
	CategoryJavaScriptDB Category = "javascript-db"
	CategoryPython       Category = "python"
)

// Framework identifies the generator family of a non-manual stack.
type Framework string

const (
	FrameworkNone Framework = ""
	FrameworkVite Framework = "vite"
	FrameworkNext Framework = "next"
	FrameworkVue  Framework = "vue"
)

// Sentinel errors for catalog loading.
var (
	ErrInvalidCatalog = errors.New("stack: invalid catalog")
	ErrDuplicateID    = errors.New("stack: duplicate stack id")
	ErrUnknownStack   = errors.New("stack: unknown stack")
)

// Generator holds the scaffolding command for each language variant.
type Generator struct {
	JavaScript string `yaml:"javascript"`
	TypeScript string `yaml:"typescript"`
}

// Descriptor is one immutable catalog entry.
type Descriptor struct {
	ID            string    `yaml:"id"`
	Name          string    `yaml:"name"`
	Category      Category  `yaml:"category"`
	Framework     Framework `yaml:"framework"`
	Manual        bool      `yaml:"manual"`
	Scaffold      string    `yaml:"scaffold"`
	TypeScript    bool      `yaml:"typescript"`
	SetupTailwind bool      `yaml:"setup_tailwind"`
	SetupShadcn   bool      `yaml:"setup_shadcn"`
	Generator     Generator `yaml:"generator"`
	Install       string    `yaml:"install"`
	PostInstall   []string  `yaml:"post_install"`
	Steps         []string  `yaml:"next_steps"`
	Tips          []string  `yaml:"tips"`
}

// Command returns the generator command for projectName. Stacks without a
// TypeScript variant always use the JavaScript command. Manual stacks return "".
func (d Descriptor) Command(projectName string, typeScript bool) string {
	if d.Manual {
		return ""
	}
	tmpl := d.Generator.JavaScript
	if typeScript && d.Generator.TypeScript != "" {
		tmpl = d.Generator.TypeScript
	}
	return strings.ReplaceAll(tmpl, NamePlaceholder, projectName)
}

// NextSteps returns the commands a user runs after generation.
func (d Descriptor) NextSteps(projectName string) []string {
	out := make([]string, len(d.Steps))
	for i, s := range d.Steps {
		out[i] = strings.ReplaceAll(s, NamePlaceholder, projectName)
	}
	return out
}

// IsPython reports whether the stack is a Python project.
func (d Descriptor) IsPython() bool { return d.Category == CategoryPython }

// IsDatabase reports whether the stack ships an ORM setup.
func (d Descriptor) IsDatabase() bool { return d.Category == CategoryJavaScriptDB }

// Catalog is the ordered, immutable set of stack descriptors.
type Catalog struct {
	stacks []Descriptor
	byID   map[string]int
}

type catalogFile struct {
	Stacks []Descriptor `yaml:"stacks"`
}

//go:embed catalog.yaml
var catalogYAML []byte

// Default parses the embedded catalog.
func Default() (*Catalog, error) {
	return Load(catalogYAML)
}

// MustDefault is Default for package-level wiring; it panics on a broken build.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Load validates data against the catalog schema and decodes it.
func Load(data []byte) (*Catalog, error) {
	issues, err := validateSchema(data)
	if err != nil {
		return nil, err
	}
	if len(issues) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(issues, "; "))
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	c := &Catalog{byID: make(map[string]int, len(file.Stacks))}
	for _, d := range file.Stacks {
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, d.ID)
		}
		c.byID[d.ID] = len(c.stacks)
		c.stacks = append(c.stacks, d)
	}
	return c, nil
}

// Lookup returns the descriptor for id.
func (c *Catalog) Lookup(id string) (Descriptor, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Descriptor{}, false
	}
	return c.stacks[i], true
}

// Get is Lookup returning ErrUnknownStack for a missing id.
func (c *Catalog) Get(id string) (Descriptor, error) {
	d, ok := c.Lookup(id)
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownStack, id, strings.Join(c.IDs(), ", "))
	}
	return d, nil
}

// All returns the descriptors in catalog order.
func (c *Catalog) All() []Descriptor {
	out := make([]Descriptor, len(c.stacks))
	copy(out, c.stacks)
	return out
}

// IDs returns the stack identifiers in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.stacks))
	for i, d := range c.stacks {
		ids[i] = d.ID
	}
	return ids
}
