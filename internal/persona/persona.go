package persona

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed personas.yaml
var builtinYAML []byte

var builtin = mustParse(builtinYAML)

// Persona is a named system instruction that frames the model's answer
type Persona struct {
	Key         string `yaml:"key"`
	Label       string `yaml:"label"`
	Instruction string `yaml:"instruction"`
}

// Catalog is an ordered, read-only set of personas. The first entry is the default.
type Catalog struct {
	personas []Persona
	byLabel  map[string]int
	byKey    map[string]int
}

// Builtin returns the catalog shipped with the binary
func Builtin() *Catalog {
	return builtin
}

// Parse builds a catalog from a YAML list of personas
func Parse(data []byte) (*Catalog, error) {
	var personas []Persona
	if err := yaml.Unmarshal(data, &personas); err != nil {
		return nil, fmt.Errorf("parse personas: %w", err)
	}
	return New(personas...)
}

// New builds a catalog from personas in definition order
func New(personas ...Persona) (*Catalog, error) {
	if len(personas) == 0 {
		return nil, errors.New("persona catalog is empty")
	}

	c := &Catalog{
		personas: make([]Persona, 0, len(personas)),
		byLabel:  make(map[string]int, len(personas)),
		byKey:    make(map[string]int, len(personas)),
	}

	for i, p := range personas {
		if p.Label == "" {
			return nil, fmt.Errorf("persona %d: label is empty", i)
		}
		if p.Instruction == "" {
			return nil, fmt.Errorf("persona %q: instruction is empty", p.Label)
		}
		if _, dup := c.byLabel[p.Label]; dup {
			return nil, fmt.Errorf("duplicate persona label %q", p.Label)
		}
		if p.Key != "" {
			if _, dup := c.byKey[p.Key]; dup {
				return nil, fmt.Errorf("duplicate persona key %q", p.Key)
			}
			c.byKey[p.Key] = i
		}
		c.byLabel[p.Label] = i
		c.personas = append(c.personas, p)
	}

	return c, nil
}

func mustParse(data []byte) *Catalog {
	c, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the instruction for label, or the default persona's
// instruction when the label is unknown.
func (c *Catalog) Lookup(label string) string {
	if i, ok := c.byLabel[label]; ok {
		return c.personas[i].Instruction
	}
	return c.Default().Instruction
}

// Default returns the first-defined persona
func (c *Catalog) Default() Persona {
	return c.personas[0]
}

// Find resolves a persona by exact label or key
func (c *Catalog) Find(labelOrKey string) (Persona, bool) {
	if i, ok := c.byLabel[labelOrKey]; ok {
		return c.personas[i], true
	}
	if i, ok := c.byKey[labelOrKey]; ok {
		return c.personas[i], true
	}
	return Persona{}, false
}

// Labels returns persona labels in definition order
func (c *Catalog) Labels() []string {
	labels := make([]string, len(c.personas))
	for i, p := range c.personas {
		labels[i] = p.Label
	}
	return labels
}

// All returns a copy of the personas in definition order
func (c *Catalog) All() []Persona {
	out := make([]Persona, len(c.personas))
	copy(out, c.personas)
	return out
}

// Len returns the number of personas
func (c *Catalog) Len() int {
	return len(c.personas)
}
