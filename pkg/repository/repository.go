// Package repository handles parsing and representation of YAML locator
// repository files. A repository names the locators of one screen so test
// code can refer to elements symbolically; each entry may use any supported
// locator representation.
package repository

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/devicelab-dev/locator/pkg/locator"
)

// Repository represents a parsed locator repository file.
type Repository struct {
	SourcePath string           `yaml:"-"`    // Path to the source file
	Name       string           `yaml:"name"` // Screen/page name
	Locators   map[string]Entry `yaml:"locators"`
}

// Entry is one named locator: a scalar string (XPath or UiSelector source)
// or a mapping (flat attribute dict).
type Entry struct {
	value any
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		e.value = s
	case yaml.MappingNode:
		m := make(map[string]any)
		if err := node.Decode(&m); err != nil {
			return err
		}
		e.value = m
	default:
		return fmt.Errorf("line %d: locator entry must be a string or a mapping", node.Line)
	}
	return nil
}

// Value returns the entry in the representation the file used.
func (e Entry) Value() any { return e.value }

// Load reads and parses a repository file.
func Load(path string) (*Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read repository: %w", err)
	}
	repo, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	repo.SourcePath = path
	return repo, nil
}

// Parse parses repository YAML and validates every entry.
func Parse(data []byte) (*Repository, error) {
	var repo Repository
	if err := yaml.Unmarshal(data, &repo); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	if len(repo.Locators) == 0 {
		return nil, fmt.Errorf("repository has no locators")
	}

	conv := locator.New()
	for name, entry := range repo.Locators {
		if err := conv.Validate(entry.value); err != nil {
			return nil, fmt.Errorf("locator %q: %w", name, err)
		}
	}
	return &repo, nil
}

// Names returns the locator names in sorted order.
func (r *Repository) Names() []string {
	names := make([]string, 0, len(r.Locators))
	for name := range r.Locators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Selector resolves a named locator to its selector tree.
func (r *Repository) Selector(name string) (*locator.Selector, error) {
	entry, ok := r.Locators[name]
	if !ok {
		return nil, fmt.Errorf("no locator named %q", name)
	}
	return locator.New().Detect(entry.value)
}

// XPath resolves a named locator to an XPath expression.
func (r *Repository) XPath(name string) (string, error) {
	sel, err := r.Selector(name)
	if err != nil {
		return "", err
	}
	return locator.EncodeXPath(sel)
}

// UiSelector resolves a named locator to UiSelector source text.
func (r *Repository) UiSelector(name string) (string, error) {
	sel, err := r.Selector(name)
	if err != nil {
		return "", err
	}
	return locator.EncodeUiSelector(sel, false)
}

// Dict resolves a named locator to the flat attribute map form.
func (r *Repository) Dict(name string) (map[string]any, error) {
	sel, err := r.Selector(name)
	if err != nil {
		return nil, err
	}
	return locator.EncodeDict(sel, false)
}

// Convert converts every locator to the target format, keyed by name.
func (r *Repository) Convert(conv *locator.Converter, target locator.Format) (map[string]any, error) {
	out := make(map[string]any, len(r.Locators))
	for name, entry := range r.Locators {
		converted, err := conv.Convert(entry.value, target)
		if err != nil {
			return nil, fmt.Errorf("locator %q: %w", name, err)
		}
		out[name] = converted
	}
	return out, nil
}
