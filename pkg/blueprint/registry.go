package blueprint

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry stores sections by name, providing discovery and duplication
// safeguards.
type Registry struct {
	mu       sync.RWMutex
	sections map[string]Section
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		sections: make(map[string]Section),
	}
}

// DefaultRegistry returns a registry holding every built-in section.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	for _, section := range builtinSections() {
		reg.MustRegister(section)
	}
	return reg
}

// Register adds a section by its Name(). Duplicate names return an error.
func (r *Registry) Register(section Section) error {
	if section == nil {
		return fmt.Errorf("blueprint: section is required")
	}
	name := strings.TrimSpace(section.Name())
	if name == "" {
		return fmt.Errorf("blueprint: section name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sections[name]; exists {
		return fmt.Errorf("blueprint: section %q already registered", name)
	}

	r.sections[name] = section
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(section Section) {
	if err := r.Register(section); err != nil {
		panic(err)
	}
}

// Get retrieves a section by name.
func (r *Registry) Get(name string) (Section, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	section, ok := r.sections[name]
	if !ok {
		return nil, fmt.Errorf("blueprint: section %q not found", name)
	}
	return section, nil
}

// List returns a sorted list of section names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.sections))
	for name := range r.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a section is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.sections[name]
	return ok
}
