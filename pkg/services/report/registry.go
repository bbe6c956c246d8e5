package report

import (
	"fmt"
	"sort"
	"sync"

	"github.com/de-tools/csv-reporter/pkg/models/domain"
)

// Generator produces a report from a merged table.
type Generator func(table domain.Table) (domain.Report, error)

// Registry manages named report generators.
type Registry interface {
	// Register adds a new report generator under the given name
	Register(name string, gen Generator) error
	// Generate runs the generator registered under name against the table
	Generate(name string, table domain.Table) (domain.Report, error)
	// Names returns the sorted list of registered report names
	Names() []string
}

type registry struct {
	mu         sync.RWMutex
	generators map[string]Generator
}

// NewRegistry creates a registry pre-populated with the given generators.
func NewRegistry(generators map[string]Generator) (Registry, error) {
	r := &registry{generators: make(map[string]Generator, len(generators))}
	for name, gen := range generators {
		if err := r.Register(name, gen); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *registry) Register(name string, gen Generator) error {
	if name == "" {
		return fmt.Errorf("report name cannot be empty")
	}
	if gen == nil {
		return fmt.Errorf("generator cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.generators[name]; exists {
		return fmt.Errorf("report %q is already registered", name)
	}

	r.generators[name] = gen
	return nil
}

func (r *registry) Generate(name string, table domain.Table) (domain.Report, error) {
	r.mu.RLock()
	gen, exists := r.generators[name]
	r.mu.RUnlock()

	if !exists {
		return domain.Report{}, fmt.Errorf("%w: %q", domain.ErrUnknownReport, name)
	}

	return gen(table)
}

func (r *registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
