package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// GrowFactory builds a grow function from loosely typed arguments.
type GrowFactory func(args map[string]any) (domain.GrowFunc[int], error)

// CutFactory builds a cut function from loosely typed arguments.
type CutFactory func(args map[string]any) (domain.CutFunc[int], error)

// EndFactory builds a termination predicate from loosely typed arguments.
type EndFactory func(args map[string]any) (domain.EndFunc[int], error)

// Registry manages the rule factories available to problem documents.
type Registry struct {
	mu   sync.RWMutex
	grow map[string]GrowFactory
	cut  map[string]CutFactory
	end  map[string]EndFactory
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		grow: make(map[string]GrowFactory),
		cut:  make(map[string]CutFactory),
		end:  make(map[string]EndFactory),
	}
}

// RegisterGrow adds a grow factory. An existing factory with the same name is overwritten.
func (r *Registry) RegisterGrow(name string, f GrowFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.grow[name] = f
}

// RegisterCut adds a cut factory. An existing factory with the same name is overwritten.
func (r *Registry) RegisterCut(name string, f CutFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cut[name] = f
}

// RegisterEnd adds a termination factory. An existing factory with the same name is overwritten.
func (r *Registry) RegisterEnd(name string, f EndFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.end[name] = f
}

// Grow looks up a grow factory by name and instantiates it.
func (r *Registry) Grow(name string, args map[string]any) (domain.GrowFunc[int], error) {
	r.mu.RLock()
	f, ok := r.grow[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("grow rule %q: %w", name, domain.ErrUnknownRule)
	}
	fn, err := f(args)
	if err != nil {
		return nil, fmt.Errorf("grow rule %q: %w", name, err)
	}
	return fn, nil
}

// Cut looks up a cut factory by name and instantiates it.
func (r *Registry) Cut(name string, args map[string]any) (domain.CutFunc[int], error) {
	r.mu.RLock()
	f, ok := r.cut[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("cut rule %q: %w", name, domain.ErrUnknownRule)
	}
	fn, err := f(args)
	if err != nil {
		return nil, fmt.Errorf("cut rule %q: %w", name, err)
	}
	return fn, nil
}

// End looks up a termination factory by name and instantiates it.
func (r *Registry) End(name string, args map[string]any) (domain.EndFunc[int], error) {
	r.mu.RLock()
	f, ok := r.end[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("end rule %q: %w", name, domain.ErrUnknownRule)
	}
	fn, err := f(args)
	if err != nil {
		return nil, fmt.Errorf("end rule %q: %w", name, err)
	}
	return fn, nil
}

// Catalog lists the registered rule names by kind, sorted.
type Catalog struct {
	Grow []string `json:"grow" yaml:"grow"`
	Cut  []string `json:"cut" yaml:"cut"`
	End  []string `json:"end" yaml:"end"`
}

// Catalog returns the names of every registered factory.
func (r *Registry) Catalog() Catalog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Catalog{
		Grow: sortedKeys(r.grow),
		Cut:  sortedKeys(r.cut),
		End:  sortedKeys(r.end),
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// decode fills out from args, converting loosely typed YAML/JSON numbers.
func decode(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          "arg",
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}
