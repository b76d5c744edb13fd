package dispatchers

import "sort"

// Registry maps command names to their schemas. A Commander shares one
// Registry with its Parser so dispatch and tokenization recognize the same names.
//
// Registry is not safe for concurrent mutation.
type Registry struct {
	configs map[string]*CommandConfig
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{configs: make(map[string]*CommandConfig)}
}

// Register stores cfg under its name. A later registration with the same name wins.
func (r *Registry) Register(cfg *CommandConfig) {
	r.configs[cfg.Name()] = cfg
}

// Remove forgets the schema called name. Removing an absent name is a no-op.
func (r *Registry) Remove(name string) {
	delete(r.configs, name)
}

// Lookup returns the schema and whether it exists.
func (r *Registry) Lookup(name string) (*CommandConfig, bool) {
	cfg, ok := r.configs[name]
	return cfg, ok
}

func (r *Registry) Has(name string) bool {
	_, ok := r.configs[name]
	return ok
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.configs))
	for name := range r.configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Len() int {
	return len(r.configs)
}
