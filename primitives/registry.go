package primitives

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// Factory builds a primitive from initial anchors and a stroke colour.
// Either argument may be zero-valued; defaults apply.
type Factory func(points []Point, color string) Primitive

// Metadata describes one registered primitive type.
type Metadata struct {
	TypeID          string
	DisplayName     string
	Kind            Kind
	Factory         Factory
	SupportsText    bool
	HasLevels       bool
	HasPointsConfig bool
}

// Registry maps type identifiers to primitive metadata. Construct one with
// NewRegistry and pass it where it is needed; Default returns a shared
// instance preloaded with the built-in catalog for callers that do not need
// their own.
type Registry struct {
	mu     sync.RWMutex
	types  map[string]Metadata
	byKind map[Kind][]string
}

// NewRegistry returns a registry preloaded with the built-in catalog.
func NewRegistry() *Registry {
	r := &Registry{
		types:  make(map[string]Metadata),
		byKind: make(map[Kind][]string),
	}
	registerBuiltins(r)
	return r
}

// NewEmptyRegistry returns a registry with no types registered.
func NewEmptyRegistry() *Registry {
	return &Registry{
		types:  make(map[string]Metadata),
		byKind: make(map[Kind][]string),
	}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the shared built-in registry.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Register adds or replaces a type. Entries without a type ID or factory are
// rejected.
func (r *Registry) Register(meta Metadata) error {
	if meta.TypeID == "" {
		return fmt.Errorf("failed to register primitive: empty type ID")
	}
	if meta.Factory == nil {
		return fmt.Errorf("failed to register primitive %q: nil factory", meta.TypeID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.types[meta.TypeID]; !exists {
		r.byKind[meta.Kind] = append(r.byKind[meta.Kind], meta.TypeID)
	}
	r.types[meta.TypeID] = meta
	return nil
}

// Get returns the metadata for a type ID.
func (r *Registry) Get(typeID string) (Metadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.types[typeID]
	return m, ok
}

// Has reports whether a type ID is registered.
func (r *Registry) Has(typeID string) bool {
	_, ok := r.Get(typeID)
	return ok
}

// Create instantiates a primitive. Unknown type IDs yield nil.
func (r *Registry) Create(typeID string, points []Point, color string) Primitive {
	meta, ok := r.Get(typeID)
	if !ok {
		return nil
	}
	return meta.Factory(points, color)
}

// TypeIDs returns every registered type ID, sorted.
func (r *Registry) TypeIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.types))
	for id := range r.types {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ByKind returns the type IDs of one kind, sorted.
func (r *Registry) ByKind(kind Kind) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := append([]string(nil), r.byKind[kind]...)
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}

type envelope struct {
	TypeID string          `json:"type_id"`
	State  json.RawMessage `json:"state"`
}

// Marshal serializes a primitive into a self-describing envelope that
// Unmarshal can restore.
func Marshal(p Primitive) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("failed to marshal primitive: nil")
	}
	state, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s state: %w", p.TypeID(), err)
	}
	return json.Marshal(envelope{TypeID: p.TypeID(), State: state})
}

// Unmarshal restores a primitive from an envelope produced by Marshal. The
// registry supplies the concrete type for the envelope's type ID.
func (r *Registry) Unmarshal(data []byte) (Primitive, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to decode primitive envelope: %w", err)
	}
	meta, ok := r.Get(env.TypeID)
	if !ok {
		return nil, fmt.Errorf("failed to decode primitive: unknown type %q", env.TypeID)
	}
	p := meta.Factory(nil, "")
	if err := json.Unmarshal(env.State, p); err != nil {
		return nil, fmt.Errorf("failed to decode %s state: %w", env.TypeID, err)
	}
	return p, nil
}
