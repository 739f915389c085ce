package catalog

// cloner is implemented by the model types a registry holds.
type cloner[T any] interface {
	Clone() T
}

// Registry is a fixed lookup table for one taxonomy. Entries keep their
// definition order; lookups by key and by route slug are O(1). Every entry
// handed out is a deep copy, so callers cannot reach the registry's memory.
type Registry[T cloner[T]] struct {
	entries []T
	byKey   map[string]int
	bySlug  map[string]int
	slugs   []string
}

// newRegistry indexes entries by key and route slug. Duplicate keys or slugs
// are reported to p against entity and the first holder keeps the key.
func newRegistry[T cloner[T]](entity string, entries []T, key, route func(T) string, p *problems) *Registry[T] {
	r := &Registry[T]{
		entries: make([]T, len(entries)),
		byKey:   make(map[string]int, len(entries)),
		bySlug:  make(map[string]int, len(entries)),
		slugs:   make([]string, len(entries)),
	}
	for i, e := range entries {
		r.entries[i] = e.Clone()
	}

	for i, e := range r.entries {
		k, s := key(e), route(e)
		r.slugs[i] = s
		if _, dup := r.byKey[k]; dup {
			p.add(entity, k, "", "duplicate key")
		} else {
			r.byKey[k] = i
		}
		if s == "" {
			p.add(entity, k, "", "route slug is empty")
			continue
		}
		if j, dup := r.bySlug[s]; dup {
			p.add(entity, k, "", "route slug "+s+" already used by "+key(r.entries[j]))
		} else {
			r.bySlug[s] = i
		}
	}
	return r
}

// Get returns the entry stored under key.
func (r *Registry[T]) Get(key string) (T, bool) {
	if i, ok := r.byKey[key]; ok {
		return r.entries[i].Clone(), true
	}
	var zero T
	return zero, false
}

// BySlug returns the entry routed at slug.
func (r *Registry[T]) BySlug(slug string) (T, bool) {
	if i, ok := r.bySlug[slug]; ok {
		return r.entries[i].Clone(), true
	}
	var zero T
	return zero, false
}

// Has reports whether key is present.
func (r *Registry[T]) Has(key string) bool {
	_, ok := r.byKey[key]
	return ok
}

// List returns every entry in definition order.
func (r *Registry[T]) List() []T {
	out := make([]T, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Clone()
	}
	return out
}

// Len returns the number of entries.
func (r *Registry[T]) Len() int {
	return len(r.entries)
}

// RouteKeys returns the route slug of every entry, deduplicated, in
// definition order. It depends on nothing but the registry's own entries.
func (r *Registry[T]) RouteKeys() []string {
	out := make([]string, 0, len(r.slugs))
	seen := make(map[string]bool, len(r.slugs))
	for _, s := range r.slugs {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// routeOf returns the route slug of the entry at key, or "".
func (r *Registry[T]) routeOf(key string) string {
	if i, ok := r.byKey[key]; ok {
		return r.slugs[i]
	}
	return ""
}
