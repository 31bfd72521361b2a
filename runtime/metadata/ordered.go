package metadata

// metadataMap is an insertion-ordered mapping from metadata key to value.
// Redefining an existing key overwrites the value but keeps the key's
// original position.
type metadataMap struct {
	order  []any
	values map[any]any
}

func newMetadataMap() *metadataMap {
	return &metadataMap{values: make(map[any]any)}
}

func (m *metadataMap) set(key, value any) {
	if _, ok := m.values[key]; !ok {
		m.order = append(m.order, key)
	}
	m.values[key] = value
}

func (m *metadataMap) get(key any) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *metadataMap) has(key any) bool {
	_, ok := m.values[key]
	return ok
}

func (m *metadataMap) delete(key any) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// keys returns the metadata keys in first-insertion order.
// Returns a copy to prevent external mutation.
func (m *metadataMap) keys() []any {
	out := make([]any, len(m.order))
	copy(out, m.order)
	return out
}

func (m *metadataMap) empty() bool {
	return len(m.values) == 0
}
