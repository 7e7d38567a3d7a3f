package bidimap

// BidiMap is a one-to-one mapping between keys and values, searchable in both directions.
// Adding never replaces an existing mapping, so a BidiMap can be used to detect conflicting aliases.
//
// A BidiMap is not safe for concurrent use.
type BidiMap[K comparable, V comparable] struct {
	ktov map[K]V
	vtok map[V]K
}

// New creates an empty [BidiMap].
func New[K comparable, V comparable]() *BidiMap[K, V] {
	return &BidiMap[K, V]{
		ktov: map[K]V{},
		vtok: map[V]K{},
	}
}

// TryAdd maps key to val, and reports whether it did.
// Nothing is changed if either the key or the value is already mapped.
func (m *BidiMap[K, V]) TryAdd(key K, val V) bool {
	if m.ktov == nil {
		m.ktov, m.vtok = map[K]V{}, map[V]K{}
	}
	if _, ok := m.ktov[key]; ok {
		return false
	}
	if _, ok := m.vtok[val]; ok {
		return false
	}
	m.ktov[key] = val
	m.vtok[val] = key
	return true
}

func (m *BidiMap[K, V]) ValueOk(key K) (V, bool) {
	val, ok := m.ktov[key]
	return val, ok
}

func (m *BidiMap[K, V]) Value(key K) V {
	val, _ := m.ValueOk(key)
	return val
}

func (m *BidiMap[K, V]) KeyOk(val V) (K, bool) {
	key, ok := m.vtok[val]
	return key, ok
}

func (m *BidiMap[K, V]) Key(val V) K {
	key, _ := m.KeyOk(val)
	return key
}

// Len is the number of mappings.
func (m *BidiMap[K, V]) Len() int {
	return len(m.ktov)
}
