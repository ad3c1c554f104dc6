package ktrie

import "io"

// Map is the user-facing generic wrapper over the byte-keyed core, for
// string/byte-slice keys: Insert, InsertOrAssign, Find, Contains, Remove,
// First, Last, Next, Prev, Size, Empty, Clear — a thin typed wrapper over
// an untyped core, parameterized on the value type.
type Map[V any] struct {
	t *trie
}

// NewMap constructs a Map over variable-length byte-slice or string keys.
func NewMap[V any](opts ...Option) *Map[V] {
	return &Map[V]{t: newTrie(opts...)}
}

func (m *Map[V]) Insert(key []byte, value V) (V, bool, error) {
	v, wasNew, err := m.t.Insert(key, value)
	return asV[V](v), wasNew, err
}

func (m *Map[V]) InsertOrAssign(key []byte, value V) (V, bool, error) {
	v, wasNew, err := m.t.InsertOrAssign(key, value)
	return asV[V](v), wasNew, err
}

func (m *Map[V]) InsertString(key string, value V) (V, bool, error) {
	return m.Insert([]byte(key), value)
}

func (m *Map[V]) Find(key []byte) (V, bool) {
	v, ok := m.t.Find(key)
	if !ok {
		var zero V
		return zero, false
	}
	return asV[V](v), true
}

func (m *Map[V]) FindString(key string) (V, bool) { return m.Find([]byte(key)) }

func (m *Map[V]) Contains(key []byte) bool { return m.t.Contains(key) }

func (m *Map[V]) Remove(key []byte) bool { return m.t.Remove(key) }

func (m *Map[V]) First() ([]byte, V, bool) { return wrapEntry[V](m.t.First()) }
func (m *Map[V]) Last() ([]byte, V, bool)  { return wrapEntry[V](m.t.Last()) }

func (m *Map[V]) Next(key []byte, inclusive bool) ([]byte, V, bool) {
	return wrapEntry[V](m.t.Next(key, inclusive))
}

func (m *Map[V]) Prev(key []byte, inclusive bool) ([]byte, V, bool) {
	return wrapEntry[V](m.t.Prev(key, inclusive))
}

// LowerBound returns the first entry with a key >= key.
func (m *Map[V]) LowerBound(key []byte) ([]byte, V, bool) { return m.Next(key, true) }

// UpperBound returns the first entry with a key > key.
func (m *Map[V]) UpperBound(key []byte) ([]byte, V, bool) { return m.Next(key, false) }

func (m *Map[V]) Size() int   { return m.t.Size() }
func (m *Map[V]) Empty() bool { return m.t.Empty() }
func (m *Map[V]) Clear()      { m.t.Clear() }

// Begin returns an Iterator positioned at the smallest key.
func (m *Map[V]) Begin() *Iterator[V] {
	k, v, ok := m.First()
	return &Iterator[V]{m: m, key: k, value: v, valid: ok}
}

// FindIter returns an Iterator positioned at key, or an invalid one if key
// is absent.
func (m *Map[V]) FindIter(key []byte) *Iterator[V] {
	v, ok := m.Find(key)
	if !ok {
		return &Iterator[V]{m: m, valid: false}
	}
	return &Iterator[V]{m: m, key: cloneBytes(key), value: v, valid: true}
}

// LowerBoundIter returns an Iterator positioned at the first entry with a
// key >= key, or an invalid one if none exists.
func (m *Map[V]) LowerBoundIter(key []byte) *Iterator[V] {
	k, v, ok := m.LowerBound(key)
	return &Iterator[V]{m: m, key: k, value: v, valid: ok}
}

// Stats reports the shape of the underlying trie, for debugging and tests.
func (m *Map[V]) Stats() Stats { return m.t.Collect() }

// Fprint writes a human-readable tree dump of the underlying trie to w.
func (m *Map[V]) Fprint(w io.Writer) { m.t.Fprint(w) }

// NumberMap is the fixed-width numeric-key counterpart of Map, keying on a
// sign-aware big-endian transform (numeric.go) rather than raw byte
// reinterpretation.
type NumberMap[K Integer, V any] struct {
	t *trie
}

// NewNumberMap constructs a NumberMap over K-typed keys.
func NewNumberMap[K Integer, V any](opts ...Option) *NumberMap[K, V] {
	opts = append([]Option{WithFixedLen(numericKeyWidth[K]())}, opts...)
	return &NumberMap[K, V]{t: newTrie(opts...)}
}

func (m *NumberMap[K, V]) Insert(key K, value V) (V, bool, error) {
	v, wasNew, err := m.t.Insert(numericKeyBytes(key), value)
	return asV[V](v), wasNew, err
}

func (m *NumberMap[K, V]) InsertOrAssign(key K, value V) (V, bool, error) {
	v, wasNew, err := m.t.InsertOrAssign(numericKeyBytes(key), value)
	return asV[V](v), wasNew, err
}

func (m *NumberMap[K, V]) Find(key K) (V, bool) {
	v, ok := m.t.Find(numericKeyBytes(key))
	if !ok {
		var zero V
		return zero, false
	}
	return asV[V](v), true
}

func (m *NumberMap[K, V]) Contains(key K) bool { return m.t.Contains(numericKeyBytes(key)) }

func (m *NumberMap[K, V]) Remove(key K) bool { return m.t.Remove(numericKeyBytes(key)) }

func (m *NumberMap[K, V]) First() (K, V, bool) { return wrapNumericEntry[K, V](m.t.First()) }
func (m *NumberMap[K, V]) Last() (K, V, bool)  { return wrapNumericEntry[K, V](m.t.Last()) }

func (m *NumberMap[K, V]) Next(key K, inclusive bool) (K, V, bool) {
	return wrapNumericEntry[K, V](m.t.Next(numericKeyBytes(key), inclusive))
}

func (m *NumberMap[K, V]) Prev(key K, inclusive bool) (K, V, bool) {
	return wrapNumericEntry[K, V](m.t.Prev(numericKeyBytes(key), inclusive))
}

func (m *NumberMap[K, V]) Size() int   { return m.t.Size() }
func (m *NumberMap[K, V]) Empty() bool { return m.t.Empty() }
func (m *NumberMap[K, V]) Clear()      { m.t.Clear() }

func asV[V any](v Value) V {
	if v == nil {
		var zero V
		return zero
	}
	return v.(V)
}

func wrapEntry[V any](k []byte, v Value, ok bool) ([]byte, V, bool) {
	if !ok {
		var zero V
		return nil, zero, false
	}
	return k, asV[V](v), true
}

func wrapNumericEntry[K Integer, V any](k []byte, v Value, ok bool) (K, V, bool) {
	if !ok {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return numericKeyFromBytes[K](k), asV[V](v), true
}
