package ktrie

// trie is the byte-keyed core engine: the radix trie itself, unaware of
// strings or numeric key widths — that translation is Map's and
// NumberMap's job (facade.go). It implements the low-level operations:
// insert, insert_or_assign, remove, find, contains, first, last, next,
// prev, size, empty, clear.
type trie struct {
	root     *array
	size     int
	fixedLen int // 0 means variable-length keys
	alloc    Allocator
}

func (t *trie) validLen(key []byte) bool {
	return t.fixedLen == 0 || len(key) == t.fixedLen
}

func (t *trie) Size() int   { return t.size }
func (t *trie) Empty() bool { return t.size == 0 }

func (t *trie) Clear() {
	t.root = nil
	t.size = 0
}

// Insert stores value at key only if key is absent; it reports the value
// now associated with key (the new value on success, the existing one on a
// collision) and whether the key was newly inserted.
func (t *trie) Insert(key []byte, value Value) (Value, bool, error) {
	return t.put(key, value, false)
}

// InsertOrAssign stores value at key unconditionally, overwriting any
// existing value. It reports the value that was previously there when one
// was overwritten (value itself when key was new) and whether the key was
// newly inserted.
func (t *trie) InsertOrAssign(key []byte, value Value) (Value, bool, error) {
	return t.put(key, value, true)
}

func (t *trie) put(key []byte, value Value, assign bool) (Value, bool, error) {
	if !t.validLen(key) {
		return nil, false, &KeyLengthError{Got: len(key), Want: t.fixedLen}
	}
	v, wasNew := insertAt(t, &t.root, key, 0, value, assign)
	if wasNew {
		t.size++
	}
	return v, wasNew, nil
}

func (t *trie) Find(key []byte) (Value, bool) {
	if !t.validLen(key) {
		return nil, false
	}
	return find(t.root, key)
}

func (t *trie) Contains(key []byte) bool {
	_, ok := t.Find(key)
	return ok
}

// Remove deletes key if present and reports whether it was present.
func (t *trie) Remove(key []byte) bool {
	if !t.validLen(key) {
		return false
	}
	if removeAt(t, &t.root, key, 0) {
		t.size--
		return true
	}
	return false
}

func (t *trie) First() ([]byte, Value, bool) { return firstOf(t.root) }
func (t *trie) Last() ([]byte, Value, bool)  { return lastOf(t.root) }

func (t *trie) Next(key []byte, inclusive bool) ([]byte, Value, bool) {
	return nextFrom(t.root, key, 0, inclusive)
}

func (t *trie) Prev(key []byte, inclusive bool) ([]byte, Value, bool) {
	return prevFrom(t.root, key, 0, inclusive)
}
