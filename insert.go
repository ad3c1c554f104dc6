package ktrie

// insertAt descends toward key, splitting a segment or growing a branch as
// needed. *ref is the pointer slot currently holding the subtree being
// descended — root, a parent's next field, or a branch child slot — so a
// structural change here (a fresh array, a split, a promotion) is written
// straight back to wherever the caller keeps its reference.
func insertAt(t *trie, ref **array, key []byte, depth int, value Value, assign bool) (Value, bool) {
	cur := *ref
	if cur == nil {
		*ref = buildTail(t, key, depth, value)
		return value, true
	}

	if cur.seg.kind() != 0 {
		mismatch := cur.seg.findMismatch(key, depth)
		if mismatch != cur.seg.len() {
			return splitSegment(t, ref, cur, key, depth, mismatch, value)
		}
		depth += cur.seg.len()
	}

	// Exact match at an existing array boundary.
	if depth == len(key) {
		if cur.hasValue {
			old := cur.value
			if assign {
				cur.value = value
			}
			return old, false
		}
		cur.hasValue = true
		cur.value = value
		return value, true
	}

	switch {
	case cur.next != nil:
		return insertAt(t, &cur.next, key, depth, value, assign)

	case cur.list != nil:
		b := key[depth]
		if idx := cur.list.indexOf(b); idx >= 0 {
			return insertAt(t, &cur.list.children[idx], key, depth+1, value, assign)
		}
		// LIST needs a new child: grow in place, or promote to POP if this is
		// the 8th.
		tail := buildTail(t, key, depth+1, value)
		cur.addChild(b, tail)
		return value, true

	case cur.pop != nil:
		b := key[depth]
		if child := cur.pop.find(b); child != nil {
			idx := cur.pop.indexOf(b)
			return insertAt(t, &cur.pop.children[idx], key, depth+1, value, assign)
		}
		// POP needs a new child; POP never promotes further.
		tail := buildTail(t, key, depth+1, value)
		cur.addChild(b, tail)
		return value, true

	default:
		// cur ends without a branch or next — this is the first time
		// anything needs to continue past cur's own EOS.
		cur.next = buildTail(t, key, depth, value)
		return value, true
	}
}

// splitSegment handles a key that diverges from cur.seg at position
// mismatch: the common prefix becomes its own segment, and what follows it
// either branches on the next byte of each, or — if key has already run
// out — becomes an EOS sitting between the common prefix and the old
// continuation.
func splitSegment(t *trie, ref **array, cur *array, key []byte, depth, mismatch int, value Value) (Value, bool) {
	oldSuffix := cur.seg.bytes[mismatch:]
	newDepth := depth + mismatch

	prefixBytes := allocSegmentBytes(t.alloc, cur.seg.bytes[:mismatch])

	if newDepth >= len(key) {
		// key ends inside the segment. Insert an EOS between the common
		// prefix and the old continuation.
		suffix := t.alloc.AllocArray()
		suffix.seg = pathSegment{bytes: allocSegmentBytes(t.alloc, oldSuffix)}
		suffix.hasValue = cur.hasValue
		suffix.value = cur.value
		suffix.next = cur.next
		suffix.list = cur.list
		suffix.pop = cur.pop

		prefix := t.alloc.AllocArray()
		prefix.seg = pathSegment{bytes: prefixBytes}
		prefix.hasValue = true
		prefix.value = value
		prefix.next = suffix

		*ref = prefix
		t.alloc.FreeArray(cur)
		return value, true
	}

	// Both the old path and the new key have at least one more byte at the
	// split point — branch on it.
	oldByte := oldSuffix[0]
	oldRest := oldSuffix[1:]

	suffix := t.alloc.AllocArray()
	suffix.seg = pathSegment{bytes: allocSegmentBytes(t.alloc, oldRest)}
	suffix.hasValue = cur.hasValue
	suffix.value = cur.value
	suffix.next = cur.next
	suffix.list = cur.list
	suffix.pop = cur.pop

	newByte := key[newDepth]
	newTail := buildTail(t, key, newDepth+1, value)

	branchArray := t.alloc.AllocArray()
	branchArray.seg = pathSegment{bytes: prefixBytes}
	branchArray.list = newListBranch(oldByte, suffix, newByte, newTail)

	*ref = branchArray
	t.alloc.FreeArray(cur)
	return value, true
}

// buildTail creates a fresh node array encoding key[depth:] and value: an
// EOS alone if nothing remains, or a compressed segment followed by the EOS
// otherwise.
func buildTail(t *trie, key []byte, depth int, value Value) *array {
	a := t.alloc.AllocArray()
	a.hasValue = true
	a.value = value
	if rest := key[depth:]; len(rest) > 0 {
		a.seg = pathSegment{bytes: allocSegmentBytes(t.alloc, rest)}
	}
	return a
}
