package ktrie

// removeAt descends *ref looking for key, clearing its EOS value on a match
// and then unwinding back up, shrinking or pruning any array left holding
// nothing.
func removeAt(t *trie, ref **array, key []byte, depth int) bool {
	cur := *ref
	if cur == nil {
		return false
	}

	if cur.seg.kind() != 0 {
		if cur.seg.findMismatch(key, depth) != cur.seg.len() {
			return false
		}
		depth += cur.seg.len()
	}

	if depth == len(key) {
		if !cur.hasValue {
			return false
		}
		cur.hasValue = false
		cur.value = nil
		pruneOrKeep(t, ref, cur)
		return true
	}

	switch {
	case cur.next != nil:
		if !removeAt(t, &cur.next, key, depth) {
			return false
		}
		pruneOrKeep(t, ref, cur)
		return true

	case cur.list != nil:
		b := key[depth]
		idx := cur.list.indexOf(b)
		if idx < 0 {
			return false
		}
		if !removeAt(t, &cur.list.children[idx], key, depth+1) {
			return false
		}
		if cur.list.children[idx] == nil {
			cur.list.removeAt(idx)
			if cur.list.n == 1 {
				// A LIST left with one child disappears: the survivor is
				// folded back into the parent array instead of being kept
				// as a one-entry branch.
				survivorByte := cur.list.keys[0]
				survivor := cur.list.children[0]
				cur.list = nil
				mergeCollapsedChild(t, cur, survivorByte, survivor)
			}
		}
		pruneOrKeep(t, ref, cur)
		return true

	case cur.pop != nil:
		b := key[depth]
		idx := cur.pop.indexOf(b)
		if idx < 0 {
			return false
		}
		if !removeAt(t, &cur.pop.children[idx], key, depth+1) {
			return false
		}
		if cur.pop.children[idx] == nil {
			cur.pop.removeAt(b)
			if cur.pop.count() == branchMaxList {
				lb := demoteToList(cur.pop)
				cur.pop = nil
				cur.list = lb
			}
			// A POP never drops straight to one child: demotion to LIST
			// always intercepts first at branchMaxList.
		}
		pruneOrKeep(t, ref, cur)
		return true
	}

	return false
}

// pruneOrKeep sets *ref to nil and releases cur when it now carries nothing
// at all. A dead trailing segment is never explicitly truncated because it
// is never kept in the first place — once cur has no EOS, no next, and no
// branch, the whole array (segment included) is discarded.
func pruneOrKeep(t *trie, ref **array, cur *array) {
	if !cur.hasValue && cur.next == nil && cur.list == nil && cur.pop == nil {
		*ref = nil
		t.alloc.FreeArray(cur)
	}
}

// mergeCollapsedChild folds a LIST's sole surviving child back into cur:
// survivorByte, the byte that used to discriminate survivor from its one
// former sibling, becomes part of a compressed segment instead of a branch
// key. If cur itself still carries an EOS, it cannot be replaced outright
// (that EOS is a distinct, shorter stored key), so the merge happens one
// level down via next instead of folding survivor into cur directly.
func mergeCollapsedChild(t *trie, cur *array, survivorByte byte, survivor *array) {
	if cur.hasValue {
		survivor.seg = allocPrependByte(t.alloc, survivorByte, survivor.seg)
		cur.next = survivor
		return
	}
	merged := t.alloc.AllocBytes(cur.seg.len() + 1 + survivor.seg.len())
	n := copy(merged, cur.seg.bytes)
	merged[n] = survivorByte
	copy(merged[n+1:], survivor.seg.bytes)

	*cur = *survivor
	cur.seg = pathSegment{bytes: merged}
	t.alloc.FreeArray(survivor)
}
