package ktrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPopBranchNavigationAcrossWordBoundaries inserts children straddling
// each of popBranch's four 64-bit bitmap words (0, 63/64, 127/128, 255) and
// checks next/prev cross each word boundary correctly.
func TestPopBranchNavigationAcrossWordBoundaries(t *testing.T) {
	tr := newTestTrie()
	bytesUsed := []byte{0, 1, 63, 64, 65, 127, 128, 191, 192, 255}
	for _, b := range bytesUsed {
		mustInsert(t, tr, "root"+string([]byte{b}), int(b))
	}
	// top the branch up to branchMinPop children if bytesUsed has fewer; with
	// the 10 bytes above it already holds enough and this adds nothing.
	for i := 10; i < 10+(branchMinPop-len(bytesUsed)); i++ {
		mustInsert(t, tr, "root"+string([]byte{byte(i)}), i)
	}

	k, v, ok := tr.First()
	require.True(t, ok)
	assert.Equal(t, "root"+string([]byte{0}), string(k))
	assert.Equal(t, 0, v)

	// walk from byte 63 to 64 across a word boundary.
	k, v, ok = tr.Next([]byte("root"+string([]byte{63})), false)
	require.True(t, ok)
	assert.Equal(t, "root"+string([]byte{64}), string(k))
	assert.Equal(t, 64, v)

	// walk from byte 128 down to 127 across a word boundary, backwards.
	k, v, ok = tr.Prev([]byte("root"+string([]byte{128})), false)
	require.True(t, ok)
	assert.Equal(t, "root"+string([]byte{127}), string(k))
	assert.Equal(t, 127, v)

	k, v, ok = tr.Last()
	require.True(t, ok)
	assert.Equal(t, "root"+string([]byte{255}), string(k))
	assert.Equal(t, 255, v)
}

// TestListPromotesToPopAndBackOnRemoval exercises promotion at the 8th
// child then demotion back to listBranch once enough children are removed,
// confirming the exact no-hysteresis promote/demote thresholds.
func TestListPromotesToPopAndBackOnRemoval(t *testing.T) {
	tr := newTestTrie()
	for i := byte(0); i < 8; i++ {
		mustInsert(t, tr, "r"+string([]byte{i}), int(i))
	}
	require.NotNil(t, tr.root.pop)
	require.Nil(t, tr.root.list)

	require.True(t, tr.Remove([]byte("r" + string([]byte{7}))))
	require.NotNil(t, tr.root.list)
	require.Nil(t, tr.root.pop)
	assert.Equal(t, 7, tr.root.list.n)

	for i := byte(0); i < 7; i++ {
		v, ok := tr.Find([]byte("r" + string([]byte{i})))
		require.True(t, ok)
		assert.Equal(t, int(i), v)
	}
}
