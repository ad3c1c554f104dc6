package ktrie

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomWords generates n distinct byte-slice keys from a small alphabet,
// deliberately favoring shared prefixes so promotion/demotion and HOP
// splitting paths see exercise. Keys are at most 6 bytes long, so no SKIP
// segment arises here.
func randomWords(r *rand.Rand, n int) []string {
	const alphabet = "abcdefgh"
	seen := make(map[string]bool)
	var out []string
	for len(out) < n {
		length := 1 + r.Intn(6)
		buf := make([]byte, length)
		for i := range buf {
			buf[i] = alphabet[r.Intn(len(alphabet))]
		}
		w := string(buf)
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}

func TestInsertManyWordsThenFindAll(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	words := randomWords(r, 500)

	tr := newTestTrie()
	for i, w := range words {
		mustInsert(t, tr, w, i)
	}
	require.Equal(t, len(words), tr.Size())

	for i, w := range words {
		v, ok := tr.Find([]byte(w))
		require.True(t, ok, "missing %q", w)
		assert.Equal(t, i, v)
	}
}

func TestInsertManyWordsIterationIsSorted(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	words := randomWords(r, 300)

	tr := newTestTrie()
	for _, w := range words {
		mustInsert(t, tr, w, nil)
	}

	sortedWords := append([]string{}, words...)
	sort.Strings(sortedWords)

	var got []string
	k, _, ok := tr.First()
	for ok {
		got = append(got, string(k))
		k, _, ok = tr.Next(k, false)
	}
	assert.Equal(t, sortedWords, got)
}

func TestInsertThenRemoveAllLeavesEmpty(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	words := randomWords(r, 400)

	tr := newTestTrie()
	for _, w := range words {
		mustInsert(t, tr, w, nil)
	}

	r.Shuffle(len(words), func(i, j int) { words[i], words[j] = words[j], words[i] })
	for _, w := range words {
		require.True(t, tr.Remove([]byte(w)), "failed to remove %q", w)
	}

	assert.True(t, tr.Empty())
	assert.Equal(t, 0, tr.Size())
	_, _, ok := tr.First()
	assert.False(t, ok)
}

// TestNextPrevRoundTrip checks the property that stepping next() from any
// stored key reaches its sorted successor, and prev() from there returns to
// where it started.
func TestNextPrevRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	words := randomWords(r, 200)

	tr := newTestTrie()
	for _, w := range words {
		mustInsert(t, tr, w, nil)
	}

	sortedWords := append([]string{}, words...)
	sort.Strings(sortedWords)

	for i := 0; i < len(sortedWords)-1; i++ {
		k, _, ok := tr.Next([]byte(sortedWords[i]), false)
		require.True(t, ok)
		require.Equal(t, sortedWords[i+1], string(k))

		back, _, ok := tr.Prev(k, false)
		require.True(t, ok)
		assert.Equal(t, sortedWords[i], string(back))
	}
}
