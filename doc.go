// Package ktrie implements an ordered associative container backed by a
// compact radix trie with path compression: byte-slice or fixed-width
// numeric keys, lexicographic ordering, and O(key length) lookup, insert,
// remove, and neighbor navigation.
//
// Map[V] covers variable-length byte-slice and string keys; NumberMap[K, V]
// covers fixed-width signed and unsigned integer keys via a sign-aware
// big-endian transform that preserves numeric order as byte order.
package ktrie
