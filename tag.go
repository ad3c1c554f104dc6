package ktrie

import "strings"

// tag names which kinds of content are present at a node array: any subset
// of EOS, HOP, SKIP, LIST, POP may legally co-occur on a single array,
// subject to the invariants documented on array in array.go.
type tag uint8

const (
	tagEOS tag = 1 << iota
	tagHOP
	tagSKIP
	tagLIST
	tagPOP
)

func (t tag) has(bits tag) bool { return t&bits != 0 }

func (t tag) String() string {
	if t == 0 {
		return "none"
	}
	var b strings.Builder
	add := func(bit tag, name string) {
		if !t.has(bit) {
			return
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(name)
	}
	add(tagEOS, "EOS")
	add(tagHOP, "HOP")
	add(tagSKIP, "SKIP")
	add(tagLIST, "LIST")
	add(tagPOP, "POP")
	return b.String()
}
