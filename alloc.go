package ktrie

import "sync"

// roundSizeClass rounds a byte count up to its pool size class: runs up to
// 24 bytes round up to a multiple of 4, larger ones to a multiple of 16.
// AllocBytes uses this to pick the pool bucket and capacity for pathSegment
// backing slices. The engine never hands segment storage back through
// FreeBytes, so segment buffers are drawn from the pools but are not
// recycled into them.
func roundSizeClass(n int) int {
	if n <= 24 {
		return (n + 3) &^ 3
	}
	return (n + 15) &^ 15
}

// Allocator is a pluggable source of node-array and path-segment storage,
// so an embedder can swap in an arena or a bump allocator instead of the
// default pool.
type Allocator interface {
	AllocArray() *array
	FreeArray(*array)
	AllocBytes(n int) []byte
	FreeBytes([]byte)
}

// poolAllocator is the default Allocator: a sync.Pool per concern, one for
// node arrays and one per byte size class.
type poolAllocator struct {
	arrays    sync.Pool
	bytePools [7]sync.Pool // size classes: 4,8,...,24, then one catch-all >24
}

func newPoolAllocator() *poolAllocator {
	a := &poolAllocator{}
	a.arrays.New = func() any { return &array{} }
	for i := range a.bytePools {
		i := i
		a.bytePools[i].New = func() any {
			return make([]byte, 0, byteClassCap(i))
		}
	}
	return a
}

// byteClassCap maps a bytePools index to its capacity: classes 0-5 are
// 4,8,12,16,20,24; class 6 is the catch-all for anything larger, allocated
// on demand rather than pooled at a fixed size.
func byteClassCap(class int) int {
	if class < 6 {
		return (class + 1) * 4
	}
	return 0
}

func byteClassIndex(n int) int {
	rounded := roundSizeClass(n)
	if rounded <= 24 {
		return rounded/4 - 1
	}
	return 6
}

func (a *poolAllocator) AllocArray() *array {
	arr := a.arrays.Get().(*array)
	*arr = array{}
	return arr
}

func (a *poolAllocator) FreeArray(arr *array) {
	if arr == nil {
		return
	}
	*arr = array{}
	a.arrays.Put(arr)
}

func (a *poolAllocator) AllocBytes(n int) []byte {
	class := byteClassIndex(n)
	buf := a.bytePools[class].Get().([]byte)
	if cap(buf) < n {
		buf = make([]byte, n, roundSizeClass(n))
		return buf
	}
	return buf[:n]
}

func (a *poolAllocator) FreeBytes(b []byte) {
	if b == nil {
		return
	}
	class := byteClassIndex(cap(b))
	a.bytePools[class].Put(b[:0]) //nolint:staticcheck // reused as scratch storage
}

var defaultAllocator Allocator = newPoolAllocator()
