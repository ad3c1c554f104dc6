package ktrie

import "encoding/binary"

// Integer lists the fixed-width integer types NumberMap accepts as keys.
// Deliberately exact (no ~) rather than approximate: the type switches in
// numericKeyBytes/numericKeyFromBytes dispatch on the interface's dynamic
// type, which for a named type would be the named type itself, not its
// underlying type — exact types keep that dispatch correct without reflect.
type Integer interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64
}

// numericKeyBytes packs n into a big-endian byte-lexicographic encoding:
// unsigned integers byteswap only; signed integers additionally flip the
// sign bit so that the byte-lexicographic order of the encoding matches
// numeric order (the most negative value encodes to all-zero bytes, the
// most positive to all-one).
func numericKeyBytes[K Integer](n K) []byte {
	switch v := any(n).(type) {
	case int8:
		return []byte{uint8(v) ^ 0x80}
	case uint8:
		return []byte{v}
	case int16:
		buf := make([]byte, 2)
		binary.BigEndian.PutUint16(buf, uint16(v)^0x8000)
		return buf
	case uint16:
		buf := make([]byte, 2)
		binary.BigEndian.PutUint16(buf, v)
		return buf
	case int32:
		buf := make([]byte, 4)
		binary.BigEndian.PutUint32(buf, uint32(v)^0x80000000)
		return buf
	case uint32:
		buf := make([]byte, 4)
		binary.BigEndian.PutUint32(buf, v)
		return buf
	case int64:
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(v)^0x8000000000000000)
		return buf
	case uint64:
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, v)
		return buf
	default:
		panicContract("numericKeyBytes called with an unsupported Integer type")
	}
	return nil
}

// numericKeyFromBytes is the inverse of numericKeyBytes, decoding a stored
// key back into its original value. The zero value of K is used only to
// select which case to decode into via a type switch on its dynamic type,
// letting this stay generic without reflection.
func numericKeyFromBytes[K Integer](b []byte) K {
	var zero K
	switch any(zero).(type) {
	case int8:
		return K(int8(b[0] ^ 0x80))
	case uint8:
		return K(b[0])
	case int16:
		u := binary.BigEndian.Uint16(b) ^ 0x8000
		return K(int16(u))
	case uint16:
		return K(binary.BigEndian.Uint16(b))
	case int32:
		u := binary.BigEndian.Uint32(b) ^ 0x80000000
		return K(int32(u))
	case uint32:
		return K(binary.BigEndian.Uint32(b))
	case int64:
		u := binary.BigEndian.Uint64(b) ^ 0x8000000000000000
		return K(int64(u))
	case uint64:
		return K(binary.BigEndian.Uint64(b))
	default:
		panicContract("numericKeyFromBytes called with an unsupported Integer type")
	}
	return zero
}

func numericKeyWidth[K Integer]() int {
	var zero K
	switch any(zero).(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32:
		return 4
	case int64, uint64:
		return 8
	default:
		panicContract("numericKeyWidth called with an unsupported Integer type")
	}
	return 0
}
