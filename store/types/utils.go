package types

import "encoding/binary"

// Uint64ToBigEndian marshals uint64 to a big endian byte slice so it can be
// sorted and stored as a fixed length value.
func Uint64ToBigEndian(i uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, i)
	return b
}

// BigEndianToUint64 returns an uint64 from big endian encoded bytes. If
// encoding is empty, zero is returned.
func BigEndianToUint64(bz []byte) uint64 {
	if len(bz) == 0 {
		return 0
	}

	return binary.BigEndian.Uint64(bz)
}

// AssertValidKey checks if the key is valid (key is not nil or empty).
func AssertValidKey(key []byte) {
	if len(key) == 0 {
		panic("key is nil or empty")
	}
}

// AssertValidValue checks if the value is valid (value is not nil).
func AssertValidValue(value []byte) {
	if value == nil {
		panic("value is nil")
	}
}
