package common

import "errors"

// Byte widths of the fixed-size scalars a byte cursor can decode.
const (
	Size8  = 1
	Size16 = 2
	Size32 = 4
	Size64 = 8

	// MaxVarintLen64 is the longest a varint-encoded uint64 can be.
	MaxVarintLen64 = 10
)

var ErrVarintOverflow = errors.New("varint overflows 64 bits")

// AppendUvarint appends varint-encoded x to dst using a small stack scratch.
func AppendUvarint(dst []byte, x uint64) []byte {
	var scratch [MaxVarintLen64]byte
	i := 0
	for x >= 0x80 {
		scratch[i] = byte(x) | 0x80
		x >>= 7
		i++
	}
	scratch[i] = byte(x)
	i++
	return append(dst, scratch[:i]...)
}

// AppendVarint appends zig-zag varint-encoded x to dst.
func AppendVarint(dst []byte, x int64) []byte {
	ux := uint64(x) << 1
	if x < 0 {
		ux = ^ux
	}
	return AppendUvarint(dst, ux)
}

// Uvarint decodes a varint from b returning value and bytes consumed.
// n == 0 means b ended before the varint did; the error is set only
// when the encoding does not fit in 64 bits.
func Uvarint(b []byte) (x uint64, n int, err error) {
	var s uint
	for i, c := range b {
		// the tenth byte holds bit 63 only and must end the varint
		if i == MaxVarintLen64-1 && c > 1 {
			return 0, 0, ErrVarintOverflow
		}
		if c < 0x80 {
			return x | uint64(c)<<s, i + 1, nil
		}
		x |= uint64(c&0x7F) << s
		s += 7
	}
	return 0, 0, nil
}

// ZigZag undoes the signed mapping applied by AppendVarint.
func ZigZag(ux uint64) int64 {
	x := int64(ux >> 1)
	if ux&1 != 0 {
		x = ^x
	}
	return x
}
