// Package tranche provides read-only views over a slice that are consumed
// from either end.
//
// A Cursor keeps two boundaries, front and back, into a slice it does not
// own. Elements are taken off the front or the back, one at a time or as a
// sub-cursor; there is no indexed access. Every operation either succeeds
// in full or fails with an *UnexpectedEndError and leaves the cursor as it
// was.
//
// ByteCursor adds fixed-width scalar decoding in an explicit byte order:
//
//	c := tranche.NewBytes([]byte{0x01, 0x02, 0x03, 0x04})
//	hi, _ := c.ReadUint16Front(binary.BigEndian) // 0x0102
//	lo, _ := c.ReadUint16Back(binary.BigEndian)  // 0x0304
//
// This package depends only on a handful of standard library packages and
// does no I/O. Adapters for io.Reader and friends live in trancheio.
package tranche
