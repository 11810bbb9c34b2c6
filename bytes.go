package tranche

import (
	"encoding/binary"
	"math"

	"github.com/rawbytedev/tranche/internal/common"
)

// ByteCursor is a Cursor over bytes that can also decode fixed-width
// scalars from either end.
//
// Reading from the back consumes the last w bytes and decodes them exactly
// as a front read of those same bytes would: the order argument maps bytes
// to bit positions, the side only picks which w bytes are consumed.
// No alignment is required.
type ByteCursor struct {
	cursor[byte]
}

func NewBytes(b []byte) ByteCursor {
	return ByteCursor{cursor: New(b)}
}

// TakeFront is Cursor.TakeFront returning a ByteCursor.
func (c *ByteCursor) TakeFront(n int) (ByteCursor, error) {
	sub, err := c.cursor.TakeFront(n)
	return ByteCursor{cursor: sub}, err
}

// TakeBack is Cursor.TakeBack returning a ByteCursor.
func (c *ByteCursor) TakeBack(n int) (ByteCursor, error) {
	sub, err := c.cursor.TakeBack(n)
	return ByteCursor{cursor: sub}, err
}

// ReadBytesFront consumes n bytes from the front and returns them without
// copying.
func (c *ByteCursor) ReadBytesFront(n int) ([]byte, error) {
	sub, err := c.cursor.TakeFront(n)
	if err != nil {
		return nil, err
	}
	return sub.Remaining(), nil
}

// ReadBytesBack consumes n bytes from the back and returns them without
// copying.
func (c *ByteCursor) ReadBytesBack(n int) ([]byte, error) {
	sub, err := c.cursor.TakeBack(n)
	if err != nil {
		return nil, err
	}
	return sub.Remaining(), nil
}

func (c *ByteCursor) ReadUint8Front() (uint8, error) {
	return c.PopFront()
}

func (c *ByteCursor) ReadUint8Back() (uint8, error) {
	return c.PopBack()
}

func (c *ByteCursor) ReadInt8Front() (int8, error) {
	v, err := c.PopFront()
	return int8(v), err
}

func (c *ByteCursor) ReadInt8Back() (int8, error) {
	v, err := c.PopBack()
	return int8(v), err
}

func (c *ByteCursor) ReadUint16Front(order binary.ByteOrder) (uint16, error) {
	b, err := c.ReadBytesFront(common.Size16)
	if err != nil {
		return 0, err
	}
	return order.Uint16(b), nil
}

func (c *ByteCursor) ReadUint16Back(order binary.ByteOrder) (uint16, error) {
	b, err := c.ReadBytesBack(common.Size16)
	if err != nil {
		return 0, err
	}
	return order.Uint16(b), nil
}

func (c *ByteCursor) ReadInt16Front(order binary.ByteOrder) (int16, error) {
	v, err := c.ReadUint16Front(order)
	return int16(v), err
}

func (c *ByteCursor) ReadInt16Back(order binary.ByteOrder) (int16, error) {
	v, err := c.ReadUint16Back(order)
	return int16(v), err
}

func (c *ByteCursor) ReadUint32Front(order binary.ByteOrder) (uint32, error) {
	b, err := c.ReadBytesFront(common.Size32)
	if err != nil {
		return 0, err
	}
	return order.Uint32(b), nil
}

func (c *ByteCursor) ReadUint32Back(order binary.ByteOrder) (uint32, error) {
	b, err := c.ReadBytesBack(common.Size32)
	if err != nil {
		return 0, err
	}
	return order.Uint32(b), nil
}

func (c *ByteCursor) ReadInt32Front(order binary.ByteOrder) (int32, error) {
	v, err := c.ReadUint32Front(order)
	return int32(v), err
}

func (c *ByteCursor) ReadInt32Back(order binary.ByteOrder) (int32, error) {
	v, err := c.ReadUint32Back(order)
	return int32(v), err
}

func (c *ByteCursor) ReadUint64Front(order binary.ByteOrder) (uint64, error) {
	b, err := c.ReadBytesFront(common.Size64)
	if err != nil {
		return 0, err
	}
	return order.Uint64(b), nil
}

func (c *ByteCursor) ReadUint64Back(order binary.ByteOrder) (uint64, error) {
	b, err := c.ReadBytesBack(common.Size64)
	if err != nil {
		return 0, err
	}
	return order.Uint64(b), nil
}

func (c *ByteCursor) ReadInt64Front(order binary.ByteOrder) (int64, error) {
	v, err := c.ReadUint64Front(order)
	return int64(v), err
}

func (c *ByteCursor) ReadInt64Back(order binary.ByteOrder) (int64, error) {
	v, err := c.ReadUint64Back(order)
	return int64(v), err
}

func (c *ByteCursor) ReadFloat32Front(order binary.ByteOrder) (float32, error) {
	v, err := c.ReadUint32Front(order)
	return math.Float32frombits(v), err
}

func (c *ByteCursor) ReadFloat32Back(order binary.ByteOrder) (float32, error) {
	v, err := c.ReadUint32Back(order)
	return math.Float32frombits(v), err
}

func (c *ByteCursor) ReadFloat64Front(order binary.ByteOrder) (float64, error) {
	v, err := c.ReadUint64Front(order)
	return math.Float64frombits(v), err
}

func (c *ByteCursor) ReadFloat64Back(order binary.ByteOrder) (float64, error) {
	v, err := c.ReadUint64Back(order)
	return math.Float64frombits(v), err
}

// ReadUvarintFront decodes an unsigned LEB128 varint from the front.
// A varint cut short by the back boundary is an *UnexpectedEndError;
// one that does not fit in 64 bits is ErrMalformedVarint. Neither
// consumes anything.
func (c *ByteCursor) ReadUvarintFront() (uint64, error) {
	x, n, err := common.Uvarint(c.Remaining())
	if err != nil {
		return 0, ErrMalformedVarint
	}
	if n == 0 {
		return 0, endError(c.Len()+1, c.Len())
	}
	c.front += n
	return x, nil
}

// ReadVarintFront decodes a zig-zag signed varint from the front.
func (c *ByteCursor) ReadVarintFront() (int64, error) {
	ux, err := c.ReadUvarintFront()
	if err != nil {
		return 0, err
	}
	return common.ZigZag(ux), nil
}
