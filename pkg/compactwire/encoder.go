package compactwire

import (
	"encoding/binary"
	"hash/crc32"
	"math"

	"github.com/rawbytedev/tranche/trancheio"
)

// begin resets the scratch buffer and writes the preamble plus a length
// placeholder.
func (c *Codec) begin(t byte) {
	c.buf.Reset()
	writePreamble(c.buf, t)
	binary.Write(c.buf, binary.LittleEndian, uint32(0))
}

// finish fills in the length, appends the CRC and returns a copy of the
// frame.
func (c *Codec) finish() []byte {
	out := c.buf.Bytes()
	total := uint32(len(out) + TrailerSize)
	binary.LittleEndian.PutUint32(out[PreambleSize:], total)

	crc := crc32.ChecksumIEEE(out[2:]) // exclude magic
	frame := make([]byte, len(out), len(out)+TrailerSize)
	copy(frame, out)
	return binary.LittleEndian.AppendUint32(frame, crc)
}

// EncodeData serializes a payload with an optional offset table. With
// FlagZstd set the payload is compressed. Offsets without
// FlagHasOffsetTable are rejected rather than dropped.
func (c *Codec) EncodeData(f DataFrame) ([]byte, error) {
	if len(f.Offsets) > 0 && f.Flags&FlagHasOffsetTable == 0 {
		return nil, ErrOffsetsNoFlag
	}
	c.begin(TypeData)
	c.buf.WriteByte(f.Flags)

	if f.Flags&FlagHasOffsetTable != 0 {
		if len(f.Offsets) > math.MaxUint16 {
			return nil, ErrTooLarge
		}
		binary.Write(c.buf, binary.LittleEndian, uint16(len(f.Offsets)))
		for _, off := range f.Offsets {
			binary.Write(c.buf, binary.LittleEndian, off)
		}
	}

	if f.Flags&FlagZstd != 0 {
		c.buf.Write(trancheio.AppendZstdBlock(nil, c.enc, f.Payload))
	} else {
		c.buf.Write(f.Payload)
	}
	return c.finish(), nil
}

// EncodeError builds an Error Frame with code and custom data.
func (c *Codec) EncodeError(f ErrorFrame) ([]byte, error) {
	if len(f.Data) > math.MaxUint16 {
		return nil, ErrTooLarge
	}
	c.begin(TypeError)
	c.buf.WriteByte(f.Code)
	binary.Write(c.buf, binary.LittleEndian, uint16(len(f.Data)))
	c.buf.Write(f.Data)
	return c.finish(), nil
}

func (c *Codec) EncodeHandshake(h HandshakeFrame) ([]byte, error) {
	if len(h.AlgCodes) > math.MaxUint16 {
		return nil, ErrTooLarge
	}
	c.begin(TypeHandshake)
	binary.Write(c.buf, binary.LittleEndian, h.VersionMask)
	binary.Write(c.buf, binary.LittleEndian, h.MTU)
	binary.Write(c.buf, binary.LittleEndian, h.TimeoutMS)
	binary.Write(c.buf, binary.LittleEndian, uint16(len(h.AlgCodes)))
	c.buf.Write(h.AlgCodes)
	return c.finish(), nil
}
