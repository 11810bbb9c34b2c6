package compactwire

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/rawbytedev/tranche"
	"github.com/rawbytedev/tranche/trancheio"
)

var le = binary.LittleEndian

func truncated(err error) error {
	return fmt.Errorf("compactwire: truncated frame: %w", trancheio.AsIOError(err))
}

// openFrame checks the envelope of data and returns a cursor over the body.
func openFrame(data []byte, want byte) (tranche.ByteCursor, error) {
	c := tranche.NewBytes(data)

	// 1) trailer first so the body cursor never sees the CRC
	sum, err := c.ReadUint32Back(le)
	if err != nil {
		return c, truncated(err)
	}
	// 2) preamble + length
	magic, err := c.ReadUint16Front(binary.BigEndian)
	if err != nil {
		return c, truncated(err)
	}
	if magic != Magic {
		return c, ErrBadMagic
	}
	t, err := c.ReadUint8Front()
	if err != nil {
		return c, truncated(err)
	}
	if t != want {
		return c, fmt.Errorf("%w: got 0x%02x, want 0x%02x", ErrWrongType, t, want)
	}
	length, err := c.ReadUint32Front(le)
	if err != nil {
		return c, truncated(err)
	}
	if int64(length) != int64(len(data)) {
		return c, fmt.Errorf("%w: header says %d, frame is %d", ErrLengthMismatch, length, len(data))
	}
	// 3) CRC over everything between magic and trailer
	if crc32.ChecksumIEEE(data[2:len(data)-TrailerSize]) != sum {
		return c, ErrChecksum
	}
	return c, nil
}

// DecodeData parses a Data Frame. Offsets are copied; the payload aliases
// data unless it was compressed.
func (c *Codec) DecodeData(data []byte) (DataFrame, error) {
	var f DataFrame
	body, err := openFrame(data, TypeData)
	if err != nil {
		return f, err
	}
	if f.Flags, err = body.ReadUint8Front(); err != nil {
		return f, truncated(err)
	}

	if f.Flags&FlagHasOffsetTable != 0 {
		cnt, err := body.ReadUint16Front(le)
		if err != nil {
			return f, truncated(err)
		}
		table, err := body.TakeFront(int(cnt) * 4)
		if err != nil {
			return f, truncated(err)
		}
		f.Offsets = make([]uint32, 0, cnt)
		for !table.IsEmpty() {
			off, _ := table.ReadUint32Front(le)
			f.Offsets = append(f.Offsets, off)
		}
	}

	if f.Flags&FlagZstd != 0 {
		if f.Payload, err = trancheio.TakeZstdBlock(&body, c.dec); err != nil {
			return f, fmt.Errorf("compactwire: payload: %w", err)
		}
		if !body.IsEmpty() {
			return f, ErrTrailingData
		}
		return f, nil
	}
	f.Payload = body.Remaining()
	return f, nil
}

// DecodeError parses an Error Frame. Data is copied out of the frame.
func (c *Codec) DecodeError(data []byte) (ErrorFrame, error) {
	var f ErrorFrame
	body, err := openFrame(data, TypeError)
	if err != nil {
		return f, err
	}
	if f.Code, err = body.ReadUint8Front(); err != nil {
		return f, truncated(err)
	}
	dataLen, err := body.ReadUint16Front(le)
	if err != nil {
		return f, truncated(err)
	}
	f.Data = make([]byte, dataLen)
	if _, err := io.ReadFull(trancheio.NewReader(&body), f.Data); err != nil {
		return ErrorFrame{}, fmt.Errorf("compactwire: truncated frame: %w", err)
	}
	if !body.IsEmpty() {
		return f, ErrTrailingData
	}
	return f, nil
}

func (c *Codec) DecodeHandshake(data []byte) (HandshakeFrame, error) {
	var h HandshakeFrame
	body, err := openFrame(data, TypeHandshake)
	if err != nil {
		return h, err
	}
	if h.VersionMask, err = body.ReadUint16Front(le); err != nil {
		return h, truncated(err)
	}
	if h.MTU, err = body.ReadUint16Front(le); err != nil {
		return h, truncated(err)
	}
	if h.TimeoutMS, err = body.ReadUint32Front(le); err != nil {
		return h, truncated(err)
	}
	algLen, err := body.ReadUint16Front(le)
	if err != nil {
		return h, truncated(err)
	}
	if h.AlgCodes, err = body.ReadBytesFront(int(algLen)); err != nil {
		return h, truncated(err)
	}
	if !body.IsEmpty() {
		return h, ErrTrailingData
	}
	return h, nil
}
