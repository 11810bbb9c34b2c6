package compactwire

import (
	"bytes"
	"errors"

	"github.com/klauspost/compress/zstd"
	"github.com/rawbytedev/tranche/trancheio"
)

// Frame layout, all little-endian except the magic:
//
//	magic(2) | type(1) | length(4) | body | crc32(4)
//
// length counts the whole frame. The CRC covers everything after the magic
// up to the CRC itself.
const (
	Magic        = 0xCF57
	PreambleSize = 3
	HeaderSize   = PreambleSize + 4
	TrailerSize  = 4
)

const (
	TypeData      byte = 0x01
	TypeError     byte = 0x02
	TypeHandshake byte = 0x03
)

const (
	FlagHasOffsetTable byte = 1 << 0
	FlagZstd           byte = 1 << 1 // payload is one zstd block
)

var (
	ErrBadMagic       = errors.New("compactwire: bad magic")
	ErrWrongType      = errors.New("compactwire: unexpected frame type")
	ErrLengthMismatch = errors.New("compactwire: length mismatch")
	ErrChecksum       = errors.New("compactwire: crc mismatch")
	ErrTrailingData   = errors.New("compactwire: trailing data in frame body")
	ErrTooLarge       = errors.New("compactwire: field too large")
	ErrOffsetsNoFlag  = errors.New("compactwire: offsets given without FlagHasOffsetTable")
)

type DataFrame struct {
	Flags   byte
	Offsets []uint32
	Payload []byte
}

type ErrorFrame struct {
	Code byte
	Data []byte
}

type HandshakeFrame struct {
	VersionMask uint16
	MTU         uint16
	TimeoutMS   uint32
	AlgCodes    []byte
}

type Options struct {
	Zstd trancheio.ZstdOptions
}

// Codec encodes and decodes frames. Decoded byte fields alias the input
// unless they had to be decompressed or copied.
// A Codec is not safe for concurrent use: encoding reuses one scratch
// buffer.
type Codec struct {
	Opts Options
	buf  *bytes.Buffer
	enc  *zstd.Encoder
	dec  *zstd.Decoder
}

func NewCodec(opts Options) (*Codec, error) {
	enc, err := trancheio.NewZstdEncoder(opts.Zstd)
	if err != nil {
		return nil, err
	}
	dec, err := trancheio.NewZstdDecoder(opts.Zstd)
	if err != nil {
		enc.Close()
		return nil, err
	}
	return &Codec{Opts: opts, buf: &bytes.Buffer{}, enc: enc, dec: dec}, nil
}

func (c *Codec) Close() error {
	c.dec.Close()
	return c.enc.Close()
}

func writePreamble(buf *bytes.Buffer, t byte) {
	buf.WriteByte(Magic >> 8)
	buf.WriteByte(Magic & 0xFF)
	buf.WriteByte(t)
}
