package trancheio

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/rawbytedev/tranche"
	"github.com/rawbytedev/tranche/internal/common"
)

var ErrBlockTooLarge = errors.New("trancheio: compressed block length exceeds cursor")

type ZstdOptions struct {
	// MaxDecodedSize caps the decoded size of a single block. 0 keeps the
	// zstd default.
	MaxDecodedSize uint64
	// Concurrency is passed to the decoder; 0 keeps the zstd default.
	Concurrency int
	Level       zstd.EncoderLevel
}

// NewZstdDecoder returns a decoder for DecodeAll-style use; it is not
// bound to any stream.
func NewZstdDecoder(opts ZstdOptions) (*zstd.Decoder, error) {
	var o []zstd.DOption
	if opts.MaxDecodedSize > 0 {
		o = append(o, zstd.WithDecoderMaxMemory(opts.MaxDecodedSize))
	}
	if opts.Concurrency > 0 {
		o = append(o, zstd.WithDecoderConcurrency(opts.Concurrency))
	}
	return zstd.NewReader(nil, o...)
}

func NewZstdEncoder(opts ZstdOptions) (*zstd.Encoder, error) {
	level := opts.Level
	if level == 0 {
		level = zstd.SpeedDefault
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(level))
}

// AppendZstdBlock compresses raw and appends it to dst prefixed by its
// compressed length as a uvarint.
func AppendZstdBlock(dst []byte, enc *zstd.Encoder, raw []byte) []byte {
	block := enc.EncodeAll(raw, nil)
	dst = common.AppendUvarint(dst, uint64(len(block)))
	return append(dst, block...)
}

// TakeZstdBlock reads a block written by AppendZstdBlock from the front of
// c and returns it decompressed. c only advances if the length prefix and
// the whole block are present and the block decodes.
func TakeZstdBlock(c *tranche.ByteCursor, dec *zstd.Decoder) ([]byte, error) {
	fork := *c
	size, err := fork.ReadUvarintFront()
	if err != nil {
		return nil, AsIOError(err)
	}
	if size > uint64(fork.Len()) {
		return nil, fmt.Errorf("%w: %d > %d", ErrBlockTooLarge, size, fork.Len())
	}
	block, err := fork.ReadBytesFront(int(size))
	if err != nil {
		return nil, AsIOError(err)
	}
	out, err := dec.DecodeAll(block, nil)
	if err != nil {
		return nil, fmt.Errorf("trancheio: zstd block: %w", err)
	}
	*c = fork
	return out, nil
}
