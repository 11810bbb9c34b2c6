package trancheio

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/rawbytedev/tranche"
	"github.com/stretchr/testify/require"
)

func newCodec(t *testing.T) (*zstd.Encoder, *zstd.Decoder) {
	t.Helper()
	enc, err := NewZstdEncoder(ZstdOptions{})
	require.NoError(t, err)
	dec, err := NewZstdDecoder(ZstdOptions{Concurrency: 1})
	require.NoError(t, err)
	t.Cleanup(func() {
		enc.Close()
		dec.Close()
	})
	return enc, dec
}

func TestZstdBlockRoundTrip(t *testing.T) {
	enc, dec := newCodec(t)
	first := bytes.Repeat([]byte("TestCompression"), 20)
	second := []byte("short")

	buf := AppendZstdBlock(nil, enc, first)
	buf = AppendZstdBlock(buf, enc, second)
	buf = append(buf, 0xEE)

	c := tranche.NewBytes(buf)
	got, err := TakeZstdBlock(&c, dec)
	require.NoError(t, err)
	require.Equal(t, first, got)
	got, err = TakeZstdBlock(&c, dec)
	require.NoError(t, err)
	require.Equal(t, second, got)
	require.Equal(t, []byte{0xEE}, c.Remaining())
}

func TestZstdBlockTruncatedLeavesCursor(t *testing.T) {
	enc, dec := newCodec(t)
	buf := AppendZstdBlock(nil, enc, []byte("some payload to squeeze"))

	c := tranche.NewBytes(buf[:len(buf)-1])
	_, err := TakeZstdBlock(&c, dec)
	require.ErrorIs(t, err, ErrBlockTooLarge)
	require.Equal(t, len(buf)-1, c.Len())

	c = tranche.NewBytes([]byte{0x80})
	_, err = TakeZstdBlock(&c, dec)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Equal(t, 1, c.Len())
}

func TestZstdBlockCorruptLeavesCursor(t *testing.T) {
	_, dec := newCodec(t)
	buf := []byte{0x04, 0xDE, 0xAD, 0xBE, 0xEF}
	c := tranche.NewBytes(buf)
	_, err := TakeZstdBlock(&c, dec)
	require.Error(t, err)
	require.Equal(t, 5, c.Len())
}
