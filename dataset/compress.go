package dataset

import (
	"io"
	"path"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// WrapReader wraps r with the decompressor implied by the filename extension
// (.gz, .zst, .lz4). Any other extension passes through untouched.
//
// The caller must close the returned reader; closing it does not close r.
func WrapReader(name string, r io.Reader) (io.ReadCloser, error) {
	switch path.Ext(name) {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr, nil
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	case ".lz4":
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

// WrapWriter wraps w with the compressor implied by the filename extension
// (.gz, .zst, .lz4). Any other extension passes through untouched.
//
// The caller must close the returned writer to flush the codec; closing it
// does not close w.
func WrapWriter(name string, w io.Writer) (io.WriteCloser, error) {
	switch path.Ext(name) {
	case ".gz":
		return gzip.NewWriter(w), nil
	case ".zst":
		return zstd.NewWriter(w)
	case ".lz4":
		return lz4.NewWriter(w), nil
	default:
		return nopWriteCloser{w}, nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
