// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compression wraps zstd for small stored payloads.
package compression

import "github.com/klauspost/compress/zstd"

// Compressor compresses and restores byte slices.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// Zstd is a Compressor backed by one shared encoder and decoder. EncodeAll
// and DecodeAll are safe for concurrent use.
type Zstd struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewZstd builds a Zstd compressor.
func NewZstd() (*Zstd, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault), zstd.WithZeroFrames(true))
	if err != nil {
		return nil, err
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		encoder.Close()
		return nil, err
	}
	return &Zstd{encoder: encoder, decoder: decoder}, nil
}

func (z *Zstd) Compress(data []byte) ([]byte, error) {
	return z.encoder.EncodeAll(data, make([]byte, 0, len(data)/2+16)), nil
}

func (z *Zstd) Decompress(data []byte) ([]byte, error) {
	out, err := z.decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []byte{}
	}
	return out, nil
}

// Close releases the encoder and decoder.
func (z *Zstd) Close() {
	z.encoder.Close()
	z.decoder.Close()
}
