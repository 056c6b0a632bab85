/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package dataprotect

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// NewCompressor returns the compressor registered for algo. Unknown names disable compression.
func NewCompressor(algo string) Compressor {
	switch strings.ToLower(algo) {
	case "gzip":
		return &GZip{}
	case "zstd":
		return &ZStd{}
	default:
		return &NilZip{}
	}
}

// ZStd compresses with zstandard. Encoder and decoder are created once and shared,
// both are safe for concurrent EncodeAll/DecodeAll calls.
type ZStd struct {
	once    sync.Once
	encoder *zstd.Encoder
	decoder *zstd.Decoder
	initErr error
}

func (z *ZStd) init() {
	z.once.Do(func() {
		z.encoder, z.initErr = zstd.NewWriter(nil)
		if z.initErr != nil {
			return
		}

		z.decoder, z.initErr = zstd.NewReader(nil)
	})
}

func (z *ZStd) Compress(input []byte) ([]byte, error) {
	z.init()

	if z.initErr != nil {
		return nil, fmt.Errorf("zstd init: %w", z.initErr)
	}

	return z.encoder.EncodeAll(input, nil), nil
}

func (z *ZStd) Decompress(input []byte) ([]byte, error) {
	z.init()

	if z.initErr != nil {
		return nil, fmt.Errorf("zstd init: %w", z.initErr)
	}

	out, err := z.decoder.DecodeAll(input, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decode: %w", err)
	}

	return out, nil
}

// GZip compresses with compress/gzip.
type GZip struct {
}

func (g *GZip) Compress(input []byte) ([]byte, error) {
	var buf bytes.Buffer

	w := gzip.NewWriter(&buf)

	if _, err := w.Write(input); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (g *GZip) Decompress(input []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(input))
	if err != nil {
		return nil, fmt.Errorf("gzip reader: %w", err)
	}

	defer func() {
		_ = r.Close()
	}()

	return io.ReadAll(r)
}

// NilZip leaves input unchanged.
type NilZip struct {
}

func (n *NilZip) Compress(input []byte) ([]byte, error) {
	return input, nil
}

func (n *NilZip) Decompress(input []byte) ([]byte, error) {
	return input, nil
}
