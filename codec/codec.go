// Package codec converts text to bit strings and back through a
// per-character qubit preparation and single-shot measurement.
// The quantum step is deliberately redundant: preparation is
// deterministic, so the measurement reads back exactly what was
// prepared. The package exists to make that visible, not to compute.
package codec

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"quantum-lab/contract"
	"quantum-lab/domain"
	"quantum-lab/errors"
)

// DefaultChunkSize bounds the qubit count of a single execution to
// 8 * 3 = 24 qubits.
const DefaultChunkSize = 3

// TextToBits encodes each rune as the 8 big-endian bits of its code
// point modulo 256. Code points above 255 wrap silently; the contract
// covers 8-bit text only.
func TextToBits(text string) string {
	var b strings.Builder
	b.Grow(8 * len(text))
	for _, r := range text {
		fmt.Fprintf(&b, "%08b", r%256)
	}
	return b.String()
}

// BitsToText decodes consecutive 8-bit groups into runes. A trailing
// group shorter than 8 bits is dropped, and any rune other than '1'
// counts as 0, so the function is total and never fails.
func BitsToText(bits string) string {
	var b strings.Builder
	for i := 0; i+8 <= len(bits); i += 8 {
		value := 0
		for _, r := range bits[i : i+8] {
			value <<= 1
			if r == '1' {
				value |= 1
			}
		}
		b.WriteRune(rune(value))
	}
	return b.String()
}

// ChunkResult describes one chunk's trip through the backend.
type ChunkResult struct {
	Chunk    string
	Bits     string          // preparation-order bits of the chunk
	Measured string          // raw readout, register order
	Circuit  *domain.Circuit // kept for display only
}

// Encoded is the outcome of encoding a whole message.
type Encoded struct {
	Bits   string
	Chunks []ChunkResult
}

// Codec runs the chunked round trip against a backend.
type Codec struct {
	backend   contract.Backend
	chunkSize int
	log       *slog.Logger
}

func New(backend contract.Backend, chunkSize int, log *slog.Logger) (*Codec, error) {
	if chunkSize < 1 {
		return nil, fmt.Errorf("%w: got %d", errors.ErrInvalidChunkSize, chunkSize)
	}
	return &Codec{backend: backend, chunkSize: chunkSize, log: log}, nil
}

// EncodeChunk prepares one qubit per bit of the chunk (X applied where
// the bit is 1), measures every qubit once, and reverses the register-
// order readout back into preparation order.
func (c *Codec) EncodeChunk(ctx context.Context, chunk string) (ChunkResult, error) {
	bits := TextToBits(chunk)

	circuit := domain.NewCircuit(len(bits), len(bits))
	for i, r := range bits {
		if r == '1' {
			circuit.X(i)
		}
	}
	circuit.MeasureAll()

	result, err := c.backend.Run(ctx, circuit, 1)
	if err != nil {
		return ChunkResult{}, fmt.Errorf("chunk %q: %w", chunk, err)
	}
	measured, err := result.Single()
	if err != nil {
		return ChunkResult{}, fmt.Errorf("chunk %q: %w", chunk, err)
	}

	c.log.Debug("Chunk measured", "chunk", chunk, "bits", bits, "readout", measured)
	return ChunkResult{
		Chunk:    chunk,
		Bits:     reverse(measured),
		Measured: measured,
		Circuit:  circuit,
	}, nil
}

// Encode partitions the message into chunks, runs each one strictly in
// order, and concatenates the recovered bits. An empty message yields
// zero chunks and an empty bit string.
func (c *Codec) Encode(ctx context.Context, message string) (Encoded, error) {
	if message == "" {
		return Encoded{}, nil
	}

	var encoded Encoded
	for _, chunk := range lo.ChunkString(message, c.chunkSize) {
		result, err := c.EncodeChunk(ctx, chunk)
		if err != nil {
			return Encoded{}, err
		}
		encoded.Bits += result.Bits
		encoded.Chunks = append(encoded.Chunks, result)
	}
	return encoded, nil
}

// Decode is the pure inverse of the bit concatenation.
func (c *Codec) Decode(bits string) string {
	return BitsToText(bits)
}

// RoundTrip encodes then decodes; for 8-bit text the output equals the
// input whatever the chunk size, since chunks never split a character.
func (c *Codec) RoundTrip(ctx context.Context, message string) (string, error) {
	encoded, err := c.Encode(ctx, message)
	if err != nil {
		return "", err
	}
	return c.Decode(encoded.Bits), nil
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
