package services

import (
	"context"
	"log/slog"

	"quantum-lab/codec"
	"quantum-lab/contract"
)

// Report gathers everything the CLI displays about one round trip.
type Report struct {
	Original  string
	Decoded   string
	Bits      string
	Chunks    []codec.ChunkResult
	Identical bool
}

type IEncodingService interface {
	Process(ctx context.Context, message string) (Report, error)
}

// EncodingService drives the chunked codec and shapes its output for
// display. It carries no state between calls.
type EncodingService struct {
	codec *codec.Codec
	log   *slog.Logger
}

func NewEncodingService(backend contract.Backend, chunkSize int, log *slog.Logger) (*EncodingService, error) {
	c, err := codec.New(backend, chunkSize, log)
	if err != nil {
		return nil, err
	}
	return &EncodingService{codec: c, log: log}, nil
}

// Process encodes the message chunk by chunk, decodes the concatenated
// bits, and reports both sides of the trip.
func (s *EncodingService) Process(ctx context.Context, message string) (Report, error) {
	encoded, err := s.codec.Encode(ctx, message)
	if err != nil {
		return Report{}, err
	}

	decoded := s.codec.Decode(encoded.Bits)
	s.log.Info("Message processed",
		"chunks", len(encoded.Chunks),
		"bits", len(encoded.Bits),
		"identical", decoded == message,
	)
	return Report{
		Original:  message,
		Decoded:   decoded,
		Bits:      encoded.Bits,
		Chunks:    encoded.Chunks,
		Identical: decoded == message,
	}, nil
}
