// Package codec implements the snapshot codec used for durable state and
// result blobs.
package codec

import (
	"bytes"
	"encoding/gob"

	"github.com/tpvasconcelos/maurice/internal/core/domain"
	"github.com/tpvasconcelos/maurice/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Codec = (*GobCodec)(nil)

func init() {
	// Common composite payloads transmitted inside the interface envelope.
	gob.Register(domain.StateMap{})
	gob.Register(map[string]any{})
	gob.Register([]any{})
}

// RegisterType registers a concrete type for snapshot payloads that travel
// as interface values, mirroring gob.Register.
func RegisterType(v any) {
	gob.Register(v)
}

// payload is the stored envelope. Wrapping the value keeps the blob format
// self-describing for any registered concrete type.
type payload struct {
	V any
}

// GobCodec serializes snapshots with encoding/gob.
type GobCodec struct{}

// New creates a new GobCodec.
func New() *GobCodec {
	return &GobCodec{}
}

// Encode serializes a value into a snapshot blob.
func (c *GobCodec) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(payload{V: v}); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnserializableValue, ""), "cause", err.Error())
	}
	return buf.Bytes(), nil
}

// Decode deserializes a snapshot blob produced by Encode.
func (c *GobCodec) Decode(data []byte) (any, error) {
	var p payload
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&p); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrCorruptEntry, ""), "cause", err.Error())
	}
	return p.V, nil
}
