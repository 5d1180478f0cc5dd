package ports

// Codec serializes snapshot payloads for durable storage.
//
//go:generate go run go.uber.org/mock/mockgen -source=codec.go -destination=mocks/mock_codec.go -package=mocks
type Codec interface {
	// Encode serializes a value. Returns domain.ErrUnserializableValue for
	// values the codec cannot represent.
	Encode(v any) ([]byte, error)

	// Decode deserializes a blob produced by Encode.
	Decode(data []byte) (any, error)
}
