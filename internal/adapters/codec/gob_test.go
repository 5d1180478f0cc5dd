package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tpvasconcelos/maurice/internal/adapters/codec"
	"github.com/tpvasconcelos/maurice/internal/core/domain"
)

func TestGobCodec_RoundTrip(t *testing.T) {
	c := codec.New()

	values := []any{
		int(42),
		"hello",
		3.5,
		true,
		[]any{int(1), "two"},
		map[string]any{"k": "v"},
		domain.StateMap{"count": int(7), "label": "x"},
	}

	for _, v := range values {
		blob, err := c.Encode(v)
		require.NoError(t, err)
		require.NotEmpty(t, blob)

		got, err := c.Decode(blob)
		require.NoError(t, err)
		require.Equal(t, v, got, "value %#v", v)
	}
}

func TestGobCodec_NilValue(t *testing.T) {
	c := codec.New()

	blob, err := c.Encode(nil)
	require.NoError(t, err)

	got, err := c.Decode(blob)
	require.NoError(t, err)
	require.Nil(t, got)
}

type customSnapshot struct {
	ID   int
	Tags []string
}

func TestGobCodec_RegisteredType(t *testing.T) {
	codec.RegisterType(customSnapshot{})
	c := codec.New()

	v := customSnapshot{ID: 1, Tags: []string{"a", "b"}}
	blob, err := c.Encode(v)
	require.NoError(t, err)

	got, err := c.Decode(blob)
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestGobCodec_UnserializableValue(t *testing.T) {
	c := codec.New()

	_, err := c.Encode(func() {})
	require.ErrorIs(t, err, domain.ErrUnserializableValue)

	_, err = c.Encode(make(chan int))
	require.ErrorIs(t, err, domain.ErrUnserializableValue)
}

func TestGobCodec_CorruptBlob(t *testing.T) {
	c := codec.New()

	_, err := c.Decode([]byte("not a gob stream"))
	require.ErrorIs(t, err, domain.ErrCorruptEntry)

	blob, err := c.Encode("ok")
	require.NoError(t, err)
	_, err = c.Decode(blob[:len(blob)/2])
	require.ErrorIs(t, err, domain.ErrCorruptEntry)
}
