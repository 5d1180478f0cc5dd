package hashing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tpvasconcelos/maurice/internal/adapters/hashing"
	"github.com/tpvasconcelos/maurice/internal/core/domain"
)

func newFingerprinter(t *testing.T) *hashing.Fingerprinter {
	t.Helper()
	f, err := hashing.New(domain.AlgorithmXXHash64)
	require.NoError(t, err)
	return f
}

func TestNew_UnknownAlgorithm(t *testing.T) {
	_, err := hashing.New("md5")
	require.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
}

func TestFingerprint_Deterministic(t *testing.T) {
	// Two independent engines must agree, otherwise entries written by one
	// process are invisible to the next.
	f1 := newFingerprinter(t)
	f2 := newFingerprinter(t)

	values := []any{
		nil,
		true,
		int(42),
		int64(-7),
		uint8(255),
		3.14,
		complex(1, 2),
		"hello",
		[]byte("hello"),
		[]int{1, 2, 3},
		[3]string{"a", "b", "c"},
		map[string]int{"a": 1, "b": 2},
		struct{ Name string }{"x"},
	}

	for _, v := range values {
		d1, err := f1.Fingerprint(v)
		require.NoError(t, err)
		d2, err := f2.Fingerprint(v)
		require.NoError(t, err)
		require.Equal(t, d1, d2, "value %#v", v)
		require.NotEmpty(t, d1)
	}
}

func TestFingerprint_DistinguishesValues(t *testing.T) {
	f := newFingerprinter(t)

	pairs := [][2]any{
		{1, 2},
		{int64(1), "1"},
		{true, false},
		{"", nil},
		{[]int{1, 2}, []int{2, 1}},
		{map[string]int{"a": 1}, map[string]int{"a": 2}},
		{map[string]int{"a": 1}, map[string]int{"b": 1}},
		{struct{ A int }{1}, struct{ A int }{2}},
	}

	for _, p := range pairs {
		d1, err := f.Fingerprint(p[0])
		require.NoError(t, err)
		d2, err := f.Fingerprint(p[1])
		require.NoError(t, err)
		require.NotEqual(t, d1, d2, "%#v vs %#v", p[0], p[1])
	}
}

func TestFingerprint_StringVersusBytes(t *testing.T) {
	f := newFingerprinter(t)

	ds, err := f.Fingerprint("abc")
	require.NoError(t, err)
	db, err := f.Fingerprint([]byte("abc"))
	require.NoError(t, err)
	require.NotEqual(t, ds, db)
}

func TestFingerprint_MapOrderIndependent(t *testing.T) {
	f := newFingerprinter(t)

	a := map[string]int{}
	for i := 0; i < 100; i++ {
		a[string(rune('a'+i%26))+string(rune('0'+i/26))] = i
	}
	b := map[string]int{}
	for i := 99; i >= 0; i-- {
		b[string(rune('a'+i%26))+string(rune('0'+i/26))] = i
	}

	da, err := f.Fingerprint(a)
	require.NoError(t, err)
	db, err := f.Fingerprint(b)
	require.NoError(t, err)
	require.Equal(t, da, db)
}

func TestFingerprint_TimeViaMarshaler(t *testing.T) {
	f := newFingerprinter(t)

	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	d1, err := f.Fingerprint(ts)
	require.NoError(t, err)
	d2, err := f.Fingerprint(ts)
	require.NoError(t, err)
	require.Equal(t, d1, d2)

	d3, err := f.Fingerprint(ts.Add(time.Second))
	require.NoError(t, err)
	require.NotEqual(t, d1, d3)
}

type canonicalID struct {
	hi, lo uint64
}

func (c canonicalID) DigestBytes() ([]byte, error) {
	return []byte{byte(c.hi), byte(c.lo)}, nil
}

func TestFingerprint_DigestibleOverridesWalk(t *testing.T) {
	f := newFingerprinter(t)

	// Unexported fields alone would make the struct unserializable; the
	// Digestible implementation takes precedence.
	d, err := f.Fingerprint(canonicalID{hi: 1, lo: 2})
	require.NoError(t, err)
	require.NotEmpty(t, d)
}

func TestFingerprint_UnserializableKinds(t *testing.T) {
	f := newFingerprinter(t)

	_, err := f.Fingerprint(func() {})
	require.ErrorIs(t, err, domain.ErrUnserializableValue)

	_, err = f.Fingerprint(make(chan int))
	require.ErrorIs(t, err, domain.ErrUnserializableValue)

	type opaque struct{ hidden int } //nolint:unused // Field present to make the struct non-empty.
	_, err = f.Fingerprint(opaque{})
	require.ErrorIs(t, err, domain.ErrUnserializableValue)
}

func TestFingerprint_CyclicValue(t *testing.T) {
	f := newFingerprinter(t)

	cyclic := map[string]any{}
	cyclic["self"] = cyclic

	_, err := f.Fingerprint(cyclic)
	require.ErrorIs(t, err, domain.ErrUnserializableValue)
}

func TestFingerprint_SharedReferenceIsNotACycle(t *testing.T) {
	f := newFingerprinter(t)

	shared := map[string]int{"x": 1}
	v := []any{shared, shared}

	_, err := f.Fingerprint(v)
	require.NoError(t, err)
}

func TestFingerprintArgs_PositionalOrderMatters(t *testing.T) {
	f := newFingerprinter(t)

	d1, err := f.FingerprintArgs([]any{1, 2}, nil)
	require.NoError(t, err)
	d2, err := f.FingerprintArgs([]any{2, 1}, nil)
	require.NoError(t, err)
	require.NotEqual(t, d1, d2)
}

func TestFingerprintArgs_KwargsAreAKeySet(t *testing.T) {
	f := newFingerprinter(t)

	d1, err := f.FingerprintArgs(nil, map[string]any{"a": 1, "b": "x", "c": true})
	require.NoError(t, err)
	d2, err := f.FingerprintArgs(nil, map[string]any{"c": true, "b": "x", "a": 1})
	require.NoError(t, err)
	require.Equal(t, d1, d2)

	d3, err := f.FingerprintArgs(nil, map[string]any{"a": 1, "b": "x"})
	require.NoError(t, err)
	require.NotEqual(t, d1, d3)
}

func TestFingerprintArgs_ArgsAndKwargsDoNotBleed(t *testing.T) {
	f := newFingerprinter(t)

	// A positional value must never collide with a named one.
	d1, err := f.FingerprintArgs([]any{"a"}, nil)
	require.NoError(t, err)
	d2, err := f.FingerprintArgs(nil, map[string]any{"a": nil})
	require.NoError(t, err)
	require.NotEqual(t, d1, d2)
}

func TestFingerprintSeries(t *testing.T) {
	f := newFingerprinter(t)

	sorted1, err := f.FingerprintSeries([]any{1, 2, 3}, true)
	require.NoError(t, err)
	sorted2, err := f.FingerprintSeries([]any{3, 1, 2}, true)
	require.NoError(t, err)
	require.Equal(t, sorted1, sorted2)

	ordered1, err := f.FingerprintSeries([]any{1, 2, 3}, false)
	require.NoError(t, err)
	ordered2, err := f.FingerprintSeries([]any{3, 1, 2}, false)
	require.NoError(t, err)
	require.NotEqual(t, ordered1, ordered2)
}

func TestFingerprint_AlgorithmSelectsDigestWidth(t *testing.T) {
	xx, err := hashing.New(domain.AlgorithmXXHash64)
	require.NoError(t, err)
	sha, err := hashing.New(domain.AlgorithmSHA256)
	require.NoError(t, err)

	dx, err := xx.Fingerprint("v")
	require.NoError(t, err)
	ds, err := sha.Fingerprint("v")
	require.NoError(t, err)

	require.Len(t, string(dx), 16)
	require.Len(t, string(ds), 64)
	require.Equal(t, domain.AlgorithmXXHash64, xx.Algorithm())
	require.Equal(t, domain.AlgorithmSHA256, sha.Algorithm())
}
