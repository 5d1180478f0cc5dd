package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tpvasconcelos/maurice/internal/adapters/cas"
	"github.com/tpvasconcelos/maurice/internal/app"
	"github.com/tpvasconcelos/maurice/internal/core/domain"
	"github.com/tpvasconcelos/maurice/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func setupAppTest(t *testing.T) (*app.App, *cas.Store) {
	t.Helper()
	ctrl := gomock.NewController(t)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	settings := domain.DefaultSettings()
	settings.CacheDir = filepath.Join(t.TempDir(), "cache")

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(settings, nil).AnyTimes()

	store, err := cas.NewStore(settings.StorePath(), logger)
	require.NoError(t, err)

	return app.New(loader, logger), store
}

func seedEntry(t *testing.T, store *cas.Store, stateSegment, operation string, stateful bool) domain.CacheKey {
	t.Helper()
	key := domain.CacheKey{
		Identity: domain.TargetIdentity{
			Namespace: []string{"example.com", "pkg"},
			TypeName:  "Widget",
		},
		StateSegment:    stateSegment,
		Operation:       operation,
		ArgsFingerprint: domain.Fingerprint("aa00bb11cc22dd33"),
	}
	entry := &domain.Entry{
		Result: []byte("result"),
		Meta: &domain.Metadata{
			Operation:    operation,
			ArgsRepr:     "[]",
			KwargsRepr:   "{}",
			StateMatters: stateful,
			ResultRepr:   `"ok"`,
			ResultHash:   "ff00",
		},
	}
	if stateful {
		entry.State = []byte("state")
	}
	require.NoError(t, store.Write(key, entry))
	return key
}

func TestApp_List(t *testing.T) {
	a, store := setupAppTest(t)

	k1 := seedEntry(t, store, "1111222233334444", "grow", true)
	k2 := seedEntry(t, store, domain.StatelessSegment, "peek", false)

	summaries, err := a.List(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byPath := map[string]app.EntrySummary{}
	for _, s := range summaries {
		byPath[s.KeyPath] = s
	}

	s1, ok := byPath[filepath.ToSlash(k1.Path())]
	require.True(t, ok)
	require.True(t, s1.Stateful)
	require.NotNil(t, s1.Meta)
	require.Equal(t, "grow", s1.Meta.Operation)

	s2, ok := byPath[filepath.ToSlash(k2.Path())]
	require.True(t, ok)
	require.False(t, s2.Stateful)
}

func TestApp_List_EmptyStore(t *testing.T) {
	a, _ := setupAppTest(t)

	summaries, err := a.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, summaries)
}

func TestApp_List_SortedByKeyPath(t *testing.T) {
	a, store := setupAppTest(t)

	seedEntry(t, store, "bbbb000000000000", "opb", false)
	seedEntry(t, store, "aaaa000000000000", "opa", false)

	summaries, err := a.List(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	require.Less(t, summaries[0].KeyPath, summaries[1].KeyPath)
}

func TestApp_Inspect(t *testing.T) {
	a, store := setupAppTest(t)
	key := seedEntry(t, store, "1111222233334444", "grow", true)

	meta, err := a.Inspect(context.Background(), key.Path())
	require.NoError(t, err)
	require.Equal(t, "grow", meta.Operation)
	require.True(t, meta.StateMatters)
}

func TestApp_Inspect_NotFound(t *testing.T) {
	a, _ := setupAppTest(t)

	_, err := a.Inspect(context.Background(), "no/such/key")
	require.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestApp_Inspect_RejectsEscapingKeyPath(t *testing.T) {
	a, store := setupAppTest(t)

	outside := filepath.Join(filepath.Dir(store.Root()), "outside")
	require.NoError(t, os.MkdirAll(outside, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(outside, domain.MetadataFileName), []byte("{}"), 0o600))

	for _, keyPath := range []string{
		"../outside",
		"a/../../outside",
		"/etc",
	} {
		_, err := a.Inspect(context.Background(), keyPath)
		require.ErrorIs(t, err, domain.ErrInvalidKeyPath, keyPath)
	}
}

func TestApp_Clean_RejectsEscapingKeyPath(t *testing.T) {
	a, store := setupAppTest(t)

	// A sibling of the store root must survive a traversal attempt.
	outside := filepath.Join(filepath.Dir(store.Root()), "outside")
	require.NoError(t, os.MkdirAll(outside, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(outside, "keep.txt"), []byte("keep"), 0o600))

	err := a.Clean(context.Background(), app.CleanOptions{KeyPath: "../outside"})
	require.ErrorIs(t, err, domain.ErrInvalidKeyPath)

	_, statErr := os.Stat(filepath.Join(outside, "keep.txt"))
	require.NoError(t, statErr)
}

func TestApp_Clean_SingleKey(t *testing.T) {
	a, store := setupAppTest(t)

	k1 := seedEntry(t, store, "1111222233334444", "grow", true)
	k2 := seedEntry(t, store, domain.StatelessSegment, "peek", false)

	require.NoError(t, a.Clean(context.Background(), app.CleanOptions{KeyPath: k1.Path()}))
	require.False(t, store.Exists(k1))
	require.True(t, store.Exists(k2))
}

func TestApp_Clean_Store(t *testing.T) {
	a, store := setupAppTest(t)
	key := seedEntry(t, store, domain.StatelessSegment, "peek", false)

	require.NoError(t, a.Clean(context.Background(), app.CleanOptions{}))
	require.False(t, store.Exists(key))

	summaries, err := a.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, summaries)
}

func TestApp_Clean_All(t *testing.T) {
	a, store := setupAppTest(t)
	seedEntry(t, store, domain.StatelessSegment, "peek", false)

	require.NoError(t, a.Clean(context.Background(), app.CleanOptions{All: true}))

	summaries, err := a.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, summaries)
}
