package indexstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/floydwarshall"
	"github.com/katalvlaran/pathfinder/indexstore"
	"github.com/katalvlaran/pathfinder/internal/fixture"
)

func index(t *testing.T, g core.Network) *floydwarshall.Index {
	t.Helper()
	idx, err := floydwarshall.Build(g)
	require.NoError(t, err)

	return idx
}

func walled(t *testing.T) *floydwarshall.Index  { return index(t, fixture.Walled()) }
func network(t *testing.T) *floydwarshall.Index { return index(t, fixture.Network()) }

// runStoreTests exercises any Store implementation.
func runStoreTests(t *testing.T, store indexstore.Store) {
	ctx := context.Background()

	t.Run("load missing", func(t *testing.T) {
		_, err := store.Load(ctx, "missing")
		assert.ErrorIs(t, err, indexstore.ErrNotFound)
	})

	t.Run("save and load", func(t *testing.T) {
		idx := walled(t)
		require.NoError(t, store.Save(ctx, "walled", idx))

		got, err := store.Load(ctx, "walled")
		require.NoError(t, err)
		if diff := cmp.Diff(idx.Snapshot(), got.Snapshot()); diff != "" {
			t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
		}
		hop, err := got.NextStepOnTheRoadBetween("B1", "B3")
		require.NoError(t, err)
		assert.Equal(t, "A1", hop)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "shared", walled(t)))
		require.NoError(t, store.Save(ctx, "shared", network(t)))

		got, err := store.Load(ctx, "shared")
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C", "D"}, got.Labels())
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "doomed", network(t)))
		require.NoError(t, store.Delete(ctx, "doomed"))

		_, err := store.Load(ctx, "doomed")
		assert.ErrorIs(t, err, indexstore.ErrNotFound)
		assert.ErrorIs(t, store.Delete(ctx, "doomed"), indexstore.ErrNotFound)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		assert.Error(t, store.Save(cancelled, "late", network(t)))
	})
}

func TestSQLiteStore(t *testing.T) {
	store, err := indexstore.OpenSQLite(filepath.Join(t.TempDir(), "indexes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	runStoreTests(t, store)
}

func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "indexes.db")
	ctx := context.Background()

	first, err := indexstore.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, "walled", walled(t)))
	require.NoError(t, first.Close())

	second, err := indexstore.OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })
	got, err := second.Load(ctx, "walled")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Len(), "twelve cells, two walls")
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	store := indexstore.NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = store.Close() })

	runStoreTests(t, store)
	assert.True(t, mr.Exists(indexstore.Key("walled")))
	assert.False(t, mr.Exists(indexstore.Key("doomed")))
}

func TestRedisStore_CorruptValue(t *testing.T) {
	mr := miniredis.RunT(t)
	store := indexstore.NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, mr.Set(indexstore.Key("bad"), "labels: [A, B]\ndistances: [[0]]\n"))
	_, err := store.Load(context.Background(), "bad")
	assert.ErrorIs(t, err, floydwarshall.ErrCorruptSnapshot)
}

func TestOpenRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	store, err := indexstore.OpenRedis("redis://" + mr.Addr() + "/0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Save(context.Background(), "n", network(t)))
	assert.True(t, mr.Exists("pathfinder:index:n"))

	_, err = indexstore.OpenRedis("http://nope")
	assert.Error(t, err)
}

func TestDecode_Corrupt(t *testing.T) {
	for name, src := range map[string]string{
		"not yaml":     "labels: [",
		"wrong shape":  "labels: [A]\ndistances: [[0, 1]]\nnext: [[-1]]\n",
		"bad next hop": "labels: [A]\ndistances: [[0]]\nnext: [[3]]\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := indexstore.Decode([]byte(src))
			assert.ErrorIs(t, err, floydwarshall.ErrCorruptSnapshot)
		})
	}
}

func TestEncode_KeepsInfinity(t *testing.T) {
	sparse := index(t, fixture.Edgeless())
	data, err := indexstore.Encode(sparse)
	require.NoError(t, err)
	assert.Contains(t, string(data), ".inf")

	back, err := indexstore.Decode(data)
	require.NoError(t, err)
	_, ok := back.Distance("A", "D")
	assert.False(t, ok)
}
