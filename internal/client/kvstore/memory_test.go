package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Roundtrip(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	_, ok, err := m.Get(ctx, "@user")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, "@language", "en"))
	require.NoError(t, m.MultiSet(ctx, map[string]string{"@user": "{}", "@token": "t"}))
	assert.Equal(t, map[string]string{"@language": "en", "@user": "{}", "@token": "t"}, m.Snapshot())

	require.NoError(t, m.MultiRemove(ctx, "@user", "@token"))
	require.NoError(t, m.Remove(ctx, "missing"))
	assert.Equal(t, map[string]string{"@language": "en"}, m.Snapshot())
}

func TestMemoryStore_SnapshotIsACopy(t *testing.T) {
	m := NewMemoryStore()
	require.NoError(t, m.Set(context.Background(), "k", "v"))

	snap := m.Snapshot()
	snap["k"] = "changed"

	v, _, _ := m.Get(context.Background(), "k")
	assert.Equal(t, "v", v)
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*SQLiteStore)(nil)
)
