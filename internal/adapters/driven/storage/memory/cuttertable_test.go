package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCutterTableStore_LoadAndReplace(t *testing.T) {
	ctx := context.Background()
	seed := map[string]string{"Smith": "655"}
	store := NewCutterTableStore(seed)
	seed["jones"] = "72"

	table, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())

	v, ok := table.Lookup("smith")
	require.True(t, ok)
	assert.Equal(t, "655", v)

	require.NoError(t, store.Replace(ctx, map[string]string{"jones": "72", "great": "786"}))

	assert.Equal(t, 1, table.Len(), "loaded tables are snapshots")

	table, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"great", "jones"}, table.Keys())
}
