package statestore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sansstate/internal/builder"
	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
	"git.home.luguber.info/inful/sansstate/internal/metrics"
	"git.home.luguber.info/inful/sansstate/internal/state"
	"git.home.luguber.info/inful/sansstate/internal/typed"
)

type countingRecorder struct {
	metrics.NoopRecorder
	ops map[string]map[metrics.ResultLabel]int
}

func (c *countingRecorder) IncStoreOperation(op string, result metrics.ResultLabel) {
	if c.ops[op] == nil {
		c.ops[op] = map[metrics.ResultLabel]int{}
	}
	c.ops[op][result]++
}

func newTestStore(t *testing.T, opts ...Option) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(":memory:", opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSaveAndGetRoundTripsMoveState(t *testing.T) {
	store := newTestStore(t)
	ctx := t.Context()

	b := builder.NewSANS2DMoveBuilder(nil)
	require.NoError(t, b.SetHABDetectorX(1.25))
	move, err := b.Build()
	require.NoError(t, err)

	id, err := store.Save(ctx, Snapshot{
		Model:      "move",
		Instrument: move.Instrument().String(),
		Run:        "22048",
		Properties: move.ToPropertyMap(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	snap, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, snap.ID)
	assert.Equal(t, "SANS2D", snap.Instrument)
	assert.Equal(t, "22048", snap.Run)
	assert.WithinDuration(t, time.Now(), snap.CreatedAt, time.Minute)

	restored, err := state.MoveFromPropertyMap(snap.Properties)
	require.NoError(t, err)
	assert.Equal(t, move.ToPropertyMap(), restored.ToPropertyMap())
	assert.Equal(t, 1.25, state.HABDetectorX.Get(restored.Variant().Record()).Unwrap())
}

func TestGetUnknownID(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(t.Context(), "missing")
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryStore))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListFiltersNewestFirst(t *testing.T) {
	rec := &countingRecorder{ops: map[string]map[metrics.ResultLabel]int{}}
	store := newTestStore(t, WithRecorder(rec))
	ctx := t.Context()

	for _, s := range []Snapshot{
		{Model: "move", Instrument: "LOQ", Run: "1"},
		{Model: "data", Instrument: "LOQ", Run: "2"},
		{Model: "move", Instrument: "LARMOR", Run: "3"},
		{Model: "move", Instrument: "LOQ", Run: "4", Properties: typed.PropertyMap{"sample_offset": 0.5}},
	} {
		_, err := store.Save(ctx, s)
		require.NoError(t, err)
	}

	all, err := store.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "4", all[0].Run)

	loqMoves, err := store.List(ctx, Filter{Model: "move", Instrument: "LOQ"})
	require.NoError(t, err)
	require.Len(t, loqMoves, 2)
	assert.Equal(t, []string{"4", "1"}, []string{loqMoves[0].Run, loqMoves[1].Run})
	assert.Equal(t, 0.5, loqMoves[0].Properties["sample_offset"])
	assert.Empty(t, loqMoves[1].Properties)

	latest, err := store.List(ctx, Filter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, latest, 1)

	assert.Equal(t, 4, rec.ops["save"][metrics.ResultSuccess])
	assert.Equal(t, 3, rec.ops["list"][metrics.ResultSuccess])
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	ctx := t.Context()

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	id, err := store.Save(ctx, Snapshot{Model: "data", Instrument: "LOQ", Run: "74044",
		Properties: typed.PropertyMap{"sample_scatter_period": 3, "monitor_names": []string{"1=monitor1"}}})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	snap, err := reopened.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3, snap.Properties["sample_scatter_period"])
	assert.Equal(t, []string{"1=monitor1"}, snap.Properties["monitor_names"])
}
