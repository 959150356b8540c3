package history

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "protovet.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db)
}

func testInvocation(id string, startedAt time.Time) Invocation {
	return Invocation{
		ID:           id,
		StartedAt:    startedAt.UTC().Format(time.RFC3339),
		Mode:         "validate",
		Total:        3,
		PassCount:    2,
		WarningCount: 1,
		AverageScore: 0.956,
		ManifestPath: ".protovet/validation/evidence-manifest.json",
		Protocols: []ProtocolRow{
			{ProtocolID: "01", Status: "pass", Score: 1.0},
			{ProtocolID: "02", Status: "pass", Score: 0.97},
			{ProtocolID: "03", Status: "warning", Score: 0.9},
		},
	}
}

func TestRecordAndList(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		inv := testInvocation(fmt.Sprintf("inv-%02d", i), base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, store.Record(ctx, inv))
	}

	got, err := store.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "inv-02", got[0].ID)
	assert.Equal(t, "inv-01", got[1].ID)
	assert.Equal(t, 3, got[0].Total)
	assert.Equal(t, "validate", got[0].Mode)
}

func TestPrune_KeepLast(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		inv := testInvocation(fmt.Sprintf("inv-%02d", i), base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, store.Record(ctx, inv))
	}

	res, err := store.Prune(ctx, RetentionPolicy{KeepLast: 2}, false)
	require.NoError(t, err)
	assert.Equal(t, PruneResult{Considered: 5, Kept: 2, Deleted: 3}, res)

	remaining, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, "inv-04", remaining[0].ID)
}

func TestPrune_KeepDays(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, store.Record(ctx, testInvocation("inv-old", now.Add(-72*time.Hour))))
	require.NoError(t, store.Record(ctx, testInvocation("inv-new", now.Add(-time.Hour))))

	res, err := store.Prune(ctx, RetentionPolicy{KeepDays: 2}, false)
	require.NoError(t, err)
	assert.Equal(t, PruneResult{Considered: 2, Kept: 1, Deleted: 1}, res)

	remaining, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "inv-new", remaining[0].ID)
}

func TestPrune_DryRunLeavesRecords(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		inv := testInvocation(fmt.Sprintf("inv-%02d", i), base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, store.Record(ctx, inv))
	}

	res, err := store.Prune(ctx, RetentionPolicy{KeepLast: 1}, true)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Deleted)

	remaining, err := store.List(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, remaining, 4)
}

func TestPrune_EmptyPolicyIsNoop(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	res, err := store.Prune(context.Background(), RetentionPolicy{}, false)
	require.NoError(t, err)
	assert.Equal(t, PruneResult{}, res)
}

func TestNewInvocationID(t *testing.T) {
	t.Parallel()

	a, err := NewInvocationID()
	require.NoError(t, err)
	b, err := NewInvocationID()
	require.NoError(t, err)
	assert.Len(t, a, len("inv-")+16)
	assert.NotEqual(t, a, b)
}
