package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLifecycle(t *testing.T) {
	store := NewStore()

	sess := store.Create()
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, 1, store.Len())

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)

	require.NoError(t, store.Delete(sess.ID))
	_, err = store.Get(sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(sess.ID), ErrNotFound)
}

func TestSessionsAreIsolated(t *testing.T) {
	store := NewStore()
	a, b := store.Create(), store.Create()
	require.NotEqual(t, a.ID, b.ID)

	a.Set(FlowResume, FlowState{State: StateSkillsExtracted, Skills: []string{"Go"}})

	assert.Equal(t, StateSkillsExtracted, a.Flow(FlowResume).State)
	assert.Equal(t, StateIdle, b.Flow(FlowResume).State)
}

func TestFlowReturnsCopy(t *testing.T) {
	sess := newSession("s")
	sess.Set(FlowResume, FlowState{State: StateSkillsExtracted, Skills: []string{"Go", "SQL"}})

	fs := sess.Flow(FlowResume)
	fs.Skills[0] = "mutated"

	assert.Equal(t, "Go", sess.Flow(FlowResume).Skills[0])
}

func TestSnapshotIncludesIdleFlows(t *testing.T) {
	sess := newSession("s")
	sess.Set(FlowMealPlan, FlowState{State: StateDocumentGenerated, Document: "plan"})

	snap := sess.Snapshot()

	assert.Len(t, snap, 3)
	assert.Equal(t, StateIdle, snap[FlowResume].State)
	assert.Equal(t, StateIdle, snap[FlowCoverLetter].State)
	assert.Equal(t, "plan", snap[FlowMealPlan].Document)
}

func TestSweepDropsIdleSessions(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore()
	store.now = func() time.Time { return now }

	stale := store.Create()
	now = now.Add(90 * time.Minute)
	fresh := store.Create()
	now = now.Add(45 * time.Minute)

	assert.Equal(t, 1, store.Sweep(time.Hour))

	_, err := store.Get(stale.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestSweepSkipsBusySessions(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore()
	store.now = func() time.Time { return now }

	busy := store.Create()
	idle := store.Create()
	now = now.Add(3 * time.Hour)

	busy.Lock()
	assert.Equal(t, 1, store.Sweep(time.Hour))
	busy.Unlock()

	_, err := store.Get(busy.ID)
	assert.NoError(t, err)
	_, err = store.Get(idle.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRunSweeperStopsWithContext(t *testing.T) {
	store := NewStore()
	sess := store.Create()
	store.now = func() time.Time { return time.Now().Add(3 * time.Hour) }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		store.RunSweeper(ctx, 5*time.Millisecond, time.Hour, nil)
		close(done)
	}()

	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)
	_, err := store.Get(sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestFlowValid(t *testing.T) {
	assert.True(t, FlowResume.Valid())
	assert.True(t, FlowMealPlan.Valid())
	assert.False(t, Flow("poem").Valid())
}
