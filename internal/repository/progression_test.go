// internal/repository/progression_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ent "github.com/planmaster/planmaster/ent/generated"
	"github.com/planmaster/planmaster/ent/generated/enttest"

	_ "github.com/mattn/go-sqlite3"
)

func TestCompleteShared_ConcurrentCursorAdvance(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	defer client.Close()

	ctx := context.Background()
	owner, err := client.User.Create().
		SetEmail("owner@example.com").
		SetPasswordHash("irrelevant").
		SetDisplayName("Owner").
		Save(ctx)
	require.NoError(t, err)

	repo := NewPlanRepository(client)
	view, err := repo.CreatePlan(ctx, owner.ID, &PlanInput{
		Title: "Contended plan",
		Date:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Tasks: []TaskInput{{Title: "First"}, {Title: "Second"}},
	})
	require.NoError(t, err)

	// Snapshot the plan at cursor 0, then advance the cursor out of
	// band: the snapshot is now stale, as if another writer committed
	// between this writer's read and its swap.
	stale, err := client.Plan.Get(ctx, view.ID)
	require.NoError(t, err)
	require.NoError(t, client.Plan.UpdateOneID(view.ID).SetCurrentTaskIndex(1).Exec(ctx))

	tasks, err := orderedTasks(ctx, client, view.ID)
	require.NoError(t, err)

	err = repo.withTx(ctx, func(tx *ent.Tx) error {
		return completeShared(ctx, tx.Client(), stale, tasks, time.Now())
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	// The failed swap rolled back the whole transaction: the first
	// task's completed write did not survive, and the cursor holds the
	// other writer's value.
	reloaded, err := repo.GetPlan(ctx, view.ID, owner.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.Tasks[0].Completed)
	assert.Equal(t, 1, reloaded.Progress.Index)
	assert.False(t, reloaded.Completed)
}
