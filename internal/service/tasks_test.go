// internal/service/tasks_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	planv1 "github.com/planmaster/planmaster/api/proto/plan/v1/generated"
)

func TestPlanService_AddTask(t *testing.T) {
	svc, client := newTestPlanService(t)
	owner := createTestUser(t, client, "owner@example.com")
	writer := createTestUser(t, client, "writer@example.com")
	reader := createTestUser(t, client, "reader@example.com")
	ownerCtx := userContext(owner)

	plan := createTestPlan(t, svc, ownerCtx, "First", "Second")

	_, err := svc.SharePlan(ownerCtx, &planv1.SharePlanRequest{
		PlanId:     plan.Id,
		UserId:     writer.ID.String(),
		Permission: planv1.SharePermission_SHARE_PERMISSION_WRITE,
	})
	require.NoError(t, err)
	_, err = svc.SharePlan(ownerCtx, &planv1.SharePlanRequest{
		PlanId:     plan.Id,
		UserId:     reader.ID.String(),
		Permission: planv1.SharePermission_SHARE_PERMISSION_READ,
	})
	require.NoError(t, err)

	t.Run("write share appends at the end", func(t *testing.T) {
		resp, err := svc.AddTask(userContext(writer), &planv1.AddTaskRequest{
			PlanId: plan.Id,
			Task:   &planv1.NewTask{Title: "Third"},
		})
		require.NoError(t, err)

		require.Len(t, resp.Plan.Tasks, 3)
		added := resp.Plan.Tasks[2]
		assert.Equal(t, "Third", added.Title)
		assert.Equal(t, int32(2), added.PlanOrder)
		assert.Equal(t, int32(3), added.Priority)
		assert.Equal(t, plan.Date.AsTime(), added.Date.AsTime(), "task date defaults to the plan date")
		assert.Equal(t, int32(0), resp.Plan.CurrentTaskIndex, "appending never moves the cursor")
	})

	t.Run("read share is denied", func(t *testing.T) {
		_, err := svc.AddTask(userContext(reader), &planv1.AddTaskRequest{
			PlanId: plan.Id,
			Task:   &planv1.NewTask{Title: "Nope"},
		})
		require.Error(t, err)
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := svc.AddTask(ownerCtx, &planv1.AddTaskRequest{PlanId: plan.Id})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestPlanService_UpdateTask(t *testing.T) {
	svc, client := newTestPlanService(t)
	owner := createTestUser(t, client, "owner@example.com")
	ctx := userContext(owner)

	plan := createTestPlan(t, svc, ctx, "First", "Second")

	t.Run("empty update rejected", func(t *testing.T) {
		_, err := svc.UpdateTask(ctx, &planv1.UpdateTaskRequest{
			PlanId: plan.Id,
			TaskId: plan.Tasks[0].Id,
		})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("field update", func(t *testing.T) {
		title := "Renamed"
		priority := int32(5)
		resp, err := svc.UpdateTask(ctx, &planv1.UpdateTaskRequest{
			PlanId:   plan.Id,
			TaskId:   plan.Tasks[0].Id,
			Title:    &title,
			Priority: &priority,
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", resp.Plan.Tasks[0].Title)
		assert.Equal(t, int32(5), resp.Plan.Tasks[0].Priority)
		assert.Equal(t, "Second", resp.Plan.Tasks[1].Title)
	})

	t.Run("task from another plan is not found", func(t *testing.T) {
		otherPlan := createTestPlan(t, svc, ctx, "Elsewhere")
		title := "Renamed"
		_, err := svc.UpdateTask(ctx, &planv1.UpdateTaskRequest{
			PlanId: plan.Id,
			TaskId: otherPlan.Tasks[0].Id,
			Title:  &title,
		})
		require.Error(t, err)
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("completing every task completes the plan", func(t *testing.T) {
		done := true
		for _, task := range plan.Tasks {
			_, err := svc.UpdateTask(ctx, &planv1.UpdateTaskRequest{
				PlanId:    plan.Id,
				TaskId:    task.Id,
				Completed: &done,
			})
			require.NoError(t, err)
		}

		got, err := svc.GetPlan(ctx, &planv1.GetPlanRequest{Id: plan.Id})
		require.NoError(t, err)
		assert.True(t, got.Plan.Completed)
		assert.Equal(t, int32(len(got.Plan.Tasks)), got.Plan.CurrentTaskIndex)
	})

	t.Run("reopening a task reopens the plan", func(t *testing.T) {
		undone := false
		resp, err := svc.UpdateTask(ctx, &planv1.UpdateTaskRequest{
			PlanId:    plan.Id,
			TaskId:    plan.Tasks[1].Id,
			Completed: &undone,
		})
		require.NoError(t, err)
		assert.False(t, resp.Plan.Completed)
		assert.False(t, resp.Plan.Tasks[1].Completed)
	})
}

func TestPlanService_DeleteTask(t *testing.T) {
	svc, client := newTestPlanService(t)
	owner := createTestUser(t, client, "owner@example.com")
	ctx := userContext(owner)

	t.Run("last task cannot be deleted", func(t *testing.T) {
		plan := createTestPlan(t, svc, ctx, "Only task")
		_, err := svc.DeleteTask(ctx, &planv1.DeleteTaskRequest{
			PlanId: plan.Id,
			TaskId: plan.Tasks[0].Id,
		})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("deleting the middle keeps order dense", func(t *testing.T) {
		plan := createTestPlan(t, svc, ctx, "First", "Second", "Third", "Fourth")
		resp, err := svc.DeleteTask(ctx, &planv1.DeleteTaskRequest{
			PlanId: plan.Id,
			TaskId: plan.Tasks[1].Id,
		})
		require.NoError(t, err)

		got := resp.Plan
		require.Len(t, got.Tasks, 3)
		for i, title := range []string{"First", "Third", "Fourth"} {
			assert.Equal(t, title, got.Tasks[i].Title)
			assert.Equal(t, int32(i), got.Tasks[i].PlanOrder)
		}
	})

	t.Run("deleting the last incomplete task completes the plan", func(t *testing.T) {
		plan := createTestPlan(t, svc, ctx, "First", "Second")
		completed, err := svc.CompleteCurrentTask(ctx, &planv1.CompleteCurrentTaskRequest{PlanId: plan.Id})
		require.NoError(t, err)
		require.Equal(t, int32(1), completed.Plan.CurrentTaskIndex)

		// Only the incomplete "Second" remains to delete.
		resp, err := svc.DeleteTask(ctx, &planv1.DeleteTaskRequest{
			PlanId: plan.Id,
			TaskId: plan.Tasks[1].Id,
		})
		require.NoError(t, err)
		assert.True(t, resp.Plan.Completed, "all remaining tasks are complete")
		assert.Equal(t, int32(1), resp.Plan.CurrentTaskIndex)

		_, err = svc.CompleteCurrentTask(ctx, &planv1.CompleteCurrentTaskRequest{PlanId: plan.Id})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("deleting at the cursor leaves it in place", func(t *testing.T) {
		plan := createTestPlan(t, svc, ctx, "First", "Second", "Third")
		completed, err := svc.CompleteCurrentTask(ctx, &planv1.CompleteCurrentTaskRequest{PlanId: plan.Id})
		require.NoError(t, err)
		require.Equal(t, int32(1), completed.Plan.CurrentTaskIndex)

		// Delete the task the cursor points at: "Third" slides into slot 1.
		resp, err := svc.DeleteTask(ctx, &planv1.DeleteTaskRequest{
			PlanId: plan.Id,
			TaskId: plan.Tasks[1].Id,
		})
		require.NoError(t, err)
		assert.Equal(t, int32(1), resp.Plan.CurrentTaskIndex)
		assert.Equal(t, "Third", resp.Plan.Tasks[1].Title)
	})
}

func TestPlanService_DeleteTask_FinishesIndividualSharers(t *testing.T) {
	svc, client := newTestPlanService(t)
	owner := createTestUser(t, client, "owner@example.com")
	alice := createTestUser(t, client, "alice@example.com")
	ownerCtx := userContext(owner)
	aliceCtx := userContext(alice)

	plan := createTestPlan(t, svc, ownerCtx, "First", "Second")
	_, err := svc.SharePlan(ownerCtx, &planv1.SharePlanRequest{
		PlanId:     plan.Id,
		UserId:     alice.ID.String(),
		Permission: planv1.SharePermission_SHARE_PERMISSION_INDIVIDUAL,
	})
	require.NoError(t, err)

	// Alice completes the first task; the second is still ahead of her.
	aliceView, err := svc.CompleteCurrentTask(aliceCtx, &planv1.CompleteCurrentTaskRequest{PlanId: plan.Id})
	require.NoError(t, err)
	require.False(t, aliceView.Plan.Completed)

	// The owner deletes the second task: Alice has now covered every
	// remaining task, so the plan finishes for her too.
	_, err = svc.DeleteTask(ownerCtx, &planv1.DeleteTaskRequest{
		PlanId: plan.Id,
		TaskId: plan.Tasks[1].Id,
	})
	require.NoError(t, err)

	got, err := svc.GetPlan(aliceCtx, &planv1.GetPlanRequest{Id: plan.Id})
	require.NoError(t, err)
	assert.True(t, got.Plan.Completed)
	assert.Equal(t, int32(1), got.Plan.CurrentTaskIndex)
	require.Len(t, got.Plan.Tasks, 1)
	assert.True(t, got.Plan.Tasks[0].Completed)

	// The owner never completed anything, so nothing finished for them.
	ownerView, err := svc.GetPlan(ownerCtx, &planv1.GetPlanRequest{Id: plan.Id})
	require.NoError(t, err)
	assert.False(t, ownerView.Plan.Completed)
	assert.Equal(t, int32(0), ownerView.Plan.CurrentTaskIndex)
}

func TestPlanService_AddTask_ReopensCompletedPlan(t *testing.T) {
	svc, client := newTestPlanService(t)
	owner := createTestUser(t, client, "owner@example.com")
	alice := createTestUser(t, client, "alice@example.com")
	ownerCtx := userContext(owner)
	aliceCtx := userContext(alice)

	plan := createTestPlan(t, svc, ownerCtx, "Only task")
	_, err := svc.SharePlan(ownerCtx, &planv1.SharePlanRequest{
		PlanId:     plan.Id,
		UserId:     alice.ID.String(),
		Permission: planv1.SharePermission_SHARE_PERMISSION_INDIVIDUAL,
	})
	require.NoError(t, err)

	// Both finish the single-task plan on their own cursors.
	completed, err := svc.CompleteCurrentTask(ownerCtx, &planv1.CompleteCurrentTaskRequest{PlanId: plan.Id})
	require.NoError(t, err)
	require.True(t, completed.Plan.Completed)

	aliceView, err := svc.CompleteCurrentTask(aliceCtx, &planv1.CompleteCurrentTaskRequest{PlanId: plan.Id})
	require.NoError(t, err)
	require.True(t, aliceView.Plan.Completed)

	// Appending a task reopens the plan for everyone; the new task
	// becomes current.
	resp, err := svc.AddTask(ownerCtx, &planv1.AddTaskRequest{
		PlanId: plan.Id,
		Task:   &planv1.NewTask{Title: "One more"},
	})
	require.NoError(t, err)
	assert.False(t, resp.Plan.Completed)
	assert.Equal(t, int32(1), resp.Plan.CurrentTaskIndex)

	got, err := svc.GetPlan(aliceCtx, &planv1.GetPlanRequest{Id: plan.Id})
	require.NoError(t, err)
	assert.False(t, got.Plan.Completed)
	assert.Equal(t, int32(1), got.Plan.CurrentTaskIndex)

	// Progression resumes from the appended task for both.
	final, err := svc.CompleteCurrentTask(ownerCtx, &planv1.CompleteCurrentTaskRequest{PlanId: plan.Id})
	require.NoError(t, err)
	assert.True(t, final.Plan.Completed)
	assert.Equal(t, int32(2), final.Plan.CurrentTaskIndex)
}
