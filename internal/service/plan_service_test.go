// internal/service/plan_service_test.go
package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	planv1 "github.com/planmaster/planmaster/api/proto/plan/v1/generated"
	"github.com/planmaster/planmaster/internal/repository"
)

func TestPlanService_CreatePlan(t *testing.T) {
	tests := []struct {
		name         string
		request      *planv1.CreatePlanRequest
		wantErr      bool
		expectedCode codes.Code
	}{
		{
			name: "successful creation",
			request: &planv1.CreatePlanRequest{
				Title: "Morning routine",
				Date:  testDate(),
				Tasks: []*planv1.NewTask{
					{Title: "Stretch"},
					{Title: "Review inbox", Priority: 5},
					{Title: "Plan the day"},
				},
			},
		},
		{
			name: "no tasks",
			request: &planv1.CreatePlanRequest{
				Title: "Empty plan",
				Date:  testDate(),
			},
			wantErr:      true,
			expectedCode: codes.InvalidArgument,
		},
		{
			name: "missing title",
			request: &planv1.CreatePlanRequest{
				Date:  testDate(),
				Tasks: []*planv1.NewTask{{Title: "Task"}},
			},
			wantErr:      true,
			expectedCode: codes.InvalidArgument,
		},
		{
			name: "missing date",
			request: &planv1.CreatePlanRequest{
				Title: "No date",
				Tasks: []*planv1.NewTask{{Title: "Task"}},
			},
			wantErr:      true,
			expectedCode: codes.InvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, client := newTestPlanService(t)
			owner := createTestUser(t, client, "owner@example.com")

			resp, err := svc.CreatePlan(userContext(owner), tt.request)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.expectedCode, status.Code(err))
				return
			}

			require.NoError(t, err)
			plan := resp.Plan
			assert.Equal(t, owner.ID.String(), plan.OwnerId)
			assert.Equal(t, int32(0), plan.CurrentTaskIndex)
			assert.False(t, plan.Completed)
			assert.False(t, plan.IsShared)
			require.Len(t, plan.Tasks, 3)

			for i, task := range plan.Tasks {
				assert.Equal(t, int32(i), task.PlanOrder)
				assert.False(t, task.Completed)
				// Undated tasks inherit the plan date.
				assert.Equal(t, tt.request.Date.AsTime(), task.Date.AsTime())
			}
			assert.Equal(t, int32(3), plan.Tasks[0].Priority, "priority defaults to 3")
			assert.Equal(t, int32(5), plan.Tasks[1].Priority)
		})
	}
}

func TestPlanService_CreatePlan_Unauthenticated(t *testing.T) {
	svc, _ := newTestPlanService(t)

	_, err := svc.CreatePlan(context.Background(), &planv1.CreatePlanRequest{
		Title: "Plan",
		Date:  testDate(),
		Tasks: []*planv1.NewTask{{Title: "Task"}},
	})
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestPlanService_GetPlan(t *testing.T) {
	svc, client := newTestPlanService(t)
	owner := createTestUser(t, client, "owner@example.com")
	stranger := createTestUser(t, client, "stranger@example.com")
	ctx := userContext(owner)

	plan := createTestPlan(t, svc, ctx, "First", "Second")

	t.Run("owner reads own plan", func(t *testing.T) {
		resp, err := svc.GetPlan(ctx, &planv1.GetPlanRequest{Id: plan.Id})
		require.NoError(t, err)
		assert.Equal(t, plan.Id, resp.Plan.Id)
		assert.Equal(t, planv1.SharePermission_SHARE_PERMISSION_UNSPECIFIED, resp.Plan.Permission)
	})

	t.Run("stranger gets not found", func(t *testing.T) {
		_, err := svc.GetPlan(userContext(stranger), &planv1.GetPlanRequest{Id: plan.Id})
		require.Error(t, err)
		// Existence is not revealed to users without a relationship.
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := svc.GetPlan(ctx, &planv1.GetPlanRequest{Id: "not-a-uuid"})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestPlanService_CompleteCurrentTask_OwnerProgression(t *testing.T) {
	svc, client := newTestPlanService(t)
	owner := createTestUser(t, client, "owner@example.com")
	ctx := userContext(owner)

	plan := createTestPlan(t, svc, ctx, "First", "Second", "Third")

	for i := 1; i <= 3; i++ {
		resp, err := svc.CompleteCurrentTask(ctx, &planv1.CompleteCurrentTaskRequest{PlanId: plan.Id})
		require.NoError(t, err, "completion %d", i)

		assert.Equal(t, int32(i), resp.Plan.CurrentTaskIndex)
		assert.Equal(t, i == 3, resp.Plan.Completed)
		for j, task := range resp.Plan.Tasks {
			assert.Equal(t, j < i, task.Completed, "task %d after completion %d", j, i)
		}
	}

	// A finished plan has no current task left to complete.
	_, err := svc.CompleteCurrentTask(ctx, &planv1.CompleteCurrentTaskRequest{PlanId: plan.Id})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestPlanService_CompleteCurrentTask_ReadShareDenied(t *testing.T) {
	svc, client := newTestPlanService(t)
	owner := createTestUser(t, client, "owner@example.com")
	reader := createTestUser(t, client, "reader@example.com")
	ownerCtx := userContext(owner)

	plan := createTestPlan(t, svc, ownerCtx, "Only task")

	_, err := svc.SharePlan(ownerCtx, &planv1.SharePlanRequest{
		PlanId:     plan.Id,
		UserId:     reader.ID.String(),
		Permission: planv1.SharePermission_SHARE_PERMISSION_READ,
	})
	require.NoError(t, err)

	// The reader can see the plan but not progress it.
	readerCtx := userContext(reader)
	got, err := svc.GetPlan(readerCtx, &planv1.GetPlanRequest{Id: plan.Id})
	require.NoError(t, err)
	assert.Equal(t, planv1.SharePermission_SHARE_PERMISSION_READ, got.Plan.Permission)
	assert.True(t, got.Plan.IsShared)

	_, err = svc.CompleteCurrentTask(readerCtx, &planv1.CompleteCurrentTaskRequest{PlanId: plan.Id})
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestPlanService_DeleteTask_RecomputesCursor(t *testing.T) {
	svc, client := newTestPlanService(t)
	owner := createTestUser(t, client, "owner@example.com")
	ctx := userContext(owner)

	plan := createTestPlan(t, svc, ctx, "First", "Second", "Third")

	// Complete the first task so the cursor sits at 1.
	completed, err := svc.CompleteCurrentTask(ctx, &planv1.CompleteCurrentTaskRequest{PlanId: plan.Id})
	require.NoError(t, err)
	require.Equal(t, int32(1), completed.Plan.CurrentTaskIndex)

	// Deleting the completed first task shifts everything down one slot.
	resp, err := svc.DeleteTask(ctx, &planv1.DeleteTaskRequest{
		PlanId: plan.Id,
		TaskId: plan.Tasks[0].Id,
	})
	require.NoError(t, err)

	got := resp.Plan
	require.Len(t, got.Tasks, 2)
	assert.Equal(t, "Second", got.Tasks[0].Title)
	assert.Equal(t, "Third", got.Tasks[1].Title)
	assert.Equal(t, int32(0), got.Tasks[0].PlanOrder)
	assert.Equal(t, int32(1), got.Tasks[1].PlanOrder)
	assert.Equal(t, int32(0), got.CurrentTaskIndex, "cursor follows the deleted predecessor")
	assert.False(t, got.Completed)
}

func TestPlanService_ListPlans(t *testing.T) {
	svc, client := newTestPlanService(t)
	owner := createTestUser(t, client, "owner@example.com")
	other := createTestUser(t, client, "other@example.com")
	ownerCtx := userContext(owner)

	first := createTestPlan(t, svc, ownerCtx, "A task")
	createTestPlan(t, svc, ownerCtx, "Another task")

	_, err := svc.SharePlan(ownerCtx, &planv1.SharePlanRequest{
		PlanId:     first.Id,
		UserId:     other.ID.String(),
		Permission: planv1.SharePermission_SHARE_PERMISSION_WRITE,
	})
	require.NoError(t, err)

	ownerList, err := svc.ListPlans(ownerCtx, &planv1.ListPlansRequest{})
	require.NoError(t, err)
	assert.Len(t, ownerList.Plans, 2)

	otherList, err := svc.ListPlans(userContext(other), &planv1.ListPlansRequest{})
	require.NoError(t, err)
	require.Len(t, otherList.Plans, 1)
	assert.Equal(t, first.Id, otherList.Plans[0].Id)
	assert.Equal(t, planv1.SharePermission_SHARE_PERMISSION_WRITE, otherList.Plans[0].Permission)

	t.Run("date filter", func(t *testing.T) {
		byDate, err := svc.ListPlans(ownerCtx, &planv1.ListPlansRequest{Date: testDate()})
		require.NoError(t, err)
		assert.Len(t, byDate.Plans, 2)

		otherDay := testDate().AsTime().AddDate(0, 0, 7)
		empty, err := svc.ListPlans(ownerCtx, &planv1.ListPlansRequest{
			Date: timestamppb.New(otherDay),
		})
		require.NoError(t, err)
		assert.Empty(t, empty.Plans)
	})
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{name: "not found", err: repository.ErrNotFound, want: codes.NotFound},
		{name: "permission denied", err: repository.ErrPermissionDenied, want: codes.PermissionDenied},
		{name: "invalid operation", err: repository.ErrInvalidOperation, want: codes.InvalidArgument},
		{name: "lost cursor race", err: fmt.Errorf("%w: plan cursor advanced concurrently", repository.ErrConflict), want: codes.Aborted},
		{name: "anything else is internal", err: errors.New("pq: connection reset"), want: codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, status.Code(statusFromError(tt.err)))
		})
	}
}

func TestPlanService_CompleteCurrentTask_ManyPlans(t *testing.T) {
	svc, client := newTestPlanService(t)
	owner := createTestUser(t, client, "owner@example.com")
	ctx := userContext(owner)

	// Progression on one plan never leaks into another.
	plans := make([]*planv1.Plan, 3)
	for i := range plans {
		plans[i] = createTestPlan(t, svc, ctx, fmt.Sprintf("plan %d task a", i), fmt.Sprintf("plan %d task b", i))
	}

	_, err := svc.CompleteCurrentTask(ctx, &planv1.CompleteCurrentTaskRequest{PlanId: plans[1].Id})
	require.NoError(t, err)

	for i, p := range plans {
		resp, err := svc.GetPlan(ctx, &planv1.GetPlanRequest{Id: p.Id})
		require.NoError(t, err)
		want := int32(0)
		if i == 1 {
			want = 1
		}
		assert.Equal(t, want, resp.Plan.CurrentTaskIndex, "plan %d", i)
	}
}
