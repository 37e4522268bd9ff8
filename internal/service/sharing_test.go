// internal/service/sharing_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	planv1 "github.com/planmaster/planmaster/api/proto/plan/v1/generated"
)

func TestPlanService_SharePlan(t *testing.T) {
	svc, client := newTestPlanService(t)
	owner := createTestUser(t, client, "owner@example.com")
	other := createTestUser(t, client, "other@example.com")
	ownerCtx := userContext(owner)

	plan := createTestPlan(t, svc, ownerCtx, "Only task")

	t.Run("share succeeds", func(t *testing.T) {
		resp, err := svc.SharePlan(ownerCtx, &planv1.SharePlanRequest{
			PlanId:     plan.Id,
			UserId:     other.ID.String(),
			Permission: planv1.SharePermission_SHARE_PERMISSION_READ,
		})
		require.NoError(t, err)
		assert.Equal(t, other.ID.String(), resp.Share.UserId)
		assert.Equal(t, planv1.SharePermission_SHARE_PERMISSION_READ, resp.Share.Permission)
	})

	t.Run("re-share replaces the permission", func(t *testing.T) {
		_, err := svc.SharePlan(ownerCtx, &planv1.SharePlanRequest{
			PlanId:     plan.Id,
			UserId:     other.ID.String(),
			Permission: planv1.SharePermission_SHARE_PERMISSION_WRITE,
		})
		require.NoError(t, err)

		users, err := svc.GetSharedUsers(ownerCtx, &planv1.GetSharedUsersRequest{PlanId: plan.Id})
		require.NoError(t, err)
		require.Len(t, users.Users, 1, "upsert must not duplicate the share")
		assert.Equal(t, planv1.SharePermission_SHARE_PERMISSION_WRITE, users.Users[0].Permission)
		assert.Equal(t, other.Email, users.Users[0].Email)
	})

	t.Run("self-share rejected", func(t *testing.T) {
		_, err := svc.SharePlan(ownerCtx, &planv1.SharePlanRequest{
			PlanId:     plan.Id,
			UserId:     owner.ID.String(),
			Permission: planv1.SharePermission_SHARE_PERMISSION_READ,
		})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("unknown target user", func(t *testing.T) {
		_, err := svc.SharePlan(ownerCtx, &planv1.SharePlanRequest{
			PlanId:     plan.Id,
			UserId:     "2b8e6a3e-0000-4000-8000-000000000000",
			Permission: planv1.SharePermission_SHARE_PERMISSION_READ,
		})
		require.Error(t, err)
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("non-owner may not share", func(t *testing.T) {
		third := createTestUser(t, client, "third@example.com")
		_, err := svc.SharePlan(userContext(other), &planv1.SharePlanRequest{
			PlanId:     plan.Id,
			UserId:     third.ID.String(),
			Permission: planv1.SharePermission_SHARE_PERMISSION_READ,
		})
		require.Error(t, err)
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})
}

func TestPlanService_UnsharePlan(t *testing.T) {
	svc, client := newTestPlanService(t)
	owner := createTestUser(t, client, "owner@example.com")
	other := createTestUser(t, client, "other@example.com")
	ownerCtx := userContext(owner)

	plan := createTestPlan(t, svc, ownerCtx, "Only task")

	_, err := svc.SharePlan(ownerCtx, &planv1.SharePlanRequest{
		PlanId:     plan.Id,
		UserId:     other.ID.String(),
		Permission: planv1.SharePermission_SHARE_PERMISSION_READ,
	})
	require.NoError(t, err)

	resp, err := svc.UnsharePlan(ownerCtx, &planv1.UnsharePlanRequest{
		PlanId: plan.Id,
		UserId: other.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1), resp.Deleted)

	// Revoking again is a no-op, not an error.
	resp, err = svc.UnsharePlan(ownerCtx, &planv1.UnsharePlanRequest{
		PlanId: plan.Id,
		UserId: other.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, int32(0), resp.Deleted)

	// Access is gone with the share.
	_, err = svc.GetPlan(userContext(other), &planv1.GetPlanRequest{Id: plan.Id})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestPlanService_IndividualProgressIsolation(t *testing.T) {
	svc, client := newTestPlanService(t)
	owner := createTestUser(t, client, "owner@example.com")
	alice := createTestUser(t, client, "alice@example.com")
	bob := createTestUser(t, client, "bob@example.com")
	ownerCtx := userContext(owner)

	plan := createTestPlan(t, svc, ownerCtx, "First", "Second")

	for _, u := range []string{alice.ID.String(), bob.ID.String()} {
		_, err := svc.SharePlan(ownerCtx, &planv1.SharePlanRequest{
			PlanId:     plan.Id,
			UserId:     u,
			Permission: planv1.SharePermission_SHARE_PERMISSION_INDIVIDUAL,
		})
		require.NoError(t, err)
	}

	aliceCtx := userContext(alice)
	bobCtx := userContext(bob)

	// Alice completes her first task.
	aliceView, err := svc.CompleteCurrentTask(aliceCtx, &planv1.CompleteCurrentTaskRequest{PlanId: plan.Id})
	require.NoError(t, err)
	assert.Equal(t, int32(1), aliceView.Plan.CurrentTaskIndex)
	assert.True(t, aliceView.Plan.Tasks[0].Completed)
	assert.False(t, aliceView.Plan.Completed)

	// Bob and the owner are untouched.
	bobView, err := svc.GetPlan(bobCtx, &planv1.GetPlanRequest{Id: plan.Id})
	require.NoError(t, err)
	assert.Equal(t, int32(0), bobView.Plan.CurrentTaskIndex)
	assert.False(t, bobView.Plan.Tasks[0].Completed)

	ownerView, err := svc.GetPlan(ownerCtx, &planv1.GetPlanRequest{Id: plan.Id})
	require.NoError(t, err)
	assert.Equal(t, int32(0), ownerView.Plan.CurrentTaskIndex)
	assert.False(t, ownerView.Plan.Tasks[0].Completed)

	// Alice finishes the plan for herself only.
	aliceView, err = svc.CompleteCurrentTask(aliceCtx, &planv1.CompleteCurrentTaskRequest{PlanId: plan.Id})
	require.NoError(t, err)
	assert.True(t, aliceView.Plan.Completed)
	assert.Equal(t, int32(2), aliceView.Plan.CurrentTaskIndex)

	_, err = svc.CompleteCurrentTask(aliceCtx, &planv1.CompleteCurrentTaskRequest{PlanId: plan.Id})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	ownerView, err = svc.GetPlan(ownerCtx, &planv1.GetPlanRequest{Id: plan.Id})
	require.NoError(t, err)
	assert.False(t, ownerView.Plan.Completed, "individual progress never reaches the shared plan")

	// The owner advancing the shared cursor does not touch Bob either.
	_, err = svc.CompleteCurrentTask(ownerCtx, &planv1.CompleteCurrentTaskRequest{PlanId: plan.Id})
	require.NoError(t, err)

	bobView, err = svc.GetPlan(bobCtx, &planv1.GetPlanRequest{Id: plan.Id})
	require.NoError(t, err)
	assert.Equal(t, int32(0), bobView.Plan.CurrentTaskIndex)
	assert.False(t, bobView.Plan.Tasks[0].Completed)
}

func TestPlanService_GetSharedUsers_OwnerOnly(t *testing.T) {
	svc, client := newTestPlanService(t)
	owner := createTestUser(t, client, "owner@example.com")
	other := createTestUser(t, client, "other@example.com")
	ownerCtx := userContext(owner)

	plan := createTestPlan(t, svc, ownerCtx, "Only task")

	_, err := svc.SharePlan(ownerCtx, &planv1.SharePlanRequest{
		PlanId:     plan.Id,
		UserId:     other.ID.String(),
		Permission: planv1.SharePermission_SHARE_PERMISSION_WRITE,
	})
	require.NoError(t, err)

	_, err = svc.GetSharedUsers(userContext(other), &planv1.GetSharedUsersRequest{PlanId: plan.Id})
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}
