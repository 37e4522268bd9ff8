// internal/service/test_helpers.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"

	planv1 "github.com/planmaster/planmaster/api/proto/plan/v1/generated"
	ent "github.com/planmaster/planmaster/ent/generated"
	"github.com/planmaster/planmaster/ent/generated/enttest"
	"github.com/planmaster/planmaster/internal/middleware"
	"github.com/planmaster/planmaster/internal/repository"
	"github.com/planmaster/planmaster/pkg/auth"

	_ "github.com/mattn/go-sqlite3"
)

// Test helpers
func setupTestDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	return client
}

func newTestPlanService(t *testing.T) (*PlanService, *ent.Client) {
	client := setupTestDB(t)
	t.Cleanup(func() { client.Close() })
	return NewPlanService(repository.NewPlanRepository(client), nil), client
}

func createTestUser(t *testing.T, client *ent.Client, email string) *ent.User {
	passwordManager := auth.NewPasswordManager()
	hashedPassword, err := passwordManager.HashPassword("TestPass123!")
	require.NoError(t, err)

	u, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash(hashedPassword).
		SetDisplayName("Test User").
		Save(context.Background())
	require.NoError(t, err)

	return u
}

// userContext builds the context the auth interceptor would have
// produced for the user.
func userContext(u *ent.User) context.Context {
	return middleware.WithUser(context.Background(), u.ID.String(), u.Email)
}

func testDate() *timestamppb.Timestamp {
	return timestamppb.New(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
}

// createTestPlan creates a plan with one task per title, through the
// service so the returned proto matches what clients see.
func createTestPlan(t *testing.T, svc *PlanService, ctx context.Context, titles ...string) *planv1.Plan {
	tasks := make([]*planv1.NewTask, len(titles))
	for i, title := range titles {
		tasks[i] = &planv1.NewTask{Title: title}
	}

	resp, err := svc.CreatePlan(ctx, &planv1.CreatePlanRequest{
		Title: "Test Plan",
		Date:  testDate(),
		Tasks: tasks,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Plan)

	return resp.Plan
}
