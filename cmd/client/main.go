// cmd/client/main.go - smoke test client for the plan progression flow
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	authv1 "github.com/planmaster/planmaster/api/proto/auth/v1/generated"
	planv1 "github.com/planmaster/planmaster/api/proto/plan/v1/generated"
)

func main() {
	fmt.Println("🚀 PlanMaster Smoke Test Client")

	conn, err := grpc.NewClient("localhost:50051", grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()

	authClient := authv1.NewAuthServiceClient(conn)
	planClient := planv1.NewPlanServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Two users: an owner and a collaborator.
	ownerToken, ownerID := registerOrLogin(ctx, authClient, "owner@example.com", "SecurePass123!", "Owner")
	otherToken, otherID := registerOrLogin(ctx, authClient, "collaborator@example.com", "SecurePass123!", "Collaborator")
	_ = ownerID

	ownerCtx := withToken(ctx, ownerToken)
	otherCtx := withToken(ctx, otherToken)

	// Create a plan with three ordered tasks.
	fmt.Println("\n📝 Creating plan...")
	today := timestamppb.New(time.Now().Truncate(24 * time.Hour))
	created, err := planClient.CreatePlan(ownerCtx, &planv1.CreatePlanRequest{
		Title: "Morning routine",
		Date:  today,
		Tasks: []*planv1.NewTask{
			{Title: "Stretch", Priority: 2},
			{Title: "Review inbox", Priority: 4},
			{Title: "Plan the day", Priority: 3},
		},
	})
	if err != nil {
		log.Fatalf("CreatePlan failed: %v", err)
	}
	plan := created.Plan
	fmt.Printf("  ✅ plan %s with %d tasks, cursor at %d\n", plan.Id, len(plan.Tasks), plan.CurrentTaskIndex)

	// Owner completes the first task.
	fmt.Println("\n▶️  Completing current task as owner...")
	completed, err := planClient.CompleteCurrentTask(ownerCtx, &planv1.CompleteCurrentTaskRequest{PlanId: plan.Id})
	if err != nil {
		log.Fatalf("CompleteCurrentTask failed: %v", err)
	}
	fmt.Printf("  ✅ cursor now at %d, completed=%v\n", completed.Plan.CurrentTaskIndex, completed.Plan.Completed)

	// Share with the collaborator in individual mode.
	fmt.Println("\n🤝 Sharing plan (individual mode)...")
	if _, err := planClient.SharePlan(ownerCtx, &planv1.SharePlanRequest{
		PlanId:     plan.Id,
		UserId:     otherID,
		Permission: planv1.SharePermission_SHARE_PERMISSION_INDIVIDUAL,
	}); err != nil {
		log.Fatalf("SharePlan failed: %v", err)
	}
	fmt.Println("  ✅ shared")

	// Collaborator progresses independently from the first task.
	fmt.Println("\n▶️  Completing current task as collaborator...")
	theirView, err := planClient.CompleteCurrentTask(otherCtx, &planv1.CompleteCurrentTaskRequest{PlanId: plan.Id})
	if err != nil {
		log.Fatalf("Collaborator CompleteCurrentTask failed: %v", err)
	}
	fmt.Printf("  ✅ collaborator cursor at %d (owner untouched)\n", theirView.Plan.CurrentTaskIndex)

	// Listing shows the plan for both sides.
	for name, c := range map[string]context.Context{"owner": ownerCtx, "collaborator": otherCtx} {
		resp, err := planClient.ListPlans(c, &planv1.ListPlansRequest{})
		if err != nil {
			log.Fatalf("ListPlans (%s) failed: %v", name, err)
		}
		fmt.Printf("\n📋 %s sees %d plan(s)\n", name, len(resp.Plans))
	}

	// Suggested time blocks for the owner's open tasks today.
	fmt.Println("\n⏰ Suggesting time blocks...")
	blocks, err := planClient.SuggestTimeBlocks(ownerCtx, &planv1.SuggestTimeBlocksRequest{
		Date:         today,
		BlockMinutes: 45,
	})
	if err != nil {
		log.Fatalf("SuggestTimeBlocks failed: %v", err)
	}
	for _, b := range blocks.Blocks {
		fmt.Printf("  %s  %s - %s\n", b.Title, b.Start.AsTime().Format("15:04"), b.Finish.AsTime().Format("15:04"))
	}

	fmt.Println("\n✅ Smoke test complete")
}

func registerOrLogin(ctx context.Context, client authv1.AuthServiceClient, email, password, name string) (token, userID string) {
	resp, err := client.Register(ctx, &authv1.RegisterRequest{
		Email:       email,
		Password:    password,
		DisplayName: name,
	})
	if err != nil && status.Code(err) != codes.AlreadyExists {
		log.Fatalf("Register %s failed: %v", email, err)
	}
	if err == nil {
		fmt.Printf("  ✅ registered %s\n", resp.User.Email)
	}

	login, err := client.Login(ctx, &authv1.LoginRequest{Email: email, Password: password})
	if err != nil {
		log.Fatalf("Login %s failed: %v", email, err)
	}
	return login.AccessToken, login.User.Id
}

func withToken(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}
