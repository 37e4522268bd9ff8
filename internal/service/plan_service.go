// internal/service/plan_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	planv1 "github.com/planmaster/planmaster/api/proto/plan/v1/generated"
	"github.com/planmaster/planmaster/internal/middleware"
	"github.com/planmaster/planmaster/internal/models"
	"github.com/planmaster/planmaster/internal/repository"
	"github.com/planmaster/planmaster/pkg/schedule"
)

const defaultBlockMinutes = 30

type PlanService struct {
	planv1.UnimplementedPlanServiceServer
	repo  *repository.PlanRepository
	stats *repository.StatsRepository
}

func NewPlanService(repo *repository.PlanRepository, stats *repository.StatsRepository) *PlanService {
	return &PlanService{
		repo:  repo,
		stats: stats,
	}
}

// CreatePlan creates a plan with its ordered tasks for the caller.
func (s *PlanService) CreatePlan(ctx context.Context, req *planv1.CreatePlanRequest) (*planv1.CreatePlanResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if req.Title == "" {
		return nil, status.Error(codes.InvalidArgument, "title is required")
	}
	if req.Date == nil {
		return nil, status.Error(codes.InvalidArgument, "date is required")
	}

	input := &repository.PlanInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date.AsTime(),
		Tasks:       make([]repository.TaskInput, len(req.Tasks)),
	}
	for i, t := range req.Tasks {
		input.Tasks[i] = convertNewTask(t)
	}

	view, err := s.repo.CreatePlan(ctx, userID, input)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &planv1.CreatePlanResponse{
		Plan: convertPlanToProto(view),
	}, nil
}

// GetPlan materializes one plan for the caller.
func (s *PlanService) GetPlan(ctx context.Context, req *planv1.GetPlanRequest) (*planv1.GetPlanResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	planID, err := parseID(req.Id, "plan ID")
	if err != nil {
		return nil, err
	}

	view, err := s.repo.GetPlan(ctx, planID, userID)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &planv1.GetPlanResponse{
		Plan: convertPlanToProto(view),
	}, nil
}

// ListPlans returns every plan the caller owns or has been shared,
// optionally restricted to one day.
func (s *PlanService) ListPlans(ctx context.Context, req *planv1.ListPlansRequest) (*planv1.ListPlansResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	var views []*models.PlanView
	if req.Date != nil {
		views, err = s.repo.ListPlansByDate(ctx, userID, req.Date.AsTime())
	} else {
		views, err = s.repo.ListPlans(ctx, userID)
	}
	if err != nil {
		return nil, statusFromError(err)
	}

	plans := make([]*planv1.Plan, len(views))
	for i, v := range views {
		plans[i] = convertPlanToProto(v)
	}
	return &planv1.ListPlansResponse{
		Plans: plans,
	}, nil
}

// CompleteCurrentTask advances the caller-relevant cursor by one task.
func (s *PlanService) CompleteCurrentTask(ctx context.Context, req *planv1.CompleteCurrentTaskRequest) (*planv1.CompleteCurrentTaskResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	planID, err := parseID(req.PlanId, "plan ID")
	if err != nil {
		return nil, err
	}

	view, err := s.repo.CompleteCurrentTask(ctx, planID, userID)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &planv1.CompleteCurrentTaskResponse{
		Plan: convertPlanToProto(view),
	}, nil
}

// AddTask appends a task to a plan.
func (s *PlanService) AddTask(ctx context.Context, req *planv1.AddTaskRequest) (*planv1.AddTaskResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	planID, err := parseID(req.PlanId, "plan ID")
	if err != nil {
		return nil, err
	}
	if req.Task == nil || req.Task.Title == "" {
		return nil, status.Error(codes.InvalidArgument, "task title is required")
	}

	input := convertNewTask(req.Task)
	view, err := s.repo.AddTask(ctx, planID, userID, &input)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &planv1.AddTaskResponse{
		Plan: convertPlanToProto(view),
	}, nil
}

// UpdateTask applies an allow-listed update to a plan task.
func (s *PlanService) UpdateTask(ctx context.Context, req *planv1.UpdateTaskRequest) (*planv1.UpdateTaskResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	planID, err := parseID(req.PlanId, "plan ID")
	if err != nil {
		return nil, err
	}
	taskID, err := parseID(req.TaskId, "task ID")
	if err != nil {
		return nil, err
	}

	input := &repository.TaskUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}
	if req.Priority != nil {
		priority := int(*req.Priority)
		input.Priority = &priority
	}
	if req.Date != nil {
		date := req.Date.AsTime()
		input.Date = &date
	}

	view, err := s.repo.UpdateTask(ctx, planID, taskID, userID, input)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &planv1.UpdateTaskResponse{
		Plan: convertPlanToProto(view),
	}, nil
}

// DeleteTask removes a task from a plan and re-indexes the rest.
func (s *PlanService) DeleteTask(ctx context.Context, req *planv1.DeleteTaskRequest) (*planv1.DeleteTaskResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	planID, err := parseID(req.PlanId, "plan ID")
	if err != nil {
		return nil, err
	}
	taskID, err := parseID(req.TaskId, "task ID")
	if err != nil {
		return nil, err
	}

	view, err := s.repo.DeleteTask(ctx, planID, taskID, userID)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &planv1.DeleteTaskResponse{
		Plan: convertPlanToProto(view),
	}, nil
}

// SharePlan grants or replaces a share of the caller's plan.
func (s *PlanService) SharePlan(ctx context.Context, req *planv1.SharePlanRequest) (*planv1.SharePlanResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	planID, err := parseID(req.PlanId, "plan ID")
	if err != nil {
		return nil, err
	}
	targetID, err := parseID(req.UserId, "user ID")
	if err != nil {
		return nil, err
	}

	share, err := s.repo.SharePlan(ctx, planID, userID, targetID, convertProtoPermission(req.Permission))
	if err != nil {
		return nil, statusFromError(err)
	}

	return &planv1.SharePlanResponse{
		Share: &planv1.ShareRecord{
			PlanId:     share.PlanID.String(),
			OwnerId:    share.OwnerID.String(),
			UserId:     share.UserID.String(),
			Permission: convertPermissionToProto(share.Permission),
			SharedAt:   timestamppb.New(share.SharedAt),
		},
	}, nil
}

// UnsharePlan revokes a share; revoking an absent share succeeds with a
// zero count.
func (s *PlanService) UnsharePlan(ctx context.Context, req *planv1.UnsharePlanRequest) (*planv1.UnsharePlanResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	planID, err := parseID(req.PlanId, "plan ID")
	if err != nil {
		return nil, err
	}
	targetID, err := parseID(req.UserId, "user ID")
	if err != nil {
		return nil, err
	}

	deleted, err := s.repo.UnsharePlan(ctx, planID, userID, targetID)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &planv1.UnsharePlanResponse{
		Deleted: int32(deleted),
	}, nil
}

// GetSharedUsers lists the users the caller's plan is shared with.
func (s *PlanService) GetSharedUsers(ctx context.Context, req *planv1.GetSharedUsersRequest) (*planv1.GetSharedUsersResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	planID, err := parseID(req.PlanId, "plan ID")
	if err != nil {
		return nil, err
	}

	shares, err := s.repo.SharedUsers(ctx, planID, userID)
	if err != nil {
		return nil, statusFromError(err)
	}

	users := make([]*planv1.SharedUser, len(shares))
	for i, sh := range shares {
		users[i] = &planv1.SharedUser{
			UserId:      sh.UserID.String(),
			Email:       sh.Email,
			DisplayName: sh.DisplayName,
			Permission:  convertPermissionToProto(sh.Permission),
			SharedAt:    timestamppb.New(sh.SharedAt),
		}
	}
	return &planv1.GetSharedUsersResponse{
		Users: users,
	}, nil
}

// GetCompletionStats reports the caller's per-day completed plan counts.
func (s *PlanService) GetCompletionStats(ctx context.Context, req *planv1.GetCompletionStatsRequest) (*planv1.GetCompletionStatsResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if s.stats == nil {
		return nil, status.Error(codes.Unavailable, "stats are not available")
	}
	if req.From == nil || req.To == nil {
		return nil, status.Error(codes.InvalidArgument, "from and to are required")
	}

	rows, err := s.stats.CompletionsByDay(ctx, userID, req.From.AsTime(), req.To.AsTime())
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to load stats")
	}

	days := make([]*planv1.DailyStat, len(rows))
	for i, row := range rows {
		days[i] = &planv1.DailyStat{
			Day:            timestamppb.New(row.Day),
			PlansCompleted: int32(row.PlansCompleted),
		}
	}
	return &planv1.GetCompletionStatsResponse{
		Days: days,
	}, nil
}

// SuggestTimeBlocks proposes start/finish times for the caller's open
// tasks on a day by greedy interval packing.
func (s *PlanService) SuggestTimeBlocks(ctx context.Context, req *planv1.SuggestTimeBlocksRequest) (*planv1.SuggestTimeBlocksResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if req.Date == nil {
		return nil, status.Error(codes.InvalidArgument, "date is required")
	}

	day := req.Date.AsTime().Truncate(24 * time.Hour)
	window := schedule.Interval{
		Start: day.Add(9 * time.Hour),
		End:   day.Add(17 * time.Hour),
	}
	if req.DayStart != nil {
		window.Start = req.DayStart.AsTime()
	}
	if req.DayEnd != nil {
		window.End = req.DayEnd.AsTime()
	}

	blockMinutes := int(req.BlockMinutes)
	if blockMinutes <= 0 {
		blockMinutes = defaultBlockMinutes
	}

	busy := make([]schedule.Interval, 0, len(req.Busy))
	for _, b := range req.Busy {
		if b.Start == nil || b.Finish == nil {
			continue
		}
		busy = append(busy, schedule.Interval{Start: b.Start.AsTime(), End: b.Finish.AsTime()})
	}

	tasks, err := s.repo.OpenTasksByDate(ctx, userID, day)
	if err != nil {
		return nil, statusFromError(err)
	}

	candidates := make([]schedule.Candidate, len(tasks))
	for i, t := range tasks {
		candidates[i] = schedule.Candidate{
			ID:       t.ID,
			Title:    t.Title,
			Priority: t.Priority,
			Order:    t.Order,
		}
	}

	packed := schedule.Pack(window, time.Duration(blockMinutes)*time.Minute, busy, candidates)

	blocks := make([]*planv1.TimeBlock, len(packed))
	for i, b := range packed {
		blocks[i] = &planv1.TimeBlock{
			TaskId: b.TaskID.String(),
			Title:  b.Title,
			Start:  timestamppb.New(b.Start),
			Finish: timestamppb.New(b.End),
		}
	}
	return &planv1.SuggestTimeBlocksResponse{
		Blocks: blocks,
	}, nil
}

// Helper functions

func callerID(ctx context.Context) (uuid.UUID, error) {
	raw, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, status.Error(codes.Unauthenticated, "user not authenticated")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.Unauthenticated, "invalid user identity")
	}
	return id, nil
}

func parseID(raw, field string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s format", field)
	}
	return id, nil
}

// statusFromError maps repository errors to gRPC status codes. Storage
// detail never reaches the wire.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return status.Error(codes.NotFound, "plan not found")
	case errors.Is(err, repository.ErrPermissionDenied):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, repository.ErrInvalidOperation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, repository.ErrConflict):
		return status.Error(codes.Aborted, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func convertNewTask(t *planv1.NewTask) repository.TaskInput {
	input := repository.TaskInput{
		Title:       t.Title,
		Description: t.Description,
		Priority:    int(t.Priority),
	}
	if t.Date != nil {
		date := t.Date.AsTime()
		input.Date = &date
	}
	return input
}

func convertPlanToProto(p *models.PlanView) *planv1.Plan {
	tasks := make([]*planv1.Task, len(p.Tasks))
	for i, t := range p.Tasks {
		tasks[i] = &planv1.Task{
			Id:          t.ID.String(),
			Title:       t.Title,
			Description: t.Description,
			Date:        timestamppb.New(t.Date),
			PlanOrder:   int32(t.Order),
			Priority:    int32(t.Priority),
			Completed:   t.Completed,
			CreatedAt:   timestamppb.New(t.CreatedAt),
			UpdatedAt:   timestamppb.New(t.UpdatedAt),
		}
	}

	return &planv1.Plan{
		Id:               p.ID.String(),
		OwnerId:          p.OwnerID.String(),
		Title:            p.Title,
		Description:      p.Description,
		Date:             timestamppb.New(p.Date),
		CurrentTaskIndex: int32(p.Progress.Index),
		Completed:        p.Completed,
		IsShared:         p.IsShared,
		Permission:       convertPermissionToProto(p.Permission),
		Tasks:            tasks,
		CreatedAt:        timestamppb.New(p.CreatedAt),
		UpdatedAt:        timestamppb.New(p.UpdatedAt),
	}
}

func convertPermissionToProto(p models.Permission) planv1.SharePermission {
	switch p {
	case models.PermissionRead:
		return planv1.SharePermission_SHARE_PERMISSION_READ
	case models.PermissionWrite:
		return planv1.SharePermission_SHARE_PERMISSION_WRITE
	case models.PermissionIndividual:
		return planv1.SharePermission_SHARE_PERMISSION_INDIVIDUAL
	default:
		return planv1.SharePermission_SHARE_PERMISSION_UNSPECIFIED
	}
}

func convertProtoPermission(p planv1.SharePermission) models.Permission {
	switch p {
	case planv1.SharePermission_SHARE_PERMISSION_READ:
		return models.PermissionRead
	case planv1.SharePermission_SHARE_PERMISSION_WRITE:
		return models.PermissionWrite
	case planv1.SharePermission_SHARE_PERMISSION_INDIVIDUAL:
		return models.PermissionIndividual
	default:
		return models.Permission("")
	}
}
