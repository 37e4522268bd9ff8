// internal/middleware/validation.go
package middleware

import (
	"context"
	"fmt"
	"net/mail"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	authv1 "github.com/planmaster/planmaster/api/proto/auth/v1/generated"
	planv1 "github.com/planmaster/planmaster/api/proto/plan/v1/generated"
	"github.com/planmaster/planmaster/internal/config"
)

// ValidationInterceptor rejects malformed requests before they reach a
// handler, so services only ever see shape-valid input.
type ValidationInterceptor struct {
	cfg config.ValidationConfig
}

// NewValidationInterceptor creates a new validation interceptor
func NewValidationInterceptor(cfg config.ValidationConfig) *ValidationInterceptor {
	return &ValidationInterceptor{
		cfg: cfg,
	}
}

// Unary returns a unary server interceptor for request validation
func (v *ValidationInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if err := v.validateRequest(req); err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

func (v *ValidationInterceptor) validateRequest(req interface{}) error {
	switch r := req.(type) {
	case *authv1.RegisterRequest:
		return v.validateRegister(r)
	case *authv1.LoginRequest:
		return v.validateLogin(r)
	case *planv1.CreatePlanRequest:
		return v.validateCreatePlan(r)
	case *planv1.AddTaskRequest:
		if r.Task == nil {
			return invalid("task is required")
		}
		return v.validateNewTask(r.Task)
	case *planv1.UpdateTaskRequest:
		return v.validateUpdateTask(r)
	case *planv1.SharePlanRequest:
		if r.Permission == planv1.SharePermission_SHARE_PERMISSION_UNSPECIFIED {
			return invalid("permission is required")
		}
		return nil
	case *planv1.SuggestTimeBlocksRequest:
		return v.validateSuggest(r)
	default:
		return nil
	}
}

func (v *ValidationInterceptor) validateRegister(r *authv1.RegisterRequest) error {
	if r.Email == "" || len(r.Email) > v.cfg.MaxEmailLength {
		return invalid("email must be 1-%d characters", v.cfg.MaxEmailLength)
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return invalid("invalid email address")
	}
	if len(r.Password) < v.cfg.MinPasswordLength {
		return invalid("password must be at least %d characters", v.cfg.MinPasswordLength)
	}
	if r.DisplayName == "" || len(r.DisplayName) > v.cfg.MaxNameLength {
		return invalid("display name must be 1-%d characters", v.cfg.MaxNameLength)
	}
	return nil
}

func (v *ValidationInterceptor) validateLogin(r *authv1.LoginRequest) error {
	if r.Email == "" || r.Password == "" {
		return invalid("email and password are required")
	}
	return nil
}

func (v *ValidationInterceptor) validateCreatePlan(r *planv1.CreatePlanRequest) error {
	if r.Title == "" || len(r.Title) > v.cfg.MaxTitleLength {
		return invalid("title must be 1-%d characters", v.cfg.MaxTitleLength)
	}
	if len(r.Description) > v.cfg.MaxDescriptionLength {
		return invalid("description must be at most %d characters", v.cfg.MaxDescriptionLength)
	}
	if r.Date == nil {
		return invalid("date is required")
	}
	if len(r.Tasks) == 0 {
		return invalid("a plan needs at least one task")
	}
	for i, t := range r.Tasks {
		if err := v.validateNewTask(t); err != nil {
			return invalid("task %d: %s", i, status.Convert(err).Message())
		}
	}
	return nil
}

func (v *ValidationInterceptor) validateNewTask(t *planv1.NewTask) error {
	if t.Title == "" || len(t.Title) > v.cfg.MaxTitleLength {
		return invalid("title must be 1-%d characters", v.cfg.MaxTitleLength)
	}
	if len(t.Description) > v.cfg.MaxDescriptionLength {
		return invalid("description must be at most %d characters", v.cfg.MaxDescriptionLength)
	}
	if t.Priority != 0 && (t.Priority < 1 || t.Priority > 5) {
		return invalid("priority must be between 1 and 5")
	}
	return nil
}

func (v *ValidationInterceptor) validateUpdateTask(r *planv1.UpdateTaskRequest) error {
	if r.Title != nil && (*r.Title == "" || len(*r.Title) > v.cfg.MaxTitleLength) {
		return invalid("title must be 1-%d characters", v.cfg.MaxTitleLength)
	}
	if r.Description != nil && len(*r.Description) > v.cfg.MaxDescriptionLength {
		return invalid("description must be at most %d characters", v.cfg.MaxDescriptionLength)
	}
	if r.Priority != nil && (*r.Priority < 1 || *r.Priority > 5) {
		return invalid("priority must be between 1 and 5")
	}
	return nil
}

func (v *ValidationInterceptor) validateSuggest(r *planv1.SuggestTimeBlocksRequest) error {
	if r.Date == nil {
		return invalid("date is required")
	}
	if r.BlockMinutes < 0 {
		return invalid("block minutes must not be negative")
	}
	if r.DayStart != nil && r.DayEnd != nil && !r.DayStart.AsTime().Before(r.DayEnd.AsTime()) {
		return invalid("day start must be before day end")
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return status.Error(codes.InvalidArgument, fmt.Sprintf(format, args...))
}
