// api/proto/plan/v1/plan.proto
//
// Generated Go code lives under api/proto/plan/v1/generated:
//   protoc --go_out=. --go-grpc_out=. api/proto/plan/v1/plan.proto

// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: api/proto/plan/v1/plan.proto

package planv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	PlanService_CreatePlan_FullMethodName          = "/plan.v1.PlanService/CreatePlan"
	PlanService_GetPlan_FullMethodName             = "/plan.v1.PlanService/GetPlan"
	PlanService_ListPlans_FullMethodName           = "/plan.v1.PlanService/ListPlans"
	PlanService_CompleteCurrentTask_FullMethodName = "/plan.v1.PlanService/CompleteCurrentTask"
	PlanService_AddTask_FullMethodName             = "/plan.v1.PlanService/AddTask"
	PlanService_UpdateTask_FullMethodName          = "/plan.v1.PlanService/UpdateTask"
	PlanService_DeleteTask_FullMethodName          = "/plan.v1.PlanService/DeleteTask"
	PlanService_SharePlan_FullMethodName           = "/plan.v1.PlanService/SharePlan"
	PlanService_UnsharePlan_FullMethodName         = "/plan.v1.PlanService/UnsharePlan"
	PlanService_GetSharedUsers_FullMethodName      = "/plan.v1.PlanService/GetSharedUsers"
	PlanService_GetCompletionStats_FullMethodName  = "/plan.v1.PlanService/GetCompletionStats"
	PlanService_SuggestTimeBlocks_FullMethodName   = "/plan.v1.PlanService/SuggestTimeBlocks"
)

// PlanServiceClient is the client API for PlanService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// PlanService is the plan progression and collaborative completion API.
// The caller's identity always comes from the authenticated context,
// never from request bodies.
type PlanServiceClient interface {
	CreatePlan(ctx context.Context, in *CreatePlanRequest, opts ...grpc.CallOption) (*CreatePlanResponse, error)
	GetPlan(ctx context.Context, in *GetPlanRequest, opts ...grpc.CallOption) (*GetPlanResponse, error)
	ListPlans(ctx context.Context, in *ListPlansRequest, opts ...grpc.CallOption) (*ListPlansResponse, error)
	// CompleteCurrentTask advances the caller-relevant cursor by one.
	CompleteCurrentTask(ctx context.Context, in *CompleteCurrentTaskRequest, opts ...grpc.CallOption) (*CompleteCurrentTaskResponse, error)
	AddTask(ctx context.Context, in *AddTaskRequest, opts ...grpc.CallOption) (*AddTaskResponse, error)
	UpdateTask(ctx context.Context, in *UpdateTaskRequest, opts ...grpc.CallOption) (*UpdateTaskResponse, error)
	DeleteTask(ctx context.Context, in *DeleteTaskRequest, opts ...grpc.CallOption) (*DeleteTaskResponse, error)
	SharePlan(ctx context.Context, in *SharePlanRequest, opts ...grpc.CallOption) (*SharePlanResponse, error)
	UnsharePlan(ctx context.Context, in *UnsharePlanRequest, opts ...grpc.CallOption) (*UnsharePlanResponse, error)
	GetSharedUsers(ctx context.Context, in *GetSharedUsersRequest, opts ...grpc.CallOption) (*GetSharedUsersResponse, error)
	GetCompletionStats(ctx context.Context, in *GetCompletionStatsRequest, opts ...grpc.CallOption) (*GetCompletionStatsResponse, error)
	SuggestTimeBlocks(ctx context.Context, in *SuggestTimeBlocksRequest, opts ...grpc.CallOption) (*SuggestTimeBlocksResponse, error)
}

type planServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPlanServiceClient(cc grpc.ClientConnInterface) PlanServiceClient {
	return &planServiceClient{cc}
}

func (c *planServiceClient) CreatePlan(ctx context.Context, in *CreatePlanRequest, opts ...grpc.CallOption) (*CreatePlanResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreatePlanResponse)
	err := c.cc.Invoke(ctx, PlanService_CreatePlan_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *planServiceClient) GetPlan(ctx context.Context, in *GetPlanRequest, opts ...grpc.CallOption) (*GetPlanResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetPlanResponse)
	err := c.cc.Invoke(ctx, PlanService_GetPlan_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *planServiceClient) ListPlans(ctx context.Context, in *ListPlansRequest, opts ...grpc.CallOption) (*ListPlansResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListPlansResponse)
	err := c.cc.Invoke(ctx, PlanService_ListPlans_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *planServiceClient) CompleteCurrentTask(ctx context.Context, in *CompleteCurrentTaskRequest, opts ...grpc.CallOption) (*CompleteCurrentTaskResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CompleteCurrentTaskResponse)
	err := c.cc.Invoke(ctx, PlanService_CompleteCurrentTask_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *planServiceClient) AddTask(ctx context.Context, in *AddTaskRequest, opts ...grpc.CallOption) (*AddTaskResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AddTaskResponse)
	err := c.cc.Invoke(ctx, PlanService_AddTask_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *planServiceClient) UpdateTask(ctx context.Context, in *UpdateTaskRequest, opts ...grpc.CallOption) (*UpdateTaskResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateTaskResponse)
	err := c.cc.Invoke(ctx, PlanService_UpdateTask_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *planServiceClient) DeleteTask(ctx context.Context, in *DeleteTaskRequest, opts ...grpc.CallOption) (*DeleteTaskResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteTaskResponse)
	err := c.cc.Invoke(ctx, PlanService_DeleteTask_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *planServiceClient) SharePlan(ctx context.Context, in *SharePlanRequest, opts ...grpc.CallOption) (*SharePlanResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SharePlanResponse)
	err := c.cc.Invoke(ctx, PlanService_SharePlan_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *planServiceClient) UnsharePlan(ctx context.Context, in *UnsharePlanRequest, opts ...grpc.CallOption) (*UnsharePlanResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UnsharePlanResponse)
	err := c.cc.Invoke(ctx, PlanService_UnsharePlan_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *planServiceClient) GetSharedUsers(ctx context.Context, in *GetSharedUsersRequest, opts ...grpc.CallOption) (*GetSharedUsersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetSharedUsersResponse)
	err := c.cc.Invoke(ctx, PlanService_GetSharedUsers_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *planServiceClient) GetCompletionStats(ctx context.Context, in *GetCompletionStatsRequest, opts ...grpc.CallOption) (*GetCompletionStatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetCompletionStatsResponse)
	err := c.cc.Invoke(ctx, PlanService_GetCompletionStats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *planServiceClient) SuggestTimeBlocks(ctx context.Context, in *SuggestTimeBlocksRequest, opts ...grpc.CallOption) (*SuggestTimeBlocksResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SuggestTimeBlocksResponse)
	err := c.cc.Invoke(ctx, PlanService_SuggestTimeBlocks_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PlanServiceServer is the server API for PlanService service.
// All implementations must embed UnimplementedPlanServiceServer
// for forward compatibility.
//
// PlanService is the plan progression and collaborative completion API.
// The caller's identity always comes from the authenticated context,
// never from request bodies.
type PlanServiceServer interface {
	CreatePlan(context.Context, *CreatePlanRequest) (*CreatePlanResponse, error)
	GetPlan(context.Context, *GetPlanRequest) (*GetPlanResponse, error)
	ListPlans(context.Context, *ListPlansRequest) (*ListPlansResponse, error)
	// CompleteCurrentTask advances the caller-relevant cursor by one.
	CompleteCurrentTask(context.Context, *CompleteCurrentTaskRequest) (*CompleteCurrentTaskResponse, error)
	AddTask(context.Context, *AddTaskRequest) (*AddTaskResponse, error)
	UpdateTask(context.Context, *UpdateTaskRequest) (*UpdateTaskResponse, error)
	DeleteTask(context.Context, *DeleteTaskRequest) (*DeleteTaskResponse, error)
	SharePlan(context.Context, *SharePlanRequest) (*SharePlanResponse, error)
	UnsharePlan(context.Context, *UnsharePlanRequest) (*UnsharePlanResponse, error)
	GetSharedUsers(context.Context, *GetSharedUsersRequest) (*GetSharedUsersResponse, error)
	GetCompletionStats(context.Context, *GetCompletionStatsRequest) (*GetCompletionStatsResponse, error)
	SuggestTimeBlocks(context.Context, *SuggestTimeBlocksRequest) (*SuggestTimeBlocksResponse, error)
	mustEmbedUnimplementedPlanServiceServer()
}

// UnimplementedPlanServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedPlanServiceServer struct{}

func (UnimplementedPlanServiceServer) CreatePlan(context.Context, *CreatePlanRequest) (*CreatePlanResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreatePlan not implemented")
}
func (UnimplementedPlanServiceServer) GetPlan(context.Context, *GetPlanRequest) (*GetPlanResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPlan not implemented")
}
func (UnimplementedPlanServiceServer) ListPlans(context.Context, *ListPlansRequest) (*ListPlansResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListPlans not implemented")
}
func (UnimplementedPlanServiceServer) CompleteCurrentTask(context.Context, *CompleteCurrentTaskRequest) (*CompleteCurrentTaskResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CompleteCurrentTask not implemented")
}
func (UnimplementedPlanServiceServer) AddTask(context.Context, *AddTaskRequest) (*AddTaskResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddTask not implemented")
}
func (UnimplementedPlanServiceServer) UpdateTask(context.Context, *UpdateTaskRequest) (*UpdateTaskResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateTask not implemented")
}
func (UnimplementedPlanServiceServer) DeleteTask(context.Context, *DeleteTaskRequest) (*DeleteTaskResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteTask not implemented")
}
func (UnimplementedPlanServiceServer) SharePlan(context.Context, *SharePlanRequest) (*SharePlanResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SharePlan not implemented")
}
func (UnimplementedPlanServiceServer) UnsharePlan(context.Context, *UnsharePlanRequest) (*UnsharePlanResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UnsharePlan not implemented")
}
func (UnimplementedPlanServiceServer) GetSharedUsers(context.Context, *GetSharedUsersRequest) (*GetSharedUsersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSharedUsers not implemented")
}
func (UnimplementedPlanServiceServer) GetCompletionStats(context.Context, *GetCompletionStatsRequest) (*GetCompletionStatsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCompletionStats not implemented")
}
func (UnimplementedPlanServiceServer) SuggestTimeBlocks(context.Context, *SuggestTimeBlocksRequest) (*SuggestTimeBlocksResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SuggestTimeBlocks not implemented")
}
func (UnimplementedPlanServiceServer) mustEmbedUnimplementedPlanServiceServer() {}
func (UnimplementedPlanServiceServer) testEmbeddedByValue()                     {}

// UnsafePlanServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PlanServiceServer will
// result in compilation errors.
type UnsafePlanServiceServer interface {
	mustEmbedUnimplementedPlanServiceServer()
}

func RegisterPlanServiceServer(s grpc.ServiceRegistrar, srv PlanServiceServer) {
	// If the following call panics, it indicates UnimplementedPlanServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&PlanService_ServiceDesc, srv)
}

func _PlanService_CreatePlan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreatePlanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlanServiceServer).CreatePlan(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlanService_CreatePlan_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlanServiceServer).CreatePlan(ctx, req.(*CreatePlanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlanService_GetPlan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPlanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlanServiceServer).GetPlan(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlanService_GetPlan_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlanServiceServer).GetPlan(ctx, req.(*GetPlanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlanService_ListPlans_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPlansRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlanServiceServer).ListPlans(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlanService_ListPlans_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlanServiceServer).ListPlans(ctx, req.(*ListPlansRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlanService_CompleteCurrentTask_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompleteCurrentTaskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlanServiceServer).CompleteCurrentTask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlanService_CompleteCurrentTask_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlanServiceServer).CompleteCurrentTask(ctx, req.(*CompleteCurrentTaskRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlanService_AddTask_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddTaskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlanServiceServer).AddTask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlanService_AddTask_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlanServiceServer).AddTask(ctx, req.(*AddTaskRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlanService_UpdateTask_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateTaskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlanServiceServer).UpdateTask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlanService_UpdateTask_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlanServiceServer).UpdateTask(ctx, req.(*UpdateTaskRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlanService_DeleteTask_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteTaskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlanServiceServer).DeleteTask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlanService_DeleteTask_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlanServiceServer).DeleteTask(ctx, req.(*DeleteTaskRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlanService_SharePlan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SharePlanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlanServiceServer).SharePlan(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlanService_SharePlan_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlanServiceServer).SharePlan(ctx, req.(*SharePlanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlanService_UnsharePlan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UnsharePlanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlanServiceServer).UnsharePlan(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlanService_UnsharePlan_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlanServiceServer).UnsharePlan(ctx, req.(*UnsharePlanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlanService_GetSharedUsers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSharedUsersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlanServiceServer).GetSharedUsers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlanService_GetSharedUsers_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlanServiceServer).GetSharedUsers(ctx, req.(*GetSharedUsersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlanService_GetCompletionStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCompletionStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlanServiceServer).GetCompletionStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlanService_GetCompletionStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlanServiceServer).GetCompletionStats(ctx, req.(*GetCompletionStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlanService_SuggestTimeBlocks_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SuggestTimeBlocksRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlanServiceServer).SuggestTimeBlocks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlanService_SuggestTimeBlocks_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlanServiceServer).SuggestTimeBlocks(ctx, req.(*SuggestTimeBlocksRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PlanService_ServiceDesc is the grpc.ServiceDesc for PlanService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PlanService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "plan.v1.PlanService",
	HandlerType: (*PlanServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreatePlan",
			Handler:    _PlanService_CreatePlan_Handler,
		},
		{
			MethodName: "GetPlan",
			Handler:    _PlanService_GetPlan_Handler,
		},
		{
			MethodName: "ListPlans",
			Handler:    _PlanService_ListPlans_Handler,
		},
		{
			MethodName: "CompleteCurrentTask",
			Handler:    _PlanService_CompleteCurrentTask_Handler,
		},
		{
			MethodName: "AddTask",
			Handler:    _PlanService_AddTask_Handler,
		},
		{
			MethodName: "UpdateTask",
			Handler:    _PlanService_UpdateTask_Handler,
		},
		{
			MethodName: "DeleteTask",
			Handler:    _PlanService_DeleteTask_Handler,
		},
		{
			MethodName: "SharePlan",
			Handler:    _PlanService_SharePlan_Handler,
		},
		{
			MethodName: "UnsharePlan",
			Handler:    _PlanService_UnsharePlan_Handler,
		},
		{
			MethodName: "GetSharedUsers",
			Handler:    _PlanService_GetSharedUsers_Handler,
		},
		{
			MethodName: "GetCompletionStats",
			Handler:    _PlanService_GetCompletionStats_Handler,
		},
		{
			MethodName: "SuggestTimeBlocks",
			Handler:    _PlanService_SuggestTimeBlocks_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/proto/plan/v1/plan.proto",
}
