// api/proto/plan/v1/plan.proto
//
// Generated Go code lives under api/proto/plan/v1/generated:
//   protoc --go_out=. --go-grpc_out=. api/proto/plan/v1/plan.proto

// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.8
// 	protoc        (unknown)
// source: api/proto/plan/v1/plan.proto

package planv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type SharePermission int32

const (
	SharePermission_SHARE_PERMISSION_UNSPECIFIED SharePermission = 0
	SharePermission_SHARE_PERMISSION_READ        SharePermission = 1
	SharePermission_SHARE_PERMISSION_WRITE       SharePermission = 2
	SharePermission_SHARE_PERMISSION_INDIVIDUAL  SharePermission = 3
)

// Enum value maps for SharePermission.
var (
	SharePermission_name = map[int32]string{
		0: "SHARE_PERMISSION_UNSPECIFIED",
		1: "SHARE_PERMISSION_READ",
		2: "SHARE_PERMISSION_WRITE",
		3: "SHARE_PERMISSION_INDIVIDUAL",
	}
	SharePermission_value = map[string]int32{
		"SHARE_PERMISSION_UNSPECIFIED": 0,
		"SHARE_PERMISSION_READ":        1,
		"SHARE_PERMISSION_WRITE":       2,
		"SHARE_PERMISSION_INDIVIDUAL":  3,
	}
)

func (x SharePermission) Enum() *SharePermission {
	p := new(SharePermission)
	*p = x
	return p
}

func (x SharePermission) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (SharePermission) Descriptor() protoreflect.EnumDescriptor {
	return file_api_proto_plan_v1_plan_proto_enumTypes[0].Descriptor()
}

func (SharePermission) Type() protoreflect.EnumType {
	return &file_api_proto_plan_v1_plan_proto_enumTypes[0]
}

func (x SharePermission) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use SharePermission.Descriptor instead.
func (SharePermission) EnumDescriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{0}
}

type Task struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Id          string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Title       string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Description string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Date        *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=date,proto3" json:"date,omitempty"`
	PlanOrder   int32                  `protobuf:"varint,5,opt,name=plan_order,json=planOrder,proto3" json:"plan_order,omitempty"`
	Priority    int32                  `protobuf:"varint,6,opt,name=priority,proto3" json:"priority,omitempty"`
	// Resolved for the viewer: individual-mode shares see their own
	// completion state here, not the shared column.
	Completed     bool                   `protobuf:"varint,7,opt,name=completed,proto3" json:"completed,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Task) Reset() {
	*x = Task{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Task) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Task) ProtoMessage() {}

func (x *Task) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Task.ProtoReflect.Descriptor instead.
func (*Task) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{0}
}

func (x *Task) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Task) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Task) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Task) GetDate() *timestamppb.Timestamp {
	if x != nil {
		return x.Date
	}
	return nil
}

func (x *Task) GetPlanOrder() int32 {
	if x != nil {
		return x.PlanOrder
	}
	return 0
}

func (x *Task) GetPriority() int32 {
	if x != nil {
		return x.Priority
	}
	return 0
}

func (x *Task) GetCompleted() bool {
	if x != nil {
		return x.Completed
	}
	return false
}

func (x *Task) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Task) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type Plan struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId          string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Title            string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	Description      string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	Date             *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=date,proto3" json:"date,omitempty"`
	CurrentTaskIndex int32                  `protobuf:"varint,6,opt,name=current_task_index,json=currentTaskIndex,proto3" json:"current_task_index,omitempty"`
	// Resolved for the viewer, see Task.completed.
	Completed bool `protobuf:"varint,7,opt,name=completed,proto3" json:"completed,omitempty"`
	IsShared  bool `protobuf:"varint,8,opt,name=is_shared,json=isShared,proto3" json:"is_shared,omitempty"`
	// The viewer's permission; unspecified when the viewer is the owner.
	Permission    SharePermission        `protobuf:"varint,9,opt,name=permission,proto3,enum=plan.v1.SharePermission" json:"permission,omitempty"`
	Tasks         []*Task                `protobuf:"bytes,10,rep,name=tasks,proto3" json:"tasks,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp `protobuf:"bytes,12,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Plan) Reset() {
	*x = Plan{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Plan) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Plan) ProtoMessage() {}

func (x *Plan) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Plan.ProtoReflect.Descriptor instead.
func (*Plan) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{1}
}

func (x *Plan) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Plan) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *Plan) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Plan) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Plan) GetDate() *timestamppb.Timestamp {
	if x != nil {
		return x.Date
	}
	return nil
}

func (x *Plan) GetCurrentTaskIndex() int32 {
	if x != nil {
		return x.CurrentTaskIndex
	}
	return 0
}

func (x *Plan) GetCompleted() bool {
	if x != nil {
		return x.Completed
	}
	return false
}

func (x *Plan) GetIsShared() bool {
	if x != nil {
		return x.IsShared
	}
	return false
}

func (x *Plan) GetPermission() SharePermission {
	if x != nil {
		return x.Permission
	}
	return SharePermission_SHARE_PERMISSION_UNSPECIFIED
}

func (x *Plan) GetTasks() []*Task {
	if x != nil {
		return x.Tasks
	}
	return nil
}

func (x *Plan) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Plan) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type NewTask struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Title       string                 `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
	Description string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	// Defaults to the plan date when unset.
	Date *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=date,proto3" json:"date,omitempty"`
	// 1-5, defaults to 3 when unset.
	Priority      int32 `protobuf:"varint,4,opt,name=priority,proto3" json:"priority,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NewTask) Reset() {
	*x = NewTask{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NewTask) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NewTask) ProtoMessage() {}

func (x *NewTask) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NewTask.ProtoReflect.Descriptor instead.
func (*NewTask) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{2}
}

func (x *NewTask) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *NewTask) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *NewTask) GetDate() *timestamppb.Timestamp {
	if x != nil {
		return x.Date
	}
	return nil
}

func (x *NewTask) GetPriority() int32 {
	if x != nil {
		return x.Priority
	}
	return 0
}

type CreatePlanRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Title       string                 `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
	Description string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	Date        *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=date,proto3" json:"date,omitempty"`
	// Must contain at least one task.
	Tasks         []*NewTask `protobuf:"bytes,4,rep,name=tasks,proto3" json:"tasks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreatePlanRequest) Reset() {
	*x = CreatePlanRequest{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatePlanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatePlanRequest) ProtoMessage() {}

func (x *CreatePlanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatePlanRequest.ProtoReflect.Descriptor instead.
func (*CreatePlanRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{3}
}

func (x *CreatePlanRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *CreatePlanRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *CreatePlanRequest) GetDate() *timestamppb.Timestamp {
	if x != nil {
		return x.Date
	}
	return nil
}

func (x *CreatePlanRequest) GetTasks() []*NewTask {
	if x != nil {
		return x.Tasks
	}
	return nil
}

type CreatePlanResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Plan          *Plan                  `protobuf:"bytes,1,opt,name=plan,proto3" json:"plan,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreatePlanResponse) Reset() {
	*x = CreatePlanResponse{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatePlanResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatePlanResponse) ProtoMessage() {}

func (x *CreatePlanResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatePlanResponse.ProtoReflect.Descriptor instead.
func (*CreatePlanResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{4}
}

func (x *CreatePlanResponse) GetPlan() *Plan {
	if x != nil {
		return x.Plan
	}
	return nil
}

type GetPlanRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPlanRequest) Reset() {
	*x = GetPlanRequest{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPlanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPlanRequest) ProtoMessage() {}

func (x *GetPlanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPlanRequest.ProtoReflect.Descriptor instead.
func (*GetPlanRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{5}
}

func (x *GetPlanRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetPlanResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Plan          *Plan                  `protobuf:"bytes,1,opt,name=plan,proto3" json:"plan,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPlanResponse) Reset() {
	*x = GetPlanResponse{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPlanResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPlanResponse) ProtoMessage() {}

func (x *GetPlanResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPlanResponse.ProtoReflect.Descriptor instead.
func (*GetPlanResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{6}
}

func (x *GetPlanResponse) GetPlan() *Plan {
	if x != nil {
		return x.Plan
	}
	return nil
}

type ListPlansRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// When set, only plans scheduled for this day are returned.
	Date          *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=date,proto3" json:"date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPlansRequest) Reset() {
	*x = ListPlansRequest{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPlansRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPlansRequest) ProtoMessage() {}

func (x *ListPlansRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPlansRequest.ProtoReflect.Descriptor instead.
func (*ListPlansRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{7}
}

func (x *ListPlansRequest) GetDate() *timestamppb.Timestamp {
	if x != nil {
		return x.Date
	}
	return nil
}

type ListPlansResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Plans         []*Plan                `protobuf:"bytes,1,rep,name=plans,proto3" json:"plans,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPlansResponse) Reset() {
	*x = ListPlansResponse{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPlansResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPlansResponse) ProtoMessage() {}

func (x *ListPlansResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPlansResponse.ProtoReflect.Descriptor instead.
func (*ListPlansResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{8}
}

func (x *ListPlansResponse) GetPlans() []*Plan {
	if x != nil {
		return x.Plans
	}
	return nil
}

type CompleteCurrentTaskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PlanId        string                 `protobuf:"bytes,1,opt,name=plan_id,json=planId,proto3" json:"plan_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteCurrentTaskRequest) Reset() {
	*x = CompleteCurrentTaskRequest{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteCurrentTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteCurrentTaskRequest) ProtoMessage() {}

func (x *CompleteCurrentTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteCurrentTaskRequest.ProtoReflect.Descriptor instead.
func (*CompleteCurrentTaskRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{9}
}

func (x *CompleteCurrentTaskRequest) GetPlanId() string {
	if x != nil {
		return x.PlanId
	}
	return ""
}

type CompleteCurrentTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Plan          *Plan                  `protobuf:"bytes,1,opt,name=plan,proto3" json:"plan,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteCurrentTaskResponse) Reset() {
	*x = CompleteCurrentTaskResponse{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteCurrentTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteCurrentTaskResponse) ProtoMessage() {}

func (x *CompleteCurrentTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteCurrentTaskResponse.ProtoReflect.Descriptor instead.
func (*CompleteCurrentTaskResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{10}
}

func (x *CompleteCurrentTaskResponse) GetPlan() *Plan {
	if x != nil {
		return x.Plan
	}
	return nil
}

type AddTaskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PlanId        string                 `protobuf:"bytes,1,opt,name=plan_id,json=planId,proto3" json:"plan_id,omitempty"`
	Task          *NewTask               `protobuf:"bytes,2,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddTaskRequest) Reset() {
	*x = AddTaskRequest{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddTaskRequest) ProtoMessage() {}

func (x *AddTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddTaskRequest.ProtoReflect.Descriptor instead.
func (*AddTaskRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{11}
}

func (x *AddTaskRequest) GetPlanId() string {
	if x != nil {
		return x.PlanId
	}
	return ""
}

func (x *AddTaskRequest) GetTask() *NewTask {
	if x != nil {
		return x.Task
	}
	return nil
}

type AddTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Plan          *Plan                  `protobuf:"bytes,1,opt,name=plan,proto3" json:"plan,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddTaskResponse) Reset() {
	*x = AddTaskResponse{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddTaskResponse) ProtoMessage() {}

func (x *AddTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddTaskResponse.ProtoReflect.Descriptor instead.
func (*AddTaskResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{12}
}

func (x *AddTaskResponse) GetPlan() *Plan {
	if x != nil {
		return x.Plan
	}
	return nil
}

type UpdateTaskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PlanId        string                 `protobuf:"bytes,1,opt,name=plan_id,json=planId,proto3" json:"plan_id,omitempty"`
	TaskId        string                 `protobuf:"bytes,2,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	Title         *string                `protobuf:"bytes,3,opt,name=title,proto3,oneof" json:"title,omitempty"`
	Description   *string                `protobuf:"bytes,4,opt,name=description,proto3,oneof" json:"description,omitempty"`
	Priority      *int32                 `protobuf:"varint,5,opt,name=priority,proto3,oneof" json:"priority,omitempty"`
	Date          *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=date,proto3" json:"date,omitempty"`
	Completed     *bool                  `protobuf:"varint,7,opt,name=completed,proto3,oneof" json:"completed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateTaskRequest) Reset() {
	*x = UpdateTaskRequest{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateTaskRequest) ProtoMessage() {}

func (x *UpdateTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateTaskRequest.ProtoReflect.Descriptor instead.
func (*UpdateTaskRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{13}
}

func (x *UpdateTaskRequest) GetPlanId() string {
	if x != nil {
		return x.PlanId
	}
	return ""
}

func (x *UpdateTaskRequest) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

func (x *UpdateTaskRequest) GetTitle() string {
	if x != nil && x.Title != nil {
		return *x.Title
	}
	return ""
}

func (x *UpdateTaskRequest) GetDescription() string {
	if x != nil && x.Description != nil {
		return *x.Description
	}
	return ""
}

func (x *UpdateTaskRequest) GetPriority() int32 {
	if x != nil && x.Priority != nil {
		return *x.Priority
	}
	return 0
}

func (x *UpdateTaskRequest) GetDate() *timestamppb.Timestamp {
	if x != nil {
		return x.Date
	}
	return nil
}

func (x *UpdateTaskRequest) GetCompleted() bool {
	if x != nil && x.Completed != nil {
		return *x.Completed
	}
	return false
}

type UpdateTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Plan          *Plan                  `protobuf:"bytes,1,opt,name=plan,proto3" json:"plan,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateTaskResponse) Reset() {
	*x = UpdateTaskResponse{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateTaskResponse) ProtoMessage() {}

func (x *UpdateTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateTaskResponse.ProtoReflect.Descriptor instead.
func (*UpdateTaskResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{14}
}

func (x *UpdateTaskResponse) GetPlan() *Plan {
	if x != nil {
		return x.Plan
	}
	return nil
}

type DeleteTaskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PlanId        string                 `protobuf:"bytes,1,opt,name=plan_id,json=planId,proto3" json:"plan_id,omitempty"`
	TaskId        string                 `protobuf:"bytes,2,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteTaskRequest) Reset() {
	*x = DeleteTaskRequest{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteTaskRequest) ProtoMessage() {}

func (x *DeleteTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteTaskRequest.ProtoReflect.Descriptor instead.
func (*DeleteTaskRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{15}
}

func (x *DeleteTaskRequest) GetPlanId() string {
	if x != nil {
		return x.PlanId
	}
	return ""
}

func (x *DeleteTaskRequest) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

type DeleteTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Plan          *Plan                  `protobuf:"bytes,1,opt,name=plan,proto3" json:"plan,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteTaskResponse) Reset() {
	*x = DeleteTaskResponse{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteTaskResponse) ProtoMessage() {}

func (x *DeleteTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteTaskResponse.ProtoReflect.Descriptor instead.
func (*DeleteTaskResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{16}
}

func (x *DeleteTaskResponse) GetPlan() *Plan {
	if x != nil {
		return x.Plan
	}
	return nil
}

type SharePlanRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PlanId        string                 `protobuf:"bytes,1,opt,name=plan_id,json=planId,proto3" json:"plan_id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Permission    SharePermission        `protobuf:"varint,3,opt,name=permission,proto3,enum=plan.v1.SharePermission" json:"permission,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SharePlanRequest) Reset() {
	*x = SharePlanRequest{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SharePlanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SharePlanRequest) ProtoMessage() {}

func (x *SharePlanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SharePlanRequest.ProtoReflect.Descriptor instead.
func (*SharePlanRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{17}
}

func (x *SharePlanRequest) GetPlanId() string {
	if x != nil {
		return x.PlanId
	}
	return ""
}

func (x *SharePlanRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *SharePlanRequest) GetPermission() SharePermission {
	if x != nil {
		return x.Permission
	}
	return SharePermission_SHARE_PERMISSION_UNSPECIFIED
}

type ShareRecord struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PlanId        string                 `protobuf:"bytes,1,opt,name=plan_id,json=planId,proto3" json:"plan_id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	UserId        string                 `protobuf:"bytes,3,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Permission    SharePermission        `protobuf:"varint,4,opt,name=permission,proto3,enum=plan.v1.SharePermission" json:"permission,omitempty"`
	SharedAt      *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=shared_at,json=sharedAt,proto3" json:"shared_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ShareRecord) Reset() {
	*x = ShareRecord{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ShareRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ShareRecord) ProtoMessage() {}

func (x *ShareRecord) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ShareRecord.ProtoReflect.Descriptor instead.
func (*ShareRecord) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{18}
}

func (x *ShareRecord) GetPlanId() string {
	if x != nil {
		return x.PlanId
	}
	return ""
}

func (x *ShareRecord) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ShareRecord) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ShareRecord) GetPermission() SharePermission {
	if x != nil {
		return x.Permission
	}
	return SharePermission_SHARE_PERMISSION_UNSPECIFIED
}

func (x *ShareRecord) GetSharedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.SharedAt
	}
	return nil
}

type SharePlanResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Share         *ShareRecord           `protobuf:"bytes,1,opt,name=share,proto3" json:"share,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SharePlanResponse) Reset() {
	*x = SharePlanResponse{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SharePlanResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SharePlanResponse) ProtoMessage() {}

func (x *SharePlanResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SharePlanResponse.ProtoReflect.Descriptor instead.
func (*SharePlanResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{19}
}

func (x *SharePlanResponse) GetShare() *ShareRecord {
	if x != nil {
		return x.Share
	}
	return nil
}

type UnsharePlanRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PlanId        string                 `protobuf:"bytes,1,opt,name=plan_id,json=planId,proto3" json:"plan_id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UnsharePlanRequest) Reset() {
	*x = UnsharePlanRequest{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnsharePlanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnsharePlanRequest) ProtoMessage() {}

func (x *UnsharePlanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnsharePlanRequest.ProtoReflect.Descriptor instead.
func (*UnsharePlanRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{20}
}

func (x *UnsharePlanRequest) GetPlanId() string {
	if x != nil {
		return x.PlanId
	}
	return ""
}

func (x *UnsharePlanRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type UnsharePlanResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Number of share rows removed; zero when nothing was shared.
	Deleted       int32 `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UnsharePlanResponse) Reset() {
	*x = UnsharePlanResponse{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnsharePlanResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnsharePlanResponse) ProtoMessage() {}

func (x *UnsharePlanResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnsharePlanResponse.ProtoReflect.Descriptor instead.
func (*UnsharePlanResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{21}
}

func (x *UnsharePlanResponse) GetDeleted() int32 {
	if x != nil {
		return x.Deleted
	}
	return 0
}

type GetSharedUsersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PlanId        string                 `protobuf:"bytes,1,opt,name=plan_id,json=planId,proto3" json:"plan_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSharedUsersRequest) Reset() {
	*x = GetSharedUsersRequest{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSharedUsersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSharedUsersRequest) ProtoMessage() {}

func (x *GetSharedUsersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSharedUsersRequest.ProtoReflect.Descriptor instead.
func (*GetSharedUsersRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{22}
}

func (x *GetSharedUsersRequest) GetPlanId() string {
	if x != nil {
		return x.PlanId
	}
	return ""
}

type SharedUser struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Email         string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	DisplayName   string                 `protobuf:"bytes,3,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	Permission    SharePermission        `protobuf:"varint,4,opt,name=permission,proto3,enum=plan.v1.SharePermission" json:"permission,omitempty"`
	SharedAt      *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=shared_at,json=sharedAt,proto3" json:"shared_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SharedUser) Reset() {
	*x = SharedUser{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SharedUser) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SharedUser) ProtoMessage() {}

func (x *SharedUser) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SharedUser.ProtoReflect.Descriptor instead.
func (*SharedUser) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{23}
}

func (x *SharedUser) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *SharedUser) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *SharedUser) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

func (x *SharedUser) GetPermission() SharePermission {
	if x != nil {
		return x.Permission
	}
	return SharePermission_SHARE_PERMISSION_UNSPECIFIED
}

func (x *SharedUser) GetSharedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.SharedAt
	}
	return nil
}

type GetSharedUsersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Users         []*SharedUser          `protobuf:"bytes,1,rep,name=users,proto3" json:"users,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSharedUsersResponse) Reset() {
	*x = GetSharedUsersResponse{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSharedUsersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSharedUsersResponse) ProtoMessage() {}

func (x *GetSharedUsersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSharedUsersResponse.ProtoReflect.Descriptor instead.
func (*GetSharedUsersResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{24}
}

func (x *GetSharedUsersResponse) GetUsers() []*SharedUser {
	if x != nil {
		return x.Users
	}
	return nil
}

type GetCompletionStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	From          *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=from,proto3" json:"from,omitempty"`
	To            *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=to,proto3" json:"to,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCompletionStatsRequest) Reset() {
	*x = GetCompletionStatsRequest{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCompletionStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCompletionStatsRequest) ProtoMessage() {}

func (x *GetCompletionStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCompletionStatsRequest.ProtoReflect.Descriptor instead.
func (*GetCompletionStatsRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{25}
}

func (x *GetCompletionStatsRequest) GetFrom() *timestamppb.Timestamp {
	if x != nil {
		return x.From
	}
	return nil
}

func (x *GetCompletionStatsRequest) GetTo() *timestamppb.Timestamp {
	if x != nil {
		return x.To
	}
	return nil
}

type DailyStat struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Day            *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=day,proto3" json:"day,omitempty"`
	PlansCompleted int32                  `protobuf:"varint,2,opt,name=plans_completed,json=plansCompleted,proto3" json:"plans_completed,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *DailyStat) Reset() {
	*x = DailyStat{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DailyStat) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DailyStat) ProtoMessage() {}

func (x *DailyStat) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DailyStat.ProtoReflect.Descriptor instead.
func (*DailyStat) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{26}
}

func (x *DailyStat) GetDay() *timestamppb.Timestamp {
	if x != nil {
		return x.Day
	}
	return nil
}

func (x *DailyStat) GetPlansCompleted() int32 {
	if x != nil {
		return x.PlansCompleted
	}
	return 0
}

type GetCompletionStatsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Days          []*DailyStat           `protobuf:"bytes,1,rep,name=days,proto3" json:"days,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCompletionStatsResponse) Reset() {
	*x = GetCompletionStatsResponse{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCompletionStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCompletionStatsResponse) ProtoMessage() {}

func (x *GetCompletionStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCompletionStatsResponse.ProtoReflect.Descriptor instead.
func (*GetCompletionStatsResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{27}
}

func (x *GetCompletionStatsResponse) GetDays() []*DailyStat {
	if x != nil {
		return x.Days
	}
	return nil
}

type BusyInterval struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Start         *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=start,proto3" json:"start,omitempty"`
	Finish        *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=finish,proto3" json:"finish,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BusyInterval) Reset() {
	*x = BusyInterval{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BusyInterval) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BusyInterval) ProtoMessage() {}

func (x *BusyInterval) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BusyInterval.ProtoReflect.Descriptor instead.
func (*BusyInterval) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{28}
}

func (x *BusyInterval) GetStart() *timestamppb.Timestamp {
	if x != nil {
		return x.Start
	}
	return nil
}

func (x *BusyInterval) GetFinish() *timestamppb.Timestamp {
	if x != nil {
		return x.Finish
	}
	return nil
}

type SuggestTimeBlocksRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Day to plan; the caller's incomplete tasks for this day are packed.
	Date     *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=date,proto3" json:"date,omitempty"`
	DayStart *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=day_start,json=dayStart,proto3" json:"day_start,omitempty"`
	DayEnd   *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=day_end,json=dayEnd,proto3" json:"day_end,omitempty"`
	// Minutes per suggested block; defaults to 30.
	BlockMinutes  int32           `protobuf:"varint,4,opt,name=block_minutes,json=blockMinutes,proto3" json:"block_minutes,omitempty"`
	Busy          []*BusyInterval `protobuf:"bytes,5,rep,name=busy,proto3" json:"busy,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SuggestTimeBlocksRequest) Reset() {
	*x = SuggestTimeBlocksRequest{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SuggestTimeBlocksRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SuggestTimeBlocksRequest) ProtoMessage() {}

func (x *SuggestTimeBlocksRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SuggestTimeBlocksRequest.ProtoReflect.Descriptor instead.
func (*SuggestTimeBlocksRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{29}
}

func (x *SuggestTimeBlocksRequest) GetDate() *timestamppb.Timestamp {
	if x != nil {
		return x.Date
	}
	return nil
}

func (x *SuggestTimeBlocksRequest) GetDayStart() *timestamppb.Timestamp {
	if x != nil {
		return x.DayStart
	}
	return nil
}

func (x *SuggestTimeBlocksRequest) GetDayEnd() *timestamppb.Timestamp {
	if x != nil {
		return x.DayEnd
	}
	return nil
}

func (x *SuggestTimeBlocksRequest) GetBlockMinutes() int32 {
	if x != nil {
		return x.BlockMinutes
	}
	return 0
}

func (x *SuggestTimeBlocksRequest) GetBusy() []*BusyInterval {
	if x != nil {
		return x.Busy
	}
	return nil
}

type TimeBlock struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskId        string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Start         *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=start,proto3" json:"start,omitempty"`
	Finish        *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=finish,proto3" json:"finish,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TimeBlock) Reset() {
	*x = TimeBlock{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TimeBlock) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TimeBlock) ProtoMessage() {}

func (x *TimeBlock) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TimeBlock.ProtoReflect.Descriptor instead.
func (*TimeBlock) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{30}
}

func (x *TimeBlock) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

func (x *TimeBlock) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *TimeBlock) GetStart() *timestamppb.Timestamp {
	if x != nil {
		return x.Start
	}
	return nil
}

func (x *TimeBlock) GetFinish() *timestamppb.Timestamp {
	if x != nil {
		return x.Finish
	}
	return nil
}

type SuggestTimeBlocksResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Blocks        []*TimeBlock           `protobuf:"bytes,1,rep,name=blocks,proto3" json:"blocks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SuggestTimeBlocksResponse) Reset() {
	*x = SuggestTimeBlocksResponse{}
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SuggestTimeBlocksResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SuggestTimeBlocksResponse) ProtoMessage() {}

func (x *SuggestTimeBlocksResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_plan_v1_plan_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SuggestTimeBlocksResponse.ProtoReflect.Descriptor instead.
func (*SuggestTimeBlocksResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_plan_v1_plan_proto_rawDescGZIP(), []int{31}
}

func (x *SuggestTimeBlocksResponse) GetBlocks() []*TimeBlock {
	if x != nil {
		return x.Blocks
	}
	return nil
}

var File_api_proto_plan_v1_plan_proto protoreflect.FileDescriptor

const file_api_proto_plan_v1_plan_proto_rawDesc = "" +
	"\n" +
	"\x1capi/proto/plan/v1/plan.proto\x12\aplan.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\xcd\x02\n" +
	"\x04Task\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12.\n" +
	"\x04date\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\x04date\x12\x1d\n" +
	"\n" +
	"plan_order\x18\x05 \x01(\x05R\tplanOrder\x12\x1a\n" +
	"\bpriority\x18\x06 \x01(\x05R\bpriority\x12\x1c\n" +
	"\tcompleted\x18\a \x01(\bR\tcompleted\x129\n" +
	"\n" +
	"created_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\xd7\x03\n" +
	"\x04Plan\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12.\n" +
	"\x04date\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\x04date\x12,\n" +
	"\x12current_task_index\x18\x06 \x01(\x05R\x10currentTaskIndex\x12\x1c\n" +
	"\tcompleted\x18\a \x01(\bR\tcompleted\x12\x1b\n" +
	"\tis_shared\x18\b \x01(\bR\bisShared\x128\n" +
	"\n" +
	"permission\x18\t \x01(\x0e2\x18.plan.v1.SharePermissionR\n" +
	"permission\x12#\n" +
	"\x05tasks\x18\n" +
	" \x03(\v2\r.plan.v1.TaskR\x05tasks\x129\n" +
	"\n" +
	"created_at\x18\v \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\f \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\x8d\x01\n" +
	"\aNewTask\x12\x14\n" +
	"\x05title\x18\x01 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12.\n" +
	"\x04date\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\x04date\x12\x1a\n" +
	"\bpriority\x18\x04 \x01(\x05R\bpriority\"\xa3\x01\n" +
	"\x11CreatePlanRequest\x12\x14\n" +
	"\x05title\x18\x01 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12.\n" +
	"\x04date\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\x04date\x12&\n" +
	"\x05tasks\x18\x04 \x03(\v2\x10.plan.v1.NewTaskR\x05tasks\"7\n" +
	"\x12CreatePlanResponse\x12!\n" +
	"\x04plan\x18\x01 \x01(\v2\r.plan.v1.PlanR\x04plan\" \n" +
	"\x0eGetPlanRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"4\n" +
	"\x0fGetPlanResponse\x12!\n" +
	"\x04plan\x18\x01 \x01(\v2\r.plan.v1.PlanR\x04plan\"B\n" +
	"\x10ListPlansRequest\x12.\n" +
	"\x04date\x18\x01 \x01(\v2\x1a.google.protobuf.TimestampR\x04date\"8\n" +
	"\x11ListPlansResponse\x12#\n" +
	"\x05plans\x18\x01 \x03(\v2\r.plan.v1.PlanR\x05plans\"5\n" +
	"\x1aCompleteCurrentTaskRequest\x12\x17\n" +
	"\aplan_id\x18\x01 \x01(\tR\x06planId\"@\n" +
	"\x1bCompleteCurrentTaskResponse\x12!\n" +
	"\x04plan\x18\x01 \x01(\v2\r.plan.v1.PlanR\x04plan\"O\n" +
	"\x0eAddTaskRequest\x12\x17\n" +
	"\aplan_id\x18\x01 \x01(\tR\x06planId\x12$\n" +
	"\x04task\x18\x02 \x01(\v2\x10.plan.v1.NewTaskR\x04task\"4\n" +
	"\x0fAddTaskResponse\x12!\n" +
	"\x04plan\x18\x01 \x01(\v2\r.plan.v1.PlanR\x04plan\"\xb0\x02\n" +
	"\x11UpdateTaskRequest\x12\x17\n" +
	"\aplan_id\x18\x01 \x01(\tR\x06planId\x12\x17\n" +
	"\atask_id\x18\x02 \x01(\tR\x06taskId\x12\x19\n" +
	"\x05title\x18\x03 \x01(\tH\x00R\x05title\x88\x01\x01\x12%\n" +
	"\vdescription\x18\x04 \x01(\tH\x01R\vdescription\x88\x01\x01\x12\x1f\n" +
	"\bpriority\x18\x05 \x01(\x05H\x02R\bpriority\x88\x01\x01\x12.\n" +
	"\x04date\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\x04date\x12!\n" +
	"\tcompleted\x18\a \x01(\bH\x03R\tcompleted\x88\x01\x01B\b\n" +
	"\x06_titleB\x0e\n" +
	"\f_descriptionB\v\n" +
	"\t_priorityB\f\n" +
	"\n" +
	"_completed\"7\n" +
	"\x12UpdateTaskResponse\x12!\n" +
	"\x04plan\x18\x01 \x01(\v2\r.plan.v1.PlanR\x04plan\"E\n" +
	"\x11DeleteTaskRequest\x12\x17\n" +
	"\aplan_id\x18\x01 \x01(\tR\x06planId\x12\x17\n" +
	"\atask_id\x18\x02 \x01(\tR\x06taskId\"7\n" +
	"\x12DeleteTaskResponse\x12!\n" +
	"\x04plan\x18\x01 \x01(\v2\r.plan.v1.PlanR\x04plan\"~\n" +
	"\x10SharePlanRequest\x12\x17\n" +
	"\aplan_id\x18\x01 \x01(\tR\x06planId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x128\n" +
	"\n" +
	"permission\x18\x03 \x01(\x0e2\x18.plan.v1.SharePermissionR\n" +
	"permission\"\xcd\x01\n" +
	"\vShareRecord\x12\x17\n" +
	"\aplan_id\x18\x01 \x01(\tR\x06planId\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x17\n" +
	"\auser_id\x18\x03 \x01(\tR\x06userId\x128\n" +
	"\n" +
	"permission\x18\x04 \x01(\x0e2\x18.plan.v1.SharePermissionR\n" +
	"permission\x127\n" +
	"\tshared_at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\bsharedAt\"?\n" +
	"\x11SharePlanResponse\x12*\n" +
	"\x05share\x18\x01 \x01(\v2\x14.plan.v1.ShareRecordR\x05share\"F\n" +
	"\x12UnsharePlanRequest\x12\x17\n" +
	"\aplan_id\x18\x01 \x01(\tR\x06planId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\"/\n" +
	"\x13UnsharePlanResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\x05R\adeleted\"0\n" +
	"\x15GetSharedUsersRequest\x12\x17\n" +
	"\aplan_id\x18\x01 \x01(\tR\x06planId\"\xd1\x01\n" +
	"\n" +
	"SharedUser\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05email\x12!\n" +
	"\fdisplay_name\x18\x03 \x01(\tR\vdisplayName\x128\n" +
	"\n" +
	"permission\x18\x04 \x01(\x0e2\x18.plan.v1.SharePermissionR\n" +
	"permission\x127\n" +
	"\tshared_at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\bsharedAt\"C\n" +
	"\x16GetSharedUsersResponse\x12)\n" +
	"\x05users\x18\x01 \x03(\v2\x13.plan.v1.SharedUserR\x05users\"w\n" +
	"\x19GetCompletionStatsRequest\x12.\n" +
	"\x04from\x18\x01 \x01(\v2\x1a.google.protobuf.TimestampR\x04from\x12*\n" +
	"\x02to\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\x02to\"b\n" +
	"\tDailyStat\x12,\n" +
	"\x03day\x18\x01 \x01(\v2\x1a.google.protobuf.TimestampR\x03day\x12'\n" +
	"\x0fplans_completed\x18\x02 \x01(\x05R\x0eplansCompleted\"D\n" +
	"\x1aGetCompletionStatsResponse\x12&\n" +
	"\x04days\x18\x01 \x03(\v2\x12.plan.v1.DailyStatR\x04days\"t\n" +
	"\fBusyInterval\x120\n" +
	"\x05start\x18\x01 \x01(\v2\x1a.google.protobuf.TimestampR\x05start\x122\n" +
	"\x06finish\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\x06finish\"\x88\x02\n" +
	"\x18SuggestTimeBlocksRequest\x12.\n" +
	"\x04date\x18\x01 \x01(\v2\x1a.google.protobuf.TimestampR\x04date\x127\n" +
	"\tday_start\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\bdayStart\x123\n" +
	"\aday_end\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\x06dayEnd\x12#\n" +
	"\rblock_minutes\x18\x04 \x01(\x05R\fblockMinutes\x12)\n" +
	"\x04busy\x18\x05 \x03(\v2\x15.plan.v1.BusyIntervalR\x04busy\"\xa0\x01\n" +
	"\tTimeBlock\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x120\n" +
	"\x05start\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\x05start\x122\n" +
	"\x06finish\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\x06finish\"G\n" +
	"\x19SuggestTimeBlocksResponse\x12*\n" +
	"\x06blocks\x18\x01 \x03(\v2\x12.plan.v1.TimeBlockR\x06blocks*\x8b\x01\n" +
	"\x0fSharePermission\x12 \n" +
	"\x1cSHARE_PERMISSION_UNSPECIFIED\x10\x00\x12\x19\n" +
	"\x15SHARE_PERMISSION_READ\x10\x01\x12\x1a\n" +
	"\x16SHARE_PERMISSION_WRITE\x10\x02\x12\x1f\n" +
	"\x1bSHARE_PERMISSION_INDIVIDUAL\x10\x032\xa0\a\n" +
	"\vPlanService\x12E\n" +
	"\n" +
	"CreatePlan\x12\x1a.plan.v1.CreatePlanRequest\x1a\x1b.plan.v1.CreatePlanResponse\x12<\n" +
	"\aGetPlan\x12\x17.plan.v1.GetPlanRequest\x1a\x18.plan.v1.GetPlanResponse\x12B\n" +
	"\tListPlans\x12\x19.plan.v1.ListPlansRequest\x1a\x1a.plan.v1.ListPlansResponse\x12`\n" +
	"\x13CompleteCurrentTask\x12#.plan.v1.CompleteCurrentTaskRequest\x1a$.plan.v1.CompleteCurrentTaskResponse\x12<\n" +
	"\aAddTask\x12\x17.plan.v1.AddTaskRequest\x1a\x18.plan.v1.AddTaskResponse\x12E\n" +
	"\n" +
	"UpdateTask\x12\x1a.plan.v1.UpdateTaskRequest\x1a\x1b.plan.v1.UpdateTaskResponse\x12E\n" +
	"\n" +
	"DeleteTask\x12\x1a.plan.v1.DeleteTaskRequest\x1a\x1b.plan.v1.DeleteTaskResponse\x12B\n" +
	"\tSharePlan\x12\x19.plan.v1.SharePlanRequest\x1a\x1a.plan.v1.SharePlanResponse\x12H\n" +
	"\vUnsharePlan\x12\x1b.plan.v1.UnsharePlanRequest\x1a\x1c.plan.v1.UnsharePlanResponse\x12Q\n" +
	"\x0eGetSharedUsers\x12\x1e.plan.v1.GetSharedUsersRequest\x1a\x1f.plan.v1.GetSharedUsersResponse\x12]\n" +
	"\x12GetCompletionStats\x12\".plan.v1.GetCompletionStatsRequest\x1a#.plan.v1.GetCompletionStatsResponse\x12Z\n" +
	"\x11SuggestTimeBlocks\x12!.plan.v1.SuggestTimeBlocksRequest\x1a\".plan.v1.SuggestTimeBlocksResponseBEZCgithub.com/planmaster/planmaster/api/proto/plan/v1/generated;planv1b\x06proto3"

var (
	file_api_proto_plan_v1_plan_proto_rawDescOnce sync.Once
	file_api_proto_plan_v1_plan_proto_rawDescData []byte
)

func file_api_proto_plan_v1_plan_proto_rawDescGZIP() []byte {
	file_api_proto_plan_v1_plan_proto_rawDescOnce.Do(func() {
		file_api_proto_plan_v1_plan_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_api_proto_plan_v1_plan_proto_rawDesc), len(file_api_proto_plan_v1_plan_proto_rawDesc)))
	})
	return file_api_proto_plan_v1_plan_proto_rawDescData
}

var file_api_proto_plan_v1_plan_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_api_proto_plan_v1_plan_proto_msgTypes = make([]protoimpl.MessageInfo, 32)
var file_api_proto_plan_v1_plan_proto_goTypes = []any{
	(SharePermission)(0),                // 0: plan.v1.SharePermission
	(*Task)(nil),                        // 1: plan.v1.Task
	(*Plan)(nil),                        // 2: plan.v1.Plan
	(*NewTask)(nil),                     // 3: plan.v1.NewTask
	(*CreatePlanRequest)(nil),           // 4: plan.v1.CreatePlanRequest
	(*CreatePlanResponse)(nil),          // 5: plan.v1.CreatePlanResponse
	(*GetPlanRequest)(nil),              // 6: plan.v1.GetPlanRequest
	(*GetPlanResponse)(nil),             // 7: plan.v1.GetPlanResponse
	(*ListPlansRequest)(nil),            // 8: plan.v1.ListPlansRequest
	(*ListPlansResponse)(nil),           // 9: plan.v1.ListPlansResponse
	(*CompleteCurrentTaskRequest)(nil),  // 10: plan.v1.CompleteCurrentTaskRequest
	(*CompleteCurrentTaskResponse)(nil), // 11: plan.v1.CompleteCurrentTaskResponse
	(*AddTaskRequest)(nil),              // 12: plan.v1.AddTaskRequest
	(*AddTaskResponse)(nil),             // 13: plan.v1.AddTaskResponse
	(*UpdateTaskRequest)(nil),           // 14: plan.v1.UpdateTaskRequest
	(*UpdateTaskResponse)(nil),          // 15: plan.v1.UpdateTaskResponse
	(*DeleteTaskRequest)(nil),           // 16: plan.v1.DeleteTaskRequest
	(*DeleteTaskResponse)(nil),          // 17: plan.v1.DeleteTaskResponse
	(*SharePlanRequest)(nil),            // 18: plan.v1.SharePlanRequest
	(*ShareRecord)(nil),                 // 19: plan.v1.ShareRecord
	(*SharePlanResponse)(nil),           // 20: plan.v1.SharePlanResponse
	(*UnsharePlanRequest)(nil),          // 21: plan.v1.UnsharePlanRequest
	(*UnsharePlanResponse)(nil),         // 22: plan.v1.UnsharePlanResponse
	(*GetSharedUsersRequest)(nil),       // 23: plan.v1.GetSharedUsersRequest
	(*SharedUser)(nil),                  // 24: plan.v1.SharedUser
	(*GetSharedUsersResponse)(nil),      // 25: plan.v1.GetSharedUsersResponse
	(*GetCompletionStatsRequest)(nil),   // 26: plan.v1.GetCompletionStatsRequest
	(*DailyStat)(nil),                   // 27: plan.v1.DailyStat
	(*GetCompletionStatsResponse)(nil),  // 28: plan.v1.GetCompletionStatsResponse
	(*BusyInterval)(nil),                // 29: plan.v1.BusyInterval
	(*SuggestTimeBlocksRequest)(nil),    // 30: plan.v1.SuggestTimeBlocksRequest
	(*TimeBlock)(nil),                   // 31: plan.v1.TimeBlock
	(*SuggestTimeBlocksResponse)(nil),   // 32: plan.v1.SuggestTimeBlocksResponse
	(*timestamppb.Timestamp)(nil),       // 33: google.protobuf.Timestamp
}
var file_api_proto_plan_v1_plan_proto_depIdxs = []int32{
	33, // 0: plan.v1.Task.date:type_name -> google.protobuf.Timestamp
	33, // 1: plan.v1.Task.created_at:type_name -> google.protobuf.Timestamp
	33, // 2: plan.v1.Task.updated_at:type_name -> google.protobuf.Timestamp
	33, // 3: plan.v1.Plan.date:type_name -> google.protobuf.Timestamp
	0,  // 4: plan.v1.Plan.permission:type_name -> plan.v1.SharePermission
	1,  // 5: plan.v1.Plan.tasks:type_name -> plan.v1.Task
	33, // 6: plan.v1.Plan.created_at:type_name -> google.protobuf.Timestamp
	33, // 7: plan.v1.Plan.updated_at:type_name -> google.protobuf.Timestamp
	33, // 8: plan.v1.NewTask.date:type_name -> google.protobuf.Timestamp
	33, // 9: plan.v1.CreatePlanRequest.date:type_name -> google.protobuf.Timestamp
	3,  // 10: plan.v1.CreatePlanRequest.tasks:type_name -> plan.v1.NewTask
	2,  // 11: plan.v1.CreatePlanResponse.plan:type_name -> plan.v1.Plan
	2,  // 12: plan.v1.GetPlanResponse.plan:type_name -> plan.v1.Plan
	33, // 13: plan.v1.ListPlansRequest.date:type_name -> google.protobuf.Timestamp
	2,  // 14: plan.v1.ListPlansResponse.plans:type_name -> plan.v1.Plan
	2,  // 15: plan.v1.CompleteCurrentTaskResponse.plan:type_name -> plan.v1.Plan
	3,  // 16: plan.v1.AddTaskRequest.task:type_name -> plan.v1.NewTask
	2,  // 17: plan.v1.AddTaskResponse.plan:type_name -> plan.v1.Plan
	33, // 18: plan.v1.UpdateTaskRequest.date:type_name -> google.protobuf.Timestamp
	2,  // 19: plan.v1.UpdateTaskResponse.plan:type_name -> plan.v1.Plan
	2,  // 20: plan.v1.DeleteTaskResponse.plan:type_name -> plan.v1.Plan
	0,  // 21: plan.v1.SharePlanRequest.permission:type_name -> plan.v1.SharePermission
	0,  // 22: plan.v1.ShareRecord.permission:type_name -> plan.v1.SharePermission
	33, // 23: plan.v1.ShareRecord.shared_at:type_name -> google.protobuf.Timestamp
	19, // 24: plan.v1.SharePlanResponse.share:type_name -> plan.v1.ShareRecord
	0,  // 25: plan.v1.SharedUser.permission:type_name -> plan.v1.SharePermission
	33, // 26: plan.v1.SharedUser.shared_at:type_name -> google.protobuf.Timestamp
	24, // 27: plan.v1.GetSharedUsersResponse.users:type_name -> plan.v1.SharedUser
	33, // 28: plan.v1.GetCompletionStatsRequest.from:type_name -> google.protobuf.Timestamp
	33, // 29: plan.v1.GetCompletionStatsRequest.to:type_name -> google.protobuf.Timestamp
	33, // 30: plan.v1.DailyStat.day:type_name -> google.protobuf.Timestamp
	27, // 31: plan.v1.GetCompletionStatsResponse.days:type_name -> plan.v1.DailyStat
	33, // 32: plan.v1.BusyInterval.start:type_name -> google.protobuf.Timestamp
	33, // 33: plan.v1.BusyInterval.finish:type_name -> google.protobuf.Timestamp
	33, // 34: plan.v1.SuggestTimeBlocksRequest.date:type_name -> google.protobuf.Timestamp
	33, // 35: plan.v1.SuggestTimeBlocksRequest.day_start:type_name -> google.protobuf.Timestamp
	33, // 36: plan.v1.SuggestTimeBlocksRequest.day_end:type_name -> google.protobuf.Timestamp
	29, // 37: plan.v1.SuggestTimeBlocksRequest.busy:type_name -> plan.v1.BusyInterval
	33, // 38: plan.v1.TimeBlock.start:type_name -> google.protobuf.Timestamp
	33, // 39: plan.v1.TimeBlock.finish:type_name -> google.protobuf.Timestamp
	31, // 40: plan.v1.SuggestTimeBlocksResponse.blocks:type_name -> plan.v1.TimeBlock
	4,  // 41: plan.v1.PlanService.CreatePlan:input_type -> plan.v1.CreatePlanRequest
	6,  // 42: plan.v1.PlanService.GetPlan:input_type -> plan.v1.GetPlanRequest
	8,  // 43: plan.v1.PlanService.ListPlans:input_type -> plan.v1.ListPlansRequest
	10, // 44: plan.v1.PlanService.CompleteCurrentTask:input_type -> plan.v1.CompleteCurrentTaskRequest
	12, // 45: plan.v1.PlanService.AddTask:input_type -> plan.v1.AddTaskRequest
	14, // 46: plan.v1.PlanService.UpdateTask:input_type -> plan.v1.UpdateTaskRequest
	16, // 47: plan.v1.PlanService.DeleteTask:input_type -> plan.v1.DeleteTaskRequest
	18, // 48: plan.v1.PlanService.SharePlan:input_type -> plan.v1.SharePlanRequest
	21, // 49: plan.v1.PlanService.UnsharePlan:input_type -> plan.v1.UnsharePlanRequest
	23, // 50: plan.v1.PlanService.GetSharedUsers:input_type -> plan.v1.GetSharedUsersRequest
	26, // 51: plan.v1.PlanService.GetCompletionStats:input_type -> plan.v1.GetCompletionStatsRequest
	30, // 52: plan.v1.PlanService.SuggestTimeBlocks:input_type -> plan.v1.SuggestTimeBlocksRequest
	5,  // 53: plan.v1.PlanService.CreatePlan:output_type -> plan.v1.CreatePlanResponse
	7,  // 54: plan.v1.PlanService.GetPlan:output_type -> plan.v1.GetPlanResponse
	9,  // 55: plan.v1.PlanService.ListPlans:output_type -> plan.v1.ListPlansResponse
	11, // 56: plan.v1.PlanService.CompleteCurrentTask:output_type -> plan.v1.CompleteCurrentTaskResponse
	13, // 57: plan.v1.PlanService.AddTask:output_type -> plan.v1.AddTaskResponse
	15, // 58: plan.v1.PlanService.UpdateTask:output_type -> plan.v1.UpdateTaskResponse
	17, // 59: plan.v1.PlanService.DeleteTask:output_type -> plan.v1.DeleteTaskResponse
	20, // 60: plan.v1.PlanService.SharePlan:output_type -> plan.v1.SharePlanResponse
	22, // 61: plan.v1.PlanService.UnsharePlan:output_type -> plan.v1.UnsharePlanResponse
	25, // 62: plan.v1.PlanService.GetSharedUsers:output_type -> plan.v1.GetSharedUsersResponse
	28, // 63: plan.v1.PlanService.GetCompletionStats:output_type -> plan.v1.GetCompletionStatsResponse
	32, // 64: plan.v1.PlanService.SuggestTimeBlocks:output_type -> plan.v1.SuggestTimeBlocksResponse
	53, // [53:65] is the sub-list for method output_type
	41, // [41:53] is the sub-list for method input_type
	41, // [41:41] is the sub-list for extension type_name
	41, // [41:41] is the sub-list for extension extendee
	0,  // [0:41] is the sub-list for field type_name
}

func init() { file_api_proto_plan_v1_plan_proto_init() }
func file_api_proto_plan_v1_plan_proto_init() {
	if File_api_proto_plan_v1_plan_proto != nil {
		return
	}
	file_api_proto_plan_v1_plan_proto_msgTypes[13].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_api_proto_plan_v1_plan_proto_rawDesc), len(file_api_proto_plan_v1_plan_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   32,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_api_proto_plan_v1_plan_proto_goTypes,
		DependencyIndexes: file_api_proto_plan_v1_plan_proto_depIdxs,
		EnumInfos:         file_api_proto_plan_v1_plan_proto_enumTypes,
		MessageInfos:      file_api_proto_plan_v1_plan_proto_msgTypes,
	}.Build()
	File_api_proto_plan_v1_plan_proto = out.File
	file_api_proto_plan_v1_plan_proto_goTypes = nil
	file_api_proto_plan_v1_plan_proto_depIdxs = nil
}
