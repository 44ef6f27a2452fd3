// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: framescribe/v1/framescribe.proto

package v1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
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

type Profile struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,3,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,4,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Profile) Reset() {
	*x = Profile{}
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Profile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Profile) ProtoMessage() {}

func (x *Profile) ProtoReflect() protoreflect.Message {
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Profile.ProtoReflect.Descriptor instead.
func (*Profile) Descriptor() ([]byte, []int) {
	return file_framescribe_v1_framescribe_proto_rawDescGZIP(), []int{0}
}

func (x *Profile) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Profile) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Profile) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Profile) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Job struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProfileId        string                 `protobuf:"bytes,2,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	ParentJobId      string                 `protobuf:"bytes,3,opt,name=parent_job_id,json=parentJobId,proto3" json:"parent_job_id,omitempty"`
	Kind             string                 `protobuf:"bytes,4,opt,name=kind,proto3" json:"kind,omitempty"`
	Status           string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	Step             string                 `protobuf:"bytes,6,opt,name=step,proto3" json:"step,omitempty"`
	ErrorMessage     string                 `protobuf:"bytes,7,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	ArchiveKey       string                 `protobuf:"bytes,8,opt,name=archive_key,json=archiveKey,proto3" json:"archive_key,omitempty"`
	ThumbnailKey     string                 `protobuf:"bytes,9,opt,name=thumbnail_key,json=thumbnailKey,proto3" json:"thumbnail_key,omitempty"`
	TextDocKey       string                 `protobuf:"bytes,10,opt,name=text_doc_key,json=textDocKey,proto3" json:"text_doc_key,omitempty"`
	RichDocKey       string                 `protobuf:"bytes,11,opt,name=rich_doc_key,json=richDocKey,proto3" json:"rich_doc_key,omitempty"`
	TotalImages      int32                  `protobuf:"varint,12,opt,name=total_images,json=totalImages,proto3" json:"total_images,omitempty"`
	SubmittedImages  int32                  `protobuf:"varint,13,opt,name=submitted_images,json=submittedImages,proto3" json:"submitted_images,omitempty"`
	TotalBatches     int32                  `protobuf:"varint,14,opt,name=total_batches,json=totalBatches,proto3" json:"total_batches,omitempty"`
	CompletedBatches int32                  `protobuf:"varint,15,opt,name=completed_batches,json=completedBatches,proto3" json:"completed_batches,omitempty"`
	CreatedAt        string                 `protobuf:"bytes,16,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt        string                 `protobuf:"bytes,17,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_framescribe_v1_framescribe_proto_rawDescGZIP(), []int{1}
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *Job) GetParentJobId() string {
	if x != nil {
		return x.ParentJobId
	}
	return ""
}

func (x *Job) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *Job) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Job) GetStep() string {
	if x != nil {
		return x.Step
	}
	return ""
}

func (x *Job) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Job) GetArchiveKey() string {
	if x != nil {
		return x.ArchiveKey
	}
	return ""
}

func (x *Job) GetThumbnailKey() string {
	if x != nil {
		return x.ThumbnailKey
	}
	return ""
}

func (x *Job) GetTextDocKey() string {
	if x != nil {
		return x.TextDocKey
	}
	return ""
}

func (x *Job) GetRichDocKey() string {
	if x != nil {
		return x.RichDocKey
	}
	return ""
}

func (x *Job) GetTotalImages() int32 {
	if x != nil {
		return x.TotalImages
	}
	return 0
}

func (x *Job) GetSubmittedImages() int32 {
	if x != nil {
		return x.SubmittedImages
	}
	return 0
}

func (x *Job) GetTotalBatches() int32 {
	if x != nil {
		return x.TotalBatches
	}
	return 0
}

func (x *Job) GetCompletedBatches() int32 {
	if x != nil {
		return x.CompletedBatches
	}
	return 0
}

func (x *Job) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Job) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Frame struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Filename      string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	BaseKey       string                 `protobuf:"bytes,4,opt,name=base_key,json=baseKey,proto3" json:"base_key,omitempty"`
	FrameIndex    int32                  `protobuf:"varint,5,opt,name=frame_index,json=frameIndex,proto3" json:"frame_index,omitempty"`
	Text          string                 `protobuf:"bytes,6,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Frame) Reset() {
	*x = Frame{}
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Frame) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Frame) ProtoMessage() {}

func (x *Frame) ProtoReflect() protoreflect.Message {
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Frame.ProtoReflect.Descriptor instead.
func (*Frame) Descriptor() ([]byte, []int) {
	return file_framescribe_v1_framescribe_proto_rawDescGZIP(), []int{2}
}

func (x *Frame) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Frame) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *Frame) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Frame) GetBaseKey() string {
	if x != nil {
		return x.BaseKey
	}
	return ""
}

func (x *Frame) GetFrameIndex() int32 {
	if x != nil {
		return x.FrameIndex
	}
	return 0
}

func (x *Frame) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type CreateJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	Kind          string                 `protobuf:"bytes,2,opt,name=kind,proto3" json:"kind,omitempty"`
	ArchiveKey    string                 `protobuf:"bytes,3,opt,name=archive_key,json=archiveKey,proto3" json:"archive_key,omitempty"`
	ParentJobId   string                 `protobuf:"bytes,4,opt,name=parent_job_id,json=parentJobId,proto3" json:"parent_job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateJobRequest) Reset() {
	*x = CreateJobRequest{}
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateJobRequest) ProtoMessage() {}

func (x *CreateJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateJobRequest.ProtoReflect.Descriptor instead.
func (*CreateJobRequest) Descriptor() ([]byte, []int) {
	return file_framescribe_v1_framescribe_proto_rawDescGZIP(), []int{3}
}

func (x *CreateJobRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *CreateJobRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *CreateJobRequest) GetArchiveKey() string {
	if x != nil {
		return x.ArchiveKey
	}
	return ""
}

func (x *CreateJobRequest) GetParentJobId() string {
	if x != nil {
		return x.ParentJobId
	}
	return ""
}

type CreateJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateJobResponse) Reset() {
	*x = CreateJobResponse{}
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateJobResponse) ProtoMessage() {}

func (x *CreateJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateJobResponse.ProtoReflect.Descriptor instead.
func (*CreateJobResponse) Descriptor() ([]byte, []int) {
	return file_framescribe_v1_framescribe_proto_rawDescGZIP(), []int{4}
}

func (x *CreateJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_framescribe_v1_framescribe_proto_rawDescGZIP(), []int{5}
}

func (x *GetJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_framescribe_v1_framescribe_proto_rawDescGZIP(), []int{6}
}

func (x *GetJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type ListJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsRequest) Reset() {
	*x = ListJobsRequest{}
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsRequest) ProtoMessage() {}

func (x *ListJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsRequest.ProtoReflect.Descriptor instead.
func (*ListJobsRequest) Descriptor() ([]byte, []int) {
	return file_framescribe_v1_framescribe_proto_rawDescGZIP(), []int{7}
}

func (x *ListJobsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ListJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*Job                 `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsResponse) Reset() {
	*x = ListJobsResponse{}
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsResponse) ProtoMessage() {}

func (x *ListJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsResponse.ProtoReflect.Descriptor instead.
func (*ListJobsResponse) Descriptor() ([]byte, []int) {
	return file_framescribe_v1_framescribe_proto_rawDescGZIP(), []int{8}
}

func (x *ListJobsResponse) GetJobs() []*Job {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type RetryJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetryJobRequest) Reset() {
	*x = RetryJobRequest{}
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryJobRequest) ProtoMessage() {}

func (x *RetryJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryJobRequest.ProtoReflect.Descriptor instead.
func (*RetryJobRequest) Descriptor() ([]byte, []int) {
	return file_framescribe_v1_framescribe_proto_rawDescGZIP(), []int{9}
}

func (x *RetryJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type RetryJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetryJobResponse) Reset() {
	*x = RetryJobResponse{}
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryJobResponse) ProtoMessage() {}

func (x *RetryJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryJobResponse.ProtoReflect.Descriptor instead.
func (*RetryJobResponse) Descriptor() ([]byte, []int) {
	return file_framescribe_v1_framescribe_proto_rawDescGZIP(), []int{10}
}

func (x *RetryJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type ExportFramesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportFramesRequest) Reset() {
	*x = ExportFramesRequest{}
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportFramesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportFramesRequest) ProtoMessage() {}

func (x *ExportFramesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportFramesRequest.ProtoReflect.Descriptor instead.
func (*ExportFramesRequest) Descriptor() ([]byte, []int) {
	return file_framescribe_v1_framescribe_proto_rawDescGZIP(), []int{11}
}

func (x *ExportFramesRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type ExportFramesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportFramesResponse) Reset() {
	*x = ExportFramesResponse{}
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportFramesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportFramesResponse) ProtoMessage() {}

func (x *ExportFramesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportFramesResponse.ProtoReflect.Descriptor instead.
func (*ExportFramesResponse) Descriptor() ([]byte, []int) {
	return file_framescribe_v1_framescribe_proto_rawDescGZIP(), []int{12}
}

func (x *ExportFramesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type CreateProfileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProfileRequest) Reset() {
	*x = CreateProfileRequest{}
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileRequest) ProtoMessage() {}

func (x *CreateProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileRequest.ProtoReflect.Descriptor instead.
func (*CreateProfileRequest) Descriptor() ([]byte, []int) {
	return file_framescribe_v1_framescribe_proto_rawDescGZIP(), []int{13}
}

func (x *CreateProfileRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type CreateProfileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profile       *Profile               `protobuf:"bytes,1,opt,name=profile,proto3" json:"profile,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProfileResponse) Reset() {
	*x = CreateProfileResponse{}
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileResponse) ProtoMessage() {}

func (x *CreateProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileResponse.ProtoReflect.Descriptor instead.
func (*CreateProfileResponse) Descriptor() ([]byte, []int) {
	return file_framescribe_v1_framescribe_proto_rawDescGZIP(), []int{14}
}

func (x *CreateProfileResponse) GetProfile() *Profile {
	if x != nil {
		return x.Profile
	}
	return nil
}

type GetProfileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProfileRequest) Reset() {
	*x = GetProfileRequest{}
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProfileRequest) ProtoMessage() {}

func (x *GetProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProfileRequest.ProtoReflect.Descriptor instead.
func (*GetProfileRequest) Descriptor() ([]byte, []int) {
	return file_framescribe_v1_framescribe_proto_rawDescGZIP(), []int{15}
}

func (x *GetProfileRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

type GetProfileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profile       *Profile               `protobuf:"bytes,1,opt,name=profile,proto3" json:"profile,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProfileResponse) Reset() {
	*x = GetProfileResponse{}
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProfileResponse) ProtoMessage() {}

func (x *GetProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_framescribe_v1_framescribe_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProfileResponse.ProtoReflect.Descriptor instead.
func (*GetProfileResponse) Descriptor() ([]byte, []int) {
	return file_framescribe_v1_framescribe_proto_rawDescGZIP(), []int{16}
}

func (x *GetProfileResponse) GetProfile() *Profile {
	if x != nil {
		return x.Profile
	}
	return nil
}

var File_framescribe_v1_framescribe_proto protoreflect.FileDescriptor

const file_framescribe_v1_framescribe_proto_rawDesc = "" +
	"\n" +
	" framescribe/v1/framescribe.proto\x12\x0eframescribe.v1\"k\n" +
	"\aProfile\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1d\n" +
	"\n" +
	"created_at\x18\x03 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x04 \x01(\tR\tupdatedAt\"\xa5\x04\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x02 \x01(\tR\tprofileId\x12\"\n" +
	"\rparent_job_id\x18\x03 \x01(\tR\vparentJobId\x12\x12\n" +
	"\x04kind\x18\x04 \x01(\tR\x04kind\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x12\n" +
	"\x04step\x18\x06 \x01(\tR\x04step\x12#\n" +
	"\rerror_message\x18\a \x01(\tR\ferrorMessage\x12\x1f\n" +
	"\varchive_key\x18\b \x01(\tR\n" +
	"archiveKey\x12#\n" +
	"\rthumbnail_key\x18\t \x01(\tR\fthumbnailKey\x12 \n" +
	"\ftext_doc_key\x18\n" +
	" \x01(\tR\n" +
	"textDocKey\x12 \n" +
	"\frich_doc_key\x18\v \x01(\tR\n" +
	"richDocKey\x12!\n" +
	"\ftotal_images\x18\f \x01(\x05R\vtotalImages\x12)\n" +
	"\x10submitted_images\x18\r \x01(\x05R\x0fsubmittedImages\x12#\n" +
	"\rtotal_batches\x18\x0e \x01(\x05R\ftotalBatches\x12+\n" +
	"\x11completed_batches\x18\x0f \x01(\x05R\x10completedBatches\x12\x1d\n" +
	"\n" +
	"created_at\x18\x10 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x11 \x01(\tR\tupdatedAt\"\x9a\x01\n" +
	"\x05Frame\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12\x19\n" +
	"\bbase_key\x18\x04 \x01(\tR\abaseKey\x12\x1f\n" +
	"\vframe_index\x18\x05 \x01(\x05R\n" +
	"frameIndex\x12\x12\n" +
	"\x04text\x18\x06 \x01(\tR\x04text\"\x8a\x01\n" +
	"\x10CreateJobRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x12\n" +
	"\x04kind\x18\x02 \x01(\tR\x04kind\x12\x1f\n" +
	"\varchive_key\x18\x03 \x01(\tR\n" +
	"archiveKey\x12\"\n" +
	"\rparent_job_id\x18\x04 \x01(\tR\vparentJobId\":\n" +
	"\x11CreateJobResponse\x12%\n" +
	"\x03job\x18\x01 \x01(\v2\x13.framescribe.v1.JobR\x03job\"&\n" +
	"\rGetJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"7\n" +
	"\x0eGetJobResponse\x12%\n" +
	"\x03job\x18\x01 \x01(\v2\x13.framescribe.v1.JobR\x03job\")\n" +
	"\x0fListJobsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\";\n" +
	"\x10ListJobsResponse\x12'\n" +
	"\x04jobs\x18\x01 \x03(\v2\x13.framescribe.v1.JobR\x04jobs\"(\n" +
	"\x0fRetryJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"9\n" +
	"\x10RetryJobResponse\x12%\n" +
	"\x03job\x18\x01 \x01(\v2\x13.framescribe.v1.JobR\x03job\",\n" +
	"\x13ExportFramesRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"*\n" +
	"\x14ExportFramesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"*\n" +
	"\x14CreateProfileRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\"J\n" +
	"\x15CreateProfileResponse\x121\n" +
	"\aprofile\x18\x01 \x01(\v2\x17.framescribe.v1.ProfileR\aprofile\"2\n" +
	"\x11GetProfileRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\"G\n" +
	"\x12GetProfileResponse\x121\n" +
	"\aprofile\x18\x01 \x01(\v2\x17.framescribe.v1.ProfileR\aprofile2\xa0\x03\n" +
	"\n" +
	"JobService\x12P\n" +
	"\tCreateJob\x12 .framescribe.v1.CreateJobRequest\x1a!.framescribe.v1.CreateJobResponse\x12G\n" +
	"\x06GetJob\x12\x1d.framescribe.v1.GetJobRequest\x1a\x1e.framescribe.v1.GetJobResponse\x12M\n" +
	"\bListJobs\x12\x1f.framescribe.v1.ListJobsRequest\x1a .framescribe.v1.ListJobsResponse\x12M\n" +
	"\bRetryJob\x12\x1f.framescribe.v1.RetryJobRequest\x1a .framescribe.v1.RetryJobResponse\x12Y\n" +
	"\fExportFrames\x12#.framescribe.v1.ExportFramesRequest\x1a$.framescribe.v1.ExportFramesResponse2\xc4\x01\n" +
	"\x0fProfilesService\x12\\\n" +
	"\rCreateProfile\x12$.framescribe.v1.CreateProfileRequest\x1a%.framescribe.v1.CreateProfileResponse\x12S\n" +
	"\n" +
	"GetProfile\x12!.framescribe.v1.GetProfileRequest\x1a\".framescribe.v1.GetProfileResponseB)Z'framescribe/gen/proto/framescribe/v1;v1b\x06proto3"

var (
	file_framescribe_v1_framescribe_proto_rawDescOnce sync.Once
	file_framescribe_v1_framescribe_proto_rawDescData []byte
)

func file_framescribe_v1_framescribe_proto_rawDescGZIP() []byte {
	file_framescribe_v1_framescribe_proto_rawDescOnce.Do(func() {
		file_framescribe_v1_framescribe_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_framescribe_v1_framescribe_proto_rawDesc), len(file_framescribe_v1_framescribe_proto_rawDesc)))
	})
	return file_framescribe_v1_framescribe_proto_rawDescData
}

var file_framescribe_v1_framescribe_proto_msgTypes = make([]protoimpl.MessageInfo, 17)
var file_framescribe_v1_framescribe_proto_goTypes = []any{
	(*Profile)(nil),               // 0: framescribe.v1.Profile
	(*Job)(nil),                   // 1: framescribe.v1.Job
	(*Frame)(nil),                 // 2: framescribe.v1.Frame
	(*CreateJobRequest)(nil),      // 3: framescribe.v1.CreateJobRequest
	(*CreateJobResponse)(nil),     // 4: framescribe.v1.CreateJobResponse
	(*GetJobRequest)(nil),         // 5: framescribe.v1.GetJobRequest
	(*GetJobResponse)(nil),        // 6: framescribe.v1.GetJobResponse
	(*ListJobsRequest)(nil),       // 7: framescribe.v1.ListJobsRequest
	(*ListJobsResponse)(nil),      // 8: framescribe.v1.ListJobsResponse
	(*RetryJobRequest)(nil),       // 9: framescribe.v1.RetryJobRequest
	(*RetryJobResponse)(nil),      // 10: framescribe.v1.RetryJobResponse
	(*ExportFramesRequest)(nil),   // 11: framescribe.v1.ExportFramesRequest
	(*ExportFramesResponse)(nil),  // 12: framescribe.v1.ExportFramesResponse
	(*CreateProfileRequest)(nil),  // 13: framescribe.v1.CreateProfileRequest
	(*CreateProfileResponse)(nil), // 14: framescribe.v1.CreateProfileResponse
	(*GetProfileRequest)(nil),     // 15: framescribe.v1.GetProfileRequest
	(*GetProfileResponse)(nil),    // 16: framescribe.v1.GetProfileResponse
}
var file_framescribe_v1_framescribe_proto_depIdxs = []int32{
	1,  // 0: framescribe.v1.CreateJobResponse.job:type_name -> framescribe.v1.Job
	1,  // 1: framescribe.v1.GetJobResponse.job:type_name -> framescribe.v1.Job
	1,  // 2: framescribe.v1.ListJobsResponse.jobs:type_name -> framescribe.v1.Job
	1,  // 3: framescribe.v1.RetryJobResponse.job:type_name -> framescribe.v1.Job
	0,  // 4: framescribe.v1.CreateProfileResponse.profile:type_name -> framescribe.v1.Profile
	0,  // 5: framescribe.v1.GetProfileResponse.profile:type_name -> framescribe.v1.Profile
	3,  // 6: framescribe.v1.JobService.CreateJob:input_type -> framescribe.v1.CreateJobRequest
	5,  // 7: framescribe.v1.JobService.GetJob:input_type -> framescribe.v1.GetJobRequest
	7,  // 8: framescribe.v1.JobService.ListJobs:input_type -> framescribe.v1.ListJobsRequest
	9,  // 9: framescribe.v1.JobService.RetryJob:input_type -> framescribe.v1.RetryJobRequest
	11, // 10: framescribe.v1.JobService.ExportFrames:input_type -> framescribe.v1.ExportFramesRequest
	13, // 11: framescribe.v1.ProfilesService.CreateProfile:input_type -> framescribe.v1.CreateProfileRequest
	15, // 12: framescribe.v1.ProfilesService.GetProfile:input_type -> framescribe.v1.GetProfileRequest
	4,  // 13: framescribe.v1.JobService.CreateJob:output_type -> framescribe.v1.CreateJobResponse
	6,  // 14: framescribe.v1.JobService.GetJob:output_type -> framescribe.v1.GetJobResponse
	8,  // 15: framescribe.v1.JobService.ListJobs:output_type -> framescribe.v1.ListJobsResponse
	10, // 16: framescribe.v1.JobService.RetryJob:output_type -> framescribe.v1.RetryJobResponse
	12, // 17: framescribe.v1.JobService.ExportFrames:output_type -> framescribe.v1.ExportFramesResponse
	14, // 18: framescribe.v1.ProfilesService.CreateProfile:output_type -> framescribe.v1.CreateProfileResponse
	16, // 19: framescribe.v1.ProfilesService.GetProfile:output_type -> framescribe.v1.GetProfileResponse
	13, // [13:20] is the sub-list for method output_type
	6,  // [6:13] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_framescribe_v1_framescribe_proto_init() }
func file_framescribe_v1_framescribe_proto_init() {
	if File_framescribe_v1_framescribe_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_framescribe_v1_framescribe_proto_rawDesc), len(file_framescribe_v1_framescribe_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   17,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_framescribe_v1_framescribe_proto_goTypes,
		DependencyIndexes: file_framescribe_v1_framescribe_proto_depIdxs,
		MessageInfos:      file_framescribe_v1_framescribe_proto_msgTypes,
	}.Build()
	File_framescribe_v1_framescribe_proto = out.File
	file_framescribe_v1_framescribe_proto_goTypes = nil
	file_framescribe_v1_framescribe_proto_depIdxs = nil
}
