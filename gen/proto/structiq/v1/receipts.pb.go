// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: structiq/v1/receipts.proto

package structiqpb

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

type ReceiptItem struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Id       string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ItemName string                 `protobuf:"bytes,2,opt,name=item_name,json=itemName,proto3" json:"item_name,omitempty"`
	// decimal as string, e.g. "3.48"
	ItemPrice     string `protobuf:"bytes,3,opt,name=item_price,json=itemPrice,proto3" json:"item_price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReceiptItem) Reset() {
	*x = ReceiptItem{}
	mi := &file_structiq_v1_receipts_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReceiptItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReceiptItem) ProtoMessage() {}

func (x *ReceiptItem) ProtoReflect() protoreflect.Message {
	mi := &file_structiq_v1_receipts_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReceiptItem.ProtoReflect.Descriptor instead.
func (*ReceiptItem) Descriptor() ([]byte, []int) {
	return file_structiq_v1_receipts_proto_rawDescGZIP(), []int{0}
}

func (x *ReceiptItem) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ReceiptItem) GetItemName() string {
	if x != nil {
		return x.ItemName
	}
	return ""
}

func (x *ReceiptItem) GetItemPrice() string {
	if x != nil {
		return x.ItemPrice
	}
	return ""
}

type Receipt struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	Id        string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	StoreName string                 `protobuf:"bytes,2,opt,name=store_name,json=storeName,proto3" json:"store_name,omitempty"`
	// YYYY-MM-DD, empty when unknown
	Date string `protobuf:"bytes,3,opt,name=date,proto3" json:"date,omitempty"`
	// HH:MM:SS, empty when unknown
	Time             string         `protobuf:"bytes,4,opt,name=time,proto3" json:"time,omitempty"`
	Items            []*ReceiptItem `protobuf:"bytes,5,rep,name=items,proto3" json:"items,omitempty"`
	Subtotal         string         `protobuf:"bytes,6,opt,name=subtotal,proto3" json:"subtotal,omitempty"`
	Tax              string         `protobuf:"bytes,7,opt,name=tax,proto3" json:"tax,omitempty"`
	Total            string         `protobuf:"bytes,8,opt,name=total,proto3" json:"total,omitempty"`
	PaymentMethod    string         `protobuf:"bytes,9,opt,name=payment_method,json=paymentMethod,proto3" json:"payment_method,omitempty"`
	Cashier          string         `protobuf:"bytes,10,opt,name=cashier,proto3" json:"cashier,omitempty"`
	ConfidenceScore  float64        `protobuf:"fixed64,11,opt,name=confidence_score,json=confidenceScore,proto3" json:"confidence_score,omitempty"`
	ExtractionMethod string         `protobuf:"bytes,12,opt,name=extraction_method,json=extractionMethod,proto3" json:"extraction_method,omitempty"`
	CreatedAt        string         `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt        string         `protobuf:"bytes,14,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Receipt) Reset() {
	*x = Receipt{}
	mi := &file_structiq_v1_receipts_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Receipt) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Receipt) ProtoMessage() {}

func (x *Receipt) ProtoReflect() protoreflect.Message {
	mi := &file_structiq_v1_receipts_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Receipt.ProtoReflect.Descriptor instead.
func (*Receipt) Descriptor() ([]byte, []int) {
	return file_structiq_v1_receipts_proto_rawDescGZIP(), []int{1}
}

func (x *Receipt) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Receipt) GetStoreName() string {
	if x != nil {
		return x.StoreName
	}
	return ""
}

func (x *Receipt) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *Receipt) GetTime() string {
	if x != nil {
		return x.Time
	}
	return ""
}

func (x *Receipt) GetItems() []*ReceiptItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *Receipt) GetSubtotal() string {
	if x != nil {
		return x.Subtotal
	}
	return ""
}

func (x *Receipt) GetTax() string {
	if x != nil {
		return x.Tax
	}
	return ""
}

func (x *Receipt) GetTotal() string {
	if x != nil {
		return x.Total
	}
	return ""
}

func (x *Receipt) GetPaymentMethod() string {
	if x != nil {
		return x.PaymentMethod
	}
	return ""
}

func (x *Receipt) GetCashier() string {
	if x != nil {
		return x.Cashier
	}
	return ""
}

func (x *Receipt) GetConfidenceScore() float64 {
	if x != nil {
		return x.ConfidenceScore
	}
	return 0
}

func (x *Receipt) GetExtractionMethod() string {
	if x != nil {
		return x.ExtractionMethod
	}
	return ""
}

func (x *Receipt) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Receipt) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ExtractJob struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	Id                   string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ReceiptId            string                 `protobuf:"bytes,2,opt,name=receipt_id,json=receiptId,proto3" json:"receipt_id,omitempty"`
	Source               string                 `protobuf:"bytes,3,opt,name=source,proto3" json:"source,omitempty"`
	Format               string                 `protobuf:"bytes,4,opt,name=format,proto3" json:"format,omitempty"`
	Status               string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	StartedAt            string                 `protobuf:"bytes,6,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt           string                 `protobuf:"bytes,7,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	ErrorMessage         string                 `protobuf:"bytes,8,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	ExtractionConfidence float64                `protobuf:"fixed64,9,opt,name=extraction_confidence,json=extractionConfidence,proto3" json:"extraction_confidence,omitempty"`
	ExtractionMethod     string                 `protobuf:"bytes,10,opt,name=extraction_method,json=extractionMethod,proto3" json:"extraction_method,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *ExtractJob) Reset() {
	*x = ExtractJob{}
	mi := &file_structiq_v1_receipts_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractJob) ProtoMessage() {}

func (x *ExtractJob) ProtoReflect() protoreflect.Message {
	mi := &file_structiq_v1_receipts_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractJob.ProtoReflect.Descriptor instead.
func (*ExtractJob) Descriptor() ([]byte, []int) {
	return file_structiq_v1_receipts_proto_rawDescGZIP(), []int{2}
}

func (x *ExtractJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ExtractJob) GetReceiptId() string {
	if x != nil {
		return x.ReceiptId
	}
	return ""
}

func (x *ExtractJob) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *ExtractJob) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *ExtractJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExtractJob) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *ExtractJob) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

func (x *ExtractJob) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ExtractJob) GetExtractionConfidence() float64 {
	if x != nil {
		return x.ExtractionConfidence
	}
	return 0
}

func (x *ExtractJob) GetExtractionMethod() string {
	if x != nil {
		return x.ExtractionMethod
	}
	return ""
}

type ProcessTextRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Text  string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	// free-form label for where the text came from
	Source        string `protobuf:"bytes,2,opt,name=source,proto3" json:"source,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessTextRequest) Reset() {
	*x = ProcessTextRequest{}
	mi := &file_structiq_v1_receipts_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessTextRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessTextRequest) ProtoMessage() {}

func (x *ProcessTextRequest) ProtoReflect() protoreflect.Message {
	mi := &file_structiq_v1_receipts_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessTextRequest.ProtoReflect.Descriptor instead.
func (*ProcessTextRequest) Descriptor() ([]byte, []int) {
	return file_structiq_v1_receipts_proto_rawDescGZIP(), []int{3}
}

func (x *ProcessTextRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *ProcessTextRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

type ProcessTextResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipt       *Receipt               `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	Job           *ExtractJob            `protobuf:"bytes,2,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessTextResponse) Reset() {
	*x = ProcessTextResponse{}
	mi := &file_structiq_v1_receipts_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessTextResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessTextResponse) ProtoMessage() {}

func (x *ProcessTextResponse) ProtoReflect() protoreflect.Message {
	mi := &file_structiq_v1_receipts_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessTextResponse.ProtoReflect.Descriptor instead.
func (*ProcessTextResponse) Descriptor() ([]byte, []int) {
	return file_structiq_v1_receipts_proto_rawDescGZIP(), []int{4}
}

func (x *ProcessTextResponse) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

func (x *ProcessTextResponse) GetJob() *ExtractJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type ProcessFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessFileRequest) Reset() {
	*x = ProcessFileRequest{}
	mi := &file_structiq_v1_receipts_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessFileRequest) ProtoMessage() {}

func (x *ProcessFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_structiq_v1_receipts_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessFileRequest.ProtoReflect.Descriptor instead.
func (*ProcessFileRequest) Descriptor() ([]byte, []int) {
	return file_structiq_v1_receipts_proto_rawDescGZIP(), []int{5}
}

func (x *ProcessFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type ProcessFileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipt       *Receipt               `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	Job           *ExtractJob            `protobuf:"bytes,2,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessFileResponse) Reset() {
	*x = ProcessFileResponse{}
	mi := &file_structiq_v1_receipts_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessFileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessFileResponse) ProtoMessage() {}

func (x *ProcessFileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_structiq_v1_receipts_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessFileResponse.ProtoReflect.Descriptor instead.
func (*ProcessFileResponse) Descriptor() ([]byte, []int) {
	return file_structiq_v1_receipts_proto_rawDescGZIP(), []int{6}
}

func (x *ProcessFileResponse) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

func (x *ProcessFileResponse) GetJob() *ExtractJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type IngestDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Dir           string                 `protobuf:"bytes,1,opt,name=dir,proto3" json:"dir,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_structiq_v1_receipts_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_structiq_v1_receipts_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_structiq_v1_receipts_proto_rawDescGZIP(), []int{7}
}

func (x *IngestDirectoryRequest) GetDir() string {
	if x != nil {
		return x.Dir
	}
	return ""
}

type IngestDirectoryResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// number of files queued for processing
	Queued        int32 `protobuf:"varint,1,opt,name=queued,proto3" json:"queued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_structiq_v1_receipts_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_structiq_v1_receipts_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_structiq_v1_receipts_proto_rawDescGZIP(), []int{8}
}

func (x *IngestDirectoryResponse) GetQueued() int32 {
	if x != nil {
		return x.Queued
	}
	return 0
}

type ListReceiptsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// YYYY-MM-DD, inclusive; empty means unbounded
	FromDate      string `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReceiptsRequest) Reset() {
	*x = ListReceiptsRequest{}
	mi := &file_structiq_v1_receipts_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReceiptsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReceiptsRequest) ProtoMessage() {}

func (x *ListReceiptsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_structiq_v1_receipts_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReceiptsRequest.ProtoReflect.Descriptor instead.
func (*ListReceiptsRequest) Descriptor() ([]byte, []int) {
	return file_structiq_v1_receipts_proto_rawDescGZIP(), []int{9}
}

func (x *ListReceiptsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListReceiptsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListReceiptsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipts      []*Receipt             `protobuf:"bytes,1,rep,name=receipts,proto3" json:"receipts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReceiptsResponse) Reset() {
	*x = ListReceiptsResponse{}
	mi := &file_structiq_v1_receipts_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReceiptsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReceiptsResponse) ProtoMessage() {}

func (x *ListReceiptsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_structiq_v1_receipts_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReceiptsResponse.ProtoReflect.Descriptor instead.
func (*ListReceiptsResponse) Descriptor() ([]byte, []int) {
	return file_structiq_v1_receipts_proto_rawDescGZIP(), []int{10}
}

func (x *ListReceiptsResponse) GetReceipts() []*Receipt {
	if x != nil {
		return x.Receipts
	}
	return nil
}

type GetReceiptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReceiptRequest) Reset() {
	*x = GetReceiptRequest{}
	mi := &file_structiq_v1_receipts_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReceiptRequest) ProtoMessage() {}

func (x *GetReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_structiq_v1_receipts_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReceiptRequest.ProtoReflect.Descriptor instead.
func (*GetReceiptRequest) Descriptor() ([]byte, []int) {
	return file_structiq_v1_receipts_proto_rawDescGZIP(), []int{11}
}

func (x *GetReceiptRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipt       *Receipt               `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReceiptResponse) Reset() {
	*x = GetReceiptResponse{}
	mi := &file_structiq_v1_receipts_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReceiptResponse) ProtoMessage() {}

func (x *GetReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_structiq_v1_receipts_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReceiptResponse.ProtoReflect.Descriptor instead.
func (*GetReceiptResponse) Descriptor() ([]byte, []int) {
	return file_structiq_v1_receipts_proto_rawDescGZIP(), []int{12}
}

func (x *GetReceiptResponse) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

type ExportReceiptsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReceiptsRequest) Reset() {
	*x = ExportReceiptsRequest{}
	mi := &file_structiq_v1_receipts_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReceiptsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReceiptsRequest) ProtoMessage() {}

func (x *ExportReceiptsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_structiq_v1_receipts_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReceiptsRequest.ProtoReflect.Descriptor instead.
func (*ExportReceiptsRequest) Descriptor() ([]byte, []int) {
	return file_structiq_v1_receipts_proto_rawDescGZIP(), []int{13}
}

func (x *ExportReceiptsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportReceiptsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportReceiptsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReceiptsResponse) Reset() {
	*x = ExportReceiptsResponse{}
	mi := &file_structiq_v1_receipts_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReceiptsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReceiptsResponse) ProtoMessage() {}

func (x *ExportReceiptsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_structiq_v1_receipts_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReceiptsResponse.ProtoReflect.Descriptor instead.
func (*ExportReceiptsResponse) Descriptor() ([]byte, []int) {
	return file_structiq_v1_receipts_proto_rawDescGZIP(), []int{14}
}

func (x *ExportReceiptsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportReceiptsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_structiq_v1_receipts_proto protoreflect.FileDescriptor

const file_structiq_v1_receipts_proto_rawDesc = "" +
	"\n" +
	"\x1astructiq/v1/receipts.proto\x12\vstructiq.v1\"Y\n" +
	"\vReceiptItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\titem_name\x18\x02 \x01(\tR\bitemName\x12\x1d\n" +
	"\n" +
	"item_price\x18\x03 \x01(\tR\titemPrice\"\xab\x03\n" +
	"\aReceipt\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"store_name\x18\x02 \x01(\tR\tstoreName\x12\x12\n" +
	"\x04date\x18\x03 \x01(\tR\x04date\x12\x12\n" +
	"\x04time\x18\x04 \x01(\tR\x04time\x12.\n" +
	"\x05items\x18\x05 \x03(\v2\x18.structiq.v1.ReceiptItemR\x05items\x12\x1a\n" +
	"\bsubtotal\x18\x06 \x01(\tR\bsubtotal\x12\x10\n" +
	"\x03tax\x18\a \x01(\tR\x03tax\x12\x14\n" +
	"\x05total\x18\b \x01(\tR\x05total\x12%\n" +
	"\x0epayment_method\x18\t \x01(\tR\rpaymentMethod\x12\x18\n" +
	"\acashier\x18\n" +
	" \x01(\tR\acashier\x12)\n" +
	"\x10confidence_score\x18\v \x01(\x01R\x0fconfidenceScore\x12+\n" +
	"\x11extraction_method\x18\f \x01(\tR\x10extractionMethod\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x0e \x01(\tR\tupdatedAt\"\xca\x02\n" +
	"\n" +
	"ExtractJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"receipt_id\x18\x02 \x01(\tR\treceiptId\x12\x16\n" +
	"\x06source\x18\x03 \x01(\tR\x06source\x12\x16\n" +
	"\x06format\x18\x04 \x01(\tR\x06format\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"started_at\x18\x06 \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\a \x01(\tR\n" +
	"finishedAt\x12#\n" +
	"\rerror_message\x18\b \x01(\tR\ferrorMessage\x123\n" +
	"\x15extraction_confidence\x18\t \x01(\x01R\x14extractionConfidence\x12+\n" +
	"\x11extraction_method\x18\n" +
	" \x01(\tR\x10extractionMethod\"@\n" +
	"\x12ProcessTextRequest\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12\x16\n" +
	"\x06source\x18\x02 \x01(\tR\x06source\"p\n" +
	"\x13ProcessTextResponse\x12.\n" +
	"\areceipt\x18\x01 \x01(\v2\x14.structiq.v1.ReceiptR\areceipt\x12)\n" +
	"\x03job\x18\x02 \x01(\v2\x17.structiq.v1.ExtractJobR\x03job\"(\n" +
	"\x12ProcessFileRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\"p\n" +
	"\x13ProcessFileResponse\x12.\n" +
	"\areceipt\x18\x01 \x01(\v2\x14.structiq.v1.ReceiptR\areceipt\x12)\n" +
	"\x03job\x18\x02 \x01(\v2\x17.structiq.v1.ExtractJobR\x03job\"*\n" +
	"\x16IngestDirectoryRequest\x12\x10\n" +
	"\x03dir\x18\x01 \x01(\tR\x03dir\"1\n" +
	"\x17IngestDirectoryResponse\x12\x16\n" +
	"\x06queued\x18\x01 \x01(\x05R\x06queued\"K\n" +
	"\x13ListReceiptsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"H\n" +
	"\x14ListReceiptsResponse\x120\n" +
	"\breceipts\x18\x01 \x03(\v2\x14.structiq.v1.ReceiptR\breceipts\"#\n" +
	"\x11GetReceiptRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"D\n" +
	"\x12GetReceiptResponse\x12.\n" +
	"\areceipt\x18\x01 \x01(\v2\x14.structiq.v1.ReceiptR\areceipt\"M\n" +
	"\x15ExportReceiptsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"H\n" +
	"\x16ExportReceiptsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\x92\x04\n" +
	"\x0fReceiptsService\x12P\n" +
	"\vProcessText\x12\x1f.structiq.v1.ProcessTextRequest\x1a .structiq.v1.ProcessTextResponse\x12P\n" +
	"\vProcessFile\x12\x1f.structiq.v1.ProcessFileRequest\x1a .structiq.v1.ProcessFileResponse\x12\\\n" +
	"\x0fIngestDirectory\x12#.structiq.v1.IngestDirectoryRequest\x1a$.structiq.v1.IngestDirectoryResponse\x12S\n" +
	"\fListReceipts\x12 .structiq.v1.ListReceiptsRequest\x1a!.structiq.v1.ListReceiptsResponse\x12M\n" +
	"\n" +
	"GetReceipt\x12\x1e.structiq.v1.GetReceiptRequest\x1a\x1f.structiq.v1.GetReceiptResponse\x12Y\n" +
	"\x0eExportReceipts\x12\".structiq.v1.ExportReceiptsRequest\x1a#.structiq.v1.ExportReceiptsResponseBHZFgithub.com/OnteruYallaiah21/StrcuctIq/gen/proto/structiq/v1;structiqpbb\x06proto3"

var (
	file_structiq_v1_receipts_proto_rawDescOnce sync.Once
	file_structiq_v1_receipts_proto_rawDescData []byte
)

func file_structiq_v1_receipts_proto_rawDescGZIP() []byte {
	file_structiq_v1_receipts_proto_rawDescOnce.Do(func() {
		file_structiq_v1_receipts_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_structiq_v1_receipts_proto_rawDesc), len(file_structiq_v1_receipts_proto_rawDesc)))
	})
	return file_structiq_v1_receipts_proto_rawDescData
}

var file_structiq_v1_receipts_proto_msgTypes = make([]protoimpl.MessageInfo, 15)
var file_structiq_v1_receipts_proto_goTypes = []any{
	(*ReceiptItem)(nil),             // 0: structiq.v1.ReceiptItem
	(*Receipt)(nil),                 // 1: structiq.v1.Receipt
	(*ExtractJob)(nil),              // 2: structiq.v1.ExtractJob
	(*ProcessTextRequest)(nil),      // 3: structiq.v1.ProcessTextRequest
	(*ProcessTextResponse)(nil),     // 4: structiq.v1.ProcessTextResponse
	(*ProcessFileRequest)(nil),      // 5: structiq.v1.ProcessFileRequest
	(*ProcessFileResponse)(nil),     // 6: structiq.v1.ProcessFileResponse
	(*IngestDirectoryRequest)(nil),  // 7: structiq.v1.IngestDirectoryRequest
	(*IngestDirectoryResponse)(nil), // 8: structiq.v1.IngestDirectoryResponse
	(*ListReceiptsRequest)(nil),     // 9: structiq.v1.ListReceiptsRequest
	(*ListReceiptsResponse)(nil),    // 10: structiq.v1.ListReceiptsResponse
	(*GetReceiptRequest)(nil),       // 11: structiq.v1.GetReceiptRequest
	(*GetReceiptResponse)(nil),      // 12: structiq.v1.GetReceiptResponse
	(*ExportReceiptsRequest)(nil),   // 13: structiq.v1.ExportReceiptsRequest
	(*ExportReceiptsResponse)(nil),  // 14: structiq.v1.ExportReceiptsResponse
}
var file_structiq_v1_receipts_proto_depIdxs = []int32{
	0,  // 0: structiq.v1.Receipt.items:type_name -> structiq.v1.ReceiptItem
	1,  // 1: structiq.v1.ProcessTextResponse.receipt:type_name -> structiq.v1.Receipt
	2,  // 2: structiq.v1.ProcessTextResponse.job:type_name -> structiq.v1.ExtractJob
	1,  // 3: structiq.v1.ProcessFileResponse.receipt:type_name -> structiq.v1.Receipt
	2,  // 4: structiq.v1.ProcessFileResponse.job:type_name -> structiq.v1.ExtractJob
	1,  // 5: structiq.v1.ListReceiptsResponse.receipts:type_name -> structiq.v1.Receipt
	1,  // 6: structiq.v1.GetReceiptResponse.receipt:type_name -> structiq.v1.Receipt
	3,  // 7: structiq.v1.ReceiptsService.ProcessText:input_type -> structiq.v1.ProcessTextRequest
	5,  // 8: structiq.v1.ReceiptsService.ProcessFile:input_type -> structiq.v1.ProcessFileRequest
	7,  // 9: structiq.v1.ReceiptsService.IngestDirectory:input_type -> structiq.v1.IngestDirectoryRequest
	9,  // 10: structiq.v1.ReceiptsService.ListReceipts:input_type -> structiq.v1.ListReceiptsRequest
	11, // 11: structiq.v1.ReceiptsService.GetReceipt:input_type -> structiq.v1.GetReceiptRequest
	13, // 12: structiq.v1.ReceiptsService.ExportReceipts:input_type -> structiq.v1.ExportReceiptsRequest
	4,  // 13: structiq.v1.ReceiptsService.ProcessText:output_type -> structiq.v1.ProcessTextResponse
	6,  // 14: structiq.v1.ReceiptsService.ProcessFile:output_type -> structiq.v1.ProcessFileResponse
	8,  // 15: structiq.v1.ReceiptsService.IngestDirectory:output_type -> structiq.v1.IngestDirectoryResponse
	10, // 16: structiq.v1.ReceiptsService.ListReceipts:output_type -> structiq.v1.ListReceiptsResponse
	12, // 17: structiq.v1.ReceiptsService.GetReceipt:output_type -> structiq.v1.GetReceiptResponse
	14, // 18: structiq.v1.ReceiptsService.ExportReceipts:output_type -> structiq.v1.ExportReceiptsResponse
	13, // [13:19] is the sub-list for method output_type
	7,  // [7:13] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_structiq_v1_receipts_proto_init() }
func file_structiq_v1_receipts_proto_init() {
	if File_structiq_v1_receipts_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_structiq_v1_receipts_proto_rawDesc), len(file_structiq_v1_receipts_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   15,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_structiq_v1_receipts_proto_goTypes,
		DependencyIndexes: file_structiq_v1_receipts_proto_depIdxs,
		MessageInfos:      file_structiq_v1_receipts_proto_msgTypes,
	}.Build()
	File_structiq_v1_receipts_proto = out.File
	file_structiq_v1_receipts_proto_goTypes = nil
	file_structiq_v1_receipts_proto_depIdxs = nil
}
