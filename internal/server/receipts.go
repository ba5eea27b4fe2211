package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	structiqpb "github.com/OnteruYallaiah21/StrcuctIq/gen/proto/structiq/v1"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/async"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/common"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/core"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/export"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/repository"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/utils"
)

type ReceiptService struct {
	structiqpb.UnimplementedReceiptsServiceServer
	processor   *core.Processor
	receiptRepo repository.ReceiptRepository
	exporter    *export.Service
	queue       async.Queue
	logger      *slog.Logger
}

func NewReceiptService(processor *core.Processor, receiptRepo repository.ReceiptRepository, exporter *export.Service, queue async.Queue, logger *slog.Logger) *ReceiptService {
	return &ReceiptService{
		processor:   processor,
		receiptRepo: receiptRepo,
		exporter:    exporter,
		queue:       queue,
		logger:      logger,
	}
}

func (s *ReceiptService) ProcessText(ctx context.Context, req *structiqpb.ProcessTextRequest) (*structiqpb.ProcessTextResponse, error) {
	text := req.GetText()
	if strings.TrimSpace(text) == "" {
		s.logger.Error("process text request missing text")
		return nil, status.Error(codes.InvalidArgument, "text is required")
	}
	source := strings.TrimSpace(req.GetSource())
	if source == "" {
		source = "api"
	}

	rec, job, err := s.processor.ProcessText(ctx, source, text)
	if err != nil {
		s.logger.Error("process text failed", "source", source, "error", err)
		return nil, status.Errorf(codes.Internal, "process text: %v", err)
	}
	return &structiqpb.ProcessTextResponse{
		Receipt: utils.ToPBReceipt(rec),
		Job:     utils.ToPBExtractJob(job),
	}, nil
}

func (s *ReceiptService) ProcessFile(ctx context.Context, req *structiqpb.ProcessFileRequest) (*structiqpb.ProcessFileResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("process file request missing path")
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	s.logger.Info("starting file processing", "path", path)
	rec, job, err := s.processor.ProcessFile(ctx, path)
	if err != nil {
		s.logger.Error("process file failed", "path", path, "error", err)
		return nil, status.Errorf(codes.Internal, "process file: %v", err)
	}
	return &structiqpb.ProcessFileResponse{
		Receipt: utils.ToPBReceipt(rec),
		Job:     utils.ToPBExtractJob(job),
	}, nil
}

func (s *ReceiptService) IngestDirectory(ctx context.Context, req *structiqpb.IngestDirectoryRequest) (*structiqpb.IngestDirectoryResponse, error) {
	dir := strings.TrimSpace(req.GetDir())
	if dir == "" {
		s.logger.Error("ingest request missing dir")
		return nil, status.Error(codes.InvalidArgument, "dir is required")
	}

	s.logger.Info("starting directory ingest", "dir", dir)
	queued, err := async.EnqueueDir(ctx, s.queue, dir)
	if err != nil {
		s.logger.Error("directory ingest failed", "dir", dir, "error", err)
		return nil, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}
	s.logger.Info("directory ingest queued", "dir", dir, "queued", queued)

	return &structiqpb.IngestDirectoryResponse{Queued: int32(queued)}, nil
}

func (s *ReceiptService) ListReceipts(ctx context.Context, req *structiqpb.ListReceiptsRequest) (*structiqpb.ListReceiptsResponse, error) {
	fromDate, toDate, err := parseWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	s.logger.Info("listing receipts", "from_date", fromDate, "to_date", toDate)
	recs, err := s.receiptRepo.ListReceipts(ctx, fromDate, toDate)
	if err != nil {
		s.logger.Error("failed to list receipts", "error", err)
		return nil, status.Errorf(codes.Internal, "list receipts: %v", err)
	}
	s.logger.Info("receipts listed successfully", "count", len(recs))

	out := make([]*structiqpb.Receipt, 0, len(recs))
	for _, r := range recs {
		out = append(out, utils.ToPBReceipt(r))
	}
	return &structiqpb.ListReceiptsResponse{Receipts: out}, nil
}

func (s *ReceiptService) GetReceipt(ctx context.Context, req *structiqpb.GetReceiptRequest) (*structiqpb.GetReceiptResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		s.logger.Error("invalid receipt id", "id", req.GetId(), "error", err)
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}

	rec, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		if common.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "receipt not found")
		}
		s.logger.Error("failed to get receipt", "receipt_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "get receipt: %v", err)
	}
	return &structiqpb.GetReceiptResponse{Receipt: utils.ToPBReceipt(rec)}, nil
}

func (s *ReceiptService) ExportReceipts(ctx context.Context, req *structiqpb.ExportReceiptsRequest) (*structiqpb.ExportReceiptsResponse, error) {
	fromDate, toDate, err := parseWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.exporter.ExportReceiptsXLSX(ctx, fromDate, toDate)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, status.Errorf(codes.Internal, "export receipts: %v", err)
	}

	return &structiqpb.ExportReceiptsResponse{
		Xlsx:     xlsx,
		Filename: "receipts-" + time.Now().UTC().Format("20060102-150405") + ".xlsx",
	}, nil
}

func parseWindow(from, to string) (*time.Time, *time.Time, error) {
	var fromDate, toDate *time.Time
	if fd := strings.TrimSpace(from); fd != "" {
		t, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, nil, status.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", err)
		}
		fromDate = &t
	}
	if td := strings.TrimSpace(to); td != "" {
		t, err := utils.ParseYMD(td)
		if err != nil {
			return nil, nil, status.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", err)
		}
		toDate = &t
	}
	return fromDate, toDate, nil
}
