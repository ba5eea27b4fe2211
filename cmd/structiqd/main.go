package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	structiqpb "github.com/OnteruYallaiah21/StrcuctIq/gen/proto/structiq/v1"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/async"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/common"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/core"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/datastore"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/export"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/extract"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/llm"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/llm/groq"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/ocr"
	repo "github.com/OnteruYallaiah21/StrcuctIq/internal/repository"
	svc "github.com/OnteruYallaiah21/StrcuctIq/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(),
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	receiptsRepo := repo.NewReceiptRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)

	snapshots, err := datastore.NewStore(cfg.Data.Dir, logger)
	if err != nil {
		logger.Error("failed to prepare data directory", "dir", cfg.Data.Dir, "error", err)
		os.Exit(1)
	}

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.OCR.PDFToText,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
	}, logger)

	// With no API key the cascade runs on its regex strategies alone.
	var model extract.ModelExtractor
	if cfg.LLM.APIKey != "" {
		client, err := groq.NewClient(groq.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, llm.NewMemoryCache(cfg.LLM.CacheTTL), logger)
		if err != nil {
			logger.Error("failed to build model client", "error", err)
			os.Exit(1)
		}
		model = client
	} else {
		logger.Warn("GROQ_API_KEY not set, model path disabled")
	}

	cascade := extract.NewCascade(model, logger)
	processor := core.NewProcessor(logger, extractor, cascade, receiptsRepo, jobsRepo, snapshots, cfg.LLM.Model)
	exporter := export.NewService(receiptsRepo, logger)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(6),
		async.WithQueueSize(512),
		async.WithProcessTimeout(3*time.Minute),
	)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	receiptsService := svc.NewReceiptService(processor, receiptsRepo, exporter, queue, logger)
	structiqpb.RegisterReceiptsServiceServer(grpcServer, receiptsService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("structiqd listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}

func logLevel() slog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
