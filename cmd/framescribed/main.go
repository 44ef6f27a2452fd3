package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"framescribe/constants"
	"framescribe/gen/proto/framescribe/v1"
	"framescribe/internal/archive"
	"framescribe/internal/async"
	"framescribe/internal/common"
	"framescribe/internal/credentials"
	"framescribe/internal/inference/openai"
	"framescribe/internal/jobs"
	"framescribe/internal/manifest"
	"framescribe/internal/pipeline"
	"framescribe/internal/profiles"
	repo "framescribe/internal/repository"
	svc "framescribe/internal/server"
	"framescribe/internal/storage"
	"framescribe/internal/transform"
)

func main() {
	// Setup structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time and level attributes, keep message and other variables
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewS3Store(storage.Config{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
	}, logger)
	if err != nil {
		logger.Error("failed to init object store", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.Pipeline.WorkDir, 0o755); err != nil {
		logger.Error("failed to create work dir", "dir", cfg.Pipeline.WorkDir, "error", err)
		os.Exit(1)
	}
	man, err := manifest.Open(cfg.Pipeline.ManifestPath, logger)
	if err != nil {
		logger.Error("failed to open manifest store", "path", cfg.Pipeline.ManifestPath, "error", err)
		os.Exit(1)
	}
	defer man.Close()

	profilesRepo := repo.NewProfileRepository(entc, logger)
	jobsRepo := repo.NewJobRepository(entc, logger)
	framesRepo := repo.NewFrameRepository(entc, logger)
	batchesRepo := repo.NewBatchRepository(entc, logger)
	stepsRepo := repo.NewStepRepository(entc, logger)

	resolver := credentials.NewProfileResolver(profilesRepo, openai.Config{
		BaseURL:          cfg.Inference.BaseURL,
		Timeout:          cfg.Inference.Timeout,
		CompletionWindow: cfg.Inference.CompletionWindow,
	}, cfg.Inference.APIKey, logger)

	builders := map[constants.JobKind]pipeline.ArchiveBuilder{
		constants.JobKindOCR: archive.NewBuilder(store, transform.Passthrough,
			cfg.Pipeline.SignedURLTTL, cfg.Pipeline.WorkDir, logger),
		constants.JobKindSubtitleRemoval: archive.NewBuilder(store, transform.CropSubtitleRegion,
			cfg.Pipeline.SignedURLTTL, cfg.Pipeline.WorkDir, logger),
	}

	processor := pipeline.NewProcessor(jobsRepo, framesRepo, batchesRepo, stepsRepo,
		man, store, resolver, builders, pipeline.Config{
			StartBatchSize:  cfg.Pipeline.StartBatchSize,
			PollInterval:    cfg.Pipeline.PollInterval,
			SignedURLTTL:    cfg.Pipeline.SignedURLTTL,
			WorkDir:         cfg.Pipeline.WorkDir,
			Model:           cfg.Inference.Model,
			PurgeScanMargin: cfg.Pipeline.PurgeScanMargin,
		}, logger)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
	)

	jobsService := jobs.NewService(jobsRepo, framesRepo, profilesRepo, queue, logger)
	profilesService := profiles.NewService(profilesRepo, logger)

	// pick up whatever a previous process left mid-flight
	if _, err := jobsService.ResumeInterrupted(ctx); err != nil {
		logger.Error("resume scan failed", "error", err)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	v1.RegisterJobServiceServer(grpcServer, svc.NewJobServer(jobsService, logger))
	v1.RegisterProfilesServiceServer(grpcServer, svc.NewProfileServer(profilesService, logger))

	// Register gRPC health service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	// Set the service as serving (empty string means overall server health)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("framescribed listening", "addr", addr)
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
