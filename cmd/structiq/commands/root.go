package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/OnteruYallaiah21/StrcuctIq/gen/ent"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/common"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/core"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/datastore"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/export"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/extract"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/llm"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/llm/groq"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/ocr"
	repo "github.com/OnteruYallaiah21/StrcuctIq/internal/repository"
)

var (
	logLevel  string
	dsn       string
	withModel bool

	appCtx *appContext
)

type appContext struct {
	cfg       *common.Config
	logger    *slog.Logger
	entc      *ent.Client
	pool      *pgxpool.Pool
	receipts  repo.ReceiptRepository
	jobs      repo.ExtractJobRepository
	processor *core.Processor
	exporter  *export.Service
}

func Execute() error {
	root := &cobra.Command{
		Use:           "structiq",
		Short:         "Turn receipt text and scans into structured records",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: parseLevel(logLevel),
			}))
			slog.SetDefault(logger)

			cfg := common.LoadConfig()
			if dsn != "" {
				cfg.Database.DSN = dsn
			}
			if cfg.Database.DSN == "" {
				// embedded default so the CLI works without a server
				cfg.Database.DSN = "sqlite://structiq.db"
			}

			entc, pool, err := repo.Open(cmd.Context(), cfg.Database, logger)
			if err != nil {
				return err
			}
			// the CLI owns its database, so migrate on startup
			if err := entc.Schema.Create(cmd.Context()); err != nil {
				repo.Close(entc, pool, logger)
				return err
			}

			receipts := repo.NewReceiptRepository(entc, logger)
			jobs := repo.NewExtractJobRepository(entc, logger)

			snapshots, err := datastore.NewStore(cfg.Data.Dir, logger)
			if err != nil {
				repo.Close(entc, pool, logger)
				return err
			}

			extractor := ocr.NewExtractor(ocr.Config{
				Pdftotext:     cfg.OCR.PDFToText,
				Tesseract:     cfg.OCR.Tesseract,
				TesseractLang: cfg.OCR.TesseractLang,
			}, logger)

			var model extract.ModelExtractor
			if withModel {
				client, err := groq.NewClient(groq.Config{
					APIKey:      cfg.LLM.APIKey,
					BaseURL:     cfg.LLM.BaseURL,
					Model:       cfg.LLM.Model,
					Temperature: cfg.LLM.Temperature,
					Timeout:     cfg.LLM.Timeout,
				}, llm.NewMemoryCache(cfg.LLM.CacheTTL), logger)
				if err != nil {
					repo.Close(entc, pool, logger)
					return err
				}
				model = client
			}

			cascade := extract.NewCascade(model, logger)
			appCtx = &appContext{
				cfg:       cfg,
				logger:    logger,
				entc:      entc,
				pool:      pool,
				receipts:  receipts,
				jobs:      jobs,
				processor: core.NewProcessor(logger, extractor, cascade, receipts, jobs, snapshots, cfg.LLM.Model),
				exporter:  export.NewService(receipts, logger),
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				repo.Close(appCtx.entc, appCtx.pool, appCtx.logger)
			}
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&dsn, "db", "", "database DSN (default $DB_URL, falling back to sqlite://structiq.db)")
	root.PersistentFlags().BoolVar(&withModel, "model", false, "enable the model-backed extraction path (needs GROQ_API_KEY)")

	root.AddCommand(parseCmd(), ingestCmd(), exportCmd())
	return root.ExecuteContext(context.Background())
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
