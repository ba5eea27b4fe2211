package core

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/OnteruYallaiah21/StrcuctIq/constants"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/datastore"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/entity"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/extract"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/ocr"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/repository"
)

// Processor coordinates text acquisition, the extraction cascade, and
// persistence. Every run is tracked as an extract_job moving through
// QUEUED, RUNNING, TEXT_OK and finally PARSE_OK or FAILED.
type Processor struct {
	logger     *slog.Logger
	textSource *ocr.Extractor
	cascade    *extract.Cascade
	receipts   repository.ReceiptRepository
	jobs       repository.ExtractJobRepository
	snapshots  *datastore.Store
	modelName  string
}

func NewProcessor(
	logger *slog.Logger,
	textSource *ocr.Extractor,
	cascade *extract.Cascade,
	receipts repository.ReceiptRepository,
	jobs repository.ExtractJobRepository,
	snapshots *datastore.Store,
	modelName string,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:     logger,
		textSource: textSource,
		cascade:    cascade,
		receipts:   receipts,
		jobs:       jobs,
		snapshots:  snapshots,
		modelName:  modelName,
	}
}

// ProcessText runs the cascade over already-acquired text. The source
// label names where the text came from ("stdin", an API caller, a
// path) and is recorded on the job.
func (p *Processor) ProcessText(ctx context.Context, source, text string) (*entity.Receipt, *entity.ExtractJob, error) {
	job, err := p.jobs.Start(ctx, source, "TXT")
	if err != nil {
		return nil, nil, err
	}
	if err := p.jobs.MarkRunning(ctx, job.ID); err != nil {
		return nil, job, err
	}

	normalized := ocr.NormalizeText(text)
	if err := p.jobs.MarkTextOK(ctx, job.ID, normalized); err != nil {
		return nil, job, err
	}
	rec, err := p.parse(ctx, job, normalized)
	return rec, job, err
}

// ProcessFile acquires text from a file on disk (plain text, PDF or
// image) and then runs the cascade over it.
func (p *Processor) ProcessFile(ctx context.Context, path string) (*entity.Receipt, *entity.ExtractJob, error) {
	format, ok := constants.FormatForExt(filepath.Ext(path))
	if !ok {
		return nil, nil, fmt.Errorf("unsupported file type: %s", path)
	}

	job, err := p.jobs.Start(ctx, path, format)
	if err != nil {
		return nil, nil, err
	}
	if err := p.jobs.MarkRunning(ctx, job.ID); err != nil {
		return nil, job, err
	}

	res, err := p.textSource.Extract(ctx, path)
	if err != nil {
		p.logger.Error("processor.text.failed", "job_id", job.ID, "path", path, "err", err)
		_ = p.jobs.FinishFailure(ctx, job.ID, err.Error())
		return nil, job, err
	}
	p.logger.Debug("processor text acquired",
		"job_id", job.ID,
		"method", res.Method,
		"pages", res.Pages,
		"confidence", res.Confidence,
	)
	if err := p.jobs.MarkTextOK(ctx, job.ID, res.Text); err != nil {
		return nil, job, err
	}

	rec, err := p.parse(ctx, job, res.Text)
	return rec, job, err
}

func (p *Processor) parse(ctx context.Context, job *entity.ExtractJob, text string) (*entity.Receipt, error) {
	record := p.cascade.Extract(ctx, text)

	if p.snapshots != nil {
		if err := p.snapshots.SaveRaw(job.ID, record); err != nil {
			p.logger.Warn("raw snapshot failed", "job_id", job.ID, "err", err)
		}
	}

	rec, err := extract.Normalize(record)
	if err != nil {
		p.logger.Error("processor.parse.failed", "job_id", job.ID, "err", err)
		_ = p.jobs.FinishFailure(ctx, job.ID, err.Error())
		return nil, err
	}

	saved, err := p.receipts.CreateFromRecord(ctx, rec)
	if err != nil {
		_ = p.jobs.FinishFailure(ctx, job.ID, err.Error())
		return nil, err
	}

	if p.snapshots != nil {
		if err := p.snapshots.SaveCurated(saved); err != nil {
			p.logger.Warn("curated snapshot failed", "receipt_id", saved.ID, "err", err)
		}
	}

	extracted, err := json.Marshal(record)
	if err != nil {
		extracted = nil
	}
	modelName := ""
	if record.Method == extract.MethodModel {
		modelName = p.modelName
	}
	if err := p.jobs.FinishParseOK(ctx, job.ID, saved.ID, record.Confidence, record.Method, extracted, modelName); err != nil {
		return saved, err
	}

	p.logger.Debug("processor parse success",
		"job_id", job.ID,
		"receipt_id", saved.ID,
		"method", record.Method,
		"confidence", record.Confidence,
	)
	return saved, nil
}
