package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/OnteruYallaiah21/StrcuctIq/constants"
	"github.com/OnteruYallaiah21/StrcuctIq/gen/ent"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/entity"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/utils"
)

type ExtractJobRepository interface {
	Start(ctx context.Context, source, format string) (*entity.ExtractJob, error)
	MarkRunning(ctx context.Context, jobID uuid.UUID) error
	MarkTextOK(ctx context.Context, jobID uuid.UUID, rawText string) error
	FinishParseOK(ctx context.Context, jobID, receiptID uuid.UUID, confidence float64, method string, extracted json.RawMessage, modelName string) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, source, format string) (*entity.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetSource(source).
		SetFormat(format).
		SetStatus(string(constants.JobStatusQueued)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "source", source, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "source", source, "format", format)
	return utils.ToExtractJob(job), nil
}

func (r *extractJobRepo) MarkRunning(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job mark(RUNNING) failed", "job_id", jobID, "err", err)
	}
	return err
}

func (r *extractJobRepo) MarkTextOK(ctx context.Context, jobID uuid.UUID, rawText string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetRawText(rawText).
		SetStatus(string(constants.JobStatusTextOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job mark(TEXT_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job text acquired", "job_id", jobID, "chars", len(rawText))
	return nil
}

func (r *extractJobRepo) FinishParseOK(ctx context.Context, jobID, receiptID uuid.UUID, confidence float64, method string, extracted json.RawMessage, modelName string) error {
	upd := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetReceiptID(receiptID).
		SetExtractionConfidence(confidence).
		SetExtractionMethod(method).
		SetExtractedJSON(extracted).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusParseOK))
	if modelName != "" {
		upd = upd.SetModelName(modelName)
	}
	if _, err := upd.Save(ctx); err != nil {
		r.log.Error("extract_job finish(PARSE_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished (PARSE_OK)", "job_id", jobID, "method", method, "confidence", confidence)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}
