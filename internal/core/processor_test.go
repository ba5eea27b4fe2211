package core

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/OnteruYallaiah21/StrcuctIq/constants"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/entity"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/extract"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubJobRepo struct {
	statuses []string
	rawText  string
	method   string
	failMsg  string
}

func (s *stubJobRepo) Start(_ context.Context, source, format string) (*entity.ExtractJob, error) {
	s.statuses = append(s.statuses, string(constants.JobStatusQueued))
	return &entity.ExtractJob{ID: uuid.New(), Source: source, Format: format, StartedAt: time.Now()}, nil
}

func (s *stubJobRepo) MarkRunning(context.Context, uuid.UUID) error {
	s.statuses = append(s.statuses, string(constants.JobStatusRunning))
	return nil
}

func (s *stubJobRepo) MarkTextOK(_ context.Context, _ uuid.UUID, rawText string) error {
	s.statuses = append(s.statuses, string(constants.JobStatusTextOK))
	s.rawText = rawText
	return nil
}

func (s *stubJobRepo) FinishParseOK(_ context.Context, _, _ uuid.UUID, _ float64, method string, _ json.RawMessage, _ string) error {
	s.statuses = append(s.statuses, string(constants.JobStatusParseOK))
	s.method = method
	return nil
}

func (s *stubJobRepo) FinishFailure(_ context.Context, _ uuid.UUID, message string) error {
	s.statuses = append(s.statuses, string(constants.JobStatusFailed))
	s.failMsg = message
	return nil
}

type stubReceiptRepo struct {
	created *entity.Receipt
	err     error
}

func (s *stubReceiptRepo) CreateFromRecord(_ context.Context, rec *entity.Receipt) (*entity.Receipt, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := *rec
	out.ID = uuid.New()
	s.created = &out
	return &out, nil
}

func (s *stubReceiptRepo) ListReceipts(context.Context, *time.Time, *time.Time) ([]*entity.Receipt, error) {
	return nil, nil
}

func (s *stubReceiptRepo) GetByID(context.Context, uuid.UUID) (*entity.Receipt, error) {
	return nil, nil
}

func TestProcessText_HappyPath(t *testing.T) {
	jobs := &stubJobRepo{}
	receipts := &stubReceiptRepo{}
	p := NewProcessor(testLogger(), nil, extract.NewCascade(nil, testLogger()), receipts, jobs, nil, "")

	text := "WALMART\n2024-01-15\nMilk $3.48\nTOTAL $3.48"
	rec, job, err := p.ProcessText(context.Background(), "stdin", text)
	if err != nil {
		t.Fatalf("ProcessText: %v", err)
	}
	if job == nil {
		t.Fatal("job is nil")
	}
	if rec.StoreName != "WALMART" {
		t.Errorf("store name = %q", rec.StoreName)
	}

	want := []string{"QUEUED", "RUNNING", "TEXT_OK", "PARSE_OK"}
	if len(jobs.statuses) != len(want) {
		t.Fatalf("statuses = %v, want %v", jobs.statuses, want)
	}
	for i := range want {
		if jobs.statuses[i] != want[i] {
			t.Errorf("status[%d] = %q, want %q", i, jobs.statuses[i], want[i])
		}
	}
	if jobs.method == "" {
		t.Error("extraction method not recorded on job")
	}
}

func TestProcessText_PersistFailureMarksJobFailed(t *testing.T) {
	jobs := &stubJobRepo{}
	receipts := &stubReceiptRepo{err: errors.New("connection refused")}
	p := NewProcessor(testLogger(), nil, extract.NewCascade(nil, testLogger()), receipts, jobs, nil, "")

	_, _, err := p.ProcessText(context.Background(), "stdin", "TARGET\nTOTAL $9.99")
	if err == nil {
		t.Fatal("expected error")
	}
	last := jobs.statuses[len(jobs.statuses)-1]
	if last != string(constants.JobStatusFailed) {
		t.Errorf("final status = %q, want FAILED", last)
	}
	if jobs.failMsg == "" {
		t.Error("failure message not recorded")
	}
}

func TestProcessFile_UnsupportedExtension(t *testing.T) {
	jobs := &stubJobRepo{}
	p := NewProcessor(testLogger(), nil, extract.NewCascade(nil, testLogger()), &stubReceiptRepo{}, jobs, nil, "")

	_, _, err := p.ProcessFile(context.Background(), "/tmp/receipt.docx")
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if len(jobs.statuses) != 0 {
		t.Errorf("no job should start for unsupported files, got %v", jobs.statuses)
	}
}
