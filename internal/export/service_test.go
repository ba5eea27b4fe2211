package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/OnteruYallaiah21/StrcuctIq/internal/entity"
)

type stubReceiptRepo struct {
	recs []*entity.Receipt
	from *time.Time
	to   *time.Time
}

func (s *stubReceiptRepo) CreateFromRecord(_ context.Context, rec *entity.Receipt) (*entity.Receipt, error) {
	return rec, nil
}

func (s *stubReceiptRepo) ListReceipts(_ context.Context, from, to *time.Time) ([]*entity.Receipt, error) {
	s.from, s.to = from, to
	return s.recs, nil
}

func (s *stubReceiptRepo) GetByID(context.Context, uuid.UUID) (*entity.Receipt, error) {
	return nil, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExportReceiptsXLSX(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	total := decimal.NewFromFloat(13.48)
	repo := &stubReceiptRepo{recs: []*entity.Receipt{
		{
			ID:            uuid.New(),
			StoreName:     "WALMART",
			Date:          &date,
			Total:         &total,
			PaymentMethod: "Credit Card",
			Confidence:    0.85,
			Method:        "generic",
			Items: []entity.ReceiptItem{
				{Name: "milk", Price: decimal.NewFromFloat(3.48)},
			},
		},
	}}

	b, err := NewService(repo, testLogger()).ExportReceiptsXLSX(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("ExportReceiptsXLSX: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer func() { _ = wb.Close() }()

	got, err := wb.GetCellValue("Receipts", "A2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if got != "WALMART" {
		t.Errorf("A2 = %q, want WALMART", got)
	}
	if got, _ := wb.GetCellValue("Receipts", "B2"); got != "2024-01-15" {
		t.Errorf("B2 = %q, want 2024-01-15", got)
	}
	if got, _ := wb.GetCellValue("Receipts", "G2"); got != "13.48" {
		t.Errorf("G2 = %q, want 13.48", got)
	}
}

func TestExportReceiptsXLSX_FromOnlyFillsToToday(t *testing.T) {
	repo := &stubReceiptRepo{}
	from := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

	if _, err := NewService(repo, testLogger()).ExportReceiptsXLSX(context.Background(), &from, nil); err != nil {
		t.Fatalf("ExportReceiptsXLSX: %v", err)
	}
	if repo.from == nil || !repo.from.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("from = %v, want 2024-03-01 midnight UTC", repo.from)
	}
	if repo.to == nil {
		t.Error("to should default to today when only from is given")
	}
}
