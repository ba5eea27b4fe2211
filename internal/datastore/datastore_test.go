package datastore

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/OnteruYallaiah21/StrcuctIq/internal/common"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/entity"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStore_CuratedRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir, testLogger())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	total := decimal.NewFromFloat(12.50)
	rec := &entity.Receipt{
		ID:        uuid.New(),
		StoreName: "WALMART",
		Total:     &total,
		Items: []entity.ReceiptItem{
			{ID: uuid.New(), Name: "milk", Price: decimal.NewFromFloat(3.48)},
		},
		Confidence: 0.85,
		Method:     "generic",
	}
	if err := s.SaveCurated(rec); err != nil {
		t.Fatalf("SaveCurated: %v", err)
	}

	got, err := s.LoadCurated(rec.ID)
	if err != nil {
		t.Fatalf("LoadCurated: %v", err)
	}
	if got.StoreName != "WALMART" {
		t.Errorf("store name = %q", got.StoreName)
	}
	if got.Total == nil || !got.Total.Equal(total) {
		t.Errorf("total = %v, want %s", got.Total, total)
	}
	if len(got.Items) != 1 || got.Items[0].Name != "milk" {
		t.Errorf("items = %+v", got.Items)
	}
}

func TestStore_SaveRawWritesFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir, testLogger())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	jobID := uuid.New()
	if err := s.SaveRaw(jobID, map[string]any{"store_name": "TARGET"}); err != nil {
		t.Fatalf("SaveRaw: %v", err)
	}

	path := filepath.Join(dir, "raw", jobID.String()+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading snapshot: %v", err)
	}
	if len(b) == 0 {
		t.Error("snapshot is empty")
	}
}

func TestStore_ListAndStats(t *testing.T) {
	s, err := NewStore(t.TempDir(), testLogger())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	total := decimal.NewFromFloat(5)
	rec := &entity.Receipt{ID: uuid.New(), StoreName: "HEB", Total: &total}
	if err := s.SaveCurated(rec); err != nil {
		t.Fatalf("SaveCurated: %v", err)
	}
	if err := s.SaveRaw(uuid.New(), map[string]any{"total": 5}); err != nil {
		t.Fatalf("SaveRaw: %v", err)
	}

	ids, err := s.ListCurated()
	if err != nil {
		t.Fatalf("ListCurated: %v", err)
	}
	if len(ids) != 1 || ids[0] != rec.ID {
		t.Errorf("ids = %v, want [%s]", ids, rec.ID)
	}

	st, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.RawCount != 1 || st.CuratedCount != 1 {
		t.Errorf("stats = %+v, want one raw and one curated", st)
	}
	if st.Bytes == 0 {
		t.Error("stats bytes should be non-zero")
	}
}

func TestStore_LoadCuratedMissing(t *testing.T) {
	s, err := NewStore(t.TempDir(), testLogger())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	_, err = s.LoadCurated(uuid.New())
	if !common.IsNotFound(err) {
		t.Errorf("err = %v, want not-found", err)
	}
}
