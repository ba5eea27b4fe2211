package extract

import (
	"context"
	"errors"
	"testing"
)

type stubModel struct {
	rec   *StructuredRecord
	err   error
	calls int
}

func (s *stubModel) ExtractRecord(_ context.Context, _ string) (*StructuredRecord, error) {
	s.calls++
	return s.rec, s.err
}

func TestCascade_NarrativeWinsBeforeModel(t *testing.T) {
	model := &stubModel{rec: &StructuredRecord{StoreName: "MODEL MART"}}
	c := NewCascade(model, nil)

	text := "A shopper visited Walmart Supercenter and picked up a loaf of bread for $3.50. The total came to $3.50."
	rec := c.Extract(context.Background(), text)

	if rec.Method != MethodNarrative {
		t.Errorf("method = %q, want %q", rec.Method, MethodNarrative)
	}
	if model.calls != 0 {
		t.Errorf("model should not be consulted after narrative success, got %d calls", model.calls)
	}
}

func TestCascade_ModelAcceptedAboveThreshold(t *testing.T) {
	ten := mustDec(t, "10.00")
	model := &stubModel{rec: &StructuredRecord{StoreName: "COSTCO", Total: &ten}}
	c := NewCascade(model, nil)

	rec := c.Extract(context.Background(), "plain text the regex strategies cannot read")
	if rec.Method != MethodModel {
		t.Fatalf("method = %q, want %q", rec.Method, MethodModel)
	}
	// Score is recomputed from fields, never taken from the model.
	if rec.Confidence != 0.35 {
		t.Errorf("confidence = %v, want 0.35", rec.Confidence)
	}
}

func TestCascade_ModelDiscardedBelowThreshold(t *testing.T) {
	model := &stubModel{rec: &StructuredRecord{StoreName: "COSTCO"}} // scores 0.15
	c := NewCascade(model, nil)

	rec := c.Extract(context.Background(), "nothing here matches any strategy")
	if rec.Method != MethodGeneric {
		t.Errorf("low-confidence model record must fall through to generic, got %q", rec.Method)
	}
	if model.calls != 1 {
		t.Errorf("model calls = %d, want 1", model.calls)
	}
}

func TestCascade_NilModelRecordFallsThrough(t *testing.T) {
	model := &stubModel{} // returns (nil, nil)
	c := NewCascade(model, nil)

	rec := c.Extract(context.Background(), "nothing here matches any strategy")
	if rec == nil {
		t.Fatal("cascade must always produce a record")
	}
	if rec.Method != MethodGeneric {
		t.Errorf("empty model response must fall through to generic, got %q", rec.Method)
	}
	if model.calls != 1 {
		t.Errorf("model calls = %d, want 1", model.calls)
	}
}

func TestCascade_ModelErrorIsIsolated(t *testing.T) {
	model := &stubModel{err: errors.New("api unreachable")}
	c := NewCascade(model, nil)

	rec := c.Extract(context.Background(), "STORE: WALMART\nSUBTOTAL $10.00\nTAX $0.80\nTOTAL $10.80")
	if rec == nil {
		t.Fatal("cascade must always produce a record")
	}
	if rec.Method != MethodGeneric {
		t.Errorf("method = %q, want %q", rec.Method, MethodGeneric)
	}
	if rec.StoreName != "WALMART" {
		t.Errorf("store = %q, want WALMART", rec.StoreName)
	}
}

func TestCascade_NilModelRunsRegexOnly(t *testing.T) {
	c := NewCascade(nil, nil)
	rec := c.Extract(context.Background(), "Date\n2024-03-15\nTotal\n$6.05\nTime\n-\n")
	if rec.Method != MethodSectioned {
		t.Errorf("method = %q, want %q", rec.Method, MethodSectioned)
	}
}

func TestCascade_AlwaysProducesRecord(t *testing.T) {
	c := NewCascade(nil, nil)
	rec := c.Extract(context.Background(), "")
	if rec == nil {
		t.Fatal("expected a record for empty input")
	}
	if rec.Method != MethodGeneric {
		t.Errorf("method = %q, want %q", rec.Method, MethodGeneric)
	}
}
