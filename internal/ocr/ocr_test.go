package ocr

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// stubRunner captures commands and plays back canned output.
type stubRunner struct {
	lastName string
	lastArgs []string
	stdout   []byte
	err      error
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.lastName = name
	s.lastArgs = args
	return s.stdout, nil, s.err
}

func TestExtract_PlainTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "receipt.txt")
	content := "WALMART\n\n\n\nMilk   2%\t\tGallon  $3.48\nTOTAL $3.48\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	e := NewExtractor(Config{}, nil)
	res, err := e.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	want := "WALMART\n\nMilk 2% Gallon $3.48\nTOTAL $3.48"
	if res.Text != want {
		t.Errorf("text = %q, want %q", res.Text, want)
	}
	if res.Method != "plain-text" || res.SourceType != "TXT" {
		t.Errorf("method/source = %q/%q", res.Method, res.SourceType)
	}
	if res.Confidence <= 0.2 {
		t.Errorf("confidence = %v, expected boost from currency and amount", res.Confidence)
	}
}

func TestExtract_PDFUsesPdftotext(t *testing.T) {
	stub := &stubRunner{stdout: []byte("STORE RECEIPT\fpage two")}
	e := NewExtractor(Config{Pdftotext: "pdftotext"}, nil)
	e.runner = stub

	res, err := e.Extract(context.Background(), "/tmp/receipt.pdf")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if stub.lastName != "pdftotext" {
		t.Errorf("command = %q", stub.lastName)
	}
	if res.Pages != 2 {
		t.Errorf("pages = %d, want 2", res.Pages)
	}
	if res.Method != "pdf-text" {
		t.Errorf("method = %q", res.Method)
	}
}

func TestExtract_ImageUsesTesseract(t *testing.T) {
	stub := &stubRunner{stdout: []byte("TARGET\nTOTAL $5.00")}
	e := NewExtractor(Config{PSM: 6}, nil)
	e.runner = stub

	res, err := e.Extract(context.Background(), "/tmp/receipt.png")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if stub.lastName != "tesseract" {
		t.Errorf("command = %q", stub.lastName)
	}
	joined := ""
	for _, a := range stub.lastArgs {
		joined += a + " "
	}
	if want := "--psm 6 "; !strings.Contains(joined, want) {
		t.Errorf("args %q missing %q", joined, want)
	}
	if res.Method != "image-ocr" || res.SourceType != "IMAGE" {
		t.Errorf("method/source = %q/%q", res.Method, res.SourceType)
	}
}

func TestExtract_UnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	if _, err := e.Extract(context.Background(), "/tmp/receipt.docx"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestExtract_RunnerErrorSurfaces(t *testing.T) {
	stub := &stubRunner{err: errors.New("binary not found")}
	e := NewExtractor(Config{}, nil)
	e.runner = stub
	if _, err := e.Extract(context.Background(), "/tmp/receipt.pdf"); err == nil {
		t.Error("expected error when pdftotext fails")
	}
}

func TestNormalizeText(t *testing.T) {
	in := "a\tb\r\nc   d\n\n\n\ne\x00f"
	want := "a b\nc d\n\nef"
	if got := NormalizeText(in); got != want {
		t.Errorf("NormalizeText = %q, want %q", got, want)
	}
}

func TestHeuristicConfidence_Capped(t *testing.T) {
	long := "Receipt 2024-03-15 total $1,234.56 USD "
	for len(long) < 200 {
		long += "more receipt content "
	}
	c := heuristicConfidence(long)
	if c <= 0.5 || c > 1.0 {
		t.Errorf("confidence = %v, want (0.5, 1.0]", c)
	}
}
