package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/OnteruYallaiah21/StrcuctIq/constants"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	PSM           int    // e.g., 6 is good for uniform block of text
}

type ExtractionResult struct {
	Text       string
	Pages      int
	SourceType string // one of constants.FileTypes
	Method     string // "plain-text" | "pdf-text" | "image-ocr"
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}

// Extractor turns receipt files into normalized text. TXT files are
// read directly; PDFs go through pdftotext; images through tesseract.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract picks a strategy based on file extension.
func (e *Extractor) Extract(ctx context.Context, path string) (ExtractionResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	format, ok := constants.FormatForExt(ext)
	if !ok {
		return ExtractionResult{}, fmt.Errorf("unsupported file extension %q", ext)
	}
	e.logger.Debug("starting text extraction", "path", path, "format", format)

	var res ExtractionResult
	var err error
	switch format {
	case "TXT":
		res, err = e.readPlainText(path)
	case "PDF":
		res, err = e.pdfToText(ctx, path)
	case "IMAGE":
		res, err = e.imageOCR(ctx, path)
	}
	if err != nil {
		return res, err
	}

	res.Text = NormalizeText(res.Text)
	res.SourceType = format
	res.Language = e.cfg.TesseractLang
	res.Duration = time.Since(start)
	res.Confidence = heuristicConfidence(res.Text)
	if strings.TrimSpace(res.Text) == "" {
		res.Warnings = append(res.Warnings, "extraction produced no text")
	}
	return res, nil
}

func (e *Extractor) readPlainText(path string) (ExtractionResult, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return ExtractionResult{}, fmt.Errorf("read text file: %w", err)
	}
	return ExtractionResult{Text: string(b), Pages: 1, Method: "plain-text"}, nil
}

func (e *Extractor) pdfToText(ctx context.Context, path string) (ExtractionResult, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return ExtractionResult{Warnings: []string{string(errb)}}, fmt.Errorf("pdftotext: %w", err)
	}
	text := string(out)
	// A form-feed \f is used as page separator by default
	pages := 1 + strings.Count(text, "\f")
	return ExtractionResult{Text: text, Pages: pages, Method: "pdf-text"}, nil
}

func (e *Extractor) imageOCR(ctx context.Context, path string) (ExtractionResult, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", e.cfg.PSM))
	}
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return ExtractionResult{Warnings: []string{string(errb)}}, fmt.Errorf("tesseract: %w", err)
	}
	return ExtractionResult{Text: string(out), Pages: 1, Method: "image-ocr"}, nil
}
