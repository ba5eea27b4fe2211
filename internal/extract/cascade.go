package extract

import (
	"context"
	"log/slog"
)

// minModelConfidence is the acceptance bar for the model path. Records
// scoring below it are discarded, never merged with regex results.
const minModelConfidence = 0.3

// ModelExtractor is the model-backed path of the cascade. It returns a
// record decoded from the model response; scoring is not its job.
type ModelExtractor interface {
	ExtractRecord(ctx context.Context, text string) (*StructuredRecord, error)
}

// Strategy is one regex-based parser in the cascade. TryParse reports
// false when the strategy declines the input.
type Strategy interface {
	Name() string
	TryParse(text string) (*StructuredRecord, bool)
}

// Cascade runs the extraction strategies in fixed order: narrative
// prose first, then the model path, then sectioned text, then the
// generic floor. It always produces a record.
type Cascade struct {
	model     ModelExtractor
	logger    *slog.Logger
	narrative Strategy
	sectioned Strategy
	generic   genericStrategy
}

// NewCascade builds a cascade. A nil model disables the model path and
// the regex strategies carry the whole load.
func NewCascade(model ModelExtractor, logger *slog.Logger) *Cascade {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cascade{
		model:     model,
		logger:    logger,
		narrative: narrativeStrategy{},
		sectioned: sectionedStrategy{},
	}
}

// Extract turns raw receipt text into a StructuredRecord. The returned
// record always carries the method label of the strategy that produced
// it and a confidence score computed from its own fields.
func (c *Cascade) Extract(ctx context.Context, text string) *StructuredRecord {
	if rec, ok := c.narrative.TryParse(text); ok {
		c.logger.Info("extract.narrative.ok", "items", len(rec.Items), "confidence", rec.Confidence)
		return rec
	}

	if c.model != nil {
		rec, err := c.model.ExtractRecord(ctx, text)
		switch {
		case err != nil:
			// Model failures never fail the pipeline; the regex
			// strategies take over.
			c.logger.Warn("extract.model.failed", "error", err)
		case rec == nil:
			// An empty response is just a low-confidence answer.
			c.logger.Warn("extract.model.empty")
		default:
			rec.Method = MethodModel
			rec.Confidence = Score(rec)
			if rec.Confidence >= minModelConfidence {
				c.logger.Info("extract.model.ok", "confidence", rec.Confidence)
				return rec
			}
			c.logger.Warn("extract.model.low_confidence", "confidence", rec.Confidence, "min", minModelConfidence)
		}
	}

	if rec, ok := c.sectioned.TryParse(text); ok {
		c.logger.Info("extract.sectioned.ok", "confidence", rec.Confidence)
		return rec
	}

	rec := c.generic.Parse(text)
	c.logger.Info("extract.generic.ok", "confidence", rec.Confidence)
	return rec
}
