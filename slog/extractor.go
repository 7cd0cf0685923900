package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/smyth"
)

// Ensure LoggingExtractor implements smyth.RecordExtractor.
var _ smyth.RecordExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a RecordExtractor with per-document logging.
type LoggingExtractor struct {
	next   smyth.RecordExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next smyth.RecordExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract logs the document being scanned and delegates to the wrapped extractor.
func (e *LoggingExtractor) Extract(doc *smyth.Document) (records []*smyth.Record, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"file", doc.Name,
			"records", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(doc)
}
