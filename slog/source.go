package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/smyth"
)

// Ensure LoggingSource implements smyth.DocumentSource.
var _ smyth.DocumentSource = (*LoggingSource)(nil)

// LoggingSource wraps a DocumentSource with logging. It also warns about
// documents whose content is identical to an earlier one.
type LoggingSource struct {
	next   smyth.DocumentSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next smyth.DocumentSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Documents delegates to the wrapped source and logs the operation.
func (s *LoggingSource) Documents(ctx context.Context) (docs []*smyth.Document, err error) {
	defer func(begin time.Time) {
		s.logger.Info("list documents",
			"count", len(docs),
			"bytes", totalBytes(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	docs, err = s.next.Documents(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]string)
	for _, doc := range docs {
		if doc.Hash == "" {
			continue
		}
		if first, ok := seen[doc.Hash]; ok {
			s.logger.Warn("duplicate document content",
				"file", doc.Name,
				"same_as", first,
			)
			continue
		}
		seen[doc.Hash] = doc.Name
	}

	return docs, nil
}

func totalBytes(docs []*smyth.Document) int {
	n := 0
	for _, doc := range docs {
		n += len(doc.Content)
	}
	return n
}
