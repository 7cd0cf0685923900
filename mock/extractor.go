package mock

import "github.com/fwojciec/smyth"

var _ smyth.RecordExtractor = (*RecordExtractor)(nil)

// RecordExtractor is a mock implementation of smyth.RecordExtractor.
type RecordExtractor struct {
	ExtractFn func(doc *smyth.Document) ([]*smyth.Record, error)
}

func (e *RecordExtractor) Extract(doc *smyth.Document) ([]*smyth.Record, error) {
	return e.ExtractFn(doc)
}
