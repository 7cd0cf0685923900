package smyth

import "context"

// Document is the raw content of one file in the scanned directory.
type Document struct {
	Name    string
	Content []byte
	Hash    string
}

// DocumentSource lists the documents to scan.
type DocumentSource interface {
	// Documents returns every document in the source, in listing order.
	// Returns ENOTFOUND if the source does not exist.
	Documents(ctx context.Context) ([]*Document, error)
}

// RecordExtractor finds marked elements in a document.
type RecordExtractor interface {
	// Extract returns one record per marked element, in document order.
	Extract(doc *Document) ([]*Record, error)
}
