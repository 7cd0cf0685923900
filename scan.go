package smyth

import (
	"context"
	"fmt"
)

// Scan extracts records from every document in src and returns them sorted.
// Any invalid record aborts the scan; no partial collection is returned.
func Scan(ctx context.Context, src DocumentSource, ext RecordExtractor) (Records, error) {
	docs, err := src.Documents(ctx)
	if err != nil {
		return nil, err
	}

	var records Records
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		found, err := ext.Extract(doc)
		if code := ErrorCode(err); code == EINTERNAL {
			return nil, fmt.Errorf("extract %s: %w", doc.Name, err)
		} else if err != nil {
			return nil, Errorf(code, "%s: %s", doc.Name, ErrorMessage(err))
		}

		for _, r := range found {
			if err := r.Validate(); err != nil {
				return nil, err
			}
		}
		records = append(records, found...)
	}

	records.Sort()
	return records, nil
}
