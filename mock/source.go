package mock

import (
	"context"

	"github.com/fwojciec/smyth"
)

var _ smyth.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of smyth.DocumentSource.
type DocumentSource struct {
	DocumentsFn func(ctx context.Context) ([]*smyth.Document, error)
}

func (s *DocumentSource) Documents(ctx context.Context) ([]*smyth.Document, error) {
	return s.DocumentsFn(ctx)
}
