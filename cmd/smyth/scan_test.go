package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/smyth"
	main "github.com/fwojciec/smyth/cmd/smyth"
	"github.com/fwojciec/smyth/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanCmd_Run(t *testing.T) {
	t.Parallel()

	source := &mock.DocumentSource{
		DocumentsFn: func(_ context.Context) ([]*smyth.Document, error) {
			return []*smyth.Document{{Name: "page1.html"}}, nil
		},
	}
	extractor := &mock.RecordExtractor{
		ExtractFn: func(doc *smyth.Document) ([]*smyth.Record, error) {
			return []*smyth.Record{
				{ID: "s5", File: doc.Name},
				{ID: "s1", File: doc.Name},
			}, nil
		},
	}

	t.Run("prints sorted records with trailing newline", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Source:    source,
			Extractor: extractor,
		}

		err := (&main.ScanCmd{Format: smyth.FormatCSV}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "s1,page1.html\ns5,page1.html\n", stdout.String())
	})

	t.Run("prints grouped ranges", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Source:    source,
			Extractor: extractor,
		}

		err := (&main.ScanCmd{Format: smyth.FormatGroupedJSON}).Run(deps)

		require.NoError(t, err)
		assert.JSONEq(t, `{"page1.html": [1, 5]}`, stdout.String())
	})

	t.Run("writes nothing when extraction fails", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Source: source,
			Extractor: &mock.RecordExtractor{
				ExtractFn: func(_ *smyth.Document) ([]*smyth.Record, error) {
					return nil, errors.New("parse failure")
				},
			},
		}

		err := (&main.ScanCmd{Format: smyth.FormatJSON}).Run(deps)

		require.Error(t, err)
		assert.Empty(t, stdout.String())
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Source:    source,
			Extractor: extractor,
		}

		err := (&main.ScanCmd{Format: smyth.Format("yaml")}).Run(deps)

		assert.Equal(t, smyth.EINVALID, smyth.ErrorCode(err))
	})
}
