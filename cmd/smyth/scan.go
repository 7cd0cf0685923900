package main

import (
	"fmt"

	"github.com/fwojciec/smyth"
	"github.com/fwojciec/smyth/render"
)

// Run executes the scan. Nothing is written to stdout unless the whole
// collection scans and renders cleanly.
func (c *ScanCmd) Run(deps *Dependencies) error {
	records, err := smyth.Scan(deps.Ctx, deps.Source, deps.Extractor)
	if err != nil {
		return err
	}

	out, err := render.Render(c.Format, records)
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, out)
	return nil
}
