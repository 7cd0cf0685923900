// Package render turns a sorted record collection into text output.
package render

import (
	"encoding/csv"
	"encoding/json"
	"strings"

	"github.com/fwojciec/smyth"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var renderers = map[smyth.Format]smyth.RenderFunc{
	smyth.FormatCSV:         CSV,
	smyth.FormatJSON:        JSON,
	smyth.FormatGroupedJSON: GroupedJSON,
}

// Render renders records in the given format.
// Returns EINVALID if the format has no renderer.
func Render(format smyth.Format, records smyth.Records) (string, error) {
	fn, ok := renderers[format]
	if !ok {
		return "", smyth.Errorf(smyth.EINVALID, "unknown output format %q", format)
	}
	return fn(records)
}

// CSV renders one "id,file" line per record without a header.
// Fields are quoted only when they contain a comma, quote or line break.
func CSV(records smyth.Records) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	for _, r := range records {
		if err := w.Write([]string{r.ID, r.File}); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

// JSON renders an object mapping each record's identifier to its file,
// keyed in collection order. A repeated identifier keeps its first position
// and its last file.
func JSON(records smyth.Records) (string, error) {
	om := orderedmap.New[string, string](len(records))
	for _, r := range records {
		om.Set(r.ID, r.File)
	}
	return marshal(om)
}

// GroupedJSON renders an object mapping each file to the [min, max] range
// of its section numbers. Records that are not section markers are left out.
func GroupedJSON(records smyth.Records) (string, error) {
	groups := records.GroupByFile()
	om := orderedmap.New[string, [2]int](len(groups))
	for _, g := range groups {
		om.Set(g.File, [2]int{g.Range.Min, g.Range.Max})
	}
	return marshal(om)
}

func marshal(v any) (string, error) {
	buf, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", smyth.Errorf(smyth.EINTERNAL, "failed to encode JSON: %v", err)
	}
	return string(buf), nil
}
