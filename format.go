package smyth

// Format identifies an output rendering of a record collection.
type Format string

// Supported output formats.
const (
	FormatCSV         Format = "csv"
	FormatJSON        Format = "json"
	FormatGroupedJSON Format = "grouped_json"
)

// Formats lists every supported format in presentation order.
var Formats = []Format{FormatCSV, FormatJSON, FormatGroupedJSON}

// ParseFormat returns the Format named by s.
// Returns EINVALID if s does not name a supported format.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", Errorf(EINVALID, "unknown output format %q (want csv, json or grouped_json)", s)
}

// RenderFunc renders a sorted record collection.
type RenderFunc func(records Records) (string, error)
