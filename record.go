package smyth

import (
	"cmp"
	"errors"
	"slices"
	"strconv"
	"strings"
)

// SectionMarker is the leading character of a section marker identifier.
// The rest of such an identifier is its section number.
const SectionMarker = 's'

// Record represents one marked element found in an HTML document.
type Record struct {
	ID   string `json:"id"`
	File string `json:"file"`
}

// Validate returns an error if the record cannot be ordered or rendered.
func (r *Record) Validate() error {
	if r.ID == "" {
		return Errorf(EINVALID, "%s: marked element has no id attribute", r.File)
	}
	if r.IsSection() {
		if _, err := strconv.Atoi(r.ID[1:]); errors.Is(err, strconv.ErrRange) {
			return Errorf(EINVALID, "%s: section marker %q is out of range", r.File, r.ID)
		} else if err != nil {
			return Errorf(EINVALID, "%s: section marker %q has a non-numeric suffix", r.File, r.ID)
		}
	}
	return nil
}

// IsSection reports whether the record is a section marker.
func (r *Record) IsSection() bool {
	return strings.HasPrefix(r.ID, string(SectionMarker))
}

// Number returns the section number of a section marker.
// It returns 0 for records that are not valid section markers.
func (r *Record) Number() int {
	if !r.IsSection() {
		return 0
	}
	n, _ := strconv.Atoi(r.ID[1:])
	return n
}

// Compare orders two records. Section markers compare by section number;
// any other pair, mixed kinds included, compares by raw identifier.
func Compare(a, b *Record) int {
	if a.IsSection() && b.IsSection() {
		return cmp.Compare(a.Number(), b.Number())
	}
	return strings.Compare(a.ID, b.ID)
}

// Records is the collection of records gathered by a scan.
type Records []*Record

// Sort orders the records in place. Equal records keep their scan order.
func (rs Records) Sort() {
	slices.SortStableFunc(rs, Compare)
}

// Sections returns the section markers in collection order.
func (rs Records) Sections() Records {
	var sections Records
	for _, r := range rs {
		if r.IsSection() {
			sections = append(sections, r)
		}
	}
	return sections
}

// Range is an inclusive span of section numbers.
type Range struct {
	Min int
	Max int
}

// Extend widens the range to include n.
func (r *Range) Extend(n int) {
	r.Min = min(r.Min, n)
	r.Max = max(r.Max, n)
}

// FileRange associates a source file with the span of its section numbers.
type FileRange struct {
	File  string
	Range Range
}

// GroupByFile returns the section number range of every file that holds
// section markers. Files are listed in order of first appearance.
func (rs Records) GroupByFile() []FileRange {
	var groups []FileRange
	index := make(map[string]int)

	for _, r := range rs.Sections() {
		n := r.Number()
		if i, ok := index[r.File]; ok {
			groups[i].Range.Extend(n)
			continue
		}
		index[r.File] = len(groups)
		groups = append(groups, FileRange{File: r.File, Range: Range{Min: n, Max: n}})
	}

	return groups
}
