package goquery

import (
	"bytes"
	"io"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/smyth"
	"golang.org/x/net/html/charset"
)

// DefaultClass is the class carried by section elements.
const DefaultClass = "smythp"

// Ensure Extractor implements smyth.RecordExtractor at compile time.
var _ smyth.RecordExtractor = (*Extractor)(nil)

// Extractor selects elements by class and turns each into a record.
type Extractor struct {
	class   string
	matcher cascadia.Selector
}

// NewExtractor creates an Extractor matching elements whose class list
// contains class. Returns EINVALID unless class is a single class name.
func NewExtractor(class string) (*Extractor, error) {
	if class == "" {
		return nil, smyth.Errorf(smyth.EINVALID, "marker class required")
	}
	if !isClassName(class) {
		return nil, smyth.Errorf(smyth.EINVALID, "invalid marker class %q: want a single class name", class)
	}
	m, err := cascadia.Compile("." + class)
	if err != nil {
		return nil, smyth.Errorf(smyth.EINVALID, "invalid marker class %q: %v", class, err)
	}
	return &Extractor{class: class, matcher: m}, nil
}

// Class returns the class the extractor matches.
func (e *Extractor) Class() string {
	return e.class
}

// Extract parses the document as HTML and returns a record for every
// matching element in document order.
func (e *Extractor) Extract(doc *smyth.Document) ([]*smyth.Record, error) {
	d, err := goquery.NewDocumentFromReader(decode(doc.Content))
	if err != nil {
		return nil, smyth.Errorf(smyth.EINVALID, "failed to parse HTML: %v", err)
	}

	var records []*smyth.Record
	d.FindMatcher(e.matcher).Each(func(_ int, sel *goquery.Selection) {
		id, _ := sel.Attr("id")
		records = append(records, &smyth.Record{ID: id, File: doc.Name})
	})

	return records, nil
}

// decode returns a UTF-8 reader over content. Valid UTF-8 is passed through
// verbatim unless a byte order mark names another encoding; anything else is
// decoded per its meta charset declaration, falling back to windows-1252.
func decode(content []byte) io.Reader {
	enc, _, certain := charset.DetermineEncoding(content, "text/html")
	if !certain && utf8.Valid(content) {
		return bytes.NewReader(content)
	}
	return enc.NewDecoder().Reader(bytes.NewReader(content))
}

// isClassName reports whether s is a single CSS identifier, so that it
// cannot turn into a compound selector or a selector group.
func isClassName(s string) bool {
	for i, r := range s {
		switch {
		case r >= utf8.RuneSelf, r == '_',
			r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 || (i == 1 && s[0] == '-') {
				return false
			}
		case r == '-':
		default:
			return false
		}
	}
	return s != "-"
}
