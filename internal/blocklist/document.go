package blocklist

import (
	// standard
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	// external
	// local
)

// Target file markers. A section looks like:
//
//	### Scam domains start
//	# optional comment lines
//
//	bad.com
//	evil.net
//
//	### Scam domains end
const (
	markerPrefix = "### "
	startSuffix  = " domains start"
	endSuffix    = " domains end"
)

// Section is one named block of hosts in the target file.
type Section struct {
	Name     string
	Comments []string
	Hosts    []string
}

// StartMarker returns the line opening the section in the target file.
func (s *Section) StartMarker() string {
	return markerPrefix + s.Name + startSuffix
}

// EndMarker returns the line closing the section in the target file.
func (s *Section) EndMarker() string {
	return markerPrefix + s.Name + endSuffix
}

// block is one ordered piece of a Document: either a verbatim span of
// non-section lines (section == nil) or a section.
type block struct {
	span    []string
	section *Section
}

// Document is the parsed target file: an ordered sequence of sections
// and preserved non-section spans.
type Document struct {
	blocks []block
}

// Section returns the section matching name (case-insensitive), or nil.
func (d *Document) Section(name string) *Section {
	for _, blk := range d.blocks {
		if blk.section != nil && strings.EqualFold(blk.section.Name, name) {
			return blk.section
		}
	}
	return nil
}

// Sections returns the document's sections in order.
func (d *Document) Sections() []*Section {
	var secs []*Section
	for _, blk := range d.blocks {
		if blk.section != nil {
			secs = append(secs, blk.section)
		}
	}
	return secs
}

// ParseFile loads a target document from disk. A missing file yields an
// empty document; anything the parser can't make sense of is an error,
// never a silent partial recovery.
func ParseFile(filePath string) (*Document, error) {
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Document{}, nil
		}
		return nil, fmt.Errorf("can't open target %q: %w", filePath, err)
	}
	defer file.Close()

	doc, err := parse(file, func(err error, lineNo int) error {
		return fmt.Errorf("%v line %v: %w", filePath, lineNo, err)
	})
	if err != nil {
		return nil, fmt.Errorf("can't parse target: %w", err)
	}
	return doc, nil
}

// Parse reads a target document from a reader.
func Parse(r io.Reader) (*Document, error) {
	return parse(r, func(err error, lineNo int) error {
		return fmt.Errorf("line %v: %w", lineNo, err)
	})
}

// parse scans the target line by line, using wrapErr to format
// line-specific errors.
func parse(
	r io.Reader,
	wrapErr func(error, int) error,
) (*Document, error) {
	doc := &Document{}
	var span []string
	var cur *Section

	flushSpan := func() {
		if len(span) > 0 {
			doc.blocks = append(doc.blocks, block{span: span})
			span = nil
		}
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		line := strings.TrimSpace(raw)
		switch {
		case isMarker(line, startSuffix):
			if cur != nil {
				return nil, wrapErr(fmt.Errorf(
					"section %q has no end marker", cur.Name), lineNo)
			}
			name := markerName(line, startSuffix)
			if name == "" {
				return nil, wrapErr(fmt.Errorf(
					"start marker has no section name"), lineNo)
			}
			flushSpan()
			cur = &Section{Name: name}
			doc.blocks = append(doc.blocks, block{section: cur})
		case isMarker(line, endSuffix):
			if cur == nil {
				return nil, wrapErr(fmt.Errorf(
					"end marker without a matching start"), lineNo)
			}
			if name := markerName(line, endSuffix); !strings.EqualFold(name, cur.Name) {
				return nil, wrapErr(fmt.Errorf(
					"end marker %q closes section %q", name, cur.Name), lineNo)
			}
			cur = nil
		case cur != nil && strings.HasPrefix(line, "#"):
			cur.Comments = append(cur.Comments, line)
		case cur != nil && line != "":
			cur.Hosts = append(cur.Hosts, line)
		case cur != nil:
			// blank line inside a section: layout only, re-created on render
		default:
			span = append(span, raw)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if cur != nil {
		return nil, wrapErr(fmt.Errorf(
			"section %q has no end marker", cur.Name), lineNo)
	}
	flushSpan()
	return doc, nil
}

func isMarker(line, suffix string) bool {
	return strings.HasPrefix(line, "###") && strings.HasSuffix(line, suffix)
}

// markerName extracts the section name out of a marker line.
func markerName(line, suffix string) string {
	name := strings.TrimSuffix(line, suffix)
	name = strings.TrimPrefix(name, "###")
	return strings.TrimSpace(name)
}
