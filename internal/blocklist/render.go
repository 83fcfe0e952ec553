package blocklist

import (
	// standard
	"sort"
	"strings"
	// external
	// local
)

// SortedHosts returns the section's hosts sorted bytewise ascending,
// duplicates removed.
func (s *Section) SortedHosts() []string {
	hosts := append([]string(nil), s.Hosts...)
	sort.Strings(hosts)
	out := make([]string, 0, len(hosts))
	for i, h := range hosts {
		if i > 0 && h == hosts[i-1] {
			continue
		}
		out = append(out, h)
	}
	return out
}

// Render serializes the document back to text. Spans are emitted
// verbatim; every section gets the canonical layout: start marker,
// comments, blank, sorted unique hosts, blank, end marker. Rendering is
// a pure function of document state, so re-running an identical merge
// leaves the file bytes unchanged.
func (d *Document) Render() []byte {
	var b strings.Builder
	for _, blk := range d.blocks {
		if blk.section == nil {
			for _, line := range blk.span {
				b.WriteString(line)
				b.WriteByte('\n')
			}
			continue
		}
		sec := blk.section
		b.WriteString(sec.StartMarker())
		b.WriteByte('\n')
		for _, comment := range sec.Comments {
			b.WriteString(comment)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
		for _, host := range sec.SortedHosts() {
			b.WriteString(host)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
		b.WriteString(sec.EndMarker())
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
