package blocklist

// Stats summarizes one merge.
type Stats struct {
	Added   int  // domains that were not yet in the section
	Present int  // incoming domains that were already there
	Total   int  // unique hosts in the section after the merge
	Created bool // section did not exist and was appended
}

// Merge unions domains into the named section (matched
// case-insensitively), creating the section at the end of the document
// if absent. Hosts are only ever added: no other section is touched and
// nothing is removed.
func (d *Document) Merge(name string, domains []string) Stats {
	st := Stats{}
	sec := d.Section(name)
	if sec == nil {
		sec = d.appendSection(name)
		st.Created = true
	}

	existing := make(map[string]struct{}, len(sec.Hosts))
	for _, host := range sec.Hosts {
		existing[host] = struct{}{}
	}
	for _, dom := range domains {
		if _, ok := existing[dom]; ok {
			st.Present++
			continue
		}
		existing[dom] = struct{}{}
		sec.Hosts = append(sec.Hosts, dom)
		st.Added++
	}
	st.Total = len(existing)
	return st
}

// appendSection adds a fresh section at the end of the document,
// separated from any existing content by a blank line.
func (d *Document) appendSection(name string) *Section {
	if len(d.blocks) > 0 {
		d.blocks = append(d.blocks, block{span: []string{""}})
	}
	sec := &Section{
		Name:     name,
		Comments: []string{"# " + name + " domains, one per line, maintained by listmerge"},
	}
	d.blocks = append(d.blocks, block{section: sec})
	return sec
}
