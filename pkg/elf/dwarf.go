package elf

import (
	"bytes"
	"debug/dwarf"
	"fmt"

	"github.com/golang/glog"
)

// DebugSection returns a copy of the named section, or an empty slice when
// the file has no such section.
func (c *Content) DebugSection(name string) []byte {
	s := c.Section(name)
	if s == nil {
		return []byte{}
	}
	data, err := c.SectionData(s)
	if err != nil {
		glog.Warningf("Failed to read debug section %s: %v", name, err)
		return []byte{}
	}
	return bytes.Clone(data)
}

// DWARF hands the debug sections to the standard DWARF reader.
func (c *Content) DWARF() (*dwarf.Data, error) {
	if c.Section(".debug_info") == nil {
		return nil, ErrNoDebugInfo
	}
	d, err := dwarf.New(
		c.DebugSection(".debug_abbrev"),
		c.DebugSection(".debug_aranges"),
		c.DebugSection(".debug_frame"),
		c.DebugSection(".debug_info"),
		c.DebugSection(".debug_line"),
		c.DebugSection(".debug_pubnames"),
		c.DebugSection(".debug_ranges"),
		c.DebugSection(".debug_str"),
	)
	if err != nil {
		return nil, fmt.Errorf("dwarf new: %w", err)
	}

	// DWARF 5 sections.
	for _, name := range []string{".debug_addr", ".debug_line_str", ".debug_str_offsets", ".debug_rnglists", ".debug_loclists"} {
		if c.Section(name) == nil {
			continue
		}
		if err = d.AddSection(name, c.DebugSection(name)); err != nil {
			return nil, fmt.Errorf("dwarf add section %s: %w", name, err)
		}
	}
	for _, s := range c.Sections {
		if s.Name != ".debug_types" {
			continue
		}
		data, err := c.SectionData(&s)
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", s.Name, err)
		}
		if err = d.AddTypes(fmt.Sprintf("types-%d", s.Index), bytes.Clone(data)); err != nil {
			return nil, fmt.Errorf("dwarf add types: %w", err)
		}
	}
	return d, nil
}
