package elf

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Content is a parsed ELF image. It owns the raw buffer; section data
// returned by its methods are views into that buffer.
type Content struct {
	Header         FileHeader
	Sections       []Section
	Symbols        []Symbol
	DynamicSymbols []Symbol

	raw []byte
}

// Parse decodes raw into a Content. Only the identification bytes and the
// file header can reject a file outright; after that, offsets that fall
// outside raw surface as *BoundsError.
func Parse(raw []byte) (*Content, error) {
	if err := checkMagic(raw); err != nil {
		return nil, err
	}
	if len(raw) <= identClass {
		return nil, &BoundsError{What: "elf class", Offset: identClass, Size: 1, Len: uint64(len(raw))}
	}
	if cl := Class(raw[identClass]); cl != Class32 && cl != Class64 {
		return nil, &BadPointerWidthError{Class: raw[identClass]}
	}

	header, err := ParseHeader(raw)
	if err != nil {
		return nil, fmt.Errorf("parse file header: %w", err)
	}

	c := &Content{Header: header, raw: raw}
	if err = c.loadSections(); err != nil {
		return nil, fmt.Errorf("load sections: %w", err)
	}
	if err = c.loadSymbols(); err != nil {
		return nil, fmt.Errorf("load symbols: %w", err)
	}
	glog.V(3).Infof("Parsed %s %s: %d sections, %d symbols, %d dynamic symbols",
		header.Class, header.Type, len(c.Sections), len(c.Symbols), len(c.DynamicSymbols))
	return c, nil
}

// Raw returns the buffer the Content was parsed from.
func (c *Content) Raw() []byte { return c.raw }

func (c *Content) loadSections() error {
	h := &c.Header
	if h.SectionHeaderOffset == 0 {
		glog.V(2).Infof("No section header table")
		return nil
	}

	entsize := uint64(h.SectionHeaderEntrySize)
	count := uint64(h.SectionHeaderCount)
	if count == 0 {
		// Extended numbering: the real count is the size of section 0.
		first, err := c.decodeSectionTable(entsize, 1)
		if err != nil {
			return err
		}
		count = first[0].Size
	}

	sections, err := c.decodeSectionTable(entsize, count)
	if err != nil {
		return err
	}

	shstrndx := uint64(h.StringTableIndex)
	if h.StringTableIndex == SHN_XINDEX && len(sections) > 0 {
		shstrndx = uint64(sections[0].Link)
	}
	if shstrndx >= uint64(len(sections)) {
		return &BoundsError{What: "section name table index", Offset: shstrndx, Size: 1, Len: uint64(len(sections))}
	}
	shstrtab, err := c.SectionData(&sections[shstrndx])
	if err != nil {
		return fmt.Errorf("section name table: %w", err)
	}
	ResolveNames(shstrtab, sections)
	c.Sections = sections
	return nil
}

func (c *Content) decodeSectionTable(entsize, count uint64) ([]Section, error) {
	if count > 0 && (entsize == 0 || count > uint64(len(c.raw))/entsize) {
		return nil, &BoundsError{
			What:   "section header table",
			Offset: c.Header.SectionHeaderOffset,
			Size:   entsize * count,
			Len:    uint64(len(c.raw)),
		}
	}
	table, err := slice(c.raw, c.Header.SectionHeaderOffset, entsize*count, "section header table")
	if err != nil {
		return nil, err
	}
	return DecodeSections(table, c.Header.Class, c.Header.Endian, int(entsize), int(count))
}

func (c *Content) loadSymbols() error {
	var strtab []byte
	found, ok := lo.Find(c.Sections, func(s Section) bool {
		return s.Type == SectionTypeStrTab && s.Name == ".strtab"
	})
	if ok {
		data, err := c.SectionData(&found)
		if err != nil {
			return fmt.Errorf("string table: %w", err)
		}
		strtab = data
	}

	if symtab := c.SectionByType(SectionTypeSymTab); symtab != nil {
		symbols, err := c.decodeSymbolSection(symtab)
		if err != nil {
			return err
		}
		if len(strtab) == 0 {
			glog.V(1).Infof("Symbol table %q has no .strtab, names left empty", symtab.Name)
		}
		ResolveNames(strtab, symbols)
		c.Symbols = symbols
	} else {
		glog.V(2).Infof("No symbol table")
	}

	if dynsym := c.SectionByType(SectionTypeDynSym); dynsym != nil {
		symbols, err := c.decodeSymbolSection(dynsym)
		if err != nil {
			return err
		}
		dynstr, err := c.linkedStringTable(dynsym)
		if err != nil {
			return err
		}
		ResolveNames(dynstr, symbols)
		c.DynamicSymbols = symbols
	}
	return nil
}

func (c *Content) decodeSymbolSection(s *Section) ([]Symbol, error) {
	data, err := c.SectionData(s)
	if err != nil {
		return nil, fmt.Errorf("symbol section %s: %w", s.Name, err)
	}
	symbols, err := DecodeSymbols(data, c.Header.Class, c.Header.Endian)
	if err != nil {
		return nil, fmt.Errorf("symbol section %s: %w", s.Name, err)
	}
	return symbols, nil
}

// linkedStringTable returns the data of the string table s links to, or
// nothing when the link does not name one.
func (c *Content) linkedStringTable(s *Section) ([]byte, error) {
	if s.Link == 0 || uint64(s.Link) >= uint64(len(c.Sections)) {
		return nil, nil
	}
	link := &c.Sections[s.Link]
	if link.Type != SectionTypeStrTab {
		glog.V(1).Infof("Section %q links to %q which is not a string table", s.Name, link.Name)
		return nil, nil
	}
	return c.SectionData(link)
}

// SectionData returns the file bytes of s as a view into the raw buffer.
// Sections without file data return nil.
func (c *Content) SectionData(s *Section) ([]byte, error) {
	if !s.HasFileData() {
		return nil, nil
	}
	return slice(c.raw, s.Offset, s.Size, fmt.Sprintf("section %d (%s)", s.Index, s.Name))
}

// Section returns the first section called name.
func (c *Content) Section(name string) *Section {
	i := slices.IndexFunc(c.Sections, func(s Section) bool { return s.Name == name })
	if i < 0 {
		return nil
	}
	return &c.Sections[i]
}

// SectionByType returns the first section of type t.
func (c *Content) SectionByType(t SectionType) *Section {
	i := slices.IndexFunc(c.Sections, func(s Section) bool { return s.Type == t })
	if i < 0 {
		return nil
	}
	return &c.Sections[i]
}

func (c *Content) SectionsByType(t SectionType) []Section {
	return lo.Filter(c.Sections, func(s Section, _ int) bool { return s.Type == t })
}

// Functions returns the function symbols of the static and dynamic tables.
func (c *Content) Functions() []Symbol {
	all := make([]Symbol, 0, len(c.Symbols)+len(c.DynamicSymbols))
	all = append(all, c.Symbols...)
	all = append(all, c.DynamicSymbols...)
	return lo.Filter(all, func(s Symbol, _ int) bool { return s.Type == SymbolTypeFunc })
}

func (c *Content) String() string {
	s := "ELF Content\n" + c.Header.String()
	for i := range c.Sections {
		s += c.Sections[i].String()
	}
	for i := range c.Symbols {
		s += c.Symbols[i].String()
	}
	return s
}
