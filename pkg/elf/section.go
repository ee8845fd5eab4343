package elf

import (
	"fmt"
	"strings"
)

type Section struct {
	// Index is the position of the header in the section table.
	Index      int
	NameOffset uint32
	Name       string

	Type      SectionType
	Flags     SectionFlags
	Addr      uint64
	Offset    uint64
	Size      uint64
	Link      uint32
	Info      uint32
	Align     uint64
	EntrySize uint64
}

// FileRange returns the offset and size of the section in the file image.
func (s *Section) FileRange() (uint64, uint64) { return s.Offset, s.Size }

// VirtualRange returns the address and size of the section in memory.
func (s *Section) VirtualRange() (uint64, uint64) { return s.Addr, s.Size }

// HasFileData is false for sections like .bss that take no room in the file.
func (s *Section) HasFileData() bool { return s.Type != SectionTypeNoBits }

func (s *Section) nameOffset() uint32  { return s.NameOffset }
func (s *Section) setName(name string) { s.Name = name }

// DecodeSections decodes count headers of entrySize bytes each from table.
// Names are left empty, see ResolveNames.
func DecodeSections(table []byte, class Class, endian Endian, entrySize, count int) ([]Section, error) {
	if entrySize < 0 || count < 0 {
		return nil, fmt.Errorf("invalid section table geometry: %d entries of %d bytes", count, entrySize)
	}
	if err := checkTable(table, uint64(entrySize), uint64(count)); err != nil {
		return nil, err
	}
	switch class {
	case Class32:
		return decodeSections[uint32](table, endian, entrySize, count)
	case Class64:
		return decodeSections[uint64](table, endian, entrySize, count)
	}
	return nil, &BadPointerWidthError{Class: uint8(class)}
}

// checkTable rejects tables that do not hold count entries, including
// products that would overflow and zero-sized entries.
func checkTable(table []byte, entrySize, count uint64) error {
	if count == 0 {
		return nil
	}
	n := uint64(len(table))
	if entrySize == 0 || count > n/entrySize {
		return &BoundsError{What: "section header table", Size: entrySize * count, Len: n}
	}
	return nil
}

func decodeSections[T word](table []byte, endian Endian, entrySize, count int) ([]Section, error) {
	sections := make([]Section, count)
	for i := range sections {
		chunk := table[i*entrySize : (i+1)*entrySize]
		if err := decodeSection[T](chunk, endian, &sections[i]); err != nil {
			return nil, fmt.Errorf("decode section header %d: %w", i, err)
		}
		sections[i].Index = i
	}
	return sections, nil
}

func decodeSection[T word](chunk []byte, endian Endian, s *Section) error {
	c := newCursor(chunk, endian, 0)
	s.NameOffset = c.u32()
	s.Type = SectionTypeOf(c.u32())
	s.Flags = SectionFlags(readWord[T](c))
	s.Addr = readWord[T](c)
	s.Offset = readWord[T](c)
	s.Size = readWord[T](c)
	s.Link = c.u32()
	s.Info = c.u32()
	s.Align = readWord[T](c)
	s.EntrySize = readWord[T](c)
	return c.err
}

func (s *Section) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ELF Section Header\n")
	fmt.Fprintf(&b, "|- Section ID\n")
	fmt.Fprintf(&b, "|  |- Section index: %d\n", s.Index)
	fmt.Fprintf(&b, "|  |- Name offset  : %d\n", s.NameOffset)
	fmt.Fprintf(&b, "|  |- Name         : %s\n", s.Name)
	fmt.Fprintf(&b, "|- Section type : %s\n", s.Type)
	fmt.Fprintf(&b, "|- Section flags: %s\n", s.Flags)
	if s.Info > 0 {
		fmt.Fprintf(&b, "|- Section info : 0x%X\n", s.Info)
	}
	if s.Link > 0 {
		fmt.Fprintf(&b, "|- Linked with section: %d\n", s.Link)
	}
	if s.EntrySize > 0 {
		fmt.Fprintf(&b, "|- Internal entry size: %d\n", s.EntrySize)
	}
	fmt.Fprintf(&b, "|- Section Addressing Information\n")
	fmt.Fprintf(&b, "   |- Virtual Address: 0x%016X\n", s.Addr)
	fmt.Fprintf(&b, "   |- File offset    : 0x%016X\n", s.Offset)
	fmt.Fprintf(&b, "   |- Size           : %.2f MiB | %.2f kiB | %d B\n",
		float64(s.Size)/(1024*1024), float64(s.Size)/1024, s.Size)
	fmt.Fprintf(&b, "   |- Alignment      : %d bytes\n", s.Align)
	return b.String()
}
