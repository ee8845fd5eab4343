package elf

import (
	"bytes"
	"fmt"
	"strings"
)

type FileHeader struct {
	Class   Class
	Endian  Endian
	ABI     ABI
	Type    FileType
	Machine Machine
	Flags   ArchFlags
	Entry   uint64

	ProgramHeaderOffset    uint64
	SectionHeaderOffset    uint64
	ProgramHeaderEntrySize uint16
	SectionHeaderEntrySize uint16
	ProgramHeaderCount     uint16
	SectionHeaderCount     uint16

	// StringTableIndex is the index of the section holding section names.
	StringTableIndex uint16
}

// ParseHeader decodes the file header at the start of raw. Validation runs in
// a fixed order: magic, version, class, data encoding, then length.
func ParseHeader(raw []byte) (FileHeader, error) {
	if err := checkMagic(raw); err != nil {
		return FileHeader{}, err
	}
	if len(raw) <= identABIVersion {
		return FileHeader{}, &BoundsError{What: "elf identification", Size: identABIVersion + 1, Len: uint64(len(raw))}
	}
	if v := raw[identVersion]; v != 1 {
		return FileHeader{}, &BadVersionError{Version: v}
	}
	switch Class(raw[identClass]) {
	case Class32:
		return decodeHeader[uint32](raw)
	case Class64:
		return decodeHeader[uint64](raw)
	}
	return FileHeader{}, &BadPointerWidthError{Class: raw[identClass]}
}

func checkMagic(raw []byte) error {
	if len(raw) < len(magic) {
		return &BoundsError{What: "elf magic", Size: uint64(len(magic)), Len: uint64(len(raw))}
	}
	if !bytes.Equal(raw[:len(magic)], magic[:]) {
		var got [4]byte
		copy(got[:], raw)
		return &BadMagicError{Magic: got}
	}
	return nil
}

func decodeHeader[T word](raw []byte) (FileHeader, error) {
	endian := Endian(raw[identData])
	if endian != Little && endian != Big {
		return FileHeader{}, &BadEndianError{Code: raw[identData]}
	}
	class, size := Class32, header32Size
	if wordSize[T]() == 8 {
		class, size = Class64, header64Size
	}
	if _, err := slice(raw, 0, uint64(size), "file header"); err != nil {
		return FileHeader{}, err
	}

	h := FileHeader{
		Class:  class,
		Endian: endian,
		ABI:    NewABI(raw[identOSABI], raw[identABIVersion]),
	}
	c := newCursor(raw, endian, offType)
	h.Type = FileTypeOf(c.u16())
	h.Machine = Machine(c.u16())
	c.skip(4) // e_version, already checked in the identification bytes

	h.Entry = readWord[T](c)
	h.ProgramHeaderOffset = readWord[T](c)
	h.SectionHeaderOffset = readWord[T](c)

	h.Flags = ArchFlags(c.u32())
	c.skip(2) // e_ehsize
	h.ProgramHeaderEntrySize = c.u16()
	h.ProgramHeaderCount = c.u16()
	h.SectionHeaderEntrySize = c.u16()
	h.SectionHeaderCount = c.u16()
	h.StringTableIndex = c.u16()
	if c.err != nil {
		return FileHeader{}, fmt.Errorf("decode file header: %w", c.err)
	}
	return h, nil
}

func (h FileHeader) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ELF File Header\n")
	fmt.Fprintf(&b, "|- File type: %s\n", h.Type)
	fmt.Fprintf(&b, "|- Target\n")
	fmt.Fprintf(&b, "|  |- Class           : %s\n", h.Class)
	fmt.Fprintf(&b, "|  |- Endianness      : %s\n", h.Endian)
	fmt.Fprintf(&b, "|  |- Operating System: %s\n", h.ABI)
	fmt.Fprintf(&b, "|  |- Instruction Set : %s\n", h.Machine)
	fmt.Fprintf(&b, "|  |- Flags           : %s\n", h.Flags)
	fmt.Fprintf(&b, "|- Entry point: 0x%016X\n", h.Entry)
	fmt.Fprintf(&b, "|- Program Table\n")
	fmt.Fprintf(&b, "|  |- File offset      : 0x%X\n", h.ProgramHeaderOffset)
	fmt.Fprintf(&b, "|  |- Entry Size       : %d\n", h.ProgramHeaderEntrySize)
	fmt.Fprintf(&b, "|  |- Number of Entries: %d\n", h.ProgramHeaderCount)
	fmt.Fprintf(&b, "|- Section Table\n")
	fmt.Fprintf(&b, "   |- File offset         : 0x%X\n", h.SectionHeaderOffset)
	fmt.Fprintf(&b, "   |- Entry Size          : %d\n", h.SectionHeaderEntrySize)
	fmt.Fprintf(&b, "   |- Number of Entries   : %d\n", h.SectionHeaderCount)
	fmt.Fprintf(&b, "   |- String Section Index: %d\n", h.StringTableIndex)
	return b.String()
}
