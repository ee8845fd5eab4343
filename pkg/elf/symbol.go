package elf

import (
	"fmt"
	"strings"
)

type Symbol struct {
	NameOffset uint32
	Name       string

	Type       SymbolType
	Bind       SymbolBind
	Visibility uint8
	// SectionIndex is 0 when the symbol is not tied to a section.
	SectionIndex uint16
	Value        uint64
	Size         uint64
}

func (s *Symbol) Address() uint64 { return s.Value }

func (s *Symbol) nameOffset() uint32  { return s.NameOffset }
func (s *Symbol) setName(name string) { s.Name = name }

func symbolSize(class Class) int {
	if class == Class64 {
		return symbol64Size
	}
	return symbol32Size
}

// DecodeSymbols decodes every fixed-size record of a symbol table. A table
// whose length is not a multiple of the record size is rejected.
func DecodeSymbols(table []byte, class Class, endian Endian) ([]Symbol, error) {
	var decode func([]byte, Endian, *Symbol) error
	switch class {
	case Class32:
		decode = decodeSymbol32
	case Class64:
		decode = decodeSymbol64
	default:
		return nil, &BadPointerWidthError{Class: uint8(class)}
	}

	size := symbolSize(class)
	if rem := len(table) % size; rem != 0 {
		return nil, &BoundsError{
			What:   "symbol table record",
			Offset: uint64(len(table) - rem),
			Size:   uint64(size),
			Len:    uint64(len(table)),
		}
	}
	symbols := make([]Symbol, len(table)/size)
	for i := range symbols {
		if err := decode(table[i*size:(i+1)*size], endian, &symbols[i]); err != nil {
			return nil, fmt.Errorf("decode symbol %d: %w", i, err)
		}
	}
	return symbols, nil
}

func decodeSymbol32(chunk []byte, endian Endian, s *Symbol) error {
	c := newCursor(chunk, endian, 0)
	s.NameOffset = c.u32()
	s.Value = readWord[uint32](c)
	s.Size = readWord[uint32](c)
	s.setInfo(c.u8())
	s.Visibility = c.u8()
	s.SectionIndex = c.u16()
	return c.err
}

func decodeSymbol64(chunk []byte, endian Endian, s *Symbol) error {
	c := newCursor(chunk, endian, 0)
	s.NameOffset = c.u32()
	s.setInfo(c.u8())
	s.Visibility = c.u8()
	s.SectionIndex = c.u16()
	s.Value = readWord[uint64](c)
	s.Size = readWord[uint64](c)
	return c.err
}

// setInfo splits st_info: low nibble is the type, high nibble the binding.
func (s *Symbol) setInfo(info uint8) {
	s.Type = SymbolTypeOf(info & 0xF)
	s.Bind = SymbolBindOf(info >> 4)
}

func (s *Symbol) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ELF Symbol\n")
	fmt.Fprintf(&b, "|- Symbol ID\n")
	fmt.Fprintf(&b, "|  |- Name offset  : %d\n", s.NameOffset)
	fmt.Fprintf(&b, "|  |- Name         : %s\n", s.Name)
	fmt.Fprintf(&b, "|- Symbol Information\n")
	fmt.Fprintf(&b, "|  |- Type      : %s\n", s.Type)
	fmt.Fprintf(&b, "|  |- Binding   : %s\n", s.Bind)
	fmt.Fprintf(&b, "|  |- Visibility: %d\n", s.Visibility)
	if s.SectionIndex != 0 {
		fmt.Fprintf(&b, "|- Related section index: %d\n", s.SectionIndex)
	}
	fmt.Fprintf(&b, "|- Symbol value\n")
	label := "Value"
	if s.Type == SymbolTypeFunc {
		label = "Address"
	}
	fmt.Fprintf(&b, "   |- %s: 0x%016X\n", label, s.Value)
	fmt.Fprintf(&b, "   |- Size: %d B\n", s.Size)
	return b.String()
}
