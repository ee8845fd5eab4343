package elf

import "fmt"

type SectionType uint32

const (
	SectionTypeNull         SectionType = 0x00
	SectionTypeProgBits     SectionType = 0x01
	SectionTypeSymTab       SectionType = 0x02
	SectionTypeStrTab       SectionType = 0x03
	SectionTypeRela         SectionType = 0x04
	SectionTypeHash         SectionType = 0x05
	SectionTypeDynamic      SectionType = 0x06
	SectionTypeNote         SectionType = 0x07
	SectionTypeNoBits       SectionType = 0x08
	SectionTypeRel          SectionType = 0x09
	SectionTypeShLib        SectionType = 0x0A
	SectionTypeDynSym       SectionType = 0x0B
	SectionTypeInitArray    SectionType = 0x0E
	SectionTypeFiniArray    SectionType = 0x0F
	SectionTypePreInitArray SectionType = 0x10
	SectionTypeGroup        SectionType = 0x11
	SectionTypeSymTabShndx  SectionType = 0x12
	SectionTypeNum          SectionType = 0x13
	SectionTypeLoOS         SectionType = 0x60000000
)

var sectionTypeNames = map[SectionType]string{
	SectionTypeNull:         "Null/Unused/Unknown",
	SectionTypeProgBits:     "Program data",
	SectionTypeSymTab:       "Symbol table",
	SectionTypeStrTab:       "String table",
	SectionTypeRela:         "Relocation entries with addend",
	SectionTypeHash:         "Symbol hash table",
	SectionTypeDynamic:      "Dynamic linking information",
	SectionTypeNote:         "Notes",
	SectionTypeNoBits:       "BSS",
	SectionTypeRel:          "Relocation entries with no addends",
	SectionTypeShLib:        "RESERVED",
	SectionTypeDynSym:       "Dynamic linker symbol table",
	SectionTypeInitArray:    "Array of constructors",
	SectionTypeFiniArray:    "Array of destructors",
	SectionTypePreInitArray: "Array of pre-constructors",
	SectionTypeGroup:        "Section group",
	SectionTypeSymTabShndx:  "Extended section indices",
	SectionTypeNum:          "Number of defined types",
}

// SectionTypeOf keeps standard codes and the OS specific range. Anything else,
// including the gaps of the standard table, becomes SectionTypeNull.
func SectionTypeOf(code uint32) SectionType {
	t := SectionType(code)
	if t.IsOSSpecific() {
		return t
	}
	if _, ok := sectionTypeNames[t]; ok {
		return t
	}
	return SectionTypeNull
}

func (t SectionType) IsOSSpecific() bool { return t >= SectionTypeLoOS }

func (t SectionType) String() string {
	if t.IsOSSpecific() {
		return fmt.Sprintf("OS Specific (0x%X)", uint32(t))
	}
	if name, ok := sectionTypeNames[t]; ok {
		return name
	}
	return sectionTypeNames[SectionTypeNull]
}
