package elf

import (
	"encoding/binary"
	"fmt"
)

const (
	NameCorrupted = "CORRUPTED"
	NameNull      = "NULL"
)

var magic = [4]byte{0x7F, 0x45, 0x4C, 0x46}

// Fixed offsets into the file header.
const (
	identClass      = 0x04
	identData       = 0x05
	identVersion    = 0x06
	identOSABI      = 0x07
	identABIVersion = 0x08

	// e_type, followed by e_machine at 0x12 and the class dependent
	// fields from 0x18.
	offType = 0x10
)

const (
	header32Size  = 52
	header64Size  = 64
	section32Size = 40
	section64Size = 64
	symbol32Size  = 16
	symbol64Size  = 24
)

// Special section indexes.
const (
	SHN_UNDEF  uint16 = 0
	SHN_XINDEX uint16 = 0xFFFF
)

type Class uint8

const (
	Class32 Class = 1
	Class64 Class = 2
)

func (c Class) String() string {
	switch c {
	case Class32:
		return "ELF32"
	case Class64:
		return "ELF64"
	}
	return fmt.Sprintf("Unknown class (%d)", uint8(c))
}

type Endian uint8

const (
	Little Endian = 1
	Big    Endian = 2
)

func (e Endian) ByteOrder() binary.ByteOrder {
	if e == Big {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (e Endian) String() string {
	switch e {
	case Little:
		return "Little Endian"
	case Big:
		return "Big Endian"
	}
	return fmt.Sprintf("Unknown endian (%d)", uint8(e))
}

// ArchFlags is the processor specific e_flags word. No bit is interpreted.
type ArchFlags uint32

func (f ArchFlags) String() string { return fmt.Sprintf("0x%08X", uint32(f)) }
