package elf

import "fmt"

type FileType uint16

const (
	FileTypeNone        FileType = 0x0000
	FileTypeRelocatable FileType = 0x0001
	FileTypeExecutable  FileType = 0x0002
	FileTypeDynamic     FileType = 0x0003
	FileTypeCore        FileType = 0x0004

	FileTypeLoOS   FileType = 0xFE00
	FileTypeHiOS   FileType = 0xFEFF
	FileTypeLoProc FileType = 0xFF00
	FileTypeHiProc FileType = 0xFFFF
)

// FileTypeOf never fails: codes outside the standard values and the reserved
// ranges collapse to FileTypeNone.
func FileTypeOf(code uint16) FileType {
	t := FileType(code)
	switch {
	case t >= FileTypeRelocatable && t <= FileTypeCore:
		return t
	case t.IsOSSpecific(), t.IsProcessorSpecific():
		return t
	}
	return FileTypeNone
}

func (t FileType) IsOSSpecific() bool { return t >= FileTypeLoOS && t <= FileTypeHiOS }

func (t FileType) IsProcessorSpecific() bool { return t >= FileTypeLoProc }

func (t FileType) String() string {
	switch {
	case t == FileTypeRelocatable:
		return "Relocatable file"
	case t == FileTypeExecutable:
		return "Executable file"
	case t == FileTypeDynamic:
		return "Dynamic linked file"
	case t == FileTypeCore:
		return "Core file"
	case t.IsOSSpecific():
		return fmt.Sprintf("OS Specific file (0x%X)", uint16(t))
	case t.IsProcessorSpecific():
		return fmt.Sprintf("Processor Specific file (0x%X)", uint16(t))
	}
	return "Unknown ELF file type"
}
