// Package elftest synthesizes small ELF images for tests.
//
// Sections named .shstrtab, .strtab, .symtab, .dynstr and .dynsym are filled
// in from the image when their Data is nil. Section 0 is always the null
// section and is not listed in Image.Sections.
package elftest

import "encoding/binary"

const (
	SHT_PROGBITS = 1
	SHT_SYMTAB   = 2
	SHT_STRTAB   = 3
	SHT_NOBITS   = 8
	SHT_DYNSYM   = 11

	SHF_WRITE     = 0x1
	SHF_ALLOC     = 0x2
	SHF_EXECINSTR = 0x4

	STB_LOCAL  = 0
	STB_GLOBAL = 1
	STB_WEAK   = 2

	STT_NOTYPE = 0
	STT_OBJECT = 1
	STT_FUNC   = 2
)

type Section struct {
	Name    string
	Type    uint32
	Flags   uint64
	Addr    uint64
	Data    []byte
	Link    uint32
	Info    uint32
	Align   uint64
	EntSize uint64

	// Offset and Size replace the computed values when nonzero.
	Offset uint64
	Size   uint64
}

type Symbol struct {
	Name  string
	Value uint64
	Size  uint64
	Info  uint8
	Other uint8
	Shndx uint16
}

type Image struct {
	Class      byte // 1 or 2
	Data       byte // 1 little, 2 big
	Version    byte // 0 means 1
	OSABI      byte
	ABIVersion byte
	Type       uint16
	Machine    uint16
	Entry      uint64
	Flags      uint32

	Sections       []Section
	Symbols        []Symbol
	DynamicSymbols []Symbol

	// ExtendedNumbering stores the section count and the name table index
	// in section 0, the way files with many sections do.
	ExtendedNumbering bool
}

// Info packs a binding and a type into st_info.
func Info(bind, typ uint8) uint8 { return bind<<4 | typ&0xF }

func HeaderSize(class byte) int {
	if class == 2 {
		return 64
	}
	return 52
}

func SectionHeaderSize(class byte) int {
	if class == 2 {
		return 64
	}
	return 40
}

func SymbolSize(class byte) int {
	if class == 2 {
		return 24
	}
	return 16
}

type writer struct {
	order binary.AppendByteOrder
	wide  bool
	b     []byte
}

func (w *writer) u8(v uint8) { w.b = append(w.b, v) }

func (w *writer) u16(v uint16) { w.b = w.order.AppendUint16(w.b, v) }

func (w *writer) u32(v uint32) { w.b = w.order.AppendUint32(w.b, v) }

func (w *writer) u64(v uint64) { w.b = w.order.AppendUint64(w.b, v) }

func (w *writer) word(v uint64) {
	if w.wide {
		w.u64(v)
	} else {
		w.u32(uint32(v))
	}
}

func (w *writer) align(n int) {
	for len(w.b)%n != 0 {
		w.b = append(w.b, 0)
	}
}

func (im *Image) newWriter() *writer {
	w := &writer{order: binary.LittleEndian, wide: im.Class == 2}
	if im.Data == 2 {
		w.order = binary.BigEndian
	}
	return w
}

// buildStrings lays out a string table and the offset of every name in it.
func buildStrings(names []string) ([]byte, []uint32) {
	table := []byte{0}
	offs := make([]uint32, len(names))
	for i, name := range names {
		if name == "" {
			continue
		}
		offs[i] = uint32(len(table))
		table = append(table, name...)
		table = append(table, 0)
	}
	return table, offs
}

func (im *Image) encodeSymbols(symbols []Symbol, offs []uint32) []byte {
	w := im.newWriter()
	w.b = []byte{}
	for i, s := range symbols {
		w.u32(offs[i])
		if w.wide {
			w.u8(s.Info)
			w.u8(s.Other)
			w.u16(s.Shndx)
			w.u64(s.Value)
			w.u64(s.Size)
		} else {
			w.u32(uint32(s.Value))
			w.u32(uint32(s.Size))
			w.u8(s.Info)
			w.u8(s.Other)
			w.u16(s.Shndx)
		}
	}
	return w.b
}

func symbolNames(symbols []Symbol) []string {
	names := make([]string, len(symbols))
	for i, s := range symbols {
		names[i] = s.Name
	}
	return names
}

// Bytes lays out the image: header, section contents, then the section
// header table.
func (im *Image) Bytes() []byte {
	secs := append([]Section{{}}, im.Sections...)
	index := make(map[string]int)
	for i := 1; i < len(secs); i++ {
		if _, ok := index[secs[i].Name]; !ok {
			index[secs[i].Name] = i
		}
	}

	secNames := make([]string, len(secs))
	for i := range secs {
		secNames[i] = secs[i].Name
	}
	shstrtab, nameOffs := buildStrings(secNames)
	strtab, symOffs := buildStrings(symbolNames(im.Symbols))
	dynstr, dynOffs := buildStrings(symbolNames(im.DynamicSymbols))

	for i := 1; i < len(secs); i++ {
		s := &secs[i]
		switch s.Name {
		case ".shstrtab":
			defaults(s, SHT_STRTAB, shstrtab, 0)
		case ".strtab":
			defaults(s, SHT_STRTAB, strtab, 0)
		case ".dynstr":
			defaults(s, SHT_STRTAB, dynstr, 0)
		case ".symtab":
			defaults(s, SHT_SYMTAB, im.encodeSymbols(im.Symbols, symOffs), uint64(SymbolSize(im.Class)))
			if s.Link == 0 {
				s.Link = uint32(index[".strtab"])
			}
		case ".dynsym":
			defaults(s, SHT_DYNSYM, im.encodeSymbols(im.DynamicSymbols, dynOffs), uint64(SymbolSize(im.Class)))
			if s.Link == 0 {
				s.Link = uint32(index[".dynstr"])
			}
		}
	}

	w := im.newWriter()
	w.b = make([]byte, HeaderSize(im.Class))
	offsets := make([]uint64, len(secs))
	sizes := make([]uint64, len(secs))
	for i := 1; i < len(secs); i++ {
		s := &secs[i]
		w.align(8)
		offsets[i] = uint64(len(w.b))
		if s.Type != SHT_NOBITS {
			w.b = append(w.b, s.Data...)
		}
		sizes[i] = uint64(len(s.Data))
		if s.Offset != 0 {
			offsets[i] = s.Offset
		}
		if s.Size != 0 {
			sizes[i] = s.Size
		}
	}

	shstrndx := uint16(index[".shstrtab"])
	shnum := uint16(len(secs))
	if im.ExtendedNumbering {
		secs[0].Link = uint32(shstrndx)
		sizes[0] = uint64(len(secs))
		shstrndx, shnum = 0xFFFF, 0
	}

	w.align(8)
	shoff := uint64(len(w.b))
	for i, s := range secs {
		w.u32(nameOffs[i])
		w.u32(s.Type)
		w.word(s.Flags)
		w.word(s.Addr)
		w.word(offsets[i])
		w.word(sizes[i])
		w.u32(s.Link)
		w.u32(s.Info)
		w.word(s.Align)
		w.word(s.EntSize)
	}

	out := w.b
	h := im.newWriter()
	h.b = []byte{}
	version := im.Version
	if version == 0 {
		version = 1
	}
	h.b = append(h.b, 0x7F, 'E', 'L', 'F', im.Class, im.Data, version, im.OSABI, im.ABIVersion)
	h.align(16)
	h.u16(im.Type)
	h.u16(im.Machine)
	h.u32(1)
	h.word(im.Entry)
	h.word(0) // no program headers
	h.word(shoff)
	h.u32(im.Flags)
	h.u16(uint16(HeaderSize(im.Class)))
	if h.wide {
		h.u16(56)
	} else {
		h.u16(32)
	}
	h.u16(0)
	h.u16(uint16(SectionHeaderSize(im.Class)))
	h.u16(shnum)
	h.u16(shstrndx)
	copy(out, h.b)
	return out
}

func defaults(s *Section, typ uint32, data []byte, entsize uint64) {
	if s.Type == 0 {
		s.Type = typ
	}
	if s.Data == nil {
		s.Data = data
	}
	if s.EntSize == 0 {
		s.EntSize = entsize
	}
}
