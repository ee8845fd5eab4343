package elf

import "fmt"

type SymbolType uint8

const (
	SymbolTypeNone    SymbolType = 0
	SymbolTypeObject  SymbolType = 1
	SymbolTypeFunc    SymbolType = 2
	SymbolTypeSection SymbolType = 3
	SymbolTypeFile    SymbolType = 4
	SymbolTypeLoProc  SymbolType = 13
	SymbolTypeHiProc  SymbolType = 15
)

// SymbolTypeOf maps the low nibble of st_info. Unnamed values outside the
// processor range become SymbolTypeNone.
func SymbolTypeOf(code uint8) SymbolType {
	t := SymbolType(code)
	if (t >= SymbolTypeObject && t <= SymbolTypeFile) || t.IsProcessorSpecific() {
		return t
	}
	return SymbolTypeNone
}

func (t SymbolType) IsProcessorSpecific() bool { return t >= SymbolTypeLoProc && t <= SymbolTypeHiProc }

func (t SymbolType) String() string {
	switch {
	case t == SymbolTypeObject:
		return "Object"
	case t == SymbolTypeFunc:
		return "Function"
	case t == SymbolTypeSection:
		return "Section"
	case t == SymbolTypeFile:
		return "File"
	case t.IsProcessorSpecific():
		return fmt.Sprintf("Processor %d", uint8(t))
	}
	return "No type"
}

type SymbolBind uint8

const (
	SymbolBindLocal  SymbolBind = 0
	SymbolBindGlobal SymbolBind = 1
	SymbolBindWeak   SymbolBind = 2
	SymbolBindLoProc SymbolBind = 13
	SymbolBindHiProc SymbolBind = 15

	// SymbolBindNone is outside the 4-bit on-disk range.
	SymbolBindNone SymbolBind = 0xFF
)

func SymbolBindOf(code uint8) SymbolBind {
	b := SymbolBind(code)
	if b <= SymbolBindWeak || b.IsProcessorSpecific() {
		return b
	}
	return SymbolBindNone
}

func (b SymbolBind) IsProcessorSpecific() bool { return b >= SymbolBindLoProc && b <= SymbolBindHiProc }

func (b SymbolBind) String() string {
	switch {
	case b == SymbolBindLocal:
		return "Local"
	case b == SymbolBindGlobal:
		return "Global"
	case b == SymbolBindWeak:
		return "Weak"
	case b.IsProcessorSpecific():
		return fmt.Sprintf("Processor %d", uint8(b))
	}
	return "No binding"
}
