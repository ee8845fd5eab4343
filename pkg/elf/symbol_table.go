package elf

import (
	"sort"

	"github.com/ianlancetaylor/demangle"
	"github.com/samber/lo"
)

type DemangleType string

const (
	DemangleNone       DemangleType = "NONE"
	DemangleSimplified DemangleType = "SIMPLIFIED"
	DemangleTemplates  DemangleType = "TEMPLATES"
	DemangleFull       DemangleType = "FULL"
)

func (dt DemangleType) ToOptions() []demangle.Option {
	switch dt {
	case DemangleNone:
		return nil
	case DemangleSimplified:
		return []demangle.Option{demangle.NoParams, demangle.NoEnclosingParams, demangle.NoTemplateParams}
	case DemangleTemplates:
		return []demangle.Option{demangle.NoParams, demangle.NoEnclosingParams}
	default:
		return []demangle.Option{demangle.NoClones}
	}
}

type symbolKey struct {
	name  string
	value uint64
}

type SymbolTableOptions struct {
	DemangleOpts []demangle.Option
	// Functions starting in [IgnoreFrom, IgnoreTo) are left out.
	IgnoreFrom, IgnoreTo uint64
}

// SymbolTable resolves addresses to function names.
type SymbolTable struct {
	Index struct {
		Names  []string
		Values []uint64
		Sizes  []uint64
	}

	opts []demangle.Option
}

func (c *Content) NewSymbolTable(opts *SymbolTableOptions) *SymbolTable {
	if opts == nil {
		opts = &SymbolTableOptions{}
	}
	funcs := lo.Filter(c.Functions(), func(s Symbol, _ int) bool {
		if s.Value == 0 || s.Name == "" || s.Name == NameNull || s.Name == NameCorrupted {
			return false
		}
		return s.Value < opts.IgnoreFrom || s.Value >= opts.IgnoreTo
	})
	// The same function often appears in both tables.
	funcs = lo.UniqBy(funcs, func(s Symbol) symbolKey { return symbolKey{s.Name, s.Value} })

	sort.Slice(funcs, func(i, j int) bool {
		if funcs[i].Value == funcs[j].Value {
			return funcs[i].Name < funcs[j].Name
		}
		return funcs[i].Value < funcs[j].Value
	})

	ret := &SymbolTable{opts: opts.DemangleOpts}
	ret.Index.Names = make([]string, len(funcs))
	ret.Index.Values = make([]uint64, len(funcs))
	ret.Index.Sizes = make([]uint64, len(funcs))
	for i := range funcs {
		ret.Index.Names[i] = funcs[i].Name
		ret.Index.Values[i] = funcs[i].Value
		ret.Index.Sizes[i] = funcs[i].Size
	}
	return ret
}

func (s *SymbolTable) Size() int { return len(s.Index.Names) }

// Resolve returns the function containing addr. A function with size 0
// covers everything up to the next one.
func (s *SymbolTable) Resolve(addr uint64) string {
	i := s.findIndex(addr)
	if i < 0 {
		return ""
	}
	name := s.Index.Names[i]
	if len(s.opts) > 0 {
		name = demangle.Filter(name, s.opts...)
	}
	return name
}

func (s *SymbolTable) findIndex(addr uint64) int {
	values := s.Index.Values
	i := sort.Search(len(values), func(i int) bool { return values[i] > addr }) - 1
	if i < 0 {
		return -1
	}
	if size := s.Index.Sizes[i]; size > 0 && addr-values[i] >= size {
		return -1
	}
	return i
}
