package elf

import "strings"

type SectionFlags uint64

const (
	SHF_WRITE            SectionFlags = 0x001
	SHF_ALLOC            SectionFlags = 0x002
	SHF_EXECINSTR        SectionFlags = 0x004
	SHF_MERGE            SectionFlags = 0x010
	SHF_STRINGS          SectionFlags = 0x020
	SHF_INFO_LINK        SectionFlags = 0x040
	SHF_LINK_ORDER       SectionFlags = 0x080
	SHF_OS_NONCONFORMING SectionFlags = 0x100
	SHF_GROUP            SectionFlags = 0x200
	SHF_TLS              SectionFlags = 0x400
)

func (f SectionFlags) has(bit SectionFlags) bool { return f&bit != 0 }

func (f SectionFlags) Write() bool           { return f.has(SHF_WRITE) }
func (f SectionFlags) Alloc() bool           { return f.has(SHF_ALLOC) }
func (f SectionFlags) Exec() bool            { return f.has(SHF_EXECINSTR) }
func (f SectionFlags) Merge() bool           { return f.has(SHF_MERGE) }
func (f SectionFlags) Strings() bool         { return f.has(SHF_STRINGS) }
func (f SectionFlags) InfoLink() bool        { return f.has(SHF_INFO_LINK) }
func (f SectionFlags) LinkOrder() bool       { return f.has(SHF_LINK_ORDER) }
func (f SectionFlags) OSNonConforming() bool { return f.has(SHF_OS_NONCONFORMING) }
func (f SectionFlags) Group() bool           { return f.has(SHF_GROUP) }
func (f SectionFlags) TLS() bool             { return f.has(SHF_TLS) }

var sectionFlagNames = []struct {
	bit  SectionFlags
	name string
}{
	{SHF_WRITE, "Write"},
	{SHF_ALLOC, "Alloc"},
	{SHF_EXECINSTR, "Exec"},
	{SHF_MERGE, "Merge"},
	{SHF_STRINGS, "Strings"},
	{SHF_INFO_LINK, "InfoLink"},
	{SHF_LINK_ORDER, "LinkOrder"},
	{SHF_OS_NONCONFORMING, "OS-Non conforming"},
	{SHF_GROUP, "Group"},
	{SHF_TLS, "TLS"},
}

func (f SectionFlags) String() string {
	var names []string
	for _, fl := range sectionFlagNames {
		if f.has(fl.bit) {
			names = append(names, fl.name)
		}
	}
	if len(names) == 0 {
		return "----"
	}
	return strings.Join(names, " + ")
}
