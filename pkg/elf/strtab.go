package elf

import (
	"bytes"
	"unicode/utf8"

	"github.com/golang/glog"
)

type named interface {
	nameOffset() uint32
	setName(string)
}

// StringAt returns the NUL-terminated string starting at off. It never
// fails: a missing terminator, an offset past the table or invalid UTF-8
// yield NameCorrupted, an empty string yields NameNull.
func StringAt(strtab []byte, off uint32) string {
	if uint64(off) >= uint64(len(strtab)) {
		return NameCorrupted
	}
	rest := strtab[off:]
	end := bytes.IndexByte(rest, 0)
	if end < 0 || !utf8.Valid(rest[:end]) {
		return NameCorrupted
	}
	if end == 0 {
		return NameNull
	}
	return string(rest[:end])
}

// ResolveNames names every entry from strtab. An empty table leaves the
// names untouched.
func ResolveNames[E any, P interface {
	*E
	named
}](strtab []byte, entries []E) {
	if len(strtab) == 0 {
		return
	}
	for i := range entries {
		p := P(&entries[i])
		name := StringAt(strtab, p.nameOffset())
		if name == NameCorrupted {
			glog.V(2).Infof("Corrupted name at string table offset %d", p.nameOffset())
		}
		p.setName(name)
	}
}
