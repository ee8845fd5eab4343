package proc

import "fmt"

// Mapping is one line of /proc/<pid>/maps.
type Mapping struct {
	Name       string
	StartAddr  uint64
	EndAddr    uint64
	Perms      string
	FileOffset uint64
	DevMajor   uint64
	DevMinor   uint64
	Inode      uint64
	Memfd      bool
}

func (m *Mapping) Executable() bool { return len(m.Perms) == 4 && m.Perms[2] == 'x' }

// Contains reports whether addr falls in the mapping, and returns its offset
// in the mapped file.
func (m *Mapping) Contains(addr uint64) (uint64, bool) {
	if addr < m.StartAddr || addr >= m.EndAddr {
		return 0, false
	}
	return addr - m.StartAddr + m.FileOffset, true
}

func (m *Mapping) String() string {
	if m == nil {
		return ""
	}

	return fmt.Sprintf("%s 0x%016x-0x%016x %s 0x%016x %x:%x %d %t",
		m.Name,
		m.StartAddr,
		m.EndAddr,
		m.Perms,
		m.FileOffset,
		m.DevMajor,
		m.DevMinor,
		m.Inode,
		m.Memfd)
}
