package proc

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/golang/glog"
	"github.com/samber/lo"
)

// ReadMaps returns the executable, file backed mappings of pid.
func ReadMaps(pid int) ([]*Mapping, error) {
	mapfile := HostProcPath(fmt.Sprintf("%d", pid), "maps")
	f, err := os.Open(mapfile)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", mapfile, err)
	}
	defer f.Close()

	ret, err := ParseMaps(f, pid)
	if err != nil {
		return nil, fmt.Errorf("parse proc map %s: %w", mapfile, err)
	}
	return ret, nil
}

// ParseMaps reads maps lines from r and keeps the executable mappings that
// are backed by a file. Memfd mappings are resolved through the fds of pid.
func ParseMaps(r io.Reader, pid int) ([]*Mapping, error) {
	var ret []*Mapping
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		m, err := parseMapping(line)
		if err != nil {
			glog.V(2).Infof("Skip maps line %q: %v", line, err)
			continue
		}
		if !m.Executable() || isAnonymous(m.Name) {
			continue
		}

		if strings.Contains(m.Name, "/memfd:") {
			if resolved := findMemFdPath(pid, m.Inode); resolved != "" {
				m.Name = resolved
				m.Memfd = true
			}
		}
		ret = append(ret, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ret, nil
}

// Modules returns the distinct files mapped by maps, in mapping order.
func Modules(maps []*Mapping) []string {
	return lo.Uniq(lo.Map(maps, func(m *Mapping, _ int) string { return m.Name }))
}

func parseMapping(line string) (*Mapping, error) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return nil, fmt.Errorf("want at least 5 fields, got %d", len(fields))
	}
	var m Mapping
	var err error
	addrs := strings.SplitN(fields[0], "-", 2)
	if len(addrs) != 2 {
		return nil, fmt.Errorf("bad address range %q", fields[0])
	}
	if m.StartAddr, err = strconv.ParseUint(addrs[0], 16, 64); err != nil {
		return nil, err
	}
	if m.EndAddr, err = strconv.ParseUint(addrs[1], 16, 64); err != nil {
		return nil, err
	}
	m.Perms = fields[1]
	if m.FileOffset, err = strconv.ParseUint(fields[2], 16, 64); err != nil {
		return nil, err
	}
	dev := strings.SplitN(fields[3], ":", 2)
	if len(dev) != 2 {
		return nil, fmt.Errorf("bad device %q", fields[3])
	}
	if m.DevMajor, err = strconv.ParseUint(dev[0], 16, 64); err != nil {
		return nil, err
	}
	if m.DevMinor, err = strconv.ParseUint(dev[1], 16, 64); err != nil {
		return nil, err
	}
	if m.Inode, err = strconv.ParseUint(fields[4], 10, 64); err != nil {
		return nil, err
	}
	if len(fields) > 5 {
		// Names may contain spaces.
		m.Name = strings.Join(fields[5:], " ")
	}
	return &m, nil
}

func isAnonymous(mapname string) bool {
	return mapname == "" || strings.HasPrefix(mapname, "//anon") ||
		strings.HasPrefix(mapname, "/dev/zero") ||
		strings.HasPrefix(mapname, "/anon_hugepage") ||
		strings.HasPrefix(mapname, "[") ||
		strings.HasPrefix(mapname, "/SYSV")
}

func findMemFdPath(pid int, inode uint64) string {
	var ret string
	fdpath := HostProcPath(fmt.Sprintf("%d/fd", pid))
	err := filepath.Walk(fdpath, func(path string, info fs.FileInfo, err error) error {
		if ret != "" || err != nil || info == nil {
			return nil
		}
		stats, ok := info.Sys().(*syscall.Stat_t)
		if !ok {
			return nil
		}
		if stats.Ino == inode {
			ret = path
		}
		return nil
	})
	if err != nil {
		glog.Warningf("Failed to walk at dir %s: %v", fdpath, err)
	}
	return ret
}
