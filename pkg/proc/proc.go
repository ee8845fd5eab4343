package proc

import (
	"flag"
	"fmt"
	"path"

	"golang.org/x/sys/unix"
)

var (
	procPath = flag.String("proc-path", "/proc", "Path to proc directory")
	hostPath = flag.String("host-path", "/", "The host directory. Useful in container.")
)

func ProcPath(paths ...string) string {
	p := append([]string{*procPath}, paths...)
	return path.Join(p...)
}

func HostProcPath(paths ...string) string {
	if *hostPath == "" || *hostPath == "/" {
		return ProcPath(paths...)
	}
	p := append([]string{*hostPath, *procPath}, paths...)
	return path.Join(p...)
}

// ModulePath returns a path the mapped file of m can be opened at. Files are
// looked up through the root of the process first, so mappings of processes
// in other mount namespaces still resolve.
func ModulePath(pid int, m *Mapping) string {
	if m.Memfd {
		return m.Name
	}
	root := HostProcPath(fmt.Sprintf("%d/root", pid), m.Name)
	if unix.Access(root, unix.R_OK) == nil {
		return root
	}
	return m.Name
}
