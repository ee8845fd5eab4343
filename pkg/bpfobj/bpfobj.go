// Package bpfobj reads BPF object files, the ELF relocatables produced by
// clang -target bpf, through cilium/ebpf.
package bpfobj

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/cilium/ebpf"
	"github.com/cilium/ebpf/btf"
	"github.com/golang/glog"
	"github.com/samber/lo"

	"github.com/vietanhduong/elfcontent/pkg/elf"
)

var (
	ErrNotBPF = errors.New("not a BPF object")
	ErrNoBTF  = errors.New("no .BTF section")
)

type Program struct {
	Name         string
	Section      string
	Type         string
	License      string
	Instructions int
}

type Map struct {
	Name       string
	Type       string
	KeySize    uint32
	ValueSize  uint32
	MaxEntries uint32
}

// Object lists the programs and maps of a BPF object, sorted by name.
type Object struct {
	Programs []Program
	Maps     []Map
}

// Inspect loads the collection spec from the raw buffer of c. Nothing is
// loaded into the kernel.
func Inspect(c *elf.Content) (*Object, error) {
	if c.Header.Machine != elf.MachineBPF {
		return nil, fmt.Errorf("%w: instruction set is %s", ErrNotBPF, c.Header.Machine)
	}
	spec, err := ebpf.LoadCollectionSpecFromReader(bytes.NewReader(c.Raw()))
	if err != nil {
		return nil, fmt.Errorf("load collection spec: %w", err)
	}

	obj := &Object{
		Programs: lo.MapToSlice(spec.Programs, func(name string, p *ebpf.ProgramSpec) Program {
			return Program{
				Name:         name,
				Section:      p.SectionName,
				Type:         p.Type.String(),
				License:      p.License,
				Instructions: len(p.Instructions),
			}
		}),
		Maps: lo.MapToSlice(spec.Maps, func(name string, m *ebpf.MapSpec) Map {
			return Map{
				Name:       name,
				Type:       m.Type.String(),
				KeySize:    m.KeySize,
				ValueSize:  m.ValueSize,
				MaxEntries: m.MaxEntries,
			}
		}),
	}
	sort.Slice(obj.Programs, func(i, j int) bool { return obj.Programs[i].Name < obj.Programs[j].Name })
	sort.Slice(obj.Maps, func(i, j int) bool { return obj.Maps[i].Name < obj.Maps[j].Name })
	glog.V(2).Infof("BPF object: %d programs, %d maps", len(obj.Programs), len(obj.Maps))
	return obj, nil
}

// LoadBTF parses the .BTF section of c.
func LoadBTF(c *elf.Content) (*btf.Spec, error) {
	if c.Section(".BTF") == nil {
		return nil, ErrNoBTF
	}
	spec, err := btf.LoadSpecFromReader(bytes.NewReader(c.Raw()))
	if err != nil {
		return nil, fmt.Errorf("load btf: %w", err)
	}
	return spec, nil
}

// TypeNames returns the names of the named types in spec, in spec order.
func TypeNames(spec *btf.Spec) []string {
	var names []string
	iter := spec.Iterate()
	for iter.Next() {
		if name := iter.Type.TypeName(); name != "" {
			names = append(names, name)
		}
	}
	return names
}
