package main

import (
	"debug/dwarf"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/samber/lo"

	"github.com/vietanhduong/elfcontent/pkg/bpfobj"
	"github.com/vietanhduong/elfcontent/pkg/elf"
	"github.com/vietanhduong/elfcontent/pkg/proc"
)

var (
	file     = flag.String("file", "", "ELF file to inspect")
	pid      = flag.Int("pid", -1, "Inspect every executable module mapped by this process")
	sections = flag.Bool("sections", false, "Print section headers")
	symbols  = flag.Bool("symbols", false, "Print the symbol table")
	dynamic  = flag.Bool("dynamic", false, "Print the dynamic symbol table")
	resolve  = flag.String("resolve", "", "Comma separated addresses (hex) to resolve to function names")
	demangle = flag.String("demangle", string(elf.DemangleFull), "Demangling of resolved names: NONE, SIMPLIFIED, TEMPLATES or FULL")
	units    = flag.Bool("dwarf", false, "List the DWARF compile units")
	bpf      = flag.Bool("bpf", false, "Describe the programs and maps of a BPF object")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	switch {
	case *file != "":
		if err := inspectFile(*file); err != nil {
			glog.Errorf("Failed to inspect %s: %v", *file, err)
			os.Exit(1)
		}
	case *pid != -1:
		if err := inspectProcess(*pid); err != nil {
			glog.Errorf("Failed to inspect PID %d: %v", *pid, err)
			os.Exit(1)
		}
	default:
		glog.Errorf("No file or pid is specified")
		os.Exit(1)
	}
}

func inspectFile(fpath string) error {
	c, err := elf.ReadFile(fpath)
	if err != nil {
		return err
	}

	fmt.Print(c.Header)
	if *sections {
		for i := range c.Sections {
			fmt.Print(&c.Sections[i])
		}
	}
	if *symbols {
		for i := range c.Symbols {
			fmt.Print(&c.Symbols[i])
		}
	}
	if *dynamic {
		for i := range c.DynamicSymbols {
			fmt.Print(&c.DynamicSymbols[i])
		}
	}
	if *resolve != "" {
		if err = resolveAddrs(c, *resolve); err != nil {
			return err
		}
	}
	if *units {
		if err = printCompileUnits(c); err != nil {
			return err
		}
	}
	if *bpf {
		if err = printBPF(c); err != nil {
			return err
		}
	}
	return nil
}

func resolveAddrs(c *elf.Content, list string) error {
	addrs, err := parseAddrs(list)
	if err != nil {
		return err
	}
	table := c.NewSymbolTable(&elf.SymbolTableOptions{
		DemangleOpts: elf.DemangleType(strings.ToUpper(*demangle)).ToOptions(),
	})
	glog.V(1).Infof("Symbol table holds %d functions", table.Size())
	for _, addr := range addrs {
		name := table.Resolve(addr)
		if name == "" {
			name = "??"
		}
		fmt.Printf("0x%016x %s\n", addr, name)
	}
	return nil
}

func parseAddrs(list string) ([]uint64, error) {
	var addrs []uint64
	for _, s := range lo.Compact(strings.Split(list, ",")) {
		addr, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(s), "0x"), 16, 64)
		if err != nil {
			return nil, fmt.Errorf("parse address %q: %w", s, err)
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}

func printCompileUnits(c *elf.Content) error {
	d, err := c.DWARF()
	if errors.Is(err, elf.ErrNoDebugInfo) {
		glog.Warningf("No debug info")
		return nil
	}
	if err != nil {
		return err
	}
	r := d.Reader()
	for {
		entry, err := r.Next()
		if err != nil {
			return fmt.Errorf("read dwarf entry: %w", err)
		}
		if entry == nil {
			return nil
		}
		if name, ok := entry.Val(dwarf.AttrName).(string); ok {
			fmt.Printf("Compile unit: %s\n", name)
		}
		r.SkipChildren()
	}
}

func printBPF(c *elf.Content) error {
	obj, err := bpfobj.Inspect(c)
	if err != nil {
		return err
	}
	for _, p := range obj.Programs {
		fmt.Printf("Program %s: %s in %s, %d instructions, license %q\n", p.Name, p.Type, p.Section, p.Instructions, p.License)
	}
	for _, m := range obj.Maps {
		fmt.Printf("Map %s: %s key %d value %d max entries %d\n", m.Name, m.Type, m.KeySize, m.ValueSize, m.MaxEntries)
	}

	spec, err := bpfobj.LoadBTF(c)
	if errors.Is(err, bpfobj.ErrNoBTF) {
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("BTF: %d named types\n", len(bpfobj.TypeNames(spec)))
	return nil
}

func inspectProcess(pid int) error {
	maps, err := proc.ReadMaps(pid)
	if err != nil {
		return err
	}
	glog.Infof("Target observe PID %d: %d executable mappings", pid, len(maps))

	for _, name := range proc.Modules(maps) {
		m, _ := lo.Find(maps, func(m *proc.Mapping) bool { return m.Name == name })
		c, err := elf.ReadFile(proc.ModulePath(pid, m))
		if err != nil {
			glog.Warningf("Skip module %s: %v", name, err)
			continue
		}
		id := "-"
		if bid, err := c.BuildID(); err == nil {
			id = bid.ID
		}
		fmt.Printf("%s %s %s %s build-id %s, %d functions\n",
			name, c.Header.Class, c.Header.Machine, c.Header.Type, id, len(c.Functions()))
	}
	return nil
}
