package elf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestStringAt(t *testing.T) {
	table := []byte("\x00main\x00bad\xff\x00tail")
	tests := []struct {
		name string
		off  uint32
		want string
	}{
		{"empty string", 0, NameNull},
		{"whole name", 1, "main"},
		{"suffix", 3, "in"},
		{"terminator", 5, NameNull},
		{"invalid utf-8", 6, NameCorrupted},
		{"no terminator", 11, NameCorrupted},
		{"last byte without terminator", 14, NameCorrupted},
		{"past the end", 15, NameCorrupted},
		{"far past the end", 0xFFFFFFFF, NameCorrupted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StringAt(table, tt.off))
		})
	}
}

func TestResolveNames(t *testing.T) {
	table := []byte("\x00.text\x00.data\x00")
	sections := []Section{{NameOffset: 0}, {NameOffset: 1}, {NameOffset: 7}, {NameOffset: 3}, {NameOffset: 40}}

	ResolveNames(table, sections)
	names := func() []string {
		var ns []string
		for _, s := range sections {
			ns = append(ns, s.Name)
		}
		return ns
	}
	want := []string{NameNull, ".text", ".data", "ext", NameCorrupted}
	if diff := cmp.Diff(want, names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}

	// Resolving again from the same table changes nothing.
	ResolveNames(table, sections)
	if diff := cmp.Diff(want, names()); diff != "" {
		t.Errorf("second pass mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveNamesEmptyTable(t *testing.T) {
	symbols := []Symbol{{NameOffset: 0}, {NameOffset: 5}, {NameOffset: 9, Name: "kept"}}
	ResolveNames(nil, symbols)
	ResolveNames([]byte{}, symbols)
	assert.Equal(t, "", symbols[0].Name)
	assert.Equal(t, "", symbols[1].Name)
	assert.Equal(t, "kept", symbols[2].Name)
}
