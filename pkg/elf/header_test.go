package elf

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanhduong/elfcontent/internal/elftest"
)

func minimalImage(class, data byte) *elftest.Image {
	return &elftest.Image{
		Class:    class,
		Data:     data,
		Type:     2,
		Machine:  62,
		Sections: []elftest.Section{{Name: ".shstrtab"}},
	}
}

func TestParseHeaderRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		image *elftest.Image
		want  FileHeader
	}{
		{
			name: "32-bit little endian",
			image: &elftest.Image{
				Class: 1, Data: 1, OSABI: 0x09, ABIVersion: 2,
				Type: 3, Machine: 40, Entry: 0x8000, Flags: 0x05000200,
				Sections: []elftest.Section{{Name: ".shstrtab"}},
			},
			want: FileHeader{
				Class:                  Class32,
				Endian:                 Little,
				ABI:                    ABI{OS: OSABIFreeBSD, Version: 2},
				Type:                   FileTypeDynamic,
				Machine:                Machine(40),
				Flags:                  0x05000200,
				Entry:                  0x8000,
				SectionHeaderOffset:    72,
				ProgramHeaderEntrySize: 32,
				SectionHeaderEntrySize: 40,
				SectionHeaderCount:     2,
				StringTableIndex:       1,
			},
		},
		{
			name: "64-bit big endian",
			image: &elftest.Image{
				Class: 2, Data: 2, OSABI: 0x03,
				Type: 1, Machine: 43, Entry: 0xFFFFFFFF80000000,
				Sections: []elftest.Section{{Name: ".shstrtab"}},
			},
			want: FileHeader{
				Class:                  Class64,
				Endian:                 Big,
				ABI:                    ABI{OS: OSABILinux},
				Type:                   FileTypeRelocatable,
				Machine:                Machine(43),
				Entry:                  0xFFFFFFFF80000000,
				SectionHeaderOffset:    80,
				ProgramHeaderEntrySize: 56,
				SectionHeaderEntrySize: 64,
				SectionHeaderCount:     2,
				StringTableIndex:       1,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHeader(tt.image.Bytes())
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseHeader() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseBadMagic(t *testing.T) {
	valid := minimalImage(2, 1).Bytes()
	sequences := [][4]byte{
		{0x00, 0x00, 0x00, 0x00},
		{0x7F, 'E', 'L', 'G'},
		{'E', 'L', 'F', 0x7F},
		{0x7E, 0x45, 0x4C, 0x46},
		{0xFF, 0xFF, 0xFF, 0xFF},
		{'M', 'Z', 0x90, 0x00},
	}
	for b := 0; b < 256; b++ {
		if b != 0x7F {
			sequences = append(sequences, [4]byte{byte(b), 'E', 'L', 'F'})
		}
	}
	for _, seq := range sequences {
		raw := append([]byte(nil), valid...)
		copy(raw, seq[:])

		_, err := Parse(raw)
		var me *BadMagicError
		require.True(t, errors.As(err, &me), "magic %X: %v", seq, err)
		assert.Equal(t, seq, me.Magic)

		_, err = ParseHeader(raw)
		require.True(t, errors.As(err, &me))
		assert.Equal(t, seq, me.Magic)
	}
}

func TestParseBadClass(t *testing.T) {
	valid := minimalImage(1, 1).Bytes()
	for b := 0; b < 256; b++ {
		if b == 1 || b == 2 {
			continue
		}
		raw := append([]byte(nil), valid...)
		raw[identClass] = byte(b)

		_, err := Parse(raw)
		var pe *BadPointerWidthError
		require.True(t, errors.As(err, &pe), "class %d: %v", b, err)
		assert.Equal(t, uint8(b), pe.Class)
	}
}

func TestParseHeaderValidation(t *testing.T) {
	valid := minimalImage(2, 2).Bytes()
	mutate := func(off int, v byte) []byte {
		raw := append([]byte(nil), valid...)
		raw[off] = v
		return raw
	}

	t.Run("version", func(t *testing.T) {
		_, err := Parse(mutate(identVersion, 0))
		var ve *BadVersionError
		require.True(t, errors.As(err, &ve), "%v", err)
		assert.Equal(t, uint8(0), ve.Version)
	})
	t.Run("endian", func(t *testing.T) {
		_, err := Parse(mutate(identData, 3))
		var ee *BadEndianError
		require.True(t, errors.As(err, &ee), "%v", err)
		assert.Equal(t, uint8(3), ee.Code)
	})
	t.Run("version is checked before endian", func(t *testing.T) {
		raw := mutate(identVersion, 2)
		raw[identData] = 0
		_, err := ParseHeader(raw)
		var ve *BadVersionError
		assert.True(t, errors.As(err, &ve), "%v", err)
	})
	t.Run("class is checked before version by Parse", func(t *testing.T) {
		raw := mutate(identClass, 9)
		raw[identVersion] = 0
		_, err := Parse(raw)
		var pe *BadPointerWidthError
		assert.True(t, errors.As(err, &pe), "%v", err)
	})
}

func TestParseShortBuffer(t *testing.T) {
	raw64 := minimalImage(2, 1).Bytes()
	raw32 := minimalImage(1, 2).Bytes()
	tests := []struct {
		name string
		raw  []byte
	}{
		{"empty", nil},
		{"partial magic", raw64[:3]},
		{"magic only", raw64[:4]},
		{"identification only", raw64[:16]},
		{"truncated 64-bit header", raw64[:header64Size-1]},
		{"truncated 32-bit header", raw32[:header32Size-1]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)
			var be *BoundsError
			require.True(t, errors.As(err, &be), "%v", err)
		})
	}
}

func TestFileHeaderString(t *testing.T) {
	h, err := ParseHeader(minimalImage(2, 1).Bytes())
	require.NoError(t, err)
	s := h.String()
	assert.Contains(t, s, "Executable file")
	assert.Contains(t, s, "AMD x86-64")
	assert.Contains(t, s, "Little Endian")
	assert.Contains(t, s, "No OS ABI defined")
	assert.Contains(t, s, "String Section Index: 1")
}
