package elf

import (
	"debug/dwarf"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanhduong/elfcontent/internal/elftest"
)

// compileUnit is a DWARF 4 .debug_info holding one compile unit named a.c,
// and abbrevs is the matching .debug_abbrev.
var (
	compileUnit = []byte{
		0x0C, 0x00, 0x00, 0x00, // unit length
		0x04, 0x00,             // version
		0x00, 0x00, 0x00, 0x00, // abbrev offset
		0x08,                   // address size
		0x01,                   // abbrev code
		'a', '.', 'c', 0,       // DW_AT_name
	}
	abbrevs = []byte{0x01, 0x11, 0x00, 0x03, 0x08, 0x00, 0x00, 0x00}
)

func TestDebugSection(t *testing.T) {
	im := executable64BE()
	im.Sections = append(im.Sections, elftest.Section{Name: ".debug_str", Type: elftest.SHT_PROGBITS, Data: []byte("hello\x00")})
	c, err := Parse(im.Bytes())
	require.NoError(t, err)

	got := c.DebugSection(".debug_str")
	assert.Equal(t, []byte("hello\x00"), got)
	got[0] = 'j'
	again := c.DebugSection(".debug_str")
	assert.Equal(t, byte('h'), again[0], "DebugSection must return a copy")

	missing := c.DebugSection(".debug_line")
	assert.NotNil(t, missing)
	assert.Empty(t, missing)
}

func TestDWARF(t *testing.T) {
	t.Run("no debug info", func(t *testing.T) {
		c, err := Parse(executable64BE().Bytes())
		require.NoError(t, err)
		_, err = c.DWARF()
		assert.True(t, errors.Is(err, ErrNoDebugInfo))
	})

	t.Run("compile unit", func(t *testing.T) {
		im := executable64BE()
		im.Sections = append(im.Sections,
			elftest.Section{Name: ".debug_abbrev", Type: elftest.SHT_PROGBITS, Data: abbrevs},
			elftest.Section{Name: ".debug_info", Type: elftest.SHT_PROGBITS, Data: compileUnit},
		)
		c, err := Parse(im.Bytes())
		require.NoError(t, err)

		d, err := c.DWARF()
		require.NoError(t, err)
		entry, err := d.Reader().Next()
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Equal(t, dwarf.TagCompileUnit, entry.Tag)
		assert.Equal(t, "a.c", entry.Val(dwarf.AttrName))
	})

	t.Run("broken debug info", func(t *testing.T) {
		im := executable64BE()
		im.Sections = append(im.Sections, elftest.Section{Name: ".debug_info", Type: elftest.SHT_PROGBITS, Data: []byte{0xFF}})
		c, err := Parse(im.Bytes())
		require.NoError(t, err)
		_, err = c.DWARF()
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrNoDebugInfo))
	})
}
