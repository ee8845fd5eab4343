package elf

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanhduong/elfcontent/internal/elftest"
)

func note(name string, typ uint32, desc []byte) []byte {
	var b []byte
	b = binary.LittleEndian.AppendUint32(b, uint32(len(name)+1))
	b = binary.LittleEndian.AppendUint32(b, uint32(len(desc)))
	b = binary.LittleEndian.AppendUint32(b, typ)
	b = append(b, name...)
	b = append(b, 0)
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	return append(b, desc...)
}

const goBuildID = "abcdefghijklmnopqrst/uvwxyzABCDEFGHIJKLMN/OPQRSTUVWXYZ0123456789/_-abcdefghij"

func imageWithNotes(sections ...elftest.Section) []byte {
	im := executable64BE()
	im.Data = 1
	im.Sections = append(im.Sections, sections...)
	return im.Bytes()
}

func TestBuildID(t *testing.T) {
	gnuDesc := []byte{
		0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05,
		0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
	}
	gnuNote := elftest.Section{Name: ".note.gnu.build-id", Type: 7, Data: note("GNU", 3, gnuDesc)}
	goNote := elftest.Section{Name: ".note.go.buildid", Type: 7, Data: note("Go\x00", 4, append([]byte(goBuildID), 0))}

	tests := []struct {
		name     string
		sections []elftest.Section
		want     BuildID
		wantErr  error
	}{
		{
			name:     "gnu",
			sections: []elftest.Section{gnuNote},
			want:     BuildID{ID: "deadbeef000102030405060708090a0b0c0d0e0f", Type: GNU},
		},
		{
			name:     "go",
			sections: []elftest.Section{goNote},
			want:     BuildID{ID: goBuildID, Type: GO},
		},
		{
			name:     "gnu wins over go",
			sections: []elftest.Section{goNote, gnuNote},
			want:     BuildID{ID: "deadbeef000102030405060708090a0b0c0d0e0f", Type: GNU},
		},
		{
			name:     "xxhash sized gnu id",
			sections: []elftest.Section{{Name: ".note.gnu.build-id", Type: 7, Data: note("GNU", 3, gnuDesc[:8])}},
			want:     BuildID{ID: "deadbeef00010203", Type: GNU},
		},
		{
			name:     "odd sized gnu id",
			sections: []elftest.Section{{Name: ".note.gnu.build-id", Type: 7, Data: note("GNU", 3, gnuDesc[:12])}},
			wantErr:  ErrNoBuildID,
		},
		{
			name:     "not a gnu note",
			sections: []elftest.Section{{Name: ".note.gnu.build-id", Type: 7, Data: note("XYZ", 3, gnuDesc)}},
			wantErr:  ErrNoBuildID,
		},
		{
			name:     "redacted go id",
			sections: []elftest.Section{{Name: ".note.go.buildid", Type: 7, Data: note("Go\x00", 4, []byte("redacted\x00"))}},
			wantErr:  ErrNoBuildID,
		},
		{
			name:    "none",
			wantErr: ErrNoBuildID,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(imageWithNotes(tt.sections...))
			require.NoError(t, err)
			got, err := c.BuildID()
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "%v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Type == GNU, got.GNU())
		})
	}
}

func TestDebugLink(t *testing.T) {
	link := append([]byte("prog.debug\x00\x00"), 0x12, 0x34, 0x56, 0x78)
	c, err := Parse(imageWithNotes(elftest.Section{Name: ".gnu_debuglink", Type: elftest.SHT_PROGBITS, Data: link}))
	require.NoError(t, err)
	assert.Equal(t, "prog.debug", c.DebugLink())

	c, err = Parse(imageWithNotes())
	require.NoError(t, err)
	assert.Equal(t, "", c.DebugLink())
}
