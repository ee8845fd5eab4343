package elf

import (
	"bytes"
	"encoding/hex"
)

type BuildType string

const (
	GNU BuildType = "GNU"
	GO  BuildType = "GO"
)

type BuildID struct {
	ID   string
	Type BuildType
}

func (id BuildID) GNU() bool { return id.Type == GNU }

// BuildID prefers the GNU note over the Go one.
func (c *Content) BuildID() (BuildID, error) {
	if id, ok := c.GnuBuildID(); ok {
		return id, nil
	}
	if id, ok := c.GoBuildID(); ok {
		return id, nil
	}
	return BuildID{}, ErrNoBuildID
}

func (c *Content) GoBuildID() (BuildID, bool) {
	data := c.DebugSection(".note.go.buildid")
	if len(data) < 17 {
		return BuildID{}, false
	}
	data = data[16 : len(data)-1]
	if len(data) < 40 || bytes.Count(data, []byte(`/`)) < 2 || string(data) == "redacted" {
		return BuildID{}, false
	}
	return BuildID{ID: string(data), Type: GO}, true
}

func (c *Content) GnuBuildID() (BuildID, bool) {
	data := c.DebugSection(".note.gnu.build-id")
	if len(data) < 16 {
		return BuildID{}, false
	}
	if !bytes.Equal([]byte("GNU"), data[12:15]) {
		return BuildID{}, false
	}
	// 8 is xxhash, for example in Container-Optimized OS
	raw := data[16:]
	if len(raw) != 20 && len(raw) != 8 {
		return BuildID{}, false
	}
	return BuildID{ID: hex.EncodeToString(raw), Type: GNU}, true
}

// DebugLink returns the file name stored in .gnu_debuglink, if any.
func (c *Content) DebugLink() string {
	data := c.DebugSection(".gnu_debuglink")
	if len(data) < 6 {
		return ""
	}
	return cstring(data)
}

func cstring(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}
