package elf

import (
	"fmt"
	"io"
	"os"

	bufra "github.com/avvmoto/buf-readerat"
	"github.com/golang/glog"
)

const readBufferSize = 1 << 20

// ReadFile loads the whole file at fpath and parses it.
func ReadFile(fpath string) (*Content, error) {
	f, err := os.OpenFile(fpath, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("open elf file %s: %w", fpath, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", fpath, err)
	}
	raw := make([]byte, st.Size())
	r := io.NewSectionReader(bufra.NewBufReaderAt(f, readBufferSize), 0, st.Size())
	if _, err = io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("read %s: %w", fpath, err)
	}
	glog.V(5).Infof("Read %d bytes from %s", len(raw), fpath)

	c, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", fpath, err)
	}
	return c, nil
}
