package elf

import (
	"errors"
	"fmt"
)

var (
	ErrNoDebugInfo = errors.New("no .debug_info section")
	ErrNoBuildID   = errors.New("no build id")
)

type BadMagicError struct {
	Magic [4]byte
}

func (e *BadMagicError) Error() string {
	return fmt.Sprintf("bad elf magic: expected [0x7F, 0x45, 0x4C, 0x46], found [0x%02X, 0x%02X, 0x%02X, 0x%02X]",
		e.Magic[0], e.Magic[1], e.Magic[2], e.Magic[3])
}

type BadPointerWidthError struct {
	Class uint8
}

func (e *BadPointerWidthError) Error() string {
	return fmt.Sprintf("bad pointer width flag: expected 1 or 2, found %d", e.Class)
}

type BadVersionError struct {
	Version uint8
}

func (e *BadVersionError) Error() string {
	return fmt.Sprintf("bad elf version: expected 1, found %d", e.Version)
}

type BadEndianError struct {
	Code uint8
}

func (e *BadEndianError) Error() string {
	return fmt.Sprintf("bad data encoding: expected 1 or 2, found %d", e.Code)
}

// BoundsError reports a byte range that does not fit in the buffer it
// addresses.
type BoundsError struct {
	What   string
	Offset uint64
	Size   uint64
	Len    uint64
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s out of bounds: [0x%x, 0x%x+0x%x) exceeds buffer of 0x%x bytes",
		e.What, e.Offset, e.Offset, e.Size, e.Len)
}

// slice returns b[off:off+size] or a BoundsError, without overflowing when
// off and size come from a corrupt file.
func slice(b []byte, off, size uint64, what string) ([]byte, error) {
	n := uint64(len(b))
	if off > n || size > n-off {
		return nil, &BoundsError{What: what, Offset: off, Size: size, Len: n}
	}
	return b[off : off+size], nil
}
