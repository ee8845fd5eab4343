package elf

import "unsafe"

func Read16(b []byte, e Endian) (uint16, error) {
	if len(b) < 2 {
		return 0, &BoundsError{What: "u16", Size: 2, Len: uint64(len(b))}
	}
	return e.ByteOrder().Uint16(b), nil
}

func Read32(b []byte, e Endian) (uint32, error) {
	if len(b) < 4 {
		return 0, &BoundsError{What: "u32", Size: 4, Len: uint64(len(b))}
	}
	return e.ByteOrder().Uint32(b), nil
}

func Read64(b []byte, e Endian) (uint64, error) {
	if len(b) < 8 {
		return 0, &BoundsError{What: "u64", Size: 8, Len: uint64(len(b))}
	}
	return e.ByteOrder().Uint64(b), nil
}

// word is the pointer width of a file class.
type word interface {
	~uint32 | ~uint64
}

func wordSize[T word]() int {
	var w T
	return int(unsafe.Sizeof(w))
}

// cursor walks a record keeping the first error, so decoders can read
// field after field and check once at the end.
type cursor struct {
	b      []byte
	endian Endian
	off    int
	err    error
}

func newCursor(b []byte, e Endian, off int) *cursor {
	return &cursor{b: b, endian: e, off: off}
}

func (c *cursor) window(n int) []byte {
	if c.err != nil {
		return nil
	}
	if c.off < 0 || c.off+n > len(c.b) {
		c.err = &BoundsError{What: "record field", Offset: uint64(c.off), Size: uint64(n), Len: uint64(len(c.b))}
		return nil
	}
	w := c.b[c.off : c.off+n]
	c.off += n
	return w
}

func (c *cursor) skip(n int) { c.window(n) }

func (c *cursor) u8() uint8 {
	if w := c.window(1); w != nil {
		return w[0]
	}
	return 0
}

func (c *cursor) u16() uint16 {
	if w := c.window(2); w != nil {
		v, _ := Read16(w, c.endian)
		return v
	}
	return 0
}

func (c *cursor) u32() uint32 {
	if w := c.window(4); w != nil {
		v, _ := Read32(w, c.endian)
		return v
	}
	return 0
}

func (c *cursor) u64() uint64 {
	if w := c.window(8); w != nil {
		v, _ := Read64(w, c.endian)
		return v
	}
	return 0
}

// readWord reads one pointer-width field and widens it to 64 bits.
func readWord[T word](c *cursor) uint64 {
	if wordSize[T]() == 4 {
		return uint64(c.u32())
	}
	return c.u64()
}
