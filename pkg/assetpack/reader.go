package assetpack

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zlib"
)

// Archive is an opened bundle.
type Archive struct {
	f       *os.File
	entries map[string]*entry
	order   []string
}

// Open opens a bundle for reading.
func Open(path string) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening bundle: %w", err)
	}

	a := &Archive{f: f, entries: make(map[string]*entry)}
	if err := a.readTable(); err != nil {
		f.Close()
		return nil, err
	}
	return a, nil
}

func (a *Archive) readTable() error {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(a.f, header); err != nil {
		return fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	if string(header[:8]) != magic {
		return ErrBadMagic
	}

	tableOffset := binary.LittleEndian.Uint64(header[8:])
	count := binary.LittleEndian.Uint32(header[16:])

	if _, err := a.f.Seek(int64(tableOffset), io.SeekStart); err != nil {
		return fmt.Errorf("seeking table: %w", err)
	}
	table, err := io.ReadAll(a.f)
	if err != nil {
		return fmt.Errorf("reading table: %w", err)
	}

	pos := 0
	for i := uint32(0); i < count; i++ {
		if pos+2 > len(table) {
			return ErrTruncated
		}
		nameLen := int(binary.LittleEndian.Uint16(table[pos:]))
		pos += 2
		if pos+nameLen+16 > len(table) {
			return ErrTruncated
		}
		e := &entry{name: string(table[pos : pos+nameLen])}
		pos += nameLen
		e.offset = binary.LittleEndian.Uint64(table[pos:])
		e.compressedSize = binary.LittleEndian.Uint32(table[pos+8:])
		e.rawSize = binary.LittleEndian.Uint32(table[pos+12:])
		pos += 16

		a.entries[e.name] = e
		a.order = append(a.order, e.name)
	}
	return nil
}

// List returns entry names in the order they were added.
func (a *Archive) List() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// Contains reports whether the bundle holds the named entry.
func (a *Archive) Contains(name string) bool {
	_, ok := a.entries[name]
	return ok
}

// Read decompresses and returns one entry's contents.
func (a *Archive) Read(name string) ([]byte, error) {
	e, ok := a.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	raw := make([]byte, e.compressedSize)
	if _, err := a.f.ReadAt(raw, int64(e.offset)); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	zr, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", name, err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", name, err)
	}
	if uint32(len(data)) != e.rawSize {
		return nil, fmt.Errorf("%s: expected %d bytes, got %d", name, e.rawSize, len(data))
	}
	return data, nil
}

// Close closes the underlying file.
func (a *Archive) Close() error {
	if a.f != nil {
		return a.f.Close()
	}
	return nil
}
