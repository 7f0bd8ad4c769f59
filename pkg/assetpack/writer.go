package assetpack

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/klauspost/compress/zlib"
)

// Writer builds a bundle file entry by entry.
type Writer struct {
	f       *os.File
	offset  uint64
	entries []entry
}

// Create opens a new bundle for writing, truncating any existing file.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating bundle: %w", err)
	}

	// Header is back-patched on Close once the table offset is known.
	if _, err := f.Write(make([]byte, headerSize)); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing header: %w", err)
	}

	return &Writer{f: f, offset: headerSize}, nil
}

// Add compresses and appends one entry. Names are unrestricted byte
// strings up to 64KiB; forward-slash paths by convention.
func (w *Writer) Add(name string, data []byte) error {
	if len(name) == 0 || len(name) > 0xffff {
		return fmt.Errorf("invalid entry name length %d", len(name))
	}

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return fmt.Errorf("compressing %s: %w", name, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("compressing %s: %w", name, err)
	}

	if _, err := w.f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}

	w.entries = append(w.entries, entry{
		name:           name,
		offset:         w.offset,
		compressedSize: uint32(buf.Len()),
		rawSize:        uint32(len(data)),
	})
	w.offset += uint64(buf.Len())
	return nil
}

// Close writes the entry table, back-patches the header, and closes
// the file.
func (w *Writer) Close() error {
	tableOffset := w.offset

	var table bytes.Buffer
	for _, e := range w.entries {
		binary.Write(&table, binary.LittleEndian, uint16(len(e.name)))
		table.WriteString(e.name)
		binary.Write(&table, binary.LittleEndian, e.offset)
		binary.Write(&table, binary.LittleEndian, e.compressedSize)
		binary.Write(&table, binary.LittleEndian, e.rawSize)
	}
	if _, err := w.f.Write(table.Bytes()); err != nil {
		w.f.Close()
		return fmt.Errorf("writing table: %w", err)
	}

	var header bytes.Buffer
	header.WriteString(magic)
	binary.Write(&header, binary.LittleEndian, tableOffset)
	binary.Write(&header, binary.LittleEndian, uint32(len(w.entries)))

	if _, err := w.f.WriteAt(header.Bytes(), 0); err != nil {
		w.f.Close()
		return fmt.Errorf("writing header: %w", err)
	}
	return w.f.Close()
}
