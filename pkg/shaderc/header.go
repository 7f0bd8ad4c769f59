package shaderc

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// ErrBadSPIRV indicates the blob is not a whole number of 32-bit
// words and so cannot be valid SPIR-V.
var ErrBadSPIRV = errors.New("SPIR-V length is not a multiple of 4")

// WriteCHeader emits SPIR-V as a C header holding a uint32_t array,
// the form the lesson code includes shaders from.
func WriteCHeader(w io.Writer, name string, spirv []byte) error {
	if len(spirv)%4 != 0 {
		return fmt.Errorf("%w: %d bytes", ErrBadSPIRV, len(spirv))
	}

	ident := sanitizeIdent(name)
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "/* Generated by shaderc. Do not edit. */")
	fmt.Fprintln(bw, "#pragma once")
	fmt.Fprintln(bw, "#include <stdint.h>")
	fmt.Fprintln(bw, "#include <stddef.h>")
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "static const uint32_t %s[] = {", ident)

	words := len(spirv) / 4
	for i := 0; i < words; i++ {
		if i%8 == 0 {
			fmt.Fprint(bw, "\n   ")
		}
		word := binary.LittleEndian.Uint32(spirv[i*4:])
		fmt.Fprintf(bw, " 0x%08x,", word)
	}
	fmt.Fprintln(bw, "\n};")
	fmt.Fprintf(bw, "static const size_t %s_len = %d;\n", ident, words)

	return bw.Flush()
}

// WriteCHeaderFile writes the header to disk, deriving the array name
// from the file's base name.
func WriteCHeaderFile(path string, spirv []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	base := strings.TrimSuffix(strings.TrimSuffix(path, ".h"), ".spv")
	return WriteCHeader(f, base, spirv)
}

// sanitizeIdent turns an arbitrary path into a valid C identifier.
func sanitizeIdent(name string) string {
	// Keep only the base name component.
	if i := strings.LastIndexAny(name, "/\\"); i >= 0 {
		name = name[i+1:]
	}

	var b strings.Builder
	for i, r := range name {
		switch {
		case unicode.IsLetter(r) || r == '_':
			b.WriteRune(r)
		case unicode.IsDigit(r):
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "_shader"
	}
	return b.String()
}
