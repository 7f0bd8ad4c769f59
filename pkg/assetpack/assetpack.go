// Package assetpack reads and writes .lpk bundles: a small archive
// format that ships generated lesson assets (cube map faces, compiled
// shaders, captures) as one file. Entries are zlib-compressed; the
// entry table sits at the end so bundles can be written in one pass.
package assetpack

import "errors"

const magic = "FRGLPK1\x00"

// headerSize is magic + table offset + entry count.
const headerSize = 8 + 8 + 4

// Bundle errors.
var (
	ErrBadMagic  = errors.New("not an lpk bundle")
	ErrNotFound  = errors.New("entry not found in bundle")
	ErrTruncated = errors.New("truncated bundle")
)

type entry struct {
	name           string
	offset         uint64
	compressedSize uint32
	rawSize        uint32
}
