// Package security validates raw source bytes against the extension an
// importer claims to handle, before the bytes reach an ImportFunc
// (adapted from the teacher's FileValidator, which did the same magic-byte
// and binary/text check for source code files handed to the indexer).
package security

import (
	"bytes"
	"fmt"
	"strings"
)

// sourceMagic maps a lowercase, dot-free source extension to the byte
// signature a genuine file of that type starts with.
var sourceMagic = map[string][]byte{
	"png":  {0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A},
	"jpg":  {0xFF, 0xD8, 0xFF},
	"jpeg": {0xFF, 0xD8, 0xFF},
	"wav":  {'R', 'I', 'F', 'F'},
	"ogg":  {'O', 'g', 'g', 'S'},
}

// sourceText is the set of source extensions expected to be printable
// text rather than binary data (spec.md §4.6's OBJ/MTL import sources).
var sourceText = map[string]bool{
	"obj": true,
	"mtl": true,
}

// SourceValidator rejects import source bytes that don't match what
// their extension claims: a PNG-signed extension containing something
// else, or a text format (OBJ/MTL) that is actually binary garbage.
// Both are signs of a corrupted or disguised asset source file.
type SourceValidator struct{}

// Validate checks data against sourceExtension's expected shape.
// sourceExtension may have a leading dot; matching is case-insensitive.
// Extensions this validator has no opinion about pass unconditionally.
func (SourceValidator) Validate(sourceExtension string, data []byte) error {
	ext := strings.ToLower(strings.TrimPrefix(sourceExtension, "."))

	if magic, ok := sourceMagic[ext]; ok {
		if !bytes.HasPrefix(data, magic) {
			return fmt.Errorf("security: %q source does not match its signature (file may be disguised or corrupt)", ext)
		}
	}

	if sourceText[ext] && isBinaryData(data) {
		return fmt.Errorf("security: %q source looks like binary data, not text", ext)
	}

	return nil
}

// isBinaryData reports whether data is more than 30% non-printable
// control bytes, the same threshold the teacher's validator used for
// code-vs-binary detection.
func isBinaryData(data []byte) bool {
	if len(data) == 0 {
		return false
	}

	nonPrintable := 0
	for _, b := range data {
		if b < 9 || (b > 13 && b < 32) || b == 127 {
			nonPrintable++
		}
	}

	ratio := float64(nonPrintable) / float64(len(data))
	return ratio > 0.3
}
