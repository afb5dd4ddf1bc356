// SPDX-FileCopyrightText: Copyright 2026 NimbleBrain, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package archive opens packaged skill payloads (zip or tar.gz) and exposes
// named-entry lookup. The resolver consumes it through the OpenFunc type so
// tests can substitute an in-memory fake.
package archive

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrEntryNotFound is returned by Entry when the archive has no entry with the
// requested path.
var ErrEntryNotFound = errors.New("entry not found in archive")

// MaxEntrySize is the maximum size of a single extracted entry (100MB).
// This prevents decompression bombs.
const MaxEntrySize int64 = 100 * 1024 * 1024

// Archive provides read access to the entries of an opened payload.
type Archive interface {
	// Entry returns the content of the entry at the given path, or
	// ErrEntryNotFound if the archive has no such entry.
	Entry(path string) ([]byte, error)

	// Entries lists the entry paths in the archive.
	Entries() []string
}

// OpenFunc opens raw payload bytes as an Archive.
type OpenFunc func(data []byte) (Archive, error)

// Magic byte prefixes for supported formats.
var (
	zipMagic  = []byte{0x50, 0x4b, 0x03, 0x04}
	gzipMagic = []byte{0x1f, 0x8b}
)

// Detect reports whether the payload looks like a supported archive format.
// Callers use it to decide between direct-content and archive handling for
// payloads whose content type is ambiguous.
func Detect(data []byte) bool {
	return bytes.HasPrefix(data, zipMagic) || bytes.HasPrefix(data, gzipMagic)
}

// Open opens a zip or tar.gz payload, dispatching on magic bytes.
// Entries are fully extracted up front with size and path-safety limits
// enforced, so a returned Archive performs no further I/O.
func Open(data []byte) (Archive, error) {
	switch {
	case bytes.HasPrefix(data, zipMagic):
		return openZip(data)
	case bytes.HasPrefix(data, gzipMagic):
		return openTarGz(data)
	default:
		return nil, fmt.Errorf("unrecognized archive format")
	}
}

// memArchive is the in-memory Archive produced by Open.
type memArchive struct {
	entries map[string][]byte
	order   []string
}

func newMemArchive() *memArchive {
	return &memArchive{entries: make(map[string][]byte)}
}

func (a *memArchive) add(entryPath string, content []byte) {
	if _, exists := a.entries[entryPath]; !exists {
		a.order = append(a.order, entryPath)
	}
	a.entries[entryPath] = content
}

// Entry implements Archive.
func (a *memArchive) Entry(entryPath string) ([]byte, error) {
	content, ok := a.entries[entryPath]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, entryPath)
	}
	return content, nil
}

// Entries implements Archive.
func (a *memArchive) Entries() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// validateEntryPath checks that an archive entry path cannot escape the
// archive root.
func validateEntryPath(p string) error {
	// path.Clean resolves all ".." segments; any remaining leading ".."
	// means the path escapes the archive root.
	cleaned := path.Clean(p)
	if strings.HasPrefix(cleaned, "..") {
		return fmt.Errorf("path traversal detected in archive: %s", p)
	}
	if path.IsAbs(cleaned) {
		return fmt.Errorf("absolute path not allowed in archive: %s", p)
	}
	return nil
}
