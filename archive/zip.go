// SPDX-FileCopyrightText: Copyright 2026 NimbleBrain, Inc.
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
)

// openZip extracts all regular entries from a zip payload.
func openZip(data []byte) (Archive, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening zip archive: %w", err)
	}

	out := newMemArchive()
	for _, f := range zr.File {
		if err := validateEntryPath(f.Name); err != nil {
			return nil, err
		}

		if f.FileInfo().IsDir() {
			continue
		}

		// Reject symlinks and other special entries
		if !f.FileInfo().Mode().IsRegular() {
			return nil, fmt.Errorf("archive contains disallowed entry type: %s", f.Name)
		}

		if int64(f.UncompressedSize64) > MaxEntrySize {
			return nil, fmt.Errorf("entry %s exceeds maximum size of %d bytes", f.Name, MaxEntrySize)
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening zip entry %s: %w", f.Name, err)
		}

		// LimitReader defends against a lying size field in the header
		limited := io.LimitReader(rc, MaxEntrySize+1)
		content, err := io.ReadAll(limited)
		closeErr := rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading zip entry %s: %w", f.Name, err)
		}
		if closeErr != nil {
			return nil, fmt.Errorf("closing zip entry %s: %w", f.Name, closeErr)
		}

		if int64(len(content)) > MaxEntrySize {
			return nil, fmt.Errorf("entry %s exceeds maximum size of %d bytes", f.Name, MaxEntrySize)
		}

		out.add(f.Name, content)
	}

	return out, nil
}
