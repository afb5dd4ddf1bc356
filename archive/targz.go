// SPDX-FileCopyrightText: Copyright 2026 NimbleBrain, Inc.
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
)

// maxDecompressedSize caps the total decompressed tar stream (100MB).
const maxDecompressedSize int64 = 100 * 1024 * 1024

// openTarGz decompresses a gzip payload and extracts all regular entries from
// the contained tar stream.
func openTarGz(data []byte) (Archive, error) {
	tarData, err := decompress(data, maxDecompressedSize)
	if err != nil {
		return nil, err
	}

	tr := tar.NewReader(bytes.NewReader(tarData))
	out := newMemArchive()

	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading tar header: %w", err)
		}

		if err := validateEntryPath(hdr.Name); err != nil {
			return nil, err
		}

		if hdr.Typeflag == tar.TypeDir {
			continue
		}

		// Reject symlinks and hardlinks
		if hdr.Typeflag == tar.TypeSymlink || hdr.Typeflag == tar.TypeLink {
			return nil, fmt.Errorf("archive contains disallowed link type: %s", hdr.Name)
		}

		// Reject device entries and other special types
		if hdr.Typeflag != tar.TypeReg {
			return nil, fmt.Errorf("archive contains disallowed entry type %d: %s", hdr.Typeflag, hdr.Name)
		}

		if hdr.Size > MaxEntrySize {
			return nil, fmt.Errorf("entry %s exceeds maximum size of %d bytes", hdr.Name, MaxEntrySize)
		}

		limited := io.LimitReader(tr, MaxEntrySize+1)
		content, err := io.ReadAll(limited)
		if err != nil {
			return nil, fmt.Errorf("reading tar entry %s: %w", hdr.Name, err)
		}

		if int64(len(content)) > MaxEntrySize {
			return nil, fmt.Errorf("entry %s exceeds maximum size of %d bytes", hdr.Name, MaxEntrySize)
		}

		out.add(hdr.Name, content)
	}

	return out, nil
}

// decompress gunzips data with a size limit to prevent decompression bombs.
func decompress(data []byte, maxSize int64) ([]byte, error) {
	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating gzip reader: %w", err)
	}
	defer func() { _ = gr.Close() }()

	limited := io.LimitReader(gr, maxSize+1)
	result, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("reading gzip data: %w", err)
	}

	if int64(len(result)) > maxSize {
		return nil, fmt.Errorf("decompressed data exceeds maximum size of %d bytes", maxSize)
	}

	return result, nil
}
