// SPDX-FileCopyrightText: Copyright 2026 NimbleBrain, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package integrity computes and compares SHA-256 content digests for
// downloaded artifacts. It is pure computation: callers (the resolver) decide
// what to do with a mismatch verdict.
package integrity

import (
	"strings"

	"github.com/opencontainers/go-digest"
)

// Digest is a lowercase hexadecimal SHA-256 content hash (64 hex characters).
type Digest string

// Recognized descriptor prefixes. Anything else is treated as bare hex.
const (
	prefixColon = "sha256:"
	prefixSRI   = "sha256-"
)

// Verdict is the outcome of comparing content against an expected digest.
// Both digests are always populated for diagnostics.
type Verdict struct {
	// Matched reports whether the computed digest equals the expected one.
	Matched bool

	// Expected is the digest parsed from the descriptor.
	Expected Digest

	// Actual is the digest computed over the content.
	Actual Digest
}

// ComputeDigest returns the SHA-256 digest of content as lowercase hex.
func ComputeDigest(content []byte) Digest {
	return Digest(digest.FromBytes(content).Encoded())
}

// ParseDescriptor extracts the expected digest from a caller-supplied
// descriptor. Three encodings are accepted: "sha256:<hex>", "sha256-<hex>"
// (subresource-integrity style), and bare "<hex>". Unrecognized prefixes are
// treated as part of the hex string; the comparison then fails closed rather
// than raising a parse error.
func ParseDescriptor(descriptor string) Digest {
	switch {
	case strings.HasPrefix(descriptor, prefixColon):
		descriptor = strings.TrimPrefix(descriptor, prefixColon)
	case strings.HasPrefix(descriptor, prefixSRI):
		descriptor = strings.TrimPrefix(descriptor, prefixSRI)
	}
	// Registries have been observed emitting mixed-case hex.
	return Digest(strings.ToLower(descriptor))
}

// Verify compares content against an expected-digest descriptor and returns a
// verdict without deciding whether a mismatch is fatal.
func Verify(content []byte, descriptor string) Verdict {
	expected := ParseDescriptor(descriptor)
	actual := ComputeDigest(content)
	return Verdict{
		Matched:  expected == actual,
		Expected: expected,
		Actual:   actual,
	}
}
