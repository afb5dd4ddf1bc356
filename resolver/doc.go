// SPDX-FileCopyrightText: Copyright 2026 NimbleBrain, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package resolver fetches skill content from one of three sources — the mpak
registry, a GitHub release asset, or a caller-supplied URL — and enforces
fail-closed integrity verification before any content reaches the caller.

# References

A content reference is a sealed tagged union: exactly one of RegistryRef,
GitHubRef, or URLRef. The seal keeps resolution dispatch exhaustive; adding a
source kind is a compile-time-visible change at every dispatch site.

	resolved, err := r.Resolve(ctx, &resolver.RegistryRef{
		Name:      "@nimblebrain/debugging",
		Version:   "1.2.0",
		Integrity: "sha256:b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
	})

# Fail-closed verification

When a reference carries an integrity descriptor, the fetched content is
hashed and compared before a Resolved value is constructed. On mismatch the
content is discarded and Resolve returns *sdkerr.IntegrityError carrying both
digests; there is no code path that populates Resolved.Content before the
comparison succeeds. When no descriptor is supplied, no hashing occurs and the
result reports Verified=false.

# Archive payloads

Registry downloads may arrive as an archive instead of raw text. The resolver
looks for "<basename>/SKILL.md" first, then a top-level "SKILL.md"; a payload
with neither entry fails with *sdkerr.NotFoundError naming the missing entry.
Archive opening is an injected capability (see the archive package), so the
resolution logic is testable with an in-memory fake.
*/
package resolver
