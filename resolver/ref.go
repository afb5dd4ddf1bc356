// SPDX-FileCopyrightText: Copyright 2026 NimbleBrain, Inc.
// SPDX-License-Identifier: Apache-2.0

package resolver

// Source identifies which backend a content reference resolves against.
type Source string

// The three content sources.
const (
	// SourceRegistry resolves through the mpak registry's download endpoint.
	SourceRegistry Source = "registry"

	// SourceGitHub resolves a file attached to a GitHub release.
	SourceGitHub Source = "github"

	// SourceURL resolves a caller-supplied URL verbatim.
	SourceURL Source = "url"
)

// Ref describes where skill content lives and how to validate it once
// fetched. Exactly one of the three implementations in this package is active
// per reference; the unexported method seals the interface.
type Ref interface {
	// Source returns the variant tag.
	Source() Source

	// integrity returns the optional expected-digest descriptor and seals
	// the interface against outside implementations.
	integrity() string
}

// Compile-time interface checks.
var (
	_ Ref = (*RegistryRef)(nil)
	_ Ref = (*GitHubRef)(nil)
	_ Ref = (*URLRef)(nil)
)

// RegistryRef references content published in the mpak registry.
type RegistryRef struct {
	// Name is the scoped skill name, e.g. "@nimblebrain/debugging".
	Name string

	// Version is a semantic version string or the literal "latest".
	Version string

	// Integrity is an optional expected-digest descriptor: "sha256:<hex>",
	// "sha256-<hex>", or bare hex.
	Integrity string
}

// Source implements Ref.
func (*RegistryRef) Source() Source { return SourceRegistry }

func (r *RegistryRef) integrity() string { return r.Integrity }

// GitHubRef references a file attached to a GitHub release.
type GitHubRef struct {
	// Name is the artifact identifier, used for reporting only.
	Name string

	// Repo is the "owner/repo" identifier.
	Repo string

	// Path is the file path within the release asset set.
	Path string

	// Version is the release tag, e.g. "v1.0.0".
	Version string

	// Integrity is an optional expected-digest descriptor.
	Integrity string
}

// Source implements Ref.
func (*GitHubRef) Source() Source { return SourceGitHub }

func (r *GitHubRef) integrity() string { return r.Integrity }

// URLRef references content at a caller-supplied download URL.
type URLRef struct {
	// Name is the artifact identifier, used for reporting only.
	Name string

	// URL is the fully-qualified download URL, fetched verbatim.
	URL string

	// Version is the version to report in the resolution result.
	Version string

	// Integrity is an optional expected-digest descriptor.
	Integrity string
}

// Source implements Ref.
func (*URLRef) Source() Source { return SourceURL }

func (r *URLRef) integrity() string { return r.Integrity }

// Resolved is the uniform result of resolving a content reference.
type Resolved struct {
	// Content is the resolved skill content, byte-for-byte as fetched.
	Content string

	// Version is the version the reference named.
	Version string

	// Source is the variant tag of the reference, preserved for callers.
	Source Source

	// Verified is true iff an integrity descriptor was supplied and matched.
	// False means no descriptor was supplied; a supplied-but-mismatched
	// descriptor never produces a Resolved at all.
	Verified bool
}
