// SPDX-FileCopyrightText: Copyright 2026 NimbleBrain, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package types defines the catalog record types exchanged with the mpak
// registry API. These are plain data records populated from server JSON.
package types

// Bundle is a single installable bundle in list and get responses.
type Bundle struct {
	// Name is the scoped name of the bundle, e.g. "@nimblebrain/hello".
	Name string `json:"name"`
	// Description is the description of the bundle.
	Description string `json:"description,omitempty"`
	// Type is the bundle type reported by the registry.
	Type string `json:"type,omitempty"`
	// Author is the publisher of the bundle.
	Author string `json:"author,omitempty"`
	// License is the SPDX license identifier of the bundle.
	License string `json:"license,omitempty"`
	// Homepage is the project homepage URL.
	Homepage string `json:"homepage,omitempty"`
	// Repository is the source repository URL.
	Repository string `json:"repository,omitempty"`
	// Tags is the list of search tags for the bundle.
	Tags []string `json:"tags,omitempty"`
	// Latest is the most recent published version.
	Latest string `json:"latest,omitempty"`
	// Downloads is the all-time download count.
	Downloads int64 `json:"downloads,omitempty"`
	// CreatedAt is the RFC 3339 creation timestamp.
	CreatedAt string `json:"created_at,omitempty"`
	// UpdatedAt is the RFC 3339 last-update timestamp.
	UpdatedAt string `json:"updated_at,omitempty"`
}

// BundleSearchResult is a paginated page of bundle search matches.
type BundleSearchResult struct {
	// Bundles is the page of matching bundles.
	Bundles []Bundle `json:"bundles"`
	// Total is the total number of matches across all pages.
	Total int `json:"total"`
	// Limit is the page size the server applied.
	Limit int `json:"limit,omitempty"`
	// Offset is the offset of this page.
	Offset int `json:"offset,omitempty"`
}

// BundleVersionList is the version history of a bundle.
type BundleVersionList struct {
	// Name is the scoped name of the bundle.
	Name string `json:"name"`
	// Latest points at the most recent published version.
	Latest string `json:"latest"`
	// Versions lists all published versions, newest first.
	Versions []BundleVersion `json:"versions"`
}

// BundleVersion is a single published version with its artifact manifest.
type BundleVersion struct {
	// Version is the semantic version string.
	Version string `json:"version"`
	// PublishedAt is the RFC 3339 publication timestamp.
	PublishedAt string `json:"published_at,omitempty"`
	// Artifacts lists the platform-specific artifacts for this version.
	Artifacts []BundleArtifact `json:"artifacts,omitempty"`
}

// BundleArtifact describes one downloadable artifact of a bundle version.
type BundleArtifact struct {
	// Name is the scoped name of the bundle.
	Name string `json:"name,omitempty"`
	// Version is the version the artifact belongs to.
	Version string `json:"version,omitempty"`
	// Platform is the target platform, e.g. "darwin-arm64" or "any".
	Platform string `json:"platform,omitempty"`
	// SHA256 is the lowercase hex digest of the artifact content.
	SHA256 string `json:"sha256"`
	// Size is the artifact size in bytes.
	Size int64 `json:"size"`
}

// BundleDownloadInfo is the registry's answer to a bundle download request:
// a short-lived URL plus the artifact metadata needed to verify the content.
type BundleDownloadInfo struct {
	// URL is the pre-signed download URL.
	URL string `json:"url"`
	// Bundle describes the artifact behind the URL.
	Bundle BundleArtifact `json:"bundle"`
	// ExpiresAt is the RFC 3339 expiry of the download URL.
	ExpiresAt string `json:"expires_at,omitempty"`
}

// Skill is a single skill document in list and get responses.
type Skill struct {
	// Name is the scoped name of the skill, e.g. "@nimblebrain/debugging".
	Name string `json:"name"`
	// Description is the description of the skill.
	Description string `json:"description,omitempty"`
	// Version is the most recent published version.
	Version string `json:"version,omitempty"`
	// Category is the registry category of the skill.
	Category string `json:"category,omitempty"`
	// Surface is the agent surface the skill targets.
	Surface string `json:"surface,omitempty"`
	// Tags is the list of search tags for the skill.
	Tags []string `json:"tags,omitempty"`
	// Author is the publisher of the skill.
	Author string `json:"author,omitempty"`
	// License is the SPDX license identifier of the skill.
	License string `json:"license,omitempty"`
	// Downloads is the all-time download count.
	Downloads int64 `json:"downloads,omitempty"`
	// CreatedAt is the RFC 3339 creation timestamp.
	CreatedAt string `json:"created_at,omitempty"`
	// UpdatedAt is the RFC 3339 last-update timestamp.
	UpdatedAt string `json:"updated_at,omitempty"`
}

// SkillSearchResult is a paginated page of skill search matches.
type SkillSearchResult struct {
	// Skills is the page of matching skills.
	Skills []Skill `json:"skills"`
	// Total is the total number of matches across all pages.
	Total int `json:"total"`
	// Limit is the page size the server applied.
	Limit int `json:"limit,omitempty"`
	// Offset is the offset of this page.
	Offset int `json:"offset,omitempty"`
}

// SkillArtifact describes the downloadable artifact of a skill version.
type SkillArtifact struct {
	// Name is the scoped name of the skill.
	Name string `json:"name"`
	// Version is the version the artifact belongs to.
	Version string `json:"version"`
	// SHA256 is the lowercase hex digest of the artifact content.
	SHA256 string `json:"sha256"`
	// Size is the artifact size in bytes.
	Size int64 `json:"size"`
}

// SkillDownloadInfo is the registry's answer to a skill download request.
type SkillDownloadInfo struct {
	// URL is the pre-signed download URL.
	URL string `json:"url"`
	// Skill describes the artifact behind the URL.
	Skill SkillArtifact `json:"skill"`
	// ExpiresAt is the RFC 3339 expiry of the download URL.
	ExpiresAt string `json:"expires_at,omitempty"`
}
