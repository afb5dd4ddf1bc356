// SPDX-FileCopyrightText: Copyright 2026 NimbleBrain, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package name provides validation for registry-scoped artifact names.
package name

import (
	"fmt"
	"regexp"
	"strings"
)

// ScopeMarker prefixes every registry-scoped name, e.g. "@nimblebrain/hello".
const ScopeMarker = "@"

var validSegmentRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// ValidateScoped validates that an artifact name is registry-scoped:
// "@scope/name" with lowercase alphanumeric segments. This is a local
// precondition check performed before any network request.
func ValidateScoped(artifactName string) error {
	if artifactName == "" || strings.TrimSpace(artifactName) == "" {
		return fmt.Errorf("artifact name cannot be empty")
	}

	// Check for null bytes explicitly
	if strings.Contains(artifactName, "\x00") {
		return fmt.Errorf("artifact name cannot contain null bytes")
	}

	if !strings.HasPrefix(artifactName, ScopeMarker) {
		return fmt.Errorf("artifact name %q must be scoped, e.g. %sscope/name", artifactName, ScopeMarker)
	}

	scope, rest, found := strings.Cut(artifactName[len(ScopeMarker):], "/")
	if !found {
		return fmt.Errorf("artifact name %q must contain a scope and a name separated by /", artifactName)
	}

	if !validSegmentRegex.MatchString(scope) {
		return fmt.Errorf("invalid scope %q in artifact name", scope)
	}
	if !validSegmentRegex.MatchString(rest) {
		return fmt.Errorf("invalid name %q in artifact name", rest)
	}

	return nil
}

// Basename returns the final path segment of a scoped name, e.g. "hello" for
// "@nimblebrain/hello". Used to locate the canonical entry inside archive
// payloads.
func Basename(artifactName string) string {
	if idx := strings.LastIndex(artifactName, "/"); idx >= 0 {
		return artifactName[idx+1:]
	}
	return artifactName
}
