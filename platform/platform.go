// SPDX-FileCopyrightText: Copyright 2026 NimbleBrain, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package platform maps the host OS and CPU architecture to the enums the mpak
// registry uses for platform-scoped bundle downloads.
package platform

import "runtime"

// OS identifies an operating-system family in registry terms.
type OS string

// Operating systems recognized by the registry.
const (
	OSDarwin OS = "darwin"
	OSLinux  OS = "linux"
	OSWin32  OS = "win32"

	// OSAny is the wildcard fallback for unrecognized hosts.
	OSAny OS = "any"
)

// Arch identifies a CPU architecture family in registry terms.
type Arch string

// Architectures recognized by the registry.
const (
	ArchX64   Arch = "x64"
	ArchARM64 Arch = "arm64"

	// ArchAny is the wildcard fallback for unrecognized hosts.
	ArchAny Arch = "any"
)

// Platform describes the OS/CPU target for selecting a platform-specific
// bundle artifact.
type Platform struct {
	OS   OS   `json:"os"`
	Arch Arch `json:"arch"`
}

// Detect returns the platform of the current host.
func Detect() Platform {
	return FromRuntime(runtime.GOOS, runtime.GOARCH)
}

// FromRuntime maps runtime.GOOS/GOARCH values to registry platform enums.
// This is the injectable, testable form of Detect. Unrecognized values map to
// the wildcard on that axis.
func FromRuntime(goos, goarch string) Platform {
	p := Platform{OS: OSAny, Arch: ArchAny}

	switch goos {
	case "darwin":
		p.OS = OSDarwin
	case "linux":
		p.OS = OSLinux
	case "windows":
		p.OS = OSWin32
	}

	switch goarch {
	case "amd64":
		p.Arch = ArchX64
	case "arm64":
		p.Arch = ArchARM64
	}

	return p
}

// String renders the platform as "os/arch".
func (p Platform) String() string {
	return string(p.OS) + "/" + string(p.Arch)
}
