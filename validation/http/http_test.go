// SPDX-FileCopyrightText: Copyright 2026 NimbleBrain, Inc.
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateHeaderName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name", "X-Mpak-Client", false},
		{"valid standard header", "Accept", false},
		{"empty", "", true},
		{"crlf injection", "X-Evil\r\nHost", true},
		{"space in name", "X Evil", true},
		{"too long", strings.Repeat("a", 257), true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateHeaderName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateHeaderValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid value", "mpak-sdk/1.0", false},
		{"empty", "", true},
		{"crlf injection", "value\r\nSet-Cookie: evil", true},
		{"null byte", "value\x00", true},
		{"too long", strings.Repeat("a", 8193), true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateHeaderValue(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateDownloadURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid https", "https://example.com/files/skill.md", false},
		{"valid http", "http://localhost:8080/skill.md", false},
		{"empty", "", true},
		{"no scheme", "example.com/skill.md", true},
		{"file scheme", "file:///etc/passwd", true},
		{"no host", "https:///skill.md", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateDownloadURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
