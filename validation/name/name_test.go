// SPDX-FileCopyrightText: Copyright 2026 NimbleBrain, Inc.
// SPDX-License-Identifier: Apache-2.0

package name

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateScoped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid scoped name", "@nimblebrain/hello", false},
		{"valid with dots and dashes", "@my-org/data.tools-v2", false},
		{"missing scope marker", "invalid-name", true},
		{"missing slash", "@nimblebrain", true},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"uppercase scope", "@NimbleBrain/hello", true},
		{"empty scope segment", "@/hello", true},
		{"empty name segment", "@scope/", true},
		{"null byte", "@scope/he\x00llo", true},
		{"leading dash in segment", "@scope/-hello", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateScoped(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestBasename(t *testing.T) {
	t.Parallel()

	require.Equal(t, "hello", Basename("@nimblebrain/hello"))
	require.Equal(t, "solo", Basename("solo"))
	require.Equal(t, "deep", Basename("@a/b/deep"))
}
