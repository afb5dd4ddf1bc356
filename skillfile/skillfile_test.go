// SPDX-FileCopyrightText: Copyright 2026 NimbleBrain, Inc.
// SPDX-License-Identifier: Apache-2.0

package skillfile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("full frontmatter", func(t *testing.T) {
		t.Parallel()

		content := `---
name: debugging
description: Systematic debugging workflow
version: 1.2.0
allowed-tools:
  - bash
  - editor
license: Apache-2.0
metadata:
  audience: developers
---
# Debugging

Start by reproducing the failure.
`
		doc, err := Parse(content)
		require.NoError(t, err)
		require.Equal(t, "debugging", doc.Meta.Name)
		require.Equal(t, "Systematic debugging workflow", doc.Meta.Description)
		require.Equal(t, "1.2.0", doc.Meta.Version)
		require.Equal(t, stringOrSlice{"bash", "editor"}, doc.Meta.AllowedTools)
		require.Equal(t, "Apache-2.0", doc.Meta.License)
		require.Equal(t, map[string]string{"audience": "developers"}, doc.Meta.Metadata)
		require.Equal(t, "# Debugging\n\nStart by reproducing the failure.\n", doc.Body)
	})

	t.Run("no frontmatter returns body only", func(t *testing.T) {
		t.Parallel()

		doc, err := Parse("# Just markdown\n")
		require.NoError(t, err)
		require.Equal(t, Meta{}, doc.Meta)
		require.Equal(t, "# Just markdown\n", doc.Body)
	})

	t.Run("unterminated frontmatter treated as body", func(t *testing.T) {
		t.Parallel()

		content := "---\nname: oops\nno closing delimiter"
		doc, err := Parse(content)
		require.NoError(t, err)
		require.Equal(t, Meta{}, doc.Meta)
		require.Equal(t, content, doc.Body)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		t.Parallel()

		_, err := Parse("---\nname: [unclosed\n---\nbody")
		require.Error(t, err)
		require.Contains(t, err.Error(), "frontmatter")
	})

	t.Run("crlf line endings", func(t *testing.T) {
		t.Parallel()

		doc, err := Parse("---\r\nname: crlf\r\n---\r\nbody\r\n")
		require.NoError(t, err)
		require.Equal(t, "crlf", doc.Meta.Name)
	})
}

func TestStringOrSlice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		want    stringOrSlice
		wantErr bool
	}{
		{"sequence", "allowed-tools:\n  - bash\n  - editor", stringOrSlice{"bash", "editor"}, false},
		{"comma separated scalar", "allowed-tools: bash, editor", stringOrSlice{"bash", "editor"}, false},
		{"space separated scalar", "allowed-tools: bash editor", stringOrSlice{"bash", "editor"}, false},
		{"empty scalar", `allowed-tools: ""`, nil, false},
		{"mapping rejected", "allowed-tools:\n  bash: true", nil, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := Parse("---\n" + tt.yaml + "\n---\nbody")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, doc.Meta.AllowedTools)
		})
	}
}
