// SPDX-FileCopyrightText: Copyright 2026 NimbleBrain, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package skillfile parses SKILL.md documents: optional YAML frontmatter
// followed by the markdown instruction body.
package skillfile

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// Meta is the structured metadata carried in SKILL.md frontmatter.
type Meta struct {
	// Name is the skill name declared by the author.
	Name string `yaml:"name"`
	// Description is the short description of the skill.
	Description string `yaml:"description"`
	// Version is the declared skill version.
	Version string `yaml:"version,omitempty"`
	// AllowedTools is the list of tools the skill is compatible with.
	AllowedTools stringOrSlice `yaml:"allowed-tools,omitempty"`
	// License is the SPDX license identifier.
	License string `yaml:"license,omitempty"`
	// Metadata is an open-ended key/value extension map.
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Doc is a parsed SKILL.md document.
type Doc struct {
	// Meta is the parsed frontmatter; zero-valued when the document has none.
	Meta Meta
	// Body is the markdown content after the frontmatter block.
	Body string
}

// stringOrSlice is a YAML type that can unmarshal from a string or a sequence.
type stringOrSlice []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *stringOrSlice) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		str := value.Value
		if str == "" {
			*s = nil
			return nil
		}
		var parts []string
		if strings.Contains(str, ",") {
			parts = strings.Split(str, ",")
		} else {
			parts = strings.Fields(str)
		}
		result := make([]string, 0, len(parts))
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed != "" {
				result = append(result, trimmed)
			}
		}
		*s = result
		return nil
	case yaml.SequenceNode:
		var arr []string
		if err := value.Decode(&arr); err != nil {
			return fmt.Errorf("decoding allowed-tools array: %w", err)
		}
		*s = arr
		return nil
	default:
		return fmt.Errorf("allowed-tools must be a string or array, got YAML kind %d", value.Kind)
	}
}

// Parse splits a SKILL.md document into frontmatter metadata and body.
// A document without a frontmatter block yields a Doc with zero Meta and the
// full content as Body. Malformed YAML inside a present block is an error.
func Parse(content string) (*Doc, error) {
	block, body, found := splitFrontmatter(content)
	if !found {
		return &Doc{Body: content}, nil
	}

	var meta Meta
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return nil, fmt.Errorf("parsing SKILL.md frontmatter: %w", err)
	}

	return &Doc{Meta: meta, Body: body}, nil
}

// splitFrontmatter extracts the YAML block between leading "---" delimiter
// lines. It reports found=false when the document does not open with a
// delimiter or the closing delimiter is missing.
func splitFrontmatter(content string) (block, body string, found bool) {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(normalized, frontmatterDelimiter+"\n") {
		return "", "", false
	}

	rest := normalized[len(frontmatterDelimiter)+1:]
	end := strings.Index(rest, "\n"+frontmatterDelimiter)
	if end < 0 {
		return "", "", false
	}

	block = rest[:end]
	body = rest[end+1+len(frontmatterDelimiter):]
	// Drop the newline that terminated the closing delimiter line
	body = strings.TrimPrefix(body, "\n")
	return block, body, true
}
