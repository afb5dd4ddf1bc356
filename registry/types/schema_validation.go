// SPDX-FileCopyrightText: Copyright 2026 NimbleBrain, Inc.
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed data/bundle-download-info.schema.json data/skill-download-info.schema.json
var embeddedSchemaFS embed.FS

// Validate validates the BundleDownloadInfo against the download-info schema.
// Callers use this to sanity-check server-provided download manifests before
// acting on the pre-signed URL.
func (i *BundleDownloadInfo) Validate() error {
	data, err := json.Marshal(i)
	if err != nil {
		return fmt.Errorf("failed to serialize bundle download info: %w", err)
	}
	return validateAgainstSchema(data, "data/bundle-download-info.schema.json", "bundle download info schema validation failed")
}

// Validate validates the SkillDownloadInfo against the download-info schema.
func (i *SkillDownloadInfo) Validate() error {
	data, err := json.Marshal(i)
	if err != nil {
		return fmt.Errorf("failed to serialize skill download info: %w", err)
	}
	return validateAgainstSchema(data, "data/skill-download-info.schema.json", "skill download info schema validation failed")
}

// ValidateBundleDownloadBytes validates raw bundle download-info JSON bytes.
func ValidateBundleDownloadBytes(data []byte) error {
	return validateAgainstSchema(data, "data/bundle-download-info.schema.json", "bundle download info schema validation failed")
}

// ValidateSkillDownloadBytes validates raw skill download-info JSON bytes.
func ValidateSkillDownloadBytes(data []byte) error {
	return validateAgainstSchema(data, "data/skill-download-info.schema.json", "skill download info schema validation failed")
}

func validateAgainstSchema(data []byte, schemaFile, errPrefix string) error {
	schemaData, err := embeddedSchemaFS.ReadFile(schemaFile)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema %s: %w", schemaFile, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", errPrefix, err)
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return formatNumberedErrors(errPrefix, msgs)
}

// formatNumberedErrors formats a list of messages as a single error with a numbered list.
func formatNumberedErrors(prefix string, msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	if len(msgs) == 1 {
		return fmt.Errorf("%s: %s", prefix, msgs[0])
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s with %d errors:\n", prefix, len(msgs))
	for i, msg := range msgs {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, msg)
	}
	return errors.New(strings.TrimSuffix(b.String(), "\n"))
}
