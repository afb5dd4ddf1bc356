// SPDX-FileCopyrightText: Copyright 2026 NimbleBrain, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/NimbleBrainInc/mpak-sdk/registry/types"
)

// SkillSearchOptions holds the optional parameters for SearchSkills.
// Zero-valued fields are omitted from the request entirely.
type SkillSearchOptions struct {
	// Query is the free-text search term.
	Query string
	// Tags filters by tags; multiple tags are sent comma-separated.
	Tags []string
	// Category filters by registry category.
	Category string
	// Surface filters by target agent surface.
	Surface string
	// Sort selects the result ordering.
	Sort string
	// Limit caps the page size.
	Limit int
	// Offset skips past earlier pages.
	Offset int
}

func (o SkillSearchOptions) values() url.Values {
	q := url.Values{}
	if o.Query != "" {
		q.Set("q", o.Query)
	}
	if len(o.Tags) > 0 {
		q.Set("tags", strings.Join(o.Tags, ","))
	}
	if o.Category != "" {
		q.Set("category", o.Category)
	}
	if o.Surface != "" {
		q.Set("surface", o.Surface)
	}
	if o.Sort != "" {
		q.Set("sort", o.Sort)
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Offset > 0 {
		q.Set("offset", strconv.Itoa(o.Offset))
	}
	return q
}

// SearchSkills searches the skill catalog.
func (c *Client) SearchSkills(ctx context.Context, opts SkillSearchOptions) (*types.SkillSearchResult, error) {
	body, err := c.get(ctx, "/v1/skills/search", opts.values(), "skill search")
	if err != nil {
		return nil, err
	}

	var result types.SkillSearchResult
	if err := decodeJSON(body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetSkill fetches the detail record for a skill.
func (c *Client) GetSkill(ctx context.Context, skillName string) (*types.Skill, error) {
	if err := requireScopedName(skillName); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/v1/skills/"+skillName, nil, skillName)
	if err != nil {
		return nil, err
	}

	var skill types.Skill
	if err := decodeJSON(body, &skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

// GetSkillDownload requests download information for the latest version of a skill.
func (c *Client) GetSkillDownload(ctx context.Context, skillName string) (*types.SkillDownloadInfo, error) {
	if err := requireScopedName(skillName); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/v1/skills/"+skillName+"/download", nil, skillName)
	if err != nil {
		return nil, err
	}

	var info types.SkillDownloadInfo
	if err := decodeJSON(body, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetSkillVersionDownload requests download information for a specific skill version.
func (c *Client) GetSkillVersionDownload(ctx context.Context, skillName, version string) (*types.SkillDownloadInfo, error) {
	if err := requireScopedName(skillName); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/v1/skills/"+skillName+"/versions/"+version+"/download", nil, skillName+"@"+version)
	if err != nil {
		return nil, err
	}

	var info types.SkillDownloadInfo
	if err := decodeJSON(body, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetSkillContent fetches the raw markdown content of a skill version.
func (c *Client) GetSkillContent(ctx context.Context, skillName, version string) (string, error) {
	if err := requireScopedName(skillName); err != nil {
		return "", err
	}

	body, err := c.get(ctx, "/v1/skills/"+skillName+"/versions/"+version+"/content", nil, skillName+"@"+version)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FetchSkillPayload fetches the download payload for a skill version along
// with its content type. The payload is either the raw skill text or an
// archive containing a SKILL.md entry; the resolver decides which by
// inspecting the content type and magic bytes.
func (c *Client) FetchSkillPayload(ctx context.Context, skillName, version string) ([]byte, string, error) {
	if err := requireScopedName(skillName); err != nil {
		return nil, "", err
	}

	return c.fetch(ctx, "/v1/skills/"+skillName+"/versions/"+version+"/download", nil, skillName+"@"+version)
}
