// SPDX-FileCopyrightText: Copyright 2026 NimbleBrain, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"context"
	"net/url"
	"strconv"

	"github.com/NimbleBrainInc/mpak-sdk/platform"
	"github.com/NimbleBrainInc/mpak-sdk/registry/types"
)

// BundleSearchOptions holds the optional parameters for SearchBundles.
// Zero-valued fields are omitted from the request entirely.
type BundleSearchOptions struct {
	// Query is the free-text search term.
	Query string
	// Type filters by bundle type.
	Type string
	// Sort selects the result ordering.
	Sort string
	// Limit caps the page size.
	Limit int
	// Offset skips past earlier pages.
	Offset int
}

func (o BundleSearchOptions) values() url.Values {
	q := url.Values{}
	if o.Query != "" {
		q.Set("q", o.Query)
	}
	if o.Type != "" {
		q.Set("type", o.Type)
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

// SearchBundles searches the bundle catalog.
func (c *Client) SearchBundles(ctx context.Context, opts BundleSearchOptions) (*types.BundleSearchResult, error) {
	body, err := c.get(ctx, "/v1/bundles/search", opts.values(), "bundle search")
	if err != nil {
		return nil, err
	}

	var result types.BundleSearchResult
	if err := decodeJSON(body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetBundle fetches the detail record for a bundle.
func (c *Client) GetBundle(ctx context.Context, bundleName string) (*types.Bundle, error) {
	if err := requireScopedName(bundleName); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/v1/bundles/"+bundleName, nil, bundleName)
	if err != nil {
		return nil, err
	}

	var bundle types.Bundle
	if err := decodeJSON(body, &bundle); err != nil {
		return nil, err
	}
	return &bundle, nil
}

// GetBundleVersions fetches the version history of a bundle.
func (c *Client) GetBundleVersions(ctx context.Context, bundleName string) (*types.BundleVersionList, error) {
	if err := requireScopedName(bundleName); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/v1/bundles/"+bundleName+"/versions", nil, bundleName)
	if err != nil {
		return nil, err
	}

	var versions types.BundleVersionList
	if err := decodeJSON(body, &versions); err != nil {
		return nil, err
	}
	return &versions, nil
}

// GetBundleVersion fetches one published version with its artifact manifest.
func (c *Client) GetBundleVersion(ctx context.Context, bundleName, version string) (*types.BundleVersion, error) {
	if err := requireScopedName(bundleName); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/v1/bundles/"+bundleName+"/versions/"+version, nil, bundleName+"@"+version)
	if err != nil {
		return nil, err
	}

	var bundleVersion types.BundleVersion
	if err := decodeJSON(body, &bundleVersion); err != nil {
		return nil, err
	}
	return &bundleVersion, nil
}

// GetBundleDownload requests download information for a bundle version,
// scoped to a platform. A nil platform means the detected host platform;
// wildcard axes are omitted from the query.
func (c *Client) GetBundleDownload(ctx context.Context, bundleName, version string, p *platform.Platform) (*types.BundleDownloadInfo, error) {
	if err := requireScopedName(bundleName); err != nil {
		return nil, err
	}

	if p == nil {
		detected := platform.Detect()
		p = &detected
	}

	q := url.Values{}
	if p.OS != platform.OSAny {
		q.Set("os", string(p.OS))
	}
	if p.Arch != platform.ArchAny {
		q.Set("arch", string(p.Arch))
	}

	body, err := c.get(ctx, "/v1/bundles/"+bundleName+"/versions/"+version+"/download", q, bundleName+"@"+version)
	if err != nil {
		return nil, err
	}

	var info types.BundleDownloadInfo
	if err := decodeJSON(body, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
