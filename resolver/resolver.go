// SPDX-FileCopyrightText: Copyright 2026 NimbleBrain, Inc.
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/NimbleBrainInc/mpak-sdk/archive"
	"github.com/NimbleBrainInc/mpak-sdk/integrity"
	"github.com/NimbleBrainInc/mpak-sdk/logger"
	"github.com/NimbleBrainInc/mpak-sdk/registry"
	"github.com/NimbleBrainInc/mpak-sdk/sdkerr"
	validhttp "github.com/NimbleBrainInc/mpak-sdk/validation/http"
	"github.com/NimbleBrainInc/mpak-sdk/validation/name"
)

// defaultReleaseBaseURL is the host release-asset URLs are built against.
const defaultReleaseBaseURL = "https://github.com"

// skillEntryName is the canonical content entry inside archive payloads.
const skillEntryName = "SKILL.md"

// Resolver resolves content references against their sources and enforces
// integrity verification on the fetched bytes. Configuration is fixed at
// construction; a Resolver is safe for concurrent use.
type Resolver struct {
	registry SkillPayloadFetcher

	httpClient HTTPDoer
	timeout    time.Duration

	// open opens archive payloads. Defaults to archive.Open; override in
	// tests to inject an in-memory fake.
	open archive.OpenFunc

	// releaseBaseURL is overridden in tests to point release fetches at a
	// local server.
	releaseBaseURL string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithHTTPClient sets the client used for release and URL fetches.
func WithHTTPClient(httpClient HTTPDoer) Option {
	return func(r *Resolver) {
		r.httpClient = httpClient
	}
}

// WithTimeout overrides the deadline applied to release and URL fetches.
func WithTimeout(timeout time.Duration) Option {
	return func(r *Resolver) {
		r.timeout = timeout
	}
}

// WithArchiveOpener sets a custom archive-opening capability.
func WithArchiveOpener(open archive.OpenFunc) Option {
	return func(r *Resolver) {
		r.open = open
	}
}

// New creates a resolver that fetches registry references through
// registryClient. Registry fetches inherit that client's timeout; direct
// release and URL fetches use the resolver's own.
func New(registryClient SkillPayloadFetcher, opts ...Option) *Resolver {
	r := &Resolver{
		registry:       registryClient,
		timeout:        registry.DefaultTimeout,
		open:           archive.Open,
		releaseBaseURL: defaultReleaseBaseURL,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.httpClient == nil {
		r.httpClient = &http.Client{}
	}

	return r
}

// Resolve fetches the content a reference describes and returns it with a
// verification verdict. A reference whose integrity descriptor does not match
// the fetched content yields only *sdkerr.IntegrityError; the content is
// discarded.
func (r *Resolver) Resolve(ctx context.Context, ref Ref) (*Resolved, error) {
	if ref == nil {
		return nil, sdkerr.NewValidation("content reference is nil")
	}

	var (
		content string
		version string
		err     error
	)

	switch ref := ref.(type) {
	case *RegistryRef:
		if ref == nil {
			return nil, sdkerr.NewValidation("content reference is nil")
		}
		content, version, err = r.resolveRegistry(ctx, ref)
	case *GitHubRef:
		if ref == nil {
			return nil, sdkerr.NewValidation("content reference is nil")
		}
		content, version, err = r.resolveGitHub(ctx, ref)
	case *URLRef:
		if ref == nil {
			return nil, sdkerr.NewValidation("content reference is nil")
		}
		content, version, err = r.resolveURL(ctx, ref)
	default:
		// Unreachable while the interface stays sealed.
		return nil, sdkerr.NewValidation("unsupported content reference type %T", ref)
	}
	if err != nil {
		return nil, err
	}

	descriptor := ref.integrity()
	if descriptor == "" {
		// Verification is opt-in: no descriptor, no hashing.
		return &Resolved{
			Content: content,
			Version: version,
			Source:  ref.Source(),
		}, nil
	}

	verdict := integrity.Verify([]byte(content), descriptor)
	if !verdict.Matched {
		// Fail closed: the fetched content is dropped here and never
		// reaches a Resolved value.
		return nil, &sdkerr.IntegrityError{
			Expected: string(verdict.Expected),
			Actual:   string(verdict.Actual),
		}
	}

	return &Resolved{
		Content:  content,
		Version:  version,
		Source:   ref.Source(),
		Verified: true,
	}, nil
}

// resolveRegistry fetches through the registry download endpoint. The payload
// is either raw skill text or an archive holding the SKILL.md entry.
func (r *Resolver) resolveRegistry(ctx context.Context, ref *RegistryRef) (string, string, error) {
	payload, contentType, err := r.registry.FetchSkillPayload(ctx, ref.Name, ref.Version)
	if err != nil {
		return "", "", err
	}

	if !isArchivePayload(contentType, payload) {
		return string(payload), ref.Version, nil
	}

	opened, err := r.open(payload)
	if err != nil {
		return "", "", sdkerr.NewNetwork("invalid archive payload", err)
	}

	candidates := []string{name.Basename(ref.Name) + "/" + skillEntryName, skillEntryName}
	for _, entry := range candidates {
		content, err := opened.Entry(entry)
		if err == nil {
			return string(content), ref.Version, nil
		}
		if !errors.Is(err, archive.ErrEntryNotFound) {
			return "", "", sdkerr.NewNetwork("reading archive entry", err)
		}
	}

	return "", "", &sdkerr.NotFoundError{
		Resource: fmt.Sprintf("%s in %s@%s archive", candidates[0], ref.Name, ref.Version),
	}
}

// resolveGitHub builds the release-asset URL and fetches it directly.
func (r *Resolver) resolveGitHub(ctx context.Context, ref *GitHubRef) (string, string, error) {
	assetURL := fmt.Sprintf("%s/%s/releases/download/%s/%s", r.releaseBaseURL, ref.Repo, ref.Version, ref.Path)
	content, err := r.fetchDirect(ctx, assetURL)
	return content, ref.Version, err
}

// resolveURL fetches a caller-supplied URL verbatim.
func (r *Resolver) resolveURL(ctx context.Context, ref *URLRef) (string, string, error) {
	if err := validhttp.ValidateDownloadURL(ref.URL); err != nil {
		return "", "", sdkerr.NewValidation("%s", err)
	}
	content, err := r.fetchDirect(ctx, ref.URL)
	return content, ref.Version, err
}

// fetchDirect GETs a URL with the resolver's deadline. Any non-success status
// is Not-Found; the remote host's own error semantics are not distinguished
// further.
func (r *Resolver) fetchDirect(ctx context.Context, rawURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", sdkerr.NewNetwork("building request", err)
	}

	logger.Debugw("fetching content", "url", rawURL)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", r.transportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", r.transportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &sdkerr.NotFoundError{Resource: rawURL}
	}

	return string(body), nil
}

func (r *Resolver) transportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return sdkerr.NewNetwork(fmt.Sprintf("request timed out after %dms", r.timeout.Milliseconds()), err)
	}
	return sdkerr.NewNetwork("request failed", err)
}

// isArchivePayload reports whether a registry payload should be treated as a
// packaged archive rather than raw skill text, judged by magic bytes first
// and the declared content type second.
func isArchivePayload(contentType string, payload []byte) bool {
	if archive.Detect(payload) {
		return true
	}

	mediaType := contentType
	if idx := strings.Index(mediaType, ";"); idx >= 0 {
		mediaType = mediaType[:idx]
	}
	switch strings.TrimSpace(mediaType) {
	case "application/zip", "application/gzip", "application/x-gzip", "application/x-tar":
		return true
	}
	return false
}
