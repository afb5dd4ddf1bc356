// SPDX-FileCopyrightText: Copyright 2026 NimbleBrain, Inc.
// SPDX-License-Identifier: Apache-2.0

package resolver

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"
	"net/http"
)

// SkillPayloadFetcher is the slice of the registry client the resolver needs:
// fetching the raw download payload for a skill version together with its
// content type. *registry.Client satisfies it.
type SkillPayloadFetcher interface {
	FetchSkillPayload(ctx context.Context, skillName, version string) ([]byte, string, error)
}

// HTTPDoer issues the direct GET requests for release and URL references.
// *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}
