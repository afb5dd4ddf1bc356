// SPDX-FileCopyrightText: Copyright 2026 NimbleBrain, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package registry provides the HTTP client for the mpak content registry API.

The client covers the catalog surface: searching bundles and skills, reading
their details and version histories, and requesting download information. It
holds only immutable configuration after construction, so a single Client is
safe for concurrent use.

# Construction

Clients are built with functional options; zero options gives the production
registry with a 30 second request timeout:

	client, err := registry.NewClient(
		registry.WithRegistryURL("https://registry.example.com"),
		registry.WithTimeout(5*time.Second),
	)

# Error taxonomy

Every failure is typed per the sdkerr package: HTTP 404 becomes
*sdkerr.NotFoundError naming the requested resource, any other non-2xx status
becomes *sdkerr.NetworkError carrying the status code, transport failures and
timeouts become *sdkerr.NetworkError carrying the cause, and operations on
unscoped names fail with *sdkerr.ValidationError before any request is issued.

The client does not cache, retry, or rate-limit; that is the caller's
responsibility.
*/
package registry
