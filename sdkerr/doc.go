// SPDX-FileCopyrightText: Copyright 2026 NimbleBrain, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package sdkerr defines the error taxonomy shared by every mpak-sdk operation.

All failures produced by the SDK implement the Error interface, which carries a
machine-readable Kind alongside the human-readable message. Callers that do not
care about the specific failure can match any SDK error uniformly:

	var sdkErr sdkerr.Error
	if errors.As(err, &sdkErr) {
		log.Printf("mpak failure (%s): %s", sdkErr.ErrorKind(), sdkErr)
	}

Callers that need to react differently per kind use the concrete types:

	var integrityErr *sdkerr.IntegrityError
	if errors.As(err, &integrityErr) {
		// Treat as a security incident: the downloaded content did not
		// match the expected digest and was discarded.
		alert(integrityErr.Expected, integrityErr.Actual)
	}

	var notFound *sdkerr.NotFoundError
	if errors.As(err, &notFound) {
		// Ordinary absence, e.g. an unpublished version.
	}

# Kinds

Four kinds partition every failure path:

  - KindNotFound: the requested resource, version, or archive entry is absent.
  - KindIntegrity: downloaded content failed digest verification. No content is
    ever surfaced alongside this error.
  - KindNetwork: transport failure, unexpected HTTP status, or timeout.
  - KindValidation: a local precondition failed before any request was issued.

All types support the standard error wrapping pattern; NetworkError additionally
implements Unwrap so the underlying transport error remains reachable with
errors.Is and errors.As.
*/
package sdkerr
