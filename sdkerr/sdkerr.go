// SPDX-FileCopyrightText: Copyright 2026 NimbleBrain, Inc.
// SPDX-License-Identifier: Apache-2.0

package sdkerr

import (
	"errors"
	"fmt"
)

// Kind classifies an SDK failure into one of the closed set of categories.
type Kind string

// The four failure categories produced by the SDK.
const (
	// KindNotFound indicates the requested resource, version, or archive entry is absent.
	KindNotFound Kind = "not_found"

	// KindIntegrity indicates downloaded content failed digest verification.
	KindIntegrity Kind = "integrity_mismatch"

	// KindNetwork indicates a transport failure, unexpected HTTP status, or timeout.
	KindNetwork Kind = "network"

	// KindValidation indicates a local precondition failed before any request was issued.
	KindValidation Kind = "validation"
)

// Error is implemented by every failure the SDK produces.
// It allows callers to catch any SDK-originated error uniformly while still
// exposing the specific kind for targeted handling.
type Error interface {
	error

	// ErrorKind returns the failure category.
	ErrorKind() Kind
}

// Compile-time interface checks.
var (
	_ Error = (*NotFoundError)(nil)
	_ Error = (*IntegrityError)(nil)
	_ Error = (*NetworkError)(nil)
	_ Error = (*ValidationError)(nil)
)

// NotFoundError indicates the requested resource is absent: an HTTP 404 from
// the registry, a non-success status from a release or URL fetch, or a missing
// entry inside an archive payload.
type NotFoundError struct {
	// Resource identifies what was requested, rendered as "name" or
	// "name@version" for registry resources.
	Resource string
}

// NewNotFound builds a NotFoundError for the given name and optional version.
func NewNotFound(name, version string) *NotFoundError {
	resource := name
	if version != "" {
		resource = name + "@" + version
	}
	return &NotFoundError{Resource: resource}
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ErrorKind implements Error.
func (*NotFoundError) ErrorKind() Kind { return KindNotFound }

// IntegrityError indicates computed content digest differs from the expected
// descriptor. The fetched content is discarded before this error is returned;
// no code path surfaces content alongside an IntegrityError.
type IntegrityError struct {
	// Expected is the digest parsed from the caller-supplied descriptor.
	Expected string

	// Actual is the digest computed over the fetched content.
	Actual string
}

// Error implements the error interface.
func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity verification failed: expected sha256 %s, got %s", e.Expected, e.Actual)
}

// ErrorKind implements Error.
func (*IntegrityError) ErrorKind() Kind { return KindIntegrity }

// NetworkError indicates a transport failure, an unexpected non-2xx/non-404
// HTTP status, or a timed-out request.
type NetworkError struct {
	// Message describes the failure. For status failures it names the status
	// code; for timeouts it names the configured duration.
	Message string

	// StatusCode is the HTTP status that triggered the failure, or zero when
	// the request never produced a response.
	StatusCode int

	// Err is the underlying transport error, if any.
	Err error
}

// NewNetwork builds a NetworkError wrapping an underlying transport error.
func NewNetwork(message string, err error) *NetworkError {
	return &NetworkError{Message: message, Err: err}
}

// NewNetworkStatus builds a NetworkError for an unexpected HTTP status.
func NewNetworkStatus(statusCode int) *NetworkError {
	return &NetworkError{
		Message:    fmt.Sprintf("registry returned status %d", statusCode),
		StatusCode: statusCode,
	}
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying transport error for errors.Is and errors.As.
func (e *NetworkError) Unwrap() error { return e.Err }

// ErrorKind implements Error.
func (*NetworkError) ErrorKind() Kind { return KindNetwork }

// ValidationError indicates a local precondition failed. It is raised before
// any network request is issued and is distinct from the network taxonomy.
type ValidationError struct {
	// Message describes the violated precondition.
	Message string
}

// NewValidation builds a ValidationError with a formatted message.
func NewValidation(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *ValidationError) Error() string { return e.Message }

// ErrorKind implements Error.
func (*ValidationError) ErrorKind() Kind { return KindValidation }

// KindOf extracts the Kind from an error chain.
// It returns the empty Kind when the chain contains no SDK error.
func KindOf(err error) Kind {
	var sdkErr Error
	if errors.As(err, &sdkErr) {
		return sdkErr.ErrorKind()
	}
	return ""
}

// IsNotFound reports whether the error chain contains a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsIntegrity reports whether the error chain contains an IntegrityError.
func IsIntegrity(err error) bool {
	var target *IntegrityError
	return errors.As(err, &target)
}

// IsNetwork reports whether the error chain contains a NetworkError.
func IsNetwork(err error) bool {
	var target *NetworkError
	return errors.As(err, &target)
}

// IsValidation reports whether the error chain contains a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
