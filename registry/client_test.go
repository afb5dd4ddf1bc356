// SPDX-FileCopyrightText: Copyright 2026 NimbleBrain, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/NimbleBrainInc/mpak-sdk/sdkerr"
)

func TestNewClient(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		c, err := NewClient()
		require.NoError(t, err)
		require.Equal(t, DefaultRegistryURL, c.baseURL)
		require.Equal(t, DefaultTimeout, c.Timeout())
	})

	t.Run("options applied", func(t *testing.T) {
		t.Parallel()

		c, err := NewClient(
			WithRegistryURL("https://registry.example.com/"),
			WithTimeout(5*time.Second),
			WithHeader("X-Mpak-Client", "test"),
		)
		require.NoError(t, err)
		require.Equal(t, "https://registry.example.com", c.baseURL, "trailing slash trimmed")
		require.Equal(t, 5*time.Second, c.Timeout())
		require.Equal(t, "test", c.headers.Get("X-Mpak-Client"))
	})

	t.Run("invalid header name rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewClient(WithHeader("X-Evil\r\nHost", "v"))
		require.Error(t, err)
		require.True(t, sdkerr.IsValidation(err))
	})

	t.Run("invalid header value rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewClient(WithHeader("X-Ok", "bad\r\nvalue"))
		require.Error(t, err)
		require.True(t, sdkerr.IsValidation(err))
	})
}

func TestClient_StatusMapping(t *testing.T) {
	t.Parallel()

	t.Run("404 maps to not found with resource", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		t.Cleanup(srv.Close)

		c, err := NewClient(WithRegistryURL(srv.URL))
		require.NoError(t, err)

		_, err = c.GetBundle(context.Background(), "@scope/missing")
		var notFound *sdkerr.NotFoundError
		require.ErrorAs(t, err, &notFound)
		require.Equal(t, "@scope/missing", notFound.Resource)
	})

	t.Run("version lookups render name@version", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		t.Cleanup(srv.Close)

		c, err := NewClient(WithRegistryURL(srv.URL))
		require.NoError(t, err)

		_, err = c.GetBundleVersion(context.Background(), "@scope/demo", "2.0.0")
		var notFound *sdkerr.NotFoundError
		require.ErrorAs(t, err, &notFound)
		require.Equal(t, "@scope/demo@2.0.0", notFound.Resource)
	})

	t.Run("other non-2xx maps to network with status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		t.Cleanup(srv.Close)

		c, err := NewClient(WithRegistryURL(srv.URL))
		require.NoError(t, err)

		_, err = c.GetBundle(context.Background(), "@scope/demo")
		var netErr *sdkerr.NetworkError
		require.ErrorAs(t, err, &netErr)
		require.Equal(t, http.StatusServiceUnavailable, netErr.StatusCode)
	})

	t.Run("transport failure maps to network", func(t *testing.T) {
		t.Parallel()

		// Closed server: connection refused
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close()

		c, err := NewClient(WithRegistryURL(srv.URL))
		require.NoError(t, err)

		_, err = c.GetBundle(context.Background(), "@scope/demo")
		require.True(t, sdkerr.IsNetwork(err))
	})
}

func TestClient_Timeout(t *testing.T) {
	t.Parallel()

	t.Run("expired deadline surfaces configured duration", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(2 * time.Second):
			case <-r.Context().Done():
			}
		}))
		t.Cleanup(srv.Close)

		c, err := NewClient(WithRegistryURL(srv.URL), WithTimeout(50*time.Millisecond))
		require.NoError(t, err)

		_, err = c.GetBundle(context.Background(), "@scope/demo")
		require.True(t, sdkerr.IsNetwork(err))
		require.Contains(t, err.Error(), "50ms")
	})

	t.Run("message names the configured duration verbatim", func(t *testing.T) {
		t.Parallel()

		c := &Client{timeout: 5000 * time.Millisecond}
		err := c.transportError(context.DeadlineExceeded)
		require.Contains(t, err.Error(), "5000ms")
	})
}

func TestClient_ScopedNamePrecondition(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(WithRegistryURL(srv.URL))
	require.NoError(t, err)

	ctx := context.Background()
	calls := []func() error{
		func() error { _, err := c.GetBundle(ctx, "invalid-name"); return err },
		func() error { _, err := c.GetBundleVersions(ctx, "invalid-name"); return err },
		func() error { _, err := c.GetBundleVersion(ctx, "invalid-name", "1.0.0"); return err },
		func() error { _, err := c.GetBundleDownload(ctx, "invalid-name", "1.0.0", nil); return err },
		func() error { _, err := c.GetSkill(ctx, "invalid-name"); return err },
		func() error { _, err := c.GetSkillDownload(ctx, "invalid-name"); return err },
		func() error { _, err := c.GetSkillVersionDownload(ctx, "invalid-name", "1.0.0"); return err },
		func() error { _, err := c.GetSkillContent(ctx, "invalid-name", "1.0.0"); return err },
		func() error { _, _, err := c.FetchSkillPayload(ctx, "invalid-name", "1.0.0"); return err },
	}

	for _, call := range calls {
		err := call()
		require.True(t, sdkerr.IsValidation(err), "expected validation error, got %v", err)
	}
	require.Equal(t, int64(0), requests.Load(), "no network call may be issued for unscoped names")
}

func TestClient_CustomHeadersSent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "mpak-sdk-test", r.Header.Get("X-Mpak-Client"))
		w.Write([]byte(`{"name":"@scope/demo"}`))
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(WithRegistryURL(srv.URL), WithHeader("X-Mpak-Client", "mpak-sdk-test"))
	require.NoError(t, err)

	_, err = c.GetBundle(context.Background(), "@scope/demo")
	require.NoError(t, err)
}
