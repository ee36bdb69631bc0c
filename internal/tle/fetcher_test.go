package tle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitops-data/orbitops/internal/httputil"
)

const fetchFixture = "ISS (ZARYA)\n" +
	"1 25544U 98067A   24001.50000000  .00016717  00000-0  10270-3 0  9993\n" +
	"2 25544  51.6416 247.4627 0006703 130.5360 325.0288 15.72125391423756\n"

func testSource() Source {
	return Source{Name: "Test Source", URL: "https://example.org/elements", Enabled: true}
}

func TestFetcher_Success(t *testing.T) {
	t.Parallel()

	mock := httputil.NewMockHTTPClient()
	mock.AddResponse(200, fetchFixture)

	f := NewFetcher([]Source{testSource()}, WithHTTPClient(mock))
	res, err := f.Fetch(context.Background(), testSource())
	require.NoError(t, err)

	assert.Equal(t, "Test Source", res.SourceName)
	require.Len(t, res.Elements, 1)
	assert.Equal(t, 25544, res.Elements[0].CatalogNumber)
	assert.Equal(t, len(fetchFixture), res.Bytes)
}

func TestFetcher_RetriesThenSucceeds(t *testing.T) {
	t.Parallel()

	mock := httputil.NewMockHTTPClient()
	mock.AddErrorResponse(errors.New("connection refused"))
	mock.AddResponse(500, "server error")
	mock.AddResponse(200, fetchFixture)

	f := NewFetcher(nil, WithHTTPClient(mock), WithMaxRetries(3))
	res, err := f.Fetch(context.Background(), testSource())
	require.NoError(t, err)
	assert.Len(t, res.Elements, 1)
	assert.Equal(t, 3, mock.RequestCount())
}

func TestFetcher_ExhaustsRetries(t *testing.T) {
	t.Parallel()

	mock := httputil.NewMockHTTPClient()
	for i := 0; i < 3; i++ {
		mock.AddErrorResponse(errors.New("connection refused"))
	}

	f := NewFetcher(nil, WithHTTPClient(mock), WithMaxRetries(3))
	_, err := f.Fetch(context.Background(), testSource())
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "Test Source", fetchErr.Source)
	assert.Equal(t, 3, fetchErr.Attempts)

	stats := f.Stats()
	assert.Equal(t, 1, stats.FailedFetches)
}

func TestFetcher_EmptyBodyRetries(t *testing.T) {
	t.Parallel()

	mock := httputil.NewMockHTTPClient()
	mock.AddResponse(200, "")
	mock.AddResponse(200, fetchFixture)

	f := NewFetcher(nil, WithHTTPClient(mock))
	res, err := f.Fetch(context.Background(), testSource())
	require.NoError(t, err)
	assert.Len(t, res.Elements, 1)
}

func TestFetcher_UserAgent(t *testing.T) {
	t.Parallel()

	mock := httputil.NewMockHTTPClient()
	mock.AddResponse(200, fetchFixture)

	f := NewFetcher(nil, WithHTTPClient(mock), WithUserAgent("screening-test/9.9"))
	_, err := f.Fetch(context.Background(), testSource())
	require.NoError(t, err)

	require.Equal(t, 1, mock.RequestCount())
	assert.Equal(t, "screening-test/9.9", mock.Requests[0].Header.Get("User-Agent"))
}

func TestFetcher_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewFetcher(nil, WithHTTPClient(httputil.NewMockHTTPClient()))
	_, err := f.Fetch(ctx, testSource())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchAll_MergesAndReportsErrors(t *testing.T) {
	t.Parallel()

	good := Source{Name: "Good", URL: "https://example.org/good", Enabled: true}
	bad := Source{Name: "Bad", URL: "https://example.org/bad", Enabled: true}
	disabled := Source{Name: "Off", URL: "https://example.org/off", Enabled: false}

	mock := httputil.NewMockHTTPClient()
	mock.AddResponse(200, fetchFixture)
	for i := 0; i < 3; i++ {
		mock.AddErrorResponse(errors.New("unreachable"))
	}

	f := NewFetcher([]Source{good, bad, disabled}, WithHTTPClient(mock))
	merged, errs := f.FetchAll(context.Background())

	assert.Len(t, merged, 1)
	require.Len(t, errs, 1)
	var fetchErr *FetchError
	require.ErrorAs(t, errs[0], &fetchErr)
	assert.Equal(t, "Bad", fetchErr.Source)
}
