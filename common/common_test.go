package common

import (
	"context"
	"net/http"
	"net/url"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUserAgent(t *testing.T) {
	base := "TeleSignSdk/go-" + Version + " Go/" + runtime.Version() + " net/http"

	assert.Equal(t, base, BuildUserAgent("", "", ""))
	assert.Equal(t, base, BuildUserAgent("go_telesign", "2.0", "3.0"))
	assert.Equal(t, base+" OriginatingSDK/partner SDKVersion/2.0", BuildUserAgent("partner", "2.0", ""))
	assert.Equal(t,
		base+" OriginatingSDK/partner SDKVersion/2.0 DependencySDKVersion/3.0",
		BuildUserAgent("partner", "2.0", "3.0"))
}

func TestParseEndpoint(t *testing.T) {
	u, err := ParseEndpoint("https://rest-api.telesign.com")
	require.NoError(t, err)
	assert.Equal(t, "rest-api.telesign.com", u.Host)

	_, err = ParseEndpoint("rest-api.telesign.com")
	assert.EqualError(t, err, `URI is not absolute: "rest-api.telesign.com"`)

	_, err = ParseEndpoint(":")
	assert.ErrorContains(t, err, "malformed URI")
}

func TestResolveEndpoint(t *testing.T) {
	tvs := []struct {
		base     string
		resource string
		expected string
	}{
		{"https://rest-api.telesign.com", "/v1/messaging", "https://rest-api.telesign.com/v1/messaging"},
		{"https://rest-api.telesign.com/", "/v1/messaging", "https://rest-api.telesign.com/v1/messaging"},
		{"https://proxy.example/telesign", "/v1/score/1555", "https://proxy.example/telesign/v1/score/1555"},
		{"https://rest-api.telesign.com?x=y", "/v1/voice", "https://rest-api.telesign.com/v1/voice"},
	}

	for _, tv := range tvs {
		base, err := url.Parse(tv.base)
		require.NoError(t, err)

		u, err := ResolveEndpoint(base, tv.resource)
		require.NoError(t, err)
		assert.Equal(t, tv.expected, u.String())
	}

	_, err := ResolveEndpoint(nil, "/v1/voice")
	assert.EqualError(t, err, "no endpoint URI")
}

func TestNewRestClient(t *testing.T) {
	rc, err := NewRestClient("", NewClient(nil))
	require.NoError(t, err)
	assert.Equal(t, DefaultRestEndpoint, rc.Endpoint.String())

	_, err = NewRestClient("", nil)
	assert.ErrorIs(t, err, ErrNoClient)

	_, err = NewRestClient("relative/path", NewClient(nil))
	assert.EqualError(t, err, `URI is not absolute: "relative/path"`)
}

func TestRestClient_verbs(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, r.Method+" "+r.RequestURI+" "+r.Header.Get("Content-Type"))
	})

	client, teardown := NewTestingHTTPClient(h, testAuthenticator(t))
	defer teardown()

	rc, err := NewRestClient("http://telesign.example", client)
	require.NoError(t, err)

	ctx := context.Background()
	p := NewParams("a", "1")

	_, err = rc.Get(ctx, "/r", p)
	require.NoError(t, err)
	_, err = rc.Post(ctx, "/r", p)
	require.NoError(t, err)
	_, err = rc.Put(ctx, "/r", p)
	require.NoError(t, err)
	_, err = rc.Delete(ctx, "/r", p)
	require.NoError(t, err)
	_, err = rc.PostJSON(ctx, "/r", p)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"GET /r?a=1 ",
		"POST /r application/x-www-form-urlencoded",
		"PUT /r application/x-www-form-urlencoded",
		"DELETE /r?a=1 ",
		"POST /r application/json",
	}, seen)
}

func TestRestClient_ExecuteAsync(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"reference_id":"ABC"}`))
	})

	client, teardown := NewTestingHTTPClient(h, testAuthenticator(t))
	defer teardown()

	rc, err := NewRestClient("http://telesign.example", client)
	require.NoError(t, err)

	ch := rc.ExecuteAsync(context.Background(), Request{Method: http.MethodGet, Resource: "/r"})

	res, ok := <-ch
	require.True(t, ok)
	require.NoError(t, res.Err)
	assert.Equal(t, http.StatusAccepted, res.Response.StatusCode)
	assert.Equal(t, "ABC", res.Response.JSON["reference_id"])

	_, ok = <-ch
	assert.False(t, ok, "channel should be closed after the result")
}

func TestRestClient_no_client(t *testing.T) {
	var rc RestClient

	_, err := rc.Execute(context.Background(), Request{Method: http.MethodGet, Resource: "/r"})
	assert.ErrorIs(t, err, ErrNoClient)
}

func TestNewCaller(t *testing.T) {
	rc, err := NewCaller("https://detect.telesign.com", nil)
	require.NoError(t, err)
	assert.NotNil(t, rc.Client)
	assert.Equal(t, "detect.telesign.com", rc.Endpoint.Host)

	_, err = NewCaller(string([]byte{0x7f}), nil)
	assert.ErrorContains(t, err, "malformed URI")
}
