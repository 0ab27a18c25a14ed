package apiclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telesign/apiclient/auth"
	"github.com/telesign/apiclient/common"
	"github.com/telesign/apiclient/config"
	"github.com/telesign/apiclient/verify"
)

const (
	testCustomerID = "FFFFFFFF-EEEE-DDDD-1234-AB1234567890"
	testAPIKey     = "EXAMPLETE8sTgg45yusumoN6BYsBVkh+yRJ5czgsnCehZaOYldPJdmFh6NeX8kunZ2zU1YWaUw/0wV6xfw=="
)

func endpointOf(c common.Caller) string {
	return c.(*common.RestClient).Endpoint.String()
}

func TestNewClient(t *testing.T) {
	c, err := NewClient(testCustomerID, testAPIKey)
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, common.DefaultRestEndpoint, endpointOf(c.Messaging.Caller))
	assert.Equal(t, common.DefaultDetectEndpoint, endpointOf(c.Score.Caller))
	assert.Equal(t, common.DefaultRestEndpoint, endpointOf(c.Score.LegacyCaller))
	assert.Equal(t, common.DefaultMobileEndpoint, endpointOf(c.Verify.MobileCaller))
	assert.IsType(t, &auth.HMACAuthenticator{}, c.HTTP.Authenticator)
}

func TestNewClient_invalid_key(t *testing.T) {
	_, err := NewClient(testCustomerID, "***")
	assert.EqualError(t, err, "invalid credential: api_key is not valid base64: illegal base64 data at input byte 0")

	_, err = NewClient("", testAPIKey)
	assert.EqualError(t, err, "invalid credential: missing customer_id")
}

func TestNewClientWithHTTP(t *testing.T) {
	_, err := NewClientWithHTTP(nil, "")
	assert.ErrorIs(t, err, common.ErrNoClient)

	c, err := NewClientWithHTTP(common.NewClient(nil), "http://localhost:8080")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", endpointOf(c.Voice.Caller))
	assert.Equal(t, "http://localhost:8080", endpointOf(c.Verify.Caller))
	assert.Equal(t, "http://localhost:8080", endpointOf(c.Score.LegacyCaller))
	assert.Equal(t, common.DefaultDetectEndpoint, endpointOf(c.Score.Caller))
}

func TestNewClientFromProfile(t *testing.T) {
	p := &config.Profile{
		Name:           "default",
		CustomerID:     testCustomerID,
		APIKey:         testAPIKey,
		RestEndpoint:   "https://staging.telesign.example",
		MobileEndpoint: "https://staging-mobile.telesign.example",
		AuthMethod:     "basic",
	}

	c, err := NewClientFromProfile(p)
	require.NoError(t, err)

	assert.Equal(t, "https://staging.telesign.example", endpointOf(c.Telebureau.Caller))
	assert.Equal(t, "https://staging-mobile.telesign.example", endpointOf(c.Verify.MobileCaller))
	assert.IsType(t, &auth.BasicAuthenticator{}, c.HTTP.Authenticator)
}

func TestClient_concurrent_products(t *testing.T) {
	var (
		mu    sync.Mutex
		paths = map[string]int{}
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)

		mu.Lock()
		paths[r.Method+" "+r.URL.Path]++
		mu.Unlock()

		_, _ = w.Write([]byte(`{"status":{"code":290}}`))
	}))
	defer srv.Close()

	a, err := auth.NewHMACAuthenticator(testCustomerID, testAPIKey)
	require.NoError(t, err)

	c, err := NewClientWithHTTP(common.NewClient(a), srv.URL)
	require.NoError(t, err)
	c.Score.Caller = c.Score.LegacyCaller
	c.Verify.MobileCaller = c.Verify.Caller

	ctx := context.Background()

	calls := []func() (*common.Response, error){
		func() (*common.Response, error) { return c.Messaging.Message(ctx, "15555555555", "hi", "ARN", nil) },
		func() (*common.Response, error) { return c.Voice.Call(ctx, "15555555555", "hi", "ARN", nil) },
		func() (*common.Response, error) { return c.PhoneID.PhoneID(ctx, "15555555555", nil) },
		func() (*common.Response, error) { return c.Score.Score(ctx, "15555555555", "create", nil) },
		func() (*common.Response, error) { return c.AppVerify.Status(ctx, "ext", nil) },
		func() (*common.Response, error) { return c.Telebureau.Retrieve(ctx, "ABC", nil) },
		func() (*common.Response, error) {
			return c.Verify.Push(ctx, "15555555555", verify.PushOptions{})
		},
	}

	var wg sync.WaitGroup
	for _, call := range calls {
		wg.Add(1)
		go func(call func() (*common.Response, error)) {
			defer wg.Done()
			res, err := call()
			if assert.NoError(t, err) {
				assert.True(t, res.OK)
			}
		}(call)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, map[string]int{
		"POST /v1/messaging":                     1,
		"POST /v1/voice":                         1,
		"POST /v1/phoneid/15555555555":           1,
		"POST /intelligence/phone":               1,
		"GET /v1/mobile/verification/status/ext": 1,
		"GET /v1/telebureau/event/ABC":           1,
		"POST /v1/verify/push":                   1,
	}, paths)
}
