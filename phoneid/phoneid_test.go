package phoneid

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telesign/apiclient/auth"
	"github.com/telesign/apiclient/common"
)

func newTestService(t *testing.T, h http.Handler) (*Service, func()) {
	a, err := auth.NewHMACAuthenticator(
		"FFFFFFFF-EEEE-DDDD-1234-AB1234567890",
		"EXAMPLETE8sTgg45yusumoN6BYsBVkh+yRJ5czgsnCehZaOYldPJdmFh6NeX8kunZ2zU1YWaUw/0wV6xfw==",
	)
	require.NoError(t, err)

	client, teardown := common.NewTestingHTTPClient(h, a)

	service, err := NewService("http://telesign.example", client)
	require.NoError(t, err)

	return service, teardown
}

func TestService_PhoneID(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/phoneid/15555555555", r.RequestURI)
		assert.Equal(t, auth.ContentTypeJSON, r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, `{"account_lifecycle_event":"create","addons":{"contact":{}}}`, string(body))

		_, _ = w.Write([]byte(`{"phone_type":{"code":"2","description":"MOBILE"},"carrier":{"name":"T-Mobile USA"}}`))
	})

	service, teardown := newTestService(t, h)
	defer teardown()

	params := common.NewParams(
		"account_lifecycle_event", "create",
		"addons", map[string]interface{}{"contact": map[string]interface{}{}},
	)

	res, err := service.PhoneID(context.Background(), "15555555555", params)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, "MOBILE", res.Get("phone_type.description").String())
	assert.Equal(t, "T-Mobile USA", res.Get("carrier.name").String())
}

func TestService_PhoneID_no_params(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(body))
	})

	service, teardown := newTestService(t, h)
	defer teardown()

	_, err := service.PhoneID(context.Background(), "15555555555", nil)
	require.NoError(t, err)
}

func TestService_PhoneID_no_phone_number(t *testing.T) {
	service, err := NewService("", nil)
	require.NoError(t, err)

	_, err = service.PhoneID(context.Background(), "", nil)
	assert.EqualError(t, err, "phoneNumber cannot be null or empty")
}
