package appverify

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telesign/apiclient/auth"
	"github.com/telesign/apiclient/common"
)

func TestService_Status(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/mobile/verification/status/ext-42?external_id=ext-42", r.RequestURI)
		assert.Equal(t, auth.AuthMethodHMAC, r.Header.Get("x-ts-auth-method"))

		_, _ = w.Write([]byte(`{"external_id":"ext-42","status":{"code":1800,"description":"Verified"}}`))
	})

	a, err := auth.NewHMACAuthenticator(
		"FFFFFFFF-EEEE-DDDD-1234-AB1234567890",
		"EXAMPLETE8sTgg45yusumoN6BYsBVkh+yRJ5czgsnCehZaOYldPJdmFh6NeX8kunZ2zU1YWaUw/0wV6xfw==",
	)
	require.NoError(t, err)

	client, teardown := common.NewTestingHTTPClient(h, a)
	defer teardown()

	service, err := NewService("http://telesign.example", client)
	require.NoError(t, err)

	res, err := service.Status(context.Background(), "ext-42", nil)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, int64(1800), res.Get("status.code").Int())
}

func TestService_Status_no_external_id(t *testing.T) {
	service, err := NewService("", nil)
	require.NoError(t, err)

	_, err = service.Status(context.Background(), "", nil)
	assert.EqualError(t, err, "externalId cannot be null or empty")
}
