package messaging

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

const (
	testCustomerID  = "FFFFFFFF-EEEE-DDDD-1234-AB1234567890"
	testAPIKey      = "EXAMPLETE8sTgg45yusumoN6BYsBVkh+yRJ5czgsnCehZaOYldPJdmFh6NeX8kunZ2zU1YWaUw/0wV6xfw=="
	testEndpointURI = "http://telesign.example"
	testReferenceID = "B56A497B7B8C4C0EA6E9D6B7D4E2B3A1"
)

func newTestService(t *testing.T, h http.Handler) (*Service, func()) {
	a, err := auth.NewHMACAuthenticator(testCustomerID, testAPIKey)
	require.NoError(t, err)

	client, teardown := common.NewTestingHTTPClient(h, a)

	service, err := NewService(testEndpointURI, client)
	require.NoError(t, err)

	return service, teardown
}

func TestService_NewService(t *testing.T) {
	_, err := NewService("test", nil)
	assert.EqualError(t, err, "URI is not absolute: \"test\"")

	service, err := NewService("", nil)
	require.NoError(t, err)
	assert.Equal(t, common.DefaultRestEndpoint, service.Caller.(*common.RestClient).Endpoint.String())
}

func TestService_Message(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, MessagingResource, r.RequestURI)
		assert.Equal(t, auth.ContentTypeForm, r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, "phone_number=15555555555&message=hi&message_type=ARN", string(body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, err = w.Write([]byte(`{"reference_id":"` + testReferenceID + `","status":{"code":290,"description":"Message in progress"}}`))
		assert.NoError(t, err)
	})

	service, teardown := newTestService(t, h)
	defer teardown()

	res, err := service.Message(context.Background(), "15555555555", "hi", MessageTypeARN, nil)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, testReferenceID, res.JSON["reference_id"])
	assert.Equal(t, "Message in progress", res.Get("status.description").String())
}

func TestService_Message_extra_params(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, "sender_id=ACME&phone_number=15555555555&message=hi&message_type=OTP", string(body))
	})

	service, teardown := newTestService(t, h)
	defer teardown()

	params := common.NewParams("sender_id", "ACME")

	_, err := service.Message(context.Background(), "15555555555", "hi", MessageTypeOTP, params)
	require.NoError(t, err)

	// caller params are left untouched
	assert.Equal(t, 1, params.Len())
}

func TestService_Message_failure_is_not_an_error(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":{"code":10033,"description":"Invalid signature"}}`))
	})

	service, teardown := newTestService(t, h)
	defer teardown()

	res, err := service.Message(context.Background(), "15555555555", "hi", MessageTypeARN, nil)
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Equal(t, int64(10033), res.Get("status.code").Int())
}

func TestService_MessageAsync(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"reference_id":"` + testReferenceID + `"}`))
	})

	service, teardown := newTestService(t, h)
	defer teardown()

	res := <-service.MessageAsync(context.Background(), "15555555555", "hi", MessageTypeARN, nil)
	require.NoError(t, res.Err)
	assert.Equal(t, testReferenceID, res.Response.JSON["reference_id"])
}

func TestService_Status(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, MessagingResource+"/"+testReferenceID, r.RequestURI)
		assert.Equal(t, "", r.Header.Get("Content-Type"))

		_, _ = w.Write([]byte(`{"status":{"code":200,"description":"Delivered to handset"}}`))
	})

	service, teardown := newTestService(t, h)
	defer teardown()

	res, err := service.Status(context.Background(), testReferenceID, nil)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, int64(200), res.Get("status.code").Int())
}

func TestService_Status_no_reference(t *testing.T) {
	service, err := NewService(testEndpointURI, nil)
	require.NoError(t, err)

	_, err = service.Status(context.Background(), "", nil)
	assert.EqualError(t, err, "referenceId cannot be null or empty")
}
