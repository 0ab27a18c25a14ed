package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethod_Set(t *testing.T) {
	var m Method

	require.NoError(t, m.Set("basic"))
	assert.Equal(t, MethodBasic, m)

	require.NoError(t, m.Set("tsa"))
	assert.Equal(t, MethodHMAC, m)
	assert.Equal(t, "hmac", m.String())
	assert.Equal(t, "Method", m.Type())

	assert.EqualError(t, m.Set("oauth2"), `unexpected Method "oauth2"`)
}

func TestNew(t *testing.T) {
	cfg := map[string]interface{}{
		"customer_id": testCustomerID,
		"api_key":     testAPIKey,
	}

	a, err := New(MethodHMAC, cfg)
	require.NoError(t, err)
	assert.IsType(t, &HMACAuthenticator{}, a)

	a, err = New(MethodBasic, cfg)
	require.NoError(t, err)
	assert.IsType(t, &BasicAuthenticator{}, a)

	_, err = New(Method("digest"), cfg)
	assert.EqualError(t, err, `unexpected Method "digest"`)

	_, err = New(MethodHMAC, map[string]interface{}{})
	assert.EqualError(t, err, "invalid credential: missing customer_id")
}
