package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telesign/apiclient/auth"
)

const testYAMLPath = "testdata/profiles.yaml"

func TestLoad_yaml_default(t *testing.T) {
	p, err := Load(testYAMLPath, "")
	require.NoError(t, err)

	assert.Equal(t, DefaultAccount, p.Name)
	assert.Equal(t, "FFFFFFFF-EEEE-DDDD-1234-AB1234567890", p.CustomerID)
	assert.Equal(t, "https://rest-api.telesign.com", p.RestEndpoint)
	assert.Equal(t, 15*time.Second, p.Timeout)
	assert.Equal(t, "http://proxy.example:3128", p.Proxy.URL)
}

func TestLoad_yaml_account_overrides(t *testing.T) {
	p, err := Load(testYAMLPath, "staging")
	require.NoError(t, err)

	assert.Equal(t, "00000000-1111-2222-3333-444444444444", p.CustomerID)
	assert.Equal(t, "https://staging.telesign.example", p.RestEndpoint)
	assert.Equal(t, "basic", p.AuthMethod)
	assert.Equal(t, Proxy{URL: "http://proxy.example:3128", Username: "stage"}, p.Proxy)

	a, err := p.Authenticator()
	require.NoError(t, err)
	assert.IsType(t, &auth.BasicAuthenticator{}, a)
}

func TestLoad_yaml_unknown_account(t *testing.T) {
	_, err := Load(testYAMLPath, "production")
	assert.EqualError(t, err, "There was no account 'production' found in the configuration")
}

func TestLoad_env_overrides_file(t *testing.T) {
	t.Setenv("TELESIGN_REST_ENDPOINT", "http://localhost:8080")
	t.Setenv("TELESIGN_TIMEOUT", "2s")
	t.Setenv("TELESIGN_PROXY_URL", "http://other.example:3128")

	p, err := Load(testYAMLPath, "default")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", p.RestEndpoint)
	assert.Equal(t, 2*time.Second, p.Timeout)
	assert.Equal(t, "http://other.example:3128", p.Proxy.URL)
}

func TestLoad_env_only(t *testing.T) {
	t.Setenv("TELESIGN_CUSTOMER_ID", "FFFFFFFF-EEEE-DDDD-1234-AB1234567890")
	t.Setenv("TELESIGN_API_KEY", "c2VjcmV0")

	p, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, "c2VjcmV0", p.APIKey)
	assert.Equal(t, "", p.RestEndpoint)

	a, err := p.Authenticator()
	require.NoError(t, err)
	assert.IsType(t, &auth.HMACAuthenticator{}, a)
}

func TestLoad_env_only_missing_credentials(t *testing.T) {
	_, err := Load("", "")
	assert.EqualError(t, err, `invalid profile "default": CustomerID failed "required" validation`)
}

func TestLoad_xml(t *testing.T) {
	t.Setenv("TELESIGN_MOBILE_ENDPOINT", "http://localhost:9090")

	p, err := Load(testXMLPath, "Staging")
	require.NoError(t, err)

	assert.Equal(t, "https://staging.telesign.example", p.RestEndpoint)
	assert.Equal(t, "http://localhost:9090", p.MobileEndpoint)
	assert.Equal(t, "c2VjcmV0", p.APIKey)
}

func TestLoad_json(t *testing.T) {
	path := filepath.Join(t.TempDir(), "telesign.json")
	err := os.WriteFile(path, []byte(`{
		"accounts": {
			"default": {"customer_id": "cid", "api_key": "not base64!"}
		}
	}`), 0o600)
	require.NoError(t, err)

	_, err = Load(path, "")
	assert.EqualError(t, err, `invalid profile "default": APIKey failed "base64" validation`)
}

func TestLoad_missing_file(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), "")
	assert.ErrorContains(t, err, "reading configuration")
}

func TestListAccounts(t *testing.T) {
	names, err := ListAccounts(testYAMLPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"default", "staging"}, names)

	names, err = ListAccounts(testXMLPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"default", "Staging"}, names)

	_, err = ListAccounts("testdata/missing.toml")
	assert.Error(t, err)
}
