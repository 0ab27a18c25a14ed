// Copyright 2023 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables overriding profile values,
// e.g. TELESIGN_CUSTOMER_ID or TELESIGN_PROXY_URL.
const EnvPrefix = "TELESIGN"

var profileKeys = []string{
	"customer_id",
	"api_key",
	"rest_endpoint",
	"mobile_endpoint",
	"timeout",
	"proxy.url",
	"proxy.username",
	"proxy.password",
	"auth_method",
}

// Load returns the profile of the named account. Paths with an .xml
// extension are parsed as TeleSign.config.xml, anything else (YAML, JSON,
// TOML) is read through viper:
//
//	rest_endpoint: https://rest-api.telesign.com
//	timeout: 10s
//	accounts:
//	  default:
//	    customer_id: FFFFFFFF-EEEE-DDDD-1234-AB1234567890
//	    api_key: EXAMPLE...==
//
// Top-level values are defaults for every account. TELESIGN_* environment
// variables take precedence over the file. With an empty path the profile is
// built from the environment alone.
func Load(path, account string) (*Profile, error) {
	if account == "" {
		account = DefaultAccount
	}

	var (
		p   *Profile
		err error
	)

	if strings.EqualFold(filepath.Ext(path), ".xml") {
		p, err = loadXMLWithEnv(path, account)
	} else {
		p, err = loadViper(path, account)
	}

	if err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func newEnvViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, k := range profileKeys {
		_ = v.BindEnv(k)
	}

	return v
}

func loadViper(path, account string) (*Profile, error) {
	merged := newEnvViper()

	if path != "" {
		file := viper.New()
		file.SetConfigFile(path)

		if err := file.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading configuration %s: %w", path, err)
		}

		settings, err := accountSettings(file, account)
		if err != nil {
			return nil, err
		}

		if err := merged.MergeConfigMap(settings); err != nil {
			return nil, err
		}
	}

	p := Profile{}
	if err := merged.Unmarshal(&p); err != nil {
		return nil, fmt.Errorf("decoding profile %q: %w", account, err)
	}
	p.Name = account

	return &p, nil
}

// accountSettings overlays the account section on top of the top-level
// settings. viper lower-cases keys, so account names match
// case-insensitively.
func accountSettings(file *viper.Viper, account string) (map[string]interface{}, error) {
	settings := file.AllSettings()

	accounts, _ := settings["accounts"].(map[string]interface{})
	delete(settings, "accounts")

	if len(accounts) == 0 {
		return settings, nil
	}

	section, ok := accounts[strings.ToLower(account)].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("There was no account '%s' found in the configuration", account) // nolint:stylecheck
	}

	return overlay(settings, section), nil
}

func overlay(dst, src map[string]interface{}) map[string]interface{} {
	for k, val := range src {
		sub, ok := val.(map[string]interface{})
		base, baseOK := dst[k].(map[string]interface{})

		if ok && baseOK {
			dst[k] = overlay(base, sub)
			continue
		}

		dst[k] = val
	}

	return dst
}

func loadXMLWithEnv(path, account string) (*Profile, error) {
	f, err := LoadXML(path)
	if err != nil {
		return nil, err
	}

	p, err := f.Account(account)
	if err != nil {
		return nil, err
	}

	env := newEnvViper()

	overrides := map[string]*string{
		"customer_id":     &p.CustomerID,
		"api_key":         &p.APIKey,
		"rest_endpoint":   &p.RestEndpoint,
		"mobile_endpoint": &p.MobileEndpoint,
		"proxy.url":       &p.Proxy.URL,
		"proxy.username":  &p.Proxy.Username,
		"proxy.password":  &p.Proxy.Password,
		"auth_method":     &p.AuthMethod,
	}

	for k, dst := range overrides {
		if env.IsSet(k) {
			*dst = env.GetString(k)
		}
	}

	if env.IsSet("timeout") {
		p.Timeout = env.GetDuration("timeout")
	}

	return p, nil
}

// ListAccounts returns the account names found in the configuration file at
// path, whatever its format.
func ListAccounts(path string) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xml") {
		f, err := LoadXML(path)
		if err != nil {
			return nil, err
		}
		return f.AccountNames(), nil
	}

	file := viper.New()
	file.SetConfigFile(path)

	if err := file.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading configuration %s: %w", path, err)
	}

	accounts := file.GetStringMap("accounts")

	names := make([]string, 0, len(accounts))
	for name := range accounts {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}
