// Copyright 2023 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0
package auth

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Credential is the customer id / api key pair associated with a TeleSign
// account. The api key is the base64 encoded shared secret.
type Credential struct {
	CustomerID string
	APIKey     string
}

// String never renders the api key.
func (o Credential) String() string {
	return fmt.Sprintf("Credential{CustomerID: %s, APIKey: <redacted>}", o.CustomerID)
}

// GoString never renders the api key.
func (o Credential) GoString() string {
	return o.String()
}

func (o Credential) validate() error {
	if o.CustomerID == "" {
		return &InvalidCredentialError{Reason: "missing customer_id"}
	}

	if o.APIKey == "" {
		return &InvalidCredentialError{Reason: "missing api_key"}
	}

	return nil
}

func decodeCredential(cfg map[string]interface{}) (Credential, error) {
	decoded := struct {
		CustomerID string                 `mapstructure:"customer_id"`
		APIKey     string                 `mapstructure:"api_key"`
		Rest       map[string]interface{} `mapstructure:",remain"`
	}{}

	if err := mapstructure.Decode(cfg, &decoded); err != nil {
		return Credential{}, err
	}

	cred := Credential{CustomerID: decoded.CustomerID, APIKey: decoded.APIKey}

	if err := cred.validate(); err != nil {
		return Credential{}, err
	}

	if len(decoded.Rest) > 0 {
		var unexpected []string
		for k := range decoded.Rest {
			unexpected = append(unexpected, k)
		}
		return Credential{}, fmt.Errorf("unexpected fields in config: %s",
			strings.Join(unexpected, ", "))
	}

	return cred, nil
}

func decodeAPIKey(apiKey string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(apiKey)
	if err != nil {
		return nil, &InvalidCredentialError{Reason: "api_key is not valid base64", Err: err}
	}

	return key, nil
}
