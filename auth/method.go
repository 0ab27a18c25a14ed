// Copyright 2023 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0

package auth

import "fmt"

// Method is the enumeration of authentication methods supported by the
// TeleSign REST API. It implements the pflag.Value interface.
type Method string

const (
	MethodHMAC  Method = "hmac"
	MethodBasic Method = "basic"
)

// String representation of the Method
func (o *Method) String() string {
	return string(*o)
}

// Set the value of the Method
func (o *Method) Set(v string) error {
	switch v {
	case "", "hmac", "tsa", "hmac-sha256":
		*o = MethodHMAC
	case "basic":
		*o = MethodBasic
	default:
		return fmt.Errorf("unexpected Method %q", v)
	}

	return nil
}

// Type returns the string representing the type name (used by pflag).
func (o *Method) Type() string {
	return "Method"
}

// New instantiates and configures the authenticator for the method.
func New(m Method, cfg map[string]interface{}) (IAuthenticator, error) {
	var a IAuthenticator

	switch m {
	case MethodHMAC, "":
		a = &HMACAuthenticator{}
	case MethodBasic:
		a = &BasicAuthenticator{}
	default:
		return nil, fmt.Errorf("unexpected Method %q", m)
	}

	if err := a.Configure(cfg); err != nil {
		return nil, err
	}

	return a, nil
}
