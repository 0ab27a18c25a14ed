// Copyright 2023 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0
package auth

// Input carries the per-request values an authenticator signs over. Empty
// Date and Nonce are generated on the fly.
type Input struct {
	Method      string
	Resource    string
	ContentType string
	Body        string
	Date        string
	Nonce       string
	UserAgent   string
}

type IAuthenticator interface {
	Configure(cfg map[string]interface{}) error
	EncodeHeaders(in Input) (map[string]string, error)
}
