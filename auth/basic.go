// Copyright 2023 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0
package auth

import (
	"encoding/base64"
	"fmt"
)

// BasicAuthenticator authenticates with HTTP Basic credentials made of the
// customer id and the api key.
type BasicAuthenticator struct {
	Credential
}

func (o *BasicAuthenticator) Configure(cfg map[string]interface{}) error {
	cred, err := decodeCredential(cfg)
	if err != nil {
		return err
	}

	o.Credential = cred

	return nil
}

func (o *BasicAuthenticator) EncodeHeaders(in Input) (map[string]string, error) {
	header, err := o.EncodeHeader()
	if err != nil {
		return nil, err
	}

	contentType := in.ContentType
	if contentType == "" {
		contentType = DefaultContentType(in.Method)
	}

	date := in.Date
	if date == "" {
		date = FormatDate(now())
	}

	headers := map[string]string{
		HeaderAuthorization: header,
		HeaderDate:          date,
		HeaderContentType:   contentType,
	}

	if in.UserAgent != "" {
		headers[HeaderUserAgent] = in.UserAgent
	}

	return headers, nil
}

// EncodeHeader returns the value of the Authorization header.
func (o *BasicAuthenticator) EncodeHeader() (string, error) {
	if err := o.validate(); err != nil {
		return "", err
	}

	credsRaw := fmt.Sprintf("%s:%s", o.CustomerID, o.APIKey)
	credsEncoded := base64.StdEncoding.EncodeToString([]byte(credsRaw))
	header := fmt.Sprintf("Basic %s", credsEncoded)

	return header, nil
}
