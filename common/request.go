// Copyright 2023 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0

package common

import "github.com/telesign/apiclient/auth"

// Encoding selects how POST and PUT parameters are serialized.
type Encoding int

const (
	// EncodingForm is application/x-www-form-urlencoded, used by most
	// products.
	EncodingForm Encoding = iota
	// EncodingJSON is application/json, used by PhoneID.
	EncodingJSON
)

func (e Encoding) String() string {
	switch e {
	case EncodingJSON:
		return "json"
	default:
		return "form"
	}
}

// Request describes a call against a TeleSign resource. For GET and DELETE
// the Params end up in the query string, for POST and PUT in the body.
type Request struct {
	Method   string
	Resource string
	Params   *Params
	Encoding Encoding
}

func (r Request) encodeBody() (body string, contentType string, err error) {
	if r.Encoding == EncodingJSON {
		b, err := r.Params.MarshalJSON()
		if err != nil {
			return "", "", err
		}
		return string(b), auth.ContentTypeJSON, nil
	}

	return r.Params.EncodeForm(), auth.ContentTypeForm, nil
}
