// Copyright 2023 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0

package phoneid

import (
	"context"
	"net/http"
	"net/url"

	"github.com/telesign/apiclient/common"
)

const PhoneIDResource = "/v1/phoneid/"

// Service wraps the TeleSign PhoneID API, which provides carrier, location
// and device type information about a phone number. Unlike the other
// products, its parameters travel as a JSON object.
type Service struct {
	Caller common.Caller
}

func NewService(endpoint string, client *common.Client) (*Service, error) {
	caller, err := common.NewCaller(endpoint, client)
	if err != nil {
		return nil, err
	}

	return &Service{Caller: caller}, nil
}

// PhoneID looks up phoneNumber. params (e.g. "addons", "consent",
// "account_lifecycle_event") are sent verbatim as the JSON body.
//
// See https://developer.telesign.com/docs/phoneid-api for detailed API
// documentation.
func (o *Service) PhoneID(ctx context.Context, phoneNumber string, params *common.Params) (*common.Response, error) {
	if err := common.RequireArg("phoneNumber", phoneNumber); err != nil {
		return nil, err
	}

	return o.Caller.Execute(ctx, common.Request{
		Method:   http.MethodPost,
		Resource: PhoneIDResource + url.PathEscape(phoneNumber),
		Params:   params.Clone(),
		Encoding: common.EncodingJSON,
	})
}
