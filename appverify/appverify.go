// Copyright 2023 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0

package appverify

import (
	"context"
	"net/http"
	"net/url"

	"github.com/telesign/apiclient/common"
)

const StatusResource = "/v1/mobile/verification/status/"

// Service wraps the TeleSign App Verify (AutoVerify) API.
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

// Status retrieves the verification result of the transaction identified
// by the externalID chosen by the customer.
//
// See https://developer.telesign.com/docs/auto-verify-sdk for detailed API
// documentation.
func (o *Service) Status(ctx context.Context, externalID string, params *common.Params) (*common.Response, error) {
	if err := common.RequireArg("externalId", externalID); err != nil {
		return nil, err
	}

	return o.Caller.Execute(ctx, common.Request{
		Method:   http.MethodGet,
		Resource: StatusResource + url.PathEscape(externalID),
		Params:   params.Clone().Set("external_id", externalID),
	})
}
