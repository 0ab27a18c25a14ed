// Copyright 2023 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0

package score

import (
	"context"
	"net/http"
	"net/url"

	"github.com/telesign/apiclient/common"
)

const (
	IntelligenceResource = "/intelligence/phone"
	LegacyScoreResource  = "/v1/score/"
)

// Account lifecycle events.
const (
	EventCreate   = "create"
	EventSignIn   = "sign-in"
	EventTransact = "transact"
	EventUpdate   = "update"
	EventDelete   = "delete"
)

// Optional Score parameters, passed through params.
const (
	ParamAccountID     = "account_id"
	ParamDeviceID      = "device_id"
	ParamEmailAddress  = "email_address"
	ParamExternalID    = "external_id"
	ParamOriginatingIP = "originating_ip"
)

type Service struct {
	// Caller targets the Intelligence Cloud endpoint.
	Caller common.Caller

	// LegacyCaller targets the REST endpoint serving /v1/score.
	LegacyCaller common.Caller
}

type args struct {
	PhoneNumber           string `arg:"phoneNumber" validate:"required"`
	AccountLifecycleEvent string `arg:"accountLifecycleEvent" validate:"required"`
}

// NewService creates a new Service. A non-empty endpoint overrides both the
// detect and the REST endpoints, e.g. to point at a mock.
func NewService(endpoint string, client *common.Client) (*Service, error) {
	detect, legacy := endpoint, endpoint
	if endpoint == "" {
		detect, legacy = common.DefaultDetectEndpoint, common.DefaultRestEndpoint
	}

	caller, err := common.NewCaller(detect, client)
	if err != nil {
		return nil, err
	}

	legacyCaller, err := common.NewCaller(legacy, caller.Client)
	if err != nil {
		return nil, err
	}

	return &Service{Caller: caller, LegacyCaller: legacyCaller}, nil
}

// Score obtains a risk recommendation for phoneNumber.
//
// See https://developer.telesign.com/docs/score-api for detailed API
// documentation.
func (o *Service) Score(
	ctx context.Context,
	phoneNumber string,
	accountLifecycleEvent string,
	params *common.Params,
) (*common.Response, error) {
	p, err := scoreParams(phoneNumber, accountLifecycleEvent, params)
	if err != nil {
		return nil, err
	}

	return o.Caller.Execute(ctx, common.Request{
		Method:   http.MethodPost,
		Resource: IntelligenceResource,
		Params:   p,
	})
}

// LegacyScore calls the v1 Score API.
func (o *Service) LegacyScore(
	ctx context.Context,
	phoneNumber string,
	accountLifecycleEvent string,
	params *common.Params,
) (*common.Response, error) {
	p, err := scoreParams(phoneNumber, accountLifecycleEvent, params)
	if err != nil {
		return nil, err
	}

	return o.LegacyCaller.Execute(ctx, common.Request{
		Method:   http.MethodPost,
		Resource: LegacyScoreResource + url.PathEscape(phoneNumber),
		Params:   p,
	})
}

func scoreParams(phoneNumber, accountLifecycleEvent string, params *common.Params) (*common.Params, error) {
	err := common.ValidateArgs(args{
		PhoneNumber:           phoneNumber,
		AccountLifecycleEvent: accountLifecycleEvent,
	})
	if err != nil {
		return nil, err
	}

	return params.Clone().
		Set("phone_number", phoneNumber).
		Set("account_lifecycle_event", accountLifecycleEvent), nil
}
