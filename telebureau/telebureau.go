// Copyright 2023 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0

package telebureau

import (
	"context"
	"net/http"
	"net/url"

	"github.com/telesign/apiclient/common"
)

const EventResource = "/v1/telebureau/event"

// Service wraps the TeleSign Telebureau API, used to report and query fraud
// events associated with phone numbers.
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

// Create reports a fraud event for phoneNumber. The fraud type travels as
// message and the time of occurrence as message_type.
func (o *Service) Create(
	ctx context.Context,
	phoneNumber string,
	fraudType string,
	occurredAt string,
	params *common.Params,
) (*common.Response, error) {
	phoneNumber, err := common.CleanupPhoneNumber(phoneNumber)
	if err != nil {
		return nil, err
	}

	p := params.Clone().
		Set("phone_number", phoneNumber).
		Set("message", fraudType).
		Set("message_type", occurredAt)

	return o.Caller.Execute(ctx, common.Request{
		Method:   http.MethodPost,
		Resource: EventResource,
		Params:   p,
	})
}

// Retrieve fetches the fraud event identified by referenceID.
func (o *Service) Retrieve(ctx context.Context, referenceID string, params *common.Params) (*common.Response, error) {
	return o.event(ctx, http.MethodGet, referenceID, params)
}

// Delete removes the fraud event identified by referenceID.
func (o *Service) Delete(ctx context.Context, referenceID string, params *common.Params) (*common.Response, error) {
	return o.event(ctx, http.MethodDelete, referenceID, params)
}

func (o *Service) event(ctx context.Context, method, referenceID string, params *common.Params) (*common.Response, error) {
	if err := common.RequireArg("referenceId", referenceID); err != nil {
		return nil, err
	}

	return o.Caller.Execute(ctx, common.Request{
		Method:   method,
		Resource: EventResource + "/" + url.PathEscape(referenceID),
		Params:   params.Clone().Set("reference_id", referenceID),
	})
}
