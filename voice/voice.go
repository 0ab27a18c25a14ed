// Copyright 2023 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0

package voice

import (
	"context"
	"net/http"
	"net/url"

	"github.com/telesign/apiclient/common"
)

const VoiceResource = "/v1/voice"

// Service wraps the TeleSign Voice API, used to send text-to-speech calls to
// any phone number in the world.
type Service struct {
	Caller common.Caller
}

// NewService creates a new Service against the supplied endpoint URI (the
// default REST endpoint when empty).
func NewService(endpoint string, client *common.Client) (*Service, error) {
	caller, err := common.NewCaller(endpoint, client)
	if err != nil {
		return nil, err
	}

	return &Service{Caller: caller}, nil
}

// Call places a voice call reading message to phoneNumber.
//
// See https://developer.telesign.com/docs/voice-api for detailed API
// documentation.
func (o *Service) Call(
	ctx context.Context,
	phoneNumber string,
	message string,
	messageType string,
	params *common.Params,
) (*common.Response, error) {
	p := params.Clone().
		Set("phone_number", phoneNumber).
		Set("message", message).
		Set("message_type", messageType)

	return o.Caller.Execute(ctx, common.Request{
		Method:   http.MethodPost,
		Resource: VoiceResource,
		Params:   p,
	})
}

// Status retrieves the current status of the call identified by
// referenceID.
func (o *Service) Status(ctx context.Context, referenceID string, params *common.Params) (*common.Response, error) {
	if err := common.RequireArg("referenceId", referenceID); err != nil {
		return nil, err
	}

	p := params.Clone().Set("reference_id", referenceID)

	return o.Caller.Execute(ctx, common.Request{
		Method:   http.MethodGet,
		Resource: VoiceResource + "/" + url.PathEscape(referenceID),
		Params:   p,
	})
}
