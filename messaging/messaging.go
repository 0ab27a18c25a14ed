// Copyright 2023 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0

package messaging

import (
	"context"
	"net/http"
	"net/url"

	"github.com/telesign/apiclient/common"
)

const MessagingResource = "/v1/messaging"

// Message types accepted by the message_type parameter.
const (
	MessageTypeARN = "ARN" // alerts, reminders and notifications
	MessageTypeMKT = "MKT" // marketing
	MessageTypeOTP = "OTP" // one time passwords
)

// Service is the primary interface to the TeleSign Messaging API, used to
// send SMS to any phone number in the world.
type Service struct {
	Caller common.Caller
}

// NewService creates a new Service against the supplied endpoint URI (the
// default REST endpoint when empty). A nil client selects the default HTTP
// client.
func NewService(endpoint string, client *common.Client) (*Service, error) {
	caller, err := common.NewCaller(endpoint, client)
	if err != nil {
		return nil, err
	}

	return &Service{Caller: caller}, nil
}

// Message sends a message to the target phone number. Caller supplied params
// are sent first, followed by phone_number, message and message_type.
//
// See https://developer.telesign.com/docs/messaging-api for detailed API
// documentation.
func (o *Service) Message(
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
		Resource: MessagingResource,
		Params:   p,
	})
}

// MessageAsync is the non-blocking form of Message.
func (o *Service) MessageAsync(
	ctx context.Context,
	phoneNumber string,
	message string,
	messageType string,
	params *common.Params,
) <-chan common.Result {
	return common.Go(ctx, func(ctx context.Context) (*common.Response, error) {
		return o.Message(ctx, phoneNumber, message, messageType, params)
	})
}

// Status retrieves the current status of the message identified by
// referenceID.
func (o *Service) Status(ctx context.Context, referenceID string, params *common.Params) (*common.Response, error) {
	if err := common.RequireArg("referenceId", referenceID); err != nil {
		return nil, err
	}

	return o.Caller.Execute(ctx, common.Request{
		Method:   http.MethodGet,
		Resource: statusResource(referenceID),
		Params:   params,
	})
}

func statusResource(referenceID string) string {
	return MessagingResource + "/" + url.PathEscape(referenceID)
}
