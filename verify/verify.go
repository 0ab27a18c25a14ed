// Copyright 2023 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0

package verify

import (
	"context"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"

	"github.com/telesign/apiclient/common"
)

const (
	VerifyResource = "/v1/verify/"

	DefaultLanguage = "en"

	// generated codes fall in [minCode, maxCode)
	minCode = 100
	maxCode = 99999
)

// Method is a delivery channel of the Verify API, which is also the last
// segment of its resource.
type Method string

const (
	MethodSMS       Method = "sms"
	MethodCall      Method = "call"
	MethodPush      Method = "push"
	MethodTwoWaySMS Method = "two_way_sms"
)

// newVerifyCode is swapped in tests
var newVerifyCode = func() string {
	return strconv.Itoa(minCode + rand.IntN(maxCode-minCode))
}

type Service struct {
	Caller common.Caller

	// MobileCaller serves push verifications.
	MobileCaller common.Caller
}

// Result carries the response of an SMS or Call verification along with the
// verify code that was sent.
type Result struct {
	Response   *common.Response
	VerifyCode string
}

type SMSOptions struct {
	// VerifyCode is generated when empty.
	VerifyCode string
	// Language defaults to DefaultLanguage.
	Language string
	// Template of the message, e.g. "Your code is $$CODE$$".
	Template string
	Params   *common.Params
}

type CallOptions struct {
	VerifyCode string
	Language   string
	Params     *common.Params
}

type PushOptions struct {
	NotificationType  string
	NotificationValue string
	Template          string
	Message           string
	Params            *common.Params
}

type TwoWaySMSOptions struct {
	// UCID is the use case identifier, e.g. "BACS" or "ATCK".
	UCID           string
	Message        string
	ValidityPeriod string
	Params         *common.Params
}

// NewService creates a new Service. A non-empty endpoint overrides both the
// REST and the mobile endpoints.
func NewService(endpoint string, client *common.Client) (*Service, error) {
	rest, mobile := endpoint, endpoint
	if endpoint == "" {
		rest, mobile = common.DefaultRestEndpoint, common.DefaultMobileEndpoint
	}

	caller, err := common.NewCaller(rest, client)
	if err != nil {
		return nil, err
	}

	mobileCaller, err := common.NewCaller(mobile, caller.Client)
	if err != nil {
		return nil, err
	}

	return &Service{Caller: caller, MobileCaller: mobileCaller}, nil
}

// SMS sends a verify code to phoneNumber by text message.
//
// See https://developer.telesign.com/docs/rest_api-verify-sms for detailed
// API documentation.
func (o *Service) SMS(ctx context.Context, phoneNumber string, opts SMSOptions) (*Result, error) {
	phoneNumber, err := common.CleanupPhoneNumber(phoneNumber)
	if err != nil {
		return nil, err
	}

	code := codeOrNew(opts.VerifyCode)

	p := opts.Params.Clone().
		Set("phone_number", phoneNumber).
		Set("verify_code", code).
		Set("language", languageOrDefault(opts.Language)).
		Set("template", opts.Template)

	res, err := o.post(ctx, o.Caller, MethodSMS, p)
	if err != nil {
		return nil, err
	}

	return &Result{Response: res, VerifyCode: code}, nil
}

// Call sends a verify code to phoneNumber by voice call.
func (o *Service) Call(ctx context.Context, phoneNumber string, opts CallOptions) (*Result, error) {
	phoneNumber, err := common.CleanupPhoneNumber(phoneNumber)
	if err != nil {
		return nil, err
	}

	code := codeOrNew(opts.VerifyCode)

	p := opts.Params.Clone().
		Set("phone_number", phoneNumber).
		Set("verify_code", code).
		Set("language", languageOrDefault(opts.Language))

	res, err := o.post(ctx, o.Caller, MethodCall, p)
	if err != nil {
		return nil, err
	}

	return &Result{Response: res, VerifyCode: code}, nil
}

// Push sends a push notification to the TeleSign mobile app registered for
// phoneNumber.
func (o *Service) Push(ctx context.Context, phoneNumber string, opts PushOptions) (*common.Response, error) {
	phoneNumber, err := common.CleanupPhoneNumber(phoneNumber)
	if err != nil {
		return nil, err
	}

	p := opts.Params.Clone().
		Set("phone_number", phoneNumber).
		Set("notification_type", opts.NotificationType).
		Set("notification_value", opts.NotificationValue).
		Set("template", opts.Template).
		Set("message", opts.Message)

	return o.post(ctx, o.MobileCaller, MethodPush, p)
}

// TwoWaySMS sends a message the end user has to reply to.
func (o *Service) TwoWaySMS(ctx context.Context, phoneNumber string, opts TwoWaySMSOptions) (*common.Response, error) {
	phoneNumber, err := common.CleanupPhoneNumber(phoneNumber)
	if err != nil {
		return nil, err
	}

	if err := common.RequireArg("ucid", opts.UCID); err != nil {
		return nil, err
	}

	p := opts.Params.Clone().
		Set("phone_number", phoneNumber).
		Set("ucid", opts.UCID).
		Set("message", opts.Message).
		Set("validity_period", opts.ValidityPeriod)

	return o.post(ctx, o.Caller, MethodTwoWaySMS, p)
}

// Status retrieves the state of the verification identified by
// referenceID. A non-empty verifyCode is checked by the service against the
// code that was sent.
func (o *Service) Status(ctx context.Context, referenceID string, verifyCode string) (*common.Response, error) {
	if err := common.RequireArg("referenceId", referenceID); err != nil {
		return nil, err
	}

	p := common.NewParams()
	if verifyCode != "" {
		p.Set("verify_code", verifyCode)
	}

	return o.Caller.Execute(ctx, common.Request{
		Method:   http.MethodGet,
		Resource: VerifyResource + url.PathEscape(referenceID),
		Params:   p,
	})
}

func (o *Service) post(ctx context.Context, caller common.Caller, m Method, p *common.Params) (*common.Response, error) {
	return caller.Execute(ctx, common.Request{
		Method:   http.MethodPost,
		Resource: VerifyResource + string(m),
		Params:   p,
	})
}

func codeOrNew(code string) string {
	if code == "" {
		return newVerifyCode()
	}
	return code
}

func languageOrDefault(lang string) string {
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}
