// Copyright 2023 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// AuthMethodHMAC is the value of the x-ts-auth-method header.
	AuthMethodHMAC = "HMAC-SHA256"

	ContentTypeForm = "application/x-www-form-urlencoded"
	ContentTypeJSON = "application/json"

	HeaderAuthorization = "Authorization"
	HeaderDate          = "Date"
	HeaderContentType   = "Content-Type"
	HeaderAuthMethod    = "x-ts-auth-method"
	HeaderNonce         = "x-ts-nonce"
	HeaderUserAgent     = "User-Agent"
)

// now is swapped in tests
var now = time.Now

// HMACAuthenticator signs requests with the TeleSign "TSA" HMAC-SHA256
// scheme.
type HMACAuthenticator struct {
	Credential
}

// NewHMACAuthenticator returns an authenticator for the supplied account.
func NewHMACAuthenticator(customerID, apiKey string) (*HMACAuthenticator, error) {
	o := &HMACAuthenticator{Credential{CustomerID: customerID, APIKey: apiKey}}

	if err := o.validate(); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *HMACAuthenticator) Configure(cfg map[string]interface{}) error {
	cred, err := decodeCredential(cfg)
	if err != nil {
		return err
	}

	o.Credential = cred

	return o.validate()
}

func (o *HMACAuthenticator) EncodeHeaders(in Input) (map[string]string, error) {
	if err := o.Credential.validate(); err != nil {
		return nil, err
	}

	return GenerateHeaders(
		o.CustomerID,
		o.APIKey,
		in.Method,
		in.Resource,
		in.Body,
		WithContentType(in.ContentType),
		WithDate(in.Date),
		WithNonce(in.Nonce),
		WithUserAgent(in.UserAgent),
	)
}

func (o *HMACAuthenticator) validate() error {
	if err := o.Credential.validate(); err != nil {
		return err
	}

	_, err := decodeAPIKey(o.APIKey)
	return err
}

// HeaderOption tweaks GenerateHeaders. Options set to the empty string keep
// the default behaviour.
type HeaderOption func(*headerOptions)

type headerOptions struct {
	contentType string
	date        string
	nonce       string
	userAgent   string
}

// WithContentType overrides the method-derived content type, e.g. to sign a
// JSON body.
func WithContentType(ct string) HeaderOption {
	return func(o *headerOptions) { o.contentType = ct }
}

// WithDate fixes the RFC 2616 date instead of using the current time.
func WithDate(date string) HeaderOption {
	return func(o *headerOptions) { o.date = date }
}

// WithNonce fixes the nonce instead of generating a random UUID.
func WithNonce(nonce string) HeaderOption {
	return func(o *headerOptions) { o.nonce = nonce }
}

// WithUserAgent adds a User-Agent header.
func WithUserAgent(ua string) HeaderOption {
	return func(o *headerOptions) { o.userAgent = ua }
}

// GenerateHeaders creates the canonical string-to-sign for the request and
// returns the TeleSign authentication headers carrying its HMAC-SHA256
// signature. The body is the urlencoded (or JSON) request body; it is only
// signed when a content type applies, i.e. for POST and PUT.
//
// See https://developer.telesign.com/docs/authentication
func GenerateHeaders(
	customerID string,
	apiKey string,
	method string,
	resource string,
	body string,
	opts ...HeaderOption,
) (map[string]string, error) {
	var o headerOptions
	for _, opt := range opts {
		opt(&o)
	}

	key, err := decodeAPIKey(apiKey)
	if err != nil {
		return nil, err
	}

	contentType := o.contentType
	if contentType == "" {
		contentType = DefaultContentType(method)
	}

	date := o.date
	if date == "" {
		date = FormatDate(now())
	}

	nonce := o.nonce
	if nonce == "" {
		nonce = uuid.NewString()
	}

	stringToSign := StringToSign(method, contentType, date, nonce, body, resource)
	signature := sign(key, stringToSign)

	headers := map[string]string{
		HeaderAuthorization: fmt.Sprintf("TSA %s:%s", customerID, signature),
		HeaderDate:          date,
		HeaderContentType:   contentType,
		HeaderAuthMethod:    AuthMethodHMAC,
		HeaderNonce:         nonce,
	}

	if o.userAgent != "" {
		headers[HeaderUserAgent] = o.userAgent
	}

	return headers, nil
}

// StringToSign builds the newline separated canonical representation of a
// request.
func StringToSign(method, contentType, date, nonce, body, resource string) string {
	var b strings.Builder

	b.WriteString(method)
	b.WriteString("\n" + contentType)
	b.WriteString("\n" + date)
	b.WriteString("\nx-ts-auth-method:" + AuthMethodHMAC)
	b.WriteString("\nx-ts-nonce:" + nonce)

	if contentType != "" && body != "" {
		b.WriteString("\n" + body)
	}

	b.WriteString("\n" + resource)

	return b.String()
}

// DefaultContentType returns the form content type for POST and PUT, and
// the empty string for every other method.
func DefaultContentType(method string) string {
	switch method {
	case http.MethodPost, http.MethodPut:
		return ContentTypeForm
	default:
		return ""
	}
}

// FormatDate renders t as an RFC 2616 date in GMT.
func FormatDate(t time.Time) string {
	return t.UTC().Format(http.TimeFormat)
}

func sign(key []byte, stringToSign string) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(stringToSign))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
