// Copyright 2021 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0

package apiclient

import (
	"github.com/telesign/apiclient/appverify"
	"github.com/telesign/apiclient/auth"
	"github.com/telesign/apiclient/common"
	"github.com/telesign/apiclient/config"
	"github.com/telesign/apiclient/messaging"
	"github.com/telesign/apiclient/phoneid"
	"github.com/telesign/apiclient/score"
	"github.com/telesign/apiclient/telebureau"
	"github.com/telesign/apiclient/verify"
	"github.com/telesign/apiclient/voice"
)

// Client bundles every TeleSign product service around a single signing
// HTTP client.
type Client struct {
	HTTP *common.Client

	Messaging  *messaging.Service
	Voice      *voice.Service
	PhoneID    *phoneid.Service
	Score      *score.Service
	AppVerify  *appverify.Service
	Verify     *verify.Service
	Telebureau *telebureau.Service
}

// NewClient instantiates a new Client signing requests with the HMAC scheme
// against the default endpoints.
func NewClient(customerID, apiKey string) (*Client, error) {
	a, err := auth.NewHMACAuthenticator(customerID, apiKey)
	if err != nil {
		return nil, err
	}

	return NewClientWithHTTP(common.NewClient(a), "")
}

// NewClientFromProfile instantiates a new Client out of a configuration
// profile, honouring its authentication method, endpoints, proxy and
// timeout.
func NewClientFromProfile(p *config.Profile) (*Client, error) {
	hc, err := p.NewClient()
	if err != nil {
		return nil, err
	}

	c, err := NewClientWithHTTP(hc, p.RestEndpoint)
	if err != nil {
		return nil, err
	}

	if p.MobileEndpoint != "" {
		mobile, err := common.NewCaller(p.MobileEndpoint, hc)
		if err != nil {
			return nil, err
		}
		c.Verify.MobileCaller = mobile
	}

	return c, nil
}

// NewClientWithHTTP wires the product services to hc. A non-empty endpoint
// replaces the REST endpoint; Score and Verify push keep their dedicated
// defaults.
func NewClientWithHTTP(hc *common.Client, endpoint string) (*Client, error) {
	if hc == nil {
		return nil, common.ErrNoClient
	}

	c := Client{HTTP: hc}

	var err error

	if c.Messaging, err = messaging.NewService(endpoint, hc); err != nil {
		return nil, err
	}

	if c.Voice, err = voice.NewService(endpoint, hc); err != nil {
		return nil, err
	}

	if c.PhoneID, err = phoneid.NewService(endpoint, hc); err != nil {
		return nil, err
	}

	if c.AppVerify, err = appverify.NewService(endpoint, hc); err != nil {
		return nil, err
	}

	if c.Telebureau, err = telebureau.NewService(endpoint, hc); err != nil {
		return nil, err
	}

	if c.Score, err = score.NewService("", hc); err != nil {
		return nil, err
	}

	if c.Verify, err = verify.NewService("", hc); err != nil {
		return nil, err
	}

	if endpoint != "" {
		rest, err := common.NewCaller(endpoint, hc)
		if err != nil {
			return nil, err
		}
		c.Score.LegacyCaller = rest
		c.Verify.Caller = rest
	}

	return &c, nil
}

// Close releases the idle connections of the underlying HTTP client.
func (o *Client) Close() {
	o.HTTP.Close()
}
