// Copyright 2023 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"context"
	"net/http"
	"net/url"
)

// Caller is what product services need from the SDK core: something that
// signs and executes a Request.
type Caller interface {
	Execute(ctx context.Context, req Request) (*Response, error)
}

// RestClient binds a Client to a REST endpoint. It is the generic TeleSign
// REST client the product services are built upon.
type RestClient struct {
	// Client is the underlying client used for HTTP requests.
	Client *Client

	// Endpoint is the base URL, resources are appended to it.
	Endpoint *url.URL
}

// NewRestClient returns a RestClient for the given endpoint URI. An empty
// endpoint selects DefaultRestEndpoint.
func NewRestClient(endpoint string, client *Client) (*RestClient, error) {
	if endpoint == "" {
		endpoint = DefaultRestEndpoint
	}

	o := RestClient{}

	if err := o.SetClient(client); err != nil {
		return nil, err
	}

	if err := o.SetEndpointURI(endpoint); err != nil {
		return nil, err
	}

	return &o, nil
}

// SetClient sets the HTTP(s) client connection configuration
func (o *RestClient) SetClient(client *Client) error {
	if client == nil {
		return ErrNoClient
	}
	o.Client = client
	return nil
}

// SetEndpointURI sets the base URI of the TeleSign REST endpoint.
func (o *RestClient) SetEndpointURI(uri string) error {
	u, err := ParseEndpoint(uri)
	if err != nil {
		return err
	}

	o.Endpoint = u

	return nil
}

func (o *RestClient) Execute(ctx context.Context, req Request) (*Response, error) {
	if o.Client == nil {
		return nil, ErrNoClient
	}
	return o.Client.Execute(ctx, o.Endpoint, req)
}

// ExecuteAsync runs Execute in its own goroutine. The channel receives
// exactly one Result.
func (o *RestClient) ExecuteAsync(ctx context.Context, req Request) <-chan Result {
	return Go(ctx, func(ctx context.Context) (*Response, error) {
		return o.Execute(ctx, req)
	})
}

func (o *RestClient) Get(ctx context.Context, resource string, params *Params) (*Response, error) {
	return o.Execute(ctx, Request{Method: http.MethodGet, Resource: resource, Params: params})
}

func (o *RestClient) Post(ctx context.Context, resource string, params *Params) (*Response, error) {
	return o.Execute(ctx, Request{Method: http.MethodPost, Resource: resource, Params: params})
}

func (o *RestClient) Put(ctx context.Context, resource string, params *Params) (*Response, error) {
	return o.Execute(ctx, Request{Method: http.MethodPut, Resource: resource, Params: params})
}

func (o *RestClient) Delete(ctx context.Context, resource string, params *Params) (*Response, error) {
	return o.Execute(ctx, Request{Method: http.MethodDelete, Resource: resource, Params: params})
}

// PostJSON posts params as a JSON object.
func (o *RestClient) PostJSON(ctx context.Context, resource string, params *Params) (*Response, error) {
	return o.Execute(ctx, Request{
		Method:   http.MethodPost,
		Resource: resource,
		Params:   params,
		Encoding: EncodingJSON,
	})
}
