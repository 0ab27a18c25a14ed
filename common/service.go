// Copyright 2023 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0

package common

// NewCaller returns the Caller product services are built upon. A nil client
// selects a default Client without authenticator, which can be replaced
// later through the returned RestClient's SetClient.
func NewCaller(endpoint string, client *Client) (*RestClient, error) {
	if client == nil {
		client = NewClient(nil)
	}
	return NewRestClient(endpoint, client)
}
