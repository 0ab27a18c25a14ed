// Copyright 2021 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0

/*
Package apiclient is a client for the TeleSign REST API
(https://developer.telesign.com).

Every request is signed with the TeleSign "TSA" HMAC-SHA256 scheme (or HTTP
Basic authentication) by the auth package, then sent and normalized into a
common.Response by common.Client. The product packages (messaging, voice,
phoneid, score, appverify, verify, telebureau) only fill in resources and
parameters.

The user creates a Client from its customer ID and base64 API key:

	client, err := apiclient.NewClient(customerID, apiKey)
	if err != nil { ... }
	defer client.Close()

or from a configuration profile, e.g. a TeleSign.config.xml file:

	profile, err := config.Load("TeleSign.config.xml", "default")
	if err != nil { ... }

	client, err := apiclient.NewClientFromProfile(profile)

Then any product can be called:

	res, err := client.Messaging.Message(ctx, "15555555555", "Your code is 1234", messaging.MessageTypeOTP, nil)
	if err != nil {
		// signing or transport failure
	}

A response is returned for every status code. The caller checks res.OK (2xx)
and inspects res.StatusCode, res.JSON or res.Get("status.code"):

	if !res.OK {
		log.Printf("TeleSign error %d: %s", res.StatusCode, res.Body)
	}

common.CheckResponse turns unexpected status codes into errors for callers
who prefer that policy.

Calls are safe for concurrent use. Cancelling the context aborts the
in-flight request; nothing is retried.
*/
package apiclient
