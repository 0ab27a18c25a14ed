// Copyright 2023 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0

/*
Package verify wraps the TeleSign Verify API, used to deliver one time
passcodes by SMS, voice call, push notification or two-way SMS, and to check
the status of an ongoing verification.

SMS and Call generate a random verify code when the caller does not provide
one, and return it alongside the response so that it can be compared with
what the end user types:

	res, err := service.SMS(ctx, "+1 (555) 555-5555", verify.SMSOptions{})
	if err != nil { ... }

	if res.Response.OK {
		storeForLater(res.Response.JSON["reference_id"], res.VerifyCode)
	}

Phone numbers are reduced to their digits before being sent. A phone number
without any digit is rejected with a *common.ArgumentError.

Push requests are sent to the mobile endpoint (https://rest-mobile.telesign.com
by default), every other request to the REST endpoint.
*/
package verify
