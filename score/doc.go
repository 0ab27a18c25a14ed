// Copyright 2023 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0

/*
Package score wraps the TeleSign Score API, which returns risk information
about a phone number for a given account lifecycle event.

Two generations of the API are exposed. Score targets the Intelligence Cloud
endpoint (https://detect.telesign.com, /intelligence/phone); LegacyScore
targets /v1/score/{phone_number} on the generic REST endpoint:

	service, err := score.NewService("", client)
	if err != nil { ... }

	res, err := service.Score(ctx, "15555555555", score.EventCreate, nil)
	if err != nil { ... }

	fmt.Println(res.Get("risk.recommendation").String())

Both operations check their arguments before any request is built, and fail
with a *common.ArgumentError when the phone number or the lifecycle event is
missing.
*/
package score
