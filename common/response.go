// Copyright 2023 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/moogar0880/problems"
	"github.com/tidwall/gjson"
)

// Response is the normalized result of a TeleSign API call.
type Response struct {
	StatusCode int
	Headers    http.Header
	// Body is the raw response body.
	Body string
	// JSON is the body parsed as a JSON object. It is an empty map when the
	// body is empty or is not a JSON object.
	JSON map[string]interface{}
	// OK is true for 2xx status codes.
	OK bool
}

func newResponse(statusCode int, headers http.Header, body []byte) *Response {
	return &Response{
		StatusCode: statusCode,
		Headers:    headers.Clone(),
		Body:       string(body),
		JSON:       parseJSONObject(body),
		OK:         statusCode >= 200 && statusCode <= 299,
	}
}

func parseJSONObject(body []byte) map[string]interface{} {
	var j map[string]interface{}

	if err := json.Unmarshal(body, &j); err != nil || j == nil {
		return map[string]interface{}{}
	}

	return j
}

// Get queries the body with a gjson path, e.g. "phone_type.code" or
// "risk.level".
func (r *Response) Get(path string) gjson.Result {
	return gjson.Get(r.Body, path)
}

// Problem returns the RFC 7807 details carried by an
// application/problem+json response, or nil.
func (r *Response) Problem() *ProblemError {
	mt, _, err := mime.ParseMediaType(r.Headers.Get("Content-Type"))
	if err != nil || mt != problems.ProblemMediaType {
		return nil
	}

	var prob ProblemError
	if err := json.Unmarshal([]byte(r.Body), &prob.DefaultProblem); err != nil {
		return nil
	}

	if prob.Status == 0 {
		prob.Status = r.StatusCode
	}

	return &prob
}
