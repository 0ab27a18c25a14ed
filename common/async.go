// Copyright 2023 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0

package common

import "context"

// Result carries the outcome of an asynchronous call.
type Result struct {
	Response *Response
	Err      error
}

// Go runs fn in a new goroutine and delivers its outcome on the returned
// (buffered) channel, which is closed afterwards. Cancelling ctx aborts the
// in-flight request.
func Go(ctx context.Context, fn func(context.Context) (*Response, error)) <-chan Result {
	ch := make(chan Result, 1)

	go func() {
		defer close(ch)
		res, err := fn(ctx)
		ch <- Result{Response: res, Err: err}
	}()

	return ch
}
