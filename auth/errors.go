// Copyright 2023 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0
package auth

import "fmt"

// InvalidCredentialError is returned before any network activity when the
// credential cannot be used to authenticate a request.
type InvalidCredentialError struct {
	Reason string
	Err    error
}

func (e *InvalidCredentialError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid credential: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid credential: %s", e.Reason)
}

func (e *InvalidCredentialError) Unwrap() error {
	return e.Err
}
