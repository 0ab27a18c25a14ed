// Copyright 2023 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0

package main

import "github.com/telesign/apiclient/internal/cli"

func main() {
	cli.Execute()
}
