// Copyright 2021 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"fmt"
	"net/url"
	"runtime"
	"strings"
	"time"
)

const (
	DefaultRestEndpoint   = "https://rest-api.telesign.com"
	DefaultDetectEndpoint = "https://detect.telesign.com"
	DefaultMobileEndpoint = "https://rest-mobile.telesign.com"

	DefaultTimeout = 10 * time.Second

	// defaultSource is the Source identifying this SDK
	defaultSource = "go_telesign"
)

// Version of the SDK, reported in the User-Agent.
var Version = "1.0.0"

// ParseEndpoint checks that uri is an absolute URI.
func ParseEndpoint(uri string) (*url.URL, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("malformed URI: %w", err)
	}

	if !u.IsAbs() {
		return nil, fmt.Errorf("URI is not absolute: %q", uri)
	}

	return u, nil
}

// ResolveEndpoint appends resource (which carries any path parameter already
// substituted and escaped) to the endpoint base URI.
func ResolveEndpoint(base *url.URL, resource string) (*url.URL, error) {
	if base == nil {
		return nil, fmt.Errorf("no endpoint URI")
	}

	b := *base
	b.RawQuery = ""
	b.Fragment = ""

	u, err := url.Parse(strings.TrimSuffix(b.String(), "/") + resource)
	if err != nil {
		return nil, fmt.Errorf("malformed resource %q: %w", resource, err)
	}

	return u, nil
}

// BuildUserAgent returns the User-Agent sent with every request. A non-empty
// source other than this SDK's identifies a wrapping SDK.
func BuildUserAgent(source, sdkVersionOrigin, sdkVersionDependency string) string {
	ua := fmt.Sprintf("TeleSignSdk/go-%s Go/%s net/http", Version, runtime.Version())

	if source == "" || source == defaultSource {
		return ua
	}

	ua += fmt.Sprintf(" OriginatingSDK/%s SDKVersion/%s", source, sdkVersionOrigin)

	if sdkVersionDependency != "" {
		ua += fmt.Sprintf(" DependencySDKVersion/%s", sdkVersionDependency)
	}

	return ua
}
