// Copyright 2021 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
	"github.com/telesign/apiclient/auth"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/telesign/apiclient/common"

// Client holds configuration data associated with the HTTP(s) session and
// the credentials used to sign every request. A Client is safe for
// concurrent use once configured.
type Client struct {
	HTTPClient    http.Client
	Authenticator auth.IAuthenticator
	UserAgent     string
	Logger        zerolog.Logger
	Tracer        trace.Tracer
}

// ClientConfig tunes the HTTP session. The zero value gives the defaults:
// 10 seconds timeout, no proxy, system trust store.
type ClientConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`

	// ProxyURL of an outbound HTTP(S) proxy, e.g. "http://proxy.example:3128".
	ProxyURL      string `mapstructure:"proxy_url"`
	ProxyUsername string `mapstructure:"proxy_username"`
	ProxyPassword string `mapstructure:"proxy_password"`

	// CACerts are extra PEM files trusted on top of the system pool.
	CACerts            []string `mapstructure:"ca_certs"`
	InsecureSkipVerify bool     `mapstructure:"insecure_skip_verify"`

	// Source and the SDK versions identify a wrapping SDK in the User-Agent.
	Source               string `mapstructure:"source"`
	SDKVersionOrigin     string `mapstructure:"sdk_version_origin"`
	SDKVersionDependency string `mapstructure:"sdk_version_dependency"`

	Logger *zerolog.Logger `mapstructure:"-"`
}

// Configure decodes a map (e.g. a section of a configuration file) into
// the ClientConfig.
func (o *ClientConfig) Configure(cfg map[string]interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           o,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(cfg)
}

// NewClient instantiates a new Client with the default session
// configuration.
func NewClient(a auth.IAuthenticator) *Client {
	return &Client{
		HTTPClient: http.Client{
			Timeout: DefaultTimeout,
		},
		Authenticator: a,
		UserAgent:     BuildUserAgent("", "", ""),
		Logger:        zerolog.Nop(),
	}
}

// NewClientWithConfig instantiates a new Client with proxy, TLS and timeout
// settings taken from cfg.
func NewClientWithConfig(a auth.IAuthenticator, cfg ClientConfig) (*Client, error) {
	c := NewClient(a)

	if cfg.Timeout > 0 {
		c.HTTPClient.Timeout = cfg.Timeout
	}

	c.UserAgent = BuildUserAgent(cfg.Source, cfg.SDKVersionOrigin, cfg.SDKVersionDependency)

	if cfg.Logger != nil {
		c.Logger = *cfg.Logger
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyURL != "" {
		proxy, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("malformed proxy URI: %w", err)
		}

		if !proxy.IsAbs() {
			return nil, fmt.Errorf("proxy URI is not absolute: %q", cfg.ProxyURL)
		}

		if cfg.ProxyUsername != "" {
			proxy.User = url.UserPassword(cfg.ProxyUsername, cfg.ProxyPassword)
		}

		transport.Proxy = http.ProxyURL(proxy)
	}

	if len(cfg.CACerts) > 0 || cfg.InsecureSkipVerify {
		tlsConfig, err := auth.NewTLSConfig(cfg.CACerts, cfg.InsecureSkipVerify)
		if err != nil {
			return nil, err
		}
		transport.TLSClientConfig = tlsConfig
	}

	c.HTTPClient.Transport = transport

	return c, nil
}

// Close releases the idle connections held by the underlying transport.
func (c *Client) Close() {
	c.HTTPClient.CloseIdleConnections()
}

// Execute signs and sends req against endpoint. Any HTTP response, whatever
// its status code, is returned as a *Response; only signing and transport
// failures are reported as errors.
func (c *Client) Execute(ctx context.Context, endpoint *url.URL, req Request) (*Response, error) {
	if c == nil {
		return nil, ErrNoClient
	}

	if c.Authenticator == nil {
		return nil, ErrNoAuthenticator
	}

	method := strings.ToUpper(req.Method)
	if method == "" {
		return nil, &ArgumentError{Field: "method", Reason: "cannot be null or empty"}
	}

	if !strings.HasPrefix(req.Resource, "/") {
		return nil, &ArgumentError{Field: "resource", Reason: "must start with \"/\""}
	}

	uri, err := ResolveEndpoint(endpoint, req.Resource)
	if err != nil {
		return nil, err
	}

	var body, contentType string

	hasBody := method == http.MethodPost || method == http.MethodPut
	if hasBody {
		body, contentType, err = req.encodeBody()
		if err != nil {
			return nil, fmt.Errorf("%s %q, body encoding failed: %w", method, req.Resource, err)
		}
	} else {
		uri.RawQuery = req.Params.EncodeForm()
	}

	headers, err := c.Authenticator.EncodeHeaders(auth.Input{
		Method:      method,
		Resource:    req.Resource,
		ContentType: contentType,
		Body:        body,
		UserAgent:   c.UserAgent,
	})
	if err != nil {
		return nil, err
	}

	ctx, span := c.tracer().Start(ctx, "telesign "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", req.Resource),
		),
	)
	defer span.End()

	var reader io.Reader
	if hasBody {
		reader = strings.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, uri.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("%s %q, request creation failed: %w", method, req.Resource, err)
	}

	for k, v := range headers {
		if k == auth.HeaderContentType && v == "" {
			continue
		}
		httpReq.Header.Set(k, v)
	}

	log := c.Logger.With().
		Str("method", method).
		Str("resource", req.Resource).
		Logger()

	start := time.Now()

	res, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		log.Debug().Err(err).Dur("elapsed", time.Since(start)).Msg("request failed")

		return nil, &TransportError{Method: method, URI: redactQuery(uri), Err: err}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "reading response body")

		return nil, &TransportError{
			Method: method,
			URI:    redactQuery(uri),
			Err:    fmt.Errorf("reading response body: %w", err),
		}
	}

	resp := newResponse(res.StatusCode, res.Header, raw)

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if !resp.OK {
		span.SetStatus(codes.Error, res.Status)
	}

	log.Debug().
		Int("status", resp.StatusCode).
		Bool("ok", resp.OK).
		Dur("elapsed", time.Since(start)).
		Msg("request completed")

	return resp, nil
}

func (c *Client) tracer() trace.Tracer {
	if c.Tracer != nil {
		return c.Tracer
	}
	return otel.Tracer(tracerName)
}

func redactQuery(u *url.URL) string {
	r := *u
	r.RawQuery = ""
	return r.String()
}
