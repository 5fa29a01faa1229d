/**
 * Copyright (c) 2025, The Selene Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package client performs the HTTP exchange for composed GraphQL documents
// and demultiplexes responses into typed results or typed errors.
package client

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/botobag/selene/graphql"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

// requestEnvelope is the wire payload of one call.
type requestEnvelope struct {
	Query         string                         `json:"query"`
	Variables     map[string]jsoniter.RawMessage `json:"variables"`
	OperationName string                         `json:"operationName"`
}

// responseEnvelope is the top-level response wrapper. A present, non-empty
// errors list takes precedence over data.
type responseEnvelope struct {
	Errors []graphql.WireError            `json:"errors"`
	Data   map[string]jsoniter.RawMessage `json:"data"`
}

// clientConfig contains configuration for a Client.
type clientConfig struct {
	httpClient        *http.Client
	logger            *zap.Logger
	validateDocuments bool
}

// Option configures a Client.
type Option func(c *clientConfig)

// HTTPClient sets the http.Client used for the exchanges. The instance may be
// shared with other users; the Client keeps no per-request state in it.
func HTTPClient(httpClient *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = httpClient
	}
}

// Logger sets the logger for request/response diagnostics. The default
// discards everything.
func Logger(logger *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// ValidateDocuments makes the Client parse every outgoing query document and
// fail the call before any network I/O when the document is not syntactically
// valid GraphQL.
func ValidateDocuments() Option {
	return func(c *clientConfig) {
		c.validateDocuments = true
	}
}

// Client communicates with one GraphQL endpoint over HTTP POST. A Client is
// safe for concurrent use: each call builds its own document, variables and
// request from scratch.
type Client struct {
	endpoint string
	config   clientConfig
}

// New creates a Client for the endpoint URL.
func New(endpoint string, opts ...Option) (*Client, error) {
	const op graphql.Op = "client.New"

	if endpoint == "" {
		return nil, graphql.NewError("endpoint URL is required", op, graphql.ErrKindInvalidInput)
	}

	config := clientConfig{
		httpClient: http.DefaultClient,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&config)
	}

	return &Client{
		endpoint: endpoint,
		config:   config,
	}, nil
}

// Call sends a pre-built query document with opaque variables and returns the
// raw data mapping without per-field decoding. It is the low-level variant of
// Execute for callers that assemble the document themselves.
//
// Every failure is terminal and surfaces as exactly one error:
// ErrKindInvalidInput for an unparsable document (only with
// ValidateDocuments), ErrKindTransport for a non-success HTTP status,
// ErrKindDecode for a malformed response body or envelope, and
// ErrKindGraphQL when the endpoint reports semantic errors.
func (c *Client) Call(
	ctx context.Context,
	operationName string,
	query string,
	variables map[string]jsoniter.RawMessage,
	headers map[string]string,
) (map[string]jsoniter.RawMessage, error) {
	const op graphql.Op = "client.Call"

	if c.config.validateDocuments {
		if err := graphql.ValidateDocument(query); err != nil {
			return nil, err
		}
	}

	if variables == nil {
		variables = map[string]jsoniter.RawMessage{}
	}
	payload, err := jsoniter.Marshal(requestEnvelope{
		Query:         query,
		Variables:     variables,
		OperationName: operationName,
	})
	if err != nil {
		return nil, graphql.NewError("cannot encode request payload", op, graphql.ErrKindSerialization, err)
	}

	c.config.logger.Debug("sending graphql request",
		zap.String("operationName", operationName),
		zap.ByteString("payload", payload))

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, graphql.NewError("cannot build HTTP request", op, graphql.ErrKindTransport, err)
	}
	request.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		request.Header.Set(key, value)
	}

	response, err := c.config.httpClient.Do(request)
	if err != nil {
		return nil, graphql.NewError("request failed", op, graphql.ErrKindTransport, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, graphql.NewError("cannot read response body", op, graphql.ErrKindTransport, err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		// The body is discarded beyond diagnostics.
		c.config.logger.Error("graphql endpoint returned non-success status",
			zap.Int("status", response.StatusCode),
			zap.ByteString("body", body))
		return nil, graphql.NewError("endpoint returned non-success status", op,
			graphql.ErrKindTransport, graphql.StatusCode(response.StatusCode))
	}

	c.config.logger.Debug("received graphql response",
		zap.Int("status", response.StatusCode),
		zap.ByteString("body", body))

	var envelope responseEnvelope
	if err := jsoniter.Unmarshal(body, &envelope); err != nil {
		return nil, graphql.NewError("cannot decode response envelope", op, graphql.ErrKindDecode, err)
	}

	if len(envelope.Errors) > 0 {
		return nil, graphql.NewError("endpoint reported errors", op,
			graphql.ErrKindGraphQL, envelope.Errors)
	}

	return envelope.Data, nil
}
