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

package client

import (
	"context"
	"strconv"

	"github.com/botobag/selene/graphql"

	jsoniter "github.com/json-iterator/go"
)

// Execute drives one full request from a typed parameter tree: it assembles
// the document and the flattened variable payload from params and resultType,
// performs the exchange, extracts the entry named queryName from the response
// data and decodes it into T.
//
// T is the caller's declared result type; it must match the shape rendered by
// resultType. On failure the zero value of T is returned together with
// exactly one error: any error Call can produce, plus ErrKindSerialization
// when a parameter value cannot be encoded, ErrKindInternal when the response
// data lacks the queryName entry, and ErrKindDecode when the entry does not
// decode into T.
func Execute[T any, Q graphql.QueryParams](
	ctx context.Context,
	c *Client,
	operationName string,
	queryName string,
	params Q,
	resultType graphql.ResultType[Q],
	headers map[string]string,
) (T, error) {
	const op graphql.Op = "client.Execute"

	var result T

	document := graphql.BuildDocument(operationName, queryName, params, resultType)
	variables, err := graphql.RenderVariableMap(params)
	if err != nil {
		return result, err
	}

	data, err := c.Call(ctx, operationName, document, variables, headers)
	if err != nil {
		return result, err
	}

	raw, ok := data[queryName]
	if !ok {
		return result, graphql.NewError("no response found for "+strconv.Quote(queryName),
			op, graphql.ErrKindInternal)
	}

	if err := jsoniter.Unmarshal(raw, &result); err != nil {
		return result, graphql.NewError("cannot decode response for "+strconv.Quote(queryName),
			op, graphql.ErrKindDecode, err)
	}
	return result, nil
}
