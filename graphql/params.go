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

package graphql

import (
	jsoniter "github.com/json-iterator/go"
)

// QueryParams is the capability implemented by every query parameter object,
// leaf or composite. A leaf contributes one formal declaration, one actual
// binding and one variable value under its own field name; a composite
// recursively invokes each child with the prefix extended by the child's
// field name via JoinPrefix.
//
// Implementations must treat the prefix as immutable context: the recursion
// passes an explicit prefix string down the tree rather than consulting
// shared state, which is what guarantees that two distinct tree positions can
// never produce the same wire-level variable name (as long as sibling field
// names are pairwise distinct within one composite).
type QueryParams interface {
	// ContributeFormal pushes the formal parameter declarations for this
	// position of the tree.
	ContributeFormal(buf *ParamBuffer, prefix string)

	// ContributeActual pushes the actual parameter bindings for this position
	// of the tree.
	ContributeActual(buf *ParamBuffer, prefix string)

	// ContributeVariables inserts the variable values for this position of the
	// tree. It reports a serialization failure when a leaf value cannot be
	// encoded to JSON.
	ContributeVariables(buf *VariableBuffer, prefix string) error
}

// JoinPrefix extends prefix with one path segment. An empty segment leaves
// the prefix unchanged; otherwise the new prefix is prefix + name + "_", with
// no leading underscore when prefix is empty.
func JoinPrefix(prefix, name string) string {
	if name == "" {
		return prefix
	}
	return prefix + name + "_"
}

// RenderFormal runs ContributeFormal from an empty prefix into a fresh buffer
// and consumes it, yielding the parenthesized formal parameter list for the
// operation signature (or "" when params declares nothing).
func RenderFormal(params QueryParams) string {
	var buf ParamBuffer
	params.ContributeFormal(&buf, "")
	return buf.Consume()
}

// RenderActual is the counterpart of RenderFormal for actual bindings. The
// prefix is caller-supplied: when a composite is rendered as a sub-field of
// another tree its parameter names are already prefixed by the path leading
// to it.
func RenderActual(params QueryParams, prefix string) string {
	var buf ParamBuffer
	params.ContributeActual(&buf, prefix)
	return buf.Consume()
}

// RenderVariables returns the flattened variable payload as a JSON object
// string.
func RenderVariables(params QueryParams) (string, error) {
	var buf VariableBuffer
	if err := params.ContributeVariables(&buf, ""); err != nil {
		return "", err
	}
	return buf.ToJSONString()
}

// RenderVariableMap returns the flattened variable payload as a map from
// fully-qualified variable name to raw JSON value.
func RenderVariableMap(params QueryParams) (map[string]jsoniter.RawMessage, error) {
	var buf VariableBuffer
	if err := params.ContributeVariables(&buf, ""); err != nil {
		return nil, err
	}
	return buf.ToMap(), nil
}

// NoParams is the identity element of query parameter trees: it declares
// nothing, binds nothing and carries no variables.
type NoParams struct{}

var _ QueryParams = NoParams{}

// ContributeFormal implements QueryParams.
func (NoParams) ContributeFormal(*ParamBuffer, string) {}

// ContributeActual implements QueryParams.
func (NoParams) ContributeActual(*ParamBuffer, string) {}

// ContributeVariables implements QueryParams.
func (NoParams) ContributeVariables(*VariableBuffer, string) error { return nil }
