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

// ErrorLocation contains a line number and a column number to point out the
// beginning of an associated syntax element in the query document.
type ErrorLocation struct {
	// Both line and column are positive numbers starting from 1
	Line   int `json:"line"`
	Column int `json:"column"`
}

// ValidationError describes a single input-validation failure reported under
// an error's extensions.
type ValidationError struct {
	Message   string   `json:"message"`
	InputPath []string `json:"inputPath"`
}

// WireErrorExtensions carries vendor-specific error data attached to a
// WireError under the "extensions" key.
//
// Reference: https://spec.graphql.org/June2018/#sec-Errors
type WireErrorExtensions struct {
	ErrorType        string            `json:"errorType,omitempty"`
	ErrorCode        string            `json:"errorCode,omitempty"`
	ErrorDescription string            `json:"errorDescription,omitempty"`
	ErrorClass       string            `json:"errorClass,omitempty"`
	ValidationErrors []ValidationError `json:"validationErrors,omitempty"`
}

// WireError is a semantic error reported by the endpoint in the "errors" list
// of a response envelope. Field names are bit-exact with the wire format.
type WireError struct {
	Message    string              `json:"message,omitempty"`
	Locations  []ErrorLocation     `json:"locations"`
	Path       []string            `json:"path"`
	Extensions WireErrorExtensions `json:"extensions"`
}

// String renders the error as compact JSON for diagnostics.
func (e WireError) String() string {
	s, err := jsoniter.MarshalToString(e)
	if err != nil {
		return e.Message
	}
	return s
}
