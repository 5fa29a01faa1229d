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
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// ResultType describes the selection shape of an expected result type queried
// with parameters of type Q. QueryAttributes renders the field list for the
// type: scalar fields need no further nesting while object fields recursively
// render their nested type's selection set with the prefix extended by the
// field name, matching the prefixing rule of QueryParams.
//
// A ResultType and the QueryParams it is paired with must be kept
// structurally isomorphic by the caller (same field names, same nesting);
// the engine does not verify this. See ValidateDocument for the syntax-level
// safety net.
type ResultType[Q QueryParams] interface {
	// QueryAttributes returns the attribute/field list for this type without
	// the wrapping braces.
	QueryAttributes(params Q, prefix string) string
}

// SelectionSetOf wraps the attributes of t in a braced selection set.
func SelectionSetOf[Q QueryParams](t ResultType[Q], params Q, prefix string) string {
	return "{ " + t.QueryAttributes(params, prefix) + " }"
}

// BuildDocument assembles the complete query document for one operation: the
// operation signature with its formal parameter declarations, the queried
// field with its actual bindings, and the selection set matching the expected
// result shape.
func BuildDocument[Q QueryParams](operationName, queryName string, params Q, resultType ResultType[Q]) string {
	var b strings.Builder
	b.WriteString("query ")
	b.WriteString(operationName)
	b.WriteString(RenderFormal(params))
	b.WriteString(" { ")
	b.WriteString(queryName)
	b.WriteString(RenderActual(params, ""))
	b.WriteString(" ")
	b.WriteString(SelectionSetOf(resultType, params, ""))
	b.WriteString(" }")
	return b.String()
}

// ValidateDocument checks that a query document is syntactically valid
// GraphQL. It validates grammar only; it cannot tell whether the document
// conforms to the remote schema. A failure is reported as ErrKindInvalidInput.
func ValidateDocument(document string) error {
	const op Op = "graphql.ValidateDocument"

	if _, err := parser.ParseQuery(&ast.Source{Input: document}); err != nil {
		return NewError("query document failed to parse", op, ErrKindInvalidInput, err)
	}
	return nil
}
