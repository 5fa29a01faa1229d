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

// Package graphql provides the building blocks for composing typed GraphQL
// query documents on the client side.
//
// Query Composition
//
// A request document is derived mechanically from a tree of typed parameter
// objects. Every parameter object, leaf or composite, implements QueryParams
// to contribute its formal declarations, actual bindings and variable values
// into per-request buffers under a caller-supplied name prefix. Composites
// recurse into their children with the prefix extended by the child's field
// name (see JoinPrefix), so the same reusable parameter type can be embedded
// at multiple positions in one document without its generated variable names
// colliding: each embedding site derives a distinct prefix from the path of
// field names leading to it.
//
// The selection set is rendered by a matching ResultType which receives the
// same parameter tree and prefix, keeping the requested fields and the
// parameter bindings in lock-step. BuildDocument assembles the complete
// operation from the two capabilities.
//
// The package also defines the scalar value types used on the wire (Boolean,
// Int, Float, ID, Date, DateTime), the response error shapes reported by
// GraphQL endpoints, and the pagination envelope for cursor-based
// connections. The HTTP orchestration lives in the client subpackage.
package graphql
