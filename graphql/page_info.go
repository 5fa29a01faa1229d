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

// ForwardPageInfo carries the cursor state of a forward-paginated connection.
type ForwardPageInfo struct {
	StartCursor string `json:"startCursor"`
	HasNextPage bool   `json:"hasNextPage"`
}

// ForwardPageInfoAttributes is the selection body for a ForwardPageInfo.
const ForwardPageInfoAttributes = "startCursor hasNextPage"

// EdgeOf is one edge of a connection wrapping a node of type T.
type EdgeOf[T any] struct {
	Node T `json:"node"`
}

// ForwardPageOf is the pagination envelope of a forward-paginated connection
// of nodes of type T.
type ForwardPageOf[T any] struct {
	PageInfo ForwardPageInfo `json:"pageInfo"`
	Edges    []EdgeOf[T]     `json:"edges"`
}

// Nodes collects the nodes of every edge in page order.
func (p ForwardPageOf[T]) Nodes() []T {
	nodes := make([]T, len(p.Edges))
	for i := range p.Edges {
		nodes[i] = p.Edges[i].Node
	}
	return nodes
}

// PageQueryAttributes renders the selection body of a paginated connection
// whose nodes are described by nodeType: the page info fields plus the node
// selection nested under edges.
func PageQueryAttributes[Q QueryParams](nodeType ResultType[Q], params Q, prefix string) string {
	return "pageInfo { " + ForwardPageInfoAttributes + " } edges { node " +
		SelectionSetOf(nodeType, params, prefix) + " }"
}
