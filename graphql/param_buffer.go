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
)

// ParamBuffer accumulates the comma-separated, parenthesized list of formal
// parameter declarations or actual parameter bindings for one query or field
// level. A ParamBuffer is created fresh per render operation and consumed
// exactly once; any use after Consume panics.
type ParamBuffer struct {
	buf      strings.Builder
	consumed bool
}

// Push appends one already-rendered parameter fragment, inserting "(" before
// the first fragment and ", " before every subsequent one.
func (b *ParamBuffer) Push(fragment string) {
	if b.consumed {
		panic("graphql: Push on a consumed ParamBuffer")
	}

	if b.buf.Len() == 0 {
		b.buf.WriteString("(")
	} else {
		b.buf.WriteString(", ")
	}
	b.buf.WriteString(fragment)
}

// PushFormal appends the formal declaration "$<prefix><name>: <wireType>".
func (b *ParamBuffer) PushFormal(prefix, name, wireType string) {
	b.Push("$" + prefix + name + ": " + wireType)
}

// PushActual appends the actual binding "<name>: $<prefix><name>".
func (b *ParamBuffer) PushActual(prefix, name string) {
	b.Push(name + ": $" + prefix + name)
}

// Consume closes the list with ")" if any fragment was pushed, or returns ""
// otherwise, and invalidates the buffer.
func (b *ParamBuffer) Consume() string {
	if b.consumed {
		panic("graphql: Consume on a consumed ParamBuffer")
	}
	b.consumed = true

	if b.buf.Len() == 0 {
		return ""
	}
	b.buf.WriteString(")")
	return b.buf.String()
}
