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
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// VariableBuffer accumulates the flat mapping from fully-qualified variable
// name to JSON value sent as the request's variable payload. Keys are made
// globally unique by the prefixing discipline (see JoinPrefix); a genuine
// collision indicates a bug in prefix derivation or duplicated sibling field
// names and fails loudly rather than silently overwriting the payload.
//
// Like ParamBuffer, a VariableBuffer is created fresh per render operation
// and consumed exactly once by ToMap or ToJSONString.
type VariableBuffer struct {
	variables map[string]jsoniter.RawMessage

	// Insertion order of keys; JSON object key order carries no meaning for
	// the endpoint but keeps rendered payloads stable for diagnostics.
	order []string

	consumed bool
}

// PushVariable converts value to its JSON encoding and stores it under the
// key prefix + name.
func (b *VariableBuffer) PushVariable(prefix, name string, value interface{}) error {
	const op Op = "graphql.PushVariable"

	if b.consumed {
		panic("graphql: PushVariable on a consumed VariableBuffer")
	}

	key := prefix + name
	if _, exists := b.variables[key]; exists {
		return NewError("duplicate variable name "+strconv.Quote(key), op, ErrKindSerialization)
	}

	encoded, err := jsoniter.Marshal(value)
	if err != nil {
		return NewError("cannot convert value for variable "+strconv.Quote(key)+" to JSON",
			op, ErrKindSerialization, err)
	}

	if b.variables == nil {
		b.variables = make(map[string]jsoniter.RawMessage)
	}
	b.variables[key] = encoded
	b.order = append(b.order, key)
	return nil
}

// ToMap yields the accumulated mapping and invalidates the buffer.
func (b *VariableBuffer) ToMap() map[string]jsoniter.RawMessage {
	if b.consumed {
		panic("graphql: ToMap on a consumed VariableBuffer")
	}
	b.consumed = true

	if b.variables == nil {
		return map[string]jsoniter.RawMessage{}
	}
	return b.variables
}

// ToJSONString renders the accumulated mapping as a JSON object in insertion
// order and invalidates the buffer.
func (b *VariableBuffer) ToJSONString() (string, error) {
	if b.consumed {
		panic("graphql: ToJSONString on a consumed VariableBuffer")
	}
	b.consumed = true

	stream := jsoniter.ConfigDefault.BorrowStream(nil)
	defer jsoniter.ConfigDefault.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, key := range b.order {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(key)
		stream.SetBuffer(append(stream.Buffer(), b.variables[key]...))
	}
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return "", WrapError(stream.Error, "cannot render variables")
	}
	return string(stream.Buffer()), nil
}
