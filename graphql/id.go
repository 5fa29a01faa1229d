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
	"io"

	jsoniter "github.com/json-iterator/go"
)

// ID is a GraphQL ID value. On the wire it is a JSON string.
type ID string

func (v ID) String() string { return string(v) }

// UnmarshalJSON implements json.Unmarshaler. It accepts a JSON string and
// rejects every other JSON value.
func (v *ID) UnmarshalJSON(data []byte) error {
	iter := jsoniter.ConfigDefault.BorrowIterator(data)
	defer jsoniter.ConfigDefault.ReturnIterator(iter)

	if iter.WhatIsNext() != jsoniter.StringValue {
		return NewError("ID cannot represent "+string(data)+": not a string value", ErrKindDecode)
	}

	value := iter.ReadString()
	if iter.Error != nil && iter.Error != io.EOF {
		return NewError("ID cannot represent "+string(data), ErrKindDecode, iter.Error)
	}
	*v = ID(value)
	return nil
}
