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
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// Boolean is a GraphQL Boolean value. On the wire it is a JSON boolean and
// nothing else.
type Boolean bool

// ParseBoolean parses the textual form accepted by strconv.ParseBool.
func ParseBoolean(s string) (Boolean, error) {
	const op Op = "graphql.ParseBoolean"

	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, NewError("invalid Boolean value "+strconv.Quote(s), op, ErrKindInvalidInput, err)
	}
	return Boolean(v), nil
}

// Bool unwraps the primitive value.
func (v Boolean) Bool() bool { return bool(v) }

func (v Boolean) String() string {
	return strconv.FormatBool(bool(v))
}

// UnmarshalJSON implements json.Unmarshaler. It accepts a JSON boolean and
// rejects every other JSON value.
func (v *Boolean) UnmarshalJSON(data []byte) error {
	iter := jsoniter.ConfigDefault.BorrowIterator(data)
	defer jsoniter.ConfigDefault.ReturnIterator(iter)

	if iter.WhatIsNext() != jsoniter.BoolValue {
		return NewError("Boolean cannot represent "+string(data)+": not a boolean value", ErrKindDecode)
	}
	value := iter.ReadBool()
	if iter.Error != nil && iter.Error != io.EOF {
		return NewError("Boolean cannot represent "+string(data), ErrKindDecode, iter.Error)
	}
	*v = Boolean(value)
	return nil
}
