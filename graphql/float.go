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

// Float is a GraphQL Float value (an IEEE 754 double on the wire).
type Float float64

// ParseFloat parses the textual form of a Float.
func ParseFloat(s string) (Float, error) {
	const op Op = "graphql.ParseFloat"

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, NewError("invalid Float value "+strconv.Quote(s), op, ErrKindInvalidInput, err)
	}
	return Float(v), nil
}

// Float64 unwraps the primitive value.
func (v Float) Float64() float64 { return float64(v) }

func (v Float) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

// UnmarshalJSON implements json.Unmarshaler. It accepts a JSON number and
// rejects every other JSON value.
func (v *Float) UnmarshalJSON(data []byte) error {
	iter := jsoniter.ConfigDefault.BorrowIterator(data)
	defer jsoniter.ConfigDefault.ReturnIterator(iter)

	if iter.WhatIsNext() != jsoniter.NumberValue {
		return NewError("Float cannot represent "+string(data)+": not a numeric value", ErrKindDecode)
	}

	value := iter.ReadFloat64()
	if iter.Error != nil && iter.Error != io.EOF {
		return NewError("Float cannot represent "+string(data), ErrKindDecode, iter.Error)
	}
	*v = Float(value)
	return nil
}
