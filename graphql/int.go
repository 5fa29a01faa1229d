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
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Int is a GraphQL Int value: a signed 32-bit numeric non-fractional value.
// On the wire it is a JSON number; values outside the 32-bit signed range and
// non-integer JSON values fail to decode.
//
// Reference: https://spec.graphql.org/June2018/#sec-Int
type Int int32

// ParseInt parses the decimal textual form of an Int.
func ParseInt(s string) (Int, error) {
	const op Op = "graphql.ParseInt"

	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, NewError("invalid Int value "+strconv.Quote(s), op, ErrKindInvalidInput, err)
	}
	return Int(v), nil
}

// Int32 unwraps the primitive value.
func (v Int) Int32() int32 { return int32(v) }

func (v Int) String() string {
	return strconv.FormatInt(int64(v), 10)
}

// AsDecimal renders the value as a fixed-point decimal string with the given
// number of fractional digits, e.g. Int(4212).AsDecimal(2) == "42.12". Useful
// for amounts that arrive as minor currency units.
func (v Int) AsDecimal(decimals int) string {
	s := v.String()

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	if len(s) <= decimals {
		s = strings.Repeat("0", decimals-len(s)+1) + s
	}

	s = s[:len(s)-decimals] + "." + s[len(s)-decimals:]
	if negative {
		s = "-" + s
	}
	return s
}

// UnmarshalJSON implements json.Unmarshaler. It accepts any JSON integer
// representable in 32 signed bits and rejects fractions, overflows and
// non-numeric values.
func (v *Int) UnmarshalJSON(data []byte) error {
	iter := jsoniter.ConfigDefault.BorrowIterator(data)
	defer jsoniter.ConfigDefault.ReturnIterator(iter)

	if iter.WhatIsNext() != jsoniter.NumberValue {
		return NewError("Int cannot represent "+string(data)+": not an integer", ErrKindDecode)
	}

	number := iter.ReadNumber()
	n, err := strconv.ParseInt(number.String(), 10, 64)
	if err != nil {
		return NewError("Int cannot represent "+number.String()+": not an integer", ErrKindDecode, err)
	}
	if n > math.MaxInt32 {
		return NewError("Int cannot represent "+number.String()+": value too large for 32-bit signed integer", ErrKindDecode)
	}
	if n < math.MinInt32 {
		return NewError("Int cannot represent "+number.String()+": value too small for 32-bit signed integer", ErrKindDecode)
	}

	*v = Int(n)
	return nil
}
