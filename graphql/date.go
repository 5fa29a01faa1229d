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
	"time"

	jsoniter "github.com/json-iterator/go"
)

// dateLayout is the wire format of a Date.
const dateLayout = "2006-01-02"

// Date is a GraphQL Date value. On the wire it is a JSON string of exactly
// the form "YYYY-MM-DD".
type Date struct {
	t time.Time
}

// NewDate constructs a Date from a calendar date.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses the "YYYY-MM-DD" textual form.
func ParseDate(s string) (Date, error) {
	const op Op = "graphql.ParseDate"

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, NewError("invalid Date value "+strconv.Quote(s), op, ErrKindInvalidInput, err)
	}
	return Date{t: t}, nil
}

// Time unwraps the underlying time value (midnight UTC of the calendar date).
func (d Date) Time() time.Time { return d.t }

// Equal reports whether two dates denote the same calendar date.
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// After reports whether d is later than other.
func (d Date) After(other Date) bool { return d.t.After(other.t) }

func (d Date) String() string {
	return d.t.Format(dateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts a JSON string of
// exactly the wire layout and rejects everything else.
func (d *Date) UnmarshalJSON(data []byte) error {
	iter := jsoniter.ConfigDefault.BorrowIterator(data)
	defer jsoniter.ConfigDefault.ReturnIterator(iter)

	if iter.WhatIsNext() != jsoniter.StringValue {
		return NewError("Date cannot represent "+string(data)+": not a string value", ErrKindDecode)
	}

	s := iter.ReadString()
	if iter.Error != nil && iter.Error != io.EOF {
		return NewError("Date cannot represent "+string(data), ErrKindDecode, iter.Error)
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
