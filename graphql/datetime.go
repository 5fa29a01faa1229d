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

// DateTime is a GraphQL DateTime value. On the wire it is a JSON string in
// RFC 3339 form.
type DateTime struct {
	t time.Time
}

// NewDateTime constructs a DateTime from a time value.
func NewDateTime(t time.Time) DateTime {
	return DateTime{t: t}
}

// DateTimeFromUnix constructs a DateTime from a Unix timestamp in seconds,
// normalized to UTC.
func DateTimeFromUnix(sec int64) DateTime {
	return DateTime{t: time.Unix(sec, 0).UTC()}
}

// ParseDateTime parses the RFC 3339 textual form.
func ParseDateTime(s string) (DateTime, error) {
	const op Op = "graphql.ParseDateTime"

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return DateTime{}, NewError("invalid DateTime value "+strconv.Quote(s), op, ErrKindInvalidInput, err)
	}
	return DateTime{t: t}, nil
}

// Time unwraps the underlying time value.
func (d DateTime) Time() time.Time { return d.t }

// Date truncates the value to its calendar date.
func (d DateTime) Date() Date {
	year, month, day := d.t.Date()
	return NewDate(year, month, day)
}

// Equal reports whether two values denote the same instant.
func (d DateTime) Equal(other DateTime) bool { return d.t.Equal(other.t) }

// Before reports whether d is earlier than other.
func (d DateTime) Before(other DateTime) bool { return d.t.Before(other.t) }

// After reports whether d is later than other.
func (d DateTime) After(other DateTime) bool { return d.t.After(other.t) }

func (d DateTime) String() string {
	return d.t.Format(time.RFC3339)
}

// MarshalJSON implements json.Marshaler.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts an RFC 3339 JSON
// string and rejects everything else.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	iter := jsoniter.ConfigDefault.BorrowIterator(data)
	defer jsoniter.ConfigDefault.ReturnIterator(iter)

	if iter.WhatIsNext() != jsoniter.StringValue {
		return NewError("DateTime cannot represent "+string(data)+": not a string value", ErrKindDecode)
	}

	s := iter.ReadString()
	if iter.Error != nil && iter.Error != io.EOF {
		return NewError("DateTime cannot represent "+string(data), ErrKindDecode, iter.Error)
	}

	parsed, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
