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
	"fmt"
	"log"
	"runtime"
	"strconv"
	"strings"
)

// Op describes an operation, usually as the package and method, such as
// "client.Call".
type Op string

// StatusCode carries the HTTP status of a failed exchange into NewError.
type StatusCode int

// ErrKind defines the kind of error this is.
type ErrKind uint8

// Enumeration of ErrKind
const (
	ErrKindOther         ErrKind = iota // Unclassified error. This value is not printed in the error message.
	ErrKindTransport                    // Endpoint answered with a non-success HTTP status.
	ErrKindDecode                       // Response body is not valid JSON or does not match the expected shape.
	ErrKindGraphQL                      // Endpoint executed the request but reported semantic errors.
	ErrKindSerialization                // A parameter value could not be converted to a JSON value.
	ErrKindInternal                     // Response envelope lacked the expected operation entry.
	ErrKindInvalidInput                 // Scalar parsing/formatting failure or malformed query document.
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindOther:
		return "other error"
	case ErrKindTransport:
		return "transport error"
	case ErrKindDecode:
		return "decode error"
	case ErrKindGraphQL:
		return "graphql error"
	case ErrKindSerialization:
		return "serialization error"
	case ErrKindInternal:
		return "internal error"
	case ErrKindInvalidInput:
		return "invalid input error"
	}
	return "unknown error kind"
}

// An Error describes a failure while composing, sending or decoding a GraphQL
// request. Every failed call yields exactly one Error value; nothing is
// retried or swallowed on the way up.
//
// An Error can be built by wrapping an underlying error value. It also
// includes Op and ErrKind which show when printing the error value, making it
// helpful for programmers chasing a failure through the call path.
type Error struct {
	// Message describes the error for debugging purposes.
	Message string

	// StatusCode is the HTTP status of the exchange. Only meaningful when Kind
	// is ErrKindTransport.
	StatusCode int

	// Errors lists the semantic errors reported by the endpoint. Only present
	// when Kind is ErrKindGraphQL.
	Errors []WireError

	// The underlying error that triggered this one
	Err error

	// Op is the operation being performed, usually the name of the method
	// being invoked.
	Op Op

	// Kind is the class of error
	Kind ErrKind
}

// Error implements Go error interface.
var _ error = (*Error)(nil)

// NewError builds an error value from arguments. Inspired by the design of
// upspin.io/errors [0].
//
// [0]: https://commandcenter.blogspot.com/2017/12/error-handling-in-upspin.html.
func NewError(message string, args ...interface{}) error {
	e := &Error{
		Message: message,
	}

	for _, arg := range args {
		switch arg := arg.(type) {
		case StatusCode:
			e.StatusCode = int(arg)

		case []WireError:
			e.Errors = arg

		case WireError:
			e.Errors = []WireError{arg}

		case error:
			e.Err = arg

		case Op:
			e.Op = arg

		case ErrKind:
			e.Kind = arg

		default:
			_, file, line, _ := runtime.Caller(1)
			log.Printf("NewError: bad call from %s:%d: %v", file, line, args)
			return fmt.Errorf("unknown type %T, value %v in error call", arg, arg)
		}
	}

	// Propagate kind and transport status from the underlying error when not
	// provided in arguments.
	if prev, ok := e.Err.(*Error); ok {
		if e.Kind == ErrKindOther {
			e.Kind = prev.Kind
		}
		if e.StatusCode == 0 {
			e.StatusCode = prev.StatusCode
		}
		if e.Errors == nil {
			e.Errors = prev.Errors
		}
	}

	return e
}

// WrapError is a convenient wrapper to build an Error value from an
// underlying error with a message.
func WrapError(err error, message string) error {
	return NewError(message, err)
}

// WrapErrorf is similar to WrapError but with the format specifier.
func WrapErrorf(err error, format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...), err)
}

// KindOf returns the kind of an error value, or ErrKindOther when err is not
// an *Error built by this package.
func KindOf(err error) ErrKind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return ErrKindOther
}

// Error implements Go's error interface.
func (e *Error) Error() string {
	var b strings.Builder
	e.printError(&b, nil)
	return b.String()
}

func (e *Error) printError(b *strings.Builder, nextErr *Error) {
	// If the previous error was also one of ours, suppress duplications so the
	// message won't contain the same kind or status twice.
	initialLen := b.Len()

	// pad appends str to the buffer if the buffer already has some data.
	pad := func(str string) {
		if b.Len() == initialLen {
			return
		}
		b.WriteString(str)
	}

	if len(e.Op) > 0 {
		b.WriteString(string(e.Op))
	}

	if len(e.Message) > 0 {
		pad(": ")
		b.WriteString(e.Message)
	}

	if e.Kind != ErrKindOther {
		if nextErr == nil || nextErr.Kind != e.Kind {
			pad(": ")
			b.WriteString(e.Kind.String())
		}
	}

	if e.StatusCode != 0 {
		if nextErr == nil || nextErr.StatusCode != e.StatusCode {
			pad(" ")
			b.WriteString("(status ")
			b.WriteString(strconv.Itoa(e.StatusCode))
			b.WriteString(")")
		}
	}

	if len(e.Errors) > 0 {
		pad(": ")
		b.WriteString("[")
		for i := range e.Errors {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(e.Errors[i].String())
		}
		b.WriteString("]")
	}

	if e.Err != nil {
		if prev, ok := e.Err.(*Error); ok {
			// Indent on new line if we are cascading non-empty Error.
			pad(":\n  ")
			prev.printError(b, e)
		} else {
			pad(": ")
			b.WriteString(e.Err.Error())
		}
	}
}
