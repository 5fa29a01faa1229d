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

package graphql_test

import (
	"github.com/botobag/selene/graphql"

	jsoniter "github.com/json-iterator/go"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type intFixture struct {
	Value graphql.Int `json:"value"`
}

func expectIntParse(s string, expected int32) {
	var fixture intFixture
	ExpectWithOffset(1, jsoniter.UnmarshalFromString(s, &fixture)).Should(Succeed())
	ExpectWithOffset(1, fixture.Value.Int32()).Should(Equal(expected))
}

func expectIntParseError(s string) {
	var fixture intFixture
	ExpectWithOffset(1, jsoniter.UnmarshalFromString(s, &fixture)).ShouldNot(Succeed())
}

var _ = Describe("Int", func() {
	It("parses from decimal text", func() {
		value, err := graphql.ParseInt("42")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(Equal(graphql.Int(42)))
	})

	It("rejects malformed text as invalid input", func() {
		_, err := graphql.ParseInt("fortytwo")
		Expect(graphql.KindOf(err)).Should(Equal(graphql.ErrKindInvalidInput))
	})

	It("round-trips text", func() {
		value, err := graphql.ParseInt("-1200")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value.String()).Should(Equal("-1200"))
	})

	It("decodes any JSON integer representable in 32 bits", func() {
		expectIntParse(`{ "value": 42 }`, 42)
		expectIntParse(`{ "value": -42 }`, -42)
		expectIntParse(`{ "value": 32000 }`, 32000)
		expectIntParse(`{ "value": -32000 }`, -32000)
		expectIntParse(`{ "value": 66000 }`, 66000)
		expectIntParse(`{ "value": -66000 }`, -66000)
		expectIntParse(`{ "value": 2147483647 }`, 2147483647)
		expectIntParse(`{ "value": -2147483648 }`, -2147483648)
	})

	It("rejects values requiring more than 32 bits", func() {
		expectIntParseError(`{ "value": 2147483648 }`)
		expectIntParseError(`{ "value": -2147483649 }`)
		expectIntParseError(`{ "value": 4000000000 }`)
	})

	It("rejects non-integer JSON values", func() {
		expectIntParseError(`{ "value": 1.5 }`)
		expectIntParseError(`{ "value": "42" }`)
		expectIntParseError(`{ "value": true }`)
		expectIntParseError(`{ "value": [1, 2, 3] }`)
		expectIntParseError(`{ "value": {} }`)
	})

	It("serializes as a JSON number", func() {
		Expect(jsoniter.MarshalToString(intFixture{Value: 42})).Should(Equal(`{"value":42}`))
	})

	It("renders fixed-point decimals", func() {
		Expect(graphql.Int(1).AsDecimal(2)).Should(Equal("0.01"))
		Expect(graphql.Int(12).AsDecimal(2)).Should(Equal("0.12"))
		Expect(graphql.Int(4212).AsDecimal(2)).Should(Equal("42.12"))
		Expect(graphql.Int(-4212).AsDecimal(2)).Should(Equal("-42.12"))
	})
})
