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

type floatFixture struct {
	Value graphql.Float `json:"value"`
}

var _ = Describe("Float", func() {
	It("parses textual forms", func() {
		value, err := graphql.ParseFloat("42.5")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value.Float64()).Should(Equal(42.5))

		_, err = graphql.ParseFloat("fortytwo")
		Expect(graphql.KindOf(err)).Should(Equal(graphql.ErrKindInvalidInput))
	})

	It("round-trips text", func() {
		value, err := graphql.ParseFloat("42.5")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value.String()).Should(Equal("42.5"))
	})

	It("decodes a JSON number", func() {
		var fixture floatFixture
		Expect(jsoniter.UnmarshalFromString(`{ "value": 42.5 }`, &fixture)).Should(Succeed())
		Expect(fixture.Value.Float64()).Should(Equal(42.5))

		Expect(jsoniter.UnmarshalFromString(`{ "value": 42 }`, &fixture)).Should(Succeed())
		Expect(fixture.Value.Float64()).Should(Equal(42.0))
	})

	It("rejects non-numeric JSON values", func() {
		for _, s := range []string{`{ "value": "42.5" }`, `{ "value": true }`, `{ "value": [] }`} {
			var fixture floatFixture
			Expect(jsoniter.UnmarshalFromString(s, &fixture)).ShouldNot(Succeed())
		}
	})

	It("serializes as a JSON number", func() {
		Expect(jsoniter.MarshalToString(floatFixture{Value: 42.5})).Should(Equal(`{"value":42.5}`))
	})
})
