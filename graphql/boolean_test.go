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

type booleanFixture struct {
	Value graphql.Boolean `json:"value"`
}

var _ = Describe("Boolean", func() {
	It("parses textual forms", func() {
		value, err := graphql.ParseBoolean("true")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value.Bool()).Should(BeTrue())

		_, err = graphql.ParseBoolean("yes")
		Expect(graphql.KindOf(err)).Should(Equal(graphql.ErrKindInvalidInput))
	})

	It("formats to text", func() {
		Expect(graphql.Boolean(true).String()).Should(Equal("true"))
		Expect(graphql.Boolean(false).String()).Should(Equal("false"))
	})

	It("decodes a JSON boolean", func() {
		var fixture booleanFixture
		Expect(jsoniter.UnmarshalFromString(`{ "value": true }`, &fixture)).Should(Succeed())
		Expect(fixture.Value.Bool()).Should(BeTrue())
	})

	It("rejects every other JSON value", func() {
		for _, s := range []string{`{ "value": 1 }`, `{ "value": "true" }`, `{ "value": [] }`, `{ "value": {} }`} {
			var fixture booleanFixture
			Expect(jsoniter.UnmarshalFromString(s, &fixture)).ShouldNot(Succeed())
		}
	})

	It("serializes as a JSON boolean", func() {
		Expect(jsoniter.MarshalToString(booleanFixture{Value: true})).Should(Equal(`{"value":true}`))
	})
})
