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

// pageArgs is a reusable pagination argument block. Embedding it at several
// positions of one document must never produce colliding variable names.
type pageArgs struct {
	First graphql.Int
}

func (p pageArgs) ContributeFormal(buf *graphql.ParamBuffer, prefix string) {
	buf.PushFormal(prefix, "first", "Int")
}

func (p pageArgs) ContributeActual(buf *graphql.ParamBuffer, prefix string) {
	buf.PushActual(prefix, "first")
}

func (p pageArgs) ContributeVariables(buf *graphql.VariableBuffer, prefix string) error {
	return buf.PushVariable(prefix, "first", p.First)
}

// billsParams owns the arguments of the accountBills query nested under the
// bills field. The arguments live on the field itself, so it delegates with
// an empty path segment.
type billsParams struct {
	AccountBills pageArgs
}

func (p billsParams) ContributeFormal(buf *graphql.ParamBuffer, prefix string) {
	p.AccountBills.ContributeFormal(buf, graphql.JoinPrefix(prefix, ""))
}

func (p billsParams) ContributeActual(buf *graphql.ParamBuffer, prefix string) {
	p.AccountBills.ContributeActual(buf, graphql.JoinPrefix(prefix, ""))
}

func (p billsParams) ContributeVariables(buf *graphql.VariableBuffer, prefix string) error {
	return p.AccountBills.ContributeVariables(buf, graphql.JoinPrefix(prefix, ""))
}

// accountParams is the composite parameter tree of an account query with a
// nested paginated bills field.
type accountParams struct {
	AccountNumber graphql.ID
	Bills         billsParams
}

func (p accountParams) ContributeFormal(buf *graphql.ParamBuffer, prefix string) {
	buf.PushFormal(prefix, "accountNumber", "String!")
	p.Bills.ContributeFormal(buf, graphql.JoinPrefix(prefix, "bills"))
}

func (p accountParams) ContributeActual(buf *graphql.ParamBuffer, prefix string) {
	buf.PushActual(prefix, "accountNumber")
}

func (p accountParams) ContributeVariables(buf *graphql.VariableBuffer, prefix string) error {
	if err := buf.PushVariable(prefix, "accountNumber", p.AccountNumber); err != nil {
		return err
	}
	return p.Bills.ContributeVariables(buf, graphql.JoinPrefix(prefix, "bills"))
}

// ledgerParams embeds the same pageArgs block at two sibling positions.
type ledgerParams struct {
	Bills    pageArgs
	Payments pageArgs
}

func (p ledgerParams) ContributeFormal(buf *graphql.ParamBuffer, prefix string) {
	p.Bills.ContributeFormal(buf, graphql.JoinPrefix(prefix, "bills"))
	p.Payments.ContributeFormal(buf, graphql.JoinPrefix(prefix, "payments"))
}

func (p ledgerParams) ContributeActual(buf *graphql.ParamBuffer, prefix string) {
	p.Bills.ContributeActual(buf, graphql.JoinPrefix(prefix, "bills"))
	p.Payments.ContributeActual(buf, graphql.JoinPrefix(prefix, "payments"))
}

func (p ledgerParams) ContributeVariables(buf *graphql.VariableBuffer, prefix string) error {
	if err := p.Bills.ContributeVariables(buf, graphql.JoinPrefix(prefix, "bills")); err != nil {
		return err
	}
	return p.Payments.ContributeVariables(buf, graphql.JoinPrefix(prefix, "payments"))
}

var _ = Describe("JoinPrefix", func() {
	It("returns the segment with a trailing underscore at the root", func() {
		Expect(graphql.JoinPrefix("", "account")).Should(Equal("account_"))
	})

	It("appends the segment and a trailing underscore to a parent prefix", func() {
		Expect(graphql.JoinPrefix("account_", "bills")).Should(Equal("account_bills_"))
	})

	It("leaves the prefix unchanged for an empty segment", func() {
		Expect(graphql.JoinPrefix("account_", "")).Should(Equal("account_"))
		Expect(graphql.JoinPrefix("", "")).Should(Equal(""))
	})
})

var _ = Describe("QueryParams", func() {
	params := accountParams{
		AccountNumber: "A-1234",
		Bills: billsParams{
			AccountBills: pageArgs{First: 10},
		},
	}

	It("renders formal declarations for the whole tree from the root", func() {
		Expect(graphql.RenderFormal(params)).Should(
			Equal("($accountNumber: String!, $bills_first: Int)"))
	})

	It("renders actual bindings under a caller-supplied prefix", func() {
		Expect(graphql.RenderActual(params.Bills, "bills_")).Should(
			Equal("(first: $bills_first)"))
	})

	It("derives the innermost variable name from the path of field names", func() {
		var buf graphql.VariableBuffer
		Expect(params.Bills.ContributeVariables(&buf, graphql.JoinPrefix("account_", "bills"))).Should(Succeed())

		Expect(buf.ToMap()).Should(HaveKey("account_bills_first"))
	})

	It("flattens the variable payload with fully qualified names", func() {
		variables, err := graphql.RenderVariableMap(params)
		Expect(err).ShouldNot(HaveOccurred())

		Expect(variables).Should(Equal(map[string]jsoniter.RawMessage{
			"accountNumber": jsoniter.RawMessage(`"A-1234"`),
			"bills_first":   jsoniter.RawMessage("10"),
		}))
	})

	It("renders the variable payload as JSON", func() {
		variables, err := graphql.RenderVariables(params)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(variables).Should(MatchJSON(`{"accountNumber": "A-1234", "bills_first": 10}`))
	})

	It("never collides variable names for the same block at sibling positions", func() {
		ledger := ledgerParams{
			Bills:    pageArgs{First: 5},
			Payments: pageArgs{First: 7},
		}

		variables, err := graphql.RenderVariableMap(ledger)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(variables).Should(HaveLen(2))
		Expect(variables).Should(HaveKeyWithValue("bills_first", jsoniter.RawMessage("5")))
		Expect(variables).Should(HaveKeyWithValue("payments_first", jsoniter.RawMessage("7")))

		Expect(graphql.RenderFormal(ledger)).Should(
			Equal("($bills_first: Int, $payments_first: Int)"))
	})

	It("renders identically on repeated calls over an unmutated tree", func() {
		first := graphql.RenderFormal(params)
		second := graphql.RenderFormal(params)
		Expect(second).Should(Equal(first))

		firstActual := graphql.RenderActual(params, "account_")
		secondActual := graphql.RenderActual(params, "account_")
		Expect(secondActual).Should(Equal(firstActual))

		firstVars, err := graphql.RenderVariableMap(params)
		Expect(err).ShouldNot(HaveOccurred())
		secondVars, err := graphql.RenderVariableMap(params)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(secondVars).Should(Equal(firstVars))
	})
})

var _ = Describe("NoParams", func() {
	It("declares nothing, binds nothing and carries no variables", func() {
		Expect(graphql.RenderFormal(graphql.NoParams{})).Should(Equal(""))
		Expect(graphql.RenderActual(graphql.NoParams{}, "anything_")).Should(Equal(""))

		variables, err := graphql.RenderVariableMap(graphql.NoParams{})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(variables).Should(BeEmpty())
	})
})
