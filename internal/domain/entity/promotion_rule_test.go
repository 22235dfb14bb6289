package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestRule_SinCotasSiempreAplica(t *testing.T) {
	r := &PromotionRule{Scope: RuleScopeProduct}
	assert.True(t, r.IsApplicable(1, decimal.Zero))
}

func TestRule_MinQuantity(t *testing.T) {
	r := &PromotionRule{MinQuantity: int64Ptr(3)}
	assert.False(t, r.IsApplicable(2, decimal.NewFromInt(10000)))
	assert.True(t, r.IsApplicable(3, decimal.NewFromInt(10000)), "la cota es inclusiva")
	assert.True(t, r.IsApplicable(4, decimal.NewFromInt(10000)))
}

func TestRule_MinAmount(t *testing.T) {
	r := &PromotionRule{MinAmount: decPtr(5000)}
	assert.False(t, r.IsApplicable(1, decimal.NewFromInt(4999)))
	assert.True(t, r.IsApplicable(1, decimal.NewFromInt(5000)), "la cota es inclusiva")
}

func TestRule_AmbasCotas(t *testing.T) {
	r := &PromotionRule{MinQuantity: int64Ptr(2), MinAmount: decPtr(5000)}
	assert.False(t, r.IsApplicable(1, decimal.NewFromInt(9000)), "falla por cantidad")
	assert.False(t, r.IsApplicable(5, decimal.NewFromInt(100)), "falla por monto")
	assert.True(t, r.IsApplicable(2, decimal.NewFromInt(5000)))
}

func TestRulesApplicable_ConjuntoVacioAplica(t *testing.T) {
	assert.True(t, RulesApplicable(nil, 1, decimal.Zero))
	assert.True(t, RulesApplicable([]*PromotionRule{}, 1, decimal.Zero))
}

func TestRulesApplicable_ANDLogico(t *testing.T) {
	rules := []*PromotionRule{
		{MinQuantity: int64Ptr(2)},
		{MinAmount: decPtr(5000)},
	}
	assert.True(t, RulesApplicable(rules, 2, decimal.NewFromInt(5000)))
	assert.False(t, RulesApplicable(rules, 1, decimal.NewFromInt(5000)), "una regla que falla veta el conjunto")
	assert.False(t, RulesApplicable(rules, 2, decimal.NewFromInt(4000)))
}
