package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestHoldingList_ContainsAndRemove(t *testing.T) {
	list := HoldingList{
		{Symbol: "AAPL", Shares: decimal.NewFromInt(10)},
		{Symbol: "MSFT", Shares: decimal.NewFromInt(5)},
	}

	assert.True(t, list.Contains("AAPL"))
	// matching is exact, not case-insensitive
	assert.False(t, list.Contains("aapl"))
	assert.False(t, list.Contains("NVDA"))

	removed := list.Remove("AAPL")
	assert.Len(t, removed, 1)
	assert.Equal(t, "MSFT", removed[0].Symbol)

	unchanged := list.Remove("NVDA")
	assert.Len(t, unchanged, 2)
}

func TestHoldingList_ValueRoundTrip(t *testing.T) {
	list := HoldingList{
		{Symbol: "AAPL", Name: "Apple Inc.", Shares: decimal.NewFromInt(10), Price: decimal.NewFromFloat(183.86)},
	}

	raw, err := list.Value()
	assert.NoError(t, err)

	var out HoldingList
	assert.NoError(t, out.Scan(raw))
	assert.Len(t, out, 1)
	assert.Equal(t, "AAPL", out[0].Symbol)
	assert.True(t, out[0].Shares.Equal(decimal.NewFromInt(10)))
}

func TestHoldingList_ScanNil(t *testing.T) {
	var list HoldingList
	assert.NoError(t, list.Scan(nil))
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestPortfolio_Totals(t *testing.T) {
	p := &Portfolio{
		CashBalance: decimal.NewFromInt(1000),
		Stocks: HoldingList{
			{Symbol: "AAPL", Shares: decimal.NewFromInt(10), Price: decimal.NewFromInt(180), CostBasis: decimal.NewFromInt(150)},
			{Symbol: "MSFT", Shares: decimal.NewFromInt(5), Price: decimal.NewFromInt(400), CostBasis: decimal.NewFromInt(380)},
		},
	}

	assert.True(t, p.TotalValue().Equal(decimal.NewFromInt(4800)))
	assert.True(t, p.TotalCost().Equal(decimal.NewFromInt(3400)))
}

func TestNewPortfolio(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	p := NewPortfolio(userID, now)

	assert.Equal(t, userID, p.UserID)
	assert.Empty(t, p.Stocks)
	assert.True(t, p.CashBalance.IsZero())
	assert.Len(t, p.History, 31)
	assert.True(t, p.TotalValue().IsZero())
	assert.Equal(t, now, p.LastUpdated)
}
