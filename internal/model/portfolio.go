package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/history"
)

// StockHolding is a single position snapshot. Price, change and sentiment are
// captured at add time and not live-updated from any feed.
type StockHolding struct {
	Symbol         string          `json:"symbol"`
	Name           string          `json:"name"`
	Shares         decimal.Decimal `json:"shares"`
	Price          decimal.Decimal `json:"price"`
	Change         float64         `json:"change"`
	ChangePercent  float64         `json:"change_percent"`
	CostBasis      decimal.Decimal `json:"cost_basis"`
	SentimentScore float64         `json:"sentiment_score"`
}

// MarketValue returns shares multiplied by the captured price.
func (h StockHolding) MarketValue() decimal.Decimal {
	return h.Shares.Mul(h.Price)
}

// Cost returns shares multiplied by the cost basis.
func (h StockHolding) Cost() decimal.Decimal {
	return h.Shares.Mul(h.CostBasis)
}

// HoldingList is an insertion-ordered set of holdings, unique by symbol,
// persisted as a single JSON column.
type HoldingList []StockHolding

// Scan implements sql.Scanner.
func (l *HoldingList) Scan(value interface{}) error {
	if value == nil {
		*l = HoldingList{}
		return nil
	}
	data, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("holdings column: unexpected type %T", value)
	}
	return json.Unmarshal(data, l)
}

// Value implements driver.Valuer.
func (l HoldingList) Value() (driver.Value, error) {
	if l == nil {
		l = HoldingList{}
	}
	return json.Marshal(l)
}

// Contains reports whether a holding with the exact symbol exists.
func (l HoldingList) Contains(symbol string) bool {
	for _, h := range l {
		if h.Symbol == symbol {
			return true
		}
	}
	return false
}

// Remove returns the list without the holding matching symbol. Removing an
// absent symbol is a no-op.
func (l HoldingList) Remove(symbol string) HoldingList {
	out := make(HoldingList, 0, len(l))
	for _, h := range l {
		if h.Symbol != symbol {
			out = append(out, h)
		}
	}
	return out
}

// ValueHistory is the trailing (date, total value) series, persisted as a
// single JSON column. Invariants are maintained by the history package.
type ValueHistory []history.Entry

// Scan implements sql.Scanner.
func (v *ValueHistory) Scan(value interface{}) error {
	if value == nil {
		*v = ValueHistory{}
		return nil
	}
	data, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("history column: unexpected type %T", value)
	}
	return json.Unmarshal(data, v)
}

// Value implements driver.Valuer.
func (v ValueHistory) Value() (driver.Value, error) {
	if v == nil {
		v = ValueHistory{}
	}
	return json.Marshal(v)
}

// Portfolio is the per-user portfolio record: holdings, uninvested cash and
// the trailing value history. One record per user; never deleted.
type Portfolio struct {
	UserID      uuid.UUID       `json:"user_id" gorm:"type:char(36);primaryKey"`
	Stocks      HoldingList     `json:"stocks" gorm:"type:json;not null"`
	CashBalance decimal.Decimal `json:"cash_balance" gorm:"type:decimal(20,2);not null"`
	History     ValueHistory    `json:"portfolio_history" gorm:"type:json;not null"`
	Version     int64           `json:"version" gorm:"not null;default:0"`
	LastUpdated time.Time       `json:"last_updated"`
}

// TotalValue is the sum of shares multiplied by price over all holdings,
// plus the cash balance.
func (p *Portfolio) TotalValue() decimal.Decimal {
	total := p.CashBalance
	for _, h := range p.Stocks {
		total = total.Add(h.MarketValue())
	}
	return total
}

// TotalCost is the sum of shares multiplied by cost basis over all holdings.
func (p *Portfolio) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, h := range p.Stocks {
		total = total.Add(h.Cost())
	}
	return total
}

// NewPortfolio synthesizes the empty portfolio returned on first access:
// no stocks, zero cash and a zero-valued history covering today and the
// preceding 30 days.
func NewPortfolio(userID uuid.UUID, now time.Time) *Portfolio {
	return &Portfolio{
		UserID:      userID,
		Stocks:      HoldingList{},
		CashBalance: decimal.Zero,
		History:     ValueHistory(history.Seed(now, 31)),
		LastUpdated: now,
	}
}
