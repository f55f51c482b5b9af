package service

import (
	"context"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/model"
)

// StrategyService generates investment strategies. Generation is a
// deterministic function of the configuration; the "AI" label is cosmetic.
type StrategyService interface {
	Generate(ctx context.Context, config model.StrategyConfig) (*model.Strategy, error)
}

type strategyService struct{}

// NewStrategyService creates a new strategy service.
func NewStrategyService() StrategyService {
	return &strategyService{}
}

// annual return assumptions per risk level, agent vs benchmark.
var strategyReturns = map[model.RiskTolerance]struct {
	agent     float64
	benchmark float64
	risk      float64
}{
	model.RiskConservative: {agent: 0.05, benchmark: 0.04, risk: 4.0},
	model.RiskBalanced:     {agent: 0.08, benchmark: 0.06, risk: 9.0},
	model.RiskAggressive:   {agent: 0.12, benchmark: 0.09, risk: 15.0},
}

var horizonYears = map[model.InvestmentHorizon]int{
	model.HorizonShort:  2,
	model.HorizonMedium: 5,
	model.HorizonLong:   10,
}

func (s *strategyService) Generate(ctx context.Context, config model.StrategyConfig) (*model.Strategy, error) {
	alloc := buildAllocation(config)
	returns := strategyReturns[config.RiskTolerance]

	strategy := &model.Strategy{
		Allocation:      alloc,
		Performance:     buildPerformance(returns.agent, returns.benchmark),
		ExpectedReturn:  returns.agent * 100,
		ExpectedRisk:    returns.risk,
		Recommendations: buildRecommendations(alloc, config.Goal),
		ProjectedValue:  projectValue(config.InitialInvestment, returns.agent, horizonYears[config.Horizon]),
	}
	return strategy, nil
}

// buildAllocation derives the stocks/bonds/cash split from risk tolerance,
// then shifts it for horizon and goal, clamps each slice to [0,100] and
// normalizes so the result sums to exactly 100.
func buildAllocation(config model.StrategyConfig) model.Allocation {
	var stocks, bonds, cash int
	switch config.RiskTolerance {
	case model.RiskConservative:
		stocks, bonds, cash = 30, 60, 10
	case model.RiskAggressive:
		stocks, bonds, cash = 80, 15, 5
	default:
		stocks, bonds, cash = 60, 35, 5
	}

	switch config.Horizon {
	case model.HorizonShort:
		stocks -= 10
		bonds += 5
		cash += 5
	case model.HorizonLong:
		stocks += 10
		bonds -= 5
		cash -= 5
		if cash < 0 {
			bonds += cash
			cash = 0
		}
	}

	switch config.Goal {
	case model.GoalIncome:
		stocks -= 10
		bonds += 10
	case model.GoalPreservation:
		stocks -= 20
		bonds -= 10
		cash += 30
	}

	stocks = clamp(stocks)
	bonds = clamp(bonds)
	cash = clamp(cash)

	total := stocks + bonds + cash
	stocks = int(math.Round(float64(stocks) / float64(total) * 100))
	bonds = int(math.Round(float64(bonds) / float64(total) * 100))
	cash = 100 - stocks - bonds

	return model.Allocation{Stocks: stocks, Bonds: bonds, Cash: cash}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// buildPerformance produces six monthly agent-vs-benchmark points indexed to
// 100, ending in the current month.
func buildPerformance(agentAnnual, benchmarkAnnual float64) []model.PerformancePoint {
	const months = 6
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, -(months - 1), 0)

	points := make([]model.PerformancePoint, 0, months)
	for i := 0; i < months; i++ {
		points = append(points, model.PerformancePoint{
			Date:      start.AddDate(0, i, 0).Format("2006-01-02"),
			Agent:     round2(100 * math.Pow(1+agentAnnual/12, float64(i))),
			Benchmark: round2(100 * math.Pow(1+benchmarkAnnual/12, float64(i))),
		})
	}
	return points
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func buildRecommendations(alloc model.Allocation, goal model.InvestmentGoal) []model.Recommendation {
	recs := make([]model.Recommendation, 0, 3)
	if alloc.Stocks > 0 {
		symbol, name := "VTI", "Vanguard Total Stock Market ETF"
		if goal == model.GoalIncome {
			symbol, name = "VYM", "Vanguard High Dividend Yield ETF"
		}
		recs = append(recs, model.Recommendation{Symbol: symbol, Name: name, AssetClass: "stocks", Weight: alloc.Stocks})
	}
	if alloc.Bonds > 0 {
		recs = append(recs, model.Recommendation{Symbol: "BND", Name: "Vanguard Total Bond Market ETF", AssetClass: "bonds", Weight: alloc.Bonds})
	}
	if alloc.Cash > 0 {
		recs = append(recs, model.Recommendation{Symbol: "VMFXX", Name: "Vanguard Federal Money Market Fund", AssetClass: "cash", Weight: alloc.Cash})
	}
	return recs
}

// projectValue compounds the initial investment at the annual rate over the
// horizon, rounded to cents.
func projectValue(initial decimal.Decimal, annualReturn float64, years int) decimal.Decimal {
	factor := math.Pow(1+annualReturn, float64(years))
	return initial.Mul(decimal.NewFromFloat(factor)).Round(2)
}
