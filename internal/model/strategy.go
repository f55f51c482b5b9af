package model

import "github.com/shopspring/decimal"

// RiskTolerance, InvestmentHorizon and InvestmentGoal are the closed inputs
// to strategy generation.
type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskBalanced     RiskTolerance = "balanced"
	RiskAggressive   RiskTolerance = "aggressive"
)

type InvestmentHorizon string

const (
	HorizonShort  InvestmentHorizon = "short"
	HorizonMedium InvestmentHorizon = "medium"
	HorizonLong   InvestmentHorizon = "long"
)

type InvestmentGoal string

const (
	GoalGrowth       InvestmentGoal = "growth"
	GoalIncome       InvestmentGoal = "income"
	GoalPreservation InvestmentGoal = "preservation"
)

// StrategyConfig is the user-chosen configuration for a generated strategy.
type StrategyConfig struct {
	RiskTolerance     RiskTolerance     `json:"risk_tolerance"`
	Horizon           InvestmentHorizon `json:"investment_horizon"`
	Goal              InvestmentGoal    `json:"investment_goal"`
	InitialInvestment decimal.Decimal   `json:"initial_investment"`
}

// Allocation is a stocks/bonds/cash split in whole percent, summing to 100.
type Allocation struct {
	Stocks int `json:"stocks"`
	Bonds  int `json:"bonds"`
	Cash   int `json:"cash"`
}

// PerformancePoint compares the agent against a benchmark at a date, both
// indexed to 100 at the start.
type PerformancePoint struct {
	Date      string  `json:"date"`
	Agent     float64 `json:"rl_agent"`
	Benchmark float64 `json:"benchmark"`
}

// Recommendation is a suggested instrument for one slice of the allocation.
type Recommendation struct {
	Symbol     string `json:"symbol"`
	Name       string `json:"name"`
	AssetClass string `json:"asset_class"`
	Weight     int    `json:"weight"`
}

// Strategy is a generated investment strategy.
type Strategy struct {
	Allocation      Allocation         `json:"allocation"`
	Performance     []PerformancePoint `json:"performance"`
	ExpectedReturn  float64            `json:"expected_return"`
	ExpectedRisk    float64            `json:"expected_risk"`
	Recommendations []Recommendation   `json:"recommendations"`
	ProjectedValue  decimal.Decimal    `json:"projected_value"`
}
