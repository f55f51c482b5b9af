package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/micha7777-hub/finadvisorbot-autopilot-ai/internal/model"
)

func TestStrategyService_Generate_Allocation(t *testing.T) {
	tests := []struct {
		name     string
		config   model.StrategyConfig
		expected model.Allocation
	}{
		{
			name: "conservative baseline",
			config: model.StrategyConfig{
				RiskTolerance: model.RiskConservative,
				Horizon:       model.HorizonMedium,
				Goal:          model.GoalGrowth,
			},
			expected: model.Allocation{Stocks: 30, Bonds: 60, Cash: 10},
		},
		{
			name: "balanced baseline",
			config: model.StrategyConfig{
				RiskTolerance: model.RiskBalanced,
				Horizon:       model.HorizonMedium,
				Goal:          model.GoalGrowth,
			},
			expected: model.Allocation{Stocks: 60, Bonds: 35, Cash: 5},
		},
		{
			name: "aggressive long horizon drains cash into bonds",
			config: model.StrategyConfig{
				RiskTolerance: model.RiskAggressive,
				Horizon:       model.HorizonLong,
				Goal:          model.GoalGrowth,
			},
			expected: model.Allocation{Stocks: 90, Bonds: 10, Cash: 0},
		},
		{
			name: "income shifts stocks into bonds",
			config: model.StrategyConfig{
				RiskTolerance: model.RiskBalanced,
				Horizon:       model.HorizonMedium,
				Goal:          model.GoalIncome,
			},
			expected: model.Allocation{Stocks: 50, Bonds: 45, Cash: 5},
		},
		{
			name: "preservation piles into cash",
			config: model.StrategyConfig{
				RiskTolerance: model.RiskConservative,
				Horizon:       model.HorizonShort,
				Goal:          model.GoalPreservation,
			},
			expected: model.Allocation{Stocks: 0, Bonds: 55, Cash: 45},
		},
	}

	svc := NewStrategyService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy, err := svc.Generate(context.Background(), tt.config)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, strategy.Allocation)
			assert.Equal(t, 100, strategy.Allocation.Stocks+strategy.Allocation.Bonds+strategy.Allocation.Cash)
		})
	}
}

func TestStrategyService_Generate_AllocationAlwaysSumsTo100(t *testing.T) {
	svc := NewStrategyService()
	for _, risk := range []model.RiskTolerance{model.RiskConservative, model.RiskBalanced, model.RiskAggressive} {
		for _, horizon := range []model.InvestmentHorizon{model.HorizonShort, model.HorizonMedium, model.HorizonLong} {
			for _, goal := range []model.InvestmentGoal{model.GoalGrowth, model.GoalIncome, model.GoalPreservation} {
				strategy, err := svc.Generate(context.Background(), model.StrategyConfig{
					RiskTolerance: risk,
					Horizon:       horizon,
					Goal:          goal,
				})
				assert.NoError(t, err)
				alloc := strategy.Allocation
				assert.Equal(t, 100, alloc.Stocks+alloc.Bonds+alloc.Cash,
					"risk=%s horizon=%s goal=%s", risk, horizon, goal)
				assert.GreaterOrEqual(t, alloc.Stocks, 0)
				assert.GreaterOrEqual(t, alloc.Bonds, 0)
				assert.GreaterOrEqual(t, alloc.Cash, 0)
			}
		}
	}
}

func TestStrategyService_Generate_ReturnsAndProjection(t *testing.T) {
	svc := NewStrategyService()
	strategy, err := svc.Generate(context.Background(), model.StrategyConfig{
		RiskTolerance:     model.RiskBalanced,
		Horizon:           model.HorizonMedium,
		Goal:              model.GoalGrowth,
		InitialInvestment: decimal.NewFromInt(10000),
	})

	assert.NoError(t, err)
	assert.Equal(t, 8.0, strategy.ExpectedReturn)
	assert.Equal(t, 9.0, strategy.ExpectedRisk)
	// 10000 * 1.08^5
	assert.True(t, strategy.ProjectedValue.Equal(decimal.NewFromFloat(14693.28)),
		"got %s", strategy.ProjectedValue)
}

func TestStrategyService_Generate_Performance(t *testing.T) {
	svc := NewStrategyService()
	strategy, err := svc.Generate(context.Background(), model.StrategyConfig{
		RiskTolerance: model.RiskAggressive,
		Horizon:       model.HorizonLong,
		Goal:          model.GoalGrowth,
	})

	assert.NoError(t, err)
	assert.Len(t, strategy.Performance, 6)
	assert.Equal(t, 100.0, strategy.Performance[0].Agent)
	assert.Equal(t, 100.0, strategy.Performance[0].Benchmark)
	for i := 1; i < len(strategy.Performance); i++ {
		assert.Greater(t, strategy.Performance[i].Agent, strategy.Performance[i-1].Agent)
		// the agent line compounds faster than the benchmark
		assert.GreaterOrEqual(t, strategy.Performance[i].Agent, strategy.Performance[i].Benchmark)
	}
}

func TestStrategyService_Generate_Recommendations(t *testing.T) {
	svc := NewStrategyService()

	growth, err := svc.Generate(context.Background(), model.StrategyConfig{
		RiskTolerance: model.RiskBalanced,
		Horizon:       model.HorizonMedium,
		Goal:          model.GoalGrowth,
	})
	assert.NoError(t, err)
	assert.Len(t, growth.Recommendations, 3)
	assert.Equal(t, "VTI", growth.Recommendations[0].Symbol)

	income, err := svc.Generate(context.Background(), model.StrategyConfig{
		RiskTolerance: model.RiskBalanced,
		Horizon:       model.HorizonMedium,
		Goal:          model.GoalIncome,
	})
	assert.NoError(t, err)
	assert.Equal(t, "VYM", income.Recommendations[0].Symbol)

	// a slice with zero weight gets no recommendation
	noCash, err := svc.Generate(context.Background(), model.StrategyConfig{
		RiskTolerance: model.RiskAggressive,
		Horizon:       model.HorizonLong,
		Goal:          model.GoalGrowth,
	})
	assert.NoError(t, err)
	for _, rec := range noCash.Recommendations {
		assert.NotEqual(t, "cash", rec.AssetClass)
		assert.Greater(t, rec.Weight, 0)
	}
}
