package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentimentFromScore(t *testing.T) {
	tests := []struct {
		score    float64
		expected Sentiment
	}{
		{0.92, SentimentVeryPositive},
		{0.85, SentimentVeryPositive},
		{0.84, SentimentPositive},
		{0.6, SentimentPositive},
		{0.59, SentimentNeutral},
		{0.31, SentimentNeutral},
		{0.3, SentimentNegative},
		{0.0, SentimentNegative},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, SentimentFromScore(tt.score), "score %v", tt.score)
	}
}
