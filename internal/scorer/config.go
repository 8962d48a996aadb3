// Package scorer implements influencer fit scoring and backlink prospect
// scoring for campaign planning.
package scorer

import (
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/growth-cli/internal/config"
)

// DefaultRecommendLimit caps recommendations when no limit is given.
const DefaultRecommendLimit = 10

// DefaultScorerConfig returns a config.ScorerConfig with sensible defaults.
// Weights sum to 100.
func DefaultScorerConfig() config.ScorerConfig {
	return config.ScorerConfig{
		GameMatchWeight:       30,
		AudienceMatchWeight:   25,
		EngagementWeight:      20,
		CostEfficiencyWeight:  15,
		PastPerformanceWeight: 10,

		RecommendLimit: DefaultRecommendLimit,
		MinFitScore:    0,
	}
}

// WeightSum returns the sum of all component weights.
func WeightSum(c config.ScorerConfig) float64 {
	return c.GameMatchWeight + c.AudienceMatchWeight + c.EngagementWeight +
		c.CostEfficiencyWeight + c.PastPerformanceWeight
}

// ValidateConfig checks that a ScorerConfig is internally consistent.
func ValidateConfig(c config.ScorerConfig) error {
	var errs []string

	// All weights must be non-negative.
	weights := map[string]float64{
		"game_match_weight":       c.GameMatchWeight,
		"audience_match_weight":   c.AudienceMatchWeight,
		"engagement_weight":       c.EngagementWeight,
		"cost_efficiency_weight":  c.CostEfficiencyWeight,
		"past_performance_weight": c.PastPerformanceWeight,
	}
	finiteWeights := true
	for name, w := range weights {
		switch {
		case !isFinite(w):
			errs = append(errs, fmt.Sprintf("%s must be a finite number", name))
			finiteWeights = false
		case w < 0:
			errs = append(errs, fmt.Sprintf("%s must be >= 0", name))
		}
	}

	if finiteWeights {
		sum := WeightSum(c)

		// Weights must sum to a positive number.
		if sum <= 0 {
			errs = append(errs, "weight sum must be > 0")
		}

		// Weights should be close to 100 (allow tolerance for floating-point).
		if math.Abs(sum-100) > 1 {
			errs = append(errs, fmt.Sprintf("weights should sum to 100, got %.1f", sum))
		}
	}

	// Thresholds.
	if !(c.MinFitScore >= 0 && c.MinFitScore <= 100) {
		errs = append(errs, "min_fit_score must be between 0 and 100")
	}
	if c.RecommendLimit < 0 {
		errs = append(errs, "recommend_limit must be >= 0")
	}

	if len(errs) > 0 {
		return eris.Errorf("scorer: config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// clamp100 bounds a score to [0,100] and rounds it to 2 decimal places.
// NaN maps to 0.
func clamp100(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Max(0, math.Min(100, v))
	return math.Round(v*100) / 100
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
