// Package cost prices influencer collaborations and reports their ROI.
package cost

import (
	"math"
	"strings"

	"github.com/sells-group/growth-cli/internal/config"
	"github.com/sells-group/growth-cli/internal/model"
)

// DeliverableRates holds the per-unit price (INR) of each content type.
type DeliverableRates map[model.DeliverableType]float64

// Rates holds collaboration pricing by influencer tier.
type Rates map[model.Tier]DeliverableRates

// Calculator computes collaboration costs.
type Calculator struct {
	rates Rates
}

// NewCalculator creates a Calculator with the given rates.
func NewCalculator(rates Rates) *Calculator {
	return &Calculator{rates: rates}
}

// Rate returns the unit price for a tier and deliverable type, or 0 if
// either is unknown.
func (c *Calculator) Rate(tier model.Tier, kind model.DeliverableType) float64 {
	return c.rates[tier][kind]
}

// EstimateCollaborationCost sums rate × quantity over the deliverables.
// Unknown tiers or types and negative quantities contribute nothing.
func (c *Calculator) EstimateCollaborationCost(tier model.Tier, deliverables []model.Deliverable) float64 {
	rates, ok := c.rates[tier]
	if !ok {
		return 0
	}

	var total float64
	for _, d := range deliverables {
		if d.Quantity <= 0 {
			continue
		}
		total += rates[d.Type] * float64(d.Quantity)
	}
	return total
}

var defaultCalculator = NewCalculator(DefaultRates())

// EstimateCollaborationCost prices deliverables with the default rate card.
func EstimateCollaborationCost(tier model.Tier, deliverables []model.Deliverable) float64 {
	return defaultCalculator.EstimateCollaborationCost(tier, deliverables)
}

// DefaultRates returns the default rate card in INR.
func DefaultRates() Rates {
	return Rates{
		model.TierNano: {
			model.DeliverableVideo: 2000, model.DeliverableShort: 1000,
			model.DeliverablePost: 500, model.DeliverableStream: 3000,
		},
		model.TierMicro: {
			model.DeliverableVideo: 10000, model.DeliverableShort: 5000,
			model.DeliverablePost: 2500, model.DeliverableStream: 15000,
		},
		model.TierMid: {
			model.DeliverableVideo: 50000, model.DeliverableShort: 25000,
			model.DeliverablePost: 12000, model.DeliverableStream: 75000,
		},
		model.TierMacro: {
			model.DeliverableVideo: 200000, model.DeliverableShort: 100000,
			model.DeliverablePost: 50000, model.DeliverableStream: 300000,
		},
	}
}

// RatesFromConfig builds a rate card from configuration. Config keys are
// matched case-insensitively since viper lowercases map keys. An empty
// config yields DefaultRates; configured tiers replace the defaults for
// that tier only.
func RatesFromConfig(cfg config.PricingConfig) Rates {
	rates := DefaultRates()
	for tierKey, kinds := range cfg.Rates {
		tier := model.Tier(strings.ToUpper(strings.TrimSpace(tierKey)))
		dr := make(DeliverableRates, len(kinds))
		for kind, price := range kinds {
			dr[model.DeliverableType(strings.ToLower(strings.TrimSpace(kind)))] = price
		}
		rates[tier] = dr
	}
	return rates
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
