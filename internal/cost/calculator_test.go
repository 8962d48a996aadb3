package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/growth-cli/internal/config"
	"github.com/sells-group/growth-cli/internal/model"
)

func testRates() Rates {
	return Rates{
		model.TierMicro: {model.DeliverableVideo: 100, model.DeliverablePost: 10},
	}
}

func TestEstimateCollaborationCost(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(testRates())

	tests := []struct {
		name         string
		tier         model.Tier
		deliverables []model.Deliverable
		want         float64
	}{
		{
			name: "known tier and types",
			tier: model.TierMicro,
			deliverables: []model.Deliverable{
				{Type: model.DeliverableVideo, Quantity: 2},
				{Type: model.DeliverablePost, Quantity: 3},
			},
			want: 230,
		},
		{
			name:         "unknown type is free",
			tier:         model.TierMicro,
			deliverables: []model.Deliverable{{Type: "podcast", Quantity: 5}, {Type: model.DeliverableVideo, Quantity: 1}},
			want:         100,
		},
		{
			name:         "unknown tier is free",
			tier:         "GIGA",
			deliverables: []model.Deliverable{{Type: model.DeliverableVideo, Quantity: 1}},
			want:         0,
		},
		{
			name:         "negative quantity ignored",
			tier:         model.TierMicro,
			deliverables: []model.Deliverable{{Type: model.DeliverableVideo, Quantity: -3}, {Type: model.DeliverablePost, Quantity: 1}},
			want:         10,
		},
		{
			name: "no deliverables",
			tier: model.TierMicro,
			want: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, calc.EstimateCollaborationCost(tt.tier, tt.deliverables), 0.0001)
		})
	}
}

func TestEstimateCollaborationCost_DefaultRates(t *testing.T) {
	t.Parallel()

	got := EstimateCollaborationCost(model.TierMicro, []model.Deliverable{
		{Type: model.DeliverableVideo, Quantity: 2},
		{Type: model.DeliverableShort, Quantity: 3},
		{Type: model.DeliverableStream, Quantity: 1},
	})
	assert.Equal(t, 50000.0, got) // 2*10000 + 3*5000 + 15000

	assert.Equal(t, 300000.0, EstimateCollaborationCost(model.TierMacro, []model.Deliverable{{Type: model.DeliverableStream, Quantity: 1}}))
	assert.Equal(t, 500.0, EstimateCollaborationCost(model.TierNano, []model.Deliverable{{Type: model.DeliverablePost, Quantity: 1}}))
}

func TestDefaultRates_Complete(t *testing.T) {
	t.Parallel()

	rates := DefaultRates()
	kinds := []model.DeliverableType{model.DeliverableVideo, model.DeliverableShort, model.DeliverablePost, model.DeliverableStream}
	for _, tier := range model.AllTiers() {
		for _, k := range kinds {
			assert.Positive(t, rates[tier][k], "%s/%s", tier, k)
		}
	}

	// Rates grow with tier.
	calc := NewCalculator(rates)
	tiers := model.AllTiers()
	for i := 1; i < len(tiers); i++ {
		assert.Greater(t, calc.Rate(tiers[i], model.DeliverableVideo), calc.Rate(tiers[i-1], model.DeliverableVideo))
	}
}

func TestRatesFromConfig(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultRates(), RatesFromConfig(config.PricingConfig{}))

	rates := RatesFromConfig(config.PricingConfig{Rates: map[string]map[string]float64{
		"micro": {"Video": 12000, "post": 3000},
	}})
	calc := NewCalculator(rates)

	assert.Equal(t, 12000.0, calc.Rate(model.TierMicro, model.DeliverableVideo))
	assert.Equal(t, 3000.0, calc.Rate(model.TierMicro, model.DeliverablePost))
	assert.Equal(t, 0.0, calc.Rate(model.TierMicro, model.DeliverableShort), "configured tier replaces defaults")
	assert.Equal(t, 2000.0, calc.Rate(model.TierNano, model.DeliverableVideo), "other tiers keep defaults")
}
