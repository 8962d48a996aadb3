package scorer

import (
	"math"

	"github.com/sells-group/growth-cli/internal/model"
)

// Backlink score weights and ceilings.
const (
	authorityWeight   = 30
	relevanceWeight   = 30
	trafficWeight     = 15
	linkTypeWeightMax = 20
	relationshipBonus = 5
	spamPenaltyMax    = 20
	paymentPenalty    = 10
	trafficCeiling    = 500000
	relevanceCeiling  = 10
	percentageCeiling = 100
)

var linkTypeWeights = map[model.LinkType]float64{
	model.LinkTypeNews:      1.0,
	model.LinkTypePR:        0.9,
	model.LinkTypeBlog:      0.75,
	model.LinkTypeResource:  0.6,
	model.LinkTypeCommunity: 0.45,
	model.LinkTypeForum:     0.3,
}

// LinkTypeWeight returns the placement value of a link type in [0,1].
// Unknown types are worth 0.
func LinkTypeWeight(t model.LinkType) float64 {
	return linkTypeWeights[t]
}

// BacklinkComponents is the signed point contribution of each factor.
type BacklinkComponents struct {
	Authority    float64 `json:"authority"`
	Relevance    float64 `json:"relevance"`
	Traffic      float64 `json:"traffic"`
	LinkType     float64 `json:"link_type"`
	Relationship float64 `json:"relationship"`
	Spam         float64 `json:"spam"`
	Payment      float64 `json:"payment"`
}

// Sum returns the unclamped total of all components.
func (c BacklinkComponents) Sum() float64 {
	return c.Authority + c.Relevance + c.Traffic + c.LinkType + c.Relationship + c.Spam + c.Payment
}

// BacklinkBreakdown computes each factor's contribution. Inputs are clamped
// to their ranges before weighting.
func BacklinkBreakdown(p *model.Prospect) BacklinkComponents {
	da := clampRange(p.DomainAuthority, 0, percentageCeiling)
	rel := clampRange(p.RelevanceScore, 0, relevanceCeiling)
	traffic := clampRange(float64(p.MonthlyTraffic), 0, trafficCeiling)
	spam := clampRange(p.SpamScore, 0, percentageCeiling)

	c := BacklinkComponents{
		Authority: da / percentageCeiling * authorityWeight,
		Relevance: rel / relevanceCeiling * relevanceWeight,
		Traffic:   traffic / trafficCeiling * trafficWeight,
		LinkType:  LinkTypeWeight(p.LinkType) * linkTypeWeightMax,
		Spam:      -spam / percentageCeiling * spamPenaltyMax,
	}
	if p.ExistingRelationship {
		c.Relationship = relationshipBonus
	}
	if p.RequiresPayment {
		c.Payment = -paymentPenalty
	}
	return c
}

// ScoreBacklinkOpportunity rates a prospect from 0 to 100.
func ScoreBacklinkOpportunity(p *model.Prospect) float64 {
	return clamp100(BacklinkBreakdown(p).Sum())
}

func clampRange(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
