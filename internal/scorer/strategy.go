package scorer

import (
	"strings"

	"github.com/sells-group/growth-cli/internal/model"
	"github.com/sells-group/growth-cli/internal/outreach"
)

// Outreach urgency buckets.
const (
	UrgencyImmediate = "immediate"
	UrgencyThisWeek  = "this week"
	UrgencyBacklog   = "backlog"
)

// Strategy is the recommended approach for one backlink prospect.
type Strategy struct {
	Domain             string                 `json:"domain"`
	Tier               model.ProspectTier     `json:"tier"`
	Score              float64                `json:"score"`
	Urgency            string                 `json:"urgency"`
	RecommendedAnchors []model.AnchorCategory `json:"recommended_anchors"`
	Messaging          string                 `json:"messaging"`
}

// ProspectTierFor buckets a domain authority into an outreach tier.
func ProspectTierFor(domainAuthority float64) model.ProspectTier {
	switch {
	case domainAuthority >= 60:
		return model.ProspectTier1
	case domainAuthority >= 40:
		return model.ProspectTier2
	default:
		return model.ProspectTier3
	}
}

// UrgencyFor maps a backlink score to an urgency bucket.
func UrgencyFor(score float64) string {
	switch {
	case score >= 80:
		return UrgencyImmediate
	case score >= 60:
		return UrgencyThisWeek
	default:
		return UrgencyBacklog
	}
}

// tierAnchors lists the safest anchor styles first.
var tierAnchors = map[model.ProspectTier][]model.AnchorCategory{
	model.ProspectTier1: {model.AnchorBranded, model.AnchorNaked},
	model.ProspectTier2: {model.AnchorBranded, model.AnchorPartial, model.AnchorNaked},
	model.ProspectTier3: {model.AnchorNaked, model.AnchorGeneric, model.AnchorBranded},
}

// RecommendOutreachStrategy derives tier, urgency, anchors and a pitch for a
// prospect. Prospect-supplied anchors and notes take precedence.
func RecommendOutreachStrategy(p *model.Prospect) Strategy {
	tier := ProspectTierFor(p.DomainAuthority)
	score := ScoreBacklinkOpportunity(p)

	anchors := p.PreferredAnchors
	if len(anchors) == 0 {
		anchors = tierAnchors[tier]
	}

	messaging := strings.TrimSpace(p.Notes)
	if messaging == "" {
		messaging = outreach.FormatEmailTemplate(outreach.TierPitch(tier).Body, map[string]string{
			"domain": p.Domain,
			"brand":  outreach.DefaultBrand,
		})
	}

	return Strategy{
		Domain:             p.Domain,
		Tier:               tier,
		Score:              score,
		Urgency:            UrgencyFor(score),
		RecommendedAnchors: append([]model.AnchorCategory(nil), anchors...),
		Messaging:          messaging,
	}
}
