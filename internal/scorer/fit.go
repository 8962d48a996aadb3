package scorer

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/growth-cli/internal/config"
	"github.com/sells-group/growth-cli/internal/model"
)

// Fit component keys.
const (
	ComponentGameMatch       = "game_match"
	ComponentAudienceMatch   = "audience_match"
	ComponentEngagement      = "engagement"
	ComponentCostEfficiency  = "cost_efficiency"
	ComponentPastPerformance = "past_performance"
)

// FitScore holds the fit result for one influencer against one campaign.
type FitScore struct {
	InfluencerID    string             `json:"influencer_id"`
	Name            string             `json:"name"`
	Tier            model.Tier         `json:"tier"`
	Score           float64            `json:"score"`
	ComponentScores map[string]float64 `json:"component_scores"`
	Breakdown       map[string]string  `json:"breakdown"`
}

// FitScorer scores influencers against campaign briefs.
type FitScorer struct {
	cfg config.ScorerConfig
}

// NewFitScorer creates a FitScorer with the given weights.
func NewFitScorer(cfg config.ScorerConfig) *FitScorer {
	return &FitScorer{cfg: cfg}
}

var defaultFitScorer = NewFitScorer(DefaultScorerConfig())

// GetInfluencerTier returns the tier for a follower count.
func GetInfluencerTier(followers int64) model.Tier {
	return model.TierForFollowers(followers)
}

// ScoreInfluencerFit scores an influencer with the default weights.
func ScoreInfluencerFit(inf *model.Influencer, c *model.Campaign) FitScore {
	return defaultFitScorer.Score(inf, c)
}

// RecommendInfluencers ranks influencers with the default weights.
func RecommendInfluencers(influencers []model.Influencer, c *model.Campaign, limit int) []FitScore {
	return defaultFitScorer.Recommend(influencers, c, limit)
}

// Score computes the weighted 0-100 fit score and a per-factor breakdown.
func (s *FitScorer) Score(inf *model.Influencer, c *model.Campaign) FitScore {
	tier := inf.EffectiveTier()

	components := make(map[string]float64, 5)
	breakdown := make(map[string]string, 5)

	components[ComponentGameMatch], breakdown[ComponentGameMatch] = scoreGameMatch(inf, c.Game)
	components[ComponentAudienceMatch], breakdown[ComponentAudienceMatch] = scoreAudienceMatch(inf, c)
	components[ComponentEngagement], breakdown[ComponentEngagement] = scoreEngagement(inf.Platforms)
	components[ComponentCostEfficiency], breakdown[ComponentCostEfficiency] = scoreCostEfficiency(tier)
	components[ComponentPastPerformance], breakdown[ComponentPastPerformance] = scorePastPerformance(inf.Collaborations)

	weights := map[string]float64{
		ComponentGameMatch:       s.cfg.GameMatchWeight,
		ComponentAudienceMatch:   s.cfg.AudienceMatchWeight,
		ComponentEngagement:      s.cfg.EngagementWeight,
		ComponentCostEfficiency:  s.cfg.CostEfficiencyWeight,
		ComponentPastPerformance: s.cfg.PastPerformanceWeight,
	}

	var total float64
	for k, component := range components {
		total += component * weights[k]
	}

	// Normalize to 0-100 scale.
	if sum := WeightSum(s.cfg); sum > 0 {
		total = total / sum * 100
	}

	return FitScore{
		InfluencerID:    inf.ID,
		Name:            inf.Name,
		Tier:            tier,
		Score:           clamp100(total),
		ComponentScores: components,
		Breakdown:       breakdown,
	}
}

// Recommend scores every influencer still open to outreach, drops those
// under the campaign's minimum fit, and returns the best limit by score.
// Ties keep input order. limit <= 0 uses the configured recommend limit.
func (s *FitScorer) Recommend(influencers []model.Influencer, c *model.Campaign, limit int) []FitScore {
	if limit <= 0 {
		limit = s.cfg.RecommendLimit
	}
	if limit <= 0 {
		limit = DefaultRecommendLimit
	}
	minScore := s.cfg.MinFitScore
	if c.MinFitScore > 0 {
		minScore = c.MinFitScore
	}

	var (
		results []FitScore
		skipped int
	)
	for i := range influencers {
		status := influencers[i].EffectiveStatus()
		if status == model.StatusDeclined || status == model.StatusInactive {
			skipped++
			continue
		}
		fs := s.Score(&influencers[i], c)
		if fs.Score < minScore {
			continue
		}
		results = append(results, fs)
	}

	// Stable so equal scores keep roster order.
	sort.SliceStable(results, func(a, b int) bool { return results[a].Score > results[b].Score })
	if len(results) > limit {
		results = results[:limit]
	}

	zap.L().Info("scorer: influencer recommendations complete",
		zap.String("campaign_id", c.ID),
		zap.Int("candidates", len(influencers)),
		zap.Int("skipped_status", skipped),
		zap.Int("recommended", len(results)),
	)

	return results
}

// scoreGameMatch returns full credit for the primary game, 0.7 for a niche game.
func scoreGameMatch(inf *model.Influencer, game string) (float64, string) {
	if strings.EqualFold(strings.TrimSpace(inf.PrimaryGame), strings.TrimSpace(game)) {
		return 1.0, "primary"
	}
	if containsFold(inf.Niche, game) {
		return 0.7, "niche"
	}
	return 0, "none"
}

// scoreAudienceMatch returns 1.0 when both language and region overlap the
// campaign targets, 0.5 when only one does.
func scoreAudienceMatch(inf *model.Influencer, c *model.Campaign) (float64, string) {
	lang := intersectsFold(inf.Languages, c.TargetLanguages)
	region := intersectsFold(inf.Regions, c.TargetRegions)
	switch {
	case lang && region:
		return 1.0, "full"
	case lang || region:
		return 0.5, "partial"
	default:
		return 0, "none"
	}
}

// scoreEngagement buckets the mean platform engagement rate (percent).
func scoreEngagement(platforms []model.Platform) (float64, string) {
	if len(platforms) == 0 {
		return 0, "no_data"
	}
	var sum float64
	for _, p := range platforms {
		sum += p.EngagementRate
	}
	avg := sum / float64(len(platforms))
	switch {
	case avg >= 5:
		return 1.0, "excellent"
	case avg >= 3:
		return 0.7, "good"
	case avg >= 1:
		return 0.4, "average"
	default:
		return 0, "low"
	}
}

// scoreCostEfficiency favors micro creators: best reach per rupee.
func scoreCostEfficiency(tier model.Tier) (float64, string) {
	switch tier {
	case model.TierMicro:
		return 1.0, "optimal"
	case model.TierNano:
		return 0.8, "good"
	case model.TierMid:
		return 0.5, "moderate"
	default:
		return 0, "expensive"
	}
}

// scorePastPerformance buckets the mean ROI (percent) of past collaborations.
func scorePastPerformance(collabs []model.Collaboration) (float64, string) {
	if len(collabs) == 0 {
		return 0, "no_history"
	}
	var sum float64
	for _, c := range collabs {
		sum += c.ROI
	}
	avg := sum / float64(len(collabs))
	switch {
	case avg > 200:
		return 1.0, "excellent"
	case avg > 100:
		return 0.7, "good"
	case avg > 0:
		return 0.4, "positive"
	default:
		return 0, "poor"
	}
}

func containsFold(list []string, s string) bool {
	s = strings.TrimSpace(s)
	for _, v := range list {
		if strings.EqualFold(strings.TrimSpace(v), s) {
			return true
		}
	}
	return false
}

func intersectsFold(a, b []string) bool {
	for _, v := range a {
		if containsFold(b, v) {
			return true
		}
	}
	return false
}
