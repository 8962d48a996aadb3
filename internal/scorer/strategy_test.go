package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/growth-cli/internal/model"
	"github.com/sells-group/growth-cli/internal/outreach"
)

func TestProspectTierFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, model.ProspectTier1, ProspectTierFor(60))
	assert.Equal(t, model.ProspectTier1, ProspectTierFor(95))
	assert.Equal(t, model.ProspectTier2, ProspectTierFor(59.9))
	assert.Equal(t, model.ProspectTier2, ProspectTierFor(40))
	assert.Equal(t, model.ProspectTier3, ProspectTierFor(39.9))
	assert.Equal(t, model.ProspectTier3, ProspectTierFor(0))
}

func TestUrgencyFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, UrgencyImmediate, UrgencyFor(80))
	assert.Equal(t, UrgencyThisWeek, UrgencyFor(79.99))
	assert.Equal(t, UrgencyThisWeek, UrgencyFor(60))
	assert.Equal(t, UrgencyBacklog, UrgencyFor(59.99))
}

func TestRecommendOutreachStrategy(t *testing.T) {
	t.Parallel()

	t.Run("tier1 news site", func(t *testing.T) {
		t.Parallel()
		p := model.Prospect{
			Domain: "sportskeeda.com", DomainAuthority: 75, RelevanceScore: 9,
			MonthlyTraffic: 600_000, LinkType: model.LinkTypeNews,
		}
		s := RecommendOutreachStrategy(&p)

		assert.Equal(t, "sportskeeda.com", s.Domain)
		assert.Equal(t, model.ProspectTier1, s.Tier)
		assert.InDelta(t, 84.5, s.Score, 0.001)
		assert.Equal(t, UrgencyImmediate, s.Urgency)
		assert.Equal(t, []model.AnchorCategory{model.AnchorBranded, model.AnchorNaked}, s.RecommendedAnchors)
		assert.Contains(t, s.Messaging, "sportskeeda.com")
		assert.Contains(t, s.Messaging, outreach.DefaultBrand)
		assert.NotContains(t, s.Messaging, "{")
	})

	t.Run("tier2 this week", func(t *testing.T) {
		t.Parallel()
		p := model.Prospect{
			Domain: "esportsblog.in", DomainAuthority: 45, RelevanceScore: 8,
			MonthlyTraffic: 200_000, LinkType: model.LinkTypePR, ExistingRelationship: true,
		}
		s := RecommendOutreachStrategy(&p)

		assert.Equal(t, model.ProspectTier2, s.Tier)
		assert.InDelta(t, 66.5, s.Score, 0.001)
		assert.Equal(t, UrgencyThisWeek, s.Urgency)
		assert.Equal(t, []model.AnchorCategory{model.AnchorBranded, model.AnchorPartial, model.AnchorNaked}, s.RecommendedAnchors)
		assert.Contains(t, s.Messaging, "guide")
	})

	t.Run("tier3 backlog", func(t *testing.T) {
		t.Parallel()
		p := model.Prospect{Domain: "smallforum.net", DomainAuthority: 12, LinkType: model.LinkTypeForum}
		s := RecommendOutreachStrategy(&p)

		assert.Equal(t, model.ProspectTier3, s.Tier)
		assert.Equal(t, UrgencyBacklog, s.Urgency)
		assert.Equal(t, []model.AnchorCategory{model.AnchorNaked, model.AnchorGeneric, model.AnchorBranded}, s.RecommendedAnchors)
		assert.Contains(t, s.Messaging, "smallforum.net")
	})

	t.Run("prospect overrides", func(t *testing.T) {
		t.Parallel()
		preferred := []model.AnchorCategory{model.AnchorExact}
		p := model.Prospect{
			Domain: "custom.example", DomainAuthority: 70, LinkType: model.LinkTypeBlog,
			PreferredAnchors: preferred, Notes: "Pitch the Diwali cup recap.",
		}
		s := RecommendOutreachStrategy(&p)

		assert.Equal(t, preferred, s.RecommendedAnchors)
		assert.Equal(t, "Pitch the Diwali cup recap.", s.Messaging)

		s.RecommendedAnchors[0] = model.AnchorBranded
		assert.Equal(t, model.AnchorExact, preferred[0])
	})
}
