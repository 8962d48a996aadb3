package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/growth-cli/internal/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadInfluencers_YAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "roster.yaml", `
influencers:
  - id: inf-1
    name: Rohan Plays
    handle: "@rohanplays"
    followers: 45000
    primary_game: bgmi
    niche: [bgmi, free fire]
    languages: [hindi]
    regions: [IN-UP]
    platforms:
      - name: youtube
        engagement_rate: 5.5
    collaborations:
      - campaign_id: old-1
        roi: 150
    status: PENDING
  - id: inf-2
    name: Kavya
    followers: 8000
    primary_game: free fire
`)

	list, err := LoadInfluencers(path)
	require.NoError(t, err)
	require.Len(t, list, 2)

	first := list[0]
	assert.Equal(t, "inf-1", first.ID)
	assert.Equal(t, int64(45000), first.Followers)
	assert.Equal(t, []string{"bgmi", "free fire"}, first.Niche)
	assert.Equal(t, 5.5, first.Platforms[0].EngagementRate)
	assert.Equal(t, 150.0, first.Collaborations[0].ROI)
	assert.Equal(t, model.StatusPending, first.Status)
	assert.Equal(t, model.TierNano, list[1].EffectiveTier())
}

func TestLoadInfluencers_JSONRootList(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "roster.json", `[{"id":"inf-9","name":"Arjun","followers":120000,"primary_game":"valorant"}]`)

	list, err := LoadInfluencers(path)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Arjun", list[0].Name)
}

func TestLoadInfluencers_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"invalid record", "r.yaml", "- id: inf-1\n  name: X\n", "record 1"},
		{"unknown status", "r.yaml", "- {id: a, name: A, primary_game: bgmi, status: GHOSTED}\n", `unknown status "GHOSTED"`},
		{"wrong key", "r.yaml", "people: []\n", `no "influencers" list`},
		{"scalar", "r.yaml", "hello\n", "expected a list"},
		{"empty", "r.yaml", "", "is empty"},
		{"bad yaml", "r.yaml", "- [unclosed\n", "parse"},
		{"wrong extension", "r.txt", "[]", "unsupported file type"},
		{"duplicate id", "r.yaml", "- {id: a, name: A, primary_game: bgmi}\n- {id: b, name: B, primary_game: bgmi}\n- {id: a, name: C, primary_game: bgmi}\n", `record 3 reuses id "a" from record 1`},
		{"nan engagement", "r.yaml", "- {id: a, name: A, primary_game: bgmi, platforms: [{name: youtube, engagement_rate: .nan}]}\n", "engagement_rate must be between 0 and 100"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadInfluencers(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := LoadInfluencers(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadCampaign(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "campaign.yaml", `
id: bgmi-monsoon-24
name: BGMI Monsoon Cup
game: bgmi
target_languages: [hindi, english]
target_regions: [IN-UP]
min_fit_score: 40
`)
	c, err := LoadCampaign(path)
	require.NoError(t, err)
	assert.Equal(t, "bgmi-monsoon-24", c.ID)
	assert.Equal(t, []string{"hindi", "english"}, c.TargetLanguages)
	assert.Equal(t, 40.0, c.MinFitScore)

	_, err = LoadCampaign(writeFile(t, "bad.yaml", "name: no id\n"))
	assert.ErrorContains(t, err, "id is required")
}

func TestLoadVelocityPlan(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "plan.yaml", `
plan:
  - {month: 1, phase: foundation, target_domains: 8}
  - {month: 2, phase: growth, target_domains: 12}
`)
	plan, err := LoadVelocityPlan(path)
	require.NoError(t, err)
	assert.Equal(t, []model.VelocityPhase{
		{Month: 1, Phase: "foundation", TargetDomains: 8},
		{Month: 2, Phase: "growth", TargetDomains: 12},
	}, plan)

	_, err = LoadVelocityPlan(writeFile(t, "bad.yaml", "- {month: 0, target_domains: 3}\n"))
	assert.ErrorContains(t, err, "month must be >= 1")
}

func TestLoadProspects_YAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "prospects.yml", `
prospects:
  - domain: sportskeeda.com
    domain_authority: 75
    relevance_score: 9
    monthly_traffic: 600000
    link_type: news
    preferred_anchors: [branded]
`)
	list, err := LoadProspects(path)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, model.LinkTypeNews, list[0].LinkType)
	assert.Equal(t, []model.AnchorCategory{model.AnchorBranded}, list[0].PreferredAnchors)
}

func TestLoadProspects_CSV(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "prospects.csv", `Domain,Domain Authority,relevance_score,monthly_traffic,spam_score,link_type,requires_payment,existing_relationship,preferred_anchors,notes
# exported from the outreach sheet
sportskeeda.com,75,9,600000,0,News,no,yes,branded;naked,
gamerforum.in,22,6,15000,35,forum,,,,"Mods prefer ""guides"""
`)
	list, err := LoadProspects(path)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, model.Prospect{
		Domain: "sportskeeda.com", DomainAuthority: 75, RelevanceScore: 9, MonthlyTraffic: 600000,
		LinkType: model.LinkTypeNews, ExistingRelationship: true,
		PreferredAnchors: []model.AnchorCategory{model.AnchorBranded, model.AnchorNaked},
	}, list[0])
	assert.Equal(t, 35.0, list[1].SpamScore)
	assert.Equal(t, `Mods prefer "guides"`, list[1].Notes)
	assert.False(t, list[1].RequiresPayment)
}

func TestLoadProspects_CSVErrors(t *testing.T) {
	t.Parallel()

	_, err := LoadProspects(writeFile(t, "p.csv", "domain,link_type,domain_authority\na.com,blog,lots\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "domain_authority")

	_, err = LoadProspects(writeFile(t, "p.csv", "domain,authority\na.com,50\n"))
	assert.ErrorContains(t, err, `missing required column "link_type"`)

	_, err = LoadProspects(writeFile(t, "p.csv", "domain,link_type,domain_authority\na.com,blog,150\n"))
	assert.ErrorContains(t, err, "domain_authority must be between 0 and 100")

	_, err = LoadProspects(writeFile(t, "p.csv", "domain,link_type,requires_payment\na.com,blog,maybe\n"))
	assert.ErrorContains(t, err, "is not a boolean")

	_, err = LoadProspects(writeFile(t, "p.csv", "domain,link_type,domain_authority,relevance_score\nx.com,blog,NaN,5\n"))
	assert.ErrorContains(t, err, "domain_authority must be between 0 and 100")

	_, err = LoadProspects(writeFile(t, "p.yaml", "- {domain: x.com, link_type: blog, relevance_score: .nan}\n"))
	assert.ErrorContains(t, err, "relevance_score must be between 0 and 10")
}

func TestLoadProspects_XLSX(t *testing.T) {
	t.Parallel()

	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Prospects")
	require.NoError(t, err)
	for _, r := range [][]string{
		{"domain", "domain_authority", "link_type", "requires_payment"},
		{"esportsblog.in", "45", "pr", "true"},
	} {
		row := sheet.AddRow()
		for _, v := range r {
			row.AddCell().SetString(v)
		}
	}
	path := filepath.Join(t.TempDir(), "prospects.xlsx")
	require.NoError(t, f.Save(path))

	list, err := LoadProspects(path)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "esportsblog.in", list[0].Domain)
	assert.Equal(t, 45.0, list[0].DomainAuthority)
	assert.Equal(t, model.LinkTypePR, list[0].LinkType)
	assert.True(t, list[0].RequiresPayment)
}
