package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/growth-cli/internal/keywords"
	"github.com/sells-group/growth-cli/internal/model"
)

const testCampaignYAML = `
id: bgmi-monsoon
name: BGMI Monsoon Cup
game: bgmi
target_languages: [hindi]
target_regions: [IN-UP]
`

const testRosterYAML = `
influencers:
  - id: inf-1
    name: Rohan Plays
    handle: rohanplays
    followers: 45000
    primary_game: bgmi
    languages: [hindi]
    regions: [IN-UP]
    platforms: [{name: youtube, engagement_rate: 6}]
  - id: inf-2
    name: Kavya
    followers: 800000
    primary_game: valorant
  - id: inf-3
    name: Declined Dev
    followers: 30000
    primary_game: bgmi
    status: DECLINED
`

const testProspectsCSV = `domain,domain_authority,relevance_score,monthly_traffic,link_type
smallforum.net,12,3,1000,forum
sportskeeda.com,75,9,600000,news
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestKeywordsCommand_CSV(t *testing.T) {
	require.NoError(t, useConfig(t, ""))
	out := filepath.Join(t.TempDir(), "kw.csv")
	setFlags(t, keywordsCmd, map[string]string{
		"limit": "50", "games": "BGMI", "intents": "tournament", "format": "csv", "output": out,
	})

	require.NoError(t, runKeywords(keywordsCmd, nil))

	lines := readLines(t, out)
	require.Len(t, lines, 51)
	assert.Equal(t, "rank,keyword", lines[0])
	for _, l := range lines[1:] {
		assert.Contains(t, l, "bgmi")
		assert.Contains(t, l, "tournament")
	}
}

func TestKeywordsCommand_XLSXNeedsOutput(t *testing.T) {
	require.NoError(t, useConfig(t, ""))
	setFlags(t, keywordsCmd, map[string]string{"format": "xlsx", "limit": "5"})

	err := runKeywords(keywordsCmd, nil)
	assert.ErrorContains(t, err, "--output is required for xlsx")
}

func TestKeywordOptions_DefaultUniverse(t *testing.T) {
	require.NoError(t, useConfig(t, ""))

	opts := keywordOptions(keywordsCmd, cfg.Keywords.DefaultLimit)
	assert.True(t, isDefaultUniverse(opts))

	opts.ExcludeYears = true
	assert.False(t, isDefaultUniverse(opts))

	assert.False(t, isDefaultUniverse(keywords.Options{Limit: 10}))
}

func TestInfluencersCommand(t *testing.T) {
	require.NoError(t, useConfig(t, ""))
	out := filepath.Join(t.TempDir(), "inf.csv")
	setFlags(t, influencersCmd, map[string]string{
		"input":    writeTemp(t, "roster.yaml", testRosterYAML),
		"campaign": writeTemp(t, "campaign.yaml", testCampaignYAML),
		"format":   "csv",
		"output":   out,
	})

	require.NoError(t, runInfluencers(influencersCmd, nil))

	lines := readLines(t, out)
	require.Len(t, lines, 3, "declined influencer is skipped")
	assert.True(t, strings.HasPrefix(lines[1], "1,inf-1,Rohan Plays,MICRO,"))
	assert.True(t, strings.HasSuffix(lines[1], ",ROHANPBGMI"))
	assert.True(t, strings.HasPrefix(lines[2], "2,inf-2,Kavya,MACRO,0.0,"))
}

func TestBacklinksCommand(t *testing.T) {
	require.NoError(t, useConfig(t, ""))
	out := filepath.Join(t.TempDir(), "bl.csv")
	setFlags(t, backlinksCmd, map[string]string{
		"input":  writeTemp(t, "prospects.csv", testProspectsCSV),
		"format": "csv",
		"output": out,
	})

	require.NoError(t, runBacklinks(backlinksCmd, nil))

	lines := readLines(t, out)
	require.Len(t, lines, 3)
	assert.Equal(t, "domain,tier,score,urgency,anchors", lines[0])
	assert.Equal(t, "sportskeeda.com,TIER1,84.5,immediate,branded;naked", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "smallforum.net,TIER3,"))
}

func TestAnchorsCommand(t *testing.T) {
	require.NoError(t, useConfig(t, ""))
	out := filepath.Join(t.TempDir(), "anchors.csv")
	setFlags(t, anchorsCmd, map[string]string{"total": "100", "format": "csv", "output": out})

	require.NoError(t, runAnchors(anchorsCmd, nil))
	assert.Equal(t, []string{
		"category,percent,links",
		"branded,40.0,40",
		"naked,25.0,25",
		"partial,15.0,15",
		"generic,10.0,10",
		"exact,10.0,10",
	}, readLines(t, out))
}

func TestAnchorsCommand_Mix(t *testing.T) {
	require.NoError(t, useConfig(t, ""))
	out := filepath.Join(t.TempDir(), "anchors.csv")
	setFlags(t, anchorsCmd, map[string]string{"total": "10", "mix": "branded=70,naked=30", "format": "csv", "output": out})

	require.NoError(t, runAnchors(anchorsCmd, nil))
	assert.Equal(t, []string{"category,percent,links", "branded,70.0,7", "naked,30.0,3"}, readLines(t, out))

	setFlags(t, anchorsCmd, map[string]string{"mix": "branded:70"})
	assert.Error(t, runAnchors(anchorsCmd, nil))
}

func TestEmailCommand(t *testing.T) {
	require.NoError(t, useConfig(t, ""))
	var buf bytes.Buffer
	emailCmd.SetOut(&buf)
	t.Cleanup(func() { emailCmd.SetOut(nil) })

	setFlags(t, emailCmd, map[string]string{"template": "backlink_pitch_tier2"})
	require.NoError(t, emailCmd.Flags().Set("var", "domain=gamerblog.in"))
	t.Cleanup(func() { _ = emailCmd.Flags().Lookup("var").Value.(interface{ Replace([]string) error }).Replace(nil) })

	require.NoError(t, runEmail(emailCmd, nil))
	assert.Contains(t, buf.String(), "Subject: Guest guide for gamerblog.in readers")
	assert.Contains(t, buf.String(), "PlayArena")
}

func TestEmailCommand_MissingVar(t *testing.T) {
	require.NoError(t, useConfig(t, ""))
	setFlags(t, emailCmd, map[string]string{"template": "influencer_follow_up"})

	err := runEmail(emailCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing values for")
}

func TestReportCommand(t *testing.T) {
	require.NoError(t, useConfig(t, ""))
	var buf bytes.Buffer
	reportCmd.SetOut(&buf)
	t.Cleanup(func() { reportCmd.SetOut(nil) })

	setFlags(t, reportCmd, map[string]string{
		"campaign":    writeTemp(t, "campaign.yaml", testCampaignYAML),
		"influencers": writeTemp(t, "roster.yaml", testRosterYAML),
		"prospects":   writeTemp(t, "prospects.csv", testProspectsCSV),
		"month":       "4",
	})

	require.NoError(t, runReport(reportCmd, nil))

	s := buf.String()
	assert.Contains(t, s, "Campaign: BGMI Monsoon Cup (bgmi-monsoon)")
	assert.Contains(t, s, "utm_medium=influencer")
	assert.Contains(t, s, "utm_content=rohanplays")
	// MICRO video 10000 + 2 shorts 5000, MACRO video 200000 + 2 shorts 100000.
	assert.Contains(t, s, "Estimated budget: ₹420,000 for 2 influencers")
	assert.Contains(t, s, "Immediate: 1  This week: 0  Backlog: 1")
	assert.Contains(t, s, "Remaining target from month 4: 90 referring domains")
	assert.Contains(t, s, "This month (growth): 25 referring domains")
}

func TestReportCommand_BadInput(t *testing.T) {
	require.NoError(t, useConfig(t, ""))
	setFlags(t, reportCmd, map[string]string{
		"campaign":  writeTemp(t, "campaign.yaml", testCampaignYAML),
		"prospects": writeTemp(t, "prospects.csv", "domain,link_type\n,blog\n"),
	})

	err := runReport(reportCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report: load prospects")
}

func TestHelpers(t *testing.T) {
	t.Run("formatMoney", func(t *testing.T) {
		assert.Equal(t, "0", formatMoney(0))
		assert.Equal(t, "999", formatMoney(999))
		assert.Equal(t, "1,000", formatMoney(1000))
		assert.Equal(t, "1,250,000", formatMoney(1_250_000.4))
		assert.Equal(t, "-25,000", formatMoney(-25_000))
	})

	t.Run("parsePairs", func(t *testing.T) {
		pairs, err := parsePairs("video=2, short = 3")
		require.NoError(t, err)
		assert.Equal(t, []kv{{Key: "video", Value: "2"}, {Key: "short", Value: "3"}}, pairs)

		_, err = parsePairs("video")
		assert.Error(t, err)
	})

	t.Run("parseDeliverables", func(t *testing.T) {
		d, err := parseDeliverables("Video=2,stream=1")
		require.NoError(t, err)
		assert.Equal(t, []model.Deliverable{
			{Type: model.DeliverableVideo, Quantity: 2},
			{Type: model.DeliverableStream, Quantity: 1},
		}, d)

		_, err = parseDeliverables("video=two")
		assert.Error(t, err)
		_, err = parseDeliverables("video=-1")
		assert.Error(t, err)
	})

	t.Run("resolveTier", func(t *testing.T) {
		tier, err := resolveTier("micro", 0)
		require.NoError(t, err)
		assert.Equal(t, model.TierMicro, tier)

		tier, err = resolveTier("", 600_000)
		require.NoError(t, err)
		assert.Equal(t, model.TierMacro, tier)

		_, err = resolveTier("GIGA", 0)
		assert.Error(t, err)
		_, err = resolveTier("", 0)
		assert.Error(t, err)
	})

	t.Run("parseVars", func(t *testing.T) {
		vars, err := parseVars([]string{"name=Rohan", "fee=₹10,000 = final"})
		require.NoError(t, err)
		assert.Equal(t, "Rohan", vars["name"])
		assert.Equal(t, "₹10,000 = final", vars["fee"])
		assert.Equal(t, "PlayArena", vars["brand"])

		_, err = parseVars([]string{"=x"})
		assert.Error(t, err)
	})

	t.Run("writeTable", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeTable(&buf, []string{"a", "bb"}, [][]string{{"1", "2"}}))
		assert.Equal(t, "a  bb\n-  --\n1  2\n", buf.String())
	})
}

func TestROICommand_RejectsNonFinite(t *testing.T) {
	require.NoError(t, useConfig(t, ""))

	for _, v := range []string{"NaN", "+Inf", "-5"} {
		setFlags(t, roiCmd, map[string]string{"cost": v})
		assert.ErrorContains(t, runROI(roiCmd, nil), "roi: flag values must be finite and >= 0", "cost=%s", v)
	}
}

func TestInfluencersCommand_DuplicateIDs(t *testing.T) {
	require.NoError(t, useConfig(t, ""))
	setFlags(t, influencersCmd, map[string]string{
		"input":    writeTemp(t, "roster.yaml", "- {id: a, name: Rohan, primary_game: bgmi}\n- {id: a, name: Kavya, primary_game: bgmi}\n"),
		"campaign": writeTemp(t, "campaign.yaml", testCampaignYAML),
	})

	err := runInfluencers(influencersCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate influencer ids")
}
