package main

import (
	"fmt"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/growth-cli/internal/attribution"
	"github.com/sells-group/growth-cli/internal/config"
	"github.com/sells-group/growth-cli/internal/importer"
	"github.com/sells-group/growth-cli/internal/model"
	"github.com/sells-group/growth-cli/internal/scorer"
)

var influencersCmd = &cobra.Command{
	Use:   "influencers",
	Short: "Rank influencers by campaign fit",
	Long: `Scores every influencer in a roster against a campaign brief and lists the
best matches. Declined and inactive influencers are skipped.

Factors (default weights): game match 30, audience match 25, engagement 20,
cost efficiency 15, past performance 10.

Examples:
  # Top 10 for a campaign
  influencers --input roster.yaml --campaign campaign.yaml

  # Top 25 above a fit score of 60, as CSV
  influencers --input roster.yaml --campaign campaign.yaml --limit 25 --min-score 60 --format csv`,
	RunE: runInfluencers,
}

func init() {
	f := influencersCmd.Flags()
	f.String("input", "", "influencer roster (YAML or JSON)")
	f.String("campaign", "", "campaign brief (YAML or JSON)")
	f.Int("limit", 0, "maximum number of results (0=use config default)")
	f.Float64("min-score", 0, "minimum fit score (overrides config and campaign)")
	f.String("output", "", "output file path (default: stdout)")
	f.String("format", formatTable, "output format: table, csv or xlsx")
	_ = influencersCmd.MarkFlagRequired("input")
	_ = influencersCmd.MarkFlagRequired("campaign")

	rootCmd.AddCommand(influencersCmd)
}

func runInfluencers(cmd *cobra.Command, _ []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	campaignPath, _ := cmd.Flags().GetString("campaign")
	limit, _ := cmd.Flags().GetInt("limit")
	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")
	if err := validateFormat("influencers", format); err != nil {
		return err
	}

	roster, err := importer.LoadInfluencers(inputPath)
	if err != nil {
		return eris.Wrap(err, "influencers: load roster")
	}
	campaign, err := importer.LoadCampaign(campaignPath)
	if err != nil {
		return eris.Wrap(err, "influencers: load campaign")
	}

	scorerCfg := applyFitOverrides(cmd, cfg.Scorer, campaign)
	if err := scorer.ValidateConfig(scorerCfg); err != nil {
		return err
	}

	results := scorer.NewFitScorer(scorerCfg).Recommend(roster, campaign, limit)

	zap.L().Info("influencers: ranked",
		zap.String("campaign_id", campaign.ID),
		zap.Int("roster", len(roster)),
		zap.Int("results", len(results)),
	)

	byID := make(map[string]*model.Influencer, len(roster))
	for i := range roster {
		byID[roster[i].ID] = &roster[i]
	}

	header := []string{"rank", "id", "name", "tier", "score", "game", "audience", "engagement", "cost", "history", "referral_code"}
	rows := make([][]string, 0, len(results))
	for i, r := range results {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.InfluencerID,
			r.Name,
			string(r.Tier),
			fmt.Sprintf("%.1f", r.Score),
			r.Breakdown[scorer.ComponentGameMatch],
			r.Breakdown[scorer.ComponentAudienceMatch],
			r.Breakdown[scorer.ComponentEngagement],
			r.Breakdown[scorer.ComponentCostEfficiency],
			r.Breakdown[scorer.ComponentPastPerformance],
			attribution.GenerateReferralCode(byID[r.InfluencerID].Name, campaign.ID),
		})
	}

	return writeResults("influencers", format, outputPath, header, rows)
}

// applyFitOverrides returns a copy of the base config with CLI flag overrides
// applied. A --min-score flag also replaces the campaign's own threshold.
func applyFitOverrides(cmd *cobra.Command, base config.ScorerConfig, c *model.Campaign) config.ScorerConfig {
	sc := base
	if v, _ := cmd.Flags().GetInt("limit"); v > 0 {
		sc.RecommendLimit = v
	}
	if v, _ := cmd.Flags().GetFloat64("min-score"); v > 0 {
		sc.MinFitScore = v
		c.MinFitScore = v
	}
	return sc
}
