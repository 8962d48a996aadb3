package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/growth-cli/internal/attribution"
	"github.com/sells-group/growth-cli/internal/cost"
	"github.com/sells-group/growth-cli/internal/importer"
	"github.com/sells-group/growth-cli/internal/linkplan"
	"github.com/sells-group/growth-cli/internal/model"
	"github.com/sells-group/growth-cli/internal/scorer"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Combined campaign planning report",
	Long: `Builds one planning report for a campaign: recommended influencers with
estimated cost, referral codes and tracking links; backlink prospects by
urgency; and this month's link velocity with its anchor text split.

Input files are loaded concurrently.

Examples:
  report --campaign campaign.yaml --influencers roster.yaml --prospects prospects.csv --month 3`,
	RunE: runReport,
}

func init() {
	f := reportCmd.Flags()
	f.String("campaign", "", "campaign brief (YAML or JSON)")
	f.String("influencers", "", "influencer roster (YAML or JSON)")
	f.String("prospects", "", "backlink prospects (YAML, JSON, CSV or XLSX)")
	f.String("plan", "", "velocity plan file (overrides config)")
	f.Int("month", 1, "current plan month (1-based)")
	f.Int("limit", 0, "influencers to recommend (0=use config default)")
	f.String("deliverables", "video=1,short=2", "deliverables priced per recommended influencer")
	f.String("platform", "youtube", "platform used for tracking links")
	f.String("landing", "https://playarena.gg/tournaments", "landing page for tracking links")
	_ = reportCmd.MarkFlagRequired("campaign")

	rootCmd.AddCommand(reportCmd)
}

// reportInputs holds everything report loads from disk.
type reportInputs struct {
	campaign    *model.Campaign
	influencers []model.Influencer
	prospects   []model.Prospect
	plan        []model.VelocityPhase
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	campaignPath, _ := cmd.Flags().GetString("campaign")
	influencersPath, _ := cmd.Flags().GetString("influencers")
	prospectsPath, _ := cmd.Flags().GetString("prospects")
	planPath, _ := cmd.Flags().GetString("plan")
	month, _ := cmd.Flags().GetInt("month")
	limit, _ := cmd.Flags().GetInt("limit")
	delivFlag, _ := cmd.Flags().GetString("deliverables")
	platform, _ := cmd.Flags().GetString("platform")
	landing, _ := cmd.Flags().GetString("landing")

	if month < 1 {
		return eris.Errorf("report: --month must be >= 1 (got %d)", month)
	}
	deliverables, err := parseDeliverables(delivFlag)
	if err != nil {
		return err
	}

	in, err := loadReportInputs(ctx, campaignPath, influencersPath, prospectsPath, planPath)
	if err != nil {
		return err
	}

	log := zap.L().With(zap.String("command", "report"), zap.String("campaign_id", in.campaign.ID))
	log.Info("report inputs loaded",
		zap.Int("influencers", len(in.influencers)),
		zap.Int("prospects", len(in.prospects)),
		zap.Int("plan_phases", len(in.plan)),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Campaign: %s (%s)\nGame:     %s\n", in.campaign.Name, in.campaign.ID, in.campaign.Game)

	calc := cost.NewCalculator(cost.RatesFromConfig(cfg.Pricing))
	if err := reportInfluencers(out, in, limit, deliverables, calc, platform, landing); err != nil {
		return err
	}
	if err := reportProspects(out, in.prospects); err != nil {
		return err
	}
	return reportVelocity(out, month, in.plan)
}

// loadReportInputs reads the campaign, roster, prospects and plan in
// parallel. Optional inputs with an empty path are skipped.
func loadReportInputs(ctx context.Context, campaignPath, influencersPath, prospectsPath, planPath string) (*reportInputs, error) {
	in := &reportInputs{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		c, err := importer.LoadCampaign(campaignPath)
		if err != nil {
			return eris.Wrap(err, "report: load campaign")
		}
		in.campaign = c
		return nil
	})

	if influencersPath != "" {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			list, err := importer.LoadInfluencers(influencersPath)
			if err != nil {
				return eris.Wrap(err, "report: load influencers")
			}
			in.influencers = list
			return nil
		})
	}

	if prospectsPath != "" {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			list, err := importer.LoadProspects(prospectsPath)
			if err != nil {
				return eris.Wrap(err, "report: load prospects")
			}
			in.prospects = list
			return nil
		})
	}

	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		plan, err := velocityPlan(planPath)
		if err != nil {
			return err
		}
		in.plan = plan
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return in, nil
}

func reportInfluencers(w io.Writer, in *reportInputs, limit int, deliverables []model.Deliverable,
	calc *cost.Calculator, platform, landing string) error {
	fmt.Fprintln(w, "\n--- Influencers ---")
	if len(in.influencers) == 0 {
		fmt.Fprintln(w, "No roster given.")
		return nil
	}

	recs := scorer.NewFitScorer(cfg.Scorer).Recommend(in.influencers, in.campaign, limit)
	byID := make(map[string]*model.Influencer, len(in.influencers))
	for i := range in.influencers {
		byID[in.influencers[i].ID] = &in.influencers[i]
	}

	var budget float64
	rows := make([][]string, 0, len(recs))
	for i, r := range recs {
		inf := byID[r.InfluencerID]
		est := calc.EstimateCollaborationCost(r.Tier, deliverables)
		budget += est

		link, err := attribution.GenerateTrackingUTM(inf, in.campaign, platform).Apply(landing)
		if err != nil {
			return eris.Wrap(err, "report: tracking link")
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.Name,
			string(r.Tier),
			fmt.Sprintf("%.1f", r.Score),
			formatMoney(est),
			attribution.GenerateReferralCode(inf.Name, in.campaign.ID),
			link,
		})
	}

	if err := writeTable(w, []string{"rank", "name", "tier", "fit", "est_cost", "referral", "tracking_link"}, rows); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nEstimated budget: ₹%s for %d influencers\n", formatMoney(budget), len(recs))
	return nil
}

func reportProspects(w io.Writer, prospects []model.Prospect) error {
	fmt.Fprintln(w, "\n--- Backlink prospects ---")
	if len(prospects) == 0 {
		fmt.Fprintln(w, "No prospects given.")
		return nil
	}

	strategies := rankProspects(prospects, 0)
	counts := map[string]int{}
	rows := make([][]string, 0, len(strategies))
	for _, s := range strategies {
		counts[s.Urgency]++
		rows = append(rows, []string{s.Domain, string(s.Tier), fmt.Sprintf("%.1f", s.Score), s.Urgency})
	}

	if err := writeTable(w, []string{"domain", "tier", "score", "urgency"}, rows); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nImmediate: %d  This week: %d  Backlog: %d\n",
		counts[scorer.UrgencyImmediate], counts[scorer.UrgencyThisWeek], counts[scorer.UrgencyBacklog])
	return nil
}

func reportVelocity(w io.Writer, month int, plan []model.VelocityPhase) error {
	fmt.Fprintln(w, "\n--- Link velocity ---")
	proj := linkplan.ProjectLinkVelocity(month, plan)
	fmt.Fprintf(w, "Remaining target from month %d: %d referring domains\n", month, proj.TotalTarget)
	if proj.CurrentPhase == nil {
		fmt.Fprintf(w, "Month %d is not in the plan.\n", month)
		return nil
	}

	target := proj.CurrentPhase.TargetDomains
	fmt.Fprintf(w, "This month (%s): %d referring domains\n\n", proj.CurrentPhase.Phase, target)

	mix := linkplan.CalculateAnchorMix(target, linkplan.DistributionFromConfig(cfg.Anchors))
	rows := make([][]string, len(mix))
	for i, a := range mix {
		rows[i] = []string{string(a.Category), strconv.Itoa(a.Count)}
	}
	return writeTable(w, []string{"anchor", "links"}, rows)
}
