package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/growth-cli/internal/cost"
	"github.com/sells-group/growth-cli/internal/model"
)

var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "Estimate the cost of a collaboration",
	Long: `Prices a set of deliverables for an influencer tier using the configured
rate card (pricing.rates), falling back to the built-in INR rates.

Tiers: NANO, MICRO, MID, MACRO. Deliverables: video, short, post, stream.

Examples:
  cost --tier MICRO --deliverables video=2,short=3
  cost --followers 250000 --deliverables stream=1`,
	RunE: runCost,
}

func init() {
	f := costCmd.Flags()
	f.String("tier", "", "influencer tier (NANO, MICRO, MID, MACRO)")
	f.Int64("followers", 0, "derive the tier from a follower count instead of --tier")
	f.String("deliverables", "", "type=quantity pairs (e.g., video=2,short=3)")
	_ = costCmd.MarkFlagRequired("deliverables")

	rootCmd.AddCommand(costCmd)
}

func runCost(cmd *cobra.Command, _ []string) error {
	tierFlag, _ := cmd.Flags().GetString("tier")
	followers, _ := cmd.Flags().GetInt64("followers")
	delivFlag, _ := cmd.Flags().GetString("deliverables")

	tier, err := resolveTier(tierFlag, followers)
	if err != nil {
		return err
	}
	deliverables, err := parseDeliverables(delivFlag)
	if err != nil {
		return err
	}

	calc := cost.NewCalculator(cost.RatesFromConfig(cfg.Pricing))
	total := calc.EstimateCollaborationCost(tier, deliverables)

	rows := make([][]string, 0, len(deliverables))
	for _, d := range deliverables {
		rate := calc.Rate(tier, d.Type)
		rows = append(rows, []string{
			string(d.Type),
			strconv.Itoa(d.Quantity),
			formatMoney(rate),
			formatMoney(rate * float64(d.Quantity)),
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Tier: %s\n\n", tier)
	if err := writeTable(out, []string{"deliverable", "quantity", "rate", "subtotal"}, rows); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nTotal: ₹%s\n", formatMoney(total))
	return nil
}

func resolveTier(tierFlag string, followers int64) (model.Tier, error) {
	if tierFlag == "" {
		if followers <= 0 {
			return "", eris.New("cost: one of --tier or --followers is required")
		}
		return model.TierForFollowers(followers), nil
	}
	tier := model.Tier(strings.ToUpper(strings.TrimSpace(tierFlag)))
	if !tier.Valid() {
		return "", eris.Errorf("cost: unknown tier %q", tierFlag)
	}
	return tier, nil
}

func parseDeliverables(s string) ([]model.Deliverable, error) {
	pairs, err := parsePairs(s)
	if err != nil {
		return nil, eris.Wrap(err, "cost: parse --deliverables")
	}
	out := make([]model.Deliverable, 0, len(pairs))
	for _, p := range pairs {
		qty, err := strconv.Atoi(p.Value)
		if err != nil {
			return nil, eris.Wrapf(err, "cost: quantity for %s", p.Key)
		}
		d := model.Deliverable{Type: model.DeliverableType(strings.ToLower(p.Key)), Quantity: qty}
		if err := d.Validate(); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
