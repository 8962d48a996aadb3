package main

import (
	"fmt"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/growth-cli/internal/linkplan"
)

var anchorsCmd = &cobra.Command{
	Use:   "anchors",
	Short: "Split a link target into anchor text counts",
	Long: `Allocates a number of links across anchor text categories. Counts always
sum to --total. Without --mix the configured distribution is used, falling back
to branded 40, naked 25, partial 15, generic 10, exact 10.

Examples:
  anchors --total 100
  anchors --total 35 --mix branded=50,naked=30,generic=20`,
	RunE: runAnchors,
}

func init() {
	f := anchorsCmd.Flags()
	f.Int("total", 0, "number of links to allocate")
	f.String("mix", "", "category=percent pairs in priority order (overrides config)")
	f.String("output", "", "output file path (default: stdout)")
	f.String("format", formatTable, "output format: table, csv or xlsx")
	_ = anchorsCmd.MarkFlagRequired("total")

	rootCmd.AddCommand(anchorsCmd)
}

func runAnchors(cmd *cobra.Command, _ []string) error {
	total, _ := cmd.Flags().GetInt("total")
	mixFlag, _ := cmd.Flags().GetString("mix")
	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")
	if err := validateFormat("anchors", format); err != nil {
		return err
	}
	if total < 0 {
		return eris.Errorf("anchors: --total must be >= 0 (got %d)", total)
	}

	dist, err := anchorDistribution(mixFlag)
	if err != nil {
		return err
	}

	mix := linkplan.CalculateAnchorMix(total, dist)
	if len(dist) == 0 {
		dist = linkplan.DefaultDistribution()
	}

	rows := make([][]string, len(mix))
	for i, a := range mix {
		rows[i] = []string{string(a.Category), fmt.Sprintf("%.1f", dist[i].Percent), strconv.Itoa(a.Count)}
	}
	return writeResults("anchors", format, outputPath, []string{"category", "percent", "links"}, rows)
}

func anchorDistribution(mixFlag string) (linkplan.Distribution, error) {
	if mixFlag == "" {
		return linkplan.DistributionFromConfig(cfg.Anchors), nil
	}
	dist, err := linkplan.ParseDistribution(mixFlag)
	if err != nil {
		return nil, eris.Wrap(err, "anchors: parse --mix")
	}
	return dist, nil
}
