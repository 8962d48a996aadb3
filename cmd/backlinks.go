package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/growth-cli/internal/importer"
	"github.com/sells-group/growth-cli/internal/model"
	"github.com/sells-group/growth-cli/internal/scorer"
)

var backlinksCmd = &cobra.Command{
	Use:   "backlinks",
	Short: "Score backlink prospects and recommend an outreach strategy",
	Long: `Scores each backlink prospect (0-100) from domain authority, relevance,
traffic, placement type, relationship, spam and payment, then assigns a tier,
urgency, anchor styles and a pitch.

Examples:
  backlinks --input prospects.csv
  backlinks --input prospects.xlsx --min-score 60 --format xlsx --output plan.xlsx`,
	RunE: runBacklinks,
}

func init() {
	f := backlinksCmd.Flags()
	f.String("input", "", "prospect list (YAML, JSON, CSV or XLSX)")
	f.Float64("min-score", 0, "hide prospects scoring below this")
	f.Bool("messaging", false, "include the pitch text in the output")
	f.String("output", "", "output file path (default: stdout)")
	f.String("format", formatTable, "output format: table, csv or xlsx")
	_ = backlinksCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(backlinksCmd)
}

func runBacklinks(cmd *cobra.Command, _ []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	minScore, _ := cmd.Flags().GetFloat64("min-score")
	withMessaging, _ := cmd.Flags().GetBool("messaging")
	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")
	if err := validateFormat("backlinks", format); err != nil {
		return err
	}

	prospects, err := importer.LoadProspects(inputPath)
	if err != nil {
		return eris.Wrap(err, "backlinks: load prospects")
	}

	strategies := rankProspects(prospects, minScore)

	zap.L().Info("backlinks: scored",
		zap.Int("prospects", len(prospects)),
		zap.Int("shown", len(strategies)),
	)

	header := []string{"domain", "tier", "score", "urgency", "anchors"}
	if withMessaging {
		header = append(header, "messaging")
	}
	rows := make([][]string, 0, len(strategies))
	for _, s := range strategies {
		row := []string{s.Domain, string(s.Tier), fmt.Sprintf("%.1f", s.Score), s.Urgency, joinAnchors(s.RecommendedAnchors)}
		if withMessaging {
			row = append(row, s.Messaging)
		}
		rows = append(rows, row)
	}

	return writeResults("backlinks", format, outputPath, header, rows)
}

// rankProspects builds a strategy per prospect, drops those under minScore
// and orders the rest by score, keeping input order on ties.
func rankProspects(prospects []model.Prospect, minScore float64) []scorer.Strategy {
	out := make([]scorer.Strategy, 0, len(prospects))
	for i := range prospects {
		s := scorer.RecommendOutreachStrategy(&prospects[i])
		if s.Score < minScore {
			continue
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Score > out[b].Score })
	return out
}

func joinAnchors(anchors []model.AnchorCategory) string {
	parts := make([]string, len(anchors))
	for i, a := range anchors {
		parts[i] = string(a)
	}
	return strings.Join(parts, ";")
}
