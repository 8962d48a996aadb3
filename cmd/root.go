package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/growth-cli/internal/config"
	"github.com/sells-group/growth-cli/internal/scorer"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "growth-cli",
	Short: "Keyword, influencer and backlink planning for tournament growth campaigns",
	Long: `Generates the SEO keyword universe, scores influencers and backlink prospects
against campaign briefs, and plans anchor text, link velocity and collaboration
budgets. All inputs are local files; nothing is sent over the network.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		if err := c.Validate(); err != nil {
			return err
		}
		if err := scorer.ValidateConfig(c.Scorer); err != nil {
			return err
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return eris.Wrap(err, "init logger")
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
