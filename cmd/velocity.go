package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/growth-cli/internal/importer"
	"github.com/sells-group/growth-cli/internal/linkplan"
	"github.com/sells-group/growth-cli/internal/model"
)

var velocityCmd = &cobra.Command{
	Use:   "velocity",
	Short: "Project remaining referring-domain targets",
	Long: `Shows the link velocity plan from --month onward and the total number of
referring domains still to build. The plan comes from --plan, then config,
then the built-in six month ramp.

Examples:
  velocity --month 4
  velocity --month 2 --plan plan.yaml`,
	RunE: runVelocity,
}

func init() {
	f := velocityCmd.Flags()
	f.Int("month", 1, "current plan month (1-based)")
	f.String("plan", "", "velocity plan file (YAML or JSON, overrides config)")

	rootCmd.AddCommand(velocityCmd)
}

func runVelocity(cmd *cobra.Command, _ []string) error {
	month, _ := cmd.Flags().GetInt("month")
	planPath, _ := cmd.Flags().GetString("plan")
	if month < 1 {
		return eris.Errorf("velocity: --month must be >= 1 (got %d)", month)
	}

	plan, err := velocityPlan(planPath)
	if err != nil {
		return err
	}

	proj := linkplan.ProjectLinkVelocity(month, plan)
	printProjection(month, proj)
	return nil
}

func velocityPlan(path string) ([]model.VelocityPhase, error) {
	if path == "" {
		return linkplan.PlanFromConfig(cfg.Velocity), nil
	}
	plan, err := importer.LoadVelocityPlan(path)
	if err != nil {
		return nil, eris.Wrap(err, "velocity: load plan")
	}
	return plan, nil
}

func printProjection(month int, p linkplan.Projection) {
	if p.CurrentPhase != nil {
		fmt.Printf("Month %d: %s (%d referring domains)\n", month, p.CurrentPhase.Phase, p.CurrentPhase.TargetDomains)
	} else {
		fmt.Printf("Month %d: not in plan\n", month)
	}
	if len(p.RemainingMonths) == 0 {
		fmt.Println("No months remaining.")
		return
	}
	rows := make([][]string, len(p.RemainingMonths))
	for i, ph := range p.RemainingMonths {
		rows[i] = []string{strconv.Itoa(ph.Month), ph.Phase, strconv.Itoa(ph.TargetDomains)}
	}
	fmt.Println()
	_ = writeTable(os.Stdout, []string{"month", "phase", "target_domains"}, rows)
	fmt.Printf("\nRemaining target: %d referring domains\n", p.TotalTarget)
}
